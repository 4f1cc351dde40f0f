package fakeapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/scut1er/studentportal/core/portal"
)

func (s *Server) registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	sg := g.Group("/student", jwt, roleMiddleware(portal.RoleStudent, portal.RoleTeacher))

	sg.GET("/teachers", s.studentTeachers)
	sg.GET("/subjects", s.studentSubjects)
	sg.GET("/:studentId/dashboard", s.studentDashboard)
	sg.GET("/:studentId/grades", s.studentGrades)
	sg.GET("/:studentId/labs", s.studentLabs)
	sg.GET("/:studentId/attendance", s.studentAttendance)
	sg.GET("/:studentId/attestations", s.studentAttestations)
}

func pathID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (s *Server) studentTeachers(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.db.usersByRole(portal.RoleTeacher))
}

func (s *Server) studentSubjects(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.db.allSubjects())
}

func (s *Server) studentGrades(ctx echo.Context) error {
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.queryGrades(func(g portal.Grade) bool {
		return g.Student != nil && g.Student.ID == studentID
	}))
}

func (s *Server) studentLabs(ctx echo.Context) error {
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.queryLabSubmissions(func(sub portal.LabSubmission) bool {
		return sub.Student != nil && sub.Student.ID == studentID
	}))
}

func (s *Server) studentAttendance(ctx echo.Context) error {
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.queryAttendance(func(att portal.Attendance) bool {
		return att.Student != nil && att.Student.ID == studentID
	}))
}

func (s *Server) studentAttestations(ctx echo.Context) error {
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.queryAttestations(func(att portal.Attestation) bool {
		return att.Student != nil && att.Student.ID == studentID
	}))
}

// studentDashboard mirrors the real backend's aggregate computation.
func (s *Server) studentDashboard(ctx echo.Context) error {
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		return err
	}

	grades := s.db.queryGrades(func(g portal.Grade) bool {
		return g.Student != nil && g.Student.ID == studentID
	})
	labs := s.db.queryLabSubmissions(func(sub portal.LabSubmission) bool {
		return sub.Student != nil && sub.Student.ID == studentID
	})
	attendance := s.db.queryAttendance(func(att portal.Attendance) bool {
		return att.Student != nil && att.Student.ID == studentID
	})
	attestations := s.db.queryAttestations(func(att portal.Attestation) bool {
		return att.Student != nil && att.Student.ID == studentID
	})
	allTemplates := s.db.queryLabTemplates(nil)

	var gradeSum int
	for _, g := range grades {
		gradeSum += g.Value
	}
	var averageGrade float64
	if len(grades) > 0 {
		averageGrade = float64(gradeSum) / float64(len(grades))
	}

	var earnedPoints int
	for _, lab := range labs {
		earnedPoints += lab.Points
	}
	var maxPossiblePoints int
	for _, tpl := range allTemplates {
		maxPossiblePoints += tpl.MaxPoints
	}

	var attended int
	for _, att := range attendance {
		if att.Present {
			attended++
		}
	}
	var attendanceRate float64
	if len(attendance) > 0 {
		attendanceRate = float64(attended) * 100.0 / float64(len(attendance))
	}

	recentGrades := grades
	if len(recentGrades) > 5 {
		recentGrades = recentGrades[:5]
	}

	return ctx.JSON(http.StatusOK, portal.DashboardStats{
		AverageGrade:      averageGrade,
		CompletedLabs:     len(labs),
		TotalLabs:         len(allTemplates),
		EarnedPoints:      earnedPoints,
		MaxPossiblePoints: maxPossiblePoints,
		AttendanceRate:    attendanceRate,
		Attestations:      attestations,
		RecentGrades:      recentGrades,
	})
}
