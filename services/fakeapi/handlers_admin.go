package fakeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/scut1er/studentportal/core/portal"
)

func (s *Server) registerAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	ag := g.Group("/admin", jwt, roleMiddleware(portal.RoleAdmin))

	ag.GET("/users", s.adminUsers)
	ag.POST("/users", s.adminCreateUser)
	ag.PUT("/users/:id", s.adminUpdateUser)
	ag.DELETE("/users/:id", s.adminDeleteUser)

	ag.GET("/subjects", s.adminSubjects)
	ag.POST("/subjects", s.adminCreateSubject)
	ag.PUT("/subjects/:id", s.adminUpdateSubject)
	ag.DELETE("/subjects/:id", s.adminDeleteSubject)

	ag.GET("/grades", s.adminGrades)
	ag.PUT("/grades/:id", s.teacherUpdateGrade)
	ag.DELETE("/grades/:id", s.teacherDeleteGrade)

	ag.GET("/lab-templates", s.adminLabTemplates)
	ag.GET("/lab-templates/subject/:subjectId", s.teacherLabTemplatesBySubject)
	ag.POST("/lab-templates", s.teacherCreateLabTemplate)
	ag.PUT("/lab-templates/:id", s.teacherUpdateLabTemplate)
	ag.DELETE("/lab-templates/:id", s.teacherDeleteLabTemplate)

	ag.GET("/lab-submissions", s.adminLabSubmissions)
	ag.GET("/lab-submissions/student/:studentId", s.adminLabSubmissionsByStudent)
	ag.PUT("/lab-submissions/:id", s.teacherGradeLabSubmission)
	ag.DELETE("/lab-submissions/:id", s.teacherDeleteLabSubmission)

	ag.GET("/attendance", s.adminAttendance)
	ag.PUT("/attendance/:id", s.teacherUpdateAttendance)
	ag.DELETE("/attendance/:id", s.teacherDeleteAttendance)

	ag.GET("/attestations", s.adminAttestations)
	ag.PUT("/attestations/:id", s.teacherUpdateAttestation)
	ag.DELETE("/attestations/:id", s.teacherDeleteAttestation)
}

// Users

func (s *Server) adminUsers(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.db.allUsers())
}

func (s *Server) adminCreateUser(ctx echo.Context) error {
	data := new(portal.UserInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if _, _, ok := s.db.userByEmail(data.Email); ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Email is already taken")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usr := s.db.createUser(portal.User{
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         data.Role,
		StudentGroup: data.StudentGroup,
		Department:   data.Department,
	}, hash)
	return ctx.JSON(http.StatusOK, usr)
}

func (s *Server) adminUpdateUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	data := new(portal.UserInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	usr, ok := s.db.updateUser(id, *data)
	if !ok {
		return errHTTPNotFound
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (s *Server) adminDeleteUser(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	s.db.deleteUser(id)
	return ctx.NoContent(http.StatusOK)
}

// Subjects

func (s *Server) adminSubjects(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.db.allSubjects())
}

func (s *Server) adminCreateSubject(ctx echo.Context) error {
	data := new(portal.SubjectInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	sub := s.db.createSubject(portal.Subject{Name: data.Name, Description: data.Description})
	return ctx.JSON(http.StatusOK, sub)
}

func (s *Server) adminUpdateSubject(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	data := new(portal.SubjectInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	sub, ok := s.db.updateSubject(id, *data)
	if !ok {
		return errHTTPNotFound
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (s *Server) adminDeleteSubject(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	s.db.deleteSubject(id)
	return ctx.NoContent(http.StatusOK)
}

// Records: unscoped lists over every subject and student.

func (s *Server) adminGrades(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.db.queryGrades(nil))
}

func (s *Server) adminLabTemplates(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.db.queryLabTemplates(nil))
}

func (s *Server) adminLabSubmissions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.db.queryLabSubmissions(nil))
}

func (s *Server) adminLabSubmissionsByStudent(ctx echo.Context) error {
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.queryLabSubmissions(func(sub portal.LabSubmission) bool {
		return sub.Student != nil && sub.Student.ID == studentID
	}))
}

func (s *Server) adminAttendance(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.db.queryAttendance(nil))
}

func (s *Server) adminAttestations(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.db.queryAttestations(nil))
}
