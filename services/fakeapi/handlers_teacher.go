package fakeapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scut1er/studentportal/core/portal"
)

func (s *Server) registerTeacherAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	tg := g.Group("/teacher", jwt, roleMiddleware(portal.RoleTeacher))

	tg.GET("/students", s.teacherStudents)

	tg.GET("/subjects", s.teacherSubjects)
	tg.GET("/subjects/my", s.teacherMySubjects)
	tg.POST("/subjects/:subjectId/subscribe", s.teacherSubscribe)
	tg.DELETE("/subjects/:subjectId/unsubscribe", s.teacherUnsubscribe)

	tg.GET("/grades/subject/:subjectId", s.teacherGradesBySubject)
	tg.POST("/grades", s.teacherCreateGrade)
	tg.PUT("/grades/:id", s.teacherUpdateGrade)
	tg.DELETE("/grades/:id", s.teacherDeleteGrade)

	tg.GET("/lab-templates/subject/:subjectId", s.teacherLabTemplatesBySubject)
	tg.POST("/lab-templates", s.teacherCreateLabTemplate)
	tg.PUT("/lab-templates/:id", s.teacherUpdateLabTemplate)
	tg.DELETE("/lab-templates/:id", s.teacherDeleteLabTemplate)

	tg.GET("/lab-submissions/subject/:subjectId", s.teacherLabSubmissionsBySubject)
	tg.POST("/lab-submissions", s.teacherCreateLabSubmission)
	tg.PUT("/lab-submissions/:id", s.teacherGradeLabSubmission)
	tg.DELETE("/lab-submissions/:id", s.teacherDeleteLabSubmission)

	tg.GET("/attendance/subject/:subjectId", s.teacherAttendanceBySubject)
	tg.POST("/attendance", s.teacherCreateAttendance)
	tg.PUT("/attendance/:id", s.teacherUpdateAttendance)
	tg.DELETE("/attendance/:id", s.teacherDeleteAttendance)

	tg.GET("/attestations/subject/:subjectId", s.teacherAttestationsBySubject)
	tg.POST("/attestations", s.teacherCreateAttestation)
	tg.PUT("/attestations/:id", s.teacherUpdateAttestation)
	tg.DELETE("/attestations/:id", s.teacherDeleteAttestation)
}

// ref resolution: id stubs in write payloads become embedded display copies

func (s *Server) resolveStudent(ref portal.Ref) (*portal.User, error) {
	usr, ok := s.db.userByID(ref.ID)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Student not found")
	}
	return &usr, nil
}

func (s *Server) resolveSubject(ref portal.Ref) (*portal.Subject, error) {
	sub, ok := s.db.subjectByID(ref.ID)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Subject not found")
	}
	return &sub, nil
}

func queryTeacherID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.QueryParam("teacherId"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid teacherId")
	}
	return id, nil
}

func (s *Server) teacherStudents(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.db.usersByRole(portal.RoleStudent))
}

// Subjects

func (s *Server) teacherSubjects(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.db.allSubjects())
}

func (s *Server) teacherMySubjects(ctx echo.Context) error {
	teacherID, err := queryTeacherID(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.subjectsByTeacher(teacherID))
}

func (s *Server) teacherSubscribe(ctx echo.Context) error {
	subjectID, err := pathID(ctx, "subjectId")
	if err != nil {
		return err
	}
	teacherID, err := queryTeacherID(ctx)
	if err != nil {
		return err
	}
	if _, ok := s.db.subjectByID(subjectID); !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Subject not found")
	}
	s.db.subscribe(teacherID, subjectID)
	return ctx.NoContent(http.StatusOK)
}

func (s *Server) teacherUnsubscribe(ctx echo.Context) error {
	subjectID, err := pathID(ctx, "subjectId")
	if err != nil {
		return err
	}
	teacherID, err := queryTeacherID(ctx)
	if err != nil {
		return err
	}
	s.db.unsubscribe(teacherID, subjectID)
	return ctx.NoContent(http.StatusOK)
}

// Grades

func (s *Server) teacherGradesBySubject(ctx echo.Context) error {
	subjectID, err := pathID(ctx, "subjectId")
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.queryGrades(func(g portal.Grade) bool {
		return g.Subject != nil && g.Subject.ID == subjectID
	}))
}

func (s *Server) buildGrade(input portal.GradeInput) (portal.Grade, error) {
	student, err := s.resolveStudent(input.Student)
	if err != nil {
		return portal.Grade{}, err
	}
	subject, err := s.resolveSubject(input.Subject)
	if err != nil {
		return portal.Grade{}, err
	}
	return portal.Grade{
		Student:     student,
		Subject:     subject,
		Value:       input.Value,
		Description: input.Description,
	}, nil
}

func (s *Server) teacherCreateGrade(ctx echo.Context) error {
	data := new(portal.GradeInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	grade, err := s.buildGrade(*data)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	grade.CreatedAt = &now
	return ctx.JSON(http.StatusOK, s.db.saveGrade(grade))
}

func (s *Server) teacherUpdateGrade(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	existing, ok := s.db.gradeByID(id)
	if !ok {
		return errHTTPNotFound
	}
	data := new(portal.GradeInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	grade, err := s.buildGrade(*data)
	if err != nil {
		return err
	}
	grade.ID = existing.ID
	grade.CreatedAt = existing.CreatedAt
	return ctx.JSON(http.StatusOK, s.db.saveGrade(grade))
}

func (s *Server) teacherDeleteGrade(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	s.db.deleteGrade(id)
	return ctx.NoContent(http.StatusOK)
}

// Lab templates

func (s *Server) teacherLabTemplatesBySubject(ctx echo.Context) error {
	subjectID, err := pathID(ctx, "subjectId")
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.queryLabTemplates(func(tpl portal.LabTemplate) bool {
		return tpl.Subject != nil && tpl.Subject.ID == subjectID
	}))
}

func (s *Server) buildLabTemplate(input portal.LabTemplateInput) (portal.LabTemplate, error) {
	subject, err := s.resolveSubject(input.Subject)
	if err != nil {
		return portal.LabTemplate{}, err
	}
	return portal.LabTemplate{
		Subject:     subject,
		Title:       input.Title,
		Description: input.Description,
		MaxPoints:   input.MaxPoints,
		OrderNumber: input.OrderNumber,
	}, nil
}

func (s *Server) teacherCreateLabTemplate(ctx echo.Context) error {
	data := new(portal.LabTemplateInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	tpl, err := s.buildLabTemplate(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.saveLabTemplate(tpl))
}

func (s *Server) teacherUpdateLabTemplate(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if _, ok := s.db.labTemplateByID(id); !ok {
		return errHTTPNotFound
	}
	data := new(portal.LabTemplateInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	tpl, err := s.buildLabTemplate(*data)
	if err != nil {
		return err
	}
	tpl.ID = id
	return ctx.JSON(http.StatusOK, s.db.saveLabTemplate(tpl))
}

func (s *Server) teacherDeleteLabTemplate(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	s.db.deleteLabTemplate(id)
	return ctx.NoContent(http.StatusOK)
}

// Lab submissions

func maxPointsExceededErr(maxPoints int) error {
	return echo.NewHTTPError(http.StatusBadRequest,
		fmt.Sprintf("Points cannot exceed the lab's maximum points (%d)", maxPoints))
}

func (s *Server) teacherLabSubmissionsBySubject(ctx echo.Context) error {
	subjectID, err := pathID(ctx, "subjectId")
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.queryLabSubmissions(func(sub portal.LabSubmission) bool {
		return sub.LabTemplate != nil && sub.LabTemplate.Subject != nil && sub.LabTemplate.Subject.ID == subjectID
	}))
}

func (s *Server) teacherCreateLabSubmission(ctx echo.Context) error {
	data := new(portal.LabSubmissionInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	// the template is loaded server-side; the client's copy is not trusted
	tpl, ok := s.db.labTemplateByID(data.LabTemplate.ID)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Lab template not found")
	}
	if data.Points > tpl.MaxPoints {
		return maxPointsExceededErr(tpl.MaxPoints)
	}
	if data.Points < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Points cannot be negative")
	}

	student, err := s.resolveStudent(data.Student)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	sub := portal.LabSubmission{
		LabTemplate: &tpl,
		Student:     student,
		Points:      data.Points,
		Status:      data.Status,
		Comment:     data.Comment,
		SubmittedAt: &now,
	}
	return ctx.JSON(http.StatusOK, s.db.saveLabSubmission(sub))
}

func (s *Server) teacherGradeLabSubmission(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	existing, ok := s.db.labSubmissionByID(id)
	if !ok {
		return errHTTPNotFound
	}
	data := new(portal.LabSubmissionGradeInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if data.Points > existing.LabTemplate.MaxPoints {
		return maxPointsExceededErr(existing.LabTemplate.MaxPoints)
	}
	if data.Points < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Points cannot be negative")
	}

	now := time.Now().UTC()
	existing.Points = data.Points
	existing.Comment = data.Comment
	existing.Status = data.Status
	existing.GradedAt = &now
	return ctx.JSON(http.StatusOK, s.db.saveLabSubmission(existing))
}

func (s *Server) teacherDeleteLabSubmission(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	s.db.deleteLabSubmission(id)
	return ctx.NoContent(http.StatusOK)
}

// Attendance

func (s *Server) teacherAttendanceBySubject(ctx echo.Context) error {
	subjectID, err := pathID(ctx, "subjectId")
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.queryAttendance(func(att portal.Attendance) bool {
		return att.Subject != nil && att.Subject.ID == subjectID
	}))
}

func (s *Server) buildAttendance(input portal.AttendanceInput) (portal.Attendance, error) {
	student, err := s.resolveStudent(input.Student)
	if err != nil {
		return portal.Attendance{}, err
	}
	subject, err := s.resolveSubject(input.Subject)
	if err != nil {
		return portal.Attendance{}, err
	}
	return portal.Attendance{
		Student: student,
		Subject: subject,
		Date:    input.Date,
		Present: input.Present,
		Note:    input.Note,
	}, nil
}

func (s *Server) teacherCreateAttendance(ctx echo.Context) error {
	data := new(portal.AttendanceInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	att, err := s.buildAttendance(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.saveAttendance(att))
}

func (s *Server) teacherUpdateAttendance(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	if _, ok := s.db.attendanceByID(id); !ok {
		return errHTTPNotFound
	}
	data := new(portal.AttendanceInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	att, err := s.buildAttendance(*data)
	if err != nil {
		return err
	}
	att.ID = id
	return ctx.JSON(http.StatusOK, s.db.saveAttendance(att))
}

func (s *Server) teacherDeleteAttendance(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	s.db.deleteAttendance(id)
	return ctx.NoContent(http.StatusOK)
}

// Attestations

func (s *Server) teacherAttestationsBySubject(ctx echo.Context) error {
	subjectID, err := pathID(ctx, "subjectId")
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.db.queryAttestations(func(att portal.Attestation) bool {
		return att.Subject != nil && att.Subject.ID == subjectID
	}))
}

func (s *Server) buildAttestation(input portal.AttestationInput) (portal.Attestation, error) {
	student, err := s.resolveStudent(input.Student)
	if err != nil {
		return portal.Attestation{}, err
	}
	subject, err := s.resolveSubject(input.Subject)
	if err != nil {
		return portal.Attestation{}, err
	}
	return portal.Attestation{
		Student: student,
		Subject: subject,
		Type:    input.Type,
		Passed:  input.Passed,
		Comment: input.Comment,
	}, nil
}

func (s *Server) teacherCreateAttestation(ctx echo.Context) error {
	data := new(portal.AttestationInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	att, err := s.buildAttestation(*data)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	att.CreatedAt = &now
	return ctx.JSON(http.StatusOK, s.db.saveAttestation(att))
}

func (s *Server) teacherUpdateAttestation(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	existing, ok := s.db.attestationByID(id)
	if !ok {
		return errHTTPNotFound
	}
	data := new(portal.AttestationInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	att, err := s.buildAttestation(*data)
	if err != nil {
		return err
	}
	att.ID = id
	att.CreatedAt = existing.CreatedAt
	return ctx.JSON(http.StatusOK, s.db.saveAttestation(att))
}

func (s *Server) teacherDeleteAttestation(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	s.db.deleteAttestation(id)
	return ctx.NoContent(http.StatusOK)
}
