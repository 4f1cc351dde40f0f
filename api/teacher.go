package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/scut1er/studentportal/core/portal"
)

// TeacherAPI covers the teacher resources; record lists are scoped by subject.
type TeacherAPI struct {
	client *Client
}

func (a *TeacherAPI) Students(ctx context.Context) ([]portal.User, error) {
	var students []portal.User
	err := a.client.get(ctx, "/teacher/students", &students)
	return students, err
}

// Subjects

func (a *TeacherAPI) Subjects(ctx context.Context) ([]portal.Subject, error) {
	var subjects []portal.Subject
	err := a.client.get(ctx, "/teacher/subjects", &subjects)
	return subjects, err
}

func (a *TeacherAPI) MySubjects(ctx context.Context, teacherID int64) ([]portal.Subject, error) {
	var subjects []portal.Subject
	err := a.client.do(ctx, http.MethodGet, "/teacher/subjects/my", teacherQuery(teacherID), nil, &subjects)
	return subjects, err
}

func (a *TeacherAPI) Subscribe(ctx context.Context, subjectID, teacherID int64) error {
	path := fmt.Sprintf("/teacher/subjects/%d/subscribe", subjectID)
	return a.client.do(ctx, http.MethodPost, path, teacherQuery(teacherID), nil, nil)
}

func (a *TeacherAPI) Unsubscribe(ctx context.Context, subjectID, teacherID int64) error {
	path := fmt.Sprintf("/teacher/subjects/%d/unsubscribe", subjectID)
	return a.client.do(ctx, http.MethodDelete, path, teacherQuery(teacherID), nil, nil)
}

func teacherQuery(teacherID int64) url.Values {
	return url.Values{"teacherId": []string{strconv.FormatInt(teacherID, 10)}}
}

// Grades

func (a *TeacherAPI) GradesBySubject(ctx context.Context, subjectID int64) ([]portal.Grade, error) {
	var grades []portal.Grade
	err := a.client.get(ctx, fmt.Sprintf("/teacher/grades/subject/%d", subjectID), &grades)
	return grades, err
}

func (a *TeacherAPI) CreateGrade(ctx context.Context, input portal.GradeInput) (portal.Grade, error) {
	var grade portal.Grade
	err := a.client.post(ctx, "/teacher/grades", input, &grade)
	return grade, err
}

func (a *TeacherAPI) UpdateGrade(ctx context.Context, id int64, input portal.GradeInput) (portal.Grade, error) {
	var grade portal.Grade
	err := a.client.put(ctx, fmt.Sprintf("/teacher/grades/%d", id), input, &grade)
	return grade, err
}

func (a *TeacherAPI) DeleteGrade(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/teacher/grades/%d", id))
}

// Lab templates

func (a *TeacherAPI) LabTemplatesBySubject(ctx context.Context, subjectID int64) ([]portal.LabTemplate, error) {
	var templates []portal.LabTemplate
	err := a.client.get(ctx, fmt.Sprintf("/teacher/lab-templates/subject/%d", subjectID), &templates)
	return templates, err
}

func (a *TeacherAPI) CreateLabTemplate(ctx context.Context, input portal.LabTemplateInput) (portal.LabTemplate, error) {
	var template portal.LabTemplate
	err := a.client.post(ctx, "/teacher/lab-templates", input, &template)
	return template, err
}

func (a *TeacherAPI) UpdateLabTemplate(ctx context.Context, id int64, input portal.LabTemplateInput) (portal.LabTemplate, error) {
	var template portal.LabTemplate
	err := a.client.put(ctx, fmt.Sprintf("/teacher/lab-templates/%d", id), input, &template)
	return template, err
}

func (a *TeacherAPI) DeleteLabTemplate(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/teacher/lab-templates/%d", id))
}

// Lab submissions

func (a *TeacherAPI) LabSubmissionsBySubject(ctx context.Context, subjectID int64) ([]portal.LabSubmission, error) {
	var submissions []portal.LabSubmission
	err := a.client.get(ctx, fmt.Sprintf("/teacher/lab-submissions/subject/%d", subjectID), &submissions)
	return submissions, err
}

func (a *TeacherAPI) CreateLabSubmission(ctx context.Context, input portal.LabSubmissionInput) (portal.LabSubmission, error) {
	var submission portal.LabSubmission
	err := a.client.post(ctx, "/teacher/lab-submissions", input, &submission)
	return submission, err
}

func (a *TeacherAPI) GradeLabSubmission(ctx context.Context, id int64, input portal.LabSubmissionGradeInput) (portal.LabSubmission, error) {
	var submission portal.LabSubmission
	err := a.client.put(ctx, fmt.Sprintf("/teacher/lab-submissions/%d", id), input, &submission)
	return submission, err
}

func (a *TeacherAPI) DeleteLabSubmission(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/teacher/lab-submissions/%d", id))
}

// Attendance

func (a *TeacherAPI) AttendanceBySubject(ctx context.Context, subjectID int64) ([]portal.Attendance, error) {
	var attendance []portal.Attendance
	err := a.client.get(ctx, fmt.Sprintf("/teacher/attendance/subject/%d", subjectID), &attendance)
	return attendance, err
}

func (a *TeacherAPI) CreateAttendance(ctx context.Context, input portal.AttendanceInput) (portal.Attendance, error) {
	var attendance portal.Attendance
	err := a.client.post(ctx, "/teacher/attendance", input, &attendance)
	return attendance, err
}

func (a *TeacherAPI) UpdateAttendance(ctx context.Context, id int64, input portal.AttendanceInput) (portal.Attendance, error) {
	var attendance portal.Attendance
	err := a.client.put(ctx, fmt.Sprintf("/teacher/attendance/%d", id), input, &attendance)
	return attendance, err
}

func (a *TeacherAPI) DeleteAttendance(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/teacher/attendance/%d", id))
}

// Attestations

func (a *TeacherAPI) AttestationsBySubject(ctx context.Context, subjectID int64) ([]portal.Attestation, error) {
	var attestations []portal.Attestation
	err := a.client.get(ctx, fmt.Sprintf("/teacher/attestations/subject/%d", subjectID), &attestations)
	return attestations, err
}

func (a *TeacherAPI) CreateAttestation(ctx context.Context, input portal.AttestationInput) (portal.Attestation, error) {
	var attestation portal.Attestation
	err := a.client.post(ctx, "/teacher/attestations", input, &attestation)
	return attestation, err
}

func (a *TeacherAPI) UpdateAttestation(ctx context.Context, id int64, input portal.AttestationInput) (portal.Attestation, error) {
	var attestation portal.Attestation
	err := a.client.put(ctx, fmt.Sprintf("/teacher/attestations/%d", id), input, &attestation)
	return attestation, err
}

func (a *TeacherAPI) DeleteAttestation(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/teacher/attestations/%d", id))
}
