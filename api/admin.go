package api

import (
	"context"
	"fmt"

	"github.com/scut1er/studentportal/core/portal"
)

// AdminAPI covers the unscoped, cross-subject admin resources.
type AdminAPI struct {
	client *Client
}

// Users

func (a *AdminAPI) Users(ctx context.Context) ([]portal.User, error) {
	var users []portal.User
	err := a.client.get(ctx, "/admin/users", &users)
	return users, err
}

func (a *AdminAPI) CreateUser(ctx context.Context, input portal.UserInput) (portal.User, error) {
	var usr portal.User
	err := a.client.post(ctx, "/admin/users", input, &usr)
	return usr, err
}

func (a *AdminAPI) UpdateUser(ctx context.Context, id int64, input portal.UserInput) (portal.User, error) {
	var usr portal.User
	err := a.client.put(ctx, fmt.Sprintf("/admin/users/%d", id), input, &usr)
	return usr, err
}

func (a *AdminAPI) DeleteUser(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/admin/users/%d", id))
}

// Subjects

func (a *AdminAPI) Subjects(ctx context.Context) ([]portal.Subject, error) {
	var subjects []portal.Subject
	err := a.client.get(ctx, "/admin/subjects", &subjects)
	return subjects, err
}

func (a *AdminAPI) CreateSubject(ctx context.Context, input portal.SubjectInput) (portal.Subject, error) {
	var subject portal.Subject
	err := a.client.post(ctx, "/admin/subjects", input, &subject)
	return subject, err
}

func (a *AdminAPI) UpdateSubject(ctx context.Context, id int64, input portal.SubjectInput) (portal.Subject, error) {
	var subject portal.Subject
	err := a.client.put(ctx, fmt.Sprintf("/admin/subjects/%d", id), input, &subject)
	return subject, err
}

func (a *AdminAPI) DeleteSubject(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/admin/subjects/%d", id))
}

// Records: unscoped lists, update passthroughs and deletes.

func (a *AdminAPI) Grades(ctx context.Context) ([]portal.Grade, error) {
	var grades []portal.Grade
	err := a.client.get(ctx, "/admin/grades", &grades)
	return grades, err
}

func (a *AdminAPI) UpdateGrade(ctx context.Context, id int64, input portal.GradeInput) (portal.Grade, error) {
	var grade portal.Grade
	err := a.client.put(ctx, fmt.Sprintf("/admin/grades/%d", id), input, &grade)
	return grade, err
}

func (a *AdminAPI) DeleteGrade(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/admin/grades/%d", id))
}

func (a *AdminAPI) LabTemplates(ctx context.Context) ([]portal.LabTemplate, error) {
	var templates []portal.LabTemplate
	err := a.client.get(ctx, "/admin/lab-templates", &templates)
	return templates, err
}

func (a *AdminAPI) LabTemplatesBySubject(ctx context.Context, subjectID int64) ([]portal.LabTemplate, error) {
	var templates []portal.LabTemplate
	err := a.client.get(ctx, fmt.Sprintf("/admin/lab-templates/subject/%d", subjectID), &templates)
	return templates, err
}

func (a *AdminAPI) CreateLabTemplate(ctx context.Context, input portal.LabTemplateInput) (portal.LabTemplate, error) {
	var template portal.LabTemplate
	err := a.client.post(ctx, "/admin/lab-templates", input, &template)
	return template, err
}

func (a *AdminAPI) UpdateLabTemplate(ctx context.Context, id int64, input portal.LabTemplateInput) (portal.LabTemplate, error) {
	var template portal.LabTemplate
	err := a.client.put(ctx, fmt.Sprintf("/admin/lab-templates/%d", id), input, &template)
	return template, err
}

func (a *AdminAPI) DeleteLabTemplate(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/admin/lab-templates/%d", id))
}

func (a *AdminAPI) LabSubmissions(ctx context.Context) ([]portal.LabSubmission, error) {
	var submissions []portal.LabSubmission
	err := a.client.get(ctx, "/admin/lab-submissions", &submissions)
	return submissions, err
}

func (a *AdminAPI) LabSubmissionsByStudent(ctx context.Context, studentID int64) ([]portal.LabSubmission, error) {
	var submissions []portal.LabSubmission
	err := a.client.get(ctx, fmt.Sprintf("/admin/lab-submissions/student/%d", studentID), &submissions)
	return submissions, err
}

func (a *AdminAPI) UpdateLabSubmission(ctx context.Context, id int64, input portal.LabSubmissionGradeInput) (portal.LabSubmission, error) {
	var submission portal.LabSubmission
	err := a.client.put(ctx, fmt.Sprintf("/admin/lab-submissions/%d", id), input, &submission)
	return submission, err
}

func (a *AdminAPI) DeleteLabSubmission(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/admin/lab-submissions/%d", id))
}

func (a *AdminAPI) Attendance(ctx context.Context) ([]portal.Attendance, error) {
	var attendance []portal.Attendance
	err := a.client.get(ctx, "/admin/attendance", &attendance)
	return attendance, err
}

func (a *AdminAPI) UpdateAttendance(ctx context.Context, id int64, input portal.AttendanceInput) (portal.Attendance, error) {
	var attendance portal.Attendance
	err := a.client.put(ctx, fmt.Sprintf("/admin/attendance/%d", id), input, &attendance)
	return attendance, err
}

func (a *AdminAPI) DeleteAttendance(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/admin/attendance/%d", id))
}

func (a *AdminAPI) Attestations(ctx context.Context) ([]portal.Attestation, error) {
	var attestations []portal.Attestation
	err := a.client.get(ctx, "/admin/attestations", &attestations)
	return attestations, err
}

func (a *AdminAPI) UpdateAttestation(ctx context.Context, id int64, input portal.AttestationInput) (portal.Attestation, error) {
	var attestation portal.Attestation
	err := a.client.put(ctx, fmt.Sprintf("/admin/attestations/%d", id), input, &attestation)
	return attestation, err
}

func (a *AdminAPI) DeleteAttestation(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/admin/attestations/%d", id))
}
