package api

import (
	"context"
	"fmt"

	"github.com/scut1er/studentportal/core/portal"
)

// StudentAPI covers the per-student read-only resources.
type StudentAPI struct {
	client *Client
}

func (a *StudentAPI) Dashboard(ctx context.Context, studentID int64) (portal.DashboardStats, error) {
	var stats portal.DashboardStats
	err := a.client.get(ctx, fmt.Sprintf("/student/%d/dashboard", studentID), &stats)
	return stats, err
}

func (a *StudentAPI) Grades(ctx context.Context, studentID int64) ([]portal.Grade, error) {
	var grades []portal.Grade
	err := a.client.get(ctx, fmt.Sprintf("/student/%d/grades", studentID), &grades)
	return grades, err
}

func (a *StudentAPI) Labs(ctx context.Context, studentID int64) ([]portal.LabSubmission, error) {
	var labs []portal.LabSubmission
	err := a.client.get(ctx, fmt.Sprintf("/student/%d/labs", studentID), &labs)
	return labs, err
}

func (a *StudentAPI) Attendance(ctx context.Context, studentID int64) ([]portal.Attendance, error) {
	var attendance []portal.Attendance
	err := a.client.get(ctx, fmt.Sprintf("/student/%d/attendance", studentID), &attendance)
	return attendance, err
}

func (a *StudentAPI) Attestations(ctx context.Context, studentID int64) ([]portal.Attestation, error) {
	var attestations []portal.Attestation
	err := a.client.get(ctx, fmt.Sprintf("/student/%d/attestations", studentID), &attestations)
	return attestations, err
}

func (a *StudentAPI) Teachers(ctx context.Context) ([]portal.User, error) {
	var teachers []portal.User
	err := a.client.get(ctx, "/student/teachers", &teachers)
	return teachers, err
}

func (a *StudentAPI) Subjects(ctx context.Context) ([]portal.Subject, error) {
	var subjects []portal.Subject
	err := a.client.get(ctx, "/student/subjects", &subjects)
	return subjects, err
}
