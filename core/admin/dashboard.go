// Package admin implements the admin view: a tab per resource type, full
// CRUD for users and subjects, list-and-delete for the record tabs.
package admin

import (
	"context"
	"sync"

	"github.com/scut1er/studentportal/api"
	"github.com/scut1er/studentportal/core"
	"github.com/scut1er/studentportal/core/portal"
)

type Tab int

const (
	TabUsers Tab = iota
	TabSubjects
	TabGrades
	TabLabTemplates
	TabLabSubmissions
	TabAttendance
	TabAttestations
)

// Dashboard owns the admin view's state. Every tab fetches its list on
// activation and re-fetches after each mutation; nothing is patched locally.
type Dashboard struct {
	api *api.Client
	log core.Logger

	mu             sync.RWMutex
	active         Tab
	users          []portal.User
	subjects       []portal.Subject
	grades         []portal.Grade
	labTemplates   []portal.LabTemplate
	labSubmissions []portal.LabSubmission
	attendance     []portal.Attendance
	attestations   []portal.Attestation
}

func NewDashboard(client *api.Client, logger core.Logger) *Dashboard {
	return &Dashboard{api: client, log: logger}
}

// OpenTab activates a tab and loads its list.
func (d *Dashboard) OpenTab(ctx context.Context, tab Tab) error {
	d.mu.Lock()
	d.active = tab
	d.mu.Unlock()
	return d.reload(ctx, tab)
}

func (d *Dashboard) ActiveTab() Tab {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.active
}

func (d *Dashboard) reload(ctx context.Context, tab Tab) error {
	switch tab {
	case TabUsers:
		users, err := d.api.Admin().Users(ctx)
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.users = users
		d.mu.Unlock()
	case TabSubjects:
		subjects, err := d.api.Admin().Subjects(ctx)
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.subjects = subjects
		d.mu.Unlock()
	case TabGrades:
		grades, err := d.api.Admin().Grades(ctx)
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.grades = grades
		d.mu.Unlock()
	case TabLabTemplates:
		templates, err := d.api.Admin().LabTemplates(ctx)
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.labTemplates = templates
		d.mu.Unlock()
	case TabLabSubmissions:
		submissions, err := d.api.Admin().LabSubmissions(ctx)
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.labSubmissions = submissions
		d.mu.Unlock()
	case TabAttendance:
		attendance, err := d.api.Admin().Attendance(ctx)
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.attendance = attendance
		d.mu.Unlock()
	case TabAttestations:
		attestations, err := d.api.Admin().Attestations(ctx)
		if err != nil {
			return err
		}
		d.mu.Lock()
		d.attestations = attestations
		d.mu.Unlock()
	}
	return nil
}

// Users

func (d *Dashboard) CreateUser(ctx context.Context, form UserCreateForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Admin().CreateUser(ctx, form.input()); err != nil {
		return err
	}
	return d.reload(ctx, TabUsers)
}

func (d *Dashboard) UpdateUser(ctx context.Context, form UserUpdateForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Admin().UpdateUser(ctx, form.ID, form.input()); err != nil {
		return err
	}
	return d.reload(ctx, TabUsers)
}

func (d *Dashboard) DeleteUser(ctx context.Context, id int64) error {
	if err := d.api.Admin().DeleteUser(ctx, id); err != nil {
		return err
	}
	return d.reload(ctx, TabUsers)
}

// Subjects

func (d *Dashboard) CreateSubject(ctx context.Context, form SubjectCreateForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Admin().CreateSubject(ctx, form.input()); err != nil {
		return err
	}
	return d.reload(ctx, TabSubjects)
}

func (d *Dashboard) UpdateSubject(ctx context.Context, form SubjectUpdateForm) error {
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Admin().UpdateSubject(ctx, form.ID, form.input()); err != nil {
		return err
	}
	return d.reload(ctx, TabSubjects)
}

func (d *Dashboard) DeleteSubject(ctx context.Context, id int64) error {
	if err := d.api.Admin().DeleteSubject(ctx, id); err != nil {
		return err
	}
	return d.reload(ctx, TabSubjects)
}

// Record tabs: list and delete only. Editing records is the teacher's job;
// the admin surface just cleans up.

func (d *Dashboard) DeleteGrade(ctx context.Context, id int64) error {
	if err := d.api.Admin().DeleteGrade(ctx, id); err != nil {
		return err
	}
	return d.reload(ctx, TabGrades)
}

func (d *Dashboard) DeleteLabTemplate(ctx context.Context, id int64) error {
	if err := d.api.Admin().DeleteLabTemplate(ctx, id); err != nil {
		return err
	}
	return d.reload(ctx, TabLabTemplates)
}

func (d *Dashboard) DeleteLabSubmission(ctx context.Context, id int64) error {
	if err := d.api.Admin().DeleteLabSubmission(ctx, id); err != nil {
		return err
	}
	return d.reload(ctx, TabLabSubmissions)
}

func (d *Dashboard) DeleteAttendance(ctx context.Context, id int64) error {
	if err := d.api.Admin().DeleteAttendance(ctx, id); err != nil {
		return err
	}
	return d.reload(ctx, TabAttendance)
}

func (d *Dashboard) DeleteAttestation(ctx context.Context, id int64) error {
	if err := d.api.Admin().DeleteAttestation(ctx, id); err != nil {
		return err
	}
	return d.reload(ctx, TabAttestations)
}

// State accessors

func (d *Dashboard) Users() []portal.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.User(nil), d.users...)
}

func (d *Dashboard) Subjects() []portal.Subject {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.Subject(nil), d.subjects...)
}

func (d *Dashboard) Grades() []portal.Grade {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.Grade(nil), d.grades...)
}

func (d *Dashboard) LabTemplates() []portal.LabTemplate {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.LabTemplate(nil), d.labTemplates...)
}

func (d *Dashboard) LabSubmissions() []portal.LabSubmission {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.LabSubmission(nil), d.labSubmissions...)
}

func (d *Dashboard) Attendance() []portal.Attendance {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.Attendance(nil), d.attendance...)
}

func (d *Dashboard) Attestations() []portal.Attestation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.Attestation(nil), d.attestations...)
}
