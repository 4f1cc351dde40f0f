// Package student implements the student view: read-only sections fed by the
// per-student endpoints, refreshed as a whole.
package student

import (
	"context"
	"sync"

	"github.com/scut1er/studentportal/api"
	"github.com/scut1er/studentportal/core"
	"github.com/scut1er/studentportal/core/portal"
)

// recentAttendanceLimit caps the attendance section of the view.
const recentAttendanceLimit = 10

// Dashboard is the stateful controller behind the student view. It is not
// safe to share one instance between views; each login gets its own.
type Dashboard struct {
	api       *api.Client
	log       core.Logger
	studentID int64

	mu           sync.RWMutex
	stats        portal.DashboardStats
	grades       []portal.Grade
	labs         []portal.LabSubmission
	attendance   []portal.Attendance
	attestations []portal.Attestation
	teachers     []portal.User
}

func NewDashboard(client *api.Client, logger core.Logger, studentID int64) *Dashboard {
	return &Dashboard{api: client, log: logger, studentID: studentID}
}

// Refresh loads all six sections concurrently. A failed section is logged and
// left empty; the rest of the view still renders.
func (d *Dashboard) Refresh(ctx context.Context) {
	var (
		wg           sync.WaitGroup
		stats        portal.DashboardStats
		grades       []portal.Grade
		labs         []portal.LabSubmission
		attendance   []portal.Attendance
		attestations []portal.Attestation
		teachers     []portal.User
	)

	fetch := func(section string, load func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := load(); err != nil && d.log != nil {
				d.log.Error("student: loading "+section+" failed", err)
			}
		}()
	}

	fetch("dashboard", func() (err error) {
		stats, err = d.api.Student().Dashboard(ctx, d.studentID)
		return
	})
	fetch("grades", func() (err error) {
		grades, err = d.api.Student().Grades(ctx, d.studentID)
		return
	})
	fetch("labs", func() (err error) {
		labs, err = d.api.Student().Labs(ctx, d.studentID)
		return
	})
	fetch("attendance", func() (err error) {
		attendance, err = d.api.Student().Attendance(ctx, d.studentID)
		return
	})
	fetch("attestations", func() (err error) {
		attestations, err = d.api.Student().Attestations(ctx, d.studentID)
		return
	})
	fetch("teachers", func() (err error) {
		teachers, err = d.api.Student().Teachers(ctx)
		return
	})
	wg.Wait()

	d.mu.Lock()
	d.stats = stats
	d.grades = grades
	d.labs = labs
	d.attendance = attendance
	d.attestations = attestations
	d.teachers = teachers
	d.mu.Unlock()
}

func (d *Dashboard) Stats() portal.DashboardStats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats
}

func (d *Dashboard) Grades() []portal.Grade {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.Grade(nil), d.grades...)
}

func (d *Dashboard) Labs() []portal.LabSubmission {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.LabSubmission(nil), d.labs...)
}

// Attendance returns at most the 10 most recent entries, newest first as
// served by the backend.
func (d *Dashboard) Attendance() []portal.Attendance {
	d.mu.RLock()
	defer d.mu.RUnlock()
	att := d.attendance
	if len(att) > recentAttendanceLimit {
		att = att[:recentAttendanceLimit]
	}
	return append([]portal.Attendance(nil), att...)
}

func (d *Dashboard) Attestations() []portal.Attestation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.Attestation(nil), d.attestations...)
}

func (d *Dashboard) Teachers() []portal.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.User(nil), d.teachers...)
}
