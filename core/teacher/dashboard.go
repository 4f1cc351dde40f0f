// Package teacher implements the teacher view: a subject catalog with
// subscriptions, and record editing scoped to one selected subject at a time.
package teacher

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/scut1er/studentportal/api"
	"github.com/scut1er/studentportal/core"
	"github.com/scut1er/studentportal/core/portal"
)

// ErrNoSubjectSelected guards every subject-scoped write.
var ErrNoSubjectSelected = errors.New("no subject selected")

// Tab identifies the record tabs of the teacher view. All but TabSubjects
// require a selected subject.
type Tab int

const (
	TabSubjects Tab = iota
	TabLabTemplates
	TabLabSubmissions
	TabGrades
	TabAttendance
	TabAttestations
)

// Stats is the header strip of the teacher view. TemplateCount spans all
// subscribed subjects; PendingSubmissions counts only the selected subject's
// loaded list. AttestedRate is a display-only heuristic.
type Stats struct {
	Students           int
	SubscribedSubjects int
	TemplateCount      int
	PendingSubmissions int
	AttestedRate       float64
}

// Dashboard owns the teacher view's state. Instances are not shared; each
// login constructs its own.
type Dashboard struct {
	api       *api.Client
	log       core.Logger
	teacherID int64

	mu         sync.RWMutex
	roster     []portal.User
	catalog    []portal.Subject
	mySubjects []portal.Subject
	selected   *portal.Subject

	// scoped to the selected subject
	labTemplates   []portal.LabTemplate
	labSubmissions []portal.LabSubmission
	grades         []portal.Grade
	attendance     []portal.Attendance
	attestations   []portal.Attestation

	// cross-subject aggregates, refreshed after every subscription or
	// template change
	templateCount int
	attestedFinal int
}

func NewDashboard(client *api.Client, logger core.Logger, teacherID int64) *Dashboard {
	return &Dashboard{api: client, log: logger, teacherID: teacherID}
}

// Refresh loads the roster, the catalog, the subscription list and the
// cross-subject aggregates. The selected subject's record lists are reloaded
// too when a selection is active.
func (d *Dashboard) Refresh(ctx context.Context) error {
	roster, err := d.api.Teacher().Students(ctx)
	if err != nil {
		return err
	}
	catalog, err := d.api.Teacher().Subjects(ctx)
	if err != nil {
		return err
	}
	mySubjects, err := d.api.Teacher().MySubjects(ctx, d.teacherID)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.roster = roster
	d.catalog = catalog
	d.mySubjects = mySubjects
	if d.selected != nil && !containsSubject(mySubjects, d.selected.ID) {
		d.clearSelectionLocked()
	}
	d.mu.Unlock()

	if err := d.refreshAggregates(ctx); err != nil {
		return err
	}
	if d.Selected() != nil {
		return d.reloadScoped(ctx)
	}
	return nil
}

func containsSubject(subjects []portal.Subject, id int64) bool {
	for _, s := range subjects {
		if s.ID == id {
			return true
		}
	}
	return false
}

// refreshAggregates recomputes the cross-subject template count and the
// FINAL-passed attestation count over the subscribed subjects. Stale counts
// after subscribe/unsubscribe were a recurring bug, so every subscription
// change funnels through here.
func (d *Dashboard) refreshAggregates(ctx context.Context) error {
	d.mu.RLock()
	subjects := append([]portal.Subject(nil), d.mySubjects...)
	d.mu.RUnlock()

	var templateCount, attestedFinal int
	for _, subject := range subjects {
		templates, err := d.api.Teacher().LabTemplatesBySubject(ctx, subject.ID)
		if err != nil {
			return errors.Wrapf(err, "teacher: templates for subject %d", subject.ID)
		}
		templateCount += len(templates)

		attestations, err := d.api.Teacher().AttestationsBySubject(ctx, subject.ID)
		if err != nil {
			return errors.Wrapf(err, "teacher: attestations for subject %d", subject.ID)
		}
		for _, att := range attestations {
			if att.Type == portal.AttestationFinal && att.Passed {
				attestedFinal++
			}
		}
	}

	d.mu.Lock()
	d.templateCount = templateCount
	d.attestedFinal = attestedFinal
	d.mu.Unlock()
	return nil
}

// Subscriptions

func (d *Dashboard) Subscribe(ctx context.Context, subjectID int64) error {
	if err := d.api.Teacher().Subscribe(ctx, subjectID, d.teacherID); err != nil {
		return err
	}
	return d.reloadSubscriptions(ctx)
}

// Unsubscribe drops the subscription; when the dropped subject is the current
// selection, the selection and its scoped lists are cleared.
func (d *Dashboard) Unsubscribe(ctx context.Context, subjectID int64) error {
	if err := d.api.Teacher().Unsubscribe(ctx, subjectID, d.teacherID); err != nil {
		return err
	}

	d.mu.Lock()
	if d.selected != nil && d.selected.ID == subjectID {
		d.clearSelectionLocked()
	}
	d.mu.Unlock()

	return d.reloadSubscriptions(ctx)
}

func (d *Dashboard) reloadSubscriptions(ctx context.Context) error {
	mySubjects, err := d.api.Teacher().MySubjects(ctx, d.teacherID)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.mySubjects = mySubjects
	d.mu.Unlock()
	return d.refreshAggregates(ctx)
}

func (d *Dashboard) clearSelectionLocked() {
	d.selected = nil
	d.labTemplates = nil
	d.labSubmissions = nil
	d.grades = nil
	d.attendance = nil
	d.attestations = nil
}

// Selection

// SelectSubject makes subjectID the active subject and loads its record
// lists. Only subscribed subjects are selectable.
func (d *Dashboard) SelectSubject(ctx context.Context, subjectID int64) error {
	d.mu.Lock()
	var target *portal.Subject
	for i := range d.mySubjects {
		if d.mySubjects[i].ID == subjectID {
			target = &d.mySubjects[i]
			break
		}
	}
	if target == nil {
		d.mu.Unlock()
		return errors.Errorf("teacher: subject %d is not subscribed", subjectID)
	}
	selected := *target
	d.selected = &selected
	d.mu.Unlock()

	return d.reloadScoped(ctx)
}

func (d *Dashboard) ClearSelection() {
	d.mu.Lock()
	d.clearSelectionLocked()
	d.mu.Unlock()
}

func (d *Dashboard) Selected() *portal.Subject {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.selected == nil {
		return nil
	}
	selected := *d.selected
	return &selected
}

// TabEnabled reports whether a tab can be opened. Subject-scoped tabs stay
// disabled until a subject is selected.
func (d *Dashboard) TabEnabled(tab Tab) bool {
	if tab == TabSubjects {
		return true
	}
	return d.Selected() != nil
}

func (d *Dashboard) reloadScoped(ctx context.Context) error {
	selected := d.Selected()
	if selected == nil {
		return ErrNoSubjectSelected
	}
	id := selected.ID

	templates, err := d.api.Teacher().LabTemplatesBySubject(ctx, id)
	if err != nil {
		return err
	}
	submissions, err := d.api.Teacher().LabSubmissionsBySubject(ctx, id)
	if err != nil {
		return err
	}
	grades, err := d.api.Teacher().GradesBySubject(ctx, id)
	if err != nil {
		return err
	}
	attendance, err := d.api.Teacher().AttendanceBySubject(ctx, id)
	if err != nil {
		return err
	}
	attestations, err := d.api.Teacher().AttestationsBySubject(ctx, id)
	if err != nil {
		return err
	}

	d.mu.Lock()
	// the selection may have changed while the lists were in flight; late
	// responses for a stale selection are discarded
	if d.selected != nil && d.selected.ID == id {
		d.labTemplates = templates
		d.labSubmissions = submissions
		d.grades = grades
		d.attendance = attendance
		d.attestations = attestations
	}
	d.mu.Unlock()
	return nil
}

// selectedID returns the active subject id or ErrNoSubjectSelected.
func (d *Dashboard) selectedID() (int64, error) {
	selected := d.Selected()
	if selected == nil {
		return 0, ErrNoSubjectSelected
	}
	return selected.ID, nil
}

// Lab templates

func (d *Dashboard) CreateLabTemplate(ctx context.Context, form LabTemplateCreateForm) error {
	subjectID, err := d.selectedID()
	if err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Teacher().CreateLabTemplate(ctx, form.input(subjectID)); err != nil {
		return err
	}
	if err := d.reloadScoped(ctx); err != nil {
		return err
	}
	return d.refreshAggregates(ctx)
}

func (d *Dashboard) UpdateLabTemplate(ctx context.Context, form LabTemplateUpdateForm) error {
	subjectID, err := d.selectedID()
	if err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Teacher().UpdateLabTemplate(ctx, form.ID, form.input(subjectID)); err != nil {
		return err
	}
	if err := d.reloadScoped(ctx); err != nil {
		return err
	}
	return d.refreshAggregates(ctx)
}

func (d *Dashboard) DeleteLabTemplate(ctx context.Context, id int64) error {
	if err := d.api.Teacher().DeleteLabTemplate(ctx, id); err != nil {
		return err
	}
	if err := d.reloadScoped(ctx); err != nil {
		return err
	}
	return d.refreshAggregates(ctx)
}

// Lab submissions

func maxPointsError(max int) error {
	msg := fmt.Sprintf("Points cannot exceed the lab's maximum points (%d)", max)
	return core.NewValidationError(errors.New(msg), core.FieldError{Field: "points", Error: msg})
}

// CreateLabSubmission records an already graded submission. The points cap
// comes from the form-selected template, looked up in the loaded list; a
// violation blocks the call before anything reaches the wire.
func (d *Dashboard) CreateLabSubmission(ctx context.Context, form LabSubmissionCreateForm) error {
	if _, err := d.selectedID(); err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}

	template, ok := d.templateByID(form.LabTemplateID)
	if !ok {
		return errors.Errorf("teacher: unknown lab template %d", form.LabTemplateID)
	}
	if form.Points > template.MaxPoints {
		return maxPointsError(template.MaxPoints)
	}

	input := portal.LabSubmissionInput{
		LabTemplate: portal.Ref{ID: form.LabTemplateID},
		Student:     portal.Ref{ID: form.StudentID},
		Points:      form.Points,
		Status:      portal.StatusGraded,
		Comment:     form.Comment,
	}
	if _, err := d.api.Teacher().CreateLabSubmission(ctx, input); err != nil {
		return err
	}
	return d.reloadScoped(ctx)
}

// GradeLabSubmission re-grades an existing submission. Here the cap comes
// from the submission's own embedded template snapshot.
func (d *Dashboard) GradeLabSubmission(ctx context.Context, form LabSubmissionGradeForm) error {
	if err := validateForm(form); err != nil {
		return err
	}

	submission, ok := d.submissionByID(form.ID)
	if !ok {
		return errors.Errorf("teacher: unknown lab submission %d", form.ID)
	}
	if submission.LabTemplate != nil && form.Points > submission.LabTemplate.MaxPoints {
		return maxPointsError(submission.LabTemplate.MaxPoints)
	}

	input := portal.LabSubmissionGradeInput{
		Points:  form.Points,
		Status:  form.Status,
		Comment: form.Comment,
	}
	if _, err := d.api.Teacher().GradeLabSubmission(ctx, form.ID, input); err != nil {
		return err
	}
	return d.reloadScoped(ctx)
}

func (d *Dashboard) DeleteLabSubmission(ctx context.Context, id int64) error {
	if err := d.api.Teacher().DeleteLabSubmission(ctx, id); err != nil {
		return err
	}
	return d.reloadScoped(ctx)
}

func (d *Dashboard) templateByID(id int64) (portal.LabTemplate, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, tpl := range d.labTemplates {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return portal.LabTemplate{}, false
}

func (d *Dashboard) submissionByID(id int64) (portal.LabSubmission, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, sub := range d.labSubmissions {
		if sub.ID == id {
			return sub, true
		}
	}
	return portal.LabSubmission{}, false
}

// Grades

func (d *Dashboard) CreateGrade(ctx context.Context, form GradeCreateForm) error {
	subjectID, err := d.selectedID()
	if err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Teacher().CreateGrade(ctx, form.input(subjectID)); err != nil {
		return err
	}
	return d.reloadScoped(ctx)
}

func (d *Dashboard) UpdateGrade(ctx context.Context, form GradeUpdateForm) error {
	subjectID, err := d.selectedID()
	if err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Teacher().UpdateGrade(ctx, form.ID, form.input(subjectID)); err != nil {
		return err
	}
	return d.reloadScoped(ctx)
}

func (d *Dashboard) DeleteGrade(ctx context.Context, id int64) error {
	if err := d.api.Teacher().DeleteGrade(ctx, id); err != nil {
		return err
	}
	return d.reloadScoped(ctx)
}

// Attendance

func (d *Dashboard) CreateAttendance(ctx context.Context, form AttendanceCreateForm) error {
	subjectID, err := d.selectedID()
	if err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Teacher().CreateAttendance(ctx, form.input(subjectID)); err != nil {
		return err
	}
	return d.reloadScoped(ctx)
}

func (d *Dashboard) UpdateAttendance(ctx context.Context, form AttendanceUpdateForm) error {
	subjectID, err := d.selectedID()
	if err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Teacher().UpdateAttendance(ctx, form.ID, form.input(subjectID)); err != nil {
		return err
	}
	return d.reloadScoped(ctx)
}

func (d *Dashboard) DeleteAttendance(ctx context.Context, id int64) error {
	if err := d.api.Teacher().DeleteAttendance(ctx, id); err != nil {
		return err
	}
	return d.reloadScoped(ctx)
}

// Attestations

func (d *Dashboard) CreateAttestation(ctx context.Context, form AttestationCreateForm) error {
	subjectID, err := d.selectedID()
	if err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Teacher().CreateAttestation(ctx, form.input(subjectID)); err != nil {
		return err
	}
	if err := d.reloadScoped(ctx); err != nil {
		return err
	}
	return d.refreshAggregates(ctx)
}

func (d *Dashboard) UpdateAttestation(ctx context.Context, form AttestationUpdateForm) error {
	subjectID, err := d.selectedID()
	if err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}
	if _, err := d.api.Teacher().UpdateAttestation(ctx, form.ID, form.input(subjectID)); err != nil {
		return err
	}
	if err := d.reloadScoped(ctx); err != nil {
		return err
	}
	return d.refreshAggregates(ctx)
}

func (d *Dashboard) DeleteAttestation(ctx context.Context, id int64) error {
	if err := d.api.Teacher().DeleteAttestation(ctx, id); err != nil {
		return err
	}
	if err := d.reloadScoped(ctx); err != nil {
		return err
	}
	return d.refreshAggregates(ctx)
}

// State accessors

func (d *Dashboard) Roster() []portal.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.User(nil), d.roster...)
}

func (d *Dashboard) Catalog() []portal.Subject {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.Subject(nil), d.catalog...)
}

func (d *Dashboard) MySubjects() []portal.Subject {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.Subject(nil), d.mySubjects...)
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

func (d *Dashboard) Grades() []portal.Grade {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]portal.Grade(nil), d.grades...)
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

// Stats assembles the header strip from the loaded state.
func (d *Dashboard) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	pending := 0
	for _, sub := range d.labSubmissions {
		if sub.Status == portal.StatusPending {
			pending++
		}
	}

	var attestedRate float64
	if expected := len(d.mySubjects) * len(d.roster); expected > 0 {
		attestedRate = float64(d.attestedFinal) / float64(expected)
	}

	return Stats{
		Students:           len(d.roster),
		SubscribedSubjects: len(d.mySubjects),
		TemplateCount:      d.templateCount,
		PendingSubmissions: pending,
		AttestedRate:       attestedRate,
	}
}
