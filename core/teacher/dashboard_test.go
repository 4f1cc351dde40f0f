package teacher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scut1er/studentportal/api"
	"github.com/scut1er/studentportal/core"
	"github.com/scut1er/studentportal/core/portal"
	"github.com/scut1er/studentportal/core/teacher"
	"github.com/scut1er/studentportal/services/fakeapi"
	testutil "github.com/scut1er/studentportal/tests"
)

var ctx = context.Background()

func newTeacherDashboard(t *testing.T) *teacher.Dashboard {
	t.Helper()
	_, ts := testutil.StartServer(t, true)
	client, identity := testutil.Login(t, ts, "teacher@example.com", "teacher123")
	dash := teacher.NewDashboard(client, nil, identity.UserID)
	require.NoError(t, dash.Refresh(ctx))
	return dash
}

func subjectByName(t *testing.T, subjects []portal.Subject, name string) portal.Subject {
	t.Helper()
	for _, s := range subjects {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("subject %q not found", name)
	return portal.Subject{}
}

func TestRefreshLoadsRosterCatalogAndAggregates(t *testing.T) {
	dash := newTeacherDashboard(t)

	assert.Len(t, dash.Roster(), 2)
	assert.Len(t, dash.Catalog(), 3)
	assert.Len(t, dash.MySubjects(), 2)

	stats := dash.Stats()
	assert.Equal(t, 2, stats.Students)
	assert.Equal(t, 2, stats.SubscribedSubjects)
	assert.Equal(t, 3, stats.TemplateCount) // 2 in Algorithms + 1 in Networks
}

func TestSubjectTabsDisabledWithoutSelection(t *testing.T) {
	dash := newTeacherDashboard(t)

	assert.True(t, dash.TabEnabled(teacher.TabSubjects))
	for _, tab := range []teacher.Tab{
		teacher.TabLabTemplates, teacher.TabLabSubmissions,
		teacher.TabGrades, teacher.TabAttendance, teacher.TabAttestations,
	} {
		assert.False(t, dash.TabEnabled(tab))
	}

	algo := subjectByName(t, dash.MySubjects(), "Algorithms")
	require.NoError(t, dash.SelectSubject(ctx, algo.ID))

	assert.True(t, dash.TabEnabled(teacher.TabGrades))
	assert.Len(t, dash.LabTemplates(), 2)
	assert.Len(t, dash.Grades(), 6)
}

func TestSelectRequiresSubscription(t *testing.T) {
	dash := newTeacherDashboard(t)

	dbs := subjectByName(t, dash.Catalog(), "Databases")
	assert.Error(t, dash.SelectSubject(ctx, dbs.ID))
	assert.Nil(t, dash.Selected())
}

func TestSubscribeRefreshesSubjectListAndAggregates(t *testing.T) {
	dash := newTeacherDashboard(t)

	dbs := subjectByName(t, dash.Catalog(), "Databases")
	require.NoError(t, dash.Subscribe(ctx, dbs.ID))
	assert.Len(t, dash.MySubjects(), 3)

	// subscribing twice is a no-op
	require.NoError(t, dash.Subscribe(ctx, dbs.ID))
	assert.Len(t, dash.MySubjects(), 3)
}

func TestUnsubscribeClearsActiveSelection(t *testing.T) {
	dash := newTeacherDashboard(t)

	algo := subjectByName(t, dash.MySubjects(), "Algorithms")
	require.NoError(t, dash.SelectSubject(ctx, algo.ID))
	require.NotNil(t, dash.Selected())

	require.NoError(t, dash.Unsubscribe(ctx, algo.ID))

	assert.Nil(t, dash.Selected())
	assert.Empty(t, dash.LabTemplates())
	assert.Empty(t, dash.Grades())
	assert.Len(t, dash.MySubjects(), 1)

	stats := dash.Stats()
	assert.Equal(t, 1, stats.TemplateCount) // only Networks remains
}

func TestScopedWritesEmbedSelectedSubject(t *testing.T) {
	dash := newTeacherDashboard(t)

	algo := subjectByName(t, dash.MySubjects(), "Algorithms")
	require.NoError(t, dash.SelectSubject(ctx, algo.ID))

	var ivan portal.User
	for _, u := range dash.Roster() {
		if u.FirstName == "Ivan" {
			ivan = u
		}
	}
	require.NotZero(t, ivan.ID)

	form := teacher.GradeCreateForm{StudentID: ivan.ID, Value: 4, Description: "midterm"}
	require.NoError(t, dash.CreateGrade(ctx, form))

	grades := dash.Grades()
	var created *portal.Grade
	for i := range grades {
		if grades[i].Description == "midterm" {
			created = &grades[i]
		}
	}
	require.NotNil(t, created)
	require.NotNil(t, created.Subject)
	assert.Equal(t, algo.ID, created.Subject.ID)
}

func TestWritesRequireSelection(t *testing.T) {
	dash := newTeacherDashboard(t)

	err := dash.CreateGrade(ctx, teacher.GradeCreateForm{StudentID: 1, Value: 5})
	assert.Equal(t, teacher.ErrNoSubjectSelected, err)
}

func TestGradeValueOutOfRangeRejected(t *testing.T) {
	dash := newTeacherDashboard(t)

	algo := subjectByName(t, dash.MySubjects(), "Algorithms")
	require.NoError(t, dash.SelectSubject(ctx, algo.ID))

	err := dash.CreateGrade(ctx, teacher.GradeCreateForm{StudentID: 1, Value: 7})
	require.Error(t, err)
	_, ok := err.(*core.ValidationError)
	assert.True(t, ok, "expected a validation error, got %T", err)
}

// submissionPostCounter wraps the fake backend and counts submission POSTs,
// so tests can assert a blocked write never reached the wire.
func newCountedDashboard(t *testing.T) (*teacher.Dashboard, *int32) {
	t.Helper()
	db := fakeapi.OpenDB()
	fakeapi.SeedDemo(db)
	app := fakeapi.NewServer(&fakeapi.Options{DisableReqLogs: true, DB: db})

	var posts int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/api/teacher/lab-submissions") {
			atomic.AddInt32(&posts, 1)
		}
		app.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	anon := api.NewClient(ts.URL+"/api", nil, nil)
	identity, err := anon.Auth().Login(ctx, "teacher@example.com", "teacher123")
	require.NoError(t, err)
	client := api.NewClient(ts.URL+"/api", func() string { return identity.Token }, nil)

	dash := teacher.NewDashboard(client, nil, identity.UserID)
	require.NoError(t, dash.Refresh(ctx))
	return dash, &posts
}

func TestCreateSubmissionOverMaxPointsNeverReachesWire(t *testing.T) {
	dash, posts := newCountedDashboard(t)

	algo := subjectByName(t, dash.MySubjects(), "Algorithms")
	require.NoError(t, dash.SelectSubject(ctx, algo.ID))

	var sorting portal.LabTemplate
	for _, tpl := range dash.LabTemplates() {
		if tpl.Title == "Sorting" {
			sorting = tpl
		}
	}
	require.NotZero(t, sorting.ID)
	require.Equal(t, 10, sorting.MaxPoints)

	var ivan portal.User
	for _, u := range dash.Roster() {
		if u.FirstName == "Ivan" {
			ivan = u
		}
	}

	form := teacher.LabSubmissionCreateForm{
		LabTemplateID: sorting.ID,
		StudentID:     ivan.ID,
		Points:        15,
	}
	err := dash.CreateLabSubmission(ctx, form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(10)")
	assert.Zero(t, atomic.LoadInt32(posts))

	form.Points = 10
	require.NoError(t, dash.CreateLabSubmission(ctx, form))
	assert.Equal(t, int32(1), atomic.LoadInt32(posts))

	var found bool
	for _, sub := range dash.LabSubmissions() {
		if sub.Points == 10 && sub.Status == portal.StatusGraded &&
			sub.Student != nil && sub.Student.ID == ivan.ID &&
			sub.LabTemplate != nil && sub.LabTemplate.ID == sorting.ID {
			found = true
		}
	}
	assert.True(t, found, "graded submission missing from the scoped list")
}

func TestGradeSubmissionUsesEmbeddedTemplateCap(t *testing.T) {
	dash := newTeacherDashboard(t)

	algo := subjectByName(t, dash.MySubjects(), "Algorithms")
	require.NoError(t, dash.SelectSubject(ctx, algo.ID))

	var pending portal.LabSubmission
	for _, sub := range dash.LabSubmissions() {
		if sub.Status == portal.StatusPending {
			pending = sub
		}
	}
	require.NotZero(t, pending.ID)
	require.NotNil(t, pending.LabTemplate)

	over := teacher.LabSubmissionGradeForm{
		ID:     pending.ID,
		Points: pending.LabTemplate.MaxPoints + 1,
		Status: portal.StatusGraded,
	}
	err := dash.GradeLabSubmission(ctx, over)
	require.Error(t, err)

	ok := teacher.LabSubmissionGradeForm{
		ID:      pending.ID,
		Points:  pending.LabTemplate.MaxPoints,
		Status:  portal.StatusGraded,
		Comment: "well done",
	}
	require.NoError(t, dash.GradeLabSubmission(ctx, ok))

	for _, sub := range dash.LabSubmissions() {
		if sub.ID == pending.ID {
			assert.Equal(t, portal.StatusGraded, sub.Status)
			assert.NotNil(t, sub.GradedAt)
		}
	}
}
