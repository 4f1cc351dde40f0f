package student_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scut1er/studentportal/api"
	"github.com/scut1er/studentportal/core/portal"
	"github.com/scut1er/studentportal/core/student"
	"github.com/scut1er/studentportal/services/fakeapi"
	testutil "github.com/scut1er/studentportal/tests"
)

var ctx = context.Background()

func TestRefreshLoadsAllSections(t *testing.T) {
	_, ts := testutil.StartServer(t, true)
	client, identity := testutil.Login(t, ts, "student@example.com", "student123")

	dash := student.NewDashboard(client, nil, identity.UserID)
	dash.Refresh(ctx)

	stats := dash.Stats()
	assert.InDelta(t, 4.33, stats.AverageGrade, 0.01)
	assert.Equal(t, 2, stats.CompletedLabs)
	assert.Equal(t, 3, stats.TotalLabs)
	assert.Equal(t, 9, stats.EarnedPoints)
	assert.Equal(t, 35, stats.MaxPossiblePoints)
	assert.InDelta(t, 75.0, stats.AttendanceRate, 0.01)
	assert.Len(t, stats.RecentGrades, 5)

	assert.Len(t, dash.Grades(), 6)
	assert.Len(t, dash.Labs(), 2)
	assert.Len(t, dash.Attestations(), 2)
	assert.Len(t, dash.Teachers(), 1)
}

func TestAttendanceSectionCapped(t *testing.T) {
	_, ts := testutil.StartServer(t, true)

	// pad attendance past the cap through the teacher surface
	teacherClient, _ := testutil.Login(t, ts, "teacher@example.com", "teacher123")
	subjects, err := teacherClient.Teacher().Subjects(ctx)
	require.NoError(t, err)
	studentClient, identity := testutil.Login(t, ts, "student@example.com", "student123")
	for i := 0; i < 5; i++ {
		_, err := teacherClient.Teacher().CreateAttendance(ctx, portal.AttendanceInput{
			Student: portal.Ref{ID: identity.UserID},
			Subject: portal.Ref{ID: subjects[0].ID},
			Date:    fmt.Sprintf("2026-05-%02d", i+1),
			Present: true,
		})
		require.NoError(t, err)
	}

	dash := student.NewDashboard(studentClient, nil, identity.UserID)
	dash.Refresh(ctx)

	assert.Len(t, dash.Attendance(), 10)
}

func TestFailedSectionRendersEmptyNotFatal(t *testing.T) {
	db := fakeapi.OpenDB()
	fakeapi.SeedDemo(db)
	app := fakeapi.NewServer(&fakeapi.Options{DisableReqLogs: true, DB: db})

	// grades reads fail; everything else passes through
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/grades") {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		app.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	anon := api.NewClient(ts.URL+"/api", nil, nil)
	identity, err := anon.Auth().Login(ctx, "student@example.com", "student123")
	require.NoError(t, err)
	client := api.NewClient(ts.URL+"/api", func() string { return identity.Token }, nil)

	dash := student.NewDashboard(client, nil, identity.UserID)
	dash.Refresh(ctx)

	assert.Empty(t, dash.Grades())
	assert.Len(t, dash.Labs(), 2)
	assert.NotEmpty(t, dash.Attestations())
}
