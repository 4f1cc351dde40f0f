package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scut1er/studentportal/core"
	"github.com/scut1er/studentportal/core/admin"
	"github.com/scut1er/studentportal/core/portal"
	testutil "github.com/scut1er/studentportal/tests"
)

var ctx = context.Background()

func newAdminDashboard(t *testing.T) *admin.Dashboard {
	t.Helper()
	_, ts := testutil.StartServer(t, true)
	client, _ := testutil.Login(t, ts, "admin@example.com", "admin123")
	return admin.NewDashboard(client, nil)
}

func userByEmail(users []portal.User, email string) (portal.User, bool) {
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return portal.User{}, false
}

func TestCreateThenEditUserWithoutPassword(t *testing.T) {
	dash := newAdminDashboard(t)

	create := admin.UserCreateForm{
		Email:        "a@b.com",
		Password:     "x",
		FirstName:    "A",
		LastName:     "B",
		Role:         portal.RoleStudent,
		StudentGroup: "G1",
	}
	require.NoError(t, dash.CreateUser(ctx, create))

	created, ok := userByEmail(dash.Users(), "a@b.com")
	require.True(t, ok, "created user missing from list")
	assert.Equal(t, portal.RoleStudent, created.Role)
	assert.Equal(t, "G1", created.StudentGroup)

	// role edit has no password field and asks for a department instead
	update := admin.UserUpdateForm{
		ID:         created.ID,
		Email:      "a@b.com",
		FirstName:  "A",
		LastName:   "B",
		Role:       portal.RoleTeacher,
		Department: "CS",
	}
	require.NoError(t, dash.UpdateUser(ctx, update))

	updated, ok := userByEmail(dash.Users(), "a@b.com")
	require.True(t, ok)
	assert.Equal(t, portal.RoleTeacher, updated.Role)
	assert.Equal(t, "CS", updated.Department)
}

func TestCreateUserPasswordSimilarToEmailRejected(t *testing.T) {
	dash := newAdminDashboard(t)
	require.NoError(t, dash.OpenTab(ctx, admin.TabUsers))
	before := len(dash.Users())

	form := admin.UserCreateForm{
		Email:     "carol@example.com",
		Password:  "carol@example.com",
		FirstName: "Carol",
		LastName:  "Jones",
		Role:      portal.RoleAdmin,
	}
	err := dash.CreateUser(ctx, form)
	require.Error(t, err)
	vErr, ok := err.(*core.ValidationError)
	require.True(t, ok, "expected a validation error, got %T", err)
	require.NotEmpty(t, vErr.Fields)
	assert.Equal(t, "password", vErr.Fields[0].Field)

	require.NoError(t, dash.OpenTab(ctx, admin.TabUsers))
	assert.Len(t, dash.Users(), before)
}

func TestDuplicateEmailSurfacesServerMessage(t *testing.T) {
	dash := newAdminDashboard(t)

	form := admin.UserCreateForm{
		Email:     "student@example.com", // seeded
		Password:  "zq81!pass",
		FirstName: "Clone",
		LastName:  "User",
		Role:      portal.RoleAdmin,
	}
	err := dash.CreateUser(ctx, form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "taken")
}

func TestSubjectTabReloadsAfterMutation(t *testing.T) {
	dash := newAdminDashboard(t)
	require.NoError(t, dash.OpenTab(ctx, admin.TabSubjects))
	before := len(dash.Subjects())

	require.NoError(t, dash.CreateSubject(ctx, admin.SubjectCreateForm{Name: "Compilers"}))
	assert.Len(t, dash.Subjects(), before+1)

	var compilers portal.Subject
	for _, s := range dash.Subjects() {
		if s.Name == "Compilers" {
			compilers = s
		}
	}
	require.NotZero(t, compilers.ID)

	require.NoError(t, dash.UpdateSubject(ctx, admin.SubjectUpdateForm{
		ID:                compilers.ID,
		SubjectCreateForm: admin.SubjectCreateForm{Name: "Compilers", Description: "lexing and parsing"},
	}))

	require.NoError(t, dash.DeleteSubject(ctx, compilers.ID))
	assert.Len(t, dash.Subjects(), before)
}

func TestRecordTabsListAndDelete(t *testing.T) {
	dash := newAdminDashboard(t)

	require.NoError(t, dash.OpenTab(ctx, admin.TabGrades))
	grades := dash.Grades()
	require.NotEmpty(t, grades)

	require.NoError(t, dash.DeleteGrade(ctx, grades[0].ID))
	assert.Len(t, dash.Grades(), len(grades)-1)

	require.NoError(t, dash.OpenTab(ctx, admin.TabLabSubmissions))
	require.NotEmpty(t, dash.LabSubmissions())

	require.NoError(t, dash.OpenTab(ctx, admin.TabAttestations))
	require.NotEmpty(t, dash.Attestations())
}
