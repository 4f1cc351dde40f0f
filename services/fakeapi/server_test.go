package fakeapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scut1er/studentportal/core/portal"
	testutil "github.com/scut1er/studentportal/tests"
)

var ctx = context.Background()

func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestLoginReturnsIdentity(t *testing.T) {
	_, ts := testutil.StartServer(t, true)

	resp := doJSON(t, ts, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "student@example.com",
		"password": "student123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var identity portal.Identity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&identity))
	assert.NotEmpty(t, identity.Token)
	assert.Equal(t, "student@example.com", identity.Email)
	assert.Equal(t, portal.RoleStudent, identity.Role)
	assert.NotZero(t, identity.UserID)
}

func TestLoginBadCredentials(t *testing.T) {
	_, ts := testutil.StartServer(t, true)

	resp := doJSON(t, ts, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "student@example.com",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	_, ts := testutil.StartServer(t, true)

	resp := doJSON(t, ts, http.MethodGet, "/api/teacher/students", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode) // echo's missing-jwt answer

	resp = doJSON(t, ts, http.MethodGet, "/api/teacher/students", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoleScopingEnforced(t *testing.T) {
	_, ts := testutil.StartServer(t, true)
	_, studentIdentity := testutil.Login(t, ts, "student@example.com", "student123")

	resp := doJSON(t, ts, http.MethodGet, "/api/admin/users", studentIdentity.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/api/teacher/students", studentIdentity.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	_, ts := testutil.StartServer(t, true)
	client, identity := testutil.Login(t, ts, "teacher@example.com", "teacher123")

	subjects, err := client.Teacher().Subjects(ctx)
	require.NoError(t, err)
	var dbs portal.Subject
	for _, s := range subjects {
		if s.Name == "Databases" {
			dbs = s
		}
	}
	require.NotZero(t, dbs.ID)

	require.NoError(t, client.Teacher().Subscribe(ctx, dbs.ID, identity.UserID))
	require.NoError(t, client.Teacher().Subscribe(ctx, dbs.ID, identity.UserID))

	mine, err := client.Teacher().MySubjects(ctx, identity.UserID)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
}

func TestServerRejectsPointsOverTemplateMax(t *testing.T) {
	_, ts := testutil.StartServer(t, true)
	client, identity := testutil.Login(t, ts, "teacher@example.com", "teacher123")

	subjects, err := client.Teacher().MySubjects(ctx, identity.UserID)
	require.NoError(t, err)
	templates, err := client.Teacher().LabTemplatesBySubject(ctx, subjects[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, templates)
	tpl := templates[0]

	students, err := client.Teacher().Students(ctx)
	require.NoError(t, err)

	_, err = client.Teacher().CreateLabSubmission(ctx, portal.LabSubmissionInput{
		LabTemplate: portal.Ref{ID: tpl.ID},
		Student:     portal.Ref{ID: students[0].ID},
		Points:      tpl.MaxPoints + 1,
		Status:      portal.StatusGraded,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum points")
}

func TestSubmissionCreateEmbedsServerTemplate(t *testing.T) {
	_, ts := testutil.StartServer(t, true)
	client, identity := testutil.Login(t, ts, "teacher@example.com", "teacher123")

	subjects, err := client.Teacher().MySubjects(ctx, identity.UserID)
	require.NoError(t, err)
	templates, err := client.Teacher().LabTemplatesBySubject(ctx, subjects[0].ID)
	require.NoError(t, err)
	tpl := templates[0]

	students, err := client.Teacher().Students(ctx)
	require.NoError(t, err)

	created, err := client.Teacher().CreateLabSubmission(ctx, portal.LabSubmissionInput{
		LabTemplate: portal.Ref{ID: tpl.ID},
		Student:     portal.Ref{ID: students[0].ID},
		Points:      tpl.MaxPoints,
		Status:      portal.StatusGraded,
	})
	require.NoError(t, err)
	require.NotNil(t, created.LabTemplate)
	assert.Equal(t, tpl.Title, created.LabTemplate.Title)
	assert.NotNil(t, created.SubmittedAt)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	_, ts := testutil.StartServer(t, true)

	payload := portal.UserInput{
		Email:     "student@example.com",
		Password:  "pass1234",
		FirstName: "Dup",
		LastName:  "User",
		Role:      portal.RoleStudent,
	}
	resp := doJSON(t, ts, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
