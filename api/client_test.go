package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		code int
		body string
		want string
	}{
		{"echo object", 401, `{"message":"Invalid credentials"}`, "Invalid credentials"},
		{"error key", 400, `{"error":"missing or malformed jwt"}`, "missing or malformed jwt"},
		{"json string", 400, `"Subject not found"`, "Subject not found"},
		{"bare text", 500, "boom", "boom"},
		{"empty body", 404, "", "Not Found"},
		{"object without message", 422, `{"fields":["points"]}`, `{"fields":["points"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMessage(tt.code, []byte(tt.body)))
		})
	}
}

func TestBearerAndRequestIDHeaders(t *testing.T) {
	var gotAuth, gotReqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, func() string { return "tok123" }, nil)
	var out map[string]interface{}
	require.NoError(t, client.get(ctx, "/ping", &out))

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestAnonymousCallHasNoAuthHeader(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, nil, nil)
	require.NoError(t, client.get(ctx, "/ping", nil))
	assert.Empty(t, gotAuth)
}

func TestNon2xxBecomesStructuredError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Forbidden"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, nil, nil)
	err := client.get(ctx, "/admin/users", nil)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusForbidden))
	assert.Contains(t, err.Error(), "Forbidden")
}

func TestTransportFailureHasZeroStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	client := NewClient(ts.URL, nil, nil)
	err := client.get(ctx, "/ping", nil)
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok, "expected *Error, got %T", err)
	assert.Zero(t, apiErr.StatusCode)
}
