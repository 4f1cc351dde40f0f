package testutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/scut1er/studentportal/api"
	"github.com/scut1er/studentportal/core/portal"
	"github.com/scut1er/studentportal/services/fakeapi"
)

// StartServer boots a fake backend over httptest. Seeding is opt-in so tests
// can start from a clean slate.
func StartServer(t *testing.T, seed bool) (*fakeapi.DB, *httptest.Server) {
	t.Helper()
	db := fakeapi.OpenDB()
	if seed {
		fakeapi.SeedDemo(db)
	}
	app := fakeapi.NewServer(&fakeapi.Options{DisableReqLogs: true, DB: db})
	ts := httptest.NewServer(app)
	t.Cleanup(ts.Close)
	return db, ts
}

// Login authenticates against the fake backend and returns a client whose
// calls carry the obtained bearer token.
func Login(t *testing.T, ts *httptest.Server, email, pwd string) (*api.Client, portal.Identity) {
	t.Helper()
	anon := api.NewClient(ts.URL+"/api", nil, nil)
	identity, err := anon.Auth().Login(context.Background(), email, pwd)
	if err != nil {
		t.Fatalf("Login(%s) failed: %v", email, err)
	}
	client := api.NewClient(ts.URL+"/api", func() string { return identity.Token }, nil)
	return client, identity
}
