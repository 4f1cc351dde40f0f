// Package fakeapi is an in-memory double of the portal backend, faithful to
// the documented HTTP contract. The integration tests run the client library
// against it, and apps/devserver exposes it for local development.
package fakeapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/scut1er/studentportal/core"
)

type Options struct {
	Address        string
	DisableReqLogs bool
	DB             *DB
}

type Server struct {
	opts *Options
	app  *echo.Echo
	db   *DB
}

func NewServer(opts *Options) *Server {
	if opts.DB == nil {
		opts.DB = OpenDB()
	}
	s := &Server{
		opts: opts,
		app:  echo.New(),
		db:   opts.DB,
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	s.app.HideBanner = true
	s.app.Debug = core.Conf.GetBool("debug")

	g := s.app.Group("/api")
	jwt := middleware.JWTWithConfig(jwtConfig)

	s.registerAuthAPI(g)
	s.registerStudentAPI(g, jwt)
	s.registerTeacherAPI(g, jwt)
	s.registerAdminAPI(g, jwt)
}

func (s *Server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
