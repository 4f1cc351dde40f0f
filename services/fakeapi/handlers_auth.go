package fakeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/scut1er/studentportal/core/portal"
)

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) registerAuthAPI(g *echo.Group) {
	ag := g.Group("/auth")
	ag.POST("/login", s.login)
	ag.POST("/register", s.register)
}

func (s *Server) login(ctx echo.Context) error {
	data := new(authRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	usr, err := s.authenticate(data.Email, data.Password)
	if err != nil {
		return err
	}

	token, err := generateToken(userClaims(usr))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, portal.Identity{
		Token:     token,
		Email:     usr.Email,
		FirstName: usr.FirstName,
		LastName:  usr.LastName,
		Role:      usr.Role,
		UserID:    usr.ID,
	})
}

func (s *Server) register(ctx echo.Context) error {
	data := new(portal.UserInput)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if _, _, exists := s.db.userByEmail(data.Email); exists {
		return echo.NewHTTPError(http.StatusBadRequest, "Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usr := s.db.createUser(portal.User{
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         data.Role,
		StudentGroup: data.StudentGroup,
		Department:   data.Department,
	}, hash)
	return ctx.JSON(http.StatusOK, usr)
}
