package fakeapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/scut1er/studentportal/core/portal"
)

var (
	secretKey       = []byte("fakeapi-secret")
	expirationDelta = 7 * 24 * time.Hour

	errUnauthorized      = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errInvalidCreds      = echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	errHTTPForbidden     = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errHTTPNotFound      = echo.NewHTTPError(http.StatusNotFound, "not found")
	errTokenSigningFatal = echo.NewHTTPError(http.StatusInternalServerError, "could not sign token")

	jwtConfig = middleware.JWTConfig{
		SigningKey:    secretKey,
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "userToken",
		Claims:        new(claims),
	}
)

// claims carries the authorization payload of a token.
type claims struct {
	jwt.StandardClaims
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
}

func userClaims(usr portal.User) *claims {
	now := time.Now()
	return &claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    "StudentPortal",
			Subject:   strconv.FormatInt(usr.ID, 10),
			ExpiresAt: now.Add(expirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Role:   usr.Role,
		UserID: usr.ID,
	}
}

func generateToken(clms *claims) (string, error) {
	method := jwt.GetSigningMethod(jwtConfig.SigningMethod)
	token := jwt.NewWithClaims(method, clms)

	ss, err := token.SignedString(jwtConfig.SigningKey)
	if err != nil {
		return "", errTokenSigningFatal
	}
	return ss, nil
}

func (s *Server) authenticate(email, password string) (portal.User, error) {
	if usr, hash, ok := s.db.userByEmail(email); ok {
		if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err == nil {
			return usr, nil
		}
	}
	return portal.User{}, errInvalidCreds
}

func contextClaims(ctx echo.Context) (claims, error) {
	if token, ok := ctx.Get(jwtConfig.ContextKey).(*jwt.Token); ok {
		if clms, ok := token.Claims.(*claims); ok {
			return *clms, nil
		}
	}
	return claims{}, errUnauthorized
}

// roleMiddleware guards a group behind one of the given roles.
func roleMiddleware(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			clms, err := contextClaims(ctx)
			if err != nil {
				return err
			}
			for _, role := range roles {
				if clms.Role == role {
					return next(ctx)
				}
			}
			return errHTTPForbidden
		}
	}
}
