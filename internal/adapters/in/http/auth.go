package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Claims identify the caller: sub is the user id and role its current role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Authenticator verifies HS256 bearer tokens issued by the identity
// provider and turns them into actors.
type Authenticator struct {
	secret []byte
	now    func() time.Time
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret), now: time.Now}
}

// Issue signs a token for the given user. Used by local tooling and tests.
func (a *Authenticator) Issue(userID kernel.UUID, r role.Role, ttl time.Duration) (string, error) {
	now := a.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: r.String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Actor parses a raw token.
func (a *Authenticator) Actor(raw string) (user.Actor, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return user.Actor{}, errors.Join(ErrInvalidToken, err)
	}

	id, err := kernel.ParseUUID(claims.Subject)
	if err != nil {
		return user.Actor{}, errors.Join(ErrInvalidToken, err)
	}
	r, err := role.Parse(claims.Role)
	if err != nil {
		return user.Actor{}, errors.Join(ErrInvalidToken, err)
	}
	return user.NewActor(id, r)
}

// Middleware rejects requests without a valid bearer token and stores the
// actor on the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return writeAuthError(c, ErrMissingToken)
			}

			actor, err := a.Actor(strings.TrimSpace(raw))
			if err != nil {
				return writeAuthError(c, err)
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) user.Actor {
	actor, _ := c.Get(actorKey).(user.Actor)
	return actor
}

func writeAuthError(c echo.Context, err error) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		TraceID: traceIDFrom(c),
		Code:    "UNAUTHENTICATED",
		Message: err.Error(),
	})
}
