package api

import (
	"strings"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/akojamsy/voting-system/types"
)

const (
	ctxUser  = "user"
	ctxToken = "token"
)

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// Authenticate resolves the bearer token to a session user.
func (s *Server) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return Unauthorized.Build(c)
			}
			ctx, cancel := s.requestContext(c)
			user, err := s.directory.Session(ctx, token)
			cancel()
			if err != nil {
				s.logger.Debug("Rejected session", zap.Error(err))
				return Unauthorized.Build(c)
			}
			c.Set(ctxUser, user)
			c.Set(ctxToken, token)
			return next(c)
		}
	}
}

// RequireAdmin must run after Authenticate.
func (s *Server) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := currentUser(c)
			if !ok {
				return Unauthorized.Build(c)
			}
			if !user.IsAdmin() {
				s.logger.Warn("Admin route refused", zap.Int64("userID", user.ID), zap.String("path", c.Path()))
				return Forbidden.Build(c)
			}
			return next(c)
		}
	}
}

func currentUser(c echo.Context) (types.User, bool) {
	user, ok := c.Get(ctxUser).(types.User)
	return user, ok
}
