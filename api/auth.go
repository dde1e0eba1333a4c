package api

import (
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/akojamsy/voting-system/types"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	Name     string     `json:"name" validate:"required,max=200"`
	Role     types.Role `json:"role"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  types.Profile `json:"user"`
}

func (s *Server) Login(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "Login"))
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return Invalid.Build(c)
	}
	if err := c.Validate(&req); err != nil {
		return Invalid.SetMsg(err.Error()).Build(c)
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	token, user, err := s.directory.Login(ctx, req.Email, req.Password)
	if err != nil {
		lgr.Info("Login failed", zap.String("email", req.Email))
		return errResponse(err).Build(c)
	}
	return OK.SetData(loginResponse{Token: token, User: user.Profile()}).Build(c)
}

// Register creates a user account. Only a signed-in administrator may
// create another administrator.
func (s *Server) Register(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "Register"))
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return Invalid.Build(c)
	}
	if err := c.Validate(&req); err != nil {
		return Invalid.SetMsg(err.Error()).Build(c)
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	if req.Role == "" {
		req.Role = types.RoleUser
	}
	if req.Role == types.RoleAdmin {
		caller, err := s.directory.Session(ctx, bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)))
		if err != nil || !caller.IsAdmin() {
			lgr.Warn("Admin registration refused", zap.String("email", req.Email))
			return Forbidden.Build(c)
		}
	}
	user, err := s.directory.Register(ctx, req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		lgr.Warn("Cannot register user", zap.Error(err))
		return errResponse(err).Build(c)
	}
	return OK.SetData(user.Profile()).Build(c)
}

func (s *Server) Logout(c echo.Context) error {
	token, _ := c.Get(ctxToken).(string)
	ctx, cancel := s.requestContext(c)
	defer cancel()
	if err := s.directory.Logout(ctx, token); err != nil {
		return errResponse(err).Build(c)
	}
	return OK.SetData(nil).Build(c)
}
