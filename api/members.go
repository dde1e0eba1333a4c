package api

import (
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/akojamsy/voting-system/types"
)

type memberRequest struct {
	Name         string `json:"name"`
	Party        string `json:"party"`
	Constituency string `json:"constituency"`
	Email        string `json:"email"`
}

func (r memberRequest) member(id int64) types.Member {
	return types.Member{
		ID:           id,
		Name:         r.Name,
		Party:        r.Party,
		Constituency: r.Constituency,
		Email:        r.Email,
	}
}

func (s *Server) bindMember(c echo.Context, id int64) (types.Member, error) {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return types.Member{}, err
	}
	m := req.member(id)
	if err := c.Validate(&m); err != nil {
		return types.Member{}, err
	}
	return m, nil
}

func (s *Server) Members(c echo.Context) error {
	return OK.SetData(s.directory.Members()).Build(c)
}

func (s *Server) AddMember(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "AddMember"))
	m, err := s.bindMember(c, 0)
	if err != nil {
		return Invalid.SetMsg(err.Error()).Build(c)
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	m, err = s.directory.AddMember(ctx, m)
	if err != nil {
		lgr.Error("Cannot add member", zap.Error(err))
		return errResponse(err).Build(c)
	}
	return OK.SetData(m).Build(c)
}

func (s *Server) UpdateMember(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "UpdateMember"))
	memberID, ok := paramID(c, "memberID")
	if !ok {
		return Invalid.Build(c)
	}
	m, err := s.bindMember(c, memberID)
	if err != nil {
		return Invalid.SetMsg(err.Error()).Build(c)
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	m, err = s.directory.UpdateMember(ctx, m)
	if err != nil {
		lgr.Warn("Cannot update member", zap.Int64("memberID", memberID), zap.Error(err))
		return errResponse(err).Build(c)
	}
	return OK.SetData(m).Build(c)
}

func (s *Server) DeleteMember(c echo.Context) error {
	memberID, ok := paramID(c, "memberID")
	if !ok {
		return Invalid.Build(c)
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	if err := s.directory.DeleteMember(ctx, memberID); err != nil {
		return errResponse(err).Build(c)
	}
	return OK.SetData(nil).Build(c)
}
