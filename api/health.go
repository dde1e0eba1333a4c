package api

import (
	"github.com/labstack/echo"

	"github.com/akojamsy/voting-system/types"
)

func (s *Server) Ping(c echo.Context) error {
	status := &types.ServerStatus{
		Status:        "ONLINE",
		ServerVersion: s.serverVersion,
		StorageDriver: s.storageDriver,
	}
	return OK.SetData(status).Build(c)
}

func (s *Server) Analytics(c echo.Context) error {
	return OK.SetData(s.voting.Analytics()).Build(c)
}
