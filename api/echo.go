/*
 *  Copyright 2018 KardiaChain
 *  This file is part of the go-kardia library.
 *
 *  The go-kardia library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The go-kardia library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 *  GNU Lesser General Public License for more details.
 *
 *  You should have received a copy of the GNU Lesser General Public License
 *  along with the go-kardia library. If not, see <http://www.gnu.org/licenses/>.
 */

package api

import (
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"

	"github.com/akojamsy/voting-system/cfg"
)

type restDefinition struct {
	method      string
	path        string
	fn          func(c echo.Context) error
	middlewares []echo.MiddlewareFunc
}

func bind(gr *echo.Group, srv RestServer) {
	member := []echo.MiddlewareFunc{srv.Authenticate()}
	admin := []echo.MiddlewareFunc{srv.Authenticate(), srv.RequireAdmin()}
	apis := []restDefinition{
		{
			method:      echo.GET,
			path:        "/ping",
			fn:          srv.Ping,
			middlewares: nil,
		},
		// Auth
		{
			method: echo.POST,
			path:   "/auth/login",
			fn:     srv.Login,
		},
		{
			method: echo.POST,
			path:   "/auth/register",
			fn:     srv.Register,
		},
		{
			method:      echo.POST,
			path:        "/auth/logout",
			fn:          srv.Logout,
			middlewares: member,
		},
		// Bills
		{
			method: echo.GET,
			// Query params: ?status=active&page=1&limit=10
			path: "/bills",
			fn:   srv.Bills,
		},
		{
			method: echo.GET,
			path:   "/bills/active",
			fn:     srv.ActiveBill,
		},
		{
			method: echo.GET,
			path:   "/bills/:billID",
			fn:     srv.Bill,
		},
		{
			method: echo.GET,
			path:   "/bills/:billID/votes",
			fn:     srv.BillVotes,
		},
		{
			method:      echo.POST,
			path:        "/bills/:billID/votes",
			fn:          srv.CastVote,
			middlewares: member,
		},
		{
			method:      echo.POST,
			path:        "/bills",
			fn:          srv.CreateBill,
			middlewares: admin,
		},
		{
			method:      echo.PUT,
			path:        "/bills/:billID",
			fn:          srv.UpdateBill,
			middlewares: admin,
		},
		{
			method:      echo.POST,
			path:        "/bills/:billID/close",
			fn:          srv.CloseVoting,
			middlewares: admin,
		},
		// Members
		{
			method: echo.GET,
			path:   "/members",
			fn:     srv.Members,
		},
		{
			method:      echo.POST,
			path:        "/members",
			fn:          srv.AddMember,
			middlewares: admin,
		},
		{
			method:      echo.PUT,
			path:        "/members/:memberID",
			fn:          srv.UpdateMember,
			middlewares: admin,
		},
		{
			method:      echo.DELETE,
			path:        "/members/:memberID",
			fn:          srv.DeleteMember,
			middlewares: admin,
		},
		{
			method: echo.GET,
			path:   "/analytics",
			fn:     srv.Analytics,
		},
		{
			method:      echo.GET,
			path:        "/me/votes",
			fn:          srv.MyVotes,
			middlewares: member,
		},
	}
	for _, api := range apis {
		gr.Add(api.method, api.path, api.fn, api.middlewares...)
	}
}

// New builds the echo instance with every route mounted under /api/v1.
func New(srv RestServer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()

	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Gzip())
	e.Use(middleware.Recover())

	v1Gr := e.Group("/api/v1")
	bind(v1Gr, srv)
	return e
}

func Start(e *echo.Echo, cfg cfg.VotingConfig) error {
	return e.Start(cfg.Port)
}
