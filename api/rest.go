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
)

type RestServer interface {
	// General
	Ping(c echo.Context) error
	Analytics(c echo.Context) error

	// Auth
	Login(c echo.Context) error
	Register(c echo.Context) error
	Logout(c echo.Context) error
	Authenticate() echo.MiddlewareFunc
	RequireAdmin() echo.MiddlewareFunc

	// Bills
	Bills(c echo.Context) error
	ActiveBill(c echo.Context) error
	Bill(c echo.Context) error
	CreateBill(c echo.Context) error
	UpdateBill(c echo.Context) error
	CloseVoting(c echo.Context) error

	// Votes
	BillVotes(c echo.Context) error
	CastVote(c echo.Context) error
	MyVotes(c echo.Context) error

	// Members
	Members(c echo.Context) error
	AddMember(c echo.Context) error
	UpdateMember(c echo.Context) error
	DeleteMember(c echo.Context) error
}
