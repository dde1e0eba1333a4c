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
// Package api
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo"

	"github.com/akojamsy/voting-system/types"
)

var (
	OK             = EchoResponse{StatusCode: http.StatusOK, Code: 1000, Msg: "Success"}
	InternalServer = EchoResponse{StatusCode: http.StatusInternalServerError, Code: 1100, Msg: "Server busy..."}
	Invalid        = EchoResponse{StatusCode: http.StatusBadRequest, Code: 1101, Msg: "Bad request"}
	NotFound       = EchoResponse{StatusCode: http.StatusNotFound, Code: 1102, Msg: "Not found"}
	Conflict       = EchoResponse{StatusCode: http.StatusConflict, Code: 1103, Msg: "Conflict"}
	Unauthorized   = EchoResponse{StatusCode: http.StatusUnauthorized, Code: 401, Msg: "Unauthorized"}
	Forbidden      = EchoResponse{StatusCode: http.StatusForbidden, Code: 403, Msg: "Forbidden"}
)

type PagingResponse struct {
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total int         `json:"total"`
	Data  interface{} `json:"data"`
}

type EchoResponse struct {
	StatusCode int         `json:"-"`
	Code       int         `json:"code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data,omitempty"`
}

// SetData returns a copy carrying data, leaving the shared response values untouched.
func (r EchoResponse) SetData(data interface{}) *EchoResponse {
	r.Data = data
	return &r
}

func (r EchoResponse) SetMsg(msg string) *EchoResponse {
	r.Msg = msg
	return &r
}

func (r *EchoResponse) Build(c echo.Context) error {
	return c.JSON(r.StatusCode, r)
}

// errResponse maps domain errors onto response values.
func errResponse(err error) *EchoResponse {
	switch {
	case errors.Is(err, types.ErrBillNotFound), errors.Is(err, types.ErrMemberNotFound):
		return NotFound.SetMsg(err.Error())
	case errors.Is(err, types.ErrBillNotActive), errors.Is(err, types.ErrAlreadyVoted), errors.Is(err, types.ErrEmailTaken):
		return Conflict.SetMsg(err.Error())
	case errors.Is(err, types.ErrInvalidVote), errors.Is(err, types.ErrInvalidStatus), errors.Is(err, types.ErrInvalidRole):
		return Invalid.SetMsg(err.Error())
	case errors.Is(err, types.ErrInvalidCredentials), errors.Is(err, types.ErrSessionNotFound), errors.Is(err, types.ErrUserNotFound):
		return Unauthorized.SetMsg(err.Error())
	}
	return InternalServer.SetData(nil)
}
