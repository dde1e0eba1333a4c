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
	"time"

	"go.uber.org/zap"

	"github.com/akojamsy/voting-system/directory"
	"github.com/akojamsy/voting-system/voting"
)

type Server struct {
	serverVersion string
	storageDriver string
	timeout       time.Duration

	voting    *voting.Service
	directory *directory.Directory

	logger *zap.Logger
}

func NewServer() *Server {
	return &Server{
		timeout: 2 * time.Second,
		logger:  zap.NewNop(),
	}
}

func (s *Server) SetLogger(logger *zap.Logger) *Server {
	s.logger = logger
	return s
}

func (s *Server) SetVoting(svc *voting.Service) *Server {
	s.voting = svc
	return s
}

func (s *Server) SetDirectory(d *directory.Directory) *Server {
	s.directory = d
	return s
}

func (s *Server) SetTimeout(timeout time.Duration) *Server {
	if timeout > 0 {
		s.timeout = timeout
	}
	return s
}

func (s *Server) SetVersion(version, storageDriver string) *Server {
	s.serverVersion = version
	s.storageDriver = storageDriver
	return s
}
