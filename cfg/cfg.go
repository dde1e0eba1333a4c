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

// Package cfg
package cfg

import (
	"os"
	"strconv"
	"time"
)

const (
	ModeDev        = "dev"
	ModeProduction = "prod"
)

const ServerVersion = "1.0.0"

type VotingConfig struct {
	ServerMode string
	Port       string

	LogLevel  string
	SentryDSN string

	DefaultAPITimeout time.Duration

	// NodeID identifies this process to the snowflake id generator, 0..15.
	NodeID int64

	CacheEngine  string
	CacheURL     string
	CacheDB      int
	CacheIsFlush bool
	SessionTTL   time.Duration

	StorageDriver  string
	StorageURI     string
	StorageDB      string
	StorageDir     string
	StorageMinConn int
	StorageMaxConn int
	StorageIsFlush bool
}

func New() (VotingConfig, error) {
	apiDefaultTimeoutStr := os.Getenv("DEFAULT_API_TIMEOUT")
	apiDefaultTimeout, err := strconv.Atoi(apiDefaultTimeoutStr)
	if err != nil {
		apiDefaultTimeout = 2
	}

	nodeIDStr := os.Getenv("NODE_ID")
	nodeID, err := strconv.ParseInt(nodeIDStr, 10, 64)
	if err != nil {
		nodeID = 1
	}

	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		cacheDB = 0
	}

	cacheIsFlushStr := os.Getenv("CACHE_IS_FLUSH")
	cacheIsFlush, err := strconv.ParseBool(cacheIsFlushStr)
	if err != nil {
		cacheIsFlush = false
	}

	sessionTTLStr := os.Getenv("SESSION_TTL")
	sessionTTL, err := time.ParseDuration(sessionTTLStr)
	if err != nil {
		sessionTTL = 12 * time.Hour
	}

	storageMinConnStr := os.Getenv("STORAGE_MIN_CONN")
	storageMinConn, err := strconv.Atoi(storageMinConnStr)
	if err != nil {
		storageMinConn = 8
	}

	storageMaxConnStr := os.Getenv("STORAGE_MAX_CONN")
	storageMaxConn, err := strconv.Atoi(storageMaxConnStr)
	if err != nil {
		storageMaxConn = 32
	}

	storageIsFlushStr := os.Getenv("STORAGE_IS_FLUSH")
	storageIsFlush, err := strconv.ParseBool(storageIsFlushStr)
	if err != nil {
		storageIsFlush = false
	}

	serverMode := os.Getenv("SERVER_MODE")
	if serverMode == "" {
		serverMode = ModeDev
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = ":3000"
	}
	storageDriver := os.Getenv("STORAGE_DRIVER")
	if storageDriver == "" {
		storageDriver = "file"
	}

	cfg := VotingConfig{
		ServerMode:        serverMode,
		Port:              port,
		LogLevel:          os.Getenv("LOG_LEVEL"),
		SentryDSN:         os.Getenv("SENTRY_DSN"),
		DefaultAPITimeout: time.Duration(apiDefaultTimeout) * time.Second,
		NodeID:            nodeID,

		CacheEngine:  os.Getenv("CACHE_ENGINE"),
		CacheURL:     os.Getenv("CACHE_URI"),
		CacheDB:      cacheDB,
		CacheIsFlush: cacheIsFlush,
		SessionTTL:   sessionTTL,

		StorageDriver:  storageDriver,
		StorageURI:     os.Getenv("STORAGE_URI"),
		StorageDB:      os.Getenv("STORAGE_DB"),
		StorageDir:     os.Getenv("STORAGE_DIR"),
		StorageMinConn: storageMinConn,
		StorageMaxConn: storageMaxConn,
		StorageIsFlush: storageIsFlush,
	}

	return cfg, nil
}
