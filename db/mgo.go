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
// Package db
package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const cCollections = "Collections"

type collectionDoc struct {
	Name      string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type mongoDB struct {
	logger  *zap.Logger
	client  *mongo.Client
	wrapper *MgoWrapper
}

func newMongoDB(cfg Config) (*mongoDB, error) {
	ctx := context.Background()
	dbClient := &mongoDB{
		logger:  cfg.Logger.With(zap.String("db", "mgo")),
		wrapper: &MgoWrapper{},
	}
	mgoOptions := options.Client()
	mgoOptions.ApplyURI(cfg.URL)
	mgoOptions.SetMinPoolSize(uint64(cfg.MinConn))
	mgoOptions.SetMaxPoolSize(uint64(cfg.MaxConn))
	mgoClient, err := mongo.NewClient(mgoOptions)
	if err != nil {
		return nil, err
	}

	if err := mgoClient.Connect(ctx); err != nil {
		return nil, err
	}
	dbClient.client = mgoClient
	dbClient.wrapper.Database(mgoClient.Database(cfg.DbName))

	if cfg.FlushDB {
		cfg.Logger.Info("Start flush database")
		if err := dbClient.wrapper.DropDatabase(ctx); err != nil {
			return nil, err
		}
	}
	return dbClient, nil
}

func (m *mongoDB) Load(ctx context.Context, name string) ([]byte, error) {
	var doc collectionDoc
	err := m.wrapper.C(cCollections).FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCollectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Payload), nil
}

func (m *mongoDB) Save(ctx context.Context, name string, data []byte) error {
	doc := bson.M{
		"payload":   string(data),
		"updatedAt": time.Now(),
	}
	if _, err := m.wrapper.C(cCollections).Upsert(ctx, bson.M{"_id": name}, doc); err != nil {
		m.logger.Warn("cannot upsert collection", zap.String("collection", name), zap.Error(err))
		return err
	}
	return nil
}

func (m *mongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
