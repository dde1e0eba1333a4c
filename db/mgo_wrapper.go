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

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MgoWrapper pins a database and a collection for the mongo adapter.
type MgoWrapper struct {
	DB  *mongo.Database
	col *mongo.Collection
}

func (w *MgoWrapper) Database(db *mongo.Database) {
	w.DB = db
}

func (w *MgoWrapper) C(name string) *MgoWrapper {
	return &MgoWrapper{DB: w.DB, col: w.DB.Collection(name)}
}

func (w *MgoWrapper) Upsert(ctx context.Context, filter interface{}, update interface{},
	opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	opts = append(opts, options.Update().SetUpsert(true))
	return w.col.UpdateOne(ctx, filter, bson.M{"$set": update}, opts...)
}

func (w *MgoWrapper) FindOne(ctx context.Context, filter interface{},
	opts ...*options.FindOneOptions) *mongo.SingleResult {
	return w.col.FindOne(ctx, filter, opts...)
}

func (w *MgoWrapper) DropDatabase(ctx context.Context) error {
	return w.DB.Drop(ctx)
}
