package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrNotConnected is returned by store operations when no client could be
// created at startup.
var ErrNotConnected = errors.New("database not connected")

// ClientOptions returns the options every client of this service is built
// with: Stable API v1 in strict mode, a per-operation timeout, and embedded
// documents decoded as bson.M so they encode to JSON objects.
func ClientOptions(uri string, timeout time.Duration) *options.ClientOptions {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if timeout > 0 {
		opts.SetTimeout(timeout)
	}
	return opts
}

// Connect creates the client. It does not verify the server is reachable;
// call Ping for that.
func Connect(uri string, timeout time.Duration) (*mongo.Client, error) {
	return mongo.Connect(ClientOptions(uri, timeout))
}

// Ping runs the ping command against the admin database.
func Ping(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return ErrNotConnected
	}
	return client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Database returns the named database, or nil when there is no client.
func Database(client *mongo.Client, name string) *mongo.Database {
	if client == nil {
		return nil
	}
	return client.Database(name)
}

// Collection returns the named collection, or nil when db is nil.
func Collection(db *mongo.Database, name string) *mongo.Collection {
	if db == nil {
		return nil
	}
	return db.Collection(name)
}
