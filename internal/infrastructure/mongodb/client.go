package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names inside the application database.
const (
	UsersCollection      = "users"
	TeamsCollection      = "teams"
	ProjectsCollection   = "projects"
	TasksCollection      = "tasks"
	ActivitiesCollection = "activities"
)

// NewClient connects to MongoDB and verifies the connection with a ping.
// The caller owns the client and must Disconnect it on shutdown.
func NewClient(ctx context.Context, uri string, connTimeout time.Duration) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

func insertedIDHex(res *mongo.InsertOneResult) string {
	if res == nil {
		return ""
	}
	if oid, ok := res.InsertedID.(interface{ Hex() string }); ok {
		return oid.Hex()
	}
	return ""
}
