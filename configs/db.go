package configs

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB opens the shared client and verifies the deployment with a ping.
// The returned database handle is passed down to the repositories; there is
// no package-level singleton.
func ConnectDB(ctx context.Context, cfg *Config) (*mongo.Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI()).
		SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, err
	}

	if err := client.Database("admin").
		RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return nil, err
	}

	return client.Database(cfg.DBName), nil
}
