package database

import (
	"context"
	"time"

	"bookflow/config"
	"bookflow/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance. The gateway keeps a
// single collection (the audit trail); everything else is remote-owned.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection.
func InitDB() {
	logger := utils.GetLogger().Sugar()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		logger.Fatalf("database: failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatalf("database: failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	logger.Infof("database: connected to MongoDB (%s)", config.AppConfig.DatabaseName)
}

// GetDatabase returns the configured application database.
func GetDatabase() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}
