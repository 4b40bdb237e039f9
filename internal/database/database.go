package database

import (
	"context"
	"os"

	"github.com/mohadmed-adel/firebase-query-server/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func InitDatabase() *mongo.Database {
	mongoClient := InitMongoDB()

	dbName := os.Getenv("MONGO_DB_NAME")
	if dbName == "" {
		dbName = "geofence"
	}

	return mongoClient.Database(dbName)
}

func InitMongoDB() *mongo.Client {
	mongoUrl := os.Getenv("MONGO_URL")
	mongoPort := os.Getenv("MONGO_PORT")

	mongoStr := mongoUrl + mongoPort
	if os.Getenv("MONGO_TYPE") == "srv" {
		mongoStr = os.Getenv("MONGO_SRV_URL")
	}

	clientOptions := options.Client().ApplyURI(mongoStr)
	if os.Getenv("MONGO_TYPE") == "local" {
		clientOptions.SetAuth(options.Credential{
			Username: os.Getenv("MONGO_USERNAME"),
			Password: os.Getenv("MONGO_PASSWORD"),
		})
	}

	c, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		logger.AppLogger.Fatal().Err(err).Msg("CC: Error connecting to mongo")
		return nil
	}

	err = c.Ping(context.TODO(), nil)
	if err != nil {
		logger.AppLogger.Fatal().Err(err).Msg("CC: Error pinging mongo at " + mongoStr)
		return nil
	}

	logger.AppLogger.Info().Msg("CC: MongoDB connection established")

	return c
}
