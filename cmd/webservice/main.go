package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shopscout/catalog-service/config"
	"github.com/shopscout/catalog-service/internal/app"
	"github.com/shopscout/catalog-service/internal/infrastructure/database/mongodb"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(
		fmt.Sprintf("mongodb://%s:%s", conf.MongoDBConfig.DBHost, conf.MongoDBConfig.DBPort),
		conf.MongoDBConfig.DBName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	defer db.Client().Disconnect(context.Background())

	application := app.App{DB: db, Config: conf}
	application.Start()
}
