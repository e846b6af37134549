package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stagearchive/catalogue/api/route"
	"github.com/stagearchive/catalogue/bootstrap"
	"github.com/stagearchive/catalogue/mongo"
)

func main() {
	app := bootstrap.App()

	env := app.Env

	db := app.Mongo.Database(env.DBName)
	defer app.CloseDBConnection()

	mongo.CreateIndexes(db)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	if env.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.MaxMultipartMemory = int64(env.UploadMaxSizeMB*env.UploadMaxFiles) << 20

	if err := route.Setup(env, timeout, db, engine); err != nil {
		log.Fatal().Err(err).Msg("failed to set up routes")
	}

	log.Info().Str("address", env.ServerAddress).Msg("server starting")
	if err := engine.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
