package bootstrap

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stagearchive/catalogue/mongo"
)

func NewMongoDatabase(env *Env) mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.DBURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mongo client")
	}

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mongo")
	}

	err = client.Ping(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to ping mongo")
	}

	return client
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}

	err := client.Disconnect(context.TODO())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to disconnect mongo")
	}

	log.Info().Msg("Connection to MongoDB closed.")
}
