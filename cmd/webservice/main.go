package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/planeta-guru/storefront-service/config"
	"github.com/planeta-guru/storefront-service/internal/app"
)

func main() {
	conf := config.CreateNewConfig()

	gateway := app.App{Config: conf}
	if err := gateway.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start storefront gateway")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := gateway.StopServer(); err != nil {
		log.Error().Err(err).Msg("Failed to stop server cleanly")
	}
}
