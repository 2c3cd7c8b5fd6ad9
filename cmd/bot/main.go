package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/jpizquierdo/qrcodegen/app/bot"
	corecmd "github.com/jpizquierdo/qrcodegen/core/cmd"
	coreconfig "github.com/jpizquierdo/qrcodegen/core/config"
)

func main() {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	err := corecmd.Run(corecmd.Options{
		Bootstrap: func(cfg *coreconfig.Config) (corecmd.TelegramApp, error) {
			return bot.New(cfg), nil
		},
	})
	if err != nil {
		log.Fatalf("bot exited: %v", err)
	}
}
