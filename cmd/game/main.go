package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"cannonade/internal/config"
	"cannonade/internal/game"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Float64("gravity", cfg.Gravity).
		Float64("explosionRadius", cfg.ExplosionRadius).
		Msg("starting duel")

	ebiten.SetWindowTitle("Cannonade")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		logger.Fatal().Err(err).Msg("game exited")
	}
}
