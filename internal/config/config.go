package config

import (
	"fmt"

	"github.com/spf13/viper"

	"cannonade/internal/game"
)

// Load reads duel.cfg.json from configDir and returns the engine config.
// Every key has a default from game.DefaultConfig, so a missing file is
// not an error; the defaults simply apply.
func Load(configDir string) (game.Config, error) {
	cfg := game.DefaultConfig()

	viper.SetDefault("playfield.width", cfg.Width)
	viper.SetDefault("playfield.height", cfg.Height)

	viper.SetDefault("physics.gravity", cfg.Gravity)
	viper.SetDefault("physics.timeStep", cfg.TimeStep)
	viper.SetDefault("physics.explosionRadius", cfg.ExplosionRadius)

	viper.SetDefault("terrain.minControlPoints", cfg.MinControlPoints)
	viper.SetDefault("terrain.maxControlPoints", cfg.MaxControlPoints)
	viper.SetDefault("terrain.minElev", cfg.MinElev)
	viper.SetDefault("terrain.maxElev", cfg.MaxElev)
	viper.SetDefault("terrain.floor", cfg.Floor)
	viper.SetDefault("terrain.extremeProb", cfg.ExtremeProb)

	viper.SetDefault("station.width", cfg.StationW)
	viper.SetDefault("station.height", cfg.StationH)
	viper.SetDefault("station.marginX", cfg.MarginX)
	viper.SetDefault("station.marginY", cfg.MarginY)

	viper.SetDefault("input.minAngle", cfg.MinAngle)
	viper.SetDefault("input.maxAngle", cfg.MaxAngle)
	viper.SetDefault("input.minPower", cfg.MinPower)
	viper.SetDefault("input.maxPower", cfg.MaxPower)

	viper.SetDefault("bounds.closedTop", cfg.ClosedTop)

	viper.SetConfigName("duel.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg.Width = viper.GetInt("playfield.width")
	cfg.Height = viper.GetInt("playfield.height")
	cfg.Gravity = viper.GetFloat64("physics.gravity")
	cfg.TimeStep = viper.GetFloat64("physics.timeStep")
	cfg.ExplosionRadius = viper.GetFloat64("physics.explosionRadius")
	cfg.MinControlPoints = viper.GetInt("terrain.minControlPoints")
	cfg.MaxControlPoints = viper.GetInt("terrain.maxControlPoints")
	cfg.MinElev = viper.GetFloat64("terrain.minElev")
	cfg.MaxElev = viper.GetFloat64("terrain.maxElev")
	cfg.Floor = viper.GetFloat64("terrain.floor")
	cfg.ExtremeProb = viper.GetFloat64("terrain.extremeProb")
	cfg.StationW = viper.GetFloat64("station.width")
	cfg.StationH = viper.GetFloat64("station.height")
	cfg.MarginX = viper.GetFloat64("station.marginX")
	cfg.MarginY = viper.GetFloat64("station.marginY")
	cfg.MinAngle = viper.GetFloat64("input.minAngle")
	cfg.MaxAngle = viper.GetFloat64("input.maxAngle")
	cfg.MinPower = viper.GetFloat64("input.minPower")
	cfg.MaxPower = viper.GetFloat64("input.maxPower")
	cfg.ClosedTop = viper.GetBool("bounds.closedTop")

	return cfg, nil
}
