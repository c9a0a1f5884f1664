package main

import (
	"os"

	"hex/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := experiments.DefaultConfig()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		var err error
		cfg, err = experiments.LoadConfig(path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		log.Info().Msgf("loaded config from %s", path)
	}

	if _, err := experiments.RunThroughputExperiment(cfg); err != nil {
		log.Fatal().Err(err).Msg("throughput experiment failed")
	}
}
