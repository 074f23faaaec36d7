package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"parquea/internal/client"
	"parquea/internal/config"
	"parquea/internal/prefs"
	"parquea/internal/reviews"
	"parquea/internal/session"
	"parquea/internal/vehicles"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	parkingID := flag.Int("parking", 0, "parking lot to inspect on startup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg.App.Environment)

	store, err := prefs.Open(cfg.Prefs.Path, cfg.Session.UserID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open preference store")
	}
	defer store.Close()

	tokens := session.NewJWTTokenSource(cfg.Session.Token)
	api := client.New(cfg.API.BaseURL, tokens)
	api.HTTPClient.Timeout = time.Duration(cfg.API.TimeoutSeconds) * time.Second

	manager := vehicles.NewDefaultVehicleManager(store)
	vehicleSvc := vehicles.NewService(api, manager)
	reviewSvc := reviews.NewService(api)

	if *parkingID > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if tariff, err := api.GetTariff(ctx, *parkingID); err != nil {
			log.Warn().Err(err).Int("parking_id", *parkingID).Msg("tariff fetch failed")
		} else {
			log.Info().Str("name", tariff.Name).Float64("hourly_rate", tariff.HourlyRate).
				Int("available", tariff.AvailableSpaces).Msg("tariff")
		}
		agg := reviewSvc.ForParking(ctx, *parkingID)
		log.Info().Int("count", agg.Count).Float64("average", agg.AverageRating).
			Bool("synthesized", agg.Synthesized).Msg("reviews")
	}

	// Periodic refresh keeps the default-vehicle preference reconciled
	// against the live list even when the vehicles screen is never opened.
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Jobs.VehicleRefresh, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := vehicleSvc.List(ctx); err != nil {
			log.Warn().Err(err).Msg("vehicle refresh failed")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to schedule vehicle refresh")
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Info().Str("base_url", cfg.API.BaseURL).Msg("parquea client running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
}

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
