package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pvdata/pitchdata/internal/api/fbref"
	"github.com/pvdata/pitchdata/internal/api/fotmob"
	"github.com/pvdata/pitchdata/internal/api/sofascore"
	"github.com/pvdata/pitchdata/internal/config"
	"github.com/pvdata/pitchdata/internal/export"
	"github.com/pvdata/pitchdata/internal/repository/memory"
	"github.com/pvdata/pitchdata/internal/scheduler"
	"github.com/pvdata/pitchdata/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	sofaAPI := sofascore.NewAPI(sofascore.NewClient())
	fotmobAPI := fotmob.NewAPI(fotmob.NewClient())
	fbrefAPI := fbref.NewAPI(fbref.NewClient())

	repo := memory.NewRepository()
	sink := export.NewWriter(cfg.Collector.OutputDir)
	collector := service.NewCollectorService(sofaAPI, fotmobAPI, fbrefAPI, repo, sink, cfg.Collector.Delay)

	runConfig := service.RunConfig{
		SofascoreLeagueURL: cfg.Sofascore.LeagueURL,
		FotmobLeagueID:     cfg.Fotmob.LeagueID,
		FbrefLeagueURL:     cfg.Fbref.LeagueURL,
		FbrefLeagueID:      cfg.Fbref.LeagueID,
	}

	if !cfg.Schedule.Enabled {
		collector.Run(runConfig)
		return nil
	}

	sched, err := scheduler.NewScheduler(collector, runConfig)
	if err != nil {
		return err
	}

	if err := sched.Start(cfg.Schedule.Hour, cfg.Schedule.Minute); err != nil {
		return err
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}
