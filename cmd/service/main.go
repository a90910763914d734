package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/config"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/db"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/logging"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/metrics"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/history"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/selection"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/users"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/volume"

	"github.com/google/uuid"
	"github.com/honeycombio/otel-config-go/otelconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	userIDRaw := flag.String("user", "", "user id to select a workout for")
	dateRaw := flag.String("date", "", "delivery date (YYYY-MM-DD), defaults to today UTC")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "workout-selector",
	})

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
		otelShutdown, err := otelconfig.ConfigureOpenTelemetry()
		if err != nil {
			log.Fatalf("configure opentelemetry: %s", err)
		}
		defer otelShutdown()
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	userID, err := uuid.Parse(*userIDRaw)
	if err != nil {
		log.Fatalf("invalid -user id: %s", err)
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if *dateRaw != "" {
		date, err = time.Parse(time.DateOnly, *dateRaw)
		if err != nil {
			log.Fatalf("invalid -date: %s", err)
		}
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.DBHost,
		DBPort:         cfg.DBPort,
		DBName:         cfg.DBName,
		TracingEnabled: honeycombEnabled,
	})
	if err != nil {
		log.Fatalf("create db pool: %s", err)
	}
	defer dbPool.Close()

	metricsManager := metrics.NewManager("workouts", "selector", prometheus.DefaultRegisterer)
	metricsManager.GaugeLifeSignal.Set(1)
	if err := db.RegisterPoolMetrics(dbPool, cfg.DBName, prometheus.DefaultRegisterer); err != nil {
		log.Errorf("register pool metrics: %s", err)
	}
	if cfg.PrometheusPort > 0 {
		go func() {
			addr := fmt.Sprintf(":%d", cfg.PrometheusPort)
			log.Debugf("serving prometheus metrics on %s", addr)
			if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
				log.Errorf("prometheus listener: %s", err)
			}
		}()
	}

	catalogRepo := catalog.NewCachedRepo(catalog.NewRepo(dbPool))
	usersRepo := users.NewRepo(dbPool)
	historyRepo := history.NewRepo(dbPool)
	tracker := volume.NewTracker(catalogRepo, historyRepo, volume.Config{
		WindowWeeks:      cfg.Domain.VolumeWindowWeeks,
		MinWeeks:         cfg.Domain.MinHistoryWeeks,
		TimeToRepFactor:  cfg.Domain.TimeToRepFactor,
		SecondaryWeight:  cfg.Domain.SecondaryMuscleWeight,
		StabilizerWeight: cfg.Domain.StabilizerMuscleWeight,
	})

	service := selection.NewService(selection.NewServiceParams{
		Catalog: catalogRepo,
		Users:   usersRepo,
		History: historyRepo,
		Volume:  tracker,
		Metrics: metricsManager,
		Domain:  cfg.Domain,
	})

	result, err := service.SelectWorkout(ctx, userID, date)
	if err != nil {
		log.Fatalf("select workout for user %s on %s: %s", userID, date.Format(time.DateOnly), err)
	}

	log.Infof("delivered workout %d: rotation %d, deload=%t, %d items",
		result.Workout.ID, result.Workout.RotationIndex, result.Workout.IsDeload, len(result.Workout.Items))
	for _, pick := range result.Picks {
		log.Infof("  [%s] %s - %s (%s, progression %d)",
			pick.Candidate.Link.Section,
			pick.Candidate.Exercise.Name,
			pick.Candidate.Variation.Name,
			pick.Intensity,
			pick.Progression,
		)
	}
}
