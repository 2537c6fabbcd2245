package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/budget"
	"github.com/pocket-ledger/backend/internal/config"
	"github.com/pocket-ledger/backend/internal/metrics"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/router"
	"github.com/pocket-ledger/backend/internal/scheduler"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

//go:generate swag init -g main.go -o api --outputTypes go

// @title						Pocket Ledger
// @description				The backend for Pocket Ledger, an expense tracker with budget limits and savings goals.
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	// Environment variables from a .env file are available
	// for all settings, including the gin mode
	cfg := config.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	err := run(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func run(cfg *config.Config) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}

	// Validate guarantees that these do not fail
	url, _ := cfg.URL()
	ttl, _ := cfg.TTL()
	location, _ := cfg.Location()

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	err = models.Connect(cfg.DatabaseFile())
	if err != nil {
		return err
	}

	opts := &router.Options{
		Auth:      auth.NewService(cfg.JWTSecret, ttl),
		Evaluator: budget.NewEvaluator(budget.SystemClock{Location: location}),
		Metrics:   metrics.New(),
	}

	r, err := router.Config(url, opts)
	if err != nil {
		return err
	}
	router.AttachRoutes(r.Group(url.Path), opts)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("listening")

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if cfg.ScheduleEnabled() {
		g.Go(func() error {
			return scheduler.New(cfg.WarningSchedule, opts.Evaluator, opts.Auth, opts.Metrics).Run(ctx)
		})
	}

	err = g.Wait()

	sqlDB, dbErr := models.DB.DB()
	if dbErr == nil {
		sqlDB.Close()
	}

	return err
}
