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

	"github.com/budget-steps/backend/internal/config"
	"github.com/budget-steps/backend/internal/controllers/healthz"
	v1 "github.com/budget-steps/backend/internal/controllers/v1"
	"github.com/budget-steps/backend/internal/identity"
	"github.com/budget-steps/backend/internal/ledger"
	"github.com/budget-steps/backend/internal/models"
	"github.com/budget-steps/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Logging is set up before validation so that configuration
	// problems are reported in the configured format
	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(output).With().Timestamp().Logger()

	err = cfg.Validate()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	db, err := models.Connect(cfg.Dialector())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	l, err := ledger.New(db, cfg.StepCacheSize)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer l.Close()

	r, err := router.Config(cfg.URL(), router.Options{
		AllowOrigins:     cfg.AllowOrigins(),
		EnablePprof:      cfg.EnablePprof,
		IdentityRequired: cfg.IdentityRequired,
	})
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(router.Controllers{
		V1:      v1.New(l, identity.NewAuthorizer(l)),
		Healthz: healthz.New(db),
	}, r.Group("/"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("address", srv.Addr).Str("driver", cfg.DBDriver).Msg("starting server")
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if err != nil {
		log.Error().Msg(err.Error())
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	log.Info().Msg("server stopped")
}
