package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nurpe/nomina-settlement/internal/config"
	"github.com/nurpe/nomina-settlement/internal/db"
	"github.com/nurpe/nomina-settlement/internal/excel"
	httphandler "github.com/nurpe/nomina-settlement/internal/http"
	"github.com/nurpe/nomina-settlement/internal/logger"
	"github.com/nurpe/nomina-settlement/internal/pdf"
	"github.com/nurpe/nomina-settlement/internal/repository"
	"github.com/nurpe/nomina-settlement/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	var holidays service.HolidaySource
	if cfg.DB.Enabled() {
		database, err := db.New(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect database")
		}
		holidays = repository.NewHolidayRepository(database)
	} else {
		log.Info().Msg("DB_DSN not set, using built-in holiday calendar")
	}

	engine, err := service.BuildEngine(context.Background(), cfg.Payroll, holidays)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build settlement engine")
	}
	log.Info().
		Int("holidays", engine.Calendar().Len()).
		Str("overtime_policy", string(engine.Rates().Policy())).
		Msg("settlement engine ready")

	settlementService := service.NewSettlementService(engine, excel.NewGenerator(), pdf.NewGenerator())

	handler := httphandler.NewHandler(settlementService, log)
	router := httphandler.NewRouter(handler, cfg.HTTP.AllowedOrigins, cfg.Environment, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting settlement service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
