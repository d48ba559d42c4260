package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nurpe/nomina-settlement/internal/config"
	"github.com/nurpe/nomina-settlement/internal/db"
	"github.com/nurpe/nomina-settlement/internal/excel"
	"github.com/nurpe/nomina-settlement/internal/logger"
	"github.com/nurpe/nomina-settlement/internal/pdf"
	"github.com/nurpe/nomina-settlement/internal/repository"
	"github.com/nurpe/nomina-settlement/internal/service"
)

const appVersion = "0.3.0"

// app is built lazily so that --help never touches configuration or the
// database.
type app struct {
	cfg        *config.Config
	log        zerolog.Logger
	offline    bool
	holidayDB  *repository.HolidayRepository
	service    *service.SettlementService
	loadConfig func() (*config.Config, error)
}

func newRootCmd() *cobra.Command {
	a := &app{loadConfig: config.Load}

	cmd := &cobra.Command{
		Use:           "nomina",
		Short:         "Colombian payroll settlement calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Version = appVersion
	cmd.SetVersionTemplate("nomina v{{.Version}}\n")
	cmd.PersistentFlags().BoolVar(&a.offline, "offline", false, "Ignore DB_DSN and use the built-in holiday calendar")

	cmd.AddCommand(
		newComputeCmd(a),
		newClassifyCmd(a),
		newHolidaysCmd(a),
	)
	return cmd
}

func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	a.log = logger.New(cfg.Environment)
	return cfg, nil
}

func (a *app) holidays() (*repository.HolidayRepository, error) {
	if a.holidayDB != nil {
		return a.holidayDB, nil
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	database, err := db.New(cfg, a.log)
	if err != nil {
		return nil, err
	}
	a.holidayDB = repository.NewHolidayRepository(database)
	return a.holidayDB, nil
}

func (a *app) settlements(ctx context.Context) (*service.SettlementService, error) {
	if a.service != nil {
		return a.service, nil
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}

	var source service.HolidaySource
	if cfg.DB.Enabled() && !a.offline {
		repo, err := a.holidays()
		if err != nil {
			return nil, err
		}
		source = repo
	}

	engine, err := service.BuildEngine(ctx, cfg.Payroll, source)
	if err != nil {
		return nil, err
	}
	a.service = service.NewSettlementService(engine, excel.NewGenerator(), pdf.NewGenerator())
	return a.service, nil
}
