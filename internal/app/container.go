package app

import (
	"context"

	"github.com/chrisvisintin/pyc-go/internal/application/doctor"
	"github.com/chrisvisintin/pyc-go/internal/infrastructure/config"
	"github.com/chrisvisintin/pyc-go/internal/infrastructure/history"
	"github.com/chrisvisintin/pyc-go/internal/pkg/logger"
	"github.com/chrisvisintin/pyc-go/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         ports.Logger
	HistoryStore   ports.HistoryStore
	DoctorService  *doctor.Service
}

// BuildContainer constructs the dependency graph. configPath overrides the
// default configuration location when non-empty (the -C flag).
func BuildContainer(ctx context.Context, configPath string, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader(configPath)
	if _, err := cfgLoader.Load(ctx); err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	historyStore := history.NewSQLiteStore()

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
	}

	return &Container{
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         log,
		HistoryStore:   historyStore,
		DoctorService:  doctorService,
	}, nil
}
