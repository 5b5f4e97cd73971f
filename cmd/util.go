package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"sync/atomic"

	"transfleet/api"
	"transfleet/internal"
	"transfleet/internal/logger"
	"transfleet/internal/repository"
	"transfleet/internal/service"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	// envelopes carry power as a json number, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true

	zapLogger := logger.New()

	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	transformerRepository := repository.NewTransformerRepository(dbConn)

	reportService := service.NewReportService(transformerRepository, zapLogger)
	maintenanceService := service.NewMaintenanceService(transformerRepository, zapLogger)
	statsService := service.NewStatsService(transformerRepository, zapLogger)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		TransformerRepository: transformerRepository,
		ReportService:         reportService,
		MaintenanceService:    maintenanceService,
		StatsService:          statsService,
		Logger:                zapLogger,
		ShuttingDown:          &atomic.Bool{},
	}

	return apiHandler, nil
}
