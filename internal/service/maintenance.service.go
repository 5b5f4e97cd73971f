package service

import (
	"transfleet/internal/repository"

	"go.uber.org/zap"
)

// MaintenanceService holds the data-cleanup operation. Unlike the read
// path, cleanup failures are surfaced to the caller.
type MaintenanceService interface {
	CleanupInvalidRecords() (int64, error)
}

type maintenanceServiceHandler struct {
	TransformerRepository repository.TransformerRepository
	Logger                *zap.SugaredLogger
}

func NewMaintenanceService(transformerRepository repository.TransformerRepository, log *zap.SugaredLogger) MaintenanceService {
	return maintenanceServiceHandler{
		TransformerRepository: transformerRepository,
		Logger:                log,
	}
}

// CleanupInvalidRecords deletes every row whose customer, contract or
// serial is NULL or empty and returns how many were removed. Running it
// again with no intervening writes returns 0.
func (h maintenanceServiceHandler) CleanupInvalidRecords() (int64, error) {
	deleted, err := h.TransformerRepository.DeleteInvalid()
	if err != nil {
		h.Logger.Errorf("failed to clean up invalid records: %v", err)
		return 0, err
	}

	if deleted > 0 {
		h.Logger.Infof("cleaned up %d empty records from database", deleted)
	}

	return deleted, nil
}
