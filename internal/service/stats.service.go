package service

import (
	"transfleet/internal/domain"
	"transfleet/internal/repository"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

// StatsService computes descriptive statistics over the power column of
// all valid rows. Storage failures degrade to a zero-value result, same
// as the other read operations.
type StatsService interface {
	FleetPowerStats() domain.FleetStats
}

type statsServiceHandler struct {
	TransformerRepository repository.TransformerRepository
	Logger                *zap.SugaredLogger
}

func NewStatsService(transformerRepository repository.TransformerRepository, log *zap.SugaredLogger) StatsService {
	return statsServiceHandler{
		TransformerRepository: transformerRepository,
		Logger:                log,
	}
}

func (h statsServiceHandler) FleetPowerStats() domain.FleetStats {
	rows, err := h.TransformerRepository.List()
	if err != nil {
		h.Logger.Errorf("failed to compute fleet power stats: %v", err)
		return domain.FleetStats{}
	}

	if len(rows) == 0 {
		return domain.FleetStats{}
	}

	powers := make(stats.Float64Data, 0, len(rows))
	for _, row := range rows {
		power := 0.0
		if row.Power != nil {
			power = row.Power.InexactFloat64()
		}
		if power < 0 {
			power = 0
		}
		powers = append(powers, power)
	}

	out := domain.FleetStats{
		RecordCount: int64(len(powers)),
	}

	// the stats helpers only fail on empty input, which is handled above
	out.TotalPower, _ = stats.Sum(powers)
	out.MeanPower, _ = stats.Mean(powers)
	out.MedianPower, _ = stats.Median(powers)
	out.MinPower, _ = stats.Min(powers)
	out.MaxPower, _ = stats.Max(powers)
	out.StdDevPower, _ = stats.StandardDeviation(powers)

	return out
}
