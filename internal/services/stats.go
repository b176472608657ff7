package services

import (
	"context"
	"fmt"
	"time"

	"rallypoint/internal/domain"
)

type statsService struct {
	statsRepo domain.StatsRepository
}

// NewStatsService creates a StatsService with the given repository.
func NewStatsService(statsRepo domain.StatsRepository) domain.StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Collect(ctx context.Context) (*domain.AdminStats, error) {
	stats, err := s.statsRepo.Collect(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("collect stats: %w", err)
	}
	return stats, nil
}
