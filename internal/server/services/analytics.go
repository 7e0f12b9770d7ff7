package services

import (
	"context"

	"github.com/dmitrijs2005/opsbot/internal/logging"
	"github.com/dmitrijs2005/opsbot/internal/server/access"
	"github.com/dmitrijs2005/opsbot/internal/server/auth"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
)

type AnalyticsService struct {
	gate *Gate
	log  logging.Logger
}

func NewAnalyticsService(a *auth.Service, log logging.Logger) *AnalyticsService {
	return &AnalyticsService{gate: NewGate(a, log), log: log}
}

// Get returns the dashboard snapshot. The figures are fixed.
func (s *AnalyticsService) Get(ctx context.Context, token string) (*models.Analytics, error) {
	if _, err := s.gate.Authorize(ctx, token, access.ViewAnalytics, ""); err != nil {
		return nil, boundary(ctx, s.log, err)
	}
	return snapshot(), nil
}

func snapshot() *models.Analytics {
	return &models.Analytics{
		DailySessions: []models.DailySessions{
			{Day: "Mon", Count: 20},
			{Day: "Tue", Count: 15},
			{Day: "Wed", Count: 25},
			{Day: "Thu", Count: 22},
			{Day: "Fri", Count: 30},
			{Day: "Sat", Count: 18},
			{Day: "Sun", Count: 10},
		},
		UserActivity: models.UserActivity{
			ActiveUsers:            25,
			TotalMessages:          2520,
			AverageSessionDuration: "12m 30s",
		},
		SystemMetrics: models.SystemMetrics{
			CPUUsage:         42,
			MemoryUsage:      65,
			StorageUsage:     37,
			NetworkBandwidth: 28,
		},
	}
}
