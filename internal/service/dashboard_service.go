package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eldercare/backend/internal/domain"
)

// DashboardService aggregates the per-user overview
type DashboardService struct {
	healthSvc *HealthService
	vitalsSvc *VitalsService
	logger    *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(healthSvc *HealthService, vitalsSvc *VitalsService, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		healthSvc: healthSvc,
		vitalsSvc: vitalsSvc,
		logger:    logger,
	}
}

// GetDashboardData fetches vitals, risk and the latest log concurrently.
// A failed part is logged and left empty; the rest is still returned.
func (s *DashboardService) GetDashboardData(ctx context.Context, userID string) (domain.DashboardData, error) {
	var (
		vitals    domain.CurrentVitals
		risk      domain.AggregateRiskAssessment
		latest    *domain.VitalSample
		riskErr   error
		latestErr error
		wg        sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		vitals = s.vitalsSvc.GetCurrentVitals(ctx)
	}()
	go func() {
		defer wg.Done()
		risk, riskErr = s.healthSvc.RiskAnalysis(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		latest, latestErr = s.healthSvc.LatestLog(ctx, userID)
	}()
	wg.Wait()

	if riskErr != nil {
		s.logger.Warn("Dashboard risk analysis failed", zap.String("user_id", userID), zap.Error(riskErr))
		risk = domain.AggregateRiskAssessment{}
	}
	if latestErr != nil {
		s.logger.Warn("Dashboard latest log fetch failed", zap.String("user_id", userID), zap.Error(latestErr))
	}

	return domain.DashboardData{
		CurrentVitals: vitals,
		Risk:          risk,
		LatestLog:     latest,
		Timestamp:     time.Now(),
	}, nil
}
