package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/eldercare/backend/internal/domain"
	"github.com/eldercare/backend/internal/health"
	"github.com/eldercare/backend/pkg/utils"
)

// Window and paging limits
const (
	RiskWindowSize   = 7
	DefaultPageSize  = 30
	MaxPageSize      = 100
	DefaultTrendDays = 30
	MaxTrendDays     = 365
)

// HealthService handles health log storage and analysis for one user at a time
type HealthService struct {
	repo   HealthLogRepository
	cache  *ResponseCache
	logger *zap.Logger
	now    func() time.Time
}

// NewHealthService creates a new health service. cache may be nil.
func NewHealthService(repo HealthLogRepository, cache *ResponseCache, logger *zap.Logger) *HealthService {
	return &HealthService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// CreateLog normalizes and stores a new log, returning it with its risk score
func (s *HealthService) CreateLog(ctx context.Context, userID string, raw domain.RawObservation) (domain.VitalSample, domain.RiskAssessment, error) {
	sample, err := health.Normalize(raw)
	if err != nil {
		return domain.VitalSample{}, domain.RiskAssessment{}, err
	}

	now := s.now()
	sample.UserID = userID
	if sample.Date.IsZero() {
		sample.Date = now
	}
	sample.CreatedAt = now
	sample.UpdatedAt = now

	saved, err := s.repo.CreateLog(ctx, sample)
	if err != nil {
		return domain.VitalSample{}, domain.RiskAssessment{}, fmt.Errorf("service: failed to create health log: %w", err)
	}
	s.cache.Invalidate(ctx, userID)

	risk := health.ScoreSample(saved)
	s.logger.Info("Health log created",
		zap.String("user_id", userID),
		zap.String("log_id", saved.ID),
		zap.Int("risk_score", risk.Score),
		zap.String("risk_level", string(risk.Level)),
	)

	return saved, risk, nil
}

// GetLog returns one log with its risk score
func (s *HealthService) GetLog(ctx context.Context, userID, id string) (domain.VitalSample, domain.RiskAssessment, error) {
	log, err := s.repo.GetLog(ctx, userID, id)
	if err != nil {
		return domain.VitalSample{}, domain.RiskAssessment{}, fmt.Errorf("service: failed to get health log: %w", err)
	}
	return log, health.ScoreSample(log), nil
}

// UpdateLog replaces the content of an existing log. The stored date is
// kept unless the observation carries one.
func (s *HealthService) UpdateLog(ctx context.Context, userID, id string, raw domain.RawObservation) (domain.VitalSample, domain.RiskAssessment, error) {
	existing, err := s.repo.GetLog(ctx, userID, id)
	if err != nil {
		return domain.VitalSample{}, domain.RiskAssessment{}, fmt.Errorf("service: failed to get health log: %w", err)
	}

	sample, err := health.Normalize(raw)
	if err != nil {
		return domain.VitalSample{}, domain.RiskAssessment{}, err
	}

	sample.ID = existing.ID
	sample.UserID = existing.UserID
	if sample.Date.IsZero() {
		sample.Date = existing.Date
	}
	sample.CreatedAt = existing.CreatedAt
	sample.UpdatedAt = s.now()

	updated, err := s.repo.UpdateLog(ctx, sample)
	if err != nil {
		return domain.VitalSample{}, domain.RiskAssessment{}, fmt.Errorf("service: failed to update health log: %w", err)
	}
	s.cache.Invalidate(ctx, userID)

	return updated, health.ScoreSample(updated), nil
}

// DeleteLog removes a log
func (s *HealthService) DeleteLog(ctx context.Context, userID, id string) error {
	if err := s.repo.DeleteLog(ctx, userID, id); err != nil {
		return fmt.Errorf("service: failed to delete health log: %w", err)
	}
	s.cache.Invalidate(ctx, userID)

	s.logger.Info("Health log deleted", zap.String("user_id", userID), zap.String("log_id", id))
	return nil
}

// ListLogs returns one page of logs, newest first
func (s *HealthService) ListLogs(ctx context.Context, userID string, page, limit int) (domain.LogPage, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	limit = utils.ClampInt(limit, 1, MaxPageSize)
	if page < 1 {
		page = 1
	}

	logs, total, err := s.repo.ListLogs(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return domain.LogPage{}, fmt.Errorf("service: failed to list health logs: %w", err)
	}

	return domain.LogPage{
		Logs: logs,
		Pagination: domain.Pagination{
			Current: page,
			Pages:   int(math.Ceil(float64(total) / float64(limit))),
			Total:   total,
		},
	}, nil
}

// LatestLog returns the most recent log, or nil when the user has none
func (s *HealthService) LatestLog(ctx context.Context, userID string) (*domain.VitalSample, error) {
	logs, err := s.repo.RecentLogs(ctx, userID, 1)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get latest health log: %w", err)
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return &logs[0], nil
}

// RiskAnalysis scores the user's most recent logs as one window
func (s *HealthService) RiskAnalysis(ctx context.Context, userID string) (domain.AggregateRiskAssessment, error) {
	var cached domain.AggregateRiskAssessment
	cacheKey, hit := s.cache.Get(ctx, userID, "risk", &cached)
	if hit {
		return cached, nil
	}

	logs, err := s.repo.RecentLogs(ctx, userID, RiskWindowSize)
	if err != nil {
		return domain.AggregateRiskAssessment{}, fmt.Errorf("service: failed to load recent health logs: %w", err)
	}

	risk := health.AnalyzeAggregateRisk(logs)
	s.cache.Set(ctx, cacheKey, risk)
	return risk, nil
}

// Trends analyzes the logs of the last days days
func (s *HealthService) Trends(ctx context.Context, userID string, days int) (domain.TrendReport, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}
	days = utils.ClampInt(days, 1, MaxTrendDays)

	cacheName := fmt.Sprintf("trends:%d", days)
	var cached domain.TrendReport
	cacheKey, hit := s.cache.Get(ctx, userID, cacheName, &cached)
	if hit {
		return cached, nil
	}

	from := s.now().AddDate(0, 0, -days)
	logs, err := s.repo.LogsSince(ctx, userID, from)
	if err != nil {
		return domain.TrendReport{}, fmt.Errorf("service: failed to load health logs: %w", err)
	}

	report := health.AnalyzeTrends(logs)
	report.Period = fmt.Sprintf("%d days", days)

	s.cache.Set(ctx, cacheKey, report)
	return report, nil
}

// Health checks the repository
func (s *HealthService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}
