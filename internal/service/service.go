package service

import (
	"github.com/eldercare/backend/internal/domain"
)

// HealthLogRepository is re-exported from domain for convenience
type HealthLogRepository = domain.HealthLogRepository
