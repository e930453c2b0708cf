package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eldercare/backend/internal/domain"
)

// MemoryRepository implements domain.HealthLogRepository for tests and demo mode
type MemoryRepository struct {
	mu   sync.RWMutex
	logs map[string]domain.VitalSample
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{logs: make(map[string]domain.VitalSample)}
}

// CreateLog stores a new log under a fresh id
func (r *MemoryRepository) CreateLog(ctx context.Context, log domain.VitalSample) (domain.VitalSample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.ID = uuid.NewString()
	r.logs[log.ID] = log
	return log, nil
}

// GetLog returns a log owned by userID
func (r *MemoryRepository) GetLog(ctx context.Context, userID, id string) (domain.VitalSample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log, ok := r.logs[id]
	if !ok || log.UserID != userID {
		return domain.VitalSample{}, domain.ErrNotFound
	}
	return log, nil
}

// UpdateLog replaces an existing log
func (r *MemoryRepository) UpdateLog(ctx context.Context, log domain.VitalSample) (domain.VitalSample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.logs[log.ID]
	if !ok || existing.UserID != log.UserID {
		return domain.VitalSample{}, domain.ErrNotFound
	}
	r.logs[log.ID] = log
	return log, nil
}

// DeleteLog removes a log owned by userID
func (r *MemoryRepository) DeleteLog(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log, ok := r.logs[id]
	if !ok || log.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.logs, id)
	return nil
}

// ListLogs returns one page of logs, newest first
func (r *MemoryRepository) ListLogs(ctx context.Context, userID string, limit, offset int) ([]domain.VitalSample, int64, error) {
	all := r.userLogs(userID, false)
	total := int64(len(all))

	if offset >= len(all) {
		return []domain.VitalSample{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// RecentLogs returns the latest logs, newest first
func (r *MemoryRepository) RecentLogs(ctx context.Context, userID string, limit int) ([]domain.VitalSample, error) {
	all := r.userLogs(userID, false)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// LogsSince returns logs dated at or after from, oldest first
func (r *MemoryRepository) LogsSince(ctx context.Context, userID string, from time.Time) ([]domain.VitalSample, error) {
	results := []domain.VitalSample{}
	for _, log := range r.userLogs(userID, true) {
		if !log.Date.Before(from) {
			results = append(results, log)
		}
	}
	return results, nil
}

// Health always returns nil for the in-memory store
func (r *MemoryRepository) Health(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) userLogs(userID string, ascending bool) []domain.VitalSample {
	r.mu.RLock()
	results := []domain.VitalSample{}
	for _, log := range r.logs {
		if log.UserID == userID {
			results = append(results, log)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Date.Equal(results[j].Date) {
			return results[i].ID < results[j].ID
		}
		if ascending {
			return results[i].Date.Before(results[j].Date)
		}
		return results[i].Date.After(results[j].Date)
	})
	return results
}
