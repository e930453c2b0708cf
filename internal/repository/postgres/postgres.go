package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eldercare/backend/internal/domain"
)

// PostgresRepository implements domain.HealthLogRepository.
// Each log is stored as a JSONB document next to the columns it is queried by.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const schema = `
	CREATE TABLE IF NOT EXISTS health_logs (
		id         UUID PRIMARY KEY,
		user_id    TEXT NOT NULL,
		date       TIMESTAMPTZ NOT NULL,
		document   JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS health_logs_user_date_idx ON health_logs (user_id, date DESC);
`

const selectColumns = `id::text, user_id, date, document, created_at, updated_at`

// EnsureSchema creates the health_logs table and index if missing
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to ensure schema: %w", err)
	}
	return nil
}

// CreateLog persists a new health log
func (r *PostgresRepository) CreateLog(ctx context.Context, log domain.VitalSample) (domain.VitalSample, error) {
	log.ID = uuid.NewString()

	doc, err := json.Marshal(log)
	if err != nil {
		return domain.VitalSample{}, fmt.Errorf("postgres: failed to encode health log: %w", err)
	}

	query := `
		INSERT INTO health_logs (id, user_id, date, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.pool.Exec(ctx, query, log.ID, log.UserID, log.Date, doc, log.CreatedAt, log.UpdatedAt)
	if err != nil {
		return domain.VitalSample{}, fmt.Errorf("postgres: failed to save health log: %w", err)
	}

	return log, nil
}

// GetLog retrieves a single health log owned by userID
func (r *PostgresRepository) GetLog(ctx context.Context, userID, id string) (domain.VitalSample, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.VitalSample{}, domain.ErrNotFound
	}

	query := `SELECT ` + selectColumns + ` FROM health_logs WHERE id = $1 AND user_id = $2`
	log, err := scanLog(r.pool.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.VitalSample{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.VitalSample{}, fmt.Errorf("postgres: failed to get health log: %w", err)
	}

	return log, nil
}

// UpdateLog replaces the document of an existing health log
func (r *PostgresRepository) UpdateLog(ctx context.Context, log domain.VitalSample) (domain.VitalSample, error) {
	if _, err := uuid.Parse(log.ID); err != nil {
		return domain.VitalSample{}, domain.ErrNotFound
	}

	doc, err := json.Marshal(log)
	if err != nil {
		return domain.VitalSample{}, fmt.Errorf("postgres: failed to encode health log: %w", err)
	}

	query := `
		UPDATE health_logs SET date = $3, document = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, log.ID, log.UserID, log.Date, doc, log.UpdatedAt)
	if err != nil {
		return domain.VitalSample{}, fmt.Errorf("postgres: failed to update health log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.VitalSample{}, domain.ErrNotFound
	}

	return log, nil
}

// DeleteLog removes a health log owned by userID
func (r *PostgresRepository) DeleteLog(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM health_logs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete health log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// ListLogs returns one page of logs, newest first, plus the user's total
func (r *PostgresRepository) ListLogs(ctx context.Context, userID string, limit, offset int) ([]domain.VitalSample, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM health_logs WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to count health logs: %w", err)
	}

	query := `
		SELECT ` + selectColumns + `
		FROM health_logs
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3
	`
	logs, err := r.queryLogs(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// RecentLogs returns the latest logs, newest first
func (r *PostgresRepository) RecentLogs(ctx context.Context, userID string, limit int) ([]domain.VitalSample, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM health_logs
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`
	return r.queryLogs(ctx, query, userID, limit)
}

// LogsSince returns logs dated at or after from, oldest first
func (r *PostgresRepository) LogsSince(ctx context.Context, userID string, from time.Time) ([]domain.VitalSample, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM health_logs
		WHERE user_id = $1 AND date >= $2
		ORDER BY date ASC
	`
	return r.queryLogs(ctx, query, userID, from)
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

func (r *PostgresRepository) queryLogs(ctx context.Context, query string, args ...any) ([]domain.VitalSample, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query health logs: %w", err)
	}
	defer rows.Close()

	results := []domain.VitalSample{}
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan health log row: %w", err)
		}
		results = append(results, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate health logs: %w", err)
	}

	return results, nil
}

func scanLog(row pgx.Row) (domain.VitalSample, error) {
	var (
		log domain.VitalSample
		doc []byte
	)
	if err := row.Scan(&log.ID, &log.UserID, &log.Date, &doc, &log.CreatedAt, &log.UpdatedAt); err != nil {
		return domain.VitalSample{}, err
	}

	var stored domain.VitalSample
	if err := json.Unmarshal(doc, &stored); err != nil {
		return domain.VitalSample{}, fmt.Errorf("decode document: %w", err)
	}

	// columns are authoritative for identity and timestamps
	stored.ID, stored.UserID, stored.Date = log.ID, log.UserID, log.Date
	stored.CreatedAt, stored.UpdatedAt = log.CreatedAt, log.UpdatedAt
	return stored, nil
}
