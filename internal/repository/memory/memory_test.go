package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eldercare/backend/internal/domain"
)

func seed(t *testing.T, repo *MemoryRepository, userID string, days ...int) []domain.VitalSample {
	t.Helper()
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	var out []domain.VitalSample
	for _, d := range days {
		log, err := repo.CreateLog(context.Background(), domain.VitalSample{
			UserID: userID,
			Date:   base.AddDate(0, 0, d),
			Notes:  "day",
		})
		require.NoError(t, err)
		require.NotEmpty(t, log.ID)
		out = append(out, log)
	}
	return out
}

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	logs := seed(t, repo, "user-1", 0)

	got, err := repo.GetLog(ctx, "user-1", logs[0].ID)
	require.NoError(t, err)
	require.Equal(t, "day", got.Notes)

	_, err = repo.GetLog(ctx, "user-2", logs[0].ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	got.Notes = "updated"
	_, err = repo.UpdateLog(ctx, got)
	require.NoError(t, err)

	got, err = repo.GetLog(ctx, "user-1", logs[0].ID)
	require.NoError(t, err)
	require.Equal(t, "updated", got.Notes)

	foreign := got
	foreign.UserID = "user-2"
	_, err = repo.UpdateLog(ctx, foreign)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, repo.DeleteLog(ctx, "user-2", got.ID), domain.ErrNotFound)
	require.NoError(t, repo.DeleteLog(ctx, "user-1", got.ID))
	require.ErrorIs(t, repo.DeleteLog(ctx, "user-1", got.ID), domain.ErrNotFound)
}

func TestMemoryRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	seed(t, repo, "user-1", 3, 0, 5, 1, 4, 2)
	seed(t, repo, "user-2", 10)

	page, total, err := repo.ListLogs(ctx, "user-1", 4, 0)
	require.NoError(t, err)
	require.EqualValues(t, 6, total)
	require.Len(t, page, 4)
	require.Equal(t, 5, page[0].Date.Day()-1)
	require.Equal(t, 2, page[3].Date.Day()-1)

	page, _, err = repo.ListLogs(ctx, "user-1", 4, 4)
	require.NoError(t, err)
	require.Len(t, page, 2)

	page, _, err = repo.ListLogs(ctx, "user-1", 4, 10)
	require.NoError(t, err)
	require.Empty(t, page)

	recent, err := repo.RecentLogs(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.True(t, recent[0].Date.After(recent[1].Date))

	since, err := repo.LogsSince(ctx, "user-1", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, since, 4)
	for i := 1; i < len(since); i++ {
		require.True(t, since[i-1].Date.Before(since[i].Date))
	}

	require.NoError(t, repo.Health(ctx))
}
