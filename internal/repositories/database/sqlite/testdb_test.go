package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
	"github.com/tripflow/tripflow_backend/internal/platform/database"
	"github.com/tripflow/tripflow_backend/internal/repositories/database/sqlite"
)

// newTestDB opens a fresh migrated database in a per-test temp directory.
func newTestDB(t *testing.T) (*sql.DB, *sqlite.RepositoryContainer) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db, sqlite.NewRepositoryContainer(db)
}

func createTestUser(t *testing.T, repos *sqlite.RepositoryContainer, email string) int64 {
	t.Helper()
	id, err := repos.User.CreateUser(context.Background(), domain.User{
		Email:     email,
		Password:  "secret",
		Name:      "Test User",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return id
}

func createTestTrip(t *testing.T, repos *sqlite.RepositoryContainer, userID int64, title string) int64 {
	t.Helper()
	now := time.Now()
	id, err := repos.Trip.CreateTrip(context.Background(), domain.Trip{
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return id
}

func createTestStep(t *testing.T, repos *sqlite.RepositoryContainer, tripID int64, title string, startDate, endDate *string) int64 {
	t.Helper()
	id, err := repos.Step.CreateStep(context.Background(), domain.Step{
		TripID:    tripID,
		Title:     title,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return id
}

func strPtr(s string) *string {
	return &s
}
