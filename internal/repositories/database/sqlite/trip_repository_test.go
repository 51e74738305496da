package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

func TestTripCRUD(t *testing.T) {
	_, repos := newTestDB(t)
	ctx := context.Background()

	userID := createTestUser(t, repos, "trips@example.com")

	now := time.Now()
	id, err := repos.Trip.CreateTrip(ctx, domain.Trip{
		UserID:      userID,
		Title:       "Italy",
		Description: strPtr("Two weeks in the north"),
		StartDate:   strPtr("2025-05-01"),
		EndDate:     strPtr("2025-05-14"),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)

	trip, err := repos.Trip.FindTripByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Italy", trip.Title)
	require.NotNil(t, trip.Description)
	assert.Equal(t, "Two weeks in the north", *trip.Description)
	require.NotNil(t, trip.StartDate)
	assert.Equal(t, "2025-05-01", *trip.StartDate)

	trip.Title = "Italy 2025"
	trip.Description = nil
	require.NoError(t, repos.Trip.UpdateTrip(ctx, *trip))

	updated, err := repos.Trip.FindTripByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Italy 2025", updated.Title)
	assert.Nil(t, updated.Description)

	require.NoError(t, repos.Trip.DeleteTrip(ctx, id))
	_, err = repos.Trip.FindTripByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindTripsByUserID_NewestFirst(t *testing.T) {
	_, repos := newTestDB(t)
	ctx := context.Background()

	userID := createTestUser(t, repos, "order@example.com")
	otherID := createTestUser(t, repos, "other@example.com")

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"First", "Second", "Third"} {
		_, err := repos.Trip.CreateTrip(ctx, domain.Trip{
			UserID:    userID,
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	createTestTrip(t, repos, otherID, "Not mine")

	trips, err := repos.Trip.FindTripsByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, trips, 3)
	assert.Equal(t, "Third", trips[0].Title)
	assert.Equal(t, "Second", trips[1].Title)
	assert.Equal(t, "First", trips[2].Title)
}

func TestDeleteTrip_CascadesToDependents(t *testing.T) {
	db, repos := newTestDB(t)
	ctx := context.Background()

	userID := createTestUser(t, repos, "cascade@example.com")
	tripID := createTestTrip(t, repos, userID, "Cascade")
	stepID := createTestStep(t, repos, tripID, "Stop", strPtr("2025-06-01"), strPtr("2025-06-02"))

	checklistID, err := repos.Checklist.CreateChecklist(ctx, domain.Checklist{
		TripID: tripID, Title: "Gear", CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = repos.Checklist.CreateChecklistItem(ctx, domain.ChecklistItem{
		ChecklistID: checklistID, Title: "Boots", CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = repos.Journal.InsertJournalEntry(ctx, domain.JournalEntry{
		StepID: stepID, Type: domain.JournalTypeText, Content: "notes", CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, repos.Trip.DeleteTrip(ctx, tripID))

	for _, table := range []string{"trips", "steps", "checklists", "checklist_items", "journal_entries"} {
		var count int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
		assert.Zero(t, count, "expected %s to be empty after trip deletion", table)
	}

	// The user survives a trip deletion.
	var users int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users))
	assert.Equal(t, 1, users)
}
