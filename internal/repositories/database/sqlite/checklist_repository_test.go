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

func TestChecklistLifecycle(t *testing.T) {
	_, repos := newTestDB(t)
	ctx := context.Background()

	userID := createTestUser(t, repos, "lists@example.com")
	tripID := createTestTrip(t, repos, userID, "Packing trip")

	checklistID, err := repos.Checklist.CreateChecklist(ctx, domain.Checklist{
		TripID: tripID, Title: "Packing", CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	checklist, err := repos.Checklist.FindChecklistByID(ctx, checklistID)
	require.NoError(t, err)
	assert.Equal(t, "Packing", checklist.Title)

	checklist.Title = "Packing list"
	require.NoError(t, repos.Checklist.UpdateChecklist(ctx, *checklist))

	lists, err := repos.Checklist.FindChecklistsByTripID(ctx, tripID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Packing list", lists[0].Title)

	require.NoError(t, repos.Checklist.DeleteChecklist(ctx, checklistID))
	_, err = repos.Checklist.FindChecklistByID(ctx, checklistID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestChecklistItems_CreateToggleDelete(t *testing.T) {
	db, repos := newTestDB(t)
	ctx := context.Background()

	userID := createTestUser(t, repos, "items@example.com")
	tripID := createTestTrip(t, repos, userID, "Items trip")
	checklistID, err := repos.Checklist.CreateChecklist(ctx, domain.Checklist{
		TripID: tripID, Title: "To do", CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	passportID, err := repos.Checklist.CreateChecklistItem(ctx, domain.ChecklistItem{
		ChecklistID: checklistID, Title: "Passport", CreatedAt: base,
	})
	require.NoError(t, err)
	_, err = repos.Checklist.CreateChecklistItem(ctx, domain.ChecklistItem{
		ChecklistID: checklistID, Title: "Tickets", CreatedAt: base.Add(time.Minute),
	})
	require.NoError(t, err)

	items, err := repos.Checklist.FindChecklistItems(ctx, checklistID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Passport", items[0].Title)
	assert.False(t, items[0].IsChecked)

	// Toggle checked.
	items[0].IsChecked = true
	require.NoError(t, repos.Checklist.UpdateChecklistItem(ctx, items[0]))

	item, err := repos.Checklist.FindChecklistItemByID(ctx, passportID)
	require.NoError(t, err)
	assert.True(t, item.IsChecked)

	require.NoError(t, repos.Checklist.DeleteChecklistItem(ctx, passportID))
	_, err = repos.Checklist.FindChecklistItemByID(ctx, passportID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting the checklist removes the remaining item via the cascade.
	require.NoError(t, repos.Checklist.DeleteChecklist(ctx, checklistID))
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM checklist_items`).Scan(&count))
	assert.Zero(t, count)
}
