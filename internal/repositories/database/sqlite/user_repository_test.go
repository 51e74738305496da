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

func TestCreateUser_DuplicateEmail(t *testing.T) {
	_, repos := newTestDB(t)
	ctx := context.Background()

	createTestUser(t, repos, "dup@example.com")

	_, err := repos.User.CreateUser(ctx, domain.User{
		Email:     "dup@example.com",
		Password:  "other",
		Name:      "Second",
		CreatedAt: time.Now(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestFindUserByEmail(t *testing.T) {
	_, repos := newTestDB(t)
	ctx := context.Background()

	id := createTestUser(t, repos, "alice@example.com")

	user, err := repos.User.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "secret", user.Password)

	_, err = repos.User.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	_, repos := newTestDB(t)
	ctx := context.Background()

	id := createTestUser(t, repos, "bob@example.com")

	user, err := repos.User.FindUserByID(ctx, id)
	require.NoError(t, err)
	user.Name = "Robert"
	user.Password = "newsecret"
	require.NoError(t, repos.User.UpdateUser(ctx, *user))

	updated, err := repos.User.FindUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.Name)
	assert.Equal(t, "newsecret", updated.Password)

	err = repos.User.UpdateUser(ctx, domain.User{ID: 9999, Name: "Ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteUser_CascadesEverything(t *testing.T) {
	db, repos := newTestDB(t)
	ctx := context.Background()

	userID := createTestUser(t, repos, "carol@example.com")
	tripID := createTestTrip(t, repos, userID, "Italy")
	stepID := createTestStep(t, repos, tripID, "Rome", strPtr("2025-05-01"), strPtr("2025-05-03"))

	checklistID, err := repos.Checklist.CreateChecklist(ctx, domain.Checklist{
		TripID: tripID, Title: "Packing", CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = repos.Checklist.CreateChecklistItem(ctx, domain.ChecklistItem{
		ChecklistID: checklistID, Title: "Passport", CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = repos.Journal.InsertJournalEntry(ctx, domain.JournalEntry{
		StepID: stepID, Type: domain.JournalTypeText, Content: "day one", CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, repos.User.DeleteUser(ctx, userID))

	for _, table := range []string{"users", "trips", "steps", "checklists", "checklist_items", "journal_entries"} {
		var count int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
		assert.Zero(t, count, "expected %s to be empty after account deletion", table)
	}
}

func TestDeleteUser_RollsBackOnFailure(t *testing.T) {
	db, repos := newTestDB(t)

	userID := createTestUser(t, repos, "dave@example.com")
	createTestTrip(t, repos, userID, "Japan")

	// A cancelled context makes the transaction fail before commit; nothing
	// may be deleted.
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	err := repos.User.DeleteUser(cancelled, userID)
	require.Error(t, err)

	var users, trips int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM trips`).Scan(&trips))
	assert.Equal(t, 1, users)
	assert.Equal(t, 1, trips)
}

func TestDeleteUser_NotFound(t *testing.T) {
	_, repos := newTestDB(t)
	err := repos.User.DeleteUser(context.Background(), 424242)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
