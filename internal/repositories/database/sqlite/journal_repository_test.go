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

func TestJournalEntry_InsertFindUpdate(t *testing.T) {
	_, repos := newTestDB(t)
	ctx := context.Background()

	userID := createTestUser(t, repos, "journal@example.com")
	tripID := createTestTrip(t, repos, userID, "Diary")
	stepID := createTestStep(t, repos, tripID, "Rome", strPtr("2025-05-01"), strPtr("2025-05-03"))

	_, err := repos.Journal.FindJournalEntryByStepID(ctx, stepID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	id, err := repos.Journal.InsertJournalEntry(ctx, domain.JournalEntry{
		StepID:    stepID,
		Type:      domain.JournalTypePhoto,
		Content:   `{"blocks":[{"id":"1","type":"text","text":"arrived"}]}`,
		Images:    []string{"img/a.jpg", "img/b.jpg"},
		EntryDate: strPtr("2025-05-01"),
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	entry, err := repos.Journal.FindJournalEntryByStepID(ctx, stepID)
	require.NoError(t, err)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, domain.JournalTypePhoto, entry.Type)
	assert.Equal(t, []string{"img/a.jpg", "img/b.jpg"}, entry.Images)
	require.NotNil(t, entry.EntryDate)
	assert.Equal(t, "2025-05-01", *entry.EntryDate)

	entry.Type = domain.JournalTypeText
	entry.Content = `{"blocks":[]}`
	entry.Images = nil
	entry.CreatedAt = time.Now()
	require.NoError(t, repos.Journal.UpdateJournalEntry(ctx, *entry))

	updated, err := repos.Journal.FindJournalEntryByStepID(ctx, stepID)
	require.NoError(t, err)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, domain.JournalTypeText, updated.Type)
	assert.Equal(t, `{"blocks":[]}`, updated.Content)
	assert.Nil(t, updated.Images)
}

func TestUpdateJournalEntry_NotFound(t *testing.T) {
	_, repos := newTestDB(t)
	err := repos.Journal.UpdateJournalEntry(context.Background(), domain.JournalEntry{
		ID: 9999, Type: domain.JournalTypeText, CreatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
