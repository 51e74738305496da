package services_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripflow/tripflow_backend/internal/core/services"
	"github.com/tripflow/tripflow_backend/internal/dto"
	"github.com/tripflow/tripflow_backend/internal/platform/database"
	"github.com/tripflow/tripflow_backend/internal/repositories/database/sqlite"
)

// newTestServices wires the real services over a fresh migrated database.
func newTestServices(t *testing.T) (*services.UserService, *services.TripService, *services.StepService, *services.JournalService) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	repos := sqlite.NewRepositoryContainer(db)
	return services.NewUserService(repos.User),
		services.NewTripService(repos.Trip),
		services.NewStepService(repos.Step, repos.Trip),
		services.NewJournalService(repos.Journal, repos.Step, repos.Trip)
}

func datePtr(s string) *string { return &s }

func TestStepCreation_AssignsDateDerivedOrder(t *testing.T) {
	userSvc, tripSvc, stepSvc, _ := newTestServices(t)
	ctx := context.Background()

	user, err := userSvc.Register(ctx, dto.RegisterRequest{
		Email: "itinerary@example.com", Password: "secret", Name: "Planner",
	})
	require.NoError(t, err)

	trip, err := tripSvc.CreateTrip(ctx, user.ID, dto.CreateTripRequest{
		Title:     "Italy",
		StartDate: datePtr("2025-05-01"),
		EndDate:   datePtr("2025-05-14"),
	})
	require.NoError(t, err)

	// Florence first, then Rome with earlier dates. Rome must land at
	// position one and push Florence to two.
	florence, err := stepSvc.CreateStep(ctx, trip.ID, user.ID, dto.CreateStepRequest{
		Title: "Florence", StartDate: datePtr("2025-05-04"), EndDate: datePtr("2025-05-06"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, florence.OrderIndex)

	rome, err := stepSvc.CreateStep(ctx, trip.ID, user.ID, dto.CreateStepRequest{
		Title: "Rome", StartDate: datePtr("2025-05-01"), EndDate: datePtr("2025-05-03"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rome.OrderIndex)

	steps, err := stepSvc.ListStepsByTrip(ctx, trip.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, "Rome", steps[0].Title)
	assert.Equal(t, 1, steps[0].OrderIndex)
	assert.Equal(t, "Florence", steps[1].Title)
	assert.Equal(t, 2, steps[1].OrderIndex)

	// Moving Rome after Florence reorders the whole trip.
	moved, err := stepSvc.UpdateStep(ctx, rome.ID, user.ID, dto.UpdateStepRequest{
		StartDate: datePtr("2025-05-07"), EndDate: datePtr("2025-05-09"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, moved.OrderIndex)

	steps, err = stepSvc.ListStepsByTrip(ctx, trip.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Florence", steps[0].Title)
	assert.Equal(t, "Rome", steps[1].Title)
}

func TestJournalSave_IsAnUpsert(t *testing.T) {
	userSvc, tripSvc, stepSvc, journalSvc := newTestServices(t)
	ctx := context.Background()

	user, err := userSvc.Register(ctx, dto.RegisterRequest{
		Email: "writer@example.com", Password: "secret", Name: "Writer",
	})
	require.NoError(t, err)
	trip, err := tripSvc.CreateTrip(ctx, user.ID, dto.CreateTripRequest{Title: "Diary"})
	require.NoError(t, err)
	step, err := stepSvc.CreateStep(ctx, trip.ID, user.ID, dto.CreateStepRequest{Title: "Rome"})
	require.NoError(t, err)

	first, err := journalSvc.SaveJournalEntryForStep(ctx, step.ID, user.ID, dto.SaveJournalEntryRequest{
		Type: "text", Content: "first draft",
	})
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond) // timestamps have second precision

	second, err := journalSvc.SaveJournalEntryForStep(ctx, step.ID, user.ID, dto.SaveJournalEntryRequest{
		Type: "text", Content: "second draft",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	entry, err := journalSvc.GetJournalEntryForStep(ctx, step.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, entry.ID)
	assert.Equal(t, "second draft", entry.Content)
	assert.True(t, entry.CreatedAt.After(first.CreatedAt))
}

func TestAuthenticate_RejectsWrongPassword(t *testing.T) {
	userSvc, _, _, _ := newTestServices(t)
	ctx := context.Background()

	_, err := userSvc.Register(ctx, dto.RegisterRequest{
		Email: "login@example.com", Password: "right", Name: "User",
	})
	require.NoError(t, err)

	user, err := userSvc.Authenticate(ctx, "login@example.com", "right")
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", user.Email)

	// Email lookups are case-insensitive.
	_, err = userSvc.Authenticate(ctx, "LOGIN@example.com", "right")
	assert.NoError(t, err)

	_, err = userSvc.Authenticate(ctx, "login@example.com", "wrong")
	assert.Error(t, err)
}
