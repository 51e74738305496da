package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	"github.com/tripflow/tripflow_backend/internal/core/domain"
	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
	"github.com/tripflow/tripflow_backend/internal/core/services"
	"github.com/tripflow/tripflow_backend/internal/dto"
)

// --- Mock TripRepository (based on StepService usage) ---
type MockTripRepository struct {
	mock.Mock
	FindTripByIDFn func(ctx context.Context, tripID int64) (*domain.Trip, error)
}

func (m *MockTripRepository) CreateTrip(ctx context.Context, trip domain.Trip) (int64, error) {
	args := m.Called(ctx, trip)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTripRepository) FindTripByID(ctx context.Context, tripID int64) (*domain.Trip, error) {
	if m.FindTripByIDFn != nil {
		return m.FindTripByIDFn(ctx, tripID)
	}
	args := m.Called(ctx, tripID)
	var trip *domain.Trip
	if args.Get(0) != nil {
		trip = args.Get(0).(*domain.Trip)
	}
	return trip, args.Error(1)
}

func (m *MockTripRepository) FindTripsByUserID(ctx context.Context, userID int64) ([]domain.Trip, error) {
	args := m.Called(ctx, userID)
	var trips []domain.Trip
	if args.Get(0) != nil {
		trips = args.Get(0).([]domain.Trip)
	}
	return trips, args.Error(1)
}

func (m *MockTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) DeleteTrip(ctx context.Context, tripID int64) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

// --- Mock StepRepository ---
type MockStepRepository struct {
	mock.Mock
	CreateStepFn    func(ctx context.Context, step domain.Step) (int64, error)
	FindStepByIDFn  func(ctx context.Context, stepID int64) (*domain.Step, error)
	ReorderStepsFn  func(ctx context.Context, tripID int64) error
	CountBeforeFn   func(ctx context.Context, tripID int64, startDate string) (int, error)
	FindConflictsFn func(ctx context.Context, tripID int64, startDate, endDate string, excludeStepID int64) ([]domain.Step, error)
}

func (m *MockStepRepository) CreateStep(ctx context.Context, step domain.Step) (int64, error) {
	if m.CreateStepFn != nil {
		return m.CreateStepFn(ctx, step)
	}
	args := m.Called(ctx, step)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStepRepository) FindStepByID(ctx context.Context, stepID int64) (*domain.Step, error) {
	if m.FindStepByIDFn != nil {
		return m.FindStepByIDFn(ctx, stepID)
	}
	args := m.Called(ctx, stepID)
	var step *domain.Step
	if args.Get(0) != nil {
		step = args.Get(0).(*domain.Step)
	}
	return step, args.Error(1)
}

func (m *MockStepRepository) FindStepsByTripID(ctx context.Context, tripID int64) ([]domain.Step, error) {
	args := m.Called(ctx, tripID)
	var steps []domain.Step
	if args.Get(0) != nil {
		steps = args.Get(0).([]domain.Step)
	}
	return steps, args.Error(1)
}

func (m *MockStepRepository) UpdateStep(ctx context.Context, step domain.Step) error {
	args := m.Called(ctx, step)
	return args.Error(0)
}

func (m *MockStepRepository) DeleteStep(ctx context.Context, stepID int64) error {
	args := m.Called(ctx, stepID)
	return args.Error(0)
}

func (m *MockStepRepository) CountStepsStartingBefore(ctx context.Context, tripID int64, startDate string) (int, error) {
	if m.CountBeforeFn != nil {
		return m.CountBeforeFn(ctx, tripID, startDate)
	}
	args := m.Called(ctx, tripID, startDate)
	return args.Int(0), args.Error(1)
}

func (m *MockStepRepository) FindConflictingSteps(ctx context.Context, tripID int64, startDate, endDate string, excludeStepID int64) ([]domain.Step, error) {
	if m.FindConflictsFn != nil {
		return m.FindConflictsFn(ctx, tripID, startDate, endDate, excludeStepID)
	}
	args := m.Called(ctx, tripID, startDate, endDate, excludeStepID)
	var steps []domain.Step
	if args.Get(0) != nil {
		steps = args.Get(0).([]domain.Step)
	}
	return steps, args.Error(1)
}

func (m *MockStepRepository) ReorderSteps(ctx context.Context, tripID int64) error {
	if m.ReorderStepsFn != nil {
		return m.ReorderStepsFn(ctx, tripID)
	}
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

// --- Test Suite ---
type StepServiceTestSuite struct {
	suite.Suite
	mockStepRepo *MockStepRepository
	mockTripRepo *MockTripRepository
	service      portssvc.StepSvcFacade
}

func (suite *StepServiceTestSuite) SetupTest() {
	suite.mockStepRepo = new(MockStepRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.service = services.NewStepService(suite.mockStepRepo, suite.mockTripRepo)
}

func (suite *StepServiceTestSuite) ownedTrip(tripID, userID int64) {
	suite.mockTripRepo.FindTripByIDFn = func(ctx context.Context, id int64) (*domain.Trip, error) {
		return &domain.Trip{ID: tripID, UserID: userID, Title: "Trip"}, nil
	}
}

func (suite *StepServiceTestSuite) TestCreateStep_OrderIndexFromStartDate() {
	ctx := context.Background()
	suite.ownedTrip(1, 7)

	start, end := "2025-05-04", "2025-05-06"
	suite.mockStepRepo.CountBeforeFn = func(ctx context.Context, tripID int64, startDate string) (int, error) {
		suite.Equal(start, startDate)
		return 1, nil
	}
	var insertedIndex int
	suite.mockStepRepo.CreateStepFn = func(ctx context.Context, step domain.Step) (int64, error) {
		insertedIndex = step.OrderIndex
		return 42, nil
	}
	suite.mockStepRepo.ReorderStepsFn = func(ctx context.Context, tripID int64) error {
		return nil
	}
	suite.mockStepRepo.FindStepByIDFn = func(ctx context.Context, stepID int64) (*domain.Step, error) {
		return &domain.Step{ID: stepID, TripID: 1, Title: "Florence", OrderIndex: 2}, nil
	}

	step, err := suite.service.CreateStep(ctx, 1, 7, dto.CreateStepRequest{
		Title:     "Florence",
		StartDate: &start,
		EndDate:   &end,
	})

	suite.Require().NoError(err)
	suite.Equal(2, insertedIndex)
	suite.Equal(int64(42), step.ID)
	suite.Equal(2, step.OrderIndex)
}

func (suite *StepServiceTestSuite) TestCreateStep_EndBeforeStart() {
	ctx := context.Background()
	suite.ownedTrip(1, 7)

	start, end := "2025-05-06", "2025-05-04"
	_, err := suite.service.CreateStep(ctx, 1, 7, dto.CreateStepRequest{
		Title:     "Backwards",
		StartDate: &start,
		EndDate:   &end,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StepServiceTestSuite) TestCreateStep_ForeignTrip() {
	ctx := context.Background()
	suite.ownedTrip(1, 99)

	_, err := suite.service.CreateStep(ctx, 1, 7, dto.CreateStepRequest{Title: "Nope"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *StepServiceTestSuite) TestCheckDateConflicts_BadRange() {
	ctx := context.Background()
	suite.ownedTrip(1, 7)

	_, err := suite.service.CheckDateConflicts(ctx, 1, 7, "2025-05-06", "2025-05-04", 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StepServiceTestSuite) TestCheckDateConflicts_PassesExclusion() {
	ctx := context.Background()
	suite.ownedTrip(1, 7)

	suite.mockStepRepo.FindConflictsFn = func(ctx context.Context, tripID int64, startDate, endDate string, excludeStepID int64) ([]domain.Step, error) {
		suite.Equal(int64(5), excludeStepID)
		return []domain.Step{{ID: 3, Title: "Rome"}}, nil
	}

	conflicts, err := suite.service.CheckDateConflicts(ctx, 1, 7, "2025-05-01", "2025-05-02", 5)

	suite.Require().NoError(err)
	suite.Require().Len(conflicts, 1)
	suite.Equal("Rome", conflicts[0].Title)
}

func (suite *StepServiceTestSuite) TestDeleteStep_Forbidden() {
	ctx := context.Background()
	suite.mockStepRepo.FindStepByIDFn = func(ctx context.Context, stepID int64) (*domain.Step, error) {
		return &domain.Step{ID: stepID, TripID: 1}, nil
	}
	suite.ownedTrip(1, 99)

	err := suite.service.DeleteStep(ctx, 5, 7)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestStepServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StepServiceTestSuite))
}
