package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	models "github.com/aidlink/aidlink-go/models"
	repositories "github.com/aidlink/aidlink-go/repositories"
)

// MockEventRepository is a mock implementation of repositories.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindByID(ctx context.Context, id int) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) MaxID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepository) Insert(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) IncrementFunding(ctx context.Context, id, amount int) (*models.Event, error) {
	args := m.Called(ctx, id, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) SetCoverImage(ctx context.Context, id int, url string) (*models.Event, error) {
	args := m.Called(ctx, id, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) IncrementDonated(ctx context.Context, email string, amount int) (*models.User, error) {
	args := m.Called(ctx, email, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockDonationRepository is a mock implementation of repositories.DonationRepository
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) Insert(ctx context.Context, donation *models.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepository) FindByEvent(ctx context.Context, eventID int) ([]models.Donation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Donation), args.Error(1)
}

func TestSettleCreditsEventAndUser(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	donations := new(MockDonationRepository)
	svc := NewDonationService(events, users, donations)

	updated := &models.Event{ID: 5, FundingGoal: 500, CurrentFunding: 150}
	events.On("IncrementFunding", mock.Anything, 5, 50).Return(updated, nil)
	users.On("IncrementDonated", mock.Anything, "a@x.com", 50).
		Return(&models.User{Email: "a@x.com", DonatedAmount: 70}, nil)
	donations.On("Insert", mock.Anything, mock.MatchedBy(func(d *models.Donation) bool {
		return d.EventID == 5 && d.Amount == 50 && d.UserEmail == "a@x.com" && d.UserCredited
	})).Return(nil)

	result, err := svc.Settle(context.Background(), 5, 50, "a@x.com")

	assert.NoError(t, err)
	assert.True(t, result.EventUpdated)
	assert.True(t, result.UserUpdated)
	assert.Equal(t, 150, result.Event.CurrentFunding)
	assert.NotEmpty(t, result.Reference)
	events.AssertExpectations(t)
	users.AssertExpectations(t)
	donations.AssertExpectations(t)
}

func TestSettleRejectsNonPositiveAmount(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := NewDonationService(events, users, nil)

	for _, amount := range []int{0, -10} {
		result, err := svc.Settle(context.Background(), 5, amount, "a@x.com")

		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Nil(t, result)
	}
	events.AssertNotCalled(t, "IncrementFunding", mock.Anything, mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "IncrementDonated", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleRejectsMissingEmail(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := NewDonationService(events, users, nil)

	result, err := svc.Settle(context.Background(), 5, 50, "")

	assert.ErrorIs(t, err, ErrMissingEmail)
	assert.Nil(t, result)
	events.AssertNotCalled(t, "IncrementFunding", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleEventNotFound(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := NewDonationService(events, users, nil)

	events.On("IncrementFunding", mock.Anything, 999, 50).Return(nil, repositories.ErrNotFound)

	result, err := svc.Settle(context.Background(), 999, 50, "a@x.com")

	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Nil(t, result)
	users.AssertNotCalled(t, "IncrementDonated", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettleMissingUserStillCreditsEvent(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	donations := new(MockDonationRepository)
	svc := NewDonationService(events, users, donations)

	updated := &models.Event{ID: 5, CurrentFunding: 150}
	events.On("IncrementFunding", mock.Anything, 5, 50).Return(updated, nil)
	users.On("IncrementDonated", mock.Anything, "ghost@x.com", 50).Return(nil, repositories.ErrNotFound)
	donations.On("Insert", mock.Anything, mock.MatchedBy(func(d *models.Donation) bool {
		return !d.UserCredited
	})).Return(nil)

	result, err := svc.Settle(context.Background(), 5, 50, "ghost@x.com")

	assert.NoError(t, err)
	assert.True(t, result.EventUpdated)
	assert.False(t, result.UserUpdated)
	assert.Equal(t, 150, result.Event.CurrentFunding)
	users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSettleUserCreditFailureDoesNotFailSettle(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := NewDonationService(events, users, nil)

	events.On("IncrementFunding", mock.Anything, 5, 50).
		Return(&models.Event{ID: 5, CurrentFunding: 150}, nil)
	users.On("IncrementDonated", mock.Anything, "a@x.com", 50).
		Return(nil, errors.New("write timeout"))

	result, err := svc.Settle(context.Background(), 5, 50, "a@x.com")

	assert.NoError(t, err)
	assert.True(t, result.EventUpdated)
	assert.False(t, result.UserUpdated)
}

func TestSettleLedgerFailureDoesNotFailSettle(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	donations := new(MockDonationRepository)
	svc := NewDonationService(events, users, donations)

	events.On("IncrementFunding", mock.Anything, 5, 50).
		Return(&models.Event{ID: 5, CurrentFunding: 150}, nil)
	users.On("IncrementDonated", mock.Anything, "a@x.com", 50).
		Return(&models.User{Email: "a@x.com", DonatedAmount: 70}, nil)
	donations.On("Insert", mock.Anything, mock.Anything).Return(errors.New("write timeout"))

	result, err := svc.Settle(context.Background(), 5, 50, "a@x.com")

	assert.NoError(t, err)
	assert.True(t, result.EventUpdated)
	assert.True(t, result.UserUpdated)
}

// Settlement is deliberately not idempotent: the same arguments twice apply
// the amount twice.
func TestSettleAppliesTwiceWithoutDeduplication(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := NewDonationService(events, users, nil)

	events.On("IncrementFunding", mock.Anything, 5, 50).
		Return(&models.Event{ID: 5, CurrentFunding: 150}, nil).Once()
	events.On("IncrementFunding", mock.Anything, 5, 50).
		Return(&models.Event{ID: 5, CurrentFunding: 200}, nil).Once()
	users.On("IncrementDonated", mock.Anything, "a@x.com", 50).
		Return(&models.User{Email: "a@x.com", DonatedAmount: 70}, nil).Once()
	users.On("IncrementDonated", mock.Anything, "a@x.com", 50).
		Return(&models.User{Email: "a@x.com", DonatedAmount: 120}, nil).Once()

	first, err := svc.Settle(context.Background(), 5, 50, "a@x.com")
	assert.NoError(t, err)
	second, err := svc.Settle(context.Background(), 5, 50, "a@x.com")
	assert.NoError(t, err)

	assert.Equal(t, 150, first.Event.CurrentFunding)
	assert.Equal(t, 200, second.Event.CurrentFunding)
	assert.NotEqual(t, first.Reference, second.Reference)
	events.AssertNumberOfCalls(t, "IncrementFunding", 2)
}

func TestListByEvent(t *testing.T) {
	donations := new(MockDonationRepository)
	svc := NewDonationService(new(MockEventRepository), new(MockUserRepository), donations)

	entries := []models.Donation{{EventID: 5, Amount: 50, UserEmail: "a@x.com"}}
	donations.On("FindByEvent", mock.Anything, 5).Return(entries, nil)

	got, err := svc.ListByEvent(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}
