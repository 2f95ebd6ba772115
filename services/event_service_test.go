package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	models "github.com/aidlink/aidlink-go/models"
	repositories "github.com/aidlink/aidlink-go/repositories"
)

func TestAddEventAllocatesNextID(t *testing.T) {
	events := new(MockEventRepository)
	svc := NewEventService(events)

	events.On("MaxID", mock.Anything).Return(7, nil)
	events.On("Insert", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
		return e.ID == 8
	})).Return(nil)

	created, err := svc.AddEvent(context.Background(), &models.Event{Title: "Flood relief"})

	assert.NoError(t, err)
	assert.Equal(t, 8, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	events.AssertExpectations(t)
}

func TestAddEventKeepsExplicitID(t *testing.T) {
	events := new(MockEventRepository)
	svc := NewEventService(events)

	events.On("Insert", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
		return e.ID == 42
	})).Return(nil)

	created, err := svc.AddEvent(context.Background(), &models.Event{ID: 42, Title: "Earthquake response"})

	assert.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	events.AssertNotCalled(t, "MaxID", mock.Anything)
}

// An explicit out-of-sequence id does not disturb the allocator: the next
// unlabeled creation still takes max+1.
func TestAddEventAllocatesAfterExplicitID(t *testing.T) {
	events := new(MockEventRepository)
	svc := NewEventService(events)

	events.On("MaxID", mock.Anything).Return(42, nil)
	events.On("Insert", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
		return e.ID == 43
	})).Return(nil)

	created, err := svc.AddEvent(context.Background(), &models.Event{Title: "Wildfire shelter"})

	assert.NoError(t, err)
	assert.Equal(t, 43, created.ID)
}

func TestAddEventRetriesOnDuplicateID(t *testing.T) {
	events := new(MockEventRepository)
	svc := NewEventService(events)

	// A concurrent creation takes id 8 between our MaxID read and insert.
	events.On("MaxID", mock.Anything).Return(7, nil).Once()
	events.On("Insert", mock.Anything, mock.Anything).Return(repositories.ErrDuplicateID).Once()
	events.On("MaxID", mock.Anything).Return(8, nil).Once()
	events.On("Insert", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
		return e.ID == 9
	})).Return(nil).Once()

	created, err := svc.AddEvent(context.Background(), &models.Event{Title: "Drought response"})

	assert.NoError(t, err)
	assert.Equal(t, 9, created.ID)
	events.AssertExpectations(t)
}

// When every allocation attempt collides, the service reports its own
// allocation error rather than leaking the repository sentinel.
func TestAddEventAllocationExhausted(t *testing.T) {
	events := new(MockEventRepository)
	svc := NewEventService(events)

	events.On("MaxID", mock.Anything).Return(7, nil)
	events.On("Insert", mock.Anything, mock.Anything).Return(repositories.ErrDuplicateID)

	created, err := svc.AddEvent(context.Background(), &models.Event{Title: "Cyclone relief"})

	assert.ErrorIs(t, err, ErrIDAllocation)
	assert.NotErrorIs(t, err, repositories.ErrDuplicateID)
	assert.Nil(t, created)
	events.AssertNumberOfCalls(t, "Insert", maxIDAttempts)
}

func TestAddEventExplicitIDTaken(t *testing.T) {
	events := new(MockEventRepository)
	svc := NewEventService(events)

	events.On("Insert", mock.Anything, mock.Anything).Return(repositories.ErrDuplicateID)

	created, err := svc.AddEvent(context.Background(), &models.Event{ID: 5, Title: "Storm relief"})

	assert.ErrorIs(t, err, ErrEventIDTaken)
	assert.Nil(t, created)
}

func TestGetEventByIDNotFound(t *testing.T) {
	events := new(MockEventRepository)
	svc := NewEventService(events)

	events.On("FindByID", mock.Anything, 999).Return(nil, repositories.ErrNotFound)

	got, err := svc.GetEventByID(context.Background(), 999)

	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Nil(t, got)
}

func TestGetAllEvents(t *testing.T) {
	events := new(MockEventRepository)
	svc := NewEventService(events)

	stored := []models.Event{{ID: 1, Title: "Flood relief"}, {ID: 2, Title: "Earthquake response"}}
	events.On("FindAll", mock.Anything).Return(stored, nil)

	got, err := svc.GetAllEvents(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, stored, got)
}
