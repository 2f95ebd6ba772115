package services

import (
	"context"
	"errors"
	"time"

	models "github.com/aidlink/aidlink-go/models"
	repositories "github.com/aidlink/aidlink-go/repositories"
)

// maxIDAttempts bounds the allocation retry loop when concurrent creations
// race for the same id.
const maxIDAttempts = 5

var (
	ErrEventIDTaken = errors.New("event id already exists")
	ErrIDAllocation = errors.New("could not allocate an event id")
)

type EventService interface {
	// AddEvent stores the event. When no id is supplied, the next id is
	// max(existing ids, 0) + 1; the insert retries on a duplicate-key
	// collision so concurrent unlabeled creations cannot share an id.
	AddEvent(ctx context.Context, event *models.Event) (*models.Event, error)

	GetAllEvents(ctx context.Context) ([]models.Event, error)
	GetEventByID(ctx context.Context, id int) (*models.Event, error)

	// SetCoverImage stores the uploaded cover image URL on the event.
	SetCoverImage(ctx context.Context, id int, url string) (*models.Event, error)
}

type eventService struct {
	events repositories.EventRepository
}

func NewEventService(events repositories.EventRepository) EventService {
	return &eventService{events: events}
}

func (s *eventService) AddEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if event.ID != 0 {
		if err := s.events.Insert(ctx, event); err != nil {
			if errors.Is(err, repositories.ErrDuplicateID) {
				return nil, ErrEventIDTaken
			}
			return nil, err
		}
		return event, nil
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		maxID, err := s.events.MaxID(ctx)
		if err != nil {
			return nil, err
		}

		event.ID = maxID + 1
		err = s.events.Insert(ctx, event)
		if err == nil {
			return event, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateID) {
			return nil, err
		}
	}
	return nil, ErrIDAllocation
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	return s.events.FindAll(ctx)
}

func (s *eventService) GetEventByID(ctx context.Context, id int) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) SetCoverImage(ctx context.Context, id int, url string) (*models.Event, error) {
	event, err := s.events.SetCoverImage(ctx, id, url)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}
