package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	models "github.com/aidlink/aidlink-go/models"
	repositories "github.com/aidlink/aidlink-go/repositories"
)

var (
	ErrInvalidAmount = errors.New("donation amount must be greater than 0")
	ErrMissingEmail  = errors.New("user email is required")
	ErrEventNotFound = errors.New("event not found")
)

// SettlementResult reports which side of the dual write applied. The event
// credit is the primary guarantee; the user credit is best effort and its
// outcome is carried separately instead of failing the call.
type SettlementResult struct {
	Event        *models.Event
	EventUpdated bool
	UserUpdated  bool
	Reference    string
}

type DonationService interface {
	// Settle credits amount to the event's running total and, best effort,
	// to the user's lifetime total. A missing user does not fail the call.
	// There is no deduplication: settling the same arguments twice applies
	// the amount twice.
	Settle(ctx context.Context, eventID, amount int, userEmail string) (*SettlementResult, error)

	// ListByEvent returns the ledger entries recorded for an event.
	ListByEvent(ctx context.Context, eventID int) ([]models.Donation, error)
}

type donationService struct {
	events    repositories.EventRepository
	users     repositories.UserRepository
	donations repositories.DonationRepository
}

func NewDonationService(
	events repositories.EventRepository,
	users repositories.UserRepository,
	donations repositories.DonationRepository,
) DonationService {
	return &donationService{
		events:    events,
		users:     users,
		donations: donations,
	}
}

func (s *donationService) Settle(ctx context.Context, eventID, amount int, userEmail string) (*SettlementResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if userEmail == "" {
		return nil, ErrMissingEmail
	}

	// Primary write: the increment runs storage-side, so the event total is
	// never clamped to the funding goal and never loses concurrent updates.
	event, err := s.events.IncrementFunding(ctx, eventID, amount)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	result := &SettlementResult{
		Event:        event,
		EventUpdated: true,
		Reference:    uuid.NewString(),
	}

	// Secondary write: the event credit stands whether or not this applies.
	_, err = s.users.IncrementDonated(ctx, userEmail, amount)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		log.Printf("settle %s: no user with email %s, event %d credit stands", result.Reference, userEmail, eventID)
	case err != nil:
		log.Printf("settle %s: user credit for %s failed: %v", result.Reference, userEmail, err)
	default:
		result.UserUpdated = true
	}

	s.record(ctx, result, eventID, amount, userEmail)

	return result, nil
}

// record appends a ledger entry. Failures are logged, not surfaced: the
// running totals stay authoritative.
func (s *donationService) record(ctx context.Context, result *SettlementResult, eventID, amount int, userEmail string) {
	if s.donations == nil {
		return
	}

	entry := &models.Donation{
		Reference:    result.Reference,
		EventID:      eventID,
		UserEmail:    userEmail,
		Amount:       amount,
		UserCredited: result.UserUpdated,
		CreatedAt:    time.Now(),
	}
	if err := s.donations.Insert(ctx, entry); err != nil {
		log.Printf("settle %s: ledger write failed: %v", result.Reference, err)
	}
}

func (s *donationService) ListByEvent(ctx context.Context, eventID int) ([]models.Donation, error) {
	if s.donations == nil {
		return nil, nil
	}
	return s.donations.FindByEvent(ctx, eventID)
}
