package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restman/internal/domain"
)

// OccupancyWindow is how long an assigned table is held for a booking,
// measured from the requested time. It parameterizes the availability
// query; nothing transitions automatically when it elapses.
const OccupancyWindow = 2 * time.Hour

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingNotCancellable = errors.New("booking can no longer be cancelled")
	ErrNotBookingOwner       = errors.New("booking belongs to another user")
	ErrBookingNotPending     = errors.New("tables can only be assigned to a pending booking")
	ErrBookingNotConfirmed   = errors.New("only a confirmed booking can be completed")
	ErrNoTablesSelected      = errors.New("at least one table must be assigned")
	ErrInvalidPartySize      = errors.New("party size must be at least 1")
)

// AssignmentRequest is one staff-selected table for a booking. The
// occupancy window is derived from the booking, not supplied by the
// caller.
type AssignmentRequest struct {
	TableID int    `json:"table_id"`
	Note    string `json:"note,omitempty"`
}

// BookingService drives the reservation lifecycle. Transitions are gated
// here before any storage call: the repository never sees an illegal one.
type BookingService struct {
	repository BookingRepository
	publisher  EventPublisher
}

func NewBookingService(repository BookingRepository, publisher EventPublisher) *BookingService {
	return &BookingService{repository: repository, publisher: publisher}
}

func (s *BookingService) Create(ctx context.Context, userID int, requestedTime time.Time, partySize int, note string) (*domain.Booking, error) {
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}

	booking := &domain.Booking{
		UserID:        userID,
		RequestedTime: requestedTime,
		PartySize:     partySize,
		Note:          note,
		Status:        domain.BookingPending,
	}
	if err := s.repository.Insert(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publish(ctx, domain.Event{Type: domain.EventBookingCreated, BookingID: booking.ID, UserID: userID})
	return booking, nil
}

func (s *BookingService) List(ctx context.Context, user *domain.User) ([]domain.Booking, error) {
	if user.Role.IsStaff() {
		return s.repository.ListAll()
	}
	return s.repository.ListForUser(user.ID)
}

func (s *BookingService) Get(ctx context.Context, bookingID int) (*domain.Booking, error) {
	booking, err := s.repository.Get(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// Cancel is the requester-side transition, valid from PENDING or
// CONFIRMED only.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userID int) (*domain.Booking, error) {
	booking, err := s.repository.Get(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	if !booking.Status.Cancellable() {
		return nil, ErrBookingNotCancellable
	}

	updated, err := s.repository.UpdateStatus(bookingID, domain.BookingCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.publish(ctx, domain.Event{Type: domain.EventBookingCancelled, BookingID: bookingID, UserID: userID})
	return updated, nil
}

// AssignTables replaces any previous assignments with the given tables
// and confirms the booking. Each table is held for the occupancy window
// starting at the requested time.
func (s *BookingService) AssignTables(ctx context.Context, bookingID int, assignments []AssignmentRequest) (*domain.Booking, error) {
	if len(assignments) == 0 {
		return nil, ErrNoTablesSelected
	}

	booking, err := s.repository.Get(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != domain.BookingPending {
		return nil, ErrBookingNotPending
	}

	start := booking.RequestedTime
	end := start.Add(OccupancyWindow)
	tables := make([]domain.TableAssignment, 0, len(assignments))
	for _, a := range assignments {
		tables = append(tables, domain.TableAssignment{
			TableID:   a.TableID,
			StartTime: start,
			EndTime:   end,
			Note:      a.Note,
		})
	}

	updated, err := s.repository.ReplaceAssignments(bookingID, tables, domain.BookingConfirmed)
	if err != nil {
		return nil, fmt.Errorf("failed to assign tables: %w", err)
	}

	s.publish(ctx, domain.Event{Type: domain.EventBookingConfirmed, BookingID: bookingID})
	return updated, nil
}

// Complete is the staff transition once the dining period has ended.
// There is no automatic timeout.
func (s *BookingService) Complete(ctx context.Context, bookingID int) (*domain.Booking, error) {
	booking, err := s.repository.Get(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != domain.BookingConfirmed {
		return nil, ErrBookingNotConfirmed
	}

	updated, err := s.repository.UpdateStatus(bookingID, domain.BookingCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to complete booking: %w", err)
	}

	s.publish(ctx, domain.Event{Type: domain.EventBookingCompleted, BookingID: bookingID})
	return updated, nil
}

func (s *BookingService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = time.Now()
	_ = s.publisher.Publish(ctx, event)
}
