package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restman/internal/domain"
	"restman/internal/mocks"
	"restman/internal/service"
)

func TestBookingService_Create(t *testing.T) {
	repository := mocks.NewBookingRepository(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewBookingService(repository, publisher)
	ctx := context.Background()

	_, err := svc.Create(ctx, 42, time.Now(), 0, "")
	assert.ErrorIs(t, err, service.ErrInvalidPartySize)

	repository.On("Insert", mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingPending && b.PartySize == 4
	})).Return(nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventBookingCreated
	})).Return(nil).Once()

	booking, err := svc.Create(ctx, 42, time.Now().Add(24*time.Hour), 4, "window seat")
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, booking.Status)
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		userID        int
		status        domain.BookingStatus
		expectedError error
	}{
		{name: "cancel_pending", userID: 42, status: domain.BookingPending},
		{name: "cancel_confirmed", userID: 42, status: domain.BookingConfirmed},
		{name: "completed_is_final", userID: 42, status: domain.BookingCompleted, expectedError: service.ErrBookingNotCancellable},
		{name: "cancelled_is_final", userID: 42, status: domain.BookingCancelled, expectedError: service.ErrBookingNotCancellable},
		{name: "not_owner", userID: 7, status: domain.BookingPending, expectedError: service.ErrNotBookingOwner},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewBookingRepository(t)
			publisher := mocks.NewEventPublisher(t)
			svc := service.NewBookingService(repository, publisher)

			repository.On("Get", 5).Return(&domain.Booking{ID: 5, UserID: 42, Status: testCase.status}, nil).Once()
			if testCase.expectedError == nil {
				repository.On("UpdateStatus", 5, domain.BookingCancelled).
					Return(&domain.Booking{ID: 5, UserID: 42, Status: domain.BookingCancelled}, nil).Once()
				publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventBookingCancelled
				})).Return(nil).Once()
			}

			booking, err := svc.Cancel(ctx, 5, testCase.userID)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.BookingCancelled, booking.Status)
		})
	}
}

func TestBookingService_AssignTables(t *testing.T) {
	repository := mocks.NewBookingRepository(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewBookingService(repository, publisher)
	ctx := context.Background()

	_, err := svc.AssignTables(ctx, 5, nil)
	assert.ErrorIs(t, err, service.ErrNoTablesSelected)

	requested := time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)
	repository.On("Get", 5).
		Return(&domain.Booking{ID: 5, Status: domain.BookingPending, RequestedTime: requested}, nil).Once()
	repository.On("ReplaceAssignments", 5, mock.MatchedBy(func(tables []domain.TableAssignment) bool {
		// Each table is held from the requested time for the occupancy
		// window.
		return len(tables) == 2 &&
			tables[0].StartTime.Equal(requested) &&
			tables[0].EndTime.Equal(requested.Add(service.OccupancyWindow))
	}), domain.BookingConfirmed).
		Return(&domain.Booking{ID: 5, Status: domain.BookingConfirmed}, nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventBookingConfirmed
	})).Return(nil).Once()

	booking, err := svc.AssignTables(ctx, 5, []service.AssignmentRequest{
		{TableID: 1}, {TableID: 2, Note: "join tables"},
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, booking.Status)
}

func TestBookingService_AssignRequiresPending(t *testing.T) {
	repository := mocks.NewBookingRepository(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewBookingService(repository, publisher)
	ctx := context.Background()

	repository.On("Get", 5).
		Return(&domain.Booking{ID: 5, Status: domain.BookingConfirmed}, nil).Once()

	_, err := svc.AssignTables(ctx, 5, []service.AssignmentRequest{{TableID: 1}})
	assert.ErrorIs(t, err, service.ErrBookingNotPending)
}

func TestBookingService_Complete(t *testing.T) {
	repository := mocks.NewBookingRepository(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewBookingService(repository, publisher)
	ctx := context.Background()

	repository.On("Get", 5).Return(&domain.Booking{ID: 5, Status: domain.BookingPending}, nil).Once()
	_, err := svc.Complete(ctx, 5)
	assert.ErrorIs(t, err, service.ErrBookingNotConfirmed)

	repository.On("Get", 5).Return(&domain.Booking{ID: 5, Status: domain.BookingConfirmed}, nil).Once()
	repository.On("UpdateStatus", 5, domain.BookingCompleted).
		Return(&domain.Booking{ID: 5, Status: domain.BookingCompleted}, nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventBookingCompleted
	})).Return(nil).Once()

	booking, err := svc.Complete(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, booking.Status)
}
