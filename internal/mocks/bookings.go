package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"restman/internal/domain"
)

type BookingRepository struct {
	mock.Mock
}

func NewBookingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *BookingRepository {
	m := &BookingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *BookingRepository) Insert(booking *domain.Booking) error {
	args := _m.Called(booking)
	return args.Error(0)
}

func (_m *BookingRepository) Get(id int) (*domain.Booking, error) {
	args := _m.Called(id)
	if booking, ok := args.Get(0).(*domain.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *BookingRepository) ListAll() ([]domain.Booking, error) {
	args := _m.Called()
	if bookings, ok := args.Get(0).([]domain.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *BookingRepository) ListForUser(userID int) ([]domain.Booking, error) {
	args := _m.Called(userID)
	if bookings, ok := args.Get(0).([]domain.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *BookingRepository) UpdateStatus(id int, status domain.BookingStatus) (*domain.Booking, error) {
	args := _m.Called(id, status)
	if booking, ok := args.Get(0).(*domain.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *BookingRepository) ReplaceAssignments(id int, tables []domain.TableAssignment, status domain.BookingStatus) (*domain.Booking, error) {
	args := _m.Called(id, tables, status)
	if booking, ok := args.Get(0).(*domain.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

type TableRepository struct {
	mock.Mock
}

func NewTableRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *TableRepository {
	m := &TableRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *TableRepository) List() ([]domain.Table, error) {
	args := _m.Called()
	if tables, ok := args.Get(0).([]domain.Table); ok {
		return tables, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *TableRepository) Get(id int) (*domain.Table, error) {
	args := _m.Called(id)
	if table, ok := args.Get(0).(*domain.Table); ok {
		return table, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *TableRepository) Available(start, end time.Time, guests int) ([]domain.Table, error) {
	args := _m.Called(start, end, guests)
	if tables, ok := args.Get(0).([]domain.Table); ok {
		return tables, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *TableRepository) UpdateStatus(id int, status domain.TableStatus) (*domain.Table, error) {
	args := _m.Called(id, status)
	if table, ok := args.Get(0).(*domain.Table); ok {
		return table, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *TableRepository) QRCode(id int) ([]byte, error) {
	args := _m.Called(id)
	if png, ok := args.Get(0).([]byte); ok {
		return png, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *TableRepository) SaveQRCode(id int, png []byte) error {
	args := _m.Called(id, png)
	return args.Error(0)
}
