package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restman/internal/domain"
)

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderRepository) Insert(order *domain.Order) error {
	args := _m.Called(order)
	return args.Error(0)
}

func (_m *OrderRepository) Get(id int) (*domain.Order, error) {
	args := _m.Called(id)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *OrderRepository) ListAll() ([]domain.Order, error) {
	args := _m.Called()
	if orders, ok := args.Get(0).([]domain.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *OrderRepository) ListForUser(userID int) ([]domain.Order, error) {
	args := _m.Called(userID)
	if orders, ok := args.Get(0).([]domain.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *OrderRepository) Update(id int, status domain.OrderStatus, method domain.PaymentMethod) (*domain.Order, error) {
	args := _m.Called(id, status, method)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

type PaymentGateway struct {
	mock.Mock
}

func NewPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentGateway {
	m := &PaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *PaymentGateway) PaymentURL(ctx context.Context, order *domain.Order) (string, error) {
	args := _m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := _m.Called(ctx, event)
	return args.Error(0)
}
