package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restman/internal/domain"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPending    = errors.New("order is no longer pending")
	ErrNotOrderOwner      = errors.New("order belongs to another user")
	ErrNotOnlineOrder     = errors.New("payment can only be initiated for online orders")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrInvalidMethod      = errors.New("unknown payment method")
	ErrUnsupportedGateway = errors.New("no payment gateway for method")
	ErrNoLines            = errors.New("order has no lines")
)

// OrderService drives the order lifecycle. Statuses are server
// authoritative: every mutating call returns the stored record re-read
// after the write, never the caller's view plus a delta.
type OrderService struct {
	repository OrderRepository
	dishes     MenuRepository
	gateways   map[domain.PaymentMethod]PaymentGateway
	publisher  EventPublisher
}

func NewOrderService(repository OrderRepository, dishes MenuRepository, gateways map[domain.PaymentMethod]PaymentGateway, publisher EventPublisher) *OrderService {
	return &OrderService{
		repository: repository,
		dishes:     dishes,
		gateways:   gateways,
		publisher:  publisher,
	}
}

// priceLines re-derives unit prices from the menu and computes the total
// in integer minor units. Client-supplied prices and totals are ignored.
func (s *OrderService) priceLines(lines []domain.CartLine) ([]domain.OrderLine, int64, error) {
	if len(lines) == 0 {
		return nil, 0, ErrNoLines
	}

	priced := make([]domain.OrderLine, 0, len(lines))
	var total int64
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		dish, err := s.dishes.GetDish(line.DishID)
		if err != nil {
			return nil, 0, fmt.Errorf("dish %d: %w", line.DishID, ErrDishNotFound)
		}
		ol := domain.OrderLine{
			DishID:    dish.ID,
			DishName:  dish.Name,
			UnitPrice: dish.Price,
			Quantity:  line.Quantity,
		}
		priced = append(priced, ol)
		total += ol.Subtotal()
	}
	if len(priced) == 0 {
		return nil, 0, ErrNoLines
	}
	return priced, total, nil
}

func (s *OrderService) CreateOnline(ctx context.Context, userID int, method domain.PaymentMethod, lines []domain.CartLine) (*domain.Order, error) {
	if !domain.ValidPaymentMethod(method) {
		return nil, ErrInvalidMethod
	}

	priced, total, err := s.priceLines(lines)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		Origin:        domain.OriginOnline,
		UserID:        userID,
		Lines:         priced,
		PaymentMethod: method,
		Status:        domain.OrderPending,
		TotalAmount:   total,
	}
	if err := s.repository.Insert(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publish(ctx, domain.Event{
		Type:    domain.EventOrderCreated,
		OrderID: order.ID,
		UserID:  userID,
		Amount:  total,
		Lines:   priced,
	})
	return order, nil
}

// PlaceAtTable creates a dine-in order. No payment method is recorded at
// creation; the table pays when the bill is settled.
func (s *OrderService) PlaceAtTable(ctx context.Context, tableID int, lines []domain.CartLine) (*domain.Order, error) {
	priced, total, err := s.priceLines(lines)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		Origin:      domain.OriginDineIn,
		TableID:     tableID,
		Lines:       priced,
		Status:      domain.OrderPending,
		TotalAmount: total,
	}
	if err := s.repository.Insert(order); err != nil {
		return nil, fmt.Errorf("failed to create dine-in order: %w", err)
	}

	s.publish(ctx, domain.Event{
		Type:    domain.EventOrderCreated,
		OrderID: order.ID,
		TableID: tableID,
		Amount:  total,
		Lines:   priced,
	})
	return order, nil
}

// InitiatePayment returns the provider redirect URL for a pending online
// order. The order stays PENDING until the provider calls back.
func (s *OrderService) InitiatePayment(ctx context.Context, orderID int, method domain.PaymentMethod) (string, error) {
	order, err := s.repository.Get(orderID)
	if err != nil {
		return "", ErrOrderNotFound
	}
	if order.Origin != domain.OriginOnline {
		return "", ErrNotOnlineOrder
	}
	if order.Status != domain.OrderPending {
		return "", ErrOrderNotPending
	}

	gateway, ok := s.gateways[method]
	if !ok {
		return "", ErrUnsupportedGateway
	}
	url, err := gateway.PaymentURL(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to initiate %s payment: %w", method, err)
	}
	return url, nil
}

// Cancel is the customer-side transition, permitted only while the order
// is PENDING and owned by the caller. The gate runs before any storage
// write.
func (s *OrderService) Cancel(ctx context.Context, orderID, userID int) (*domain.Order, error) {
	order, err := s.repository.Get(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	if order.Status != domain.OrderPending {
		return nil, ErrOrderNotPending
	}

	updated, err := s.repository.Update(orderID, domain.OrderCancelled, order.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	// Lines and amount ride along so the analytics consumer can back the
	// order out of the counters its creation added.
	s.publish(ctx, domain.Event{
		Type:    domain.EventOrderCancelled,
		OrderID: orderID,
		UserID:  userID,
		Amount:  order.TotalAmount,
		Lines:   order.Lines,
	})
	return updated, nil
}

// Update is the staff-side overwrite of status and payment method. Values
// outside the closed enums are rejected; an empty method keeps the one on
// record, so a dine-in order can be settled without inventing one.
func (s *OrderService) Update(ctx context.Context, orderID int, status domain.OrderStatus, method domain.PaymentMethod) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	if method != "" && !domain.ValidPaymentMethod(method) {
		return nil, ErrInvalidMethod
	}
	order, err := s.repository.Get(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if method == "" {
		method = order.PaymentMethod
	}
	if !order.Origin.AllowsStatus(status) {
		return nil, ErrInvalidStatus
	}

	updated, err := s.repository.Update(orderID, status, method)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	eventType := domain.EventOrderUpdated
	switch status {
	case domain.OrderPaid:
		eventType = domain.EventOrderPaid
	case domain.OrderCancelled:
		eventType = domain.EventOrderCancelled
	}
	s.publish(ctx, domain.Event{
		Type:    eventType,
		OrderID: orderID,
		Amount:  updated.TotalAmount,
		Lines:   updated.Lines,
	})
	return updated, nil
}

// List is role aware: staff see every order, customers only their own.
func (s *OrderService) List(ctx context.Context, user *domain.User) ([]domain.Order, error) {
	if user.Role.IsStaff() {
		return s.repository.ListAll()
	}
	return s.repository.ListForUser(user.ID)
}

func (s *OrderService) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.repository.Get(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = time.Now()
	_ = s.publisher.Publish(ctx, event)
}
