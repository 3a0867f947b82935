package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restman/internal/domain"
	"restman/internal/mocks"
	"restman/internal/service"
)

func setupOrderService(t *testing.T) (*service.OrderService, *mocks.OrderRepository, *mocks.MenuRepository, *mocks.PaymentGateway, *mocks.EventPublisher) {
	t.Helper()
	repository := mocks.NewOrderRepository(t)
	menu := mocks.NewMenuRepository(t)
	gateway := mocks.NewPaymentGateway(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewOrderService(repository, menu,
		map[domain.PaymentMethod]service.PaymentGateway{domain.PayVNPay: gateway}, publisher)
	return svc, repository, menu, gateway, publisher
}

func TestOrderService_CreateOnline(t *testing.T) {
	svc, repository, menu, _, publisher := setupOrderService(t)
	ctx := context.Background()

	menu.On("GetDish", 1).Return(&domain.Dish{ID: 1, Name: "Pho Bo", Price: 50000}, nil).Once()
	menu.On("GetDish", 2).Return(&domain.Dish{ID: 2, Name: "Ca Phe", Price: 33000}, nil).Once()
	repository.On("Insert", mock.MatchedBy(func(o *domain.Order) bool {
		return o.Origin == domain.OriginOnline &&
			o.Status == domain.OrderPending &&
			o.TotalAmount == 133000
	})).Return(nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderCreated && e.Amount == 133000
	})).Return(nil).Once()

	// Client prices are ignored: the total comes from the menu,
	// 2x50000 + 1x33000 in minor units.
	lines := []domain.CartLine{
		{DishID: 1, UnitPrice: 1, Quantity: 2},
		{DishID: 2, UnitPrice: 1, Quantity: 1},
	}
	order, err := svc.CreateOnline(ctx, 42, domain.PayCash, lines)
	assert.NoError(t, err)
	assert.Equal(t, int64(133000), order.TotalAmount)
	assert.Equal(t, domain.OrderPending, order.Status)
}

func TestOrderService_CreateOnlineRejects(t *testing.T) {
	svc, _, _, _, _ := setupOrderService(t)
	ctx := context.Background()

	_, err := svc.CreateOnline(ctx, 42, "BITCOIN", []domain.CartLine{{DishID: 1, Quantity: 1}})
	assert.ErrorIs(t, err, service.ErrInvalidMethod)

	_, err = svc.CreateOnline(ctx, 42, domain.PayCash, nil)
	assert.ErrorIs(t, err, service.ErrNoLines)
}

func TestOrderService_Cancel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		userID        int
		stored        *domain.Order
		prepareMocks  func(repository *mocks.OrderRepository, publisher *mocks.EventPublisher)
		expectedError error
	}{
		{
			name:   "success",
			userID: 42,
			stored: &domain.Order{
				ID: 5, UserID: 42, Status: domain.OrderPending,
				TotalAmount: 100000,
				Lines:       []domain.OrderLine{{DishID: 7, Quantity: 2, UnitPrice: 50000}},
			},
			prepareMocks: func(repository *mocks.OrderRepository, publisher *mocks.EventPublisher) {
				repository.On("Update", 5, domain.OrderCancelled, domain.PaymentMethod("")).
					Return(&domain.Order{ID: 5, UserID: 42, Status: domain.OrderCancelled}, nil).Once()
				// The event carries the lines and amount so the analytics
				// consumer can reverse the creation-time counters.
				publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventOrderCancelled &&
						e.Amount == 100000 && len(e.Lines) == 1
				})).Return(nil).Once()
			},
		},
		{
			name:          "not_owner",
			userID:        7,
			stored:        &domain.Order{ID: 5, UserID: 42, Status: domain.OrderPending},
			expectedError: service.ErrNotOrderOwner,
		},
		{
			name:          "already_paid",
			userID:        42,
			stored:        &domain.Order{ID: 5, UserID: 42, Status: domain.OrderPaid},
			expectedError: service.ErrOrderNotPending,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, repository, _, _, publisher := setupOrderService(t)
			repository.On("Get", 5).Return(testCase.stored, nil).Once()
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(repository, publisher)
			}

			order, err := svc.Cancel(ctx, 5, testCase.userID)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.OrderCancelled, order.Status)
		})
	}
}

func TestOrderService_InitiatePayment(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		method        domain.PaymentMethod
		stored        *domain.Order
		prepareMocks  func(gateway *mocks.PaymentGateway)
		expectedURL   string
		expectedError error
	}{
		{
			name:   "success",
			method: domain.PayVNPay,
			stored: &domain.Order{ID: 5, Origin: domain.OriginOnline, Status: domain.OrderPending, TotalAmount: 100000},
			prepareMocks: func(gateway *mocks.PaymentGateway) {
				gateway.On("PaymentURL", ctx, mock.Anything).Return("https://pay.example/5", nil).Once()
			},
			expectedURL: "https://pay.example/5",
		},
		{
			name:          "dine_in_order",
			method:        domain.PayVNPay,
			stored:        &domain.Order{ID: 5, Origin: domain.OriginDineIn, Status: domain.OrderPending},
			expectedError: service.ErrNotOnlineOrder,
		},
		{
			name:          "not_pending",
			method:        domain.PayVNPay,
			stored:        &domain.Order{ID: 5, Origin: domain.OriginOnline, Status: domain.OrderPaid},
			expectedError: service.ErrOrderNotPending,
		},
		{
			name:          "no_gateway_for_method",
			method:        domain.PayMoMo,
			stored:        &domain.Order{ID: 5, Origin: domain.OriginOnline, Status: domain.OrderPending},
			expectedError: service.ErrUnsupportedGateway,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, repository, _, gateway, _ := setupOrderService(t)
			repository.On("Get", 5).Return(testCase.stored, nil).Once()
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(gateway)
			}

			url, err := svc.InitiatePayment(ctx, 5, testCase.method)
			assert.ErrorIs(t, err, testCase.expectedError)
			assert.Equal(t, testCase.expectedURL, url)
		})
	}
}

func TestOrderService_Update(t *testing.T) {
	svc, repository, _, _, publisher := setupOrderService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 5, "SHIPPED", domain.PayCash)
	assert.ErrorIs(t, err, service.ErrInvalidStatus)

	_, err = svc.Update(ctx, 5, domain.OrderPaid, "CHEQUE")
	assert.ErrorIs(t, err, service.ErrInvalidMethod)

	repository.On("Get", 5).Return(&domain.Order{ID: 5, Status: domain.OrderPending}, nil).Once()
	repository.On("Update", 5, domain.OrderPaid, domain.PayCash).
		Return(&domain.Order{ID: 5, Status: domain.OrderPaid, TotalAmount: 100000}, nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderPaid && e.Amount == 100000
	})).Return(nil).Once()

	order, err := svc.Update(ctx, 5, domain.OrderPaid, domain.PayCash)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, order.Status)

	// An empty method keeps the one on record; a dine-in order has none,
	// so a status-only patch is how the bill gets settled.
	repository.On("Get", 6).
		Return(&domain.Order{ID: 6, Origin: domain.OriginDineIn, Status: domain.OrderPending}, nil).Once()
	repository.On("Update", 6, domain.OrderCompleted, domain.PaymentMethod("")).
		Return(&domain.Order{ID: 6, Origin: domain.OriginDineIn, Status: domain.OrderCompleted}, nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderUpdated && e.OrderID == 6
	})).Return(nil).Once()

	order, err = svc.Update(ctx, 6, domain.OrderCompleted, "")
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderCompleted, order.Status)

	// Dine-in orders never pass through the online PAID stage.
	repository.On("Get", 6).
		Return(&domain.Order{ID: 6, Origin: domain.OriginDineIn, Status: domain.OrderPending}, nil).Once()
	_, err = svc.Update(ctx, 6, domain.OrderPaid, "")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)

	// Same for an online order: omitting the method keeps the stored one.
	repository.On("Get", 7).
		Return(&domain.Order{ID: 7, Origin: domain.OriginOnline, PaymentMethod: domain.PayVNPay, Status: domain.OrderPending}, nil).Once()
	repository.On("Update", 7, domain.OrderCompleted, domain.PayVNPay).
		Return(&domain.Order{ID: 7, Origin: domain.OriginOnline, PaymentMethod: domain.PayVNPay, Status: domain.OrderCompleted}, nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderUpdated && e.OrderID == 7
	})).Return(nil).Once()

	order, err = svc.Update(ctx, 7, domain.OrderCompleted, "")
	assert.NoError(t, err)
	assert.Equal(t, domain.PayVNPay, order.PaymentMethod)

	// A staff cancel goes out as the cancellation event, like the
	// customer path, so the analytics counters get reversed.
	repository.On("Get", 8).
		Return(&domain.Order{ID: 8, Origin: domain.OriginOnline, PaymentMethod: domain.PayCash, Status: domain.OrderPending}, nil).Once()
	repository.On("Update", 8, domain.OrderCancelled, domain.PayCash).
		Return(&domain.Order{ID: 8, Status: domain.OrderCancelled, TotalAmount: 50000}, nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderCancelled && e.Amount == 50000
	})).Return(nil).Once()

	_, err = svc.Update(ctx, 8, domain.OrderCancelled, "")
	assert.NoError(t, err)
}

func TestOrderService_ListRoleAware(t *testing.T) {
	svc, repository, _, _, _ := setupOrderService(t)
	ctx := context.Background()

	repository.On("ListAll").Return([]domain.Order{{ID: 1}, {ID: 2}}, nil).Once()
	orders, err := svc.List(ctx, &domain.User{ID: 1, Role: domain.RoleWaiter})
	assert.NoError(t, err)
	assert.Len(t, orders, 2)

	repository.On("ListForUser", 42).Return([]domain.Order{{ID: 2}}, nil).Once()
	orders, err = svc.List(ctx, &domain.User{ID: 42, Role: domain.RoleCustomer})
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}
