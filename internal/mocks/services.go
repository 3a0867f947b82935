package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"restman/internal/domain"
	"restman/internal/service"
)

type SessionService struct {
	mock.Mock
}

func NewSessionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionService {
	m := &SessionService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *SessionService) GetCart(ctx context.Context, id domain.Identity) (domain.Cart, error) {
	args := _m.Called(ctx, id)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (_m *SessionService) AddItem(ctx context.Context, id domain.Identity, dishID int) (domain.Cart, error) {
	args := _m.Called(ctx, id, dishID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (_m *SessionService) SetQuantity(ctx context.Context, id domain.Identity, dishID, quantity int) (domain.Cart, error) {
	args := _m.Called(ctx, id, dishID, quantity)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (_m *SessionService) RemoveItem(ctx context.Context, id domain.Identity, dishID int) (domain.Cart, error) {
	args := _m.Called(ctx, id, dishID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (_m *SessionService) ClearCart(ctx context.Context, id domain.Identity) error {
	args := _m.Called(ctx, id)
	return args.Error(0)
}

func (_m *SessionService) OnIdentityChange(ctx context.Context, newID domain.Identity) error {
	args := _m.Called(ctx, newID)
	return args.Error(0)
}

func (_m *SessionService) ActiveTable(ctx context.Context, sessionID string) (int, error) {
	args := _m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}

func (_m *SessionService) SetActiveTable(ctx context.Context, sessionID string, tableID int) error {
	args := _m.Called(ctx, sessionID, tableID)
	return args.Error(0)
}

type CheckoutService struct {
	mock.Mock
}

func NewCheckoutService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutService {
	m := &CheckoutService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CheckoutService) Decide(ctx context.Context, id domain.Identity) (domain.CheckoutPlan, error) {
	args := _m.Called(ctx, id)
	return args.Get(0).(domain.CheckoutPlan), args.Error(1)
}

func (_m *CheckoutService) Submit(ctx context.Context, id domain.Identity, method domain.PaymentMethod) (*domain.Order, string, error) {
	args := _m.Called(ctx, id, method)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

type OrderService struct {
	mock.Mock
}

func NewOrderService(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderService) CreateOnline(ctx context.Context, userID int, method domain.PaymentMethod, lines []domain.CartLine) (*domain.Order, error) {
	args := _m.Called(ctx, userID, method, lines)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *OrderService) PlaceAtTable(ctx context.Context, tableID int, lines []domain.CartLine) (*domain.Order, error) {
	args := _m.Called(ctx, tableID, lines)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *OrderService) InitiatePayment(ctx context.Context, orderID int, method domain.PaymentMethod) (string, error) {
	args := _m.Called(ctx, orderID, method)
	return args.String(0), args.Error(1)
}

func (_m *OrderService) Cancel(ctx context.Context, orderID, userID int) (*domain.Order, error) {
	args := _m.Called(ctx, orderID, userID)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *OrderService) Update(ctx context.Context, orderID int, status domain.OrderStatus, method domain.PaymentMethod) (*domain.Order, error) {
	args := _m.Called(ctx, orderID, status, method)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *OrderService) List(ctx context.Context, user *domain.User) ([]domain.Order, error) {
	args := _m.Called(ctx, user)
	if orders, ok := args.Get(0).([]domain.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *OrderService) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	args := _m.Called(ctx, orderID)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

type BookingService struct {
	mock.Mock
}

func NewBookingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *BookingService {
	m := &BookingService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *BookingService) Create(ctx context.Context, userID int, requestedTime time.Time, partySize int, note string) (*domain.Booking, error) {
	args := _m.Called(ctx, userID, requestedTime, partySize, note)
	if booking, ok := args.Get(0).(*domain.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *BookingService) List(ctx context.Context, user *domain.User) ([]domain.Booking, error) {
	args := _m.Called(ctx, user)
	if bookings, ok := args.Get(0).([]domain.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *BookingService) Get(ctx context.Context, bookingID int) (*domain.Booking, error) {
	args := _m.Called(ctx, bookingID)
	if booking, ok := args.Get(0).(*domain.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *BookingService) Cancel(ctx context.Context, bookingID, userID int) (*domain.Booking, error) {
	args := _m.Called(ctx, bookingID, userID)
	if booking, ok := args.Get(0).(*domain.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *BookingService) AssignTables(ctx context.Context, bookingID int, assignments []service.AssignmentRequest) (*domain.Booking, error) {
	args := _m.Called(ctx, bookingID, assignments)
	if booking, ok := args.Get(0).(*domain.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *BookingService) Complete(ctx context.Context, bookingID int) (*domain.Booking, error) {
	args := _m.Called(ctx, bookingID)
	if booking, ok := args.Get(0).(*domain.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

type TableService struct {
	mock.Mock
}

func NewTableService(t interface {
	mock.TestingT
	Cleanup(func())
}) *TableService {
	m := &TableService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *TableService) ListStatuses(ctx context.Context) ([]domain.Table, error) {
	args := _m.Called(ctx)
	if tables, ok := args.Get(0).([]domain.Table); ok {
		return tables, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *TableService) UpdateStatus(ctx context.Context, tableID int, status domain.TableStatus) (*domain.Table, error) {
	args := _m.Called(ctx, tableID, status)
	if table, ok := args.Get(0).(*domain.Table); ok {
		return table, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *TableService) Available(ctx context.Context, start, end time.Time, guests int) ([]domain.Table, error) {
	args := _m.Called(ctx, start, end, guests)
	if tables, ok := args.Get(0).([]domain.Table); ok {
		return tables, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *TableService) QRCode(ctx context.Context, tableID int) ([]byte, error) {
	args := _m.Called(ctx, tableID)
	if png, ok := args.Get(0).([]byte); ok {
		return png, args.Error(1)
	}
	return nil, args.Error(1)
}

type MenuService struct {
	mock.Mock
}

func NewMenuService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuService {
	m := &MenuService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := _m.Called(ctx)
	if categories, ok := args.Get(0).([]domain.Category); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *MenuService) ListDishes(ctx context.Context, params service.DishQuery) (*service.DishPage, error) {
	args := _m.Called(ctx, params)
	if page, ok := args.Get(0).(*service.DishPage); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *MenuService) GetDish(ctx context.Context, dishID int) (*domain.Dish, error) {
	args := _m.Called(ctx, dishID)
	if dish, ok := args.Get(0).(*domain.Dish); ok {
		return dish, args.Error(1)
	}
	return nil, args.Error(1)
}

type ReviewService struct {
	mock.Mock
}

func NewReviewService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewService {
	m := &ReviewService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ReviewService) Create(ctx context.Context, review *domain.Review) error {
	args := _m.Called(ctx, review)
	return args.Error(0)
}

func (_m *ReviewService) Update(ctx context.Context, reviewID int, user *domain.User, rating int, content string) (*domain.Review, error) {
	args := _m.Called(ctx, reviewID, user, rating, content)
	if review, ok := args.Get(0).(*domain.Review); ok {
		return review, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *ReviewService) Delete(ctx context.Context, reviewID int, user *domain.User) error {
	args := _m.Called(ctx, reviewID, user)
	return args.Error(0)
}

func (_m *ReviewService) ListForDish(ctx context.Context, dishID int) ([]domain.Review, error) {
	args := _m.Called(ctx, dishID)
	if reviews, ok := args.Get(0).([]domain.Review); ok {
		return reviews, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *ReviewService) Reply(ctx context.Context, reviewID int, user *domain.User, content string) (*domain.ReviewReply, error) {
	args := _m.Called(ctx, reviewID, user, content)
	if reply, ok := args.Get(0).(*domain.ReviewReply); ok {
		return reply, args.Error(1)
	}
	return nil, args.Error(1)
}

type StatsService struct {
	mock.Mock
}

func NewStatsService(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsService {
	m := &StatsService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StatsService) MonthlyRevenue(ctx context.Context, year int) ([]domain.MonthRevenue, error) {
	args := _m.Called(ctx, year)
	if revenue, ok := args.Get(0).([]domain.MonthRevenue); ok {
		return revenue, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *StatsService) DishPopularity(ctx context.Context) ([]domain.DishCount, error) {
	args := _m.Called(ctx)
	if dishes, ok := args.Get(0).([]domain.DishCount); ok {
		return dishes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *StatsService) RatingDistribution(ctx context.Context) (map[string]int, error) {
	args := _m.Called(ctx)
	if ratings, ok := args.Get(0).(map[string]int); ok {
		return ratings, args.Error(1)
	}
	return nil, args.Error(1)
}

type AuthService struct {
	mock.Mock
}

func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AuthService) Register(ctx context.Context, req service.RegisterRequest) (*domain.User, error) {
	args := _m.Called(ctx, req)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	args := _m.Called(ctx, username, password)
	if user, ok := args.Get(1).(*domain.User); ok {
		return args.String(0), user, args.Error(2)
	}
	return args.String(0), nil, args.Error(2)
}

func (_m *AuthService) Logout(ctx context.Context, token string) error {
	args := _m.Called(ctx, token)
	return args.Error(0)
}

func (_m *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	args := _m.Called(ctx, token)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (_m *AuthService) UpdateProfile(ctx context.Context, user *domain.User, patch service.ProfilePatch) (*domain.User, error) {
	args := _m.Called(ctx, user, patch)
	if updated, ok := args.Get(0).(*domain.User); ok {
		return updated, args.Error(1)
	}
	return nil, args.Error(1)
}
