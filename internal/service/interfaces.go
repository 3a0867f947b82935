package service

import (
	"context"
	"time"

	"restman/internal/domain"
)

// Storage-facing interfaces. Implementations live in internal/storage;
// services depend only on these.

type SessionStore interface {
	LoadCart(ctx context.Context, key string) (domain.Cart, error)
	SaveCart(ctx context.Context, key string, cart domain.Cart) error
	DeleteCart(ctx context.Context, key string) error
	ActiveTable(ctx context.Context, sessionID string) (int, error)
	SetActiveTable(ctx context.Context, sessionID string, tableID int) error
}

type UserRepository interface {
	GetByID(id int) (*domain.User, error)
	GetByUsername(username string) (*domain.User, error)
	Insert(user *domain.User) error
	Update(user *domain.User) error
}

type TokenStore interface {
	SaveToken(ctx context.Context, token string, userID int) error
	UserIDForToken(ctx context.Context, token string) (int, error)
	DeleteToken(ctx context.Context, token string) error
}

type MenuRepository interface {
	ListCategories() ([]domain.Category, error)
	ListDishes(params DishQuery) ([]domain.Dish, int, error)
	GetDish(id int) (*domain.Dish, error)
}

type DishCache interface {
	GetDish(ctx context.Context, id int) (*domain.Dish, error)
	SetDish(ctx context.Context, dish *domain.Dish) error
}

type TableRepository interface {
	List() ([]domain.Table, error)
	Get(id int) (*domain.Table, error)
	Available(start, end time.Time, guests int) ([]domain.Table, error)
	UpdateStatus(id int, status domain.TableStatus) (*domain.Table, error)
	QRCode(id int) ([]byte, error)
	SaveQRCode(id int, png []byte) error
}

type BookingRepository interface {
	Insert(booking *domain.Booking) error
	Get(id int) (*domain.Booking, error)
	ListAll() ([]domain.Booking, error)
	ListForUser(userID int) ([]domain.Booking, error)
	UpdateStatus(id int, status domain.BookingStatus) (*domain.Booking, error)
	ReplaceAssignments(id int, tables []domain.TableAssignment, status domain.BookingStatus) (*domain.Booking, error)
}

type OrderRepository interface {
	Insert(order *domain.Order) error
	Get(id int) (*domain.Order, error)
	ListAll() ([]domain.Order, error)
	ListForUser(userID int) ([]domain.Order, error)
	Update(id int, status domain.OrderStatus, method domain.PaymentMethod) (*domain.Order, error)
}

type ReviewRepository interface {
	Insert(review *domain.Review) error
	Get(id int) (*domain.Review, error)
	Update(id int, rating int, content string) (*domain.Review, error)
	Delete(id int) error
	ListForDish(dishID int) ([]domain.Review, error)
	InsertReply(reply *domain.ReviewReply) error
}

type ReviewMarker interface {
	MarkerKey(userID, dishID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type StatsRepository interface {
	MonthlyRevenue(year int) ([]domain.MonthRevenue, error)
	DishPopularity(limit int) ([]domain.DishCount, error)
	RatingDistribution() (map[string]int, error)
}

type AnalyticsStore interface {
	RecordOrder(ctx context.Context, lines []domain.OrderLine, amount int64, day string) error
	ReverseOrder(ctx context.Context, lines []domain.OrderLine, amount int64, day string) error
	RecordReview(ctx context.Context, dishID, rating int) error
	TopDishes(ctx context.Context, limit int) ([]domain.DishCount, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// PaymentGateway builds a provider redirect URL for a pending order.
type PaymentGateway interface {
	PaymentURL(ctx context.Context, order *domain.Order) (string, error)
}

// Service interfaces consumed by the HTTP layer.

type SessionServiceInterface interface {
	GetCart(ctx context.Context, id domain.Identity) (domain.Cart, error)
	AddItem(ctx context.Context, id domain.Identity, dishID int) (domain.Cart, error)
	SetQuantity(ctx context.Context, id domain.Identity, dishID, quantity int) (domain.Cart, error)
	RemoveItem(ctx context.Context, id domain.Identity, dishID int) (domain.Cart, error)
	ClearCart(ctx context.Context, id domain.Identity) error
	OnIdentityChange(ctx context.Context, newID domain.Identity) error
	ActiveTable(ctx context.Context, sessionID string) (int, error)
	SetActiveTable(ctx context.Context, sessionID string, tableID int) error
}

type CheckoutServiceInterface interface {
	Decide(ctx context.Context, id domain.Identity) (domain.CheckoutPlan, error)
	Submit(ctx context.Context, id domain.Identity, method domain.PaymentMethod) (*domain.Order, string, error)
}

type OrderServiceInterface interface {
	CreateOnline(ctx context.Context, userID int, method domain.PaymentMethod, lines []domain.CartLine) (*domain.Order, error)
	PlaceAtTable(ctx context.Context, tableID int, lines []domain.CartLine) (*domain.Order, error)
	InitiatePayment(ctx context.Context, orderID int, method domain.PaymentMethod) (string, error)
	Cancel(ctx context.Context, orderID, userID int) (*domain.Order, error)
	Update(ctx context.Context, orderID int, status domain.OrderStatus, method domain.PaymentMethod) (*domain.Order, error)
	List(ctx context.Context, user *domain.User) ([]domain.Order, error)
	Get(ctx context.Context, orderID int) (*domain.Order, error)
}

type BookingServiceInterface interface {
	Create(ctx context.Context, userID int, requestedTime time.Time, partySize int, note string) (*domain.Booking, error)
	List(ctx context.Context, user *domain.User) ([]domain.Booking, error)
	Get(ctx context.Context, bookingID int) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, userID int) (*domain.Booking, error)
	AssignTables(ctx context.Context, bookingID int, assignments []AssignmentRequest) (*domain.Booking, error)
	Complete(ctx context.Context, bookingID int) (*domain.Booking, error)
}

type TableServiceInterface interface {
	ListStatuses(ctx context.Context) ([]domain.Table, error)
	UpdateStatus(ctx context.Context, tableID int, status domain.TableStatus) (*domain.Table, error)
	Available(ctx context.Context, start, end time.Time, guests int) ([]domain.Table, error)
	QRCode(ctx context.Context, tableID int) ([]byte, error)
}

type MenuServiceInterface interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListDishes(ctx context.Context, params DishQuery) (*DishPage, error)
	GetDish(ctx context.Context, dishID int) (*domain.Dish, error)
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, review *domain.Review) error
	Update(ctx context.Context, reviewID int, user *domain.User, rating int, content string) (*domain.Review, error)
	Delete(ctx context.Context, reviewID int, user *domain.User) error
	ListForDish(ctx context.Context, dishID int) ([]domain.Review, error)
	Reply(ctx context.Context, reviewID int, user *domain.User, content string) (*domain.ReviewReply, error)
}

type StatsServiceInterface interface {
	MonthlyRevenue(ctx context.Context, year int) ([]domain.MonthRevenue, error)
	DishPopularity(ctx context.Context) ([]domain.DishCount, error)
	RatingDistribution(ctx context.Context) (map[string]int, error)
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User, patch ProfilePatch) (*domain.User, error)
}

var (
	_ SessionServiceInterface  = (*SessionService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
	_ OrderServiceInterface    = (*OrderService)(nil)
	_ BookingServiceInterface  = (*BookingService)(nil)
	_ TableServiceInterface    = (*TableService)(nil)
	_ MenuServiceInterface     = (*MenuService)(nil)
	_ ReviewServiceInterface   = (*ReviewService)(nil)
	_ StatsServiceInterface    = (*StatsService)(nil)
	_ AuthServiceInterface     = (*AuthService)(nil)
)
