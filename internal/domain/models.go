package domain

import "time"

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Dish prices are integral minor units (VND has no subunit); all money in
// this package is int64, never floating point.
type Dish struct {
	ID          int       `json:"id"`
	CategoryID  int       `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url"`
	AvgRating   float64   `json:"avg_rating"`
	ReviewCount int       `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Table struct {
	ID          int         `json:"id"`
	TableNumber string      `json:"table_number"`
	Capacity    int         `json:"capacity"`
	Status      TableStatus `json:"status"`
}

type Booking struct {
	ID            int                `json:"id"`
	UserID        int                `json:"user_id"`
	RequestedTime time.Time          `json:"requested_time"`
	PartySize     int                `json:"party_size"`
	Note          string             `json:"note"`
	Status        BookingStatus      `json:"status"`
	Tables        []TableAssignment  `json:"tables"`
	CreatedAt     time.Time          `json:"created_at"`
}

// TableAssignment is a staff-assigned table with its occupancy window,
// derived from the booking's requested time.
type TableAssignment struct {
	TableID   int       `json:"table_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Note      string    `json:"note,omitempty"`
}

type Order struct {
	ID            int           `json:"id"`
	Origin        OrderOrigin   `json:"origin"`
	UserID        int           `json:"user_id,omitempty"`
	TableID       int           `json:"table_id,omitempty"`
	Lines         []OrderLine   `json:"lines"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Status        OrderStatus   `json:"status"`
	TotalAmount   int64         `json:"total_amount"`
	Note          string        `json:"note,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

type OrderLine struct {
	DishID    int    `json:"dish_id"`
	DishName  string `json:"dish_name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Subtotal is unit price times quantity in integer minor units.
func (l OrderLine) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

type Review struct {
	ID        int           `json:"id"`
	UserID    int           `json:"user_id"`
	Username  string        `json:"username,omitempty"`
	DishID    int           `json:"dish_id"`
	Rating    int           `json:"rating"`
	Content   string        `json:"content"`
	Replies   []ReviewReply `json:"replies,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type ReviewReply struct {
	ID        int       `json:"id"`
	ReviewID  int       `json:"review_id"`
	UserID    int       `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type MonthRevenue struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

type DishCount struct {
	DishID     int    `json:"dish_id"`
	Name       string `json:"name"`
	OrderCount int    `json:"order_count"`
}
