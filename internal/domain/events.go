package domain

import "time"

// Event types published to the lifecycle topic.
const (
	EventOrderCreated     = "order_created"
	EventOrderPaid        = "order_paid"
	EventOrderCancelled   = "order_cancelled"
	EventOrderUpdated     = "order_updated"
	EventBookingCreated   = "booking_created"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingCompleted = "booking_completed"
	EventBookingCancelled = "booking_cancelled"
	EventNewReview        = "new_review"
)

// Event is the JSON envelope written to Kafka for every lifecycle
// transition. Only the fields relevant to the event type are set.
type Event struct {
	Type      string      `json:"type"`
	OrderID   int         `json:"order_id,omitempty"`
	BookingID int         `json:"booking_id,omitempty"`
	DishID    int         `json:"dish_id,omitempty"`
	TableID   int         `json:"table_id,omitempty"`
	UserID    int         `json:"user_id,omitempty"`
	Rating    int         `json:"rating,omitempty"`
	Amount    int64       `json:"amount,omitempty"`
	Lines     []OrderLine `json:"lines,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
