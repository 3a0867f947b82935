package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"restman/internal/service"
)

// Handler wires every service behind the REST surface.
type Handler struct {
	Auth     service.AuthServiceInterface
	Menu     service.MenuServiceInterface
	Sessions service.SessionServiceInterface
	Checkout service.CheckoutServiceInterface
	Orders   service.OrderServiceInterface
	Bookings service.BookingServiceInterface
	Tables   service.TableServiceInterface
	Reviews  service.ReviewServiceInterface
	Stats    service.StatsServiceInterface
}

func NewHandler(
	auth service.AuthServiceInterface,
	menu service.MenuServiceInterface,
	sessions service.SessionServiceInterface,
	checkout service.CheckoutServiceInterface,
	orders service.OrderServiceInterface,
	bookings service.BookingServiceInterface,
	tables service.TableServiceInterface,
	reviews service.ReviewServiceInterface,
	stats service.StatsServiceInterface,
) *Handler {
	return &Handler{
		Auth:     auth,
		Menu:     menu,
		Sessions: sessions,
		Checkout: checkout,
		Orders:   orders,
		Bookings: bookings,
		Tables:   tables,
		Reviews:  reviews,
		Stats:    stats,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps sentinel errors to status codes; anything unmapped is a
// 500. The message always reaches the caller so the UI can surface it.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), errStatus(err))
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrDishNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrTableNotFound),
		errors.Is(err, service.ErrReviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateReview):
		return http.StatusConflict
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrSessionExpired):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotOrderOwner),
		errors.Is(err, service.ErrNotBookingOwner),
		errors.Is(err, service.ErrNotReviewOwner),
		errors.Is(err, service.ErrReplyForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrCheckoutBlocked),
		errors.Is(err, service.ErrLineNotInCart),
		errors.Is(err, service.ErrOrderNotPending),
		errors.Is(err, service.ErrNotOnlineOrder),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidMethod),
		errors.Is(err, service.ErrUnsupportedGateway),
		errors.Is(err, service.ErrNoLines),
		errors.Is(err, service.ErrBookingNotCancellable),
		errors.Is(err, service.ErrBookingNotPending),
		errors.Is(err, service.ErrBookingNotConfirmed),
		errors.Is(err, service.ErrNoTablesSelected),
		errors.Is(err, service.ErrInvalidPartySize),
		errors.Is(err, service.ErrInvalidTableStatus),
		errors.Is(err, service.ErrInvalidWindow),
		errors.Is(err, service.ErrInvalidRating):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "restman",
	})
}
