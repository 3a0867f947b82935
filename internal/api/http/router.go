package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"restman/internal/domain"
)

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", healthCheck).Methods("GET")

	r.HandleFunc("/api/users", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/users/current-user", requireUser(h.getCurrentUser)).Methods("GET")
	r.HandleFunc("/api/users/current-user", requireUser(h.patchCurrentUser)).Methods("PATCH")

	r.HandleFunc("/api/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/api/dishes", h.listDishes).Methods("GET")
	r.HandleFunc("/api/dishes/{id}", h.getDish).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{dishId}", h.setCartItemQuantity).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{dishId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")

	r.HandleFunc("/api/session/table", h.getActiveTable).Methods("GET")
	r.HandleFunc("/api/session/table", h.setActiveTable).Methods("PUT")
	r.HandleFunc("/api/session/table", h.clearActiveTable).Methods("DELETE")

	r.HandleFunc("/api/checkout/plan", h.checkoutPlan).Methods("GET")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", requireUser(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", requireUser(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/cancel", requireUser(h.cancelOrder)).Methods("POST")
	r.HandleFunc("/api/orders/{id}/pay", requireUser(h.payOrder)).Methods("POST")
	r.HandleFunc("/api/orders/{id}", requireCapability(domain.Role.CanManageOrders, h.updateOrder)).Methods("PATCH")

	r.HandleFunc("/api/bookings", requireUser(h.createBooking)).Methods("POST")
	r.HandleFunc("/api/bookings", requireUser(h.listBookings)).Methods("GET")
	r.HandleFunc("/api/bookings/{id}", requireUser(h.getBooking)).Methods("GET")
	r.HandleFunc("/api/bookings/{id}/cancel", requireUser(h.cancelBooking)).Methods("POST")
	r.HandleFunc("/api/bookings/{id}/tables", requireCapability(domain.Role.CanManageBookings, h.assignBookingTables)).Methods("PUT")
	r.HandleFunc("/api/bookings/{id}/complete", requireCapability(domain.Role.CanManageBookings, h.completeBooking)).Methods("POST")

	r.HandleFunc("/api/tables", requireCapability(domain.Role.CanManageTables, h.listTables)).Methods("GET")
	r.HandleFunc("/api/tables/{id}/status", requireCapability(domain.Role.CanManageTables, h.updateTableStatus)).Methods("PATCH")
	r.HandleFunc("/api/tables/available", requireCapability(domain.Role.CanManageBookings, h.availableTables)).Methods("GET")
	r.HandleFunc("/api/tables/{id}/qrcode", requireCapability(domain.Role.CanManageTables, h.tableQRCode)).Methods("GET")

	r.HandleFunc("/api/dishes/{id}/reviews", h.listDishReviews).Methods("GET")
	r.HandleFunc("/api/dishes/{id}/reviews", requireUser(h.createReview)).Methods("POST")
	r.HandleFunc("/api/reviews/{id}", requireUser(h.updateReview)).Methods("PATCH")
	r.HandleFunc("/api/reviews/{id}", requireUser(h.deleteReview)).Methods("DELETE")
	r.HandleFunc("/api/reviews/{id}/replies", requireCapability(domain.Role.CanModerateReviews, h.replyToReview)).Methods("POST")

	r.HandleFunc("/api/statistics/revenue", requireCapability(domain.Role.CanViewStatistics, h.monthlyRevenue)).Methods("GET")
	r.HandleFunc("/api/statistics/dishes", requireCapability(domain.Role.CanViewStatistics, h.dishPopularity)).Methods("GET")
	r.HandleFunc("/api/statistics/ratings", requireCapability(domain.Role.CanViewStatistics, h.ratingDistribution)).Methods("GET")
}

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.Default().Handler(handler.withIdentity(r))
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("[restman] listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
