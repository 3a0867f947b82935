package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"restman/internal/domain"
	"restman/internal/service"
)

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var req struct {
		RequestedTime time.Time `json:"requested_time"`
		PartySize     int       `json:"party_size"`
		Note          string    `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := h.Bookings.Create(r.Context(), user.ID, req.RequestedTime, req.PartySize, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request, user *domain.User) {
	bookings, err := h.Bookings.List(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *Handler) getBooking(w http.ResponseWriter, r *http.Request, user *domain.User) {
	bookingID, _ := strconv.Atoi(mux.Vars(r)["id"])

	booking, err := h.Bookings.Get(r.Context(), bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !user.Role.CanManageBookings() && booking.UserID != user.ID {
		http.Error(w, "not your booking", http.StatusForbidden)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) cancelBooking(w http.ResponseWriter, r *http.Request, user *domain.User) {
	bookingID, _ := strconv.Atoi(mux.Vars(r)["id"])

	booking, err := h.Bookings.Cancel(r.Context(), bookingID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) assignBookingTables(w http.ResponseWriter, r *http.Request, user *domain.User) {
	bookingID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		Tables []service.AssignmentRequest `json:"tables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := h.Bookings.AssignTables(r.Context(), bookingID, req.Tables)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) completeBooking(w http.ResponseWriter, r *http.Request, user *domain.User) {
	bookingID, _ := strconv.Atoi(mux.Vars(r)["id"])

	booking, err := h.Bookings.Complete(r.Context(), bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
