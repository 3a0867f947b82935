package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"restman/internal/domain"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request, user *domain.User) {
	orders, err := h.Orders.List(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request, user *domain.User) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.Get(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !user.Role.IsStaff() && order.UserID != user.ID {
		http.Error(w, "not your order", http.StatusForbidden)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request, user *domain.User) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.Cancel(r.Context(), orderID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) payOrder(w http.ResponseWriter, r *http.Request, user *domain.User) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		PaymentMethod domain.PaymentMethod `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Get(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if order.UserID != user.ID {
		http.Error(w, "not your order", http.StatusForbidden)
		return
	}

	redirectURL, err := h.Orders.InitiatePayment(r.Context(), orderID, req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"redirect_url": redirectURL})
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request, user *domain.User) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		Status        domain.OrderStatus   `json:"status"`
		PaymentMethod domain.PaymentMethod `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Update(r.Context(), orderID, req.Status, req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
