package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"restman/internal/domain"
)

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Sessions.GetCart(r.Context(), identity(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView(cart))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DishID int `json:"dish_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Sessions.AddItem(r.Context(), identity(r), req.DishID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView(cart))
}

func (h *Handler) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Sessions.SetQuantity(r.Context(), identity(r), dishID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView(cart))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])

	cart, err := h.Sessions.RemoveItem(r.Context(), identity(r), dishID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView(cart))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.ClearCart(r.Context(), identity(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getActiveTable(w http.ResponseWriter, r *http.Request) {
	tableID, err := h.Sessions.ActiveTable(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"table_id": tableID})
}

func (h *Handler) setActiveTable(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TableID int `json:"table_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Sessions.SetActiveTable(r.Context(), sessionID(r), req.TableID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"table_id": req.TableID})
}

func (h *Handler) clearActiveTable(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SetActiveTable(r.Context(), sessionID(r), 0); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkoutPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Checkout.Decide(r.Context(), identity(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentMethod domain.PaymentMethod `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, redirectURL, err := h.Checkout.Submit(r.Context(), identity(r), req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]interface{}{"order": order}
	if redirectURL != "" {
		resp["redirect_url"] = redirectURL
	}
	writeJSON(w, http.StatusCreated, resp)
}

// cartView renders a cart with its running total so the client never
// recomputes prices.
func cartView(cart domain.Cart) map[string]interface{} {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return map[string]interface{}{
		"lines": lines,
		"total": cart.Total(),
	}
}
