package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"restman/internal/domain"
)

func (h *Handler) listDishReviews(w http.ResponseWriter, r *http.Request) {
	dishID, _ := strconv.Atoi(mux.Vars(r)["id"])

	reviews, err := h.Reviews.ListForDish(r.Context(), dishID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request, user *domain.User) {
	dishID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		Rating  int    `json:"rating"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	review := &domain.Review{
		DishID:  dishID,
		UserID:  user.ID,
		Rating:  req.Rating,
		Content: req.Content,
	}
	if err := h.Reviews.Create(r.Context(), review); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request, user *domain.User) {
	reviewID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		Rating  int    `json:"rating"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	review, err := h.Reviews.Update(r.Context(), reviewID, user, req.Rating, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request, user *domain.User) {
	reviewID, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Reviews.Delete(r.Context(), reviewID, user); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) replyToReview(w http.ResponseWriter, r *http.Request, user *domain.User) {
	reviewID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reply, err := h.Reviews.Reply(r.Context(), reviewID, user, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reply)
}
