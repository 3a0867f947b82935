package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"restman/internal/domain"
)

func (h *Handler) monthlyRevenue(w http.ResponseWriter, r *http.Request, user *domain.User) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if year == 0 {
		year = time.Now().Year()
	}

	revenue, err := h.Stats.MonthlyRevenue(r.Context(), year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, revenue)
}

func (h *Handler) dishPopularity(w http.ResponseWriter, r *http.Request, user *domain.User) {
	dishes, err := h.Stats.DishPopularity(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) ratingDistribution(w http.ResponseWriter, r *http.Request, user *domain.User) {
	ratings, err := h.Stats.RatingDistribution(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratings)
}
