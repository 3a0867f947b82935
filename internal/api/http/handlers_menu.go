package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"restman/internal/service"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	categoryID, _ := strconv.Atoi(q.Get("category_id"))

	result, err := h.Menu.ListDishes(r.Context(), service.DishQuery{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: categoryID,
		Query:      q.Get("q"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	dishID, _ := strconv.Atoi(mux.Vars(r)["id"])

	dish, err := h.Menu.GetDish(r.Context(), dishID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}
