package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"restman/internal/domain"
)

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request, user *domain.User) {
	tables, err := h.Tables.ListStatuses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) updateTableStatus(w http.ResponseWriter, r *http.Request, user *domain.User) {
	tableID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		Status domain.TableStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	table, err := h.Tables.UpdateStatus(r.Context(), tableID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) availableTables(w http.ResponseWriter, r *http.Request, user *domain.User) {
	q := r.URL.Query()

	start, err := time.Parse(time.RFC3339, q.Get("start"))
	if err != nil {
		http.Error(w, "invalid start time", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(time.RFC3339, q.Get("end"))
	if err != nil {
		http.Error(w, "invalid end time", http.StatusBadRequest)
		return
	}
	guests, _ := strconv.Atoi(q.Get("guests"))

	tables, err := h.Tables.Available(r.Context(), start, end, guests)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) tableQRCode(w http.ResponseWriter, r *http.Request, user *domain.User) {
	tableID, _ := strconv.Atoi(mux.Vars(r)["id"])

	png, err := h.Tables.QRCode(r.Context(), tableID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
