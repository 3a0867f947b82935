package httpapi

import (
	"encoding/json"
	"net/http"

	"restman/internal/domain"
	"restman/internal/service"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Auth.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, user, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	// A fresh login swaps the active cart to the user's own snapshot;
	// nothing is merged from the guest cart.
	if sid := sessionID(r); sid != "" {
		_ = h.Sessions.OnIdentityChange(r.Context(), domain.UserIdentity(user.ID, sid))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	// The token is revoked server side; it must not stay usable until
	// its TTL runs out.
	if token := bearerToken(r); token != "" {
		if err := h.Auth.Logout(r.Context(), token); err != nil {
			writeError(w, err)
			return
		}
	}

	// Logout drops back to the guest identity; the guest cart is cleared
	// so the logged-out user's dishes are never exposed under it.
	if sid := sessionID(r); sid != "" {
		if err := h.Sessions.OnIdentityChange(r.Context(), domain.GuestIdentity(sid)); err != nil {
			writeError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request, user *domain.User) {
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) patchCurrentUser(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var patch service.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Auth.UpdateProfile(r.Context(), user, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
