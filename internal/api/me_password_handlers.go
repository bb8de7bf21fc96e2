package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/termosaude/backend/internal/auth"
	"github.com/termosaude/backend/internal/repo"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// PutMyPassword troca a senha do profissional logado após conferir a atual.
func (h *Handler) PutMyPassword(w http.ResponseWriter, r *http.Request) {
	profID, err := uuid.Parse(auth.UserIDFrom(r.Context()))
	if err != nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid body"}`, http.StatusBadRequest)
		return
	}
	if len(req.NewPassword) < 8 {
		http.Error(w, `{"error":"new password too short (min 8)"}`, http.StatusBadRequest)
		return
	}
	prof, err := repo.ProfessionalByID(r.Context(), h.DB, profID)
	if err != nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	if !auth.CheckPassword(prof.PasswordHash, req.CurrentPassword) {
		http.Error(w, `{"error":"current password does not match"}`, http.StatusForbidden)
		return
	}
	hash, err := h.hashPassword(req.NewPassword)
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	if err := repo.UpdateProfessionalPassword(r.Context(), h.DB, profID, hash); err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
