package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/termosaude/backend/internal/auth"
	"github.com/termosaude/backend/internal/repo"
)

type SignatureRequest struct {
	// Data URL (data:image/png;base64,...) ou vazio para remover
	SignatureImageData string `json:"signature_image_data"`
}

// GetMySignature retorna a imagem de assinatura cadastrada do profissional logado.
func (h *Handler) GetMySignature(w http.ResponseWriter, r *http.Request) {
	profID, err := uuid.Parse(auth.UserIDFrom(r.Context()))
	if err != nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	prof, err := repo.ProfessionalByID(r.Context(), h.DB, profID)
	if err != nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	sig := ""
	if prof.SignatureImageData != nil {
		sig = *prof.SignatureImageData
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"signature_image_data": sig})
}

// PutMySignature grava (ou remove, se vazia) a imagem de assinatura usada no PDF do termo.
func (h *Handler) PutMySignature(w http.ResponseWriter, r *http.Request) {
	profID, err := uuid.Parse(auth.UserIDFrom(r.Context()))
	if err != nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	var req SignatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid body"}`, http.StatusBadRequest)
		return
	}
	data := strings.TrimSpace(req.SignatureImageData)
	if data != "" && !strings.HasPrefix(data, "data:image/") {
		http.Error(w, `{"error":"signature must be an image data URL"}`, http.StatusBadRequest)
		return
	}
	var sig *string
	if data != "" {
		sig = &data
	}
	if err := repo.UpdateProfessionalSignature(r.Context(), h.DB, profID, sig); err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
