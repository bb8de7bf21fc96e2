package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/termosaude/backend/internal/crypto"
	"github.com/termosaude/backend/internal/repo"
)

type PatientResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	BirthDate *string `json:"birth_date,omitempty"`
	Email     *string `json:"email,omitempty"`
	CPF       string  `json:"cpf,omitempty"`
}

type PatientCreateRequest struct {
	FullName  string  `json:"full_name"`
	BirthDate *string `json:"birth_date,omitempty"`
	Email     *string `json:"email,omitempty"`
	CPF       string  `json:"cpf"`
}

type PatientUpdateRequest struct {
	FullName  string  `json:"full_name"`
	BirthDate *string `json:"birth_date,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// decryptCPF abre o CPF cifrado do paciente. Falha de chave resulta em campo
// vazio na resposta, nunca em erro para o cliente.
func (h *Handler) decryptCPF(p *repo.Patient) string {
	if len(p.CPFEncrypted) == 0 || p.CPFKeyVersion == nil {
		return ""
	}
	keys, err := crypto.ParseKeysEnv(h.Cfg.DataEncryptionKeys)
	if err != nil {
		return ""
	}
	plain, err := crypto.Decrypt(p.CPFEncrypted, p.CPFNonce, *p.CPFKeyVersion, keys)
	if err != nil {
		return ""
	}
	return string(plain)
}

func (h *Handler) patientResponse(p *repo.Patient) PatientResponse {
	return PatientResponse{
		ID:        p.ID.String(),
		FullName:  p.FullName,
		BirthDate: p.BirthDate,
		Email:     p.Email,
		CPF:       h.decryptCPF(p),
	}
}

func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r)
	list, total, err := repo.PatientsPaginated(r.Context(), h.DB, limit, offset)
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	out := make([]PatientResponse, 0, len(list))
	for i := range list {
		out = append(out, h.patientResponse(&list[i]))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"patients": out, "total": total})
}

func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		http.Error(w, `{"error":"invalid patient id"}`, http.StatusBadRequest)
		return
	}
	p, err := repo.PatientByID(r.Context(), h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, `{"error":"patient not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.patientResponse(p))
}

func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req PatientCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid body"}`, http.StatusBadRequest)
		return
	}
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		http.Error(w, `{"error":"full_name required"}`, http.StatusBadRequest)
		return
	}
	if err := ValidateCPF(req.CPF); err != nil {
		http.Error(w, `{"error":"invalid cpf"}`, http.StatusBadRequest)
		return
	}
	if req.Email != nil && *req.Email != "" {
		if err := ValidateEmailRegex(*req.Email); err != nil {
			http.Error(w, `{"error":"invalid email"}`, http.StatusBadRequest)
			return
		}
	}
	normalized := crypto.NormalizeCPF(req.CPF)
	keys, err := crypto.ParseKeysEnv(h.Cfg.DataEncryptionKeys)
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	cipher, nonce, err := crypto.Encrypt([]byte(normalized), h.Cfg.CurrentDataKeyVer, keys)
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	hash := crypto.CPFHash(normalized)
	if _, err := repo.PatientByCPFHash(r.Context(), h.DB, hash); err == nil {
		http.Error(w, `{"error":"cpf already registered"}`, http.StatusConflict)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	keyVer := h.Cfg.CurrentDataKeyVer
	id, err := repo.CreatePatient(r.Context(), h.DB, req.FullName, req.BirthDate, req.Email, cipher, nonce, &keyVer, &hash)
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"id": id.String()})
}

func (h *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		http.Error(w, `{"error":"invalid patient id"}`, http.StatusBadRequest)
		return
	}
	var req PatientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid body"}`, http.StatusBadRequest)
		return
	}
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		http.Error(w, `{"error":"full_name required"}`, http.StatusBadRequest)
		return
	}
	if err := repo.UpdatePatient(r.Context(), h.DB, id, req.FullName, req.BirthDate, req.Email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, `{"error":"patient not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SoftDeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		http.Error(w, `{"error":"invalid patient id"}`, http.StatusBadRequest)
		return
	}
	if err := repo.SoftDeletePatient(r.Context(), h.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, `{"error":"patient not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
