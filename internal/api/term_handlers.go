package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/termosaude/backend/internal/auth"
	"github.com/termosaude/backend/internal/crypto"
	"github.com/termosaude/backend/internal/pdf"
	"github.com/termosaude/backend/internal/repo"
	"github.com/termosaude/backend/internal/term"
)

type TermTemplateInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ListTermTemplates lista os modelos canônicos do registro (para o seletor de
// procedimento). A resposta é estável durante o processo, então fica no cache TTL.
func (h *Handler) ListTermTemplates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if cached := h.Cache.Get("term-templates"); cached != nil {
		_, _ = w.Write(cached)
		return
	}
	defs := h.Registry.ListCanonical()
	out := make([]TermTemplateInfo, 0, len(defs))
	for _, def := range defs {
		out = append(out, TermTemplateInfo{Key: def.Key, Label: def.Label})
	}
	body, err := json.Marshal(map[string]interface{}{"templates": out})
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	h.Cache.Set("term-templates", body)
	_, _ = w.Write(body)
}

// buildTermContext monta o TermContext a partir do paciente e do profissional
// logado. imageAuthorization e signedAt vêm do chamador (query ou corpo da request).
func (h *Handler) buildTermContext(r *http.Request, patientID uuid.UUID, procedureKey string, imageAuthorization *bool, signedAt time.Time) (*term.TermContext, int, error) {
	patient, err := repo.PatientByID(r.Context(), h.DB, patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, errors.New("patient not found")
		}
		return nil, http.StatusInternalServerError, err
	}
	profID, err := uuid.Parse(auth.UserIDFrom(r.Context()))
	if err != nil {
		return nil, http.StatusUnauthorized, errors.New("unauthorized")
	}
	prof, err := repo.ProfessionalByID(r.Context(), h.DB, profID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusUnauthorized, errors.New("unauthorized")
		}
		return nil, http.StatusInternalServerError, err
	}
	procedureLabel := ""
	if def := h.Registry.Lookup(procedureKey); def != nil {
		procedureLabel = def.Label
	}
	birthDate := ""
	if patient.BirthDate != nil {
		birthDate = *patient.BirthDate
	}
	return &term.TermContext{
		Patient: term.PatientInfo{
			Name:      patient.FullName,
			CPF:       h.decryptCPF(patient),
			BirthDate: birthDate,
		},
		Professional: term.ProfessionalInfo{
			Name:    prof.FullName,
			License: prof.LicenseCode,
		},
		SignedAt:           signedAt,
		ProcedureLabel:     procedureLabel,
		ImageAuthorization: imageAuthorization,
	}, http.StatusOK, nil
}

// parseImageAuthorization lê o tri-estado da autorização de imagem ("true",
// "false" ou ausente). Ausente fica nil: o validador reporta o campo como faltante.
func parseImageAuthorization(raw string) *bool {
	switch strings.TrimSpace(raw) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

// GetTermPreview renderiza o preview ao vivo do termo para a tela de edição:
// melhor esforço com o que o cadastro tem, mais a lista do que ainda falta.
func (h *Handler) GetTermPreview(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		http.Error(w, `{"error":"invalid patient id"}`, http.StatusBadRequest)
		return
	}
	procedureKey := r.URL.Query().Get("procedure")
	if procedureKey == "" {
		http.Error(w, `{"error":"procedure required"}`, http.StatusBadRequest)
		return
	}
	if !h.Registry.Has(procedureKey) {
		http.Error(w, `{"error":"unknown procedure"}`, http.StatusNotFound)
		return
	}
	imageAuth := parseImageAuthorization(r.URL.Query().Get("image_authorization"))
	ctx, status, err := h.buildTermContext(r, patientID, procedureKey, imageAuth, time.Now())
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, status)
		return
	}
	res := h.Renderer.RenderPreview(procedureKey, ctx)
	if res == nil {
		http.Error(w, `{"error":"unknown procedure"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

type SignTermRequest struct {
	ProcedureKey       string `json:"procedure_key"`
	ImageAuthorization *bool  `json:"image_authorization"`
	AcceptedTerms      bool   `json:"accepted_terms"`
}

type SignTermResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	SignedAt          time.Time `json:"signed_at"`
	VerificationToken string    `json:"verification_token"`
	PDFSHA256         string    `json:"pdf_sha256"`
}

// SignTerm renderiza o termo definitivo e persiste o snapshot assinado.
// Contexto incompleto responde 422 com a lista de campos faltantes; o conteúdo
// só é gravado quando a renderização é final.
func (h *Handler) SignTerm(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		http.Error(w, `{"error":"invalid patient id"}`, http.StatusBadRequest)
		return
	}
	var req SignTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid body"}`, http.StatusBadRequest)
		return
	}
	if req.ProcedureKey == "" || !req.AcceptedTerms {
		http.Error(w, `{"error":"procedure_key and accepted_terms true required"}`, http.StatusBadRequest)
		return
	}
	if !h.Registry.Has(req.ProcedureKey) {
		http.Error(w, `{"error":"unknown procedure"}`, http.StatusNotFound)
		return
	}
	// Fuso do Brasil para a data/hora registrada no termo
	locBR, errLoc := time.LoadLocation("America/Sao_Paulo")
	if errLoc != nil {
		locBR = time.UTC
	}
	signedAt := time.Now().In(locBR)

	ctx, status, err := h.buildTermContext(r, patientID, req.ProcedureKey, req.ImageAuthorization, signedAt)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, status)
		return
	}
	res := h.Renderer.RenderFinal(req.ProcedureKey, ctx)
	if res == nil {
		http.Error(w, `{"error":"unknown procedure"}`, http.StatusNotFound)
		return
	}
	if !res.Final() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error":          "incomplete context",
			"missing_fields": res.MissingFields,
		})
		return
	}

	verificationToken, err := repo.NewVerificationToken()
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	profID, _ := uuid.Parse(auth.UserIDFrom(r.Context()))
	prof, err := repo.ProfessionalByID(r.Context(), h.DB, profID)
	if err != nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}

	verURL := h.Cfg.AppPublicURL + "/termos/verificar/" + verificationToken
	pdfBytes, err := pdf.BuildTermPDF(res.Title, res.Content, pdf.SignatureBlock{
		SignerName:                   ctx.Patient.Name,
		ProfessionalName:             &prof.FullName,
		ProfessionalSignatureDataURL: prof.SignatureImageData,
		SignedAt:                     signedAt.Format("02/01/2006 15:04:05"),
		VerificationToken:            verificationToken,
		VerificationURL:              verURL,
	})
	var pdfSHA *string
	if err != nil {
		// PDF é cópia de conveniência; o snapshot de texto é o registro legal
		log.Printf("[termo] pdf generation failed: %v", err)
	} else {
		sha := crypto.SHA256Hex(pdfBytes)
		pdfSHA = &sha
	}

	id, err := repo.CreateSignedTerm(r.Context(), h.DB, patientID, profID, req.ProcedureKey,
		res.Title, res.Content, *req.ImageAuthorization, signedAt, pdfSHA, pdfBytes, verificationToken)
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	h.Cache.Delete(patientTermsCacheKey(patientID))

	if h.sendSignedTermCopyEmail != nil {
		patient, errP := repo.PatientByID(r.Context(), h.DB, patientID)
		if errP == nil && patient.Email != nil && *patient.Email != "" {
			// pdfBytes nil cai no envio sem anexo (só o link de verificação)
			if errMail := h.sendSignedTermCopyEmail(*patient.Email, patient.FullName, pdfBytes, verificationToken); errMail != nil {
				log.Printf("[termo] signed copy email failed: %v", errMail)
			}
		}
	}

	sha := ""
	if pdfSHA != nil {
		sha = *pdfSHA
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(SignTermResponse{
		ID:                id.String(),
		Title:             res.Title,
		SignedAt:          signedAt,
		VerificationToken: verificationToken,
		PDFSHA256:         sha,
	})
}

type SignedTermResponse struct {
	ID                 string    `json:"id"`
	PatientID          string    `json:"patient_id"`
	ProcedureKey       string    `json:"procedure_key"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	ImageAuthorization bool      `json:"image_authorization"`
	SignedAt           time.Time `json:"signed_at"`
	PDFSHA256          *string   `json:"pdf_sha256,omitempty"`
}

func signedTermResponse(s *repo.SignedTerm) SignedTermResponse {
	return SignedTermResponse{
		ID:                 s.ID.String(),
		PatientID:          s.PatientID.String(),
		ProcedureKey:       s.ProcedureKey,
		Title:              s.Title,
		Content:            s.Content,
		ImageAuthorization: s.ImageAuthorization,
		SignedAt:           s.SignedAt,
		PDFSHA256:          s.PDFSHA256,
	}
}

func patientTermsCacheKey(patientID uuid.UUID) string {
	return "terms:" + patientID.String()
}

// ListPatientTerms lista os snapshots assinados do paciente, mais recentes
// primeiro. A resposta fica no cache TTL; SignTerm invalida a chave ao assinar.
func (h *Handler) ListPatientTerms(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		http.Error(w, `{"error":"invalid patient id"}`, http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if cached := h.Cache.Get(patientTermsCacheKey(patientID)); cached != nil {
		_, _ = w.Write(cached)
		return
	}
	list, err := repo.SignedTermsByPatient(r.Context(), h.DB, patientID)
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	out := make([]SignedTermResponse, 0, len(list))
	for i := range list {
		out = append(out, signedTermResponse(&list[i]))
	}
	body, err := json.Marshal(map[string]interface{}{"terms": out})
	if err != nil {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	h.Cache.Set(patientTermsCacheKey(patientID), body)
	_, _ = w.Write(body)
}

func (h *Handler) GetSignedTerm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["termId"])
	if err != nil {
		http.Error(w, `{"error":"invalid term id"}`, http.StatusBadRequest)
		return
	}
	s, err := repo.SignedTermByID(r.Context(), h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, `{"error":"term not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(signedTermResponse(s))
}

// GetSignedTermPDF serve os bytes do PDF persistidos com o snapshot — o mesmo
// documento que o pdf_sha256 gravado atesta. Termos antigos assinados antes do
// armazenamento do PDF (ou cuja geração falhou) respondem 404.
func (h *Handler) GetSignedTermPDF(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["termId"])
	if err != nil {
		http.Error(w, `{"error":"invalid term id"}`, http.StatusBadRequest)
		return
	}
	s, err := repo.SignedTermByID(r.Context(), h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, `{"error":"term not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	if len(s.PDFBytes) == 0 {
		http.Error(w, `{"error":"pdf not available for this term"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="termo-`+s.ID.String()+`.pdf"`)
	_, _ = w.Write(s.PDFBytes)
}

type TermVerifyResponse struct {
	Title     string    `json:"title"`
	SignedAt  time.Time `json:"signed_at"`
	PDFSHA256 *string   `json:"pdf_sha256,omitempty"`
	Valid     bool      `json:"valid"`
	Content   *string   `json:"content,omitempty"`
}

// GetTermVerify é o endpoint público de verificação por token (link do QR no PDF).
// Anônimo vê só metadados; profissional autenticado recebe também o conteúdo.
func (h *Handler) GetTermVerify(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		http.Error(w, `{"error":"token required"}`, http.StatusBadRequest)
		return
	}
	s, err := repo.SignedTermByVerificationToken(r.Context(), h.DB, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, `{"error":"term not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	out := TermVerifyResponse{
		Title:     s.Title,
		SignedAt:  s.SignedAt,
		PDFSHA256: s.PDFSHA256,
		Valid:     true,
	}
	if auth.ClaimsFrom(r.Context()) != nil {
		out.Content = &s.Content
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
