package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/termosaude/backend/internal/cache"
	"github.com/termosaude/backend/internal/term"
)

func newTemplatesHandler() *Handler {
	reg := term.NewRegistry()
	return &Handler{
		Cache:    cache.New(30 * time.Second),
		Registry: reg,
		Renderer: term.NewRenderer(reg),
	}
}

func TestListTermTemplates(t *testing.T) {
	h := newTemplatesHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/term-templates", nil)
	rr := httptest.NewRecorder()
	h.ListTermTemplates(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var out struct {
		Templates []TermTemplateInfo `json:"templates"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("resposta não é JSON válido: %v", err)
	}
	if len(out.Templates) == 0 {
		t.Fatal("lista de modelos vazia")
	}
	seen := make(map[string]bool, len(out.Templates))
	for _, tpl := range out.Templates {
		if tpl.Key == "" || tpl.Label == "" {
			t.Fatalf("modelo sem key ou label: %+v", tpl)
		}
		if seen[tpl.Key] {
			t.Fatalf("key duplicada na listagem: %s", tpl.Key)
		}
		seen[tpl.Key] = true
	}
	// alias não aparece na listagem canônica
	if seen["botox"] {
		t.Fatal("alias botox não deveria aparecer na listagem")
	}
	if !seen["toxina-botulinica"] {
		t.Fatal("toxina-botulinica deveria aparecer na listagem")
	}
}

func TestListPatientTermsServedFromCache(t *testing.T) {
	// Com a chave no cache a listagem responde sem tocar o banco (DB nil aqui).
	h := newTemplatesHandler()
	patientID := uuid.New()
	body := []byte(`{"terms":[]}`)
	h.Cache.Set(patientTermsCacheKey(patientID), body)

	r := mux.NewRouter()
	r.HandleFunc("/api/patients/{patientId}/terms", h.ListPatientTerms).Methods(http.MethodGet)
	req := httptest.NewRequest(http.MethodGet, "/api/patients/"+patientID.String()+"/terms", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != string(body) {
		t.Fatalf("esperava corpo do cache, veio %q", rr.Body.String())
	}

	// invalidação derruba a chave; a próxima chamada iria ao banco
	h.Cache.Delete(patientTermsCacheKey(patientID))
	if h.Cache.Get(patientTermsCacheKey(patientID)) != nil {
		t.Fatal("chave deveria ter sido invalidada")
	}
}

func TestGetSignedTermPDFInvalidID(t *testing.T) {
	h := newTemplatesHandler()
	r := mux.NewRouter()
	r.HandleFunc("/api/terms/{termId}/pdf", h.GetSignedTermPDF).Methods(http.MethodGet)
	req := httptest.NewRequest(http.MethodGet, "/api/terms/nao-e-uuid/pdf", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid id, got %d", rr.Code)
	}
}

func TestListTermTemplatesUsesCache(t *testing.T) {
	h := newTemplatesHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/term-templates", nil)
	rr1 := httptest.NewRecorder()
	h.ListTermTemplates(rr1, req)
	if h.Cache.Get("term-templates") == nil {
		t.Fatal("primeira chamada deveria popular o cache")
	}
	rr2 := httptest.NewRecorder()
	h.ListTermTemplates(rr2, req)
	if rr1.Body.String() != rr2.Body.String() {
		t.Fatal("resposta servida do cache deve ser idêntica")
	}
}
