package term

import (
	"strings"
	"testing"
)

func newTestRenderer() *Renderer {
	return NewRenderer(NewRegistry())
}

func TestRenderFinalComplete(t *testing.T) {
	rd := newTestRenderer()
	res := rd.RenderFinal("toxina-botulinica", completeContext())
	if res == nil {
		t.Fatal("expected result for known procedure")
	}
	if !res.Final() || len(res.MissingFields) != 0 {
		t.Fatalf("expected final document, missing=%v", res.MissingFields)
	}
	for _, want := range []string{"Maria Oliveira", "123.456.789-09", "( X ) SIM", "(   ) NÃO"} {
		if !strings.Contains(res.Content, want) {
			t.Fatalf("expected %q in content", want)
		}
	}
	if strings.Contains(res.Content, "{{") || strings.Contains(res.Content, "}}") {
		t.Fatalf("template syntax leaked: %q", res.Content)
	}
	if res.Title != "Termo de Consentimento - Toxina Botulínica" {
		t.Fatalf("unexpected title: %q", res.Title)
	}
}

func TestRenderFinalIncomplete(t *testing.T) {
	rd := newTestRenderer()
	ctx := completeContext()
	ctx.Patient.CPF = ""
	res := rd.RenderFinal("toxina-botulinica", ctx)
	if res == nil {
		t.Fatal("expected result for known procedure")
	}
	if len(res.MissingFields) != 1 || res.MissingFields[0] != FieldPatientCPF {
		t.Fatalf("expected exactly [%s], got %v", FieldPatientCPF, res.MissingFields)
	}
	// renderização estrita: sem conteúdo enquanto faltar campo
	if res.Content != "" {
		t.Fatalf("expected empty content, got %q", res.Content)
	}
	if res.Title == "" {
		t.Fatal("title template must remain as fallback label")
	}
}

func TestRenderFinalUnknownProcedure(t *testing.T) {
	rd := newTestRenderer()
	if res := rd.RenderFinal("procedimento-inexistente", completeContext()); res != nil {
		t.Fatalf("expected nil for unknown procedure, got %+v", res)
	}
}

func TestRenderFinalViaAlias(t *testing.T) {
	rd := newTestRenderer()
	canonical := rd.RenderFinal("toxina-botulinica", completeContext())
	alias := rd.RenderFinal("botox", completeContext())
	if alias == nil || canonical == nil {
		t.Fatal("both keys must render")
	}
	if alias.Content != canonical.Content {
		t.Fatal("alias must render the same document")
	}
}

func TestRenderPreviewIncomplete(t *testing.T) {
	rd := newTestRenderer()
	ctx := completeContext()
	ctx.Patient.CPF = ""
	ctx.ImageAuthorization = nil
	res := rd.RenderPreview("preenchimento-labial", ctx)
	if res == nil {
		t.Fatal("expected preview for known alias")
	}
	if len(res.MissingFields) != 2 {
		t.Fatalf("expected 2 missing fields, got %v", res.MissingFields)
	}
	// preview é melhor esforço: substitui o que há e nunca vaza sintaxe
	if res.Content == "" {
		t.Fatal("preview must carry best-effort content")
	}
	if !strings.Contains(res.Content, "Maria Oliveira") {
		t.Fatalf("expected known fields substituted: %q", res.Content)
	}
	if strings.Contains(res.Content, "{{") {
		t.Fatalf("template syntax leaked in preview: %q", res.Content)
	}
}

func TestRenderPreviewUnknownProcedure(t *testing.T) {
	rd := newTestRenderer()
	if res := rd.RenderPreview("procedimento-inexistente", completeContext()); res != nil {
		t.Fatalf("expected nil, got %+v", res)
	}
}
