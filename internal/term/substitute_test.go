package term

import (
	"regexp"
	"strings"
	"testing"
)

var leakedToken = regexp.MustCompile(`\{\{\s*\w+\s*\}\}`)

func TestSubstituteReplacesKnownTokens(t *testing.T) {
	ctx := completeContext()
	out := Substitute("Eu, {{nome_paciente}}, CPF {{cpf_paciente}}, nascido em {{data_nascimento}}, autorizo {{nome_profissional}} ({{registro_profissional}}) a realizar {{procedimento}} em {{data_assinatura}}.", ctx)
	for _, want := range []string{"Maria Oliveira", "123.456.789-09", "20/05/1990", "Dra. Ana Souza", "CRM: 12345", "Toxina Botulínica", "11/02/2026"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %q", want, out)
		}
	}
}

func TestSubstituteDeterministic(t *testing.T) {
	ctx := completeContext()
	tpl := "{{nome_paciente}} - {{cpf_paciente}}\n\n\n\n{{autorizacao_imagem}}"
	first := Substitute(tpl, ctx)
	second := Substitute(tpl, ctx)
	if first != second {
		t.Fatalf("same input produced different outputs:\n%q\n%q", first, second)
	}
	// reaplicar sobre a própria saída não muda nada
	if again := Substitute(first, ctx); again != first {
		t.Fatalf("not idempotent on own output:\n%q\n%q", first, again)
	}
}

func TestSubstituteStripsUnknownTokens(t *testing.T) {
	ctx := completeContext()
	out := Substitute("Antes {{token_totalmente_desconhecido}} depois {{ outro_token }} fim", ctx)
	if leakedToken.MatchString(out) {
		t.Fatalf("unresolved token leaked: %q", out)
	}
	if strings.Contains(out, "{{") || strings.Contains(out, "}}") {
		t.Fatalf("literal braces leaked: %q", out)
	}
}

func TestSubstituteNoLeakWithEmptyContext(t *testing.T) {
	out := Substitute("{{nome_paciente}} {{cpf_paciente}} {{autorizacao_imagem}} {{foo}}", &TermContext{})
	if leakedToken.MatchString(out) {
		t.Fatalf("token leaked with empty context: %q", out)
	}
}

func TestSubstituteCheckboxExclusivity(t *testing.T) {
	yes, no := true, false

	ctx := completeContext()
	ctx.ImageAuthorization = &yes
	out := Substitute("{{autorizacao_imagem}}", ctx)
	if !strings.Contains(out, "( X ) SIM") || !strings.Contains(out, "(   ) NÃO") {
		t.Fatalf("expected SIM marked and NÃO unmarked: %q", out)
	}

	ctx.ImageAuthorization = &no
	out = Substitute("{{autorizacao_imagem}}", ctx)
	if !strings.Contains(out, "(   ) SIM") || !strings.Contains(out, "( X ) NÃO") {
		t.Fatalf("expected NÃO marked and SIM unmarked: %q", out)
	}

	// não respondido: ambas as linhas presentes, nenhuma marcada
	ctx.ImageAuthorization = nil
	out = Substitute("{{autorizacao_imagem}}", ctx)
	if strings.Contains(out, "( X )") {
		t.Fatalf("expected no marked option when unanswered: %q", out)
	}
	if !strings.Contains(out, "SIM") || !strings.Contains(out, "NÃO") {
		t.Fatalf("both lines must always be present: %q", out)
	}
}

func TestSubstituteStripsManualSignatureLines(t *testing.T) {
	ctx := completeContext()
	tpl := "Texto do termo.\nLocal e Data: ____________\nAssinatura do Paciente: ____________\nAssinatura do Profissional: ____________\n______________________\nFim."
	out := Substitute(tpl, ctx)
	for _, banned := range []string{"Assinatura do Paciente", "Assinatura do Profissional", "Local e Data", "______"} {
		if strings.Contains(out, banned) {
			t.Fatalf("manual signature artifact %q leaked: %q", banned, out)
		}
	}
	if !strings.Contains(out, "Texto do termo.") || !strings.Contains(out, "Fim.") {
		t.Fatalf("surrounding text must survive: %q", out)
	}
}

func TestSubstituteCollapsesNewlinesAndTrims(t *testing.T) {
	ctx := completeContext()
	out := Substitute("\n\n\nA\n\n\n\n\nB\n\n\n", ctx)
	if out != "A\n\nB" {
		t.Fatalf("expected %q, got %q", "A\n\nB", out)
	}
}

// Nenhum modelo embutido pode vazar token: garante que o vocabulário dos corpos
// literais está coberto pelas regras nomeadas (ou removido pelo catch-all).
func TestBuiltinTemplatesNeverLeakTokens(t *testing.T) {
	reg := NewRegistry()
	ctx := completeContext()
	for _, def := range reg.ListCanonical() {
		title := Substitute(def.TitleTemplate, ctx)
		body := Substitute(def.BodyTemplate, ctx)
		if leakedToken.MatchString(title) || leakedToken.MatchString(body) {
			t.Fatalf("template %s leaked a token", def.Key)
		}
		if strings.Contains(body, "Assinatura do Paciente") {
			t.Fatalf("template %s kept manual signature line", def.Key)
		}
	}
}
