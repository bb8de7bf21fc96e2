package term

import (
	"strings"
	"testing"
	"time"
)

func TestFormatCPF(t *testing.T) {
	if got := FormatCPF("12345678909"); got != "123.456.789-09" {
		t.Fatalf("expected 123.456.789-09, got %q", got)
	}
	// já formatado continua com a mesma máscara
	if got := FormatCPF("123.456.789-09"); got != "123.456.789-09" {
		t.Fatalf("expected 123.456.789-09, got %q", got)
	}
	if got := FormatCPF(""); got != "" {
		t.Fatalf("expected empty for empty input, got %q", got)
	}
	// sem 11 dígitos volta como veio
	if got := FormatCPF("1234"); got != "1234" {
		t.Fatalf("expected 1234 unchanged, got %q", got)
	}
}

func TestFormatDateBR(t *testing.T) {
	if got := FormatDateBR("2026-02-11"); got != "11/02/2026" {
		t.Fatalf("expected 11/02/2026, got %q", got)
	}
	if got := FormatDateBR("2026-02-11T14:30:00Z"); got != "11/02/2026" {
		t.Fatalf("expected 11/02/2026 for RFC3339, got %q", got)
	}
	if got := FormatDateBR(""); got != "" {
		t.Fatalf("expected empty for empty input, got %q", got)
	}
	if got := FormatDateBR("invalid"); got != "" {
		t.Fatalf("expected empty for invalid input, got %q", got)
	}
}

func TestFormatDateTimeBR(t *testing.T) {
	at := time.Date(2026, 2, 11, 14, 30, 0, 0, time.UTC)
	if got := FormatDateTimeBR(at); got != "11/02/2026 14:30" {
		t.Fatalf("expected 11/02/2026 14:30, got %q", got)
	}
	// zero value usa o horário atual (só exibição)
	if got := FormatDateTimeBR(time.Time{}); got == "" {
		t.Fatal("expected non-empty for zero time")
	}
}

func TestFormatLicense(t *testing.T) {
	if got := FormatLicense("CRM 12345"); got != "CRM: 12345" {
		t.Fatalf("expected CRM: 12345, got %q", got)
	}
	if got := FormatLicense("cro 4567"); got != "CRO: 4567" {
		t.Fatalf("expected CRO: 4567, got %q", got)
	}
	// sem sigla reconhecível, devolve o original aparado
	if got := FormatLicense("  12345  "); got != "12345" {
		t.Fatalf("expected 12345, got %q", got)
	}
	if got := FormatLicense(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestFormatLicenseIdempotent(t *testing.T) {
	inputs := []string{"CRM 12345", "CRM: 12345", "CRO:  4.567-SP", "registro livre", "", "COREN 98765"}
	for _, in := range inputs {
		once := FormatLicense(in)
		twice := FormatLicense(once)
		if once != twice {
			t.Fatalf("FormatLicense not idempotent for %q: %q != %q", in, once, twice)
		}
		if strings.Contains(twice, "::") {
			t.Fatalf("double colon in %q", twice)
		}
	}
}
