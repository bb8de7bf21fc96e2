package api

import "testing"

func TestValidateCPF(t *testing.T) {
	if err := ValidateCPF("123.456.789-09"); err != nil {
		t.Fatalf("expected valid cpf, got %v", err)
	}
	if err := ValidateCPF("12345678909"); err != nil {
		t.Fatalf("expected valid cpf without mask, got %v", err)
	}
	if err := ValidateCPF("111.111.111-11"); err == nil {
		t.Fatal("repeated digits must be invalid")
	}
	if err := ValidateCPF("123.456.789-00"); err == nil {
		t.Fatal("wrong check digits must be invalid")
	}
	if err := ValidateCPF("123"); err == nil {
		t.Fatal("short cpf must be invalid")
	}
	if err := ValidateCPF(""); err == nil {
		t.Fatal("empty cpf must be invalid")
	}
}

func TestValidateEmailRegex(t *testing.T) {
	if err := ValidateEmailRegex("maria@clinica.com.br"); err != nil {
		t.Fatalf("expected valid email, got %v", err)
	}
	for _, bad := range []string{"", "sem-arroba", "a@b", "a @b.com"} {
		if err := ValidateEmailRegex(bad); err == nil {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}

func TestParseImageAuthorization(t *testing.T) {
	if v := parseImageAuthorization("true"); v == nil || !*v {
		t.Fatal("expected true")
	}
	if v := parseImageAuthorization("false"); v == nil || *v {
		t.Fatal("expected false")
	}
	// ausente ou inválido fica nil: o validador reporta o campo como faltante
	if v := parseImageAuthorization(""); v != nil {
		t.Fatal("expected nil for empty")
	}
	if v := parseImageAuthorization("yes"); v != nil {
		t.Fatal("expected nil for unknown value")
	}
}
