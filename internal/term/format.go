package term

import (
	"regexp"
	"strings"
	"time"
)

var onlyDigits = regexp.MustCompile(`[^0-9]`)

// licensePattern reconhece registro profissional no formato "SIGLA NUMERO" ou "SIGLA: NUMERO"
// (ex.: "CRM 12345", "CRO: 4.567-SP"). A sigla são letras; o resto é o número do registro.
var licensePattern = regexp.MustCompile(`^([A-Za-z]{2,10})\s*[:.]?\s+([0-9][0-9A-Za-z ./-]*)$`)

// Layouts de data aceitos na entrada (ISO do banco, RFC3339 do JSON e BR já formatada).
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// FormatCPF formata um CPF com 11 dígitos como XXX.XXX.XXX-XX.
// Entrada vazia retorna ""; entrada que não tenha exatamente 11 dígitos volta como veio.
func FormatCPF(raw string) string {
	if raw == "" {
		return ""
	}
	d := onlyDigits.ReplaceAllString(raw, "")
	if len(d) != 11 {
		return raw
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// FormatDateBR converte uma data (ISO, RFC3339 ou já em BR) para DD/MM/AAAA.
// Entrada vazia ou não reconhecida retorna "" (nunca panica).
func FormatDateBR(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return ""
}

// FormatTimeBR formata um time.Time como DD/MM/AAAA. Zero value retorna "".
func FormatTimeBR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatDateTimeBR formata como DD/MM/AAAA HH:MM. Zero value usa o horário atual
// (apenas para exibição; timestamps persistidos vêm sempre preenchidos do chamador).
func FormatDateTimeBR(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format("02/01/2006 15:04")
}

// FormatLicense normaliza um registro profissional para "SIGLA: NUMERO".
// "CRM 12345" e "CRM: 12345" produzem ambos "CRM: 12345" (idempotente).
// Sem sigla reconhecível, retorna o original com espaços aparados.
func FormatLicense(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	m := licensePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return trimmed
	}
	return strings.ToUpper(m[1]) + ": " + strings.TrimSpace(m[2])
}
