package term

import (
	"strings"
	"time"
)

// PatientInfo são os dados do paciente necessários no termo.
// BirthDate em ISO (YYYY-MM-DD), como vem de birth_date::text no banco.
type PatientInfo struct {
	Name      string
	CPF       string
	BirthDate string
}

// ProfessionalInfo são os dados do profissional responsável.
// License é o registro em texto livre (ex.: "CRM 12345" ou "CRO: 4567").
type ProfessionalInfo struct {
	Name    string
	License string
}

// TermContext reúne tudo que um termo de consentimento precisa para ser preenchido.
// É montado pelo chamador a cada renderização; o pacote nunca guarda referência a ele.
// ImageAuthorization usa *bool: nil significa que o paciente ainda não respondeu,
// o que é diferente de recusar (false). Nunca assumimos um padrão.
type TermContext struct {
	Patient            PatientInfo
	Professional       ProfessionalInfo
	SignedAt           time.Time
	ProcedureLabel     string
	ImageAuthorization *bool
}

// Identificadores estáveis de campo, na ordem em que ValidateContext os reporta.
const (
	FieldPatientName         = "patient_name"
	FieldPatientCPF          = "patient_cpf"
	FieldPatientBirthDate    = "patient_birth_date"
	FieldProfessionalName    = "professional_name"
	FieldProfessionalLicense = "professional_license"
	FieldSignedAt            = "signed_at"
	FieldImageAuthorization  = "image_authorization"
	FieldProcedureLabel      = "procedure_label"
)

// ValidateContext devolve os identificadores de todos os campos obrigatórios
// ausentes, sempre na mesma ordem. Lista vazia significa contexto completo e
// termo assinável. Puro: não altera ctx e chamadas repetidas dão o mesmo resultado.
func ValidateContext(ctx *TermContext) []string {
	missing := []string{}
	if ctx == nil {
		return []string{
			FieldPatientName, FieldPatientCPF, FieldPatientBirthDate,
			FieldProfessionalName, FieldProfessionalLicense,
			FieldSignedAt, FieldImageAuthorization, FieldProcedureLabel,
		}
	}
	if strings.TrimSpace(ctx.Patient.Name) == "" {
		missing = append(missing, FieldPatientName)
	}
	if strings.TrimSpace(ctx.Patient.CPF) == "" {
		missing = append(missing, FieldPatientCPF)
	}
	if strings.TrimSpace(ctx.Patient.BirthDate) == "" {
		missing = append(missing, FieldPatientBirthDate)
	}
	if strings.TrimSpace(ctx.Professional.Name) == "" {
		missing = append(missing, FieldProfessionalName)
	}
	if strings.TrimSpace(ctx.Professional.License) == "" {
		missing = append(missing, FieldProfessionalLicense)
	}
	if ctx.SignedAt.IsZero() {
		missing = append(missing, FieldSignedAt)
	}
	if ctx.ImageAuthorization == nil {
		missing = append(missing, FieldImageAuthorization)
	}
	if strings.TrimSpace(ctx.ProcedureLabel) == "" {
		missing = append(missing, FieldProcedureLabel)
	}
	return missing
}
