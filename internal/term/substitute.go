package term

import (
	"regexp"
	"strings"
)

// Vocabulário de placeholders reconhecido pelos modelos de termo.
// Adicionar um token novo exige incluir uma regra em substitutionRules;
// tokens desconhecidos são removidos pelo passo final (nunca chegam à tela).
const (
	TokenPatientName         = "nome_paciente"
	TokenPatientCPF          = "cpf_paciente"
	TokenPatientBirthDate    = "data_nascimento"
	TokenProfessionalName    = "nome_profissional"
	TokenProfessionalLicense = "registro_profissional"
	TokenProcedureLabel      = "procedimento"
	TokenSignedAt            = "data_assinatura"
	TokenImageAuthorization  = "autorizacao_imagem"
)

type substitutionRule struct {
	pattern *regexp.Regexp
	value   func(ctx *TermContext) string
}

func tokenPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\{\{\s*` + name + `\s*\}\}`)
}

// Regras nomeadas, aplicadas em ordem. O catch-all de tokens desconhecidos
// (anyToken) roda sempre por último, depois de todas elas.
var substitutionRules = []substitutionRule{
	{tokenPattern(TokenPatientName), func(ctx *TermContext) string { return strings.TrimSpace(ctx.Patient.Name) }},
	{tokenPattern(TokenPatientCPF), func(ctx *TermContext) string { return FormatCPF(ctx.Patient.CPF) }},
	{tokenPattern(TokenPatientBirthDate), func(ctx *TermContext) string { return FormatDateBR(ctx.Patient.BirthDate) }},
	{tokenPattern(TokenProfessionalName), func(ctx *TermContext) string { return strings.TrimSpace(ctx.Professional.Name) }},
	{tokenPattern(TokenProfessionalLicense), func(ctx *TermContext) string { return FormatLicense(ctx.Professional.License) }},
	{tokenPattern(TokenProcedureLabel), func(ctx *TermContext) string { return strings.TrimSpace(ctx.ProcedureLabel) }},
	{tokenPattern(TokenSignedAt), func(ctx *TermContext) string { return FormatTimeBR(ctx.SignedAt) }},
	{tokenPattern(TokenImageAuthorization), func(ctx *TermContext) string { return imageAuthorizationBlock(ctx.ImageAuthorization) }},
}

// anyToken apaga qualquer {{token}} que tenha sobrado (nome com typo, token
// futuro, campo sem valor). Invariante de segurança: sintaxe de template nunca
// aparece no documento final.
var anyToken = regexp.MustCompile(`\{\{\s*\w+\s*\}\}`)

// Linhas de assinatura manual herdadas dos modelos em papel. A assinatura aqui
// é eletrônica, então essas linhas (e os tracejados de preenchimento) saem inteiras.
var manualSignatureLine = regexp.MustCompile(`(?m)^[ \t]*(?:Assinatura do Paciente|Assinatura do\(a\) Paciente|Assinatura do Profissional|Assinatura do Responsável|Local e Data)\s*:.*$`)

var blankFillLine = regexp.MustCompile(`(?m)^[ \t]*_{3,}[ \t]*$`)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// imageAuthorizationBlock monta o bloco de autorização de uso de imagem com as
// duas opções sempre presentes e exatamente uma marcada. nil (não respondido)
// deixa ambas desmarcadas, para o preview.
func imageAuthorizationBlock(authorized *bool) string {
	yes, no := "(   )", "(   )"
	if authorized != nil {
		if *authorized {
			yes = "( X )"
		} else {
			no = "( X )"
		}
	}
	return yes + " SIM - Autorizo o uso de minhas imagens para fins de registro clínico e divulgação científica.\n" +
		no + " NÃO - Não autorizo o uso de minhas imagens."
}

// Substitute aplica o pipeline de substituição sobre template com os dados de ctx:
// regras nomeadas em ordem, remoção das linhas de assinatura manual, catch-all de
// tokens desconhecidos e normalização de espaço. Determinística e sem efeitos
// colaterais; reaplicada à própria saída, não muda nada.
func Substitute(template string, ctx *TermContext) string {
	if ctx == nil {
		ctx = &TermContext{}
	}
	out := template
	for _, rule := range substitutionRules {
		// Literal: valores vindos do cadastro não podem ser interpretados como grupo de captura.
		out = rule.pattern.ReplaceAllLiteralString(out, rule.value(ctx))
	}
	out = manualSignatureLine.ReplaceAllString(out, "")
	out = blankFillLine.ReplaceAllString(out, "")
	out = anyToken.ReplaceAllString(out, "")
	out = excessNewlines.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
