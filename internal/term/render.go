package term

// RenderResult é o resultado de uma renderização. Valor imutável: o chamador
// persiste Content como snapshot assinado ou exibe como preview, nunca altera.
// MissingFields vazio equivale a documento final, pronto para assinatura.
type RenderResult struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	MissingFields []string `json:"missing_fields"`
}

// Final informa se o resultado é um documento completo e assinável.
func (r *RenderResult) Final() bool {
	return len(r.MissingFields) == 0
}

// Renderer resolve modelos no registro injetado e produz termos preenchidos.
// Sem estado mutável: seguro para uso concorrente.
type Renderer struct {
	reg *Registry
}

func NewRenderer(reg *Registry) *Renderer {
	return &Renderer{reg: reg}
}

// RenderFinal renderiza o termo definitivo para procedureKey. Retorna nil se a
// chave não estiver registrada (nada a renderizar). Com contexto incompleto,
// Content fica vazio e MissingFields lista o que falta; Title mantém o template
// cru apenas como rótulo de fallback. Nunca lança erro por incompletude.
func (rd *Renderer) RenderFinal(procedureKey string, ctx *TermContext) *RenderResult {
	def := rd.reg.Lookup(procedureKey)
	if def == nil {
		return nil
	}
	missing := ValidateContext(ctx)
	if len(missing) > 0 {
		return &RenderResult{Title: def.TitleTemplate, Content: "", MissingFields: missing}
	}
	return &RenderResult{
		Title:         Substitute(def.TitleTemplate, ctx),
		Content:       Substitute(def.BodyTemplate, ctx),
		MissingFields: []string{},
	}
}

// RenderPreview renderiza o melhor preview possível para a tela de edição:
// substitui o que houver no contexto mesmo incompleto. A saída nunca contém
// sintaxe {{...}}, completa ou não. Retorna nil para chave desconhecida.
func (rd *Renderer) RenderPreview(procedureKey string, ctx *TermContext) *RenderResult {
	def := rd.reg.Lookup(procedureKey)
	if def == nil {
		return nil
	}
	return &RenderResult{
		Title:         Substitute(def.TitleTemplate, ctx),
		Content:       Substitute(def.BodyTemplate, ctx),
		MissingFields: ValidateContext(ctx),
	}
}
