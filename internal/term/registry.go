package term

// TemplateDefinition é um modelo de termo registrado na inicialização.
// Imutável depois de registrado; vários aliases podem apontar para a mesma definição.
type TemplateDefinition struct {
	Key           string // identificador canônico (minúsculo, hifenizado)
	Label         string // nome de exibição do procedimento
	TitleTemplate string
	BodyTemplate  string
}

// Registry mapeia chaves de procedimento (canônicas e aliases) para definições.
// Construído uma vez por NewRegistry e tratado como somente leitura depois disso,
// o que o torna seguro para leituras concorrentes sem sincronização.
type Registry struct {
	byKey     map[string]*TemplateDefinition
	canonical []string
}

// Lookup retorna a definição para key (match exato, sensível a maiúsculas) ou nil.
func (r *Registry) Lookup(key string) *TemplateDefinition {
	return r.byKey[key]
}

// Has informa se key (canônica ou alias) está registrada.
func (r *Registry) Has(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// ListCanonical retorna uma definição por modelo distinto, na ordem de declaração
// das chaves canônicas. Chaves canônicas que resolvam para a mesma definição
// aparecem uma única vez.
func (r *Registry) ListCanonical() []*TemplateDefinition {
	seen := make(map[*TemplateDefinition]bool, len(r.canonical))
	out := make([]*TemplateDefinition, 0, len(r.canonical))
	for _, key := range r.canonical {
		def := r.byKey[key]
		if def == nil || seen[def] {
			continue
		}
		seen[def] = true
		out = append(out, def)
	}
	return out
}

func newRegistry(defs []*TemplateDefinition, aliases map[string]string) *Registry {
	r := &Registry{byKey: make(map[string]*TemplateDefinition, len(defs)+len(aliases))}
	for _, def := range defs {
		r.byKey[def.Key] = def
		r.canonical = append(r.canonical, def.Key)
	}
	for alias, canonical := range aliases {
		if def := r.byKey[canonical]; def != nil {
			r.byKey[alias] = def
		}
	}
	return r
}
