package term

import "testing"

func TestRegistryLookupExact(t *testing.T) {
	reg := NewRegistry()
	if def := reg.Lookup("toxina-botulinica"); def == nil || def.Key != "toxina-botulinica" {
		t.Fatalf("expected toxina-botulinica, got %+v", def)
	}
	if def := reg.Lookup("procedimento-inexistente"); def != nil {
		t.Fatalf("expected nil for unknown key, got %+v", def)
	}
	// match exato, sensível a maiúsculas
	if def := reg.Lookup("Toxina-Botulinica"); def != nil {
		t.Fatalf("lookup must be case-sensitive, got %+v", def)
	}
	if !reg.Has("botox") || reg.Has("") {
		t.Fatal("Has mismatch")
	}
}

func TestRegistryAliasesShareDefinition(t *testing.T) {
	reg := NewRegistry()
	if reg.Lookup("botox") != reg.Lookup("toxina-botulinica") {
		t.Fatal("botox must alias toxina-botulinica (same definition)")
	}
	facial := reg.Lookup("preenchimento-facial")
	if facial == nil {
		t.Fatal("preenchimento-facial must be registered")
	}
	if reg.Lookup("preenchimento-labial") != facial || reg.Lookup("acido-hialuronico") != facial {
		t.Fatal("preenchimento aliases must resolve to the same definition")
	}
}

func TestRegistryListCanonical(t *testing.T) {
	reg := NewRegistry()
	list := reg.ListCanonical()
	if len(list) != 12 {
		t.Fatalf("expected 12 canonical templates, got %d", len(list))
	}
	seen := make(map[*TemplateDefinition]bool)
	for _, def := range list {
		if seen[def] {
			t.Fatalf("duplicate definition in canonical list: %s", def.Key)
		}
		seen[def] = true
		if def.Label == "" || def.BodyTemplate == "" || def.TitleTemplate == "" {
			t.Fatalf("incomplete definition: %s", def.Key)
		}
	}
	// ordem de declaração preservada
	if list[0].Key != "toxina-botulinica" {
		t.Fatalf("expected declaration order, first is %s", list[0].Key)
	}
}

func TestRegistryCanonicalListSuppressesSharedDefinitions(t *testing.T) {
	// duas chaves canônicas apontando para a mesma definição aparecem uma vez
	shared := &TemplateDefinition{Key: "a", Label: "A", TitleTemplate: "t", BodyTemplate: "b"}
	r := newRegistry([]*TemplateDefinition{shared}, nil)
	r.byKey["b"] = shared
	r.canonical = append(r.canonical, "b")
	if got := len(r.ListCanonical()); got != 1 {
		t.Fatalf("expected 1 distinct definition, got %d", got)
	}
}
