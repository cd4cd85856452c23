package keys

import "testing"

func TestRegistryLookupByScope(t *testing.T) {
	r := NewRegistry()

	adv := r.Lookup("enter", ScopeText, ScopeForm)
	if adv == nil || adv.Action != ActionAdvance {
		t.Fatalf("enter in text scope = %v, want %q", adv, ActionAdvance)
	}

	open := r.Lookup("enter", ScopeSkills, ScopeForm)
	if open == nil || open.Action != ActionOpen {
		t.Fatalf("enter in skills scope = %v, want %q", open, ActionOpen)
	}

	next := r.Lookup("ctrl+n", ScopeText, ScopeForm)
	if next == nil || next.Action != ActionNext {
		t.Fatalf("ctrl+n should fall through to form scope, got %v", next)
	}

	if got := r.Lookup("x", ScopeText, ScopeForm); got != nil {
		t.Fatalf("x must reach the text input, got %q", got.Action)
	}

	quit := r.Lookup("ctrl+c", ScopePicker)
	if quit == nil || quit.Action != ActionQuit {
		t.Fatal("expected global quit to be reachable from picker scope")
	}
}

func TestRegistryNormalizesSpace(t *testing.T) {
	r := NewRegistry()
	b := r.Lookup(" ", ScopeSelect)
	if b == nil || b.Action != ActionOpen {
		t.Fatalf("space in select scope = %v, want %q", b, ActionOpen)
	}
}

func TestRegistryNoDuplicateInSameScope(t *testing.T) {
	r := &Registry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	r.Register(Binding{Action: ActionOpen, Keys: []string{"x"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: ActionEdit, Keys: []string{"x"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: ActionEdit, Keys: []string{"x"}, Help: "different scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 {
		t.Fatalf("scope_a bindings = %d, want 1", len(a))
	}
	if a[0].Action != ActionOpen {
		t.Fatalf("scope_a action = %q, want %q", a[0].Action, ActionOpen)
	}

	b := r.BindingsForScope("scope_b")
	if len(b) != 1 || b[0].Action != ActionEdit {
		t.Fatalf("scope_b bindings = %+v", b)
	}
}

func TestRegistryHelpBindings(t *testing.T) {
	r := NewRegistry()
	help := r.HelpBindings(ScopeReview)
	if len(help) != 2 {
		t.Fatalf("review help count = %d, want 2", len(help))
	}
	if got := help[0].Help(); got.Key != "e" || got.Desc != "edit information" {
		t.Fatalf("review help[0] = %+v", got)
	}
}

func TestApplyKeybindingConfig(t *testing.T) {
	r := NewRegistry()
	err := r.ApplyKeybindingConfig([]BindingConfig{
		{Scope: ScopeForm, Action: string(ActionNext), Keys: []string{"Control+F"}},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if b := r.Lookup("ctrl+f", ScopeForm); b == nil || b.Action != ActionNext {
		t.Fatalf("ctrl+f should map to next, got %v", b)
	}
	if b := r.Lookup("ctrl+n", ScopeForm); b != nil {
		t.Fatalf("old key should be gone, got %q", b.Action)
	}
}

func TestApplyKeybindingConfigRejectsWithoutPartialApply(t *testing.T) {
	tests := []struct {
		name  string
		items []BindingConfig
	}{
		{"missing scope", []BindingConfig{{Action: "next", Keys: []string{"x"}}}},
		{"missing action", []BindingConfig{{Scope: ScopeForm, Keys: []string{"x"}}}},
		{"missing keys", []BindingConfig{{Scope: ScopeForm, Action: "next"}}},
		{"unknown scope", []BindingConfig{{Scope: "dashboard", Action: "next", Keys: []string{"x"}}}},
		{"unknown action", []BindingConfig{{Scope: ScopeForm, Action: "explode", Keys: []string{"x"}}}},
		{"duplicate entry", []BindingConfig{
			{Scope: ScopeForm, Action: "next", Keys: []string{"ctrl+f"}},
			{Scope: ScopeForm, Action: "next", Keys: []string{"ctrl+g"}},
		}},
		{"conflict", []BindingConfig{
			{Scope: ScopeForm, Action: "next", Keys: []string{"ctrl+f"}},
			{Scope: ScopeForm, Action: "back", Keys: []string{"ctrl+f"}},
		}},
		{"conflict with untouched binding", []BindingConfig{
			{Scope: ScopeForm, Action: "next", Keys: []string{"ctrl+b"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if err := r.ApplyKeybindingConfig(tt.items); err == nil {
				t.Fatal("expected error")
			}
			if b := r.Lookup("ctrl+n", ScopeForm); b == nil || b.Action != ActionNext {
				t.Fatal("defaults must survive a rejected config")
			}
		})
	}
}
