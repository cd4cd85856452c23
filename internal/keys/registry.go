// Package keys maps key presses to form actions per input scope and lets users
// rebind them from a TOML file.
package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

type Registry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	ScopeGlobal = "global"
	ScopeForm   = "form"
	ScopeText   = "text"
	ScopeRadio  = "radio"
	ScopeSelect = "select"
	ScopeSkills = "skills"
	ScopePicker = "picker"
	ScopeReview = "review"
)

const (
	ActionQuit       Action = "quit"
	ActionNext       Action = "next"
	ActionBack       Action = "back"
	ActionSubmit     Action = "submit"
	ActionFocusNext  Action = "focus_next"
	ActionFocusPrev  Action = "focus_prev"
	ActionAdvance    Action = "advance"
	ActionChoosePrev Action = "choose_prev"
	ActionChooseNext Action = "choose_next"
	ActionOpen       Action = "open"
	ActionRemove     Action = "remove"
	ActionNavigate   Action = "navigate"
	ActionUp         Action = "up"
	ActionDown       Action = "down"
	ActionSelect     Action = "select"
	ActionClose      Action = "close"
	ActionEdit       Action = "edit"
)

// BindingConfig is one override entry as it appears in keybindings.toml.
type BindingConfig struct {
	Scope  string   `toml:"scope"`
	Action string   `toml:"action"`
	Keys   []string `toml:"keys"`
}

func NewRegistry() *Registry {
	r := &Registry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(ScopeGlobal, ActionQuit, []string{"ctrl+c"}, "quit")

	// Screen navigation, available from every input.
	reg(ScopeForm, ActionFocusNext, []string{"tab"}, "next field")
	reg(ScopeForm, ActionFocusPrev, []string{"shift+tab"}, "prev field")
	reg(ScopeForm, ActionNext, []string{"ctrl+n"}, "next")
	reg(ScopeForm, ActionBack, []string{"ctrl+b"}, "back")
	reg(ScopeForm, ActionSubmit, []string{"ctrl+s"}, "submit")

	reg(ScopeText, ActionAdvance, []string{"enter"}, "continue")

	reg(ScopeRadio, ActionChoosePrev, []string{"left", "h"}, "prev option")
	reg(ScopeRadio, ActionChooseNext, []string{"right", "l"}, "next option")
	reg(ScopeRadio, ActionAdvance, []string{"enter"}, "continue")

	reg(ScopeSelect, ActionOpen, []string{"enter", "space"}, "choose")
	reg(ScopeSelect, ActionChoosePrev, []string{"left"}, "prev option")
	reg(ScopeSelect, ActionChooseNext, []string{"right"}, "next option")

	reg(ScopeSkills, ActionOpen, []string{"enter", "space"}, "add skill")
	reg(ScopeSkills, ActionChoosePrev, []string{"left"}, "prev skill")
	reg(ScopeSkills, ActionChooseNext, []string{"right"}, "next skill")
	reg(ScopeSkills, ActionRemove, []string{"x", "backspace", "delete"}, "remove")

	reg(ScopePicker, ActionUp, []string{"up", "ctrl+p"}, "up")
	reg(ScopePicker, ActionDown, []string{"down", "ctrl+n"}, "down")
	reg(ScopePicker, ActionSelect, []string{"enter"}, "select")
	reg(ScopePicker, ActionClose, []string{"esc"}, "cancel")

	reg(ScopeReview, ActionEdit, []string{"e", "enter"}, "edit information")
	reg(ScopeReview, ActionQuit, []string{"q"}, "quit")

	return r
}

func (r *Registry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *Registry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves keyName in the given scopes in order, then in the global
// scope.
func (r *Registry) Lookup(keyName string, scopes ...string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	for _, scope := range scopes {
		if b := r.lookupInScope(keyName, scope); b != nil {
			return b
		}
	}
	return r.lookupInScope(keyName, ScopeGlobal)
}

func (r *Registry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		helpKey := b.Keys[0]
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKey, b.Help)))
	}
	return out
}

func (r *Registry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *Registry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Preserve single uppercase rune so uppercase/lowercase bindings
			// can be distinct actions within the same scope.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}

// ApplyKeybindingConfig replaces the keys of existing bindings. It validates
// the whole set before touching the registry, so a rejected file leaves the
// defaults in force.
func (r *Registry) ApplyKeybindingConfig(items []BindingConfig) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	pending := make(map[*Binding][]string)
	seenPair := make(map[pair]bool)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("keybinding: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("keybinding scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("keybinding scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("keybinding scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("keybinding scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("keybinding scope=%q action=%q: duplicated entry", scope, action)
		}
		seenPair[p] = true
		pending[target] = keys
	}

	for scope, bindings := range r.bindingsByScope {
		seen := make(map[string]Action)
		for _, b := range bindings {
			keys := b.Keys
			if override, ok := pending[b]; ok {
				keys = override
			}
			for _, k := range keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("keybinding conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}

	for b, keys := range pending {
		b.Keys = keys
	}
	r.rebuildIndex()
	return nil
}

func (r *Registry) ExportKeybindingConfig() []BindingConfig {
	if r == nil {
		return nil
	}
	var out []BindingConfig
	for scope, bindings := range r.bindingsByScope {
		for _, b := range bindings {
			out = append(out, BindingConfig{
				Scope:  scope,
				Action: string(b.Action),
				Keys:   append([]string(nil), b.Keys...),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Action < out[j].Action
	})
	return out
}

func (r *Registry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}
