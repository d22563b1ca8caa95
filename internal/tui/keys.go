package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

// Binding ties an action to the keys that trigger it within one scope.
type Binding struct {
	Action Action
	Keys   []string
	Help   string
}

// KeyRegistry maps key names to actions per focus scope. Lookups fall back
// to the global scope.
type KeyRegistry struct {
	scopes map[string]*keyScope
}

type keyScope struct {
	order []*Binding
	byKey map[string]*Binding
}

const (
	scopeGlobal = "global"
	scopeSearch = "search"
	scopeGrid   = "grid"
)

const (
	actionQuit         Action = "quit"
	actionFocusSearch  Action = "focus_search"
	actionCopyFirst    Action = "copy_first"
	actionNextCategory Action = "next_category"
	actionPrevCategory Action = "prev_category"
	actionClearSearch  Action = "clear_search"
	actionFocusGrid    Action = "focus_grid"
	actionUp           Action = "up"
	actionDown         Action = "down"
	actionLeft         Action = "left"
	actionRight        Action = "right"
	actionPageUp       Action = "page_up"
	actionPageDown     Action = "page_down"
	actionJumpTop      Action = "jump_top"
	actionJumpBottom   Action = "jump_bottom"
	actionCopy         Action = "copy"
	actionCopyRecent   Action = "copy_recent"
	actionClearHistory Action = "clear_history"
	actionBackToSearch Action = "back"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{scopes: make(map[string]*keyScope)}

	// Ctrl+Enter is not distinguishable from Enter in most terminals; they
	// send ctrl+j (LF) or alt+enter instead.
	r.bind(scopeGlobal, actionFocusSearch, "search", "ctrl+k")
	r.bind(scopeGlobal, actionCopyFirst, "copy first", "ctrl+enter", "ctrl+j", "alt+enter")
	r.bind(scopeGlobal, actionNextCategory, "next category", "tab")
	r.bind(scopeGlobal, actionPrevCategory, "prev category", "shift+tab")
	r.bind(scopeGlobal, actionQuit, "quit", "ctrl+c")

	r.bind(scopeSearch, actionFocusGrid, "browse", "enter", "down")
	r.bind(scopeSearch, actionClearSearch, "clear", "esc")

	r.bind(scopeGrid, actionUp, "up", "up", "k")
	r.bind(scopeGrid, actionDown, "down", "down", "j")
	r.bind(scopeGrid, actionLeft, "left", "left", "h")
	r.bind(scopeGrid, actionRight, "right", "right", "l")
	r.bind(scopeGrid, actionPageUp, "page up", "pgup", "ctrl+u")
	r.bind(scopeGrid, actionPageDown, "page down", "pgdown", "ctrl+d")
	r.bind(scopeGrid, actionJumpTop, "top", "g", "home")
	r.bind(scopeGrid, actionJumpBottom, "bottom", "G", "end")
	r.bind(scopeGrid, actionCopy, "copy", "enter", "space")
	r.bind(scopeGrid, actionCopyRecent, "copy recent", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	r.bind(scopeGrid, actionClearHistory, "clear history", "X")
	r.bind(scopeGrid, actionBackToSearch, "search", "esc", "/")
	r.bind(scopeGrid, actionQuit, "quit", "q")

	return r
}

// bind registers keys for action in scope. Keys already taken in the scope
// are skipped; the first binding wins.
func (r *KeyRegistry) bind(scope string, action Action, help string, keys ...string) {
	s, ok := r.scopes[scope]
	if !ok {
		s = &keyScope{byKey: make(map[string]*Binding)}
		r.scopes[scope] = s
	}
	b := &Binding{Action: action, Help: help}
	for _, k := range keys {
		k = keyName(k)
		if _, taken := s.byKey[k]; k == "" || taken {
			continue
		}
		s.byKey[k] = b
		b.Keys = append(b.Keys, k)
	}
	if len(b.Keys) > 0 {
		s.order = append(s.order, b)
	}
}

// Bindings returns a scope's bindings in registration order.
func (r *KeyRegistry) Bindings(scope string) []Binding {
	s, ok := r.scopes[scope]
	if !ok {
		return nil
	}
	out := make([]Binding, 0, len(s.order))
	for _, b := range s.order {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves a key name in scope, then in the global scope.
func (r *KeyRegistry) Lookup(name, scope string) *Binding {
	name = keyName(name)
	for _, sc := range []string{scope, scopeGlobal} {
		if s, ok := r.scopes[sc]; ok {
			if b := s.byKey[name]; b != nil {
				return b
			}
		}
	}
	return nil
}

// HelpBindings returns footer help for a scope. The four grid directions
// collapse into one "move" hint.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.Bindings(scope)
	out := make([]key.Binding, 0, len(items))
	moveShown := false
	for _, b := range items {
		switch b.Action {
		case actionUp, actionDown, actionLeft, actionRight:
			if !moveShown {
				moveShown = true
				out = append(out, key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↓↑→", "move")))
			}
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// keyName maps a tea key string to its registry form. Single characters keep
// their case so "g" and "G" stay distinct.
func keyName(k string) string {
	if k == " " {
		return "space"
	}
	k = strings.TrimSpace(k)
	if len(k) <= 1 {
		return k
	}
	return strings.ToLower(k)
}
