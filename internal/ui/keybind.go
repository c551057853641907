package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty = every mode
}

func (b binding) appliesTo(mode AppMode) bool {
	if len(b.modes) == 0 {
		return true
	}
	for _, m := range b.modes {
		if m == mode {
			return true
		}
	}
	return false
}

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC t" is space then t.
// Single keys use tea.KeyMsg.String() names: "q", "ctrl+c", "esc".
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq for the given modes (all modes when none are given).
// A later Bind of the same sequence replaces the earlier one.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string, modes ...AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command bound to seq in mode, or nil.
func (r *KeybindRegistry) Lookup(seq string, mode AppMode) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.appliesTo(mode) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a longer binding continues seq in mode.
func (r *KeybindRegistry) HasPrefix(seq string, mode AppMode) bool {
	prefix := normalizeSeq(seq) + " "
	for k, b := range r.bindings {
		if b.cmd != nil && strings.HasPrefix(k, prefix) && b.appliesTo(mode) {
			return true
		}
	}
	return false
}

// submenuLabel names leader keys that open a submenu.
var submenuLabel = map[string]string{
	"g": "Go",
}

// Hint is one entry of the leader help box.
type Hint struct {
	Key  string
	Desc string
}

// LeaderHints returns the next keys available after currentSeq ("SPC" when
// empty) in mode, sorted by key. Keys that open a submenu are shown with the
// submenu's label rather than one of its actions.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) []Hint {
	if currentSeq == "" {
		currentSeq = "SPC"
	}
	prefix := normalizeSeq(currentSeq) + " "
	seen := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || !strings.HasPrefix(seq, prefix) || !b.appliesTo(mode) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		if r.HasPrefix(prefix+next, mode) {
			label, ok := submenuLabel[next]
			if !ok {
				label = next + "…"
			}
			seen[next] = label
			continue
		}
		desc := b.desc
		if desc == "" {
			desc = seq
		}
		seen[next] = desc
	}
	hints := make([]Hint, 0, len(seen))
	for k, d := range seen {
		hints = append(hints, Hint{Key: k, Desc: d})
	}
	sort.Slice(hints, func(i, j int) bool { return hints[i].Key < hints[j].Key })
	return hints
}

// normalizeSeq converts tea key names to registry notation.
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts one tea key string to a sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyHandler tracks leader state and dispatches keys to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool     // SPC pressed, sequence incomplete
	Buffer        []string // sequence typed so far, starting with "SPC"
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// CurrentSeq returns the pending leader sequence, or "".
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

// Reset leaves leader mode.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle processes a key in mode. consumed reports whether the key belonged
// to the keybind system and must not reach the active view.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())

	if h.LeaderWaiting {
		if part == "esc" {
			h.Reset()
			return true, nil
		}
		h.Buffer = append(h.Buffer, part)
		seq := h.CurrentSeq()
		if c := h.Registry.Lookup(seq, mode); c != nil {
			h.Reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq, mode) {
			h.Reset()
		}
		return true, nil
	}

	if part == "SPC" {
		h.LeaderWaiting = true
		h.Buffer = []string{"SPC"}
		return true, nil
	}

	if c := h.Registry.Lookup(part, mode); c != nil {
		return true, c
	}
	return false, nil
}

// hintBindings converts hints to key.Binding values for bubbles/help,
// followed by the esc cancel binding.
func hintBindings(hints []Hint) []key.Binding {
	out := make([]key.Binding, 0, len(hints)+1)
	for _, h := range hints {
		out = append(out, key.NewBinding(key.WithKeys(h.Key), key.WithHelp(h.Key, h.Desc)))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}
