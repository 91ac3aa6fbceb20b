package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyState_VimSequences(t *testing.T) {
	ks := &KeyState{Vim: true}
	km := DefaultKeymap()

	tests := []struct {
		keys []tea.KeyMsg
		want string
	}{
		{[]tea.KeyMsg{runes("g"), runes("g")}, "top"},
		{[]tea.KeyMsg{runes("d"), runes("d")}, "delete"},
		{[]tea.KeyMsg{runes("y"), runes("y")}, "copy"},
		{[]tea.KeyMsg{runes("G")}, "bottom"},
		{[]tea.KeyMsg{runes("j")}, "down"},
		{[]tea.KeyMsg{runes("J")}, "move_down"},
		{[]tea.KeyMsg{runes("d"), runes("x")}, "complete"},
		{[]tea.KeyMsg{{Type: tea.KeySpace}}, "complete"},
		{[]tea.KeyMsg{{Type: tea.KeyTab}}, "next_filter"},
		{[]tea.KeyMsg{{Type: tea.KeyShiftTab}}, "prev_filter"},
		{[]tea.KeyMsg{runes("1")}, "priority_high"},
		{[]tea.KeyMsg{runes("<")}, "due_today"},
		{[]tea.KeyMsg{{Type: tea.KeyEnter}}, "edit"},
	}

	for _, tt := range tests {
		ks.Reset()
		var action string
		for _, k := range tt.keys {
			action, _ = ks.HandleKey(k, km)
		}
		if action != tt.want {
			t.Errorf("keys %v: action = %q, want %q", tt.keys, action, tt.want)
		}
	}
}

func TestKeyState_FirstKeyOfSequenceIsConsumed(t *testing.T) {
	ks := &KeyState{Vim: true}
	action, consumed := ks.HandleKey(runes("d"), DefaultKeymap())
	if action != "" || !consumed || !ks.WaitingD {
		t.Errorf("d: action=%q consumed=%v waiting=%v", action, consumed, ks.WaitingD)
	}
}

func TestKeyState_NonVimMode(t *testing.T) {
	ks := &KeyState{Vim: false}
	km := DefaultKeymap()

	if action, _ := ks.HandleKey(runes("d"), km); action != "delete" {
		t.Errorf("d = %q, want delete", action)
	}
	if action, _ := ks.HandleKey(runes("y"), km); action != "copy" {
		t.Errorf("y = %q, want copy", action)
	}
	if action, consumed := ks.HandleKey(runes("j"), km); consumed {
		t.Errorf("j should be unbound, got %q", action)
	}
	if action, _ := ks.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, km); action != "down" {
		t.Errorf("down = %q", action)
	}
}

func TestKeymap_HelpBindings(t *testing.T) {
	km := DefaultKeymap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	for _, group := range km.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("binding %v lacks help text", b.Keys())
			}
		}
	}
}
