package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDecadePickerStartsEmpty(t *testing.T) {
	p := NewDecadePicker("Context")
	p.SetDecades([]int{1900, 1910, 1920})

	if d, ok := p.Selected(); ok {
		t.Errorf("Selected() = %d, want nothing picked", d)
	}
	if !strings.Contains(p.View(), "[1910s]") {
		t.Errorf("View() = %q, want a 1910s button", p.View())
	}
}

func TestDecadePickerUpdate(t *testing.T) {
	p := NewDecadePicker("Context")
	p.SetDecades([]int{1900, 1910, 1920})

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	if p.Update(enter) {
		t.Error("unfocused picker should ignore keys")
	}

	p.Focus()
	tests := []struct {
		msg     tea.KeyMsg
		changed bool
		want    int
		picked  bool
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, false, 0, false},
		{tea.KeyMsg{Type: tea.KeyRight}, false, 0, false},
		{tea.KeyMsg{Type: tea.KeyRight}, false, 0, false},
		{enter, true, 1920, true},
		{enter, false, 1920, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, false, 1920, true},
		{tea.KeyMsg{Type: tea.KeySpace}, true, 1910, true},
	}
	for i, tt := range tests {
		if got := p.Update(tt.msg); got != tt.changed {
			t.Errorf("step %d: Update(%q) changed = %v, want %v", i, tt.msg.String(), got, tt.changed)
		}
		d, ok := p.Selected()
		if ok != tt.picked || (ok && d != tt.want) {
			t.Errorf("step %d: Selected() = %d, %v, want %d, %v", i, d, ok, tt.want, tt.picked)
		}
	}
}

func TestDecadePickerSelectAndStep(t *testing.T) {
	p := NewDecadePicker("Context")
	p.SetDecades([]int{1940, 1950})

	if p.Select(1890) {
		t.Error("Select() of a decade not offered should not change the pick")
	}
	if !p.Step(1) {
		t.Fatal("Step() with nothing picked should pick the first decade")
	}
	if d, _ := p.Selected(); d != 1940 {
		t.Errorf("Selected() = %d, want 1940", d)
	}
	if !p.Step(1) {
		t.Fatal("Step(1) should move to 1950")
	}
	if p.Step(1) {
		t.Error("Step(1) past the last decade should not change the pick")
	}

	p.SetDecades([]int{1890, 1900})
	if d, ok := p.Selected(); !ok || d != 1950 {
		t.Errorf("Selected() after SetDecades = %d, %v, want 1950 kept", d, ok)
	}
}
