package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibelux/toolkit/pkg/deck"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSlideListModelToggle(t *testing.T) {
	m := NewSlideListModel(deck.Slides())

	updated, _ := m.Update(keyMsg(" "))
	m = updated.(SlideListModel)
	if !m.Checked[0] {
		t.Error("space should check the cursor row")
	}

	updated, _ = m.Update(keyMsg(" "))
	m = updated.(SlideListModel)
	if m.Checked[0] {
		t.Error("space should toggle the cursor row off")
	}
}

func TestSlideListModelNavigation(t *testing.T) {
	m := NewSlideListModel(deck.Slides())

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(SlideListModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d after j, want 1", m.Cursor)
	}

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(SlideListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after k, want 0", m.Cursor)
	}

	// Cursor clamps at the top.
	updated, _ = m.Update(keyMsg("k"))
	m = updated.(SlideListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, should not go negative", m.Cursor)
	}
}

func TestSlideListModelSelectAll(t *testing.T) {
	m := NewSlideListModel(deck.Slides())

	updated, cmd := m.Update(keyMsg("a"))
	m = updated.(SlideListModel)

	if !m.Done {
		t.Error("a should confirm the selection")
	}
	if cmd == nil {
		t.Error("a should quit the program")
	}
	if len(m.Chosen()) != len(deck.Slides()) {
		t.Errorf("Chosen() = %d slides, want %d", len(m.Chosen()), len(deck.Slides()))
	}
}

func TestSlideListModelEnterDefaultsToCursor(t *testing.T) {
	m := NewSlideListModel(deck.Slides())
	m.Cursor = 2

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(SlideListModel)

	chosen := m.Chosen()
	if len(chosen) != 1 {
		t.Fatalf("Chosen() = %d slides, want 1", len(chosen))
	}
	if chosen[0].Name != deck.Slides()[2].Name {
		t.Errorf("Chosen()[0] = %q, want cursor row %q", chosen[0].Name, deck.Slides()[2].Name)
	}
}

func TestSlideListModelQuitClearsSelection(t *testing.T) {
	m := NewSlideListModel(deck.Slides())

	updated, _ := m.Update(keyMsg(" "))
	m = updated.(SlideListModel)
	updated, _ = m.Update(keyMsg("q"))
	m = updated.(SlideListModel)

	if len(m.Chosen()) != 0 {
		t.Error("q should discard the selection")
	}
}

func TestSlideListModelView(t *testing.T) {
	m := NewSlideListModel(deck.Slides())
	view := m.View()

	if !strings.Contains(view, "Select Slides") {
		t.Error("View() should render the header")
	}
	for _, s := range deck.Slides() {
		if !strings.Contains(view, s.Name) {
			t.Errorf("View() should list slide %q", s.Name)
		}
	}
}
