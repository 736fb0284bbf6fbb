package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vibelux/toolkit/pkg/deck"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPurple)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listCheckedStyle  = lipgloss.NewStyle().Foreground(colorGreen)
)

// SlideListModel is the bubbletea model for interactive slide selection.
// Space toggles a slide, enter confirms the set, a renders everything.
type SlideListModel struct {
	Slides  []deck.Slide
	Checked map[int]bool
	Cursor  int
	Done    bool
}

// NewSlideListModel creates a picker with all slides unchecked.
func NewSlideListModel(slides []deck.Slide) SlideListModel {
	return SlideListModel{
		Slides:  slides,
		Checked: make(map[int]bool),
	}
}

func (m SlideListModel) Init() tea.Cmd {
	return nil
}

func (m SlideListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			m.Checked = make(map[int]bool)
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Slides)-1 {
				m.Cursor++
			}
		case " ":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "a":
			for i := range m.Slides {
				m.Checked[i] = true
			}
			m.Done = true
			return m, tea.Quit
		case "enter":
			if len(m.Chosen()) == 0 {
				m.Checked[m.Cursor] = true
			}
			m.Done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SlideListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Slides"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ render  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.Slides {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		check := "[ ]"
		if m.Checked[i] {
			check = listCheckedStyle.Render("[" + iconSuccess + "]")
		}

		b.WriteString(cursor + check + " " + style.Render(s.Name) +
			"  " + listDimStyle.Render(s.Title) + "\n")
	}
	return b.String()
}

// Chosen returns the checked slides in deck order.
func (m SlideListModel) Chosen() []deck.Slide {
	var out []deck.Slide
	for i, s := range m.Slides {
		if m.Checked[i] {
			out = append(out, s)
		}
	}
	return out
}
