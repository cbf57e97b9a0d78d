package tui

import (
	"fmt"
	"strings"

	"donorjourney/internal/types"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Donor Journey"))
	b.WriteString("\n\n")

	switch m.step {
	case stepLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.styles.Body.Render("Crafting your personalized journey..."))
		b.WriteString("\n")
		return b.String()
	case stepError:
		b.WriteString(m.styles.Error.Render("Oops! Something went wrong."))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Body.Render(m.message))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("r start over • q quit"))
		return b.String()
	case stepResult:
		b.WriteString(m.rendered)
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("r start over • q quit"))
		return b.String()
	}

	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Step %d of %d", int(m.step)+1, formSteps)))
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(stepTitles[m.step]))
	b.WriteString("\n")

	var body string
	switch m.step {
	case stepBasics:
		body = m.viewBasics()
	case stepInterests:
		body = m.viewInterests()
	case stepCapacity:
		body = m.viewCapacity()
	case stepChannels:
		body = m.viewChannels()
	}
	b.WriteString(m.styles.Card.Width(max(min(m.width-4, 72), 30)).Render(body))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(m.styles.Error.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.help()))
	return b.String()
}

func (m Model) help() string {
	switch m.step {
	case stepBasics:
		return "↑/↓ move • ←/→ change • enter next • ctrl+c quit"
	case stepCapacity:
		return "↑/↓ move • enter next • esc back • ctrl+c quit"
	case stepChannels:
		return "↑/↓ move • space toggle • enter submit • esc back • ctrl+c quit"
	}
	return "↑/↓ move • space toggle • enter next • esc back • ctrl+c quit"
}

func (m Model) row(i int, label string) string {
	cursor := "  "
	if m.cursor == i {
		cursor = m.styles.Cursor.Render("> ")
	}
	return cursor + label
}

func (m Model) checkbox(i int, label string, on bool) string {
	box := "[ ]"
	text := m.styles.Body.Render(label)
	if on {
		box = "[x]"
		text = m.styles.Selected.Render(label)
	}
	return m.row(i, box+" "+text)
}

func (m Model) viewBasics() string {
	lines := []string{
		m.row(0, "Name      "+m.name.View()),
		m.row(1, "Language  "+m.styles.Selected.Render("‹ "+string(types.Languages[m.language])+" ›")),
		m.row(2, "Location  "+m.styles.Selected.Render("‹ "+types.Regions[m.location]+" ›")),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewInterests() string {
	lines := make([]string, 0, len(types.CauseAreas))
	for i, a := range types.CauseAreas {
		lines = append(lines, m.checkbox(i, string(a), m.interests[a]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewCapacity() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.row(0, "Minimum  "+m.min.View()),
		m.row(1, "Maximum  "+m.max.View()),
		"",
		m.styles.Muted.Render("Monthly amounts in SGD."),
	)
}

func (m Model) viewChannels() string {
	lines := make([]string, 0, len(types.Channels)+2)
	for i, ch := range types.Channels {
		lines = append(lines, m.checkbox(i, string(ch), m.channels[ch]))
	}
	lines = append(lines, "")
	lines = append(lines, m.checkbox(len(types.Channels),
		"I agree to receive updates about the campaigns I support", m.consent))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
