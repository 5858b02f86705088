package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/omerbensaraf/recap/internal/deck"
)

// roadmapView is the persistent sidebar on wide terminals: every section with
// its step number, the active one highlighted, plus overall progress.
func (m appModel) roadmapView() string {
	sections := deck.Sections()

	bar := progress.New(progress.WithSolidFill("6"), progress.WithoutPercentage())
	bar.Width = sidebarW - 2

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(colorCyber).Bold(true).Render("ROADMAP"))
	b.WriteByte('\n')
	b.WriteString(styleMuted().Render(fmt.Sprintf("%d / %d", m.active+1, len(sections))))
	b.WriteByte('\n')
	b.WriteString(bar.ViewAs(float64(m.active+1) / float64(len(sections))))
	b.WriteString("\n\n")

	for i, sec := range sections {
		marker := " "
		st := styleMuted()
		switch {
		case i == m.active:
			marker = ">"
			st = lipgloss.NewStyle().Foreground(colorText).Bold(true)
		case i < m.active:
			marker = "·"
			st = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		line := fmt.Sprintf("%s %02d %s", marker, i+1, sec.Title)
		if w := lipgloss.Width(line); w > sidebarW {
			line = line[:sidebarW-1] + "…"
		}
		b.WriteString(st.Render(line))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(styleMuted().Render("j/k move · g gallery · q quit"))

	return lipgloss.NewStyle().
		Width(sidebarW).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(colorCardBorder).
		Render(b.String())
}

// menuView is the modal section picker used on narrow terminals (and via the
// m key everywhere).
func (m appModel) menuView() string {
	sections := deck.Sections()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(colorCyber).Bold(true).Render("SECTIONS"))
	b.WriteString("\n\n")
	for i, sec := range sections {
		st := lipgloss.NewStyle().Foreground(colorText)
		prefix := "  "
		if i == m.menuIdx {
			st = st.Bold(true).Foreground(colorCyber)
			prefix = "> "
		}
		b.WriteString(st.Render(fmt.Sprintf("%s%02d  %s", prefix, i+1, sec.Title)))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(styleMuted().Render("enter select · esc close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSelectedBorder).
		Padding(1, 3).
		Render(b.String())
}
