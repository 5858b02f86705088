package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/omerbensaraf/recap/internal/deck"
)

func (m appModel) slideView(sec deck.Section, width int) string {
	var parts []string

	header := lipgloss.NewStyle().Foreground(colorCyber).Bold(true).Render(strings.ToUpper(sec.Title))
	if sec.Subtitle != "" {
		header += "\n" + lipgloss.NewStyle().Foreground(colorText).Render(sec.Subtitle)
	}
	parts = append(parts, header)

	if sec.Description != "" {
		parts = append(parts, styleMuted().Width(width).Render(sec.Description))
	}

	if len(sec.KPIs) > 0 {
		parts = append(parts, m.kpiRow(sec.KPIs, width))
	}

	if len(sec.Bullets) > 0 {
		parts = append(parts, m.bulletList(sec.Bullets, width))
	}

	// The quote ticker rides along on every content slide.
	if len(deck.Quotes) > 0 {
		quote := deck.Quotes[m.quoteIdx%len(deck.Quotes)]
		parts = append(parts, lipgloss.NewStyle().
			Foreground(colorPurple).
			Italic(true).
			Width(width).
			Render("“"+quote+"”"))
	}

	if len(sec.Tags) > 0 {
		parts = append(parts, chipRow(sec.Tags, colorCyber, width))
	}
	if len(sec.Projects) > 0 {
		parts = append(parts, chipRow(sec.Projects, colorPurple, width))
	}

	return strings.Join(parts, "\n\n")
}

// kpiRow lays the section metrics out as bordered cards. Values animate in
// with the count-up driven by the tick loop.
func (m appModel) kpiRow(kpis []deck.KPI, width int) string {
	progress := m.countUpProgress()
	cardW := width/len(kpis) - 2
	if cardW < 12 {
		cardW = 12
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(0, 1).
		Width(cardW)

	cards := make([]string, 0, len(kpis))
	for _, k := range kpis {
		value := k.Value
		if deck.Animatable(value) {
			value = deck.CountUp(value, progress)
		}
		body := lipgloss.NewStyle().Foreground(colorCyber).Bold(true).Render(value)
		body += "\n" + styleMuted().Render(k.Label)
		if k.Trend != "" {
			tc := colorBad
			if k.Positive {
				tc = colorGood
			}
			body += "\n" + lipgloss.NewStyle().Foreground(tc).Render(k.Trend)
		}
		cards = append(cards, card.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m appModel) bulletList(bullets []deck.BulletPoint, width int) string {
	var b strings.Builder
	for i, bp := range bullets {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(colorText).Bold(true).Render("▸ " + bp.Title))
		b.WriteByte('\n')
		b.WriteString(renderSpans(bp.Description, width-2))
		if bp.Lesson != "" {
			b.WriteByte('\n')
			b.WriteString(lipgloss.NewStyle().
				Foreground(lessonColor(bp.LessonColor)).
				Width(width - 2).
				Render("↳ " + bp.Lesson))
		}
	}
	return b.String()
}

// renderSpans styles **bold** markup inside a description.
func renderSpans(text string, width int) string {
	var b strings.Builder
	for _, sp := range deck.ParseSpans(text) {
		if sp.Bold {
			b.WriteString(lipgloss.NewStyle().Foreground(colorText).Bold(true).Render(sp.Text))
			continue
		}
		b.WriteString(sp.Text)
	}
	return styleMuted().Width(width).Render(b.String())
}

func chipRow(items []string, color lipgloss.TerminalColor, width int) string {
	chip := lipgloss.NewStyle().
		Foreground(color).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(0, 1)
	chips := make([]string, 0, len(items))
	for _, it := range items {
		chips = append(chips, chip.Render(it))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	if lipgloss.Width(row) <= width {
		return row
	}
	// Too wide for one row: fall back to a plain wrapped list.
	return lipgloss.NewStyle().Foreground(color).Width(width).Render(strings.Join(items, " · "))
}
