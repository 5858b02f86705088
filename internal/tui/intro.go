package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	qrcode "github.com/skip2/go-qrcode"
)

func (m appModel) introView() string {
	title := lipgloss.NewStyle().
		Foreground(colorCyber).
		Bold(true).
		Render("2025 · YEAR IN REVIEW")
	sub := styleMuted().Render("A journey through what we built together")

	var parts []string
	parts = append(parts, title, "", sub, "")

	if m.opts.UploadURL != "" {
		parts = append(parts, m.qrBlock(), "")
	}

	prompt := "press enter to begin"
	if m.phase == phaseWarp {
		prompt = "engaging..."
	}
	promptStyle := lipgloss.NewStyle().Foreground(colorText)
	// Slow blink driven by the tick loop.
	if m.phase == phaseIntro && (m.tick/8)%2 == 1 {
		promptStyle = styleMuted()
	}
	parts = append(parts, promptStyle.Render(prompt))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(1, 4).
		Align(lipgloss.Center)
	return box.Render(strings.Join(parts, "\n"))
}

func (m appModel) qrBlock() string {
	q, err := qrcode.New(m.opts.UploadURL, qrcode.Medium)
	if err != nil {
		return styleMuted().Render(m.opts.UploadURL)
	}
	block := strings.TrimRight(q.ToSmallString(false), "\n")

	lines := []string{
		block,
		styleMuted().Render("scan to share your photos"),
		lipgloss.NewStyle().Foreground(colorCyber).Render(m.opts.UploadURL),
	}
	if isLoopbackURL(m.opts.UploadURL) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorGold).
			Render("! loopback address: phones on the network cannot reach this"))
	}
	return strings.Join(lines, "\n")
}

func isLoopbackURL(u string) bool {
	return strings.Contains(u, "localhost") ||
		strings.Contains(u, "127.0.0.1") ||
		strings.Contains(u, "[::1]")
}
