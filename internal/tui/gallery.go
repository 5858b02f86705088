package tui

import (
	"fmt"
	"math"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/omerbensaraf/recap/internal/gallery"
	"github.com/omerbensaraf/recap/internal/memories"
)

const (
	photoCardW = 14
	photoCardH = 3
)

func (m appModel) galleryView(width int) string {
	urls := m.galleryURLs()

	header := lipgloss.NewStyle().Foreground(colorCyber).Bold(true).Render("LIVE GALLERY")
	header += "  " + m.feedBadge()
	header += "\n" + styleMuted().Render(fmt.Sprintf("%d memories", len(urls)))

	canvasH := m.height - 2*contentPadY - 4
	if canvasH < photoCardH {
		canvasH = photoCardH
	}

	if len(urls) == 0 {
		empty := styleMuted().Render("no photos yet · scan the QR code on the intro screen to add yours")
		return header + "\n\n" + empty
	}

	canvas := blankCanvas(width, canvasH)
	for i, p := range gallery.Layout(urls, staticGalleryCount()) {
		x := int(p.Left / 100 * float64(width-photoCardW))
		y := int(p.Top / 100 * float64(canvasH-photoCardH))
		y += m.bobOffset(i, p)
		if y < 0 {
			y = 0
		}
		if y > canvasH-photoCardH {
			y = canvasH - photoCardH
		}
		canvas = overlay(canvas, photoCard(p), x, y)
	}
	return header + "\n\n" + canvas
}

// bobOffset is the terminal rendition of the float animation: cards with the
// float flag drift one row up and down on a per-card phase.
func (m appModel) bobOffset(i int, p gallery.Placement) int {
	if p.FloatY == 0 {
		return 0
	}
	period := int(p.FloatDuration * 4) // ticks per half cycle
	if period < 8 {
		period = 8
	}
	phase := (m.tick + i*7) / period
	if phase%2 == 0 {
		return 0
	}
	return int(math.Copysign(1, p.FloatY))
}

func photoCard(p gallery.Placement) string {
	border := colorCardBorder
	if p.IsNew {
		border = colorSelectedBorder
	}
	label := photoLabel(p.URL)
	body := lipgloss.NewStyle().Foreground(colorText).Render("▦ " + label)
	if p.IsNew {
		body += "\n" + lipgloss.NewStyle().Foreground(colorGold).Bold(true).Render("NEW")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(photoCardW - 2).
		Render(body)
}

// photoLabel shortens a photo URL to something card-sized.
func photoLabel(url string) string {
	if strings.HasPrefix(url, "data:") {
		return "on device"
	}
	base := path.Base(url)
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	if len(base) > photoCardW-6 {
		base = base[:photoCardW-6]
	}
	return base
}

func (m appModel) feedBadge() string {
	switch m.feedStatus {
	case memories.StatusConnected:
		return lipgloss.NewStyle().Foreground(colorGood).Render("● live")
	case memories.StatusError:
		return lipgloss.NewStyle().Foreground(colorBad).Render("✕ feed lost")
	default:
		if m.opts.Remote {
			return styleMuted().Render("○ connecting")
		}
		return styleMuted().Render("○ offline · demo")
	}
}

func blankCanvas(width, height int) string {
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
