package tui

import (
	"github.com/omerbensaraf/recap/internal/deck"
)

const (
	// Roadmap sidebar only fits comfortably on wide terminals; below this the
	// menu overlay is the way to navigate.
	minSidebarW = 110

	sidebarW     = 26
	contentPadX  = 2
	contentPadY  = 1
	maxContentW  = 96
	introTopRows = 3
)

func (m appModel) View() string {
	if m.width < 10 || m.height < 6 {
		return "terminal too small"
	}

	bg := renderBackground(m.sim, m.width, backgroundRows(m.height))

	switch m.phase {
	case phaseIntro, phaseWarp:
		return overlayCentered(bg, m.introView(), m.width, introTopRows)
	}

	frame := bg
	x := contentPadX
	if m.sidebarVisible() {
		frame = overlay(frame, m.roadmapView(), contentPadX, contentPadY)
		x = contentPadX + sidebarW + 2
	}

	sec := m.section()
	var content string
	if sec.ID == deck.GalleryID {
		content = m.galleryView(m.contentWidth())
	} else {
		content = m.slideView(sec, m.contentWidth())
	}
	frame = overlay(frame, content, x, contentPadY)

	if m.menuOpen {
		frame = overlayCentered(frame, m.menuView(), m.width, 2)
	}
	return frame
}

func (m appModel) sidebarVisible() bool {
	return m.width >= minSidebarW
}

func (m appModel) contentWidth() int {
	w := m.width - 2*contentPadX
	if m.sidebarVisible() {
		w -= sidebarW + 2
	}
	if w > maxContentW {
		w = maxContentW
	}
	return w
}
