package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/omerbensaraf/recap/internal/deck"
	"github.com/omerbensaraf/recap/internal/memories"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sim.Resize(msg.Width, backgroundRows(msg.Height))
		return m, nil

	case tickMsg:
		m.tick++
		m.sim.Advance()
		if m.tick%quoteTicks == 0 {
			m.quoteIdx = (m.quoteIdx + 1) % len(deck.Quotes)
		}
		return m, tickCmd()

	case warpDoneMsg:
		// Stale timers from an earlier warp are ignored.
		if msg.seq != m.warpSeq || m.phase != phaseWarp {
			return m, nil
		}
		m.phase = phaseMain
		m.sim.SetWarp(false)
		m.countStart = m.tick
		return m, nil

	case snapshotMsg:
		if !msg.ok {
			// Feed channel closed; keep the last known state.
			return m, nil
		}
		m.feedStatus = msg.snap.Status
		m.feedErr = msg.snap.Err
		if msg.snap.Status == memories.StatusConnected {
			m.liveURLs = msg.snap.URLs
		}
		return m, waitSnapshot(m.opts.Snapshots)

	case storeChangedMsg:
		if !msg.ok {
			return m, nil
		}
		return m, tea.Batch(loadLocal(m.opts.Store), waitChange(m.opts.Changes))

	case localImagesMsg:
		m.localURLs = msg.urls
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	if m.phase == phaseIntro {
		switch msg.String() {
		case "enter", " ":
			return m.startWarp()
		}
		return m, nil
	}
	if m.phase == phaseWarp {
		return m, nil
	}

	if m.menuOpen {
		return m.handleMenuKey(msg)
	}

	sections := deck.Sections()
	switch msg.String() {
	case "j", "down", "right", "l":
		if m.active < len(sections)-1 {
			m.active++
			m.enterSection()
		}
	case "k", "up", "left", "h":
		if m.active > 0 {
			m.active--
			m.enterSection()
		}
	case "g":
		if idx := deck.IndexOf(deck.GalleryID); idx >= 0 {
			m.active = idx
			m.enterSection()
		}
	case "m", "tab":
		m.menuOpen = true
		m.menuIdx = m.active
	}
	return m, nil
}

func (m *appModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sections := deck.Sections()
	switch msg.String() {
	case "esc", "m":
		m.menuOpen = false
	case "j", "down":
		if m.menuIdx < len(sections)-1 {
			m.menuIdx++
		}
	case "k", "up":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "enter":
		// Selecting a section always closes the overlay.
		m.active = m.menuIdx
		m.menuOpen = false
		m.enterSection()
	}
	return *m, nil
}

func (m appModel) startWarp() (tea.Model, tea.Cmd) {
	m.phase = phaseWarp
	m.sim.SetWarp(true)
	m.warpSeq++
	seq := m.warpSeq
	return m, tea.Tick(warpDuration, func(time.Time) tea.Msg { return warpDoneMsg{seq: seq} })
}

// enterSection resets per-section animation state.
func (m *appModel) enterSection() {
	m.countStart = m.tick
}
