package tui

import (
	"context"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/omerbensaraf/recap/internal/deck"
	"github.com/omerbensaraf/recap/internal/gallery"
	"github.com/omerbensaraf/recap/internal/memories"
	"github.com/omerbensaraf/recap/internal/starfield"
	"github.com/omerbensaraf/recap/internal/store"
)

type phase int

const (
	phaseIntro phase = iota
	phaseWarp
	phaseMain
)

const (
	tickInterval = 80 * time.Millisecond
	warpDuration = 800 * time.Millisecond

	// KPI numbers count up over roughly two seconds of ticks.
	countUpTicks = 25
	// Innovation quotes rotate every eight seconds.
	quoteTicks = 100
)

// Options wires the deck to its data sources. Zero-value channels are fine:
// a nil Snapshots channel means the live feed never connects.
type Options struct {
	Store     store.Store
	Snapshots <-chan memories.Snapshot
	Changes   <-chan struct{}
	UploadURL string
	Remote    bool
}

type appModel struct {
	opts Options

	width  int
	height int

	phase    phase
	active   int // index into deck.Sections()
	menuOpen bool
	menuIdx  int

	sim     *starfield.Sim
	tick    int
	warpSeq int

	countStart int
	quoteIdx   int

	feedStatus memories.Status
	feedErr    error
	liveURLs   []string
	localURLs  []string
}

type tickMsg time.Time

type warpDoneMsg struct{ seq int }

type snapshotMsg struct {
	snap memories.Snapshot
	ok   bool
}

type storeChangedMsg struct{ ok bool }

type localImagesMsg struct{ urls []string }

func newAppModel(opts Options) appModel {
	return appModel{
		opts:       opts,
		phase:      phaseIntro,
		sim:        starfield.New(80, 24, rand.New(rand.NewSource(time.Now().UnixNano()))),
		quoteIdx:   rand.Intn(len(deck.Quotes)),
		feedStatus: memories.StatusDisconnected,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		waitSnapshot(m.opts.Snapshots),
		waitChange(m.opts.Changes),
		loadLocal(m.opts.Store),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitSnapshot(ch <-chan memories.Snapshot) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-ch
		return snapshotMsg{snap: snap, ok: ok}
	}
}

func waitChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		_, ok := <-ch
		return storeChangedMsg{ok: ok}
	}
}

func loadLocal(s store.Store) tea.Cmd {
	if s.Dir == "" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		urls, err := s.LocalImages(ctx)
		if err != nil {
			return localImagesMsg{}
		}
		return localImagesMsg{urls: urls}
	}
}

func (m appModel) section() deck.Section {
	sections := deck.Sections()
	if m.active < 0 || m.active >= len(sections) {
		return sections[0]
	}
	return sections[m.active]
}

// countUpProgress is the 0..1 animation progress for the active section's KPI
// numbers.
func (m appModel) countUpProgress() float64 {
	p := float64(m.tick-m.countStart) / countUpTicks
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// galleryURLs merges the curated section images, the live feed, and the local
// queue for the gallery collage. The live subset keeps the newest-first order
// the aggregator publishes.
func (m appModel) galleryURLs() []string {
	sec := deck.Find(deck.GalleryID)
	return gallery.Merge(sec.GalleryImages, m.liveURLs, m.localURLs)
}

// staticGalleryCount is the number of curated images that open the collage.
// Everything merged after them is a crowd submission and wears the NEW badge.
func staticGalleryCount() int {
	return len(deck.Find(deck.GalleryID).GalleryImages)
}
