package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/omerbensaraf/recap/internal/starfield"
)

// backgroundRows is how many rows the starfield covers. The backdrop fills
// the whole frame; content is composited on top.
func backgroundRows(height int) int {
	if height < 1 {
		return 1
	}
	return height
}

type bgCell struct {
	ch    rune
	color lipgloss.TerminalColor
	faint bool
}

// renderBackground rasterizes the starfield into a frame-sized block of
// styled lines.
func renderBackground(sim *starfield.Sim, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}

	grid := make([][]bgCell, height)
	for y := range grid {
		grid[y] = make([]bgCell, width)
		for x := range grid[y] {
			grid[y][x] = bgCell{ch: ' '}
		}
	}

	// Faint perspective grid, fading as the field accelerates.
	if sim.GridOpacity() > 0.08 {
		for y := 2; y < height; y += 4 {
			for x := 3; x < width; x += 8 {
				grid[y][x] = bgCell{ch: '·', color: colorSubtle, faint: true}
			}
		}
	}

	warping := sim.Warp()
	for _, p := range sim.Project() {
		x, y := int(p.X), int(p.Y)
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		grid[y][x] = starCell(p)
		if warping {
			// Approximate the radial trail with one midpoint cell.
			mx, my := (x+int(p.TrailX))/2, (y+int(p.TrailY))/2
			if mx >= 0 && mx < width && my >= 0 && my < height && grid[my][mx].ch == ' ' {
				grid[my][mx] = bgCell{ch: '-', color: colorStarFar, faint: true}
			}
		}
	}

	for _, s := range sim.Streaks() {
		x, y := int(s.X), int(s.Y)
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		switch s.Kind {
		case starfield.KindAsteroid:
			grid[y][x] = bgCell{ch: 'o', color: colorGold}
		default:
			grid[y][x] = bgCell{ch: '*', color: colorStarNear}
			if x+1 < width && grid[y][x+1].ch == ' ' {
				grid[y][x+1] = bgCell{ch: '-', color: colorStarMid, faint: true}
			}
		}
	}

	var b strings.Builder
	line := make([]rune, 0, width)
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		x := 0
		for x < width {
			cell := grid[y][x]
			// Batch runs of identical styling into one styled write.
			line = line[:0]
			for x < width && grid[y][x].color == cell.color && grid[y][x].faint == cell.faint {
				line = append(line, grid[y][x].ch)
				x++
			}
			run := string(line)
			if cell.color == nil {
				b.WriteString(run)
				continue
			}
			st := lipgloss.NewStyle().Foreground(cell.color)
			if cell.faint {
				st = st.Faint(true)
			}
			b.WriteString(st.Render(run))
		}
	}
	return b.String()
}

func starCell(p starfield.Point) bgCell {
	switch {
	case p.Size >= 1.6:
		return bgCell{ch: '*', color: colorStarNear}
	case p.Size >= 0.9:
		return bgCell{ch: '+', color: colorStarMid}
	default:
		return bgCell{ch: '.', color: colorStarFar, faint: true}
	}
}

// overlay composites block onto bg with its top-left corner at (x, y). Both
// may contain ANSI sequences; splicing is width-aware.
func overlay(bg, block string, x, y int) string {
	if block == "" {
		return bg
	}
	bgLines := strings.Split(bg, "\n")
	for i, bl := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		w := ansi.StringWidth(bl)
		left := ansi.Truncate(bgLines[row], x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(bgLines[row], x+w, "")
		bgLines[row] = left + bl + right
	}
	return strings.Join(bgLines, "\n")
}

// overlayCentered composites block at the horizontal center, vertically
// offset from the top.
func overlayCentered(bg, block string, width, y int) string {
	w := 0
	for _, l := range strings.Split(block, "\n") {
		if lw := ansi.StringWidth(l); lw > w {
			w = lw
		}
	}
	x := (width - w) / 2
	if x < 0 {
		x = 0
	}
	return overlay(bg, block, x, y)
}
