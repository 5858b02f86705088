// Package docs serves the bundled on-demand documentation topics.
package docs

import (
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

//go:embed content/*.md
var contentFS embed.FS

func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return []string{}
	}
	var topics []string
	for _, path := range entries {
		base := filepath.Base(path)
		topic := strings.TrimSuffix(base, filepath.Ext(base))
		if topic != "" {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics
}

func Get(topic string) (string, bool) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", false
	}
	topic = strings.ToLower(topic)
	path := filepath.Join("content", topic+".md")
	b, err := contentFS.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(b), true
}

var (
	rendererMu sync.Mutex
	// Cache renderers by wrap width. WithAutoStyle can block on terminal
	// capability queries, so a fixed style plus caching keeps rendering
	// predictable.
	renderers = map[int]*glamour.TermRenderer{}
)

// Render converts topic markdown to terminal output. Falls back to the raw
// markdown when the renderer is unavailable.
func Render(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	rendererMu.Lock()
	r := renderers[width]
	rendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		rendererMu.Lock()
		if existing := renderers[width]; existing != nil {
			r = existing
		} else {
			renderers[width] = rr
			r = rr
		}
		rendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
