// Package deck holds the static presentation content: the ordered list of
// sections shown in the main deck, plus the rotating quote ticker material.
// Content is read-only at runtime; section identity is the section id.
package deck

// KPI is a single headline metric on a slide. Value is a display string and
// may embed numeric substrings (these are what the count-up animation targets).
type KPI struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Trend    string `json:"trend,omitempty"`
	Positive bool   `json:"positive,omitempty"`
}

// BulletPoint is one talking point. Description may contain **bold** spans
// (see ParseSpans). Lesson is an optional highlighted takeaway.
type BulletPoint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Lesson      string `json:"lesson,omitempty"`
	LessonColor string `json:"lessonColor,omitempty"`
}

// Section is one slide of the deck.
type Section struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Subtitle      string        `json:"subtitle"`
	Description   string        `json:"description"`
	KPIs          []KPI         `json:"kpis,omitempty"`
	Bullets       []BulletPoint `json:"bullets,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	Projects      []string      `json:"projects,omitempty"`
	Illustration  string        `json:"illustration,omitempty"`
	GalleryImages []string      `json:"galleryImages,omitempty"`
}

// GalleryID is the id of the live photo-gallery section.
const GalleryID = "gallery"

// Find returns the section with the given id, or the first section when the
// id is unknown (the deck always has at least one section).
func Find(id string) Section {
	for _, s := range Sections() {
		if s.ID == id {
			return s
		}
	}
	return Sections()[0]
}

// IndexOf returns the position of id in the deck order, or -1.
func IndexOf(id string) int {
	for i, s := range Sections() {
		if s.ID == id {
			return i
		}
	}
	return -1
}
