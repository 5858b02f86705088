package deck

import "strings"

// Span is one run of a bullet description, either plain or bold.
type Span struct {
	Text string
	Bold bool
}

// ParseSpans splits text on **bold** markers into ordered spans. Unterminated
// markers are treated as literal text. Empty bold runs are dropped.
func ParseSpans(text string) []Span {
	var spans []Span
	for {
		open := strings.Index(text, "**")
		if open < 0 {
			break
		}
		close := strings.Index(text[open+2:], "**")
		if close < 0 {
			break
		}
		if open > 0 {
			spans = append(spans, Span{Text: text[:open]})
		}
		if inner := text[open+2 : open+2+close]; inner != "" {
			spans = append(spans, Span{Text: inner, Bold: true})
		}
		text = text[open+2+close+2:]
	}
	if text != "" {
		spans = append(spans, Span{Text: text})
	}
	return spans
}
