// Package memories is the live photo pipeline: uploads go out through the
// Gateway to the remote backend (blob storage + a shared document
// collection), and the Aggregator feeds the presentation with the merged,
// newest-first view of everything the crowd has sent.
//
// The remote backend is optional. Without one the pipeline degrades to the
// device-local queue ("demo mode") and the deck keeps working.
package memories

import "sort"

// RecordType tags every document this system writes to the shared
// collection. There is no schema versioning.
const RecordType = "photo"

// Record is one shared-collection document: a durably stored photo. Records
// are created once and never mutated or deleted by this system.
type Record struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
	Type      string `json:"type"`
}

// Status is the live-feed connection state, owned by the Aggregator.
type Status int

const (
	StatusDisconnected Status = iota
	StatusConnected
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusError:
		return "error"
	default:
		return "disconnected"
	}
}

// SortNewestFirst orders records by timestamp descending, in place. The
// collection is fetched unordered (no server-side index required); this is
// the single place presentation order is decided.
func SortNewestFirst(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
}

// URLs projects records to their blob locations, preserving order.
func URLs(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.URL)
	}
	return out
}
