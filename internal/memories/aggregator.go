package memories

import (
	"context"
	"time"
)

const defaultPollInterval = 3 * time.Second

// Snapshot is one published view of the live gallery feed.
type Snapshot struct {
	URLs   []string
	Status Status
	Err    error
}

// Aggregator polls the backend collection and publishes newest-first
// snapshots of the feed. One poll failure flips the feed to StatusError and
// ends the stream; there is no reconnection.
type Aggregator struct {
	coll     Collection
	interval time.Duration
}

// NewAggregator builds an aggregator over coll. A zero or negative interval
// means the default.
func NewAggregator(coll Collection, interval time.Duration) *Aggregator {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Aggregator{coll: coll, interval: interval}
}

// Run starts polling and returns the snapshot stream. The first poll happens
// immediately. The channel closes when ctx is cancelled or after an error
// snapshot. With no collection attached the channel closes right away and the
// feed stays disconnected.
func (a *Aggregator) Run(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot)
	if a.coll == nil {
		close(out)
		return out
	}

	go func() {
		defer close(out)
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		for {
			records, err := a.coll.List(ctx)
			if err != nil {
				publish(ctx, out, Snapshot{Status: StatusError, Err: err})
				return
			}
			SortNewestFirst(records)
			if !publish(ctx, out, Snapshot{URLs: URLs(records), Status: StatusConnected}) {
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return out
}

func publish(ctx context.Context, out chan<- Snapshot, s Snapshot) bool {
	select {
	case out <- s:
		return true
	case <-ctx.Done():
		return false
	}
}
