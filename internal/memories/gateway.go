package memories

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/omerbensaraf/recap/internal/store"
)

// uploadTimeout bounds each blob upload: completion races the timer. The
// underlying transfer is not cancelled, so a timed-out upload may still land
// remotely; the record is simply never written by this sender.
const uploadTimeout = 15 * time.Second

// LocalQueue is the device-local fallback sink.
type LocalQueue interface {
	AppendUploads(ctx context.Context, dataURLs []string) error
}

// PendingQueue extends LocalQueue with the retry surface used by
// SyncPending.
type PendingQueue interface {
	LocalQueue
	Pending(ctx context.Context) ([]store.Upload, error)
	MarkSynced(ctx context.Context, ids []int64) error
}

// Gateway persists upload batches: remotely when a backend is attached,
// otherwise to the local queue. Pass nil blobs/coll for demo mode.
type Gateway struct {
	blobs BlobStore
	coll  Collection
	local LocalQueue
	log   *log.Logger

	timeout time.Duration
	now     func() time.Time
	suffix  func() string
}

// NewGateway builds a gateway. blobs and coll are nil in demo mode (both or
// neither); local must always be set.
func NewGateway(blobs BlobStore, coll Collection, local LocalQueue, logger *log.Logger) *Gateway {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Gateway{
		blobs:   blobs,
		coll:    coll,
		local:   local,
		log:     logger,
		timeout: uploadTimeout,
		now:     time.Now,
		suffix:  randomSuffix,
	}
}

// Remote reports whether a backend is attached (false means demo mode).
func (g *Gateway) Remote() bool {
	return g.blobs != nil && g.coll != nil
}

// SendResult counts where each photo of a batch ended up.
type SendResult struct {
	Remote int `json:"remote"`
	Local  int `json:"local"`
}

// Send persists a batch of data-URL images. Success means every image is
// durably recorded: remotely when the backend is attached, locally in demo
// mode. Images upload concurrently with no ordering between them.
//
// On remote failure the failed subset is preserved in the local queue for
// retry and the batch is reported failed; if even the local write fails,
// nothing is counted.
func (g *Gateway) Send(ctx context.Context, dataURLs []string) (SendResult, error) {
	if len(dataURLs) == 0 {
		return SendResult{}, nil
	}

	if !g.Remote() {
		if err := g.local.AppendUploads(ctx, dataURLs); err != nil {
			return SendResult{}, fmt.Errorf("queue locally: %w", err)
		}
		g.log.Info("saved batch to local queue (demo mode)", "count", len(dataURLs))
		return SendResult{Local: len(dataURLs)}, nil
	}

	errs := make([]error, len(dataURLs))
	var wg sync.WaitGroup
	for i, u := range dataURLs {
		wg.Add(1)
		go func(i int, dataURL string) {
			defer wg.Done()
			errs[i] = g.sendOne(ctx, dataURL)
		}(i, u)
	}
	wg.Wait()

	var failed []string
	var firstErr error
	for i, err := range errs {
		if err != nil {
			failed = append(failed, dataURLs[i])
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if len(failed) == 0 {
		g.log.Info("batch recorded remotely", "count", len(dataURLs))
		return SendResult{Remote: len(dataURLs)}, nil
	}

	g.log.Warn("remote send failed, falling back to local queue",
		"failed", len(failed), "total", len(dataURLs), "err", firstErr)
	if lerr := g.local.AppendUploads(ctx, failed); lerr != nil {
		return SendResult{Remote: len(dataURLs) - len(failed)},
			errors.Join(firstErr, fmt.Errorf("local fallback: %w", lerr))
	}
	return SendResult{Remote: len(dataURLs) - len(failed), Local: len(failed)},
		fmt.Errorf("%d of %d photos failed to send: %w", len(failed), len(dataURLs), firstErr)
}

func (g *Gateway) sendOne(ctx context.Context, dataURL string) error {
	contentType, data, err := DecodeDataURL(dataURL)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("memories/%d_%s.jpg", g.now().UnixMilli(), g.suffix())

	uctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- g.blobs.Upload(uctx, path, data, contentType) }()
	select {
	case err := <-done:
		if err != nil {
			return err
		}
	case <-uctx.Done():
		return fmt.Errorf("upload %s: %w", path, uctx.Err())
	}

	rec := Record{
		URL:       g.blobs.PublicURL(path),
		Timestamp: g.now().UnixMilli(),
		Type:      RecordType,
	}
	return g.coll.Append(uctx, rec)
}

// SyncPending retries the local pending queue against the backend. Uploads
// that make it remote are marked synced (rows stay for history). Returns how
// many were synced; stops at the first failure so the rest stay pending.
func (g *Gateway) SyncPending(ctx context.Context, q PendingQueue) (int, error) {
	if !g.Remote() {
		return 0, ErrUnconfigured
	}
	pending, err := q.Pending(ctx)
	if err != nil {
		return 0, fmt.Errorf("load pending queue: %w", err)
	}

	synced := 0
	for _, u := range pending {
		if err := g.sendOne(ctx, u.DataURL); err != nil {
			return synced, fmt.Errorf("sync upload %d: %w", u.ID, err)
		}
		if err := q.MarkSynced(ctx, []int64{u.ID}); err != nil {
			return synced, fmt.Errorf("mark upload %d synced: %w", u.ID, err)
		}
		synced++
	}
	return synced, nil
}

func randomSuffix() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Suffixes only disambiguate same-millisecond uploads.
		return "00000000"
	}
	return hex.EncodeToString(b[:])
}
