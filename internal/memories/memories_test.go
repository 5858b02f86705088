package memories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/omerbensaraf/recap/internal/store"
)

type fakeBlobs struct {
	mu      sync.Mutex
	stored  map[string]string
	failOn  map[string]bool
	uploads int
	delay   time.Duration
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{stored: map[string]string{}, failOn: map[string]bool{}}
}

func (f *fakeBlobs) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	if f.failOn[string(data)] {
		return errors.New("blob store unavailable")
	}
	f.stored[path] = string(data)
	return nil
}

func (f *fakeBlobs) PublicURL(path string) string {
	return "https://blob.test/" + path
}

type fakeColl struct {
	mu      sync.Mutex
	records []Record
	listErr error
}

func (f *fakeColl) Append(ctx context.Context, rec Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeColl) List(ctx context.Context) ([]Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Record(nil), f.records...), nil
}

type fakeLocal struct {
	mu     sync.Mutex
	queued []string
	err    error
}

func (f *fakeLocal) AppendUploads(ctx context.Context, dataURLs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.queued = append(f.queued, dataURLs...)
	return nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func photoURL(body string) string {
	return EncodeDataURL("image/jpeg", []byte(body))
}

func TestSendDemoMode(t *testing.T) {
	t.Parallel()
	local := &fakeLocal{}
	gw := NewGateway(nil, nil, local, testLogger())

	res, err := gw.Send(context.Background(), []string{photoURL("a"), photoURL("b")})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res != (SendResult{Local: 2}) {
		t.Fatalf("result = %+v, want 2 local", res)
	}
	if len(local.queued) != 2 {
		t.Fatalf("queued %d, want 2", len(local.queued))
	}
}

func TestSendRemote(t *testing.T) {
	t.Parallel()
	blobs := newFakeBlobs()
	coll := &fakeColl{}
	gw := NewGateway(blobs, coll, &fakeLocal{}, testLogger())

	res, err := gw.Send(context.Background(), []string{photoURL("a"), photoURL("b")})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res != (SendResult{Remote: 2}) {
		t.Fatalf("result = %+v, want 2 remote", res)
	}
	if len(coll.records) != 2 {
		t.Fatalf("records %d, want 2", len(coll.records))
	}
	for _, rec := range coll.records {
		if rec.Type != RecordType {
			t.Errorf("record type = %q, want %q", rec.Type, RecordType)
		}
		if !strings.HasPrefix(rec.URL, "https://blob.test/memories/") {
			t.Errorf("record url = %q, want blob path under memories/", rec.URL)
		}
	}
}

func TestSendPartialFailureFallsBackLocally(t *testing.T) {
	t.Parallel()
	blobs := newFakeBlobs()
	blobs.failOn["b"] = true
	coll := &fakeColl{}
	local := &fakeLocal{}
	gw := NewGateway(blobs, coll, local, testLogger())

	res, err := gw.Send(context.Background(), []string{photoURL("a"), photoURL("b")})
	if err == nil {
		t.Fatal("want error for partial failure")
	}
	if res != (SendResult{Remote: 1, Local: 1}) {
		t.Fatalf("result = %+v, want 1 remote, 1 local", res)
	}
	if len(local.queued) != 1 || local.queued[0] != photoURL("b") {
		t.Fatalf("queued = %v, want just the failed photo", local.queued)
	}
}

func TestSendTotalFailure(t *testing.T) {
	t.Parallel()
	blobs := newFakeBlobs()
	blobs.failOn["a"] = true
	blobs.failOn["b"] = true
	local := &fakeLocal{err: errors.New("disk full")}
	gw := NewGateway(blobs, &fakeColl{}, local, testLogger())

	res, err := gw.Send(context.Background(), []string{photoURL("a"), photoURL("b")})
	if err == nil {
		t.Fatal("want error when remote and local both fail")
	}
	if res != (SendResult{}) {
		t.Fatalf("result = %+v, want nothing recorded", res)
	}
}

func TestSendUploadTimeout(t *testing.T) {
	t.Parallel()
	blobs := newFakeBlobs()
	blobs.delay = time.Minute
	local := &fakeLocal{}
	gw := NewGateway(blobs, &fakeColl{}, local, testLogger())
	gw.timeout = 20 * time.Millisecond

	res, err := gw.Send(context.Background(), []string{photoURL("a")})
	if err == nil {
		t.Fatal("want timeout error")
	}
	if res != (SendResult{Local: 1}) {
		t.Fatalf("result = %+v, want timed-out photo queued locally", res)
	}
}

func TestSendEmptyBatch(t *testing.T) {
	t.Parallel()
	gw := NewGateway(nil, nil, &fakeLocal{}, testLogger())
	res, err := gw.Send(context.Background(), nil)
	if err != nil || res != (SendResult{}) {
		t.Fatalf("got %+v, %v; want zero result", res, err)
	}
}

type fakePending struct {
	fakeLocal
	pending []store.Upload
	synced  []int64
}

func (f *fakePending) Pending(ctx context.Context) ([]store.Upload, error) {
	return f.pending, nil
}

func (f *fakePending) MarkSynced(ctx context.Context, ids []int64) error {
	f.synced = append(f.synced, ids...)
	return nil
}

func TestSyncPending(t *testing.T) {
	t.Parallel()
	blobs := newFakeBlobs()
	coll := &fakeColl{}
	q := &fakePending{pending: []store.Upload{
		{ID: 1, DataURL: photoURL("a")},
		{ID: 2, DataURL: photoURL("b")},
	}}
	gw := NewGateway(blobs, coll, q, testLogger())

	n, err := gw.SyncPending(context.Background(), q)
	if err != nil {
		t.Fatalf("SyncPending: %v", err)
	}
	if n != 2 {
		t.Fatalf("synced %d, want 2", n)
	}
	if len(q.synced) != 2 || q.synced[0] != 1 || q.synced[1] != 2 {
		t.Fatalf("marked synced = %v, want [1 2]", q.synced)
	}
	if len(coll.records) != 2 {
		t.Fatalf("records %d, want 2", len(coll.records))
	}
}

func TestSyncPendingStopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	blobs := newFakeBlobs()
	blobs.failOn["a"] = true
	q := &fakePending{pending: []store.Upload{
		{ID: 1, DataURL: photoURL("a")},
		{ID: 2, DataURL: photoURL("b")},
	}}
	gw := NewGateway(blobs, &fakeColl{}, q, testLogger())

	n, err := gw.SyncPending(context.Background(), q)
	if err == nil {
		t.Fatal("want error")
	}
	if n != 0 || len(q.synced) != 0 {
		t.Fatalf("synced %d (%v), want none", n, q.synced)
	}
}

func TestSyncPendingUnconfigured(t *testing.T) {
	t.Parallel()
	gw := NewGateway(nil, nil, &fakeLocal{}, testLogger())
	if _, err := gw.SyncPending(context.Background(), &fakePending{}); !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("err = %v, want ErrUnconfigured", err)
	}
}

func TestAggregatorNewestFirst(t *testing.T) {
	t.Parallel()
	coll := &fakeColl{records: []Record{
		{URL: "u100", Timestamp: 100, Type: RecordType},
		{URL: "u300", Timestamp: 300, Type: RecordType},
		{URL: "u200", Timestamp: 200, Type: RecordType},
	}}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snaps := NewAggregator(coll, time.Hour).Run(ctx)
	snap, ok := <-snaps
	if !ok {
		t.Fatal("stream closed before first snapshot")
	}
	if snap.Status != StatusConnected {
		t.Fatalf("status = %v, want connected", snap.Status)
	}
	want := []string{"u300", "u200", "u100"}
	if fmt.Sprint(snap.URLs) != fmt.Sprint(want) {
		t.Fatalf("urls = %v, want %v", snap.URLs, want)
	}
}

func TestAggregatorErrorEndsStream(t *testing.T) {
	t.Parallel()
	coll := &fakeColl{listErr: errors.New("backend gone")}
	snaps := NewAggregator(coll, time.Millisecond).Run(context.Background())

	snap, ok := <-snaps
	if !ok {
		t.Fatal("want an error snapshot before close")
	}
	if snap.Status != StatusError || snap.Err == nil {
		t.Fatalf("snapshot = %+v, want error status", snap)
	}
	if _, ok := <-snaps; ok {
		t.Fatal("stream should close after error snapshot")
	}
}

func TestAggregatorCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	snaps := NewAggregator(&fakeColl{}, time.Hour).Run(ctx)
	<-snaps
	cancel()
	select {
	case _, ok := <-snaps:
		if ok {
			t.Fatal("want closed stream after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("stream did not close after cancel")
	}
}

func TestAggregatorNoCollection(t *testing.T) {
	t.Parallel()
	snaps := NewAggregator(nil, 0).Run(context.Background())
	if _, ok := <-snaps; ok {
		t.Fatal("want immediately closed stream without a collection")
	}
}

func TestDataURLRoundTrip(t *testing.T) {
	t.Parallel()
	u := EncodeDataURL("image/png", []byte{0x89, 0x50})
	ct, data, err := DecodeDataURL(u)
	if err != nil {
		t.Fatalf("DecodeDataURL: %v", err)
	}
	if ct != "image/png" || string(data) != "\x89P" {
		t.Fatalf("got %q %q", ct, data)
	}
}

func TestDecodeDataURLRejectsGarbage(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "http://example.com/a.jpg", "data:image/jpeg,plain"} {
		if _, _, err := DecodeDataURL(in); err == nil {
			t.Errorf("DecodeDataURL(%q): want error", in)
		}
	}
}
