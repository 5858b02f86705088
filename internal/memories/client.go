package memories

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"

	"github.com/omerbensaraf/recap/internal/store"
)

// ErrUnconfigured is the typed availability result for a missing backend:
// callers branch into demo mode on it instead of treating it as a failure.
var ErrUnconfigured = errors.New("memories: backend not configured")

// BlobStore persists image bytes and resolves their public locations.
type BlobStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	PublicURL(path string) string
}

// Collection is the shared document collection holding one Record per photo.
// List returns records in storage order; ordering is the caller's job.
type Collection interface {
	Append(ctx context.Context, rec Record) error
	List(ctx context.Context) ([]Record, error)
}

// Client is the constructed, injected backend handle (storage bucket +
// document table on the same service). It implements BlobStore and
// Collection.
type Client struct {
	sb     *supabase.Client
	bucket string
	table  string
}

// Dial validates the config and constructs a Client. An incomplete config
// yields ErrUnconfigured; any other error means the backend is configured
// but unusable.
func Dial(cfg store.BackendConfig) (*Client, error) {
	if !cfg.Configured() {
		return nil, ErrUnconfigured
	}
	sb, err := supabase.NewClient(cfg.URL, cfg.APIKey, nil)
	if err != nil {
		return nil, fmt.Errorf("memories: create backend client: %w", err)
	}
	return &Client{sb: sb, bucket: cfg.Bucket, table: cfg.Table}, nil
}

// Upload stores image bytes under path in the bucket. The underlying SDK
// call carries no context; the Gateway bounds it by racing a timeout, so a
// timed-out upload may still complete remotely (accepted inconsistency).
func (c *Client) Upload(_ context.Context, path string, data []byte, contentType string) error {
	_, err := c.sb.Storage.UploadFile(c.bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	return nil
}

// PublicURL resolves the public location of an uploaded blob.
func (c *Client) PublicURL(path string) string {
	return c.sb.Storage.GetPublicUrl(c.bucket, path).SignedURL
}

// Append inserts one record into the shared collection.
func (c *Client) Append(_ context.Context, rec Record) error {
	_, _, err := c.sb.From(c.table).Insert(rec, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

// List fetches every record. No server-side ordering is requested so the
// table needs no index; SortNewestFirst runs client-side.
func (c *Client) List(_ context.Context) ([]Record, error) {
	var records []Record
	_, err := c.sb.From(c.table).Select("*", "", false).ExecuteTo(&records)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}
