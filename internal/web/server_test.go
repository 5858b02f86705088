package web

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/omerbensaraf/recap/internal/memories"
)

type fakeGateway struct {
	remote  bool
	batches [][]string
	res     memories.SendResult
	err     error
}

func (f *fakeGateway) Send(ctx context.Context, dataURLs []string) (memories.SendResult, error) {
	f.batches = append(f.batches, dataURLs)
	return f.res, f.err
}

func (f *fakeGateway) Remote() bool { return f.remote }

func newTestServer(t *testing.T, gw Gateway) *Server {
	t.Helper()
	srv, err := NewServer(ServerConfig{Addr: "127.0.0.1:0", Gateway: gw, Log: log.New(io.Discard)})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func photoForm(t *testing.T, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range names {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="photos"; filename="`+name+`"`)
		h.Set("Content-Type", "image/jpeg")
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("CreatePart: %v", err)
		}
		if _, err := part.Write([]byte("jpeg-bytes-" + name)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHomeShowsDemoBanner(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		remote     bool
		wantBanner bool
	}{
		{remote: false, wantBanner: true},
		{remote: true, wantBanner: false},
	} {
		srv := newTestServer(t, &fakeGateway{remote: tc.remote})
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		hasBanner := strings.Contains(rec.Body.String(), "Demo mode")
		if hasBanner != tc.wantBanner {
			t.Errorf("remote=%v: banner shown = %v, want %v", tc.remote, hasBanner, tc.wantBanner)
		}
	}
}

func TestUploadBatch(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{remote: true, res: memories.SendResult{Remote: 2}}
	srv := newTestServer(t, gw)

	body, ct := photoForm(t, "a.jpg", "b.jpg")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(gw.batches) != 1 || len(gw.batches[0]) != 2 {
		t.Fatalf("gateway saw %v, want one batch of 2", gw.batches)
	}
	for _, u := range gw.batches[0] {
		if !strings.HasPrefix(u, "data:image/jpeg;base64,") {
			t.Errorf("data url = %q, want image/jpeg data url", u)
		}
	}
	if !strings.Contains(rec.Body.String(), "2 photos added") {
		t.Errorf("body missing upload count: %s", rec.Body.String())
	}
}

func TestUploadRejectsEmptyAndNonImage(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, &fakeGateway{remote: true})

	var empty bytes.Buffer
	mw := multipart.NewWriter(&empty)
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/upload", &empty)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty form: status = %d, want 400", rec.Code)
	}

	var buf bytes.Buffer
	mw = multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("photos", "notes.txt")
	_, _ = part.Write([]byte("plain text, not a photo"))
	_ = mw.Close()
	req = httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-image: status = %d, want 400", rec.Code)
	}
}

func TestUploadFailureKeepsBatchMessage(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{
		remote: true,
		res:    memories.SendResult{Remote: 1, Local: 1},
		err:    errors.New("1 of 2 photos failed to send"),
	}
	srv := newTestServer(t, gw)

	body, ct := photoForm(t, "a.jpg", "b.jpg")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "kept on this device") {
		t.Errorf("body missing retry message: %s", rec.Body.String())
	}
}

func TestDemoUploadReportsLocalSave(t *testing.T) {
	t.Parallel()
	gw := &fakeGateway{remote: false, res: memories.SendResult{Local: 1}}
	srv := newTestServer(t, gw)

	body, ct := photoForm(t, "a.jpg")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Saved") {
		t.Errorf("body missing local-save confirmation: %s", rec.Body.String())
	}
}

func TestQRPNG(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, &fakeGateway{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/qr.png", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("content type = %q", got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("body is not a PNG")
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t, &fakeGateway{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ok") {
		t.Fatalf("health = %d %q", rec.Code, rec.Body.String())
	}
}

func TestNewServerValidation(t *testing.T) {
	t.Parallel()
	if _, err := NewServer(ServerConfig{Gateway: &fakeGateway{}}); err == nil {
		t.Error("want error for empty addr")
	}
	if _, err := NewServer(ServerConfig{Addr: ":8787"}); err == nil {
		t.Error("want error for nil gateway")
	}
}

func TestDefaultBaseURLGetsAHost(t *testing.T) {
	t.Parallel()
	for _, addr := range []string{":8372", "0.0.0.0:8372"} {
		srv, err := NewServer(ServerConfig{Addr: addr, Gateway: &fakeGateway{}})
		if err != nil {
			t.Fatalf("NewServer(%q): %v", addr, err)
		}
		u, err := url.Parse(srv.UploadURL())
		if err != nil {
			t.Fatalf("upload url %q: %v", srv.UploadURL(), err)
		}
		if u.Hostname() == "" {
			t.Errorf("addr %q: upload url %q has no host, no phone can open it", addr, srv.UploadURL())
		}
		if u.Port() != "8372" {
			t.Errorf("addr %q: upload url %q lost the port", addr, srv.UploadURL())
		}
	}

	// An explicit host is kept as-is.
	srv, err := NewServer(ServerConfig{Addr: "192.168.1.5:8372", Gateway: &fakeGateway{}})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	if got := srv.UploadURL(); got != "http://192.168.1.5:8372" {
		t.Errorf("upload url = %q, want http://192.168.1.5:8372", got)
	}
}
