package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/omerbensaraf/recap/internal/memories"
)

//go:embed templates/*.html static/*.css
var assetsFS embed.FS

// Per-request cap across all photos in one multipart batch.
const maxUploadBytes = 40 << 20

// Gateway persists upload batches. Satisfied by *memories.Gateway.
type Gateway interface {
	Send(ctx context.Context, dataURLs []string) (memories.SendResult, error)
	Remote() bool
}

type ServerConfig struct {
	Addr string

	// BaseURL is the externally reachable address phones should open, used
	// for the QR code. When empty it is derived from Addr; a host-less
	// listen address like ":8372" gets the machine's outbound interface IP
	// so the QR target is reachable from a phone.
	BaseURL string

	Gateway Gateway
	Log     *log.Logger
}

type Server struct {
	cfg  ServerConfig
	tmpl *template.Template
}

func NewServer(cfg ServerConfig) (*Server, error) {
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.Addr == "" {
		return nil, errors.New("web: addr is empty")
	}
	if cfg.Gateway == nil {
		return nil, errors.New("web: gateway is nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL(cfg.Addr)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("web: invalid base url: %w", err)
	}
	if cfg.Log == nil {
		cfg.Log = log.New(io.Discard)
	}

	tmpl, err := template.ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, tmpl: tmpl}, nil
}

// defaultBaseURL turns a listen address into an address a phone can open.
// ":8372" and wildcard hosts bind every interface but name none, so the
// outbound interface IP stands in; loopback is the last resort, and the
// intro screen warns about it.
func defaultBaseURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = outboundIP()
		if host == "" {
			host = "localhost"
		}
	}
	return "http://" + net.JoinHostPort(host, port)
}

// outboundIP is the local address the default route would use. The dial is
// connectionless; no packet leaves the machine.
func outboundIP() string {
	conn, err := net.Dial("udp4", "192.0.2.1:80")
	if err != nil {
		return ""
	}
	defer conn.Close()
	if a, ok := conn.LocalAddr().(*net.UDPAddr); ok && !a.IP.IsUnspecified() {
		return a.IP.String()
	}
	return ""
}

func (s *Server) Addr() string { return s.cfg.Addr }

// UploadURL is the address the QR code points at.
func (s *Server) UploadURL() string { return s.cfg.BaseURL }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /qr.png", s.handleQR)
	mux.HandleFunc("GET /static/app.css", s.handleAppCSS)
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("POST /upload", s.handleUpload)
	return mux
}

type pageVM struct {
	Demo     bool
	Uploaded int
	Queued   int
	Failed   bool
	ErrorMsg string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, "upload.html", pageVM{Demo: !s.cfg.Gateway.Remote()})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "upload too large or malformed", http.StatusBadRequest)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		http.Error(w, "no photos in request", http.StatusBadRequest)
		return
	}

	dataURLs := make([]string, 0, len(files))
	for _, fh := range files {
		u, err := readPhoto(fh)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		dataURLs = append(dataURLs, u)
	}

	res, err := s.cfg.Gateway.Send(r.Context(), dataURLs)
	vm := pageVM{
		Demo:     !s.cfg.Gateway.Remote(),
		Uploaded: res.Remote,
		Queued:   res.Local,
	}
	if err != nil {
		s.cfg.Log.Warn("upload batch failed", "count", len(dataURLs), "err", err)
		vm.Failed = true
		vm.ErrorMsg = "Some photos could not be sent. They are kept on this device and will retry on the next sync."
		if res.Remote+res.Local == 0 {
			vm.ErrorMsg = "Your photos could not be saved. Please try again."
		}
		w.WriteHeader(http.StatusBadGateway)
		s.render(w, "result.html", vm)
		return
	}
	s.cfg.Log.Info("upload batch stored", "remote", res.Remote, "local", res.Local)
	s.render(w, "result.html", vm)
}

// readPhoto loads one multipart part and returns it as an image data URL.
func readPhoto(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open %q: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", fh.Filename, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%q is empty", fh.Filename)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%q is not an image", fh.Filename)
	}
	return memories.EncodeDataURL(contentType, data), nil
}

func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	png, err := qrcode.Encode(s.cfg.BaseURL, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (s *Server) handleAppCSS(w http.ResponseWriter, r *http.Request) {
	b, err := assetsFS.ReadFile("static/app.css")
	if err != nil || len(b) == 0 {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) render(w http.ResponseWriter, name string, vm pageVM) {
	if err := s.tmpl.ExecuteTemplate(w, name, vm); err != nil {
		s.cfg.Log.Error("render template", "name", name, "err", err)
	}
}
