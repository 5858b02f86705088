package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/omerbensaraf/recap/internal/memories"
	"github.com/omerbensaraf/recap/internal/store"
	"github.com/omerbensaraf/recap/internal/web"
)

const defaultServeAddr = ":8372"

func newServeCmd(app *App) *cobra.Command {
	var addr string
	var baseURL string
	var noQR bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the phone upload server (QR target)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return err
			}
			client, cfg, err := dialBackend(st)
			if err != nil {
				return err
			}

			logger := log.New(os.Stderr)
			logger.SetPrefix("serve")

			srv, err := buildServer(st, client, serveConfig{
				addr:    addr,
				baseURL: baseURL,
				cfg:     cfg,
				log:     logger,
			})
			if err != nil {
				return err
			}

			if client == nil {
				logger.Warn("no backend configured, running in demo mode (photos stay on this machine)")
			}
			logger.Info("upload server listening", "addr", srv.Addr(), "url", srv.UploadURL())

			if !noQR {
				if q, err := qrcode.New(srv.UploadURL(), qrcode.Medium); err == nil {
					fmt.Fprintln(cmd.OutOrStdout(), q.ToSmallString(false))
					fmt.Fprintln(cmd.OutOrStdout(), "scan to open", srv.UploadURL())
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			httpSrv := &http.Server{Addr: srv.Addr(), Handler: srv.Handler()}
			errCh := make(chan error, 1)
			go func() { errCh <- httpSrv.ListenAndServe() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "Listen address")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Externally reachable base URL for the QR code (default: config uploadBaseUrl, then derived from the listen address)")
	cmd.Flags().BoolVar(&noQR, "no-qr", false, "Skip printing the QR code")

	return cmd
}

type serveConfig struct {
	addr    string
	baseURL string
	cfg     store.Config
	log     *log.Logger
}

// buildServer assembles the gateway and upload server shared by `recap serve`
// and `recap present --serve`.
func buildServer(st store.Store, client *memories.Client, sc serveConfig) (*web.Server, error) {
	var gw *memories.Gateway
	if client != nil {
		gw = memories.NewGateway(client, client, st, sc.log)
	} else {
		gw = memories.NewGateway(nil, nil, st, sc.log)
	}

	baseURL := strings.TrimSpace(sc.baseURL)
	if baseURL == "" {
		baseURL = strings.TrimSpace(sc.cfg.UploadBaseURL)
	}
	return web.NewServer(web.ServerConfig{
		Addr:    sc.addr,
		BaseURL: baseURL,
		Gateway: gw,
		Log:     sc.log,
	})
}
