package cli

import (
	"context"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/omerbensaraf/recap/internal/memories"
	"github.com/omerbensaraf/recap/internal/tui"
)

type presentOpts struct {
	serve   bool
	addr    string
	baseURL string
}

func newPresentCmd(app *App) *cobra.Command {
	var opts presentOpts

	cmd := &cobra.Command{
		Use:   "present",
		Short: "Run the full-screen deck (same as bare `recap`)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresent(app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.serve, "serve", false, "Also run the phone upload server while presenting")
	cmd.Flags().StringVar(&opts.addr, "addr", defaultServeAddr, "Upload server listen address (with --serve)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "Externally reachable upload URL for the QR code (with --serve)")

	return cmd
}

func runPresent(app *App, opts presentOpts) error {
	st, err := openStore(app)
	if err != nil {
		return err
	}
	client, cfg, err := dialBackend(st)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var snaps <-chan memories.Snapshot
	if client != nil {
		snaps = memories.NewAggregator(client, 0).Run(ctx)
	}

	// Cross-process reload: another recap process (or the embedded server)
	// appending to the local queue shows up in the gallery without restarting.
	changes, err := st.Watch(ctx)
	if err != nil {
		changes = nil
	}

	uploadURL := ""
	if opts.serve {
		logger := log.New(os.Stderr)
		logger.SetPrefix("serve")
		srv, err := buildServer(st, client, serveConfig{
			addr:    opts.addr,
			baseURL: opts.baseURL,
			cfg:     cfg,
			log:     logger,
		})
		if err != nil {
			return err
		}
		uploadURL = srv.UploadURL()
		httpSrv := &http.Server{Addr: srv.Addr(), Handler: srv.Handler()}
		go func() {
			// The deck keeps running if the server dies; the QR simply stops
			// resolving.
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("upload server stopped", "err", err)
			}
		}()
		defer func() { _ = httpSrv.Close() }()
	} else if cfg.UploadBaseURL != "" {
		// A standalone `recap serve` may already be running; advertise it.
		uploadURL = cfg.UploadBaseURL
	}

	return tui.Run(tui.Options{
		Store:     st,
		Snapshots: snaps,
		Changes:   changes,
		UploadURL: uploadURL,
		Remote:    client != nil,
	})
}
