package cli

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/omerbensaraf/recap/internal/memories"
	"github.com/omerbensaraf/recap/internal/store"
)

func newMemoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memories",
		Short: "Manage the crowd-sourced photo feed and the local queue",
	}
	cmd.AddCommand(newMemoriesListCmd(app))
	cmd.AddCommand(newMemoriesPendingCmd(app))
	cmd.AddCommand(newMemoriesAddCmd(app))
	cmd.AddCommand(newMemoriesSyncCmd(app))
	return cmd
}

type uploadRow struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt"`
	Synced    bool   `json:"synced"`
	Bytes     int    `json:"bytes"`
}

func uploadRows(ups []store.Upload) []uploadRow {
	rows := make([]uploadRow, 0, len(ups))
	for _, u := range ups {
		rows = append(rows, uploadRow{
			ID:        u.ID,
			CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
			Synced:    u.Synced,
			Bytes:     len(u.DataURL),
		})
	}
	return rows
}

func newMemoriesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every locally stored upload, synced or not",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ups, err := st.All(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"uploads": uploadRows(ups)}})
		},
	}
}

func newMemoriesPendingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List uploads waiting for a backend sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ups, err := st.Pending(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"pending": uploadRows(ups)}})
		},
	}
}

func newMemoriesAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <image-file>...",
		Short: "Add photos from disk (remote when configured, local queue otherwise)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			client, _, err := dialBackend(st)
			if err != nil {
				return writeErr(cmd, err)
			}

			dataURLs := make([]string, 0, len(args))
			for _, path := range args {
				u, err := readImageFile(path)
				if err != nil {
					return writeErr(cmd, err)
				}
				dataURLs = append(dataURLs, u)
			}

			gw := newGateway(st, client)
			res, err := gw.Send(cmd.Context(), dataURLs)
			if err != nil {
				// Partial results still matter: report what landed where.
				_ = writeOut(cmd, app, map[string]any{"data": map[string]any{"result": res}})
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"result": res}})
		},
	}
}

func newMemoriesSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Retry the pending local queue against the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			client, _, err := dialBackend(st)
			if err != nil {
				return writeErr(cmd, err)
			}

			gw := newGateway(st, client)
			n, err := gw.SyncPending(cmd.Context(), st)
			if err != nil {
				_ = writeOut(cmd, app, map[string]any{"data": map[string]any{"synced": n}})
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"synced": n}})
		},
	}
}

func newGateway(st store.Store, client *memories.Client) *memories.Gateway {
	logger := log.New(os.Stderr)
	logger.SetPrefix("memories")
	if client == nil {
		return memories.NewGateway(nil, nil, st, logger)
	}
	return memories.NewGateway(client, client, st, logger)
}

func readImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%s is empty", path)
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%s is not an image", path)
	}
	return memories.EncodeDataURL(contentType, data), nil
}
