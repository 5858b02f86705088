package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/omerbensaraf/recap/internal/format"
	"github.com/omerbensaraf/recap/internal/memories"
	"github.com/omerbensaraf/recap/internal/store"
)

type App struct {
	DataDir    string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "recap",
		Short:        "Animated year-in-review deck + crowd-sourced live photo gallery",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Present the deck full screen
  recap

  # Present and accept photo uploads from phones
  recap present --serve

  # Run only the upload server
  recap serve --addr :8372

  # Scriptable commands
  recap sections list
  recap memories pending
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive deck.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runPresent(app, presentOpts{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.DataDir, "data-dir", envOr("RECAP_DATA_DIR", ""), "Path to the data dir (default: ~/.recap)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("RECAP_FORMAT", "json"), "Output format (json)")

	cmd.AddCommand(newPresentCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newSectionsCmd(app))
	cmd.AddCommand(newMemoriesCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// openStore resolves the data dir and makes sure it exists.
func openStore(app *App) (store.Store, error) {
	dir := strings.TrimSpace(app.DataDir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.DataDir = dir
	}
	s := store.Store{Dir: dir}
	if err := s.Ensure(); err != nil {
		return store.Store{}, err
	}
	return s, nil
}

// dialBackend loads config and connects the backend client. A missing or
// partial backend config is not an error: the client comes back nil and the
// caller runs in demo mode.
func dialBackend(s store.Store) (*memories.Client, store.Config, error) {
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, store.Config{}, err
	}
	client, err := memories.Dial(cfg.Backend)
	if errors.Is(err, memories.ErrUnconfigured) {
		return nil, cfg, nil
	}
	if err != nil {
		return nil, cfg, err
	}
	return client, cfg, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
