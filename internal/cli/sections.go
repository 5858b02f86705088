package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omerbensaraf/recap/internal/deck"
)

func newSectionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Inspect the deck content",
	}
	cmd.AddCommand(newSectionsListCmd(app))
	cmd.AddCommand(newSectionsShowCmd(app))
	return cmd
}

func newSectionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sections in deck order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type row struct {
				ID       string `json:"id"`
				Title    string `json:"title"`
				Subtitle string `json:"subtitle"`
			}
			sections := deck.Sections()
			rows := make([]row, 0, len(sections))
			for _, s := range sections {
				rows = append(rows, row{ID: s.ID, Title: s.Title, Subtitle: s.Subtitle})
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"sections": rows}})
		},
	}
}

func newSectionsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <section-id>",
		Short: "Show one section's full content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if deck.IndexOf(id) < 0 {
				return writeErr(cmd, fmt.Errorf("unknown section: %q (run `recap sections list`)", id))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"section": deck.Find(id)}})
		},
	}
}
