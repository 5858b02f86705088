package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type doctorCheck struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

func newDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the local store and backend configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var checks []doctorCheck

			st, err := openStore(app)
			if err != nil {
				checks = append(checks, doctorCheck{Name: "data-dir", Detail: err.Error()})
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"checks": checks}})
			}
			checks = append(checks, doctorCheck{Name: "data-dir", OK: true, Detail: st.Dir})

			if ups, err := st.All(cmd.Context()); err != nil {
				checks = append(checks, doctorCheck{Name: "local-queue", Detail: err.Error()})
			} else {
				detail := fmt.Sprintf("%d uploads", len(ups))
				if mt := st.ModTime(); !mt.IsZero() {
					detail += ", last write " + mt.UTC().Format(time.RFC3339)
				}
				checks = append(checks, doctorCheck{Name: "local-queue", OK: true, Detail: detail})
			}

			client, cfg, err := dialBackend(st)
			switch {
			case err != nil:
				checks = append(checks, doctorCheck{Name: "backend-config", Detail: err.Error()})
			case client == nil:
				// Demo mode is a supported configuration, not a failure.
				checks = append(checks, doctorCheck{Name: "backend-config", OK: true,
					Detail: "not configured (demo mode); see `recap docs backend`"})
			default:
				checks = append(checks, doctorCheck{Name: "backend-config", OK: true, Detail: cfg.Backend.URL})

				ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
				recs, lerr := client.List(ctx)
				cancel()
				if lerr != nil {
					checks = append(checks, doctorCheck{Name: "backend-reachable", Detail: lerr.Error()})
				} else {
					checks = append(checks, doctorCheck{Name: "backend-reachable", OK: true,
						Detail: fmt.Sprintf("%d records in feed", len(recs))})
				}
			}

			if cfg.UploadBaseURL != "" {
				checks = append(checks, doctorCheck{Name: "upload-base-url", OK: true, Detail: cfg.UploadBaseURL})
			}

			healthy := true
			for _, c := range checks {
				if !c.OK {
					healthy = false
				}
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"healthy": healthy,
				"checks":  checks,
			}})
		},
	}
}
