package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nholden/mailsort/internal/agent"
)

func newProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Classify and sort all emails",
		Long:  "Run a full pass: classify every email, assess its priority, and route it into a folder.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			a, closeStore, err := setupAgent()
			if err != nil {
				return err
			}
			defer closeStore()

			report, err := a.ProcessAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to process emails: %w", err)
			}

			if jsonFlag {
				return printJSON(toJSONProcess(report))
			}

			fmt.Printf("Classified %d emails, sorted %d into folders.\n",
				report.Result.Classified, report.Result.Sorted)
			if n := len(report.Rejected); n > 0 {
				fmt.Printf("Skipped %d malformed records.\n", n)
			}

			if cfg.UI.ShowAlerts && len(report.Alerts) > 0 {
				fmt.Printf("\nWarning: %d high priority unread emails:\n", len(report.Alerts))
				for _, e := range report.Alerts {
					fmt.Printf("  %s (from %s)\n", e.Subject, e.Sender)
				}
			}
			return nil
		},
	}
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark an email as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid email id %q", args[0])
			}

			a, closeStore, err := setupAgent()
			if err != nil {
				return err
			}
			defer closeStore()

			if err := a.MarkRead(cmd.Context(), id); err != nil {
				if errors.Is(err, agent.ErrNotFound) {
					return fmt.Errorf("email %d not found", id)
				}
				return fmt.Errorf("failed to mark read: %w", err)
			}

			if jsonFlag {
				return printJSON(jsonAction{OK: true, Action: "read", ID: id})
			}
			fmt.Printf("Email %d marked as read.\n", id)
			return nil
		},
	}
}
