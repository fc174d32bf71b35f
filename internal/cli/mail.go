package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nholden/mailsort/internal/agent"
	"github.com/nholden/mailsort/internal/domain"
)

func newListCmd() *cobra.Command {
	var folderFlag string
	var unreadFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List emails",
		Long:  "List emails, optionally filtered by folder or unread status.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, closeStore, err := setupAgent()
			if err != nil {
				return err
			}
			defer closeStore()

			emails, err := a.List(cmd.Context(), agent.ListOptions{
				Folder:     domain.Folder(folderFlag),
				UnreadOnly: unreadFlag,
			})
			if err != nil {
				return fmt.Errorf("failed to list emails: %w", err)
			}

			if jsonFlag {
				return printJSON(toJSONEmails(emails))
			}

			if len(emails) == 0 {
				fmt.Println("No emails found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "UNREAD\tPRI\tID\tFROM\tSUBJECT\tFOLDER\tCATEGORY")
			for _, e := range emails {
				unread := " "
				if !e.Read {
					unread = "*"
				}
				category := string(e.Category)
				if category == "" {
					category = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					unread, e.Priority, e.ID,
					truncate(e.Sender, 30), truncate(e.Subject, 50),
					e.Folder, category,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&folderFlag, "folder", "", "filter by folder (inbox, work, personal, spam, promotions)")
	cmd.Flags().BoolVar(&unreadFlag, "unread", false, "show only unread emails")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show a grouped summary of unread emails",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, closeStore, err := setupAgent()
			if err != nil {
				return err
			}
			defer closeStore()

			s, err := a.Summary(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to summarize: %w", err)
			}

			if jsonFlag {
				return printJSON(toJSONSummary(s))
			}

			if s.Total == 0 {
				fmt.Println("No unread emails.")
				return nil
			}

			fmt.Printf("You have %d unread emails:\n", s.Total)
			for _, g := range s.Groups {
				fmt.Printf("\n%s (%d):\n", g.Folder, len(g.Emails))
				for _, e := range g.Emails {
					fmt.Printf("  From: %s\n", e.Sender)
					fmt.Printf("    Subject: %s\n", e.Subject)
					fmt.Printf("    Priority: %s\n", e.Priority)
				}
			}
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show email statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, closeStore, err := setupAgent()
			if err != nil {
				return err
			}
			defer closeStore()

			st, err := a.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to compute stats: %w", err)
			}

			if jsonFlag {
				return printJSON(toJSONStats(st))
			}

			fmt.Printf("Total emails: %d\n", st.Total)
			fmt.Printf("Unread emails: %d\n", st.Unread)
			fmt.Printf("High priority unread: %d\n", st.HighPriorityUnread)

			fmt.Println("\nBy folder:")
			for _, f := range domain.FolderOrder {
				if n := st.ByFolder[f]; n > 0 {
					fmt.Printf("  %s: %d\n", f, n)
				}
			}

			if len(st.ByCategory) > 0 {
				fmt.Println("\nBy category:")
				for _, c := range categoryOrder {
					if n := st.ByCategory[c]; n > 0 {
						fmt.Printf("  %s: %d\n", c, n)
					}
				}
			}
			return nil
		},
	}
}

// categoryOrder fixes the display order for category breakdowns.
var categoryOrder = []domain.Category{
	domain.CategoryWork,
	domain.CategoryPersonal,
	domain.CategorySpam,
	domain.CategoryPromotional,
}

// truncate shortens s to maxLen runes with an ellipsis.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
