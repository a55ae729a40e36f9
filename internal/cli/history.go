// history.go implements the "stackscout history" command.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/stackscout/stackscout/internal/ui"
)

var errNoEventLog = errors.New("no event log configured (use --event-log or STACKSCOUT_EVENT_LOG)")

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show runs recorded in the event log",
		Long: `Read back the JSONL event log written by earlier detect and env runs
and print the events oldest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.events == nil {
				return errNoEventLog
			}
			events, err := a.events.ReadAll()
			if err != nil {
				return err
			}
			if limit > 0 && len(events) > limit {
				events = events[len(events)-limit:]
			}
			return a.emit(cmd.OutOrStdout(), events, func(p *ui.Printer) error {
				return p.PrintEvents(events)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the last N events")
	return cmd
}
