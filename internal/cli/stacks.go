// stacks.go implements the "stackscout stacks" command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/stackscout/stackscout/internal/detect"
	"github.com/stackscout/stackscout/internal/ui"
)

type stackEntry struct {
	Priority int    `json:"priority" yaml:"priority"`
	Name     string `json:"name" yaml:"name"`
	Template string `json:"template" yaml:"template"`
}

func newStacksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stacks",
		Short: "List supported stacks in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stacks := detect.Stacks()
			entries := make([]stackEntry, 0, len(stacks))
			for i, s := range stacks {
				entries = append(entries, stackEntry{Priority: i + 1, Name: s.Name, Template: s.Template})
			}
			return a.emit(cmd.OutOrStdout(), entries, func(p *ui.Printer) error {
				return p.PrintStacks(stacks)
			})
		},
	}
}
