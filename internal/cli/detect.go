// detect.go implements the "stackscout detect" command.
package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stackscout/stackscout/internal/detect"
	"github.com/stackscout/stackscout/internal/log"
	"github.com/stackscout/stackscout/internal/ui"
)

// detectOutput is the machine-readable form of a detect run.
type detectOutput struct {
	detect.Result `yaml:",inline"`
	Evidence      []detect.Evidence `json:"evidence,omitempty" yaml:"evidence,omitempty"`
}

func newDetectCmd(a *app) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "detect [PATH]",
		Short: "Resolve the build stack of a repository",
		Long: `Evaluate the stack catalog in priority order against PATH (default: the
current directory) and print the first matching stack with its template key
and command context. Repositories with no recognizable stack resolve to
"unknown".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			start := time.Now()
			a.record(log.LogEvent{Event: log.EventDetectStarted, Root: root})

			resolver := detect.NewResolver(detect.WithLogger(a.logger))
			res, err := resolver.Resolve(root)
			if err != nil {
				a.record(log.LogEvent{Event: log.EventStackResolved, Root: root, Error: err.Error()})
				return err
			}

			out := detectOutput{Result: res}
			if explain {
				if out.Evidence, err = resolver.Explain(root); err != nil {
					return err
				}
			}

			a.logger.Info("stack resolved", zap.String("root", root), zap.String("stack", res.Stack))
			a.record(log.LogEvent{
				Event:      log.EventStackResolved,
				Root:       root,
				Stack:      res.Stack,
				Template:   res.Template,
				DurationMs: time.Since(start).Milliseconds(),
			})

			return a.emit(cmd.OutOrStdout(), out, func(p *ui.Printer) error {
				return p.PrintResult(out.Result, out.Evidence)
			})
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Also report which other stacks' evidence is present")
	return cmd
}
