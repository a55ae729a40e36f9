// env.go implements the "stackscout env" command.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/stackscout/stackscout/internal/envscan"
	"github.com/stackscout/stackscout/internal/log"
	"github.com/stackscout/stackscout/internal/ui"
)

func newEnvCmd(a *app) *cobra.Command {
	var (
		exclude   []string
		noSecrets bool
	)

	cmd := &cobra.Command{
		Use:   "env [PATH]",
		Short: "Find committed env files and documented variables",
		Long: `Walk PATH (default: the current directory) for env files that should not
be committed (*.env, *.env.<suffix>) and for example env files
(*.env.example, *.env.<name>.example), and list the variables the examples
document.

Exclusion patterns use .dockerignore syntax and are added to env_scan.exclude
from the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			start := time.Now()

			patterns := append(append([]string{}, a.cfg.EnvScan.Exclude...), exclude...)
			rep, err := envscan.Scan(root,
				envscan.WithExclude(patterns...),
				envscan.WithSecretFindings(a.cfg.EnvScan.FlagSecrets && !noSecrets),
			)
			if err != nil {
				return err
			}

			a.record(log.LogEvent{
				Event:      log.EventEnvScanComplete,
				Root:       root,
				Danger:     len(rep.Danger),
				Examples:   len(rep.Example),
				Suspicious: len(rep.Suspicious),
				DurationMs: time.Since(start).Milliseconds(),
			})

			return a.emit(cmd.OutOrStdout(), rep, func(p *ui.Printer) error {
				return p.PrintEnvReport(root, rep)
			})
		},
	}

	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Additional path patterns to skip")
	cmd.Flags().BoolVar(&noSecrets, "no-secrets", false, "Do not inspect example values for credentials")
	return cmd
}
