package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchOpts convertOptions

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Convert mappings and reconvert them when they change",
		Long: `Convert every mapping file found under the given paths, then keep running
and reconvert each file as soon as it is saved. Stop with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Watch(ctx, watchOpts.convertArgs(cmd, args))
		},
	}
	watchOpts.bind(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
