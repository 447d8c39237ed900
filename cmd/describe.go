package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/mapconv/internal/model"
)

// describeCmd represents the describe command.
var describeCmd = newDescribeCmd()

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <mapping>",
		Short: "Show class, field and method counts of a mapping file",
		Long: `Parse one mapping file without writing anything and report how many
classes, fields and methods it declares, how many distinct types it
references from outside the mapping, and which class headers repeat.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Describe(cmd.Context(), m.Path(args[0]))
		},
	}
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
