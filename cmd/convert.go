package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/mapconv/internal/domain"
	m "github.com/mouse-blink/mapconv/internal/model"
)

const convertLongDescription = `Convert every ProGuard mapping file found under the given paths into TSRG.

Each <name>.txt is written as <name>.tsrg next to it, or into --output-dir
when set. Inputs whose contents did not change since the last run are
skipped unless --force is given. With --check nothing is written; the
command fails when any output is missing or differs from a fresh
conversion and prints the difference.`

// convertOptions holds the flags shared by convert and watch.
type convertOptions struct {
	outputDir string
	parallel  int
	force     bool
	include   []string
	exclude   []string
	check     bool
}

func (o *convertOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.outputDir, "output-dir", "o", "", "directory for converted files (default: next to each input)")
	cmd.Flags().IntVarP(&o.parallel, "parallel", "p", 1, "number of files converted in parallel")
	cmd.Flags().BoolVarP(&o.force, "force", "f", false, "convert inputs even when they are unchanged")
	cmd.Flags().StringArrayVar(&o.include, "include", nil, "only convert files whose name matches this glob (can be repeated, default *.txt)")
	cmd.Flags().StringArrayVarP(&o.exclude, "exclude", "x", nil, "skip files matching this glob (can be repeated)")
}

// convertArgs merges the loaded config with the flags set on cmd. Flags win;
// excludes from both sources apply.
func (o *convertOptions) convertArgs(cmd *cobra.Command, args []string) domain.ConvertArgs {
	c := settings.Convert
	convert := domain.ConvertArgs{
		Paths:     parsePaths(args),
		Include:   c.Include,
		Exclude:   append(append([]string(nil), c.Exclude...), o.exclude...),
		OutputDir: m.Path(c.OutputDir),
		Extension: c.Extension,
		Threads:   c.Parallel,
		Force:     c.Force,
		Check:     o.check,
	}

	flags := cmd.Flags()

	if flags.Changed("output-dir") {
		convert.OutputDir = m.Path(o.outputDir)
	}

	if flags.Changed("parallel") {
		convert.Threads = o.parallel
	}

	if flags.Changed("force") {
		convert.Force = o.force
	}

	if flags.Changed("include") {
		convert.Include = o.include
	}

	if !settings.Cache.Disabled {
		convert.Manifest = settings.Cache.Manifest
	}

	return convert
}

var convertOpts convertOptions

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert ProGuard mappings to TSRG",
		Long:  convertLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Convert(cmd.Context(), convertOpts.convertArgs(cmd, args))
		},
	}
	convertOpts.bind(cmd)
	cmd.Flags().BoolVar(&convertOpts.check, "check", false, "verify outputs are up to date without writing them")

	return cmd
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
