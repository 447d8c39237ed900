// Package cmd provides the root command and CLI setup for mapconv.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/mapconv/internal/adapter"
	"github.com/mouse-blink/mapconv/internal/config"
	"github.com/mouse-blink/mapconv/internal/controller"
	"github.com/mouse-blink/mapconv/internal/domain"
	"github.com/mouse-blink/mapconv/internal/logging"
	m "github.com/mouse-blink/mapconv/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var fingerprinter adapter.Fingerprinter
var differ adapter.TextDiffer
var watcher adapter.Watcher
var logger *logrus.Logger
var settings *config.Config
var workflow domain.Workflow
var ui controller.UI

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
	fingerprinter = adapter.NewHighwayFingerprinter()
	differ = adapter.NewLineDiffer()
	watcher = adapter.NewFSNotifyWatcher()
	settings = config.Default()
	logger = logrus.StandardLogger()
}

var configFlag string
var logLevelFlag string
var noTTYFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapconv",
		Short: "Convert ProGuard mappings to TSRG",
		Long: `Mapconv converts ProGuard deobfuscation mappings (as published for
Minecraft releases) into the TSRG format read by bytecode remapping tools.

Inputs may be files, directories, or directories with a /... suffix to
search them recursively:
  - client.txt         convert one file
  - ./mappings         convert every *.txt in mappings
  - ./mappings/...     convert every *.txt below mappings`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultFile, "path to the mapconv TOML config")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&noTTYFlag, "no-tty", false, "disable the interactive progress display")

	return cmd
}

// setup loads the config, configures logging and wires the workflow unless
// one was already provided.
func setup(cmd *cobra.Command) error {
	loaded, err := config.LoadOrDefault(configFlag, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		loaded.Log.Level = logLevelFlag
	}

	configured, err := logging.New(loaded.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", loaded.Log.Level, err)
	}

	settings = loaded
	logger = configured

	if workflow == nil {
		ui = controller.NewUI(cmd, !noTTYFlag && controller.IsTTY(cmd.OutOrStdout()))
		workflow = domain.NewWorkflow(fsAdapter, reportStore, fingerprinter, differ, watcher, ui, logger)
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
