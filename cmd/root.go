package cmd

import (
	"codecat/pkg/aggregate"
	"codecat/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rootLogger *zap.Logger

	configFile string
	treeFile   string
	verbose    bool
)

// RootCmd is the base command. Positional arguments follow the original
// invocation shape: [output_file] [folder1 folder2 ...].
var RootCmd = &cobra.Command{
	Use:   "codecat [output_file] [folder...]",
	Short: "codecat concatenates code files from a set of folders into one file",
	Long: `codecat walks the given folders, keeps files that match its extension or
include-filename allow-lists, skips binary files, and writes the survivors
into a single output file with relative-path headers.

With no arguments it writes ` + aggregate.DefaultOutputFile + ` from a built-in folder list.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := rootLogger
		if verbose {
			dbg, err := logging.Setup(true, "codecat")
			if err == nil {
				logger = dbg
			} else {
				logger.Warn("Failed to switch to debug logging", zap.Error(err))
			}
		}

		cfg, err := aggregate.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg.ApplyArgs(args)
		cfg.TreeFile = treeFile
		cfg.Verbose = verbose

		_, err = aggregate.Run(cfg, logger)
		return err
	},
}

// Execute runs the root command with the process-wide logger.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().StringVar(&configFile, "config", "", "Path to an optional YAML config file")
	RootCmd.Flags().StringVar(&treeFile, "tree", "", "Write a directory tree of the scanned folders to this file")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
