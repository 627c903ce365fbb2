package cmd

import (
	"cppcat/pkg/concat"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

// rootCmd is the base command. The whole tool is a single operation, so the
// root command runs it directly from positional arguments.
var rootCmd = &cobra.Command{
	Use:   "cppcat <directory> [output_file]",
	Short: "cppcat concatenates C++ sources into a single snapshot file",
	Long: `cppcat walks a directory tree, collects every .cpp and .h file while
skipping build directories, and concatenates their contents into one output
file, each file prefixed with its path relative to the scanned directory.
Designed for producing single-file codebase snapshots for documentation or
language model prompts.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		arguments := concat.Arguments{
			Directory: args[0],
			Output:    concat.DefaultOutputFile,
		}
		if len(args) == 2 {
			arguments.Output = args[1]
		}

		return concat.Run(arguments, logger)
	},
}

// Execute runs the root command with the provided logger and returns any
// execution error to the caller.
func Execute(l *zap.Logger) error {
	logger = l
	return rootCmd.Execute()
}
