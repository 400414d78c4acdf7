package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	timeout time.Duration
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "fitch [files...]",
	Short:            "fitch - a natural deduction proof search engine for propositional logic",
	TraverseChildren: true, // Prioritize subcommands
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger = zap.NewNop()
		}
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'fitch' is entered
			_ = cmd.Help()
			return
		}
		// Format: fitch [file1 file2 ...] => behaves like the prove subcommand
		proveCmd.Run(proveCmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Set a timeout for proof search")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable search trace logging")

	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(rulesCmd)
}
