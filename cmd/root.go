package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/daysin/batch"
)

const defaultTimeout = 5 * time.Minute

// ErrFindings is returned when a command reported invalid input.
// The findings themselves have already been printed.
var ErrFindings = errors.New("invalid input found")

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "daysin",
	Short:         "daysin - calendar arithmetic and integer drills",
	Long: `daysin answers calendar questions (leap years, days in a month) and a few
integer drills, either one query at a time or from .days batch files.

Negative numbers must follow "--" so they are not parsed as flags:
  daysin reverse -- -123`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("error creating logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// display help when only 'daysin' is entered
		_ = cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", batch.DefaultConfigPath, "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Timeout for batch evaluation")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(calendarCmd)
	for _, c := range queryCommands() {
		rootCmd.AddCommand(c)
	}
}
