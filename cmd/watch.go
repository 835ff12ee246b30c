package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/daysin/batch"
	"github.com/gnolang/daysin/formatter"
	"github.com/gnolang/daysin/internal"
	tt "github.com/gnolang/daysin/internal/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-evaluate .days files whenever they change",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"."}
		}

		engine, err := batch.New(cfgFile)
		if err != nil {
			return err
		}
		engine.SetLogger(logger)
		applyIgnores(engine, ignoreRules, ignorePaths)

		if err := engine.StartWatching(args, watchReporter(cmd.OutOrStdout())); err != nil {
			return err
		}
		logger.Info("watching", zap.Strings("dirs", args))
		fmt.Fprintf(cmd.OutOrStdout(), "Watching %v for changes (Ctrl+C to stop)\n", args)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)

		select {
		case <-sig:
		case <-cmd.Context().Done():
		}
		return engine.StopWatching()
	},
}

func init() {
	watchCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of operations to ignore")
	watchCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
}

func watchReporter(w io.Writer) func(string, []tt.Result) {
	return func(filename string, results []tt.Result) {
		// the file may already be gone again; render without a snippet then
		sourceCode, _ := internal.ReadSourceCode(filename)
		fmt.Fprintf(w, "%s: %d queries, %d invalid\n", filename, len(results), len(batch.Failures(results)))
		fmt.Fprint(w, formatter.GenerateFormattedResult(results, sourceCode))
	}
}
