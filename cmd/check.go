package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/daysin/batch"
	"github.com/gnolang/daysin/formatter"
	"github.com/gnolang/daysin/internal"
	tt "github.com/gnolang/daysin/internal/types"
)

var (
	ignoreRules     string
	ignorePaths     string
	checkJSONOutput bool
	outPath         string
	showValues      bool
	noProgress      bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Evaluate batch files of queries and report invalid input",
	Long: `Evaluates every query in the given .days files or directories.
Each line holds one query, for example:

  days 2 2024
  leap 1900     # nolint:leap
  min 4 -2 9`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		engine, err := batch.New(cfgFile)
		if err != nil {
			logger.Error("Failed to initialize engine", zap.Error(err))
			return err
		}
		engine.SetLogger(logger)

		applyIgnores(engine, ignoreRules, ignorePaths)

		opts := batch.Options{}
		if !noProgress && !checkJSONOutput {
			opts.Progress = cmd.ErrOrStderr()
		}
		return runCheck(ctx, logger, cmd.OutOrStdout(), engine, args, opts)
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of operations to ignore")
	checkCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output results in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	checkCmd.Flags().BoolVar(&showValues, "values", false, "Also print the value of every valid query")
	checkCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
}

func applyIgnores(engine batch.Engine, rules, paths string) {
	for _, rule := range splitList(rules) {
		engine.IgnoreRule(rule)
	}
	for _, path := range splitList(paths) {
		engine.IgnorePath(path)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func runCheck(ctx context.Context, logger *zap.Logger, w io.Writer, engine batch.Engine, paths []string, opts batch.Options) error {
	results, err := batch.ProcessFiles(ctx, logger, engine, paths, batch.ProcessFile, opts)
	if err != nil {
		return err
	}

	if err := printResults(logger, w, results, checkJSONOutput, outPath, showValues); err != nil {
		return err
	}

	if len(batch.Failures(results)) > 0 {
		return ErrFindings
	}
	return nil
}

func printResults(logger *zap.Logger, w io.Writer, results []tt.Result, isJSON bool, jsonOutput string, values bool) error {
	resultsByFile := make(map[string][]tt.Result)
	for _, result := range results {
		resultsByFile[result.Filename] = append(resultsByFile[result.Filename], result)
	}

	if isJSON {
		d, err := json.Marshal(resultsByFile)
		if err != nil {
			return fmt.Errorf("error marshalling results to JSON: %w", err)
		}
		if jsonOutput == "" {
			fmt.Fprintln(w, string(d))
			return nil
		}
		return os.WriteFile(jsonOutput, d, 0o644)
	}

	sortedFiles := make([]string, 0, len(resultsByFile))
	for filename := range resultsByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	for _, filename := range sortedFiles {
		fileResults := resultsByFile[filename]
		if values {
			fmt.Fprint(w, formatter.FormatValues(fileResults))
		}
		sourceCode, err := internal.ReadSourceCode(filename)
		if err != nil {
			logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
		}
		fmt.Fprint(w, formatter.GenerateFormattedResult(fileResults, sourceCode))
	}
	return nil
}
