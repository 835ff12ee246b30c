package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/daysin/batch"
	"github.com/gnolang/daysin/formatter"
	"github.com/gnolang/daysin/internal/minimum"
	tt "github.com/gnolang/daysin/internal/types"
)

type querySpec struct {
	op    string
	use   string
	short string
	args  cobra.PositionalArgs
}

var querySpecs = []querySpec{
	{"leap", "leap <year>", "Report whether a year is a leap year", cobra.ExactArgs(1)},
	{"days", "days <month> <year>", "Print the number of days in a month", cobra.ExactArgs(2)},
	{"year", "year <year>", "Print the number of days in a year", cobra.ExactArgs(1)},
	{"palindrome", "palindrome <n>", "Report whether a number reads the same backwards", cobra.ExactArgs(1)},
	{"reverse", "reverse <n>", "Reverse the digits of a number", cobra.ExactArgs(1)},
	{"digits", "digits <n>", "Count the digits of a non-negative number", cobra.ExactArgs(1)},
	{"digitsum", "digitsum <n>", "Sum the first and last digit of a non-negative number", cobra.ExactArgs(1)},
	{"words", "words <n>", "Spell every digit of a non-negative number", cobra.ExactArgs(1)},
	{"min", "min <n>...", "Print the smallest of the given numbers", cobra.MinimumNArgs(1)},
}

func queryCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(querySpecs))
	for _, spec := range querySpecs {
		op := spec.op
		cmds = append(cmds, &cobra.Command{
			Use:   spec.use,
			Short: spec.short,
			Args:  spec.args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runQuery(cmd.OutOrStdout(), logger, op, args)
			},
		})
	}
	return cmds
}

// runQuery evaluates one query typed on the command line and prints its value,
// or a formatted finding when the input is invalid.
func runQuery(w io.Writer, logger *zap.Logger, op string, rawArgs []string) error {
	engine, err := batch.New(cfgFile)
	if err != nil {
		return err
	}

	q := tt.Query{Op: op, Raw: strings.TrimSpace(op + " " + strings.Join(rawArgs, " "))}
	q.Args, err = parseArgs(op, rawArgs)
	if err != nil {
		return reportInvalid(w, q, err)
	}

	logger.Debug("evaluating query", zap.String("op", op), zap.Ints("args", q.Args))
	result, err := engine.Evaluate(q)
	if err != nil {
		if !errors.Is(err, tt.ErrInvalidInput) {
			return err
		}
		return reportInvalid(w, q, err)
	}

	fmt.Fprint(w, formatter.FormatValue(result))
	return nil
}

// parseArgs converts command line arguments to integers. Only min takes a
// list, which may also be comma separated.
func parseArgs(op string, rawArgs []string) ([]int, error) {
	if op == "min" {
		return minimum.Parse(rawArgs)
	}
	args := make([]int, 0, len(rawArgs))
	for _, raw := range rawArgs {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", tt.ErrInvalidInput, raw)
		}
		args = append(args, n)
	}
	return args, nil
}

func reportInvalid(w io.Writer, q tt.Query, err error) error {
	result := tt.Result{
		Op:       q.Op,
		Input:    q.Raw,
		Message:  err.Error(),
		Severity: tt.SeverityError,
	}
	fmt.Fprint(w, formatter.GenerateFormattedResult([]tt.Result{result}, nil))
	return ErrFindings
}
