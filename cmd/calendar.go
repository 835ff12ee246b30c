package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gnolang/daysin/formatter"
	"github.com/gnolang/daysin/internal/calendar"
	tt "github.com/gnolang/daysin/internal/types"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar <year>",
	Short: "Print the length of every month of a year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCalendar(cmd.OutOrStdout(), args[0])
	},
}

func printCalendar(w io.Writer, rawYear string) error {
	q := tt.Query{Op: "calendar", Raw: "calendar " + rawYear}
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return reportInvalid(w, q, fmt.Errorf("%w: %q is not an integer", tt.ErrInvalidInput, rawYear))
	}

	lengths, err := calendar.MonthLengths(year)
	if err != nil {
		return reportInvalid(w, q, err)
	}
	// MonthLengths already validated the year
	leap, _ := calendar.IsLeapYear(year)

	fmt.Fprint(w, formatter.FormatYear(year, lengths, leap))
	return nil
}
