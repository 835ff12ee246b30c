package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gnolang/daysin/internal/calendar"
	"github.com/gnolang/daysin/internal/digits"
	"github.com/gnolang/daysin/internal/minimum"
	tt "github.com/gnolang/daysin/internal/types"
)

/*
* Implement each operation as a separate struct
 */

// Operation defines the interface for every query kind the engine evaluates.
type Operation interface {
	// Eval computes the rendered value for the given arguments.
	Eval(args []int) (string, error)

	// Name returns the keyword used to select the operation.
	Name() string

	// Arity is the number of arguments expected. Negative means one or more.
	Arity() int

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

type severityHolder struct {
	severity tt.Severity
}

func (h *severityHolder) Severity() tt.Severity      { return h.severity }
func (h *severityHolder) SetSeverity(s tt.Severity)  { h.severity = s }
func newSeverityHolder(s tt.Severity) severityHolder { return severityHolder{severity: s} }

type LeapYearOp struct{ severityHolder }

func NewLeapYearOp() Operation {
	return &LeapYearOp{newSeverityHolder(tt.SeverityError)}
}

func (o *LeapYearOp) Eval(args []int) (string, error) {
	leap, err := calendar.IsLeapYear(args[0])
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(leap), nil
}

func (o *LeapYearOp) Name() string { return "leap" }
func (o *LeapYearOp) Arity() int   { return 1 }

type DaysInMonthOp struct{ severityHolder }

func NewDaysInMonthOp() Operation {
	return &DaysInMonthOp{newSeverityHolder(tt.SeverityError)}
}

func (o *DaysInMonthOp) Eval(args []int) (string, error) {
	days, err := calendar.DaysInMonth(args[0], args[1])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(days), nil
}

func (o *DaysInMonthOp) Name() string { return "days" }
func (o *DaysInMonthOp) Arity() int   { return 2 }

type DaysInYearOp struct{ severityHolder }

func NewDaysInYearOp() Operation {
	return &DaysInYearOp{newSeverityHolder(tt.SeverityError)}
}

func (o *DaysInYearOp) Eval(args []int) (string, error) {
	days, err := calendar.DaysInYear(args[0])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(days), nil
}

func (o *DaysInYearOp) Name() string { return "year" }
func (o *DaysInYearOp) Arity() int   { return 1 }

type PalindromeOp struct{ severityHolder }

func NewPalindromeOp() Operation {
	return &PalindromeOp{newSeverityHolder(tt.SeverityWarning)}
}

func (o *PalindromeOp) Eval(args []int) (string, error) {
	return strconv.FormatBool(digits.IsPalindrome(args[0])), nil
}

func (o *PalindromeOp) Name() string { return "palindrome" }
func (o *PalindromeOp) Arity() int   { return 1 }

type ReverseOp struct{ severityHolder }

func NewReverseOp() Operation {
	return &ReverseOp{newSeverityHolder(tt.SeverityWarning)}
}

func (o *ReverseOp) Eval(args []int) (string, error) {
	n, err := digits.Reverse(args[0])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func (o *ReverseOp) Name() string { return "reverse" }
func (o *ReverseOp) Arity() int   { return 1 }

type DigitCountOp struct{ severityHolder }

func NewDigitCountOp() Operation {
	return &DigitCountOp{newSeverityHolder(tt.SeverityWarning)}
}

func (o *DigitCountOp) Eval(args []int) (string, error) {
	n, err := digits.DigitCount(args[0])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func (o *DigitCountOp) Name() string { return "digits" }
func (o *DigitCountOp) Arity() int   { return 1 }

type DigitSumOp struct{ severityHolder }

func NewDigitSumOp() Operation {
	return &DigitSumOp{newSeverityHolder(tt.SeverityWarning)}
}

func (o *DigitSumOp) Eval(args []int) (string, error) {
	n, err := digits.SumFirstAndLastDigit(args[0])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func (o *DigitSumOp) Name() string { return "digitsum" }
func (o *DigitSumOp) Arity() int   { return 1 }

type WordsOp struct{ severityHolder }

func NewWordsOp() Operation {
	return &WordsOp{newSeverityHolder(tt.SeverityWarning)}
}

func (o *WordsOp) Eval(args []int) (string, error) {
	words, err := digits.ToWords(args[0])
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

func (o *WordsOp) Name() string { return "words" }
func (o *WordsOp) Arity() int   { return 1 }

type MinimumOp struct{ severityHolder }

func NewMinimumOp() Operation {
	return &MinimumOp{newSeverityHolder(tt.SeverityWarning)}
}

func (o *MinimumOp) Eval(args []int) (string, error) {
	n, err := minimum.Find(args)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func (o *MinimumOp) Name() string { return "min" }
func (o *MinimumOp) Arity() int   { return -1 }

// checkArity validates the argument count before Eval is called.
func checkArity(op Operation, args []int) error {
	switch want := op.Arity(); {
	case want < 0 && len(args) == 0:
		return fmt.Errorf("%w: %s expects at least one argument", tt.ErrInvalidInput, op.Name())
	case want >= 0 && len(args) != want:
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", tt.ErrInvalidInput, op.Name(), want, len(args))
	}
	return nil
}
