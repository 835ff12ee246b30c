// Package internal provides the query evaluation engine behind daysin.
//
// Key components:
//
// Engine: evaluates queries read from .days batch files or raw sources.
// It owns one Operation per query keyword and applies per-operation
// severity overrides from the configuration file.
//
// Operation: the contract every query kind implements. Operations delegate
// to the calendar, digits and minimum packages and render their value as text.
//
// Batch files hold one query per line, "<op> <int> [<int>...]". A "#" starts
// a comment, and a "# nolint" or "# nolint:op1,op2" comment suppresses
// findings on that line. Lines that cannot be parsed are reported under the
// "parse" rule instead of aborting the file; that rule can be ignored,
// suppressed with nolint, or given a severity like any operation.
//
// Invalid input is never a panic or a sentinel value: Evaluate returns an
// error wrapping types.ErrInvalidInput, and Run turns it into a Result with
// a message and severity.
//
// Usage:
//
//	engine, err := internal.NewEngine(nil)
//	if err != nil {
//	    // handle error
//	}
//	results, err := engine.Run("queries.days")
package internal
