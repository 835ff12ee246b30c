package internal

import (
	"fmt"
	"strconv"
	"strings"

	tt "github.com/gnolang/daysin/internal/types"
)

const (
	commentPrefix = "#"
	nolintPrefix  = "nolint"

	// ParseRule is the operation name attached to lines that could not be parsed.
	ParseRule = "parse"
)

// query is a parsed batch line together with its nolint scope.
type query struct {
	tt.Query
	// nolint holds the suppressed operations; an empty non-nil map suppresses all.
	nolint map[string]struct{}
	// parseErr is set when the line could not be parsed; Op is then ParseRule.
	parseErr error
}

func (q query) isNolint() bool {
	if q.nolint == nil {
		return false
	}
	if len(q.nolint) == 0 {
		return true
	}
	_, ok := q.nolint[q.Op]
	return ok
}

// parseQueries splits a batch source into queries. Lines that cannot be
// parsed come back as queries of the parse rule carrying the error, so
// nolint comments and ignores apply to them as to any other finding.
//
//	days 2 2024
//	leap 1900   # nolint
//	min 3 1 2   # nolint:min
func parseQueries(filename string, source []byte) []query {
	var queries []query
	for i, line := range strings.Split(string(source), "\n") {
		body, comment, _ := strings.Cut(line, commentPrefix)
		body = strings.TrimSpace(body)
		if body == "" {
			continue
		}

		q, err := ParseQuery(body)
		if err != nil {
			q = tt.Query{Op: ParseRule, Raw: body}
		}
		q.Filename = filename
		q.Line = i + 1

		queries = append(queries, query{
			Query:    q,
			nolint:   parseNolint(comment),
			parseErr: err,
		})
	}
	return queries
}

// ParseQuery parses a single "<op> <int>..." expression.
func ParseQuery(text string) (tt.Query, error) {
	body := strings.TrimSpace(text)
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return tt.Query{}, fmt.Errorf("%w: empty query", tt.ErrInvalidInput)
	}
	q := tt.Query{Op: strings.ToLower(fields[0]), Raw: body}
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return tt.Query{}, fmt.Errorf("%w: %q is not an integer", tt.ErrInvalidInput, f)
		}
		q.Args = append(q.Args, n)
	}
	return q, nil
}

// parseNolint interprets the comment part of a line. It returns nil when
// the comment is not a nolint directive.
func parseNolint(comment string) map[string]struct{} {
	text := strings.TrimSpace(comment)
	if !strings.HasPrefix(text, nolintPrefix) {
		return nil
	}
	rest := text[len(nolintPrefix):]

	// either "nolint" alone or "nolint:op1,op2"
	if rest == "" {
		return map[string]struct{}{}
	}
	if rest[0] != ':' {
		return nil
	}

	rules := make(map[string]struct{})
	for _, name := range strings.Split(rest[1:], ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			rules[name] = struct{}{}
		}
	}
	if len(rules) == 0 {
		return nil
	}
	return rules
}
