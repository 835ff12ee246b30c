package minimum

import (
	"fmt"
	"strconv"
	"strings"

	tt "github.com/gnolang/daysin/internal/types"
)

var ErrEmpty = fmt.Errorf("%w: no values given", tt.ErrInvalidInput)

// Find returns the smallest element of values.
func Find(values []int) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	smallest := values[0]
	for _, v := range values[1:] {
		if v < smallest {
			smallest = v
		}
	}
	return smallest, nil
}

// Parse converts whitespace or comma separated fields into integers.
func Parse(fields []string) ([]int, error) {
	var values []int
	for _, field := range fields {
		for _, part := range strings.FieldsFunc(field, isSeparator) {
			v, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer", tt.ErrInvalidInput, part)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}
