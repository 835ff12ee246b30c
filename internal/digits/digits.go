// Package digits holds small base-10 helpers: reversal, palindromes,
// digit counts and digit spelling.
package digits

import (
	"fmt"
	"math"
	"strconv"

	tt "github.com/gnolang/daysin/internal/types"
)

var (
	ErrNegative = fmt.Errorf("%w: number must not be negative", tt.ErrInvalidInput)
	ErrOverflow = fmt.Errorf("%w: reversed number does not fit in an int", tt.ErrInvalidInput)
)

var words = [10]string{
	"Zero", "One", "Two", "Three", "Four",
	"Five", "Six", "Seven", "Eight", "Nine",
}

// Reverse returns n with its decimal digits in reverse order, keeping the sign.
// Trailing zeros are dropped, so Reverse(120) is 21. ErrOverflow is returned
// when the reversed digits do not fit in an int.
func Reverse(n int) (int, error) {
	reversed := 0
	for rest := n; rest != 0; rest /= 10 {
		d := rest % 10
		// division truncates toward zero, which is the floor for positive
		// bounds and the ceiling for negative ones
		if (d >= 0 && reversed > (math.MaxInt-d)/10) || (d < 0 && reversed < (math.MinInt-d)/10) {
			return 0, fmt.Errorf("%w, got %d", ErrOverflow, n)
		}
		reversed = reversed*10 + d
	}
	return reversed, nil
}

// IsPalindrome reports whether the digits of n read the same both ways.
// The sign is ignored.
func IsPalindrome(n int) bool {
	s := magnitude(n)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// DigitCount returns how many decimal digits n has. Zero has one digit.
func DigitCount(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w, got %d", ErrNegative, n)
	}
	return len(magnitude(n)), nil
}

// SumFirstAndLastDigit adds the most and least significant digits of n.
func SumFirstAndLastDigit(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w, got %d", ErrNegative, n)
	}
	first := n
	for first >= 10 {
		first /= 10
	}
	return first + n%10, nil
}

// ToWords spells every digit of n, most significant first.
func ToWords(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNegative, n)
	}
	s := magnitude(n)
	out := make([]string, 0, len(s))
	for _, c := range s {
		out = append(out, words[c-'0'])
	}
	return out, nil
}

// magnitude renders |n| in base 10 without overflowing on the minimum int.
func magnitude(n int) string {
	if n < 0 {
		return strconv.FormatUint(uint64(-(n+1))+1, 10)
	}
	return strconv.Itoa(n)
}
