package formatter

import (
	"fmt"
	"strings"
	"time"
)

// FormatYear renders the month lengths of a year as a small table.
func FormatYear(year int, lengths [12]int, leap bool) string {
	var b strings.Builder
	kind := "common year"
	if leap {
		kind = "leap year"
	}
	b.WriteString(ruleStyle.Sprintf("%04d", year) + " (" + kind + ")\n")

	total := 0
	for i, n := range lengths {
		total += n
		name := time.Month(i + 1).String()
		b.WriteString(lineStyle.Sprintf("%-10s", name) + valueStyle.Sprintf("%2d", n) + "\n")
	}
	b.WriteString(fmt.Sprintf("%-10s%d\n", "Total", total))
	return b.String()
}
