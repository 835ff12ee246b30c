package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/gnolang/daysin/internal"
	tt "github.com/gnolang/daysin/internal/types"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	valueStyle   = color.New(color.FgGreen, color.Bold)
	noteStyle    = color.New(color.FgGreen, color.Bold)
)

// resultFormatter is the interface that wraps the ResultTemplate method.
// Implementations are responsible for formatting specific kinds of findings.
type resultFormatter interface {
	ResultTemplate() string
}

// getResultFormatter returns the formatter matching the result's operation.
func getResultFormatter(op string) resultFormatter {
	switch op {
	case internal.ParseRule:
		return &ParseErrorFormatter{}
	default:
		return &InvalidInputFormatter{}
	}
}

// GenerateFormattedResult renders the findings among results.
// Results without a finding are skipped; use FormatValues for those.
func GenerateFormattedResult(results []tt.Result, snippet *internal.SourceCode) string {
	var builder strings.Builder
	for _, result := range results {
		if !result.Failed() {
			continue
		}
		formatter := getResultFormatter(result.Op)
		builder.WriteString(buildResult(result, snippet, formatter))
	}
	return builder.String()
}

// FormatValues renders one "input = value" line per successful result.
func FormatValues(results []tt.Result) string {
	var builder strings.Builder
	for _, result := range results {
		if result.Failed() || result.Value == "" {
			continue
		}
		builder.WriteString(FormatValue(result))
	}
	return builder.String()
}

// FormatValue renders a single successful result.
func FormatValue(result tt.Result) string {
	input := result.Input
	if input == "" {
		input = result.Op
	}
	return ruleStyle.Sprint(input) + " = " + valueStyle.Sprintf("%s\n", result.Value)
}

/***** Result Formatter Builder *****/

type ResultData struct {
	Severity        string
	Op              string
	Filename        string
	Padding         string
	Line            int
	MaxLineNumWidth int
	Message         string
	SnippetLines    []string
}

func buildResult(result tt.Result, snippet *internal.SourceCode, formatter resultFormatter) string {
	maxLineNumWidth := calculateMaxLineNumWidth(result.Line)
	padding := strings.Repeat(" ", maxLineNumWidth+1)

	var lines []string
	if snippet != nil {
		lines = snippet.Lines
	}

	data := ResultData{
		Severity:        result.Severity.String(),
		Op:              result.Op,
		Filename:        result.Filename,
		Line:            result.Line,
		Message:         result.Message,
		MaxLineNumWidth: maxLineNumWidth,
		Padding:         padding,
		SnippetLines:    lines,
	}

	funcMap := template.FuncMap{
		"header":  header,
		"snippet": codeSnippet,
		"message": message,
		"note":    note,
	}

	tmpl := template.Must(template.New("result").Funcs(funcMap).Parse(formatter.ResultTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting result: %v", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func header(op string, severity string, maxLineNumWidth int, filename string, line int) string {
	var endString string
	switch severity {
	case "error":
		endString = errorStyle.Sprintf("error: ")
	case "warning":
		endString = warningStyle.Sprintf("warning: ")
	}

	endString += ruleStyle.Sprintf("%s\n", op)

	if filename == "" {
		return endString
	}
	padding := strings.Repeat(" ", maxLineNumWidth)
	endString += lineStyle.Sprintf("%s--> ", padding)
	endString += fileStyle.Sprintf("%s:%d\n", filename, line)

	return endString
}

func codeSnippet(snippetLines []string, line int, maxLineNumWidth int, padding string) string {
	if line < 1 || line > len(snippetLines) {
		return ""
	}
	endString := lineStyle.Sprintf("%s|\n", padding)
	lineNum := fmt.Sprintf("%*d", maxLineNumWidth, line)
	endString += lineStyle.Sprintf("%s | ", lineNum) + snippetLines[line-1] + "\n"
	return endString
}

func message(msg string, padding string) string {
	return lineStyle.Sprintf("%s= ", padding) + messageStyle.Sprintf("%s\n", msg)
}

func note(text string) string {
	return noteStyle.Sprint("note: ") + lineStyle.Sprintf("%s\n", text)
}

func calculateMaxLineNumWidth(line int) int {
	return len(fmt.Sprintf("%d", line))
}
