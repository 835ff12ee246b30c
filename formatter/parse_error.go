package formatter

type ParseErrorFormatter struct{}

func (f *ParseErrorFormatter) ResultTemplate() string {
	return `{{header .Op .Severity .MaxLineNumWidth .Filename .Line -}}
{{snippet .SnippetLines .Line .MaxLineNumWidth .Padding -}}
{{message .Message .Padding -}}
{{note "expected \"<op> <int> [<int>...]\", e.g. \"days 2 2024\""}}
`
}
