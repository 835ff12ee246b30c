package formatter

type InvalidInputFormatter struct{}

func (f *InvalidInputFormatter) ResultTemplate() string {
	return `{{header .Op .Severity .MaxLineNumWidth .Filename .Line -}}
{{snippet .SnippetLines .Line .MaxLineNumWidth .Padding -}}
{{message .Message .Padding}}
`
}
