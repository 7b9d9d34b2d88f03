package newsdesk

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms stored news or project HTML into Markdown,
	// e.g. for the static site export.
	Convert(html string) (string, error)
}
