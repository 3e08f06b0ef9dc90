package contact

import "strings"

// htmlEscaper replaces the five HTML-significant characters with their
// entities. strings.Replacer works in a single pass over the input, so the
// ampersands produced by the other substitutions are never re-escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML returns s with &, <, >, " and ' escaped for safe embedding in
// HTML markup. Apply exactly once per field per render: escaping already
// escaped text double-escapes it.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
