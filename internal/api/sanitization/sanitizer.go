package sanitization

import (
	"html/template"
	"regexp"
	"strings"
)

var headerBreaks = regexp.MustCompile(`[\r\n]+`)

// EscapeHTML makes user input safe to place inside an HTML email body.
// Line breaks are kept as <br> so multi-line messages stay readable.
func EscapeHTML(input string) string {
	safe := template.HTMLEscapeString(input)
	safe = strings.ReplaceAll(safe, "\r\n", "\n")
	return strings.ReplaceAll(safe, "\n", "<br>")
}

// SanitizeHeader replaces each run of CR and LF with a single space so user
// input can be used in a subject line. Other characters are left as they are.
func SanitizeHeader(input string) string {
	return headerBreaks.ReplaceAllString(input, " ")
}
