package junit

import "strings"

var xmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"&", "&amp;",
	"'", "&apos;",
	`"`, "&quot;",
)

// Escape replaces the five XML metacharacters with their predefined entities.
// Every character is replaced at most once, so an already escaped entity gets its
// ampersand escaped again rather than being left untouched.
func Escape(s string) string {
	return xmlEscaper.Replace(s)
}
