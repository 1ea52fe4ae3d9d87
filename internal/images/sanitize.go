package images

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Sanitize turns a display name into the canonical file-name form used both
// at upload time and at resolution time: lowercase, any run outside [a-z0-9]
// collapsed to a single hyphen, leading/trailing hyphens trimmed.
func Sanitize(name string) string {
	s := strings.ToLower(name)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
