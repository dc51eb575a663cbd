package utils

import (
	"regexp"
	"strings"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeFileName turns a document number or party name into a download file
// name: path separators and other unsafe characters become underscores.
func SafeFileName(parts ...string) string {
	joined := strings.Join(parts, "_")
	joined = strings.ReplaceAll(joined, "/", "_")
	joined = unsafeFileChars.ReplaceAllString(joined, "_")
	return strings.Trim(joined, "_")
}
