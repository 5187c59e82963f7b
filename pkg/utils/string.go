package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFileName storage key'lerinde kullanılacak güvenli dosya adı üretir
func SanitizeFileName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	base = unsafeChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		return "image"
	}
	return strings.ToLower(base)
}
