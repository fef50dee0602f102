package utils

import (
	"strings"

	"github.com/google/uuid"
)

const slugMaxLen = 50

// Slugify converts text to a URL-safe slug, lowercased with hyphens.
func Slugify(text string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		if b.Len() >= slugMaxLen {
			break
		}
	}
	return strings.Trim(b.String(), "-")
}

// UniqueSlug appends a short random suffix to a slugified text, for content
// where the source text is not unique.
func UniqueSlug(text string) string {
	slug := Slugify(text)
	suffix := uuid.NewString()[:8]
	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}
