package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdownSanitizes(t *testing.T) {
	out := RenderMarkdown("**bold** <script>alert(1)</script>")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestExcerptStripsMarkup(t *testing.T) {
	out := Excerpt("# Heading\n\nSome **bold** text.", 150)
	assert.NotContains(t, out, "#")
	assert.NotContains(t, out, "<")
	assert.Contains(t, out, "Some bold text.")
}

func TestExcerptTruncates(t *testing.T) {
	long := strings.Repeat("words and more ", 20)
	out := Excerpt(long, 30)
	assert.LessOrEqual(t, len([]rune(out)), 30)
	assert.True(t, strings.HasSuffix(out, "…"))

	short := Excerpt("short", 30)
	assert.Equal(t, "short", short)
}
