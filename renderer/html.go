package renderer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var gfm = goldmark.New(goldmark.WithExtensions(extension.GFM))

// MarkdownToHTML converts a markdown report into an html fragment.
func MarkdownToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := gfm.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("cannot convert markdown: %w", err)
	}
	return buf.String(), nil
}
