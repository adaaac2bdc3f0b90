package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Parser renders markdown content fields into HTML fragments. The parser is
// stateless so callers can reuse a single instance without locking.
type Parser struct {
	engine goldmark.Markdown
}

// NewParser constructs a parser with GFM extensions and raw HTML passthrough
// enabled, matching what section content authors expect.
func NewParser() *Parser {
	return &Parser{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// ToHTML converts markdown source into an HTML fragment.
func (p *Parser) ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := p.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown parse: %w", err)
	}
	return buf.String(), nil
}
