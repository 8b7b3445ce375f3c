package localrag

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor extracts plain text from markdown notes by walking the
// goldmark AST. Markdown files have no page structure, so the whole file is
// treated as a single page.
type MarkdownExtractor struct {
	parser goldmark.Markdown
}

// NewMarkdownExtractor creates a new MarkdownExtractor.
func NewMarkdownExtractor() *MarkdownExtractor {
	return &MarkdownExtractor{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// ExtractPages reads the markdown file at path and returns its text content
// as a single page.
func (e *MarkdownExtractor) ExtractPages(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read markdown %s: %w", path, err)
	}

	reader := text.NewReader(content)
	doc := e.parser.Parser().Parse(reader)

	var builder strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			segment := node.Segment
			builder.Write(segment.Value(content))
			if node.SoftLineBreak() || node.HardLineBreak() {
				builder.WriteByte('\n')
			}
		case *ast.String:
			builder.Write(node.Value)
		case *ast.CodeBlock:
			writeLines(&builder, node, content)
		case *ast.FencedCodeBlock:
			writeLines(&builder, node, content)
		case *ast.Heading, *ast.Paragraph, *ast.ListItem:
			if builder.Len() > 0 && !strings.HasSuffix(builder.String(), "\n") {
				builder.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	return []string{builder.String()}, nil
}

// writeLines appends the raw source lines of a block node.
func writeLines(builder *strings.Builder, n ast.Node, content []byte) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		builder.Write(line.Value(content))
	}
}
