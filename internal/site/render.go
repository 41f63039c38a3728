// Package site renders the landing page to bytes and builds it as a static
// artifact: HTML, a Markdown rendition and the static assets.
package site

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"golang.org/x/net/html"

	"github.com/leapstack-labs/anatomy/internal/ui/features/landing/pages"
)

// RenderHTML renders the full landing document.
func RenderHTML(ctx context.Context, meta pages.Meta) ([]byte, error) {
	var buf bytes.Buffer
	if err := pages.Page(meta).Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderMarkdown renders the landing body and converts it to Markdown.
// The document head carries nothing readable, so only the body is converted.
func RenderMarkdown(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := pages.Landing().Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	md, err := newMarkdownConverter().ConvertString(buf.String())
	if err != nil {
		return nil, fmt.Errorf("failed to convert page to markdown: %w", err)
	}
	return []byte(md + "\n"), nil
}

func newMarkdownConverter() *converter.Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	conv.Register.RendererFor("dt", converter.TagTypeBlock, renderTerm, converter.PriorityEarly)
	return conv
}

// renderTerm writes a description term as a level three heading so each
// feature keeps its own section.
func renderTerm(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	var buf bytes.Buffer
	ctx.RenderChildNodes(ctx, &buf, n)

	title := strings.Join(strings.Fields(buf.String()), " ")
	if title == "" {
		return converter.RenderTryNext
	}

	_, _ = w.WriteString("\n\n### " + title + "\n\n")
	return converter.RenderSuccess
}
