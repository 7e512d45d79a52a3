// Package textract turns uploaded abstract documents into plain text that can
// be fed to the entity classifiers.
package textract

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"mime"
	"net/http"
	"portal/pkg/serrors"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/unicode/norm"
	rpdf "rsc.io/pdf"
)

// Supported media types.
const (
	TypePDF      = "application/pdf"
	TypeHTML     = "text/html"
	TypeMarkdown = "text/markdown"
	TypePlain    = "text/plain"
)

// blockSelector lists elements that end a run of text.
const blockSelector = "address, article, aside, blockquote, br, dd, div, dl, dt, figcaption, footer, " +
	"h1, h2, h3, h4, h5, h6, header, hr, li, main, nav, ol, p, pre, section, table, td, th, tr, ul"

// MediaType resolves the media type of data from the declared content type,
// sniffing the content when none was declared.
func MediaType(contentType string, data []byte) string {
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	if mediaType == "text/x-markdown" {
		return TypeMarkdown
	}

	return mediaType
}

// Extract returns the plain text of data. Unsupported media types and
// documents that cannot be parsed yield serrors.ErrBadRequest.
func Extract(ctx context.Context, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", serrors.With(serrors.ErrBadRequest, "document is empty")
	}

	var (
		text string
		err  error
	)
	switch mediaType := MediaType(contentType, data); mediaType {
	case TypePDF:
		text, err = pdfText(ctx, data)
	case TypeHTML:
		text, err = htmlText(string(data))
	case TypeMarkdown:
		text, err = markdownText(data)
	case TypePlain:
		if !utf8.Valid(data) {
			return "", serrors.With(serrors.ErrBadRequest, "text document is not valid utf-8")
		}
		text = string(data)
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unsupported document type %q", mediaType)
	}
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		return "", serrors.Wrap(serrors.ErrBadRequest, err, "could not read document")
	}

	return Clean(text), nil
}

// Clean applies NFKC normalization and collapses whitespace.
func Clean(s string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(strings.ToValidUTF8(s, ""))), " ")
}

func pdfText(ctx context.Context, data []byte) (text string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("pdf parser panic: %v", recovered)
			text = ""
		}
	}()

	reader, err := rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("could not open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		writeFragments(&sb, page.Content().Text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// writeFragments joins the glyph runs of a page. The parser emits one
// fragment per glyph, so a line break is inserted when the baseline moves and
// a space when the horizontal gap exceeds a quarter of the font size.
func writeFragments(sb *strings.Builder, fragments []rpdf.Text) {
	for i, t := range fragments {
		if i > 0 {
			prev := fragments[i-1]
			switch {
			case math.Abs(t.Y-prev.Y) > prev.FontSize/2:
				sb.WriteString("\n")
			case t.X-(prev.X+prev.W) > prev.FontSize/4:
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t.S)
	}
}

func htmlText(html string) (string, error) {
	sanitized := bluemonday.UGCPolicy().Sanitize(html)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitized))
	if err != nil {
		return "", fmt.Errorf("could not parse html: %w", err)
	}
	doc.Find(blockSelector).AfterHtml(" ")

	return doc.Text(), nil
}

func markdownText(data []byte) (string, error) {
	var buf bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert(data, &buf); err != nil {
		return "", fmt.Errorf("could not render markdown: %w", err)
	}

	return htmlText(buf.String())
}
