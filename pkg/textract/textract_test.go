package textract_test

import (
	"bytes"
	"context"
	"fmt"
	"portal/pkg/serrors"
	"portal/pkg/textract"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildPDF writes a single page PDF showing line with Helvetica.
func buildPDF(line string) []byte {
	content := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", line)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R " +
			"/Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

func TestMediaType(t *testing.T) {
	require.Equal(t, textract.TypePDF, textract.MediaType("application/pdf", nil))
	require.Equal(t, textract.TypeHTML, textract.MediaType("text/html; charset=utf-8", nil))
	require.Equal(t, textract.TypeMarkdown, textract.MediaType("text/x-markdown", nil))
	require.Equal(t, textract.TypePlain, textract.MediaType("", []byte("plain words")))
	require.Equal(t, textract.TypeHTML, textract.MediaType("application/octet-stream", []byte("<html><body>x</body></html>")))
	require.Equal(t, textract.TypePDF, textract.MediaType("", buildPDF("sniffed")))
}

func TestExtract_plain(t *testing.T) {
	got, err := textract.Extract(context.Background(), "text/plain",
		[]byte("  Machine learning\n\tfor   ｆａｒｍｉｎｇ  "))
	require.NoError(t, err)
	require.Equal(t, "Machine learning for farming", got)
}

func TestExtract_html(t *testing.T) {
	doc := `<html><head><script>alert("x")</script><style>p{}</style></head>
<body><h1>Crop Monitoring</h1><p>Using <b>IoT</b> sensors</p><ul><li>Drone</li><li>Python</li></ul></body></html>`

	got, err := textract.Extract(context.Background(), "text/html", []byte(doc))
	require.NoError(t, err)
	require.Equal(t, "Crop Monitoring Using IoT sensors Drone Python", got)
	require.NotContains(t, got, "alert")
}

func TestExtract_markdown(t *testing.T) {
	doc := "# Smart Irrigation\n\nWe combine *machine learning* with ~~manual~~ sensor data.\n\n" +
		"| Method | Tool |\n|---|---|\n| Survey | Python |\n"

	got, err := textract.Extract(context.Background(), "text/markdown", []byte(doc))
	require.NoError(t, err)
	require.Contains(t, got, "Smart Irrigation We combine machine learning with manual sensor data.")
	require.Contains(t, got, "Survey")
	require.Contains(t, got, "Python")
	require.NotContains(t, got, "|")
	require.NotContains(t, got, "#")
}

func TestExtract_pdf(t *testing.T) {
	got, err := textract.Extract(context.Background(), "application/pdf", buildPDF("Blockchain for land registries"))
	require.NoError(t, err)
	require.Equal(t, "Blockchain for land registries", got)
}

func TestExtract_badRequests(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        []byte
	}{
		{name: "empty", contentType: "text/plain", data: nil},
		{name: "unsupported", contentType: "image/png", data: []byte("\x89PNG\r\n\x1a\n")},
		{name: "corrupt pdf", contentType: "application/pdf", data: []byte("%PDF-1.4 garbage")},
		{name: "invalid utf-8", contentType: "text/plain", data: []byte{0xff, 0xfe, 0xfd}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := textract.Extract(context.Background(), tt.contentType, tt.data)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestExtract_pdfHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := textract.Extract(ctx, "application/pdf", buildPDF("cancelled"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestClean(t *testing.T) {
	require.Equal(t, "a b c", textract.Clean(" a\n\nb\t c "))
	require.Equal(t, "fi", textract.Clean("ﬁ"))
	require.Equal(t, "", textract.Clean("\n\t "))
}
