package ingestion

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Experience</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Built </w:t></w:r><w:r><w:t>payment APIs</w:t></w:r></w:p>
    <w:p></w:p>
    <w:tbl><w:tr><w:tc><w:p><w:r><w:t>Go</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
  </w:body>
</w:document>`

func TestExtract_DOCX(t *testing.T) {
	text, err := Extract(buildDocx(t, sampleDocumentXML), FormatDOCX)
	require.NoError(t, err)
	assert.Equal(t, "Experience\nBuilt payment APIs\nGo", text)
}

func TestExtract_DOCXWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Extract(buf.Bytes(), FormatDOCX)
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, FormatDOCX, extractErr.Format)
}

func TestExtract_HTML(t *testing.T) {
	html := `<html><body><nav>Menu</nav><main><h1>Jane Doe</h1><p>Go developer</p></main></body></html>`
	text, err := Extract([]byte(html), FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Go developer")
	assert.NotContains(t, text, "Menu")
}

func TestExtract_PlainText(t *testing.T) {
	for _, format := range []string{FormatTXT, FormatText, "", "TXT"} {
		text, err := Extract([]byte("  Summary\r\nBackend engineer  "), format)
		require.NoError(t, err)
		assert.Equal(t, "Summary\nBackend engineer", text)
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	_, err := Extract([]byte("data"), "rtf")
	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "unsupported file type: rtf", err.Error())
}

func TestExtract_InvalidPDF(t *testing.T) {
	_, err := Extract([]byte("not a pdf"), FormatPDF)
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, err.Error(), "pdf extraction error")
}

func TestExtract_EmptyDocument(t *testing.T) {
	_, err := Extract([]byte("   \n\n "), FormatTXT)
	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Contains(t, err.Error(), "no text")
	assert.ErrorIs(t, err, ErrNoText)
}

// buildPDF returns a structurally complete PDF whose xref entry for the
// catalog points at rootOffset.
func buildPDF(rootOffset int) []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	pagesOffset := b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [] /Count 0 >>\nendobj\n")
	xrefOffset := b.Len()
	fmt.Fprintf(&b, "xref\n0 3\n0000000000 65535 f \n%010d 00000 n \n%010d 00000 n \n", rootOffset, pagesOffset)
	fmt.Fprintf(&b, "trailer\n<< /Size 3 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)
	return b.Bytes()
}

func TestExtract_MalformedPDFReturnsError(t *testing.T) {
	for _, offset := range []int{3, 20} {
		t.Run(fmt.Sprintf("catalog offset %d", offset), func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = Extract(buildPDF(offset), FormatPDF)
			})

			var extractErr *ExtractionError
			require.ErrorAs(t, err, &extractErr)
			assert.Equal(t, FormatPDF, extractErr.Format)
			assert.Contains(t, err.Error(), "malformed PDF")
			assert.NotErrorIs(t, err, ErrNoText)
		})
	}
}
