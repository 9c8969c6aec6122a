package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-scorer/internal/fetch"
)

// Supported document formats.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatHTML = "html"
	FormatTXT  = "txt"
	FormatText = "text"
)

// Extract converts raw document bytes to cleaned plain text.
// An empty format is treated as plain text.
func Extract(data []byte, format string) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	case FormatHTML:
		text, err = fetch.HTMLText(string(data))
	case FormatTXT, FormatText, "":
		text = string(data)
	default:
		return "", &UnsupportedFormatError{Format: format}
	}
	if err != nil {
		return "", &ExtractionError{Format: format, Cause: err}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", &ExtractionError{Format: format, Message: "empty document", Cause: ErrNoText}
	}
	return cleaned, nil
}

// extractPDF turns panics raised by the PDF reader on malformed input into
// errors.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", err
		}
		// GetTextByRow swallows its own panics and returns nil rows.
		if rows == nil {
			return "", fmt.Errorf("malformed PDF: unreadable content on page %d", i)
		}
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			buf.WriteString(strings.Join(words, " "))
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer func() { _ = rc.Close() }()
		return docxParagraphs(rc)
	}
	return "", errors.New("no word/document.xml found in docx")
}

// docxParagraphs walks WordprocessingML and emits one line per paragraph,
// including paragraphs nested in table cells.
func docxParagraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var (
		out  []string
		para strings.Builder
		inT  bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inT = true
			case "tab":
				para.WriteByte('\t')
			case "br":
				para.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inT = false
			case "p":
				if line := strings.TrimSpace(para.String()); line != "" {
					out = append(out, line)
				}
				para.Reset()
			}
		case xml.CharData:
			if inT {
				para.Write(t)
			}
		}
	}
	return strings.Join(out, "\n"), nil
}
