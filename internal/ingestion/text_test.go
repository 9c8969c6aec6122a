package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", "   \n\t\n  ", ""},
		{"line endings", "Summary\r\nEngineer\rGo", "Summary\nEngineer\nGo"},
		{"inner spaces", "Go    and\t\tPython", "Go and Python"},
		{"blank line runs", "Experience\n\n\n\n\nEducation", "Experience\n\nEducation"},
		{"page break", "Skills: Go\fAwards", "Skills: Go\n\nAwards"},
		{"non-breaking spaces", "Senior\u00a0Go\u00a0\u00a0Engineer", "Senior Go Engineer"},
		{"invisible runes", "\ufeffSoft\u00adware En\u200bgineer", "Software Engineer"},
		{"control characters", "Go\x00 dev\x07eloper", "Go developer"},
		{"indented bullets kept", "Experience\n   - Built APIs", "Experience\n   - Built APIs"},
		{"unicode kept", "Zürich 🚀 café", "Zürich 🚀 café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	once := CleanText("  Jane Doe \r\n\r\n\r\n  - Go   developer\f")
	assert.Equal(t, once, CleanText(once))
}

func TestCleanText_ExtractedPDFFixture(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "extracted_pdf.txt"))
	require.NoError(t, err)

	want := "JANE DOE\n" +
		"jane.doe@example.com | +1 555 123 4567\n" +
		"\n" +
		"EXPERIENCE\n" +
		"AcmeCorp 2019 – 2024\n" +
		"   • Built paymentAPIs in Go\n" +
		"\n" +
		"EDUCATION\n" +
		"BSc Computer Science 2015"
	assert.Equal(t, want, CleanText(string(content)))
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("same content")
	assert.Len(t, a, 64)
	assert.Equal(t, a, Fingerprint("same content"))
	assert.NotEqual(t, a, Fingerprint("other content"))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatPDF, FormatFromPath("cv.PDF"))
	assert.Equal(t, FormatDOCX, FormatFromPath("/tmp/cv.docx"))
	assert.Equal(t, FormatHTML, FormatFromPath("cv.htm"))
	assert.Equal(t, FormatText, FormatFromPath("notes.md"))
	assert.Equal(t, FormatText, FormatFromPath("README"))
}

func TestReadFile_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Skills\r\nGo,   Python\n\n\n\nRust"), 0o600))

	text, err := ReadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Skills\nGo, Python\n\nRust", text)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile("/nonexistent/cv.txt", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
