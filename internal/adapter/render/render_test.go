package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"docsearch/internal/domain"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 bytes"},
		{1023, "1023 bytes"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048575, "1024.0 KB"},
		{1048576, "1.0 MB"},
		{5 * 1048576, "5.0 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.n), "size %d", tt.n)
	}
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "text", TypeLabel("text/plain"))
	assert.Equal(t, "text", TypeLabel("application/pdf"))
	assert.Equal(t, "image", TypeLabel("image/png"))
	assert.Equal(t, "file", TypeLabel("application/msword"))
	assert.Equal(t, "file", TypeLabel(""))
}

func TestFormatLatency(t *testing.T) {
	assert.Equal(t, "0m 0s", FormatLatency(400*time.Millisecond))
	assert.Equal(t, "0m 59s", FormatLatency(59900*time.Millisecond))
	assert.Equal(t, "1m 5s", FormatLatency(65*time.Second))
}

func TestResultsHeader(t *testing.T) {
	assert.Equal(t, "No results found.", ResultsHeader(0, "x"))
	assert.Equal(t, `1 result for "ban"`, ResultsHeader(1, "ban"))
	assert.Equal(t, `2 results for "ban"`, ResultsHeader(2, "ban"))
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "a [Ban]ana", Snippet("a Banana", "ban", Brackets))
	assert.Equal(t, "a <Ban>ana", Snippet("a Banana", " ban ", func(s string) string { return "<" + s + ">" }))
	assert.Equal(t, "no match", Snippet("no match", "zzz", Brackets))
}

func TestPrinter_Results(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.Results(" ban ", []domain.MatchResult{
		{DocumentID: "1", DocumentName: "fruit.txt", DocumentType: "text/plain", Snippet: "banana bandana", MatchOffset: 7},
	})

	out := buf.String()
	assert.Contains(t, out, `1 result for "ban"`)
	assert.Contains(t, out, "--- [1] fruit.txt ---")
	assert.Contains(t, out, "text/plain  offset 7")
	assert.Contains(t, out, "[ban]ana [ban]dana")
}

func TestPrinter_NoResults(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true).Results("zzz", nil)
	assert.Equal(t, "No results found.\n", buf.String())
}

func TestPrinter_Documents(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.Documents(nil)
	assert.Equal(t, "No documents uploaded.\n", buf.String())

	buf.Reset()
	p.Documents([]domain.Document{{ID: "d1", Name: "notes.txt", MimeType: "text/plain", Size: 2048}})
	assert.Contains(t, buf.String(), "d1  notes.txt")
	assert.Contains(t, buf.String(), "2.0 KB · text/plain · text")
}

func TestPrinter_Answer(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true).Answer(domain.Answer{Text: "42", Latency: 61 * time.Second})
	assert.Equal(t, "42\nResponse time: 1m 1s\n", buf.String())
}
