package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/domain"
	"docsearch/internal/usecase"
)

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Title lipgloss.Style
	Muted lipgloss.Style
	Match lipgloss.Style
	Warn  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Match: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Printer writes human-readable output. In plain mode no styling is applied
// and matched text is wrapped in brackets.
type Printer struct {
	w      io.Writer
	styles Styles
	plain  bool
}

func NewPrinter(w io.Writer, plain bool) *Printer {
	return &Printer{w: w, styles: DefaultStyles(), plain: plain}
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

// Marker wraps matched text for display.
type Marker func(string) string

// Brackets marks a match as [text].
func Brackets(s string) string { return "[" + s + "]" }

// Styled marks a match by rendering it with st.
func Styled(st lipgloss.Style) Marker { return func(s string) string { return st.Render(s) } }

// Snippet highlights every occurrence of query in text using mark.
func Snippet(text, query string, mark Marker) string {
	var b strings.Builder
	for _, seg := range usecase.Highlight(text, query) {
		if seg.Kind == domain.SegmentMatched {
			b.WriteString(mark(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

func (p *Printer) marker() Marker {
	if p.plain {
		return Brackets
	}
	return Styled(p.styles.Match)
}

// Results prints a header followed by each result with its highlighted snippet.
func (p *Printer) Results(query string, results []domain.MatchResult) {
	fmt.Fprintln(p.w, ResultsHeader(len(results), strings.TrimSpace(query)))
	for i, r := range results {
		fmt.Fprintf(p.w, "\n--- [%d] %s ---\n", i+1, p.style(p.styles.Title, r.DocumentName))
		fmt.Fprintln(p.w, p.style(p.styles.Muted, fmt.Sprintf("%s  offset %d", r.DocumentType, r.MatchOffset)))
		fmt.Fprintln(p.w, Snippet(r.Snippet, query, p.marker()))
	}
}

// Documents prints the document listing in store order.
func (p *Printer) Documents(docs []domain.Document) {
	if len(docs) == 0 {
		fmt.Fprintln(p.w, "No documents uploaded.")
		return
	}
	for _, d := range docs {
		meta := fmt.Sprintf("%s · %s · %s", FormatFileSize(d.Size), d.MimeType, TypeLabel(d.MimeType))
		fmt.Fprintf(p.w, "%s  %s\n    %s\n", d.ID, p.style(p.styles.Title, d.Name), p.style(p.styles.Muted, meta))
	}
}

// Answer prints a QA answer and how long it took.
func (p *Printer) Answer(a domain.Answer) {
	text := a.Text
	if a.Fallback {
		text = p.style(p.styles.Warn, text)
	}
	fmt.Fprintln(p.w, text)
	fmt.Fprintln(p.w, p.style(p.styles.Muted, "Response time: "+FormatLatency(a.Latency)))
}
