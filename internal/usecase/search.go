package usecase

import (
	"context"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"docsearch/internal/domain"
)

const (
	// DefaultContextChars is how many characters a snippet keeps on each side of a match.
	DefaultContextChars = 50
	// DefaultEllipsis marks a snippet clipped from its content.
	DefaultEllipsis = "..."
)

// SearchEngine finds literal, case-insensitive, non-overlapping occurrences of
// a query in document contents. Offsets and windows are measured in runes;
// snippets keep the content's original casing and bytes.
type SearchEngine struct {
	contextChars int
	ellipsis     string
}

// NewSearchEngine creates an engine. A negative contextChars selects the default.
func NewSearchEngine(contextChars int, ellipsis string) *SearchEngine {
	if contextChars < 0 {
		contextChars = DefaultContextChars
	}
	return &SearchEngine{contextChars: contextChars, ellipsis: ellipsis}
}

var defaultEngine = NewSearchEngine(DefaultContextChars, DefaultEllipsis)

// Search runs the default engine over docs.
func Search(docs []domain.Document, query string) []domain.MatchResult {
	return defaultEngine.Search(docs, query)
}

// Search returns every match in document-then-offset order. A blank query
// yields nil.
func (e *SearchEngine) Search(docs []domain.Document, query string) []domain.MatchResult {
	results, _ := e.SearchContext(context.Background(), docs, query)
	return results
}

// SearchContext is Search with cancellation checked between documents. On
// cancellation the matches found so far are returned with ctx.Err().
func (e *SearchEngine) SearchContext(ctx context.Context, docs []domain.Document, query string) ([]domain.MatchResult, error) {
	needle, _ := fold(strings.TrimSpace(query))
	if len(needle) == 0 {
		return nil, nil
	}

	var results []domain.MatchResult
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = e.searchDocument(results, doc, needle)
	}
	return results, nil
}

func (e *SearchEngine) searchDocument(out []domain.MatchResult, doc domain.Document, needle []rune) []domain.MatchResult {
	if len(doc.Content) < len(needle) {
		return out
	}
	folded, offsets := fold(doc.Content)

	for cursor := 0; ; {
		at := indexRunes(folded, needle, cursor)
		if at < 0 {
			break
		}
		end := at + len(needle)

		out = append(out, domain.MatchResult{
			DocumentID:   doc.ID,
			DocumentName: doc.Name,
			DocumentType: doc.MimeType,
			Snippet:      e.snippet(doc.Content, offsets, at, end),
			MatchOffset:  at,
		})
		cursor = end
	}
	return out
}

// snippet cuts [at-contextChars, end+contextChars) clamped to the content.
func (e *SearchEngine) snippet(content string, offsets []int, at, end int) string {
	n := len(offsets) - 1
	start := max(0, at-e.contextChars)
	stop := min(n, end+e.contextChars)

	var sb strings.Builder
	if start > 0 {
		sb.WriteString(e.ellipsis)
	}
	sb.WriteString(content[offsets[start]:offsets[stop]])
	if stop < n {
		sb.WriteString(e.ellipsis)
	}
	return sb.String()
}

// fold lower-cases s rune by rune. offsets[i] is the byte index of rune i in s
// and offsets[len(runes)] == len(s), so rune ranges map back to exact bytes.
// An invalid byte b folds to -1-b, which no decoded rune can equal, so it
// only matches the same invalid byte.
func fold(s string) (runes []rune, offsets []int) {
	runes = make([]rune, 0, len(s))
	offsets = make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = -1 - rune(s[i])
		} else {
			r = unicode.ToLower(r)
		}
		runes = append(runes, r)
		offsets = append(offsets, i)
		i += size
	}
	offsets = append(offsets, len(s))
	return runes, offsets
}

// indexRunes returns the first index >= from where sub occurs in s, or -1.
func indexRunes(s, sub []rune, from int) int {
	n := len(sub)
	if n == 0 {
		return -1
	}
	for i := from; i+n <= len(s); i++ {
		if s[i] == sub[0] && slices.Equal(s[i:i+n], sub) {
			return i
		}
	}
	return -1
}
