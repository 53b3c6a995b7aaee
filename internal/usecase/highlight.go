package usecase

import (
	"strings"

	"docsearch/internal/domain"
)

// Highlight splits text into plain and matched segments for query, using the
// same matching rules as search. Joining the segment texts gives back text.
func Highlight(text, query string) []domain.Segment {
	needle, _ := fold(strings.TrimSpace(query))
	if len(needle) == 0 {
		if text == "" {
			return nil
		}
		return []domain.Segment{{Text: text, Kind: domain.SegmentPlain}}
	}

	folded, offsets := fold(text)
	var segments []domain.Segment
	last := 0
	for {
		at := indexRunes(folded, needle, last)
		if at < 0 {
			break
		}
		end := at + len(needle)
		if at > last {
			segments = append(segments, domain.Segment{Text: text[offsets[last]:offsets[at]], Kind: domain.SegmentPlain})
		}
		segments = append(segments, domain.Segment{Text: text[offsets[at]:offsets[end]], Kind: domain.SegmentMatched})
		last = end
	}
	if offsets[last] < len(text) {
		segments = append(segments, domain.Segment{Text: text[offsets[last]:], Kind: domain.SegmentPlain})
	}
	return segments
}
