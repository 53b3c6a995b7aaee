package domain

import "time"

// Document is an uploaded item's metadata plus its extracted text.
// See document_json.go for its persisted form.
type Document struct {
	ID           string
	Name         string
	MimeType     string
	Content      string
	Size         int64
	LastModified time.Time
}

// MatchResult is one occurrence of a query inside one document.
type MatchResult struct {
	DocumentID   string `json:"document_id"`
	DocumentName string `json:"document_name"`
	DocumentType string `json:"document_type"`
	Snippet      string `json:"snippet"`
	// MatchOffset counts characters (runes), not bytes.
	MatchOffset int `json:"match_offset"`
}

type SegmentKind int

const (
	SegmentPlain SegmentKind = iota
	SegmentMatched
)

func (k SegmentKind) String() string {
	if k == SegmentMatched {
		return "matched"
	}
	return "plain"
}

// Segment is a contiguous run of highlighted or plain text.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Answer is the reply of the remote question-answering backend.
type Answer struct {
	Text    string        `json:"answer"`
	Latency time.Duration `json:"latency"`
	// Fallback is set when Text is the canned message shown on backend failure.
	Fallback bool `json:"fallback,omitempty"`
}
