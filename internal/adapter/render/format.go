// Package render formats documents, search results and answers for the terminal.
package render

import (
	"fmt"
	"strings"
	"time"
)

// FormatFileSize formats a byte count as bytes, KB or MB.
func FormatFileSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d bytes", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

// TypeLabel returns a short category for a MIME type: text, image or file.
func TypeLabel(mimeType string) string {
	switch {
	case mimeType == "text/plain", mimeType == "application/pdf":
		return "text"
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	default:
		return "file"
	}
}

// FormatLatency formats d as whole minutes and seconds, e.g. "1m 5s".
func FormatLatency(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}

// ResultsHeader summarizes a result count for query.
func ResultsHeader(n int, query string) string {
	switch n {
	case 0:
		return "No results found."
	case 1:
		return fmt.Sprintf("1 result for %q", query)
	default:
		return fmt.Sprintf("%d results for %q", n, query)
	}
}
