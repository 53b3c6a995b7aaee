package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// documentJSON is the persisted document shape. lastModified is epoch
// milliseconds, as browsers report File.lastModified.
type documentJSON struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	MimeType     string          `json:"type"`
	Content      string          `json:"content"`
	Size         int64           `json:"size"`
	LastModified json.RawMessage `json:"lastModified,omitempty"`
}

func (d Document) MarshalJSON() ([]byte, error) {
	out := documentJSON{
		ID:       d.ID,
		Name:     d.Name,
		MimeType: d.MimeType,
		Content:  d.Content,
		Size:     d.Size,
	}
	if !d.LastModified.IsZero() {
		out.LastModified = json.RawMessage(fmt.Sprintf("%d", d.LastModified.UnixMilli()))
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts lastModified as epoch milliseconds or an RFC 3339 string.
func (d *Document) UnmarshalJSON(data []byte) error {
	var in documentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var modified time.Time
	if len(in.LastModified) > 0 && string(in.LastModified) != "null" {
		var ms float64
		if err := json.Unmarshal(in.LastModified, &ms); err == nil {
			modified = time.UnixMilli(int64(ms))
		} else if err := json.Unmarshal(in.LastModified, &modified); err != nil {
			return fmt.Errorf("lastModified: %w", err)
		}
	}

	*d = Document{
		ID:           in.ID,
		Name:         in.Name,
		MimeType:     in.MimeType,
		Content:      in.Content,
		Size:         in.Size,
		LastModified: modified,
	}
	return nil
}
