package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentJSON_BrowserFormat(t *testing.T) {
	blob := `[{"id":"1712","name":"a.txt","type":"text/plain","content":"hi","size":2,"lastModified":1714564800000}]`

	var docs []Document
	require.NoError(t, json.Unmarshal([]byte(blob), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "text/plain", docs[0].MimeType)
	assert.True(t, docs[0].LastModified.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	out, err := json.Marshal(docs)
	require.NoError(t, err)
	assert.JSONEq(t, blob, string(out))
}

func TestDocumentJSON_RFC3339AndMissing(t *testing.T) {
	var d Document
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","lastModified":"2024-05-01T12:00:00Z"}`), &d))
	assert.True(t, d.LastModified.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	d = Document{}
	require.NoError(t, json.Unmarshal([]byte(`{"id":"y"}`), &d))
	assert.True(t, d.LastModified.IsZero())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "lastModified")
}

func TestDocumentJSON_BadTimestamp(t *testing.T) {
	var d Document
	assert.Error(t, json.Unmarshal([]byte(`{"id":"x","lastModified":true}`), &d))
}
