// Package backend talks to the remote document service: multipart uploads
// to /documents and question answering via /rag.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"docsearch/internal/adapter/extract"
	"docsearch/internal/domain"
)

// Config configures a Client.
type Config struct {
	BaseURL           string
	APIKey            string // optional bearer token
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 disables limiting
	MaxSize           int64   // upload size limit in bytes, 0 = unlimited
}

type Client struct {
	baseURL string
	apiKey  string
	maxSize int64
	client  *http.Client
	limiter *rate.Limiter
}

type ragRequest struct {
	Query string `json:"query"`
}

type ragResponse struct {
	Answer string    `json:"answer"`
	Error  *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		maxSize: cfg.MaxSize,
		client: &http.Client{
			Timeout: timeout,
		},
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c
}

// Ask sends question to the RAG endpoint. Latency covers the full round trip.
func (c *Client) Ask(ctx context.Context, question string) (domain.Answer, error) {
	start := time.Now()

	jsonData, err := json.Marshal(ragRequest{Query: question})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/rag", "application/json", bytes.NewReader(jsonData))
	if err != nil {
		return domain.Answer{}, err
	}

	var resp ragResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Answer{}, fmt.Errorf("%w: failed to parse response (body: %s): %v", domain.ErrBackendUnavailable, preview(body), err)
	}
	if resp.Error != nil {
		return domain.Answer{}, fmt.Errorf("%w: API error: %s", domain.ErrBackendUnavailable, resp.Error.Message)
	}

	return domain.Answer{
		Text:    resp.Answer,
		Latency: time.Since(start),
	}, nil
}

// Extract uploads the file at path to the document endpoint and builds a
// Document whose content is what the service returned for it.
func (c *Client) Extract(ctx context.Context, path string) (domain.Document, error) {
	info, err := extract.CheckFile(path, c.maxSize)
	if err != nil {
		return domain.Document{}, err
	}
	mimeType, err := extract.DetectType(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %s: %v", domain.ErrUploadFailed, path, err)
	}
	if !extract.Supported(mimeType) {
		return domain.Document{}, fmt.Errorf("%w: %s (%s)", domain.ErrUnsupportedType, info.Name(), mimeType)
	}

	payload, contentType, err := multipartBody(path, info.Name(), mimeType)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	body, err := c.do(ctx, http.MethodPost, "/documents", contentType, payload)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %s: %v", domain.ErrUploadFailed, info.Name(), err)
	}

	return domain.Document{
		ID:           uuid.NewString(),
		Name:         info.Name(),
		MimeType:     mimeType,
		Content:      uploadContent(body),
		Size:         info.Size(),
		LastModified: info.ModTime(),
	}, nil
}

func multipartBody(path, name, mimeType string) (*bytes.Buffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("title", name); err != nil {
		return nil, "", err
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(name)))
	h.Set("Content-Type", mimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// uploadContent picks the text out of an upload response: a JSON string, a
// "content" or "text" field, or else the raw body.
func uploadContent(body []byte) string {
	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"content", "text"} {
			if v, ok := obj[key].(string); ok {
				return v
			}
		}
	}
	return string(body)
}

func (c *Client) do(ctx context.Context, method, endpoint, contentType string, body io.Reader) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrBackendUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned status %d: %s", domain.ErrBackendUnavailable, endpoint, resp.StatusCode, preview(data))
	}
	return data, nil
}

func preview(body []byte) string {
	s := string(body)
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
