// Package extract builds documents from local files. Text files are read
// verbatim; PDFs, images and Word files get a placeholder content.
package extract

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"docsearch/internal/domain"
)

const (
	TypeText = "text/plain"
	TypePDF  = "application/pdf"
	TypeDoc  = "application/msword"
	TypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// SupportedTypes is the upload allow-list.
var SupportedTypes = []string{
	TypeText,
	TypePDF,
	"image/jpeg",
	"image/png",
	"image/gif",
	TypeDoc,
	TypeDocx,
}

var extensionTypes = map[string]string{
	".txt":  TypeText,
	".text": TypeText,
	".pdf":  TypePDF,
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".doc":  TypeDoc,
	".docx": TypeDocx,
}

// pathNamespace scopes path-derived document ids.
var pathNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("docsearch:path"))

// Supported reports whether mimeType is on the allow-list.
func Supported(mimeType string) bool {
	return slices.Contains(SupportedTypes, mimeType)
}

// DetectType returns the MIME type for path from its extension, sniffing the
// first bytes when the extension is unknown. Parameters such as charset are dropped.
func DetectType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := extensionTypes[ext]; ok {
		return t, nil
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return baseType(t), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	return baseType(http.DetectContentType(buf[:n])), nil
}

func baseType(t string) string {
	if mediaType, _, err := mime.ParseMediaType(t); err == nil {
		return mediaType
	}
	return t
}

// Placeholder returns the stored content for types whose text is not extracted.
func Placeholder(name, mimeType string) string {
	switch {
	case mimeType == TypePDF:
		return "PDF text extraction is currently disabled."
	case strings.HasPrefix(mimeType, "image/"):
		return "Image text extraction is currently disabled."
	case mimeType == TypeDoc || mimeType == TypeDocx:
		return fmt.Sprintf("Text extraction from %s is not fully supported in the browser. Please upload a PDF or text file for better results.", mimeType)
	default:
		return "File name: " + name
	}
}

// PathID derives a stable document id from an absolute path, so adding the
// same file twice replaces the earlier entry.
func PathID(absPath string) string {
	return uuid.NewSHA1(pathNamespace, []byte(absPath)).String()
}

// LocalExtractor reads documents from the local filesystem.
type LocalExtractor struct {
	maxSize int64
}

// NewLocalExtractor creates an extractor. maxSize <= 0 disables the size limit.
func NewLocalExtractor(maxSize int64) *LocalExtractor {
	return &LocalExtractor{maxSize: maxSize}
}

func (e *LocalExtractor) Extract(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %s: %v", domain.ErrUploadFailed, path, err)
	}
	info, err := CheckFile(absPath, e.maxSize)
	if err != nil {
		return domain.Document{}, err
	}

	mimeType, err := DetectType(absPath)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %s: %v", domain.ErrUploadFailed, path, err)
	}
	if !Supported(mimeType) {
		return domain.Document{}, fmt.Errorf("%w: %s (%s)", domain.ErrUnsupportedType, info.Name(), mimeType)
	}

	content := Placeholder(info.Name(), mimeType)
	if mimeType == TypeText {
		data, err := os.ReadFile(absPath)
		if err != nil {
			return domain.Document{}, fmt.Errorf("%w: failed to read file: %v", domain.ErrUploadFailed, err)
		}
		content = string(data)
	}

	return domain.Document{
		ID:           PathID(absPath),
		Name:         info.Name(),
		MimeType:     mimeType,
		Content:      content,
		Size:         info.Size(),
		LastModified: info.ModTime(),
	}, nil
}

// CheckFile stats path and rejects directories and files above maxSize.
func CheckFile(path string, maxSize int64) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrUploadFailed, path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", domain.ErrUploadFailed, info.Name(), info.Size(), maxSize)
	}
	return info, nil
}
