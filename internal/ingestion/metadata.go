package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Document formats
const (
	FormatText = "text"
	FormatHTML = "html"
)

// Document is a cleaned input document and what is known about its origin
type Document struct {
	Text      string `json:"-"`
	Source    string `json:"source"`
	Format    string `json:"format"`
	Hash      string `json:"hash"` // SHA256 hex digest of the cleaned text
	Length    int    `json:"length"`
	Timestamp string `json:"timestamp"` // RFC3339
}

// NewDocument cleans raw content, converting HTML when detected
func NewDocument(raw, source string) (*Document, error) {
	format := FormatText
	text := CleanText(raw)
	ext := strings.ToLower(filepath.Ext(source))
	if ext == ".html" || ext == ".htm" || LooksLikeHTML(raw) {
		var err error
		if text, err = HTMLToText(raw); err != nil {
			return nil, err
		}
		format = FormatHTML
	}
	return &Document{
		Text:      text,
		Source:    source,
		Format:    format,
		Hash:      computeHash(text),
		Length:    len(text),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ReadDocument reads and cleans a file. The path "-" is not special here; callers handle stdin.
func ReadDocument(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return NewDocument(string(content), path)
}

// ReadText reads a file and returns its cleaned text
func ReadText(path string) (string, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
