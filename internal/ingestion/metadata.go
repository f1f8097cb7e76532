package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"
)

// Metadata describes a decoded document. It is returned next to analysis
// results so callers can tell which upload or posting a result came from.
type Metadata struct {
	Source     string    `json:"source,omitempty"`
	Format     Format    `json:"format,omitempty"`
	Platform   string    `json:"platform,omitempty"` // job board, URL sources only
	DecodedAt  time.Time `json:"decodedAt"`
	SHA256     string    `json:"sha256"` // of the cleaned text
	Characters int       `json:"characters"`
	Words      int       `json:"words"`
	Lines      int       `json:"lines"`
}

// describe builds the Metadata for cleaned text
func describe(text, source string, format Format) *Metadata {
	sum := sha256.Sum256([]byte(text))
	meta := &Metadata{
		Source:     source,
		Format:     format,
		DecodedAt:  time.Now().UTC(),
		SHA256:     hex.EncodeToString(sum[:]),
		Characters: utf8.RuneCountInString(text),
		Words:      len(strings.Fields(text)),
	}
	if text != "" {
		meta.Lines = strings.Count(text, "\n") + 1
	}
	return meta
}
