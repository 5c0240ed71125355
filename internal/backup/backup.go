// Package backup encodes and decodes whole-document backup archives.
// A backup is the store document as JSON, gzip-compressed for the
// download path; restore accepts either the compressed archive or the
// bare JSON, since users end up with both.
package backup

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/claude/vaultlog/internal/models"
)

// Encode serializes the document and compresses it.
func Encode(doc *models.Document) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("compressing backup: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compressing backup: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reads a backup archive, gzip-compressed or plain JSON, and
// returns the document it contains. The document is parsed but not
// migrated; the store does that on restore.
func Decode(r io.Reader) (*models.Document, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading backup: %w", err)
	}

	var src io.Reader = br
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening backup archive: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	var doc models.Document
	dec := json.NewDecoder(src)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding backup: %w", err)
	}
	if doc.Version == 0 && doc.Sessions == nil && doc.WeeklyPlan == nil {
		return nil, fmt.Errorf("backup does not contain a store document")
	}
	return &doc, nil
}
