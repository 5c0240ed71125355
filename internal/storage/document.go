package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/vaultlog/internal/models"
)

// LoadDocument reads the persisted store document. A database with no
// document yet returns (nil, nil); the caller starts from defaults.
func (d *DB) LoadDocument() (*models.Document, error) {
	var raw []byte
	err := d.db.QueryRow(`SELECT doc FROM store WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding store document: %w", err)
	}
	return &doc, nil
}

// SaveDocument writes the whole document, replacing whatever was there.
func (d *DB) SaveDocument(doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding store document: %w", err)
	}
	_, err = d.db.Exec(`
		INSERT INTO store (id, doc) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP`,
		string(raw),
	)
	if err != nil {
		return fmt.Errorf("writing store document: %w", err)
	}
	return nil
}
