package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
)

// ErrNotFound is returned when an update or delete names an unknown document.
var ErrNotFound = errors.New("document not found")

// Document is a flat key/value record as persisted in the store.
type Document = map[string]any

// adapter handles all database operations for the document store.
type adapter struct {
	db *sql.DB
	mu sync.RWMutex
}

// Marshal converts a typed record into its document form.
func Marshal(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Unmarshal decodes a document into a typed record.
func Unmarshal(doc Document, v any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
