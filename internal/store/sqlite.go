package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a SQLite-backed Adapter over an initialized database handle.
func New(db *sql.DB) Adapter {
	return &adapter{
		db: db,
	}
}

func (a *adapter) Create(collection string, doc Document) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := uuid.New().String()
	doc["id"] = id

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	_, err = a.db.Exec(
		"INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)",
		collection, id, string(data),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert document into %s: %w", collection, err)
	}

	log.Debug("Created document", "collection", collection, "id", id)
	return id, nil
}

func (a *adapter) Put(collection, id string, doc Document) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	doc["id"] = id
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	_, err = a.db.Exec(`
		INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)
		ON CONFLICT(collection, id) DO UPDATE SET data = excluded.data
	`, collection, id, string(data))
	if err != nil {
		return fmt.Errorf("failed to put document into %s: %w", collection, err)
	}
	return nil
}

func (a *adapter) Get(collection, id string) (Document, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var data string
	err := a.db.QueryRow(
		"SELECT data FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s/%s: %w", collection, id, err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Update reads the stored document, merges the partial fields over it and
// writes the result back in a single transaction.
func (a *adapter) Update(collection, id string, partial Document) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	tx, err := a.db.Begin()
	if err != nil {
		return err
	}

	var data string
	err = tx.QueryRow(
		"SELECT data FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	).Scan(&data)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return ErrNotFound
	}
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to read document %s/%s: %w", collection, id, err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to unmarshal document %s/%s: %w", collection, id, err)
	}
	for k, v := range partial {
		doc[k] = v
	}
	doc["id"] = id

	merged, err := json.Marshal(doc)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	_, err = tx.Exec(
		"UPDATE documents SET data = ? WHERE collection = ? AND id = ?",
		string(merged), collection, id,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update document %s/%s: %w", collection, id, err)
	}

	return tx.Commit()
}

func (a *adapter) Delete(collection, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	res, err := a.db.Exec(
		"DELETE FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (a *adapter) Query(collection, field string, value any) ([]Document, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	rows, err := a.db.Query(
		"SELECT data FROM documents WHERE collection = ? AND json_extract(data, ?) = ?",
		collection, "$."+field, value,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", collection, field, err)
	}
	defer rows.Close()

	return scanDocuments(rows, collection)
}

func (a *adapter) ListAll(collection, orderBy string) ([]Document, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var (
		rows *sql.Rows
		err  error
	)
	if orderBy == "" {
		rows, err = a.db.Query(
			"SELECT data FROM documents WHERE collection = ? ORDER BY rowid",
			collection,
		)
	} else {
		rows, err = a.db.Query(
			"SELECT data FROM documents WHERE collection = ? ORDER BY json_extract(data, ?)",
			collection, "$."+orderBy,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	defer rows.Close()

	return scanDocuments(rows, collection)
}

func scanDocuments(rows *sql.Rows, collection string) ([]Document, error) {
	var docs []Document
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			log.Error("Failed to scan document row", "error", err, "collection", collection)
			continue
		}
		var doc Document
		if err := json.Unmarshal([]byte(data), &doc); err != nil {
			log.Error("Failed to unmarshal document", "error", err, "collection", collection)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
