package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {

	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	if teardown != nil {
		defer teardown()
	} else {
		defer db.Close()
	}

	// Check if the 'documents' table was created
	var documentsTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='documents'").Scan(&documentsTableName)
	require.NoError(t, err, "Querying for documents table should not produce an error")
	assert.Equal(t, "documents", documentsTableName, "The 'documents' table should be created")

	// Check if the collection index was created
	var indexName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name='idx_documents_collection'").Scan(&indexName)
	require.NoError(t, err, "Querying for collection index should not produce an error")
	assert.Equal(t, "idx_documents_collection", indexName)
}
