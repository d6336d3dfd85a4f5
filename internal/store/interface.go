package store

// Collection names used by the application.
const (
	Players       = "players"
	Matches       = "matches"
	Announcements = "announcements"
	Users         = "users"
)

// Adapter is the uniform persistence surface the repositories write through.
// Records are flat JSON documents keyed by collection and id; the backing
// implementation is SQLite (local file or Turso remote).
type Adapter interface {
	// Create stores a new document and returns its assigned id.
	Create(collection string, doc Document) (string, error)
	// Put stores a document under an explicit id, replacing any existing one.
	Put(collection, id string, doc Document) error
	// Get returns the document or nil when no document has the id.
	Get(collection, id string) (Document, error)
	// Update merges partial fields into an existing document.
	// Returns ErrNotFound when the id is unknown.
	Update(collection, id string, partial Document) error
	// Delete removes the document. Returns ErrNotFound when the id is unknown.
	Delete(collection, id string) error
	// Query returns every document whose top-level field equals value.
	Query(collection, field string, value any) ([]Document, error)
	// ListAll returns every document in the collection, ordered by the given
	// top-level field, or by insertion order when orderBy is empty.
	ListAll(collection, orderBy string) ([]Document, error)
}
