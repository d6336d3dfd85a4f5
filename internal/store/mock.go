package store

import (
	"fmt"
	"sort"
	"sync"
)

// Mock is an in-memory Adapter for tests. It behaves like the real adapter
// and additionally records calls and supports error injection per method.
type Mock struct {
	mu   sync.Mutex
	seq  int
	docs map[string]map[string]Document // collection -> id -> doc

	// Error injection. When set, the method returns the error and performs
	// no mutation.
	CreateErr error
	UpdateErr error
	DeleteErr error

	// Call records
	CreateCalls []string
	UpdateCalls []struct {
		Collection string
		ID         string
	}
	DeleteCalls []struct {
		Collection string
		ID         string
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		docs: make(map[string]map[string]Document),
	}
}

func (m *Mock) collection(name string) map[string]Document {
	if m.docs[name] == nil {
		m.docs[name] = make(map[string]Document)
	}
	return m.docs[name]
}

func clone(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func (m *Mock) Create(collection string, doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, collection)
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.seq++
	id := fmt.Sprintf("%s-%06d", collection, m.seq)
	doc["id"] = id
	m.collection(collection)[id] = clone(doc)
	return id, nil
}

func (m *Mock) Put(collection, id string, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc["id"] = id
	m.collection(collection)[id] = clone(doc)
	return nil
}

func (m *Mock) Get(collection, id string) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.collection(collection)[id]
	if !ok {
		return nil, nil
	}
	return clone(doc), nil
}

func (m *Mock) Update(collection, id string, partial Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls = append(m.UpdateCalls, struct {
		Collection string
		ID         string
	}{collection, id})
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	doc, ok := m.collection(collection)[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range partial {
		doc[k] = v
	}
	return nil
}

func (m *Mock) Delete(collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, struct {
		Collection string
		ID         string
	}{collection, id})
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.collection(collection)[id]; !ok {
		return ErrNotFound
	}
	delete(m.collection(collection), id)
	return nil
}

func (m *Mock) Query(collection, field string, value any) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Document
	for _, doc := range m.collection(collection) {
		if fmt.Sprintf("%v", doc[field]) == fmt.Sprintf("%v", value) {
			out = append(out, clone(doc))
		}
	}
	return out, nil
}

func (m *Mock) ListAll(collection, orderBy string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Document
	for _, doc := range m.collection(collection) {
		out = append(out, clone(doc))
	}
	sort.Slice(out, func(i, j int) bool {
		if orderBy == "" {
			return fmt.Sprintf("%v", out[i]["id"]) < fmt.Sprintf("%v", out[j]["id"])
		}
		return fmt.Sprintf("%v", out[i][orderBy]) < fmt.Sprintf("%v", out[j][orderBy])
	})
	return out, nil
}
