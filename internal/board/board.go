// Package board is the announcement board: plain CRUD records, no derived
// state.
package board

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/store"
)

// ErrNotFound is returned when an operation names an unknown announcement id.
var ErrNotFound = errors.New("announcement not found")

// NewAnnouncement carries a board submission.
type NewAnnouncement struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	CreatedBy string `json:"created_by"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// Board owns the in-memory announcement list mirrored to the store.
type Board interface {
	Load() error
	Create(na NewAnnouncement) (*club.Announcement, error)
	Delete(id any) error
	SetActive(id any, active bool) error
	// List returns announcements by descending creation time. With activeOnly
	// set, inactive and expired entries are filtered out.
	List(activeOnly bool) []*club.Announcement
}

type board struct {
	store store.Adapter
	now   func() time.Time
	mu    sync.RWMutex
	items []*club.Announcement
}

// New creates a Board backed by the given store adapter.
func New(adapter store.Adapter) Board {
	return &board{
		store: adapter,
		now:   time.Now,
	}
}

func (b *board) Load() error {
	docs, err := b.store.ListAll(store.Announcements, "")
	if err != nil {
		return fmt.Errorf("failed to load announcements: %w", err)
	}

	items := make([]*club.Announcement, 0, len(docs))
	for _, doc := range docs {
		var a club.Announcement
		if err := store.Unmarshal(doc, &a); err != nil {
			log.Error("Failed to decode announcement document", "error", err, "id", doc["id"])
			continue
		}
		items = append(items, &a)
	}

	b.mu.Lock()
	b.items = items
	b.mu.Unlock()

	log.Info("Announcements loaded from store", "count", len(items))
	return nil
}

func (b *board) Create(na NewAnnouncement) (*club.Announcement, error) {
	ann := &club.Announcement{
		Title:     na.Title,
		Content:   na.Content,
		Type:      na.Type,
		Priority:  na.Priority,
		CreatedAt: b.now().Format(time.RFC3339),
		CreatedBy: na.CreatedBy,
		IsActive:  true,
		ExpiresAt: na.ExpiresAt,
	}

	doc, err := store.Marshal(ann)
	if err != nil {
		return nil, fmt.Errorf("failed to encode announcement: %w", err)
	}
	id, err := b.store.Create(store.Announcements, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to persist announcement: %w", err)
	}
	ann.ID = id

	b.mu.Lock()
	b.items = append(b.items, ann)
	b.mu.Unlock()

	log.Info("Announcement posted", "id", id, "title", ann.Title)
	return ann, nil
}

func (b *board) Delete(id any) error {
	nid := club.NormalizeID(id)

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, a := range b.items {
		if a.ID == nid {
			if err := b.store.Delete(store.Announcements, nid); err != nil && err != store.ErrNotFound {
				return fmt.Errorf("failed to delete announcement: %w", err)
			}
			b.items = append(b.items[:i], b.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (b *board) SetActive(id any, active bool) error {
	nid := club.NormalizeID(id)

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, a := range b.items {
		if a.ID == nid {
			if err := b.store.Update(store.Announcements, nid, store.Document{"is_active": active}); err != nil {
				return fmt.Errorf("failed to update announcement: %w", err)
			}
			a.IsActive = active
			return nil
		}
	}
	return ErrNotFound
}

func (b *board) List(activeOnly bool) []*club.Announcement {
	b.mu.RLock()
	defer b.mu.RUnlock()

	now := b.now().Format(time.RFC3339)
	out := make([]*club.Announcement, 0, len(b.items))
	for _, a := range b.items {
		if activeOnly {
			if !a.IsActive {
				continue
			}
			if a.ExpiresAt != "" && a.ExpiresAt < now {
				continue
			}
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}
