// Package auth manages the flat user-credential table. Credentials are
// compared as stored; hardening the model is explicitly out of scope.
package auth

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/phantomloop/ttclub/internal/club"
	"github.com/phantomloop/ttclub/internal/store"
)

// Service reads and writes user accounts through the store adapter.
type Service struct {
	store store.Adapter
}

// New creates a Service.
func New(adapter store.Adapter) *Service {
	return &Service{store: adapter}
}

// Authenticate returns the matching user, or nil when the username is unknown
// or the password does not match.
func (s *Service) Authenticate(username, password string) (*club.User, error) {
	docs, err := s.store.Query(store.Users, "username", username)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	if len(docs) == 0 {
		log.Debug("No user found", "username", username)
		return nil, nil
	}

	var user club.User
	if err := store.Unmarshal(docs[0], &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	if user.Password != password {
		log.Debug("Password mismatch", "username", username)
		return nil, nil
	}

	user.Password = ""
	return &user, nil
}

// CreateAccount stores a player-role account keyed by username, so repeated
// registrations with the same username replace the record.
func (s *Service) CreateAccount(username, email, password, playerID string) error {
	user := club.User{
		Username:  username,
		Email:     email,
		Password:  password,
		Role:      "player",
		PlayerID:  playerID,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	doc, err := store.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.store.Put(store.Users, username, doc); err != nil {
		return fmt.Errorf("failed to persist user account: %w", err)
	}

	log.Info("User account created", "username", username, "playerID", playerID)
	return nil
}

// EnsureAdmin creates the admin account when no user carries the admin
// username yet. Runs once at startup.
func (s *Service) EnsureAdmin(username, email, password string) error {
	docs, err := s.store.Query(store.Users, "username", username)
	if err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if len(docs) > 0 {
		log.Debug("Admin account already exists", "username", username)
		return nil
	}

	admin := club.User{
		Username:  username,
		Email:     email,
		Password:  password,
		Role:      "admin",
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	doc, err := store.Marshal(admin)
	if err != nil {
		return fmt.Errorf("failed to encode admin user: %w", err)
	}
	if err := s.store.Put(store.Users, username, doc); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Info("Admin account created", "username", username)
	return nil
}
