package repository

import (
	"fmt"

	"github.com/fmcastro/monitoria/internal/model"
	"github.com/fmcastro/monitoria/internal/storage"
)

type SessionRepository struct {
	store *storage.Store
}

func NewSessionRepository(store *storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Get returns the stored session, or nil when nobody is logged in. A
// corrupt session document reads back as the zero value and is reported
// as absent.
func (r *SessionRepository) Get() (*model.Session, error) {
	var session model.Session
	if err := r.store.Read(storage.DocumentSession, &session); err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if session.Identity == "" && session.Role == "" {
		return nil, nil
	}
	return &session, nil
}

// Set replaces the stored session.
func (r *SessionRepository) Set(session model.Session) error {
	if err := r.store.Write(storage.DocumentSession, session); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is fine.
func (r *SessionRepository) Clear() error {
	if err := r.store.Delete(storage.DocumentSession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
