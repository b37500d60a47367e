package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/platemind/v1/internal/domain/profile"
	appErrors "github.com/platemind/v1/pkg/errors"
)

// ProfileStore is a thread-safe in-memory profile store for tests and
// demo runs.
type ProfileStore struct {
	mu         sync.RWMutex
	households map[uuid.UUID]*profile.Household
}

// NewProfileStore builds an empty store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{households: make(map[uuid.UUID]*profile.Household)}
}

// GetFullProfile returns a stored household.
func (s *ProfileStore) GetFullProfile(_ context.Context, householdID uuid.UUID) (*profile.Household, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.households[householdID]
	if !ok {
		return nil, appErrors.NewProfileNotFoundError(householdID.String())
	}
	copied := *h
	return &copied, nil
}

// SaveProfile stores a household, assigning IDs as needed.
func (s *ProfileStore) SaveProfile(_ context.Context, h *profile.Household) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	for i := range h.Members {
		if h.Members[i].ID == uuid.Nil {
			h.Members[i].ID = uuid.New()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *h
	s.households[h.ID] = &copied
	return nil
}

// DeleteProfile removes a household.
func (s *ProfileStore) DeleteProfile(_ context.Context, householdID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.households, householdID)
	return nil
}
