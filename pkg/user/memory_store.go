package user

import (
	"context"
	"sync"
)

// MemoryStore keeps users in process memory.
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[string]User
	identities map[string]Identity // provider + "\x00" + provider user id
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[string]User),
		identities: make(map[string]Identity),
	}
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) GetByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = NormalizeEmail(email)
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Create(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTakenLocked(u.Email, u.ID) {
		return ErrEmailTaken
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) Update(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return ErrNotFound
	}
	if s.emailTakenLocked(u.Email, u.ID) {
		return ErrEmailTaken
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryStore) GetIdentity(_ context.Context, provider, providerUserID string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.identities[identityKey(provider, providerUserID)]
	if !ok {
		return nil, ErrIdentityNotFound
	}
	return &i, nil
}

func (s *MemoryStore) GetUserIdentity(_ context.Context, userID, provider string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, i := range s.identities {
		if i.UserID == userID && i.Provider == provider {
			return &i, nil
		}
	}
	return nil, ErrIdentityNotFound
}

func (s *MemoryStore) LinkIdentity(_ context.Context, identity *Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := identityKey(identity.Provider, identity.ProviderUserID)
	if _, ok := s.identities[key]; ok {
		return ErrIdentityTaken
	}
	s.identities[key] = *identity
	return nil
}

func (s *MemoryStore) emailTakenLocked(email, exceptID string) bool {
	for id, u := range s.users {
		if id != exceptID && u.Email == email {
			return true
		}
	}
	return false
}

func identityKey(provider, providerUserID string) string {
	return provider + "\x00" + providerUserID
}
