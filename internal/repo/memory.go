package repo

import (
	"context"
	"slices"
	"sync"
	"time"

	"Vesselcalc/internal/calc/vessel"
)

type memUser struct {
	id       int
	email    string
	password string
}

// MemoryRepository keeps everything in process memory. It serves the
// service when no database is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	users   map[string]memUser
	vessels map[int]SavedVessel
	nextID  int
	now     func() time.Time
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemory() *MemoryRepository {
	return &MemoryRepository{
		users:   make(map[string]memUser),
		vessels: make(map[int]SavedVessel),
		now:     time.Now,
	}
}

func (m *MemoryRepository) id() int {
	m.nextID++
	return m.nextID
}

func (m *MemoryRepository) CreateUser(_ context.Context, login, email, password string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[login]; ok {
		return 0, ErrConflict
	}
	u := memUser{id: m.id(), email: email, password: password}
	m.users[login] = u
	return u.id, nil
}

func (m *MemoryRepository) GetByLogin(_ context.Context, login string) (int, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[login]
	if !ok {
		return 0, "", ErrNotFound
	}
	return u.id, u.password, nil
}

func (m *MemoryRepository) SaveVessel(_ context.Context, userID int, name string, in vessel.Input) (SavedVessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := SavedVessel{ID: m.id(), UserID: userID, Name: name, Input: in, CreatedAt: m.now()}
	m.vessels[s.ID] = s
	return s, nil
}

func (m *MemoryRepository) ListVessels(_ context.Context, userID int) ([]SavedVessel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []SavedVessel{}
	for _, s := range m.vessels {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b SavedVessel) int { return a.ID - b.ID })
	return out, nil
}

func (m *MemoryRepository) GetVessel(_ context.Context, userID, id int) (SavedVessel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.vessels[id]
	if !ok || s.UserID != userID {
		return SavedVessel{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryRepository) DeleteVessel(_ context.Context, userID, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.vessels[id]
	if !ok || s.UserID != userID {
		return ErrNotFound
	}
	delete(m.vessels, id)
	return nil
}
