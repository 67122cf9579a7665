package store

import (
	"context"
	"sync"

	"trustlink/internal/attestation/models"
	"trustlink/pkg/domain"
	"trustlink/pkg/platform/sentinel"
)

// In-memory stores are the reference implementation: every operation is
// atomic under one mutex, which gives the single-writer-per-key semantics
// the engine assumes. They intentionally favor clarity over performance.

type MemoryRoleStore struct {
	mu      sync.RWMutex
	admin   domain.Address
	issuers map[domain.Address]struct{}
}

func NewMemoryRoleStore() *MemoryRoleStore {
	return &MemoryRoleStore{issuers: make(map[domain.Address]struct{})}
}

func (s *MemoryRoleStore) SetAdmin(_ context.Context, admin domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.admin.IsZero() {
		return sentinel.ErrAlreadyUsed
	}
	s.admin = admin
	return nil
}

func (s *MemoryRoleStore) GetAdmin(_ context.Context) (domain.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.admin.IsZero() {
		return "", sentinel.ErrNotFound
	}
	return s.admin, nil
}

func (s *MemoryRoleStore) AddIssuer(_ context.Context, issuer domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuers[issuer] = struct{}{}
	return nil
}

func (s *MemoryRoleStore) RemoveIssuer(_ context.Context, issuer domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.issuers, issuer)
	return nil
}

func (s *MemoryRoleStore) IsIssuer(_ context.Context, address domain.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.issuers[address]
	return ok, nil
}

type MemoryAttestationStore struct {
	mu      sync.RWMutex
	records map[string]models.Attestation
}

func NewMemoryAttestationStore() *MemoryAttestationStore {
	return &MemoryAttestationStore{records: make(map[string]models.Attestation)}
}

func (s *MemoryAttestationStore) Save(_ context.Context, attestation models.Attestation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[attestation.ID] = attestation
	return nil
}

func (s *MemoryAttestationStore) FindByID(_ context.Context, id string) (models.Attestation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if record, ok := s.records[id]; ok {
		return record, nil
	}
	return models.Attestation{}, sentinel.ErrNotFound
}

func (s *MemoryAttestationStore) Has(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[id]
	return ok, nil
}

type MemoryIndexStore struct {
	mu        sync.RWMutex
	bySubject map[domain.Address][]string
	byIssuer  map[domain.Address][]string
}

func NewMemoryIndexStore() *MemoryIndexStore {
	return &MemoryIndexStore{
		bySubject: make(map[domain.Address][]string),
		byIssuer:  make(map[domain.Address][]string),
	}
}

func (s *MemoryIndexStore) AppendSubject(_ context.Context, subject domain.Address, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bySubject[subject] = append(s.bySubject[subject], id)
	return nil
}

func (s *MemoryIndexStore) AppendIssuer(_ context.Context, issuer domain.Address, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byIssuer[issuer] = append(s.byIssuer[issuer], id)
	return nil
}

func (s *MemoryIndexStore) ListSubject(_ context.Context, subject domain.Address, start, limit uint64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.bySubject[subject], start, limit), nil
}

func (s *MemoryIndexStore) ListIssuer(_ context.Context, issuer domain.Address, start, limit uint64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return page(s.byIssuer[issuer], start, limit), nil
}

func page(ids []string, start, limit uint64) []string {
	lo, hi := pageBounds(uint64(len(ids)), start, limit)
	return append([]string{}, ids[lo:hi]...)
}
