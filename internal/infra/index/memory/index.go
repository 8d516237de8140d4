// Package memory provides a process-local reverse index. It backs tests
// and single-node deployments that run without Postgres; production uses
// the share_index table so index and record commit atomically.
package memory

import (
	"context"
	"sync"

	"calshare/internal/domain/entity"
	"calshare/internal/domain/repository"
)

type index struct {
	mu      sync.RWMutex
	entries map[string]entity.ReverseIndexEntry
}

// NewIndex returns an empty in-memory ReverseIndexRepository.
func NewIndex() repository.ReverseIndexRepository {
	return &index{entries: make(map[string]entity.ReverseIndexEntry)}
}

func (i *index) Put(_ context.Context, entry *entity.ReverseIndexEntry) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	existing, ok := i.entries[entry.LookupKey]
	if ok {
		if existing.UserID == entry.UserID && existing.ShareID == entry.ShareID {
			return nil
		}
		return repository.ErrIndexConflict
	}

	i.entries[entry.LookupKey] = *entry

	return nil
}

func (i *index) Get(_ context.Context, lookupKey string) (*entity.ReverseIndexEntry, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	entry, ok := i.entries[lookupKey]
	if !ok {
		return nil, nil
	}
	out := entry

	return &out, nil
}

func (i *index) Remove(_ context.Context, lookupKey string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.entries, lookupKey)

	return nil
}

func (i *index) RemoveByShareID(_ context.Context, shareID string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	for key, entry := range i.entries {
		if entry.ShareID == shareID {
			delete(i.entries, key)
		}
	}

	return nil
}
