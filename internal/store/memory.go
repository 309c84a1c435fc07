// internal/store/memory.go
//
// In-memory history of rounds played during one session.
//
// Characteristics:
//   - Stores *game.Round objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.
//   - Get() returns ErrNotFound for unknown round IDs.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/bagels/internal/game"
)

// ErrNotFound is returned by Get for an unknown round ID.
var ErrNotFound = errors.New("round not found")

// Store records finished rounds.
type Store interface {
	// Save adds or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Get retrieves a round by ID.
	Get(ctx context.Context, id string) (*game.Round, error)

	// Summary counts the rounds saved so far and how many were won.
	Summary(ctx context.Context) (played, won int, err error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex
	rounds map[string]*game.Round
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

func (m *memory) Save(ctx context.Context, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Summary(ctx context.Context) (played, won int, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.rounds {
		played++
		if r.Won {
			won++
		}
	}
	return played, won, nil
}
