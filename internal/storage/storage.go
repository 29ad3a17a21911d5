package storage

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/eugenenazirov/dorm-area/internal/comparison"
)

const maxReferenceItems = 200

var (
	// ErrInvalidReference indicates the provided reference items violate validation rules.
	ErrInvalidReference = errors.New("reference must contain between 1 and 200 items with a category, a name and a non-negative area")
)

// Storage provides access to the reference area table used for comparisons.
type Storage interface {
	GetReference() ([]comparison.Item, error)
	SetReference(items []comparison.Item) error
}

// MemoryStorage keeps the reference table in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu    sync.RWMutex
	items []comparison.Item
}

// NewMemoryStorage initialises storage with a copy of the built-in reference table.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		items: DefaultReference(),
	}
}

// GetReference returns a defensive copy of the current reference table.
func (s *MemoryStorage) GetReference() ([]comparison.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneItems(s.items), nil
}

// SetReference validates, normalises, and stores the provided reference table.
func (s *MemoryStorage) SetReference(items []comparison.Item) error {
	normalized, err := normalizeItems(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items = normalized
	s.mu.Unlock()

	return nil
}

func cloneItems(src []comparison.Item) []comparison.Item {
	if len(src) == 0 {
		return []comparison.Item{}
	}

	out := make([]comparison.Item, len(src))
	copy(out, src)
	return out
}

// normalizeItems trims names and rejects empty, oversized or malformed tables. Order is preserved.
func normalizeItems(items []comparison.Item) ([]comparison.Item, error) {
	if len(items) == 0 || len(items) > maxReferenceItems {
		return nil, ErrInvalidReference
	}

	out := make([]comparison.Item, 0, len(items))
	for i, item := range items {
		item.Category = strings.TrimSpace(item.Category)
		item.Name = strings.TrimSpace(item.Name)
		if item.Category == "" || item.Name == "" {
			return nil, fmt.Errorf("%w: item %d is missing a category or name", ErrInvalidReference, i)
		}
		if math.IsNaN(item.Area) || math.IsInf(item.Area, 0) || item.Area < 0 {
			return nil, fmt.Errorf("%w: item %q has invalid area %v", ErrInvalidReference, item.Name, item.Area)
		}
		out = append(out, item)
	}
	return out, nil
}
