// Package store persists config items as a single TOML file.
//
// A Store is the in-memory item registry; FileStore maps a config directory
// to a Store on disk. The tool's lifetime is one load, at most one mutation,
// at most one save, so there is no caching and no locking.
package store

import "github.com/icelava/switchy/internal/item"

// Store holds all config items in insertion order. Item names are unique
// within a store, matched case-sensitively.
type Store struct {
	items []item.Item
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Items returns the items in insertion order.
func (s *Store) Items() []item.Item {
	return s.items
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// Names returns all item names in insertion order.
func (s *Store) Names() []string {
	names := make([]string, len(s.items))
	for i, it := range s.items {
		names[i] = it.Name()
	}
	return names
}

// Get returns the item with the given name.
func (s *Store) Get(name string) (item.Item, bool) {
	for _, it := range s.items {
		if it.Name() == name {
			return it, true
		}
	}
	return nil, false
}

// Add appends an item. It fails with ErrExists if an item with the same
// name is already present, leaving the store unchanged.
func (s *Store) Add(it item.Item) error {
	if _, ok := s.Get(it.Name()); ok {
		return wrapName(ErrExists, it.Name())
	}
	s.items = append(s.items, it)
	return nil
}

// Remove deletes the item with the given name, or fails with ErrNotFound.
// The order of the remaining items is not preserved.
func (s *Store) Remove(name string) error {
	for i, it := range s.items {
		if it.Name() == name {
			last := len(s.items) - 1
			s.items[i] = s.items[last]
			s.items[last] = nil
			s.items = s.items[:last]
			return nil
		}
	}
	return wrapName(ErrNotFound, name)
}
