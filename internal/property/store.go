package property

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// PersistenceError reports that the backing storage could not be read or written.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s properties: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

var (
	// ErrEmptyName is returned by Store.Save for a blank key.
	ErrEmptyName = errors.New("property name is empty")
	// ErrNilProperty is returned by Store.Save when there is nothing to store.
	ErrNilProperty = errors.New("property is nil")
)

// Backend reads and writes the complete name to property mapping.
type Backend interface {
	Read() (map[string]*Property, error)
	Write(props map[string]*Property) error
}

// Store is the in-memory property mapping plus the backend it persists to.
// Every save rewrites the whole mapping, so concurrent writers from separate
// processes follow last-write-wins over the entire document.
type Store struct {
	backend Backend

	mu    sync.RWMutex
	props map[string]*Property
}

// NewStore creates an empty store. Call Load to read persisted properties.
func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		props:   make(map[string]*Property),
	}
}

// Load replaces the in-memory mapping with the persisted one. Missing data
// loads as an empty mapping. On failure the store is left empty and a
// *PersistenceError is returned; callers may keep using the store.
func (s *Store) Load() error {
	props, err := s.backend.Read()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.props = make(map[string]*Property)
		return &PersistenceError{Op: "load", Err: err}
	}
	loaded := make(map[string]*Property, len(props))
	for name, p := range props {
		if p == nil {
			s.props = make(map[string]*Property)
			return &PersistenceError{Op: "load", Err: fmt.Errorf("property %q is null", name)}
		}
		p.Name = name
		loaded[name] = p
	}
	s.props = loaded
	return nil
}

// Save inserts or overwrites the property under name and rewrites the whole
// mapping. If the write fails the previous entry is restored and a
// *PersistenceError is returned. Save does not retry.
func (s *Store) Save(name string, p *Property) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if p == nil {
		return ErrNilProperty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.props[name]

	stored := *p
	stored.Name = name
	s.props[name] = &stored

	if err := s.backend.Write(s.props); err != nil {
		if existed {
			s.props[name] = prev
		} else {
			delete(s.props, name)
		}
		return &PersistenceError{Op: "save", Err: err}
	}

	return nil
}

// Get returns the property stored under name.
func (s *Store) Get(name string) (*Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.props[strings.TrimSpace(name)]
	return p, ok
}

// ListAll returns every stored property ordered by name.
func (s *Store) ListAll() []*Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Property, 0, len(s.props))
	for _, p := range s.props {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of stored properties.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.props)
}
