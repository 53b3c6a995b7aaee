package usecase

import (
	"encoding/json"
	"fmt"
	"sync"

	"docsearch/internal/domain"
	"docsearch/internal/logger"
	"docsearch/internal/port"
)

// StorageKey is the single backend key holding the serialized document set.
const StorageKey = "uploadedFiles"

// DocumentStore holds the ordered set of uploaded documents and writes the
// full set to the backend after every mutation.
//
// Callers serialize mutations; the lock only guarantees that List always
// observes a complete set.
type DocumentStore struct {
	mu        sync.RWMutex
	kv        port.KVStore
	docs      []domain.Document
	index     map[string]int
	gen       uint64
	listeners map[int]func()
	nextID    int
}

// OpenDocumentStore creates a store over kv and loads the persisted set.
func OpenDocumentStore(kv port.KVStore) *DocumentStore {
	s := &DocumentStore{
		kv:        kv,
		index:     make(map[string]int),
		listeners: make(map[int]func()),
	}
	s.docs = s.read()
	s.reindex()
	logger.Debug("document store opened with %d documents", len(s.docs))
	return s
}

// Load replaces the in-memory set with the persisted one. A missing key, a
// backend read error or malformed data all leave the set empty. Listeners
// are notified as for any other mutation.
func (s *DocumentStore) Load() {
	docs := s.read()

	s.mu.Lock()
	s.docs = docs
	s.reindex()
	s.gen++
	s.mu.Unlock()

	s.notify()
	logger.Debug("document store loaded %d documents", len(docs))
}

func (s *DocumentStore) read() []domain.Document {
	data, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		logger.Warn("reading %s: %v; starting empty", StorageKey, err)
		return nil
	}
	if !ok {
		return nil
	}

	var docs []domain.Document
	if err := json.Unmarshal([]byte(data), &docs); err != nil {
		logger.Warn("decoding %s: %v; starting empty", StorageKey, err)
		return nil
	}

	// A hand-edited blob may repeat an id; the first occurrence wins.
	seen := make(map[string]struct{}, len(docs))
	unique := docs[:0]
	for _, d := range docs {
		if _, dup := seen[d.ID]; dup {
			continue
		}
		seen[d.ID] = struct{}{}
		unique = append(unique, d)
	}
	return unique
}

// Add inserts doc, or replaces the document with the same id in place.
func (s *DocumentStore) Add(doc domain.Document) error {
	if doc.ID == "" {
		return fmt.Errorf("%w: document id is empty", domain.ErrInvalidInput)
	}
	if doc.Size < 0 {
		return fmt.Errorf("%w: negative size %d for %s", domain.ErrInvalidInput, doc.Size, doc.ID)
	}

	s.mu.Lock()
	if i, ok := s.index[doc.ID]; ok {
		s.docs[i] = doc
	} else {
		s.index[doc.ID] = len(s.docs)
		s.docs = append(s.docs, doc)
	}
	err := s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return err
}

// Remove deletes the document with id. An unknown id is a no-op.
func (s *DocumentStore) Remove(id string) error {
	s.mu.Lock()
	if i, ok := s.index[id]; ok {
		s.docs = append(s.docs[:i:i], s.docs[i+1:]...)
		s.reindex()
	}
	err := s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return err
}

// Clear empties the set and deletes the persisted key.
func (s *DocumentStore) Clear() error {
	s.mu.Lock()
	s.docs = nil
	s.reindex()
	s.gen++
	var err error
	if rerr := s.kv.Remove(StorageKey); rerr != nil {
		err = fmt.Errorf("%w: removing %s: %v", domain.ErrPersistence, StorageKey, rerr)
	}
	s.mu.Unlock()

	s.notify()
	return err
}

// List returns a copy of the set in insertion order.
func (s *DocumentStore) List() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

func (s *DocumentStore) Get(id string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Document{}, false
	}
	return s.docs[i], true
}

func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Generation increases on every mutation, including no-op removals.
func (s *DocumentStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Subscribe registers fn to run after each mutation. The returned func
// unregisters it.
func (s *DocumentStore) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Close drops all listeners and closes the backend.
func (s *DocumentStore) Close() error {
	s.mu.Lock()
	s.listeners = make(map[int]func())
	s.mu.Unlock()
	return s.kv.Close()
}

// persistLocked writes the full set. The in-memory mutation is never rolled back.
func (s *DocumentStore) persistLocked() error {
	s.gen++

	docs := s.docs
	if docs == nil {
		docs = []domain.Document{}
	}
	data, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("%w: encoding documents: %v", domain.ErrPersistence, err)
	}
	if err := s.kv.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("%w: writing %s: %v", domain.ErrPersistence, StorageKey, err)
	}
	return nil
}

func (s *DocumentStore) reindex() {
	s.index = make(map[string]int, len(s.docs))
	for i, d := range s.docs {
		s.index[d.ID] = i
	}
}

func (s *DocumentStore) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
