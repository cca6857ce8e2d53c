package collection

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrPersistInFlight    = errors.New("persist in flight")
)

// Store owns the in-memory records of one collection. It is the single
// mutator; everything handed out is a copy. A store is Dirty whenever the
// records differ from the last persisted snapshot, and all mutations are
// rejected while a persist is running.
type Store struct {
	mu         sync.Mutex
	def        Definition
	records    []Record
	dirty      bool
	persisting bool
}

func NewStore(def Definition, records []Record) *Store {
	s := &Store{def: def}
	s.records = make([]Record, len(records))
	copy(s.records, records)
	return s
}

func (s *Store) Definition() Definition {
	return s.def
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Add appends a new record with a fresh id and order = len+1. Field
// validation happens in the service before this is called.
func (s *Store) Add(fields map[string]interface{}, isActive bool) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persisting {
		return Record{}, ErrPersistInFlight
	}

	now := nowISO()
	rec := Record{
		ID:           uuid.NewString(),
		Order:        len(s.records) + 1,
		IsActive:     isActive,
		Fields:       cloneFields(fields),
		CreatedDate:  now,
		LastModified: now,
	}
	s.records = append(s.records, rec)
	s.dirty = true
	return cloneRecord(rec), nil
}

// Update merges partial domain fields into the record and refreshes
// lastModified.
func (s *Store) Update(id string, partial map[string]interface{}) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persisting {
		return Record{}, ErrPersistInFlight
	}

	i := s.index(id)
	if i < 0 {
		return Record{}, ErrNotFound
	}

	rec := &s.records[i]
	if rec.Fields == nil {
		rec.Fields = make(map[string]interface{}, len(partial))
	}
	for k, v := range partial {
		rec.Fields[k] = v
	}
	rec.LastModified = nowISO()
	s.dirty = true
	return cloneRecord(*rec), nil
}

// Remove deletes the record. Removing an absent id is a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persisting {
		return ErrPersistInFlight
	}

	i := s.index(id)
	if i < 0 {
		return nil
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	s.dirty = true
	return nil
}

func (s *Store) ToggleActive(id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persisting {
		return Record{}, ErrPersistInFlight
	}

	i := s.index(id)
	if i < 0 {
		return Record{}, ErrNotFound
	}
	s.records[i].IsActive = !s.records[i].IsActive
	s.records[i].LastModified = nowISO()
	s.dirty = true
	return cloneRecord(s.records[i]), nil
}

// Reorder sets the record's order directly. Other records keep their order
// values; duplicates are resolved by the stable sort at view time.
func (s *Store) Reorder(id string, order int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persisting {
		return ErrPersistInFlight
	}

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.records[i].Order = order
	s.records[i].LastModified = nowISO()
	s.dirty = true
	return nil
}

func (s *Store) Get(id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return Record{}, ErrNotFound
	}
	return cloneRecord(s.records[i]), nil
}

// Snapshot returns a copy of all records in insertion order plus the dirty
// flag.
func (s *Store) Snapshot() ([]Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecords(s.records), s.dirty
}

func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// BeginPersist marks a persist as running and hands back the snapshot to
// write. A second persist while one is in flight is refused.
func (s *Store) BeginPersist() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persisting {
		return nil, ErrPersistInFlight
	}
	s.persisting = true
	return cloneRecords(s.records), nil
}

// EndPersist re-enables mutations. On success the store becomes Clean; on
// failure edits stay Dirty and retryable.
func (s *Store) EndPersist(success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persisting = false
	if success {
		s.dirty = false
	}
}

// Reset replaces the records with a freshly fetched snapshot and clears the
// dirty flag. Like every other mutation it is refused while a persist is
// writing; a refresh landing mid-persist would leave the store Clean but
// divergent from the stored snapshot.
func (s *Store) Reset(records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persisting {
		return ErrPersistInFlight
	}
	s.records = cloneRecords(records)
	s.dirty = false
	return nil
}

func (s *Store) index(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func cloneRecord(r Record) Record {
	r.Fields = cloneFields(r.Fields)
	return r
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = cloneRecord(r)
	}
	return out
}
