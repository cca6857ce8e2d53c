package collection

import (
	"context"
	"sync"

	"github.com/contentdesk/contentdesk/internal/core/validation"
)

// Service hands out one owned Store per collection and runs the persistence
// round-trips. Stores are loaded lazily from the last persisted snapshot and
// kept for the lifetime of the process; the HTTP layer is their only caller.
type Service struct {
	repo      *Repository
	validator *validation.Validator

	mu     sync.Mutex
	stores map[string]*Store
}

func NewService(repo *Repository, validator *validation.Validator) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		stores:    make(map[string]*Store),
	}
}

func (s *Service) Definitions(ctx context.Context) ([]*Definition, error) {
	defs, err := s.repo.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	if defs == nil {
		defs = []*Definition{}
	}
	return defs, nil
}

// store returns the owned store for a collection, loading definition and
// snapshot on first use.
func (s *Service) store(ctx context.Context, name string) (*Store, error) {
	s.mu.Lock()
	if st, ok := s.stores[name]; ok {
		s.mu.Unlock()
		return st, nil
	}
	s.mu.Unlock()

	def, err := s.repo.GetDefinition(ctx, name)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, ErrCollectionNotFound
	}

	records, err := s.repo.GetSnapshot(ctx, name)
	if err != nil {
		return nil, err
	}

	// An abandoned request must not install partial state.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stores[name]; ok {
		return st, nil
	}
	st := NewStore(*def, records)
	s.stores[name] = st
	return st, nil
}

func (s *Service) Collection(ctx context.Context, name string) (*CollectionResponse, error) {
	st, err := s.store(ctx, name)
	if err != nil {
		return nil, err
	}
	records, dirty := st.Snapshot()
	def := st.Definition()
	return &CollectionResponse{
		Definition: &def,
		Records:    records,
		Total:      len(records),
		Dirty:      dirty,
	}, nil
}

func (s *Service) Add(ctx context.Context, name string, req *AddRecordRequest) (Record, error) {
	st, err := s.store(ctx, name)
	if err != nil {
		return Record{}, err
	}

	def := st.Definition()
	if err := s.validator.CheckRequired(req.Fields, def.Fields); err != nil {
		return Record{}, err
	}
	if err := s.validator.Validate(req.Fields, def.Fields.JSONSchema(def.Title)); err != nil {
		return Record{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return st.Add(req.Fields, isActive)
}

func (s *Service) Update(ctx context.Context, name, id string, req *UpdateRecordRequest) (Record, error) {
	st, err := s.store(ctx, name)
	if err != nil {
		return Record{}, err
	}

	def := st.Definition()
	if err := s.validator.ValidatePartial(req.Fields, def.Fields.JSONSchema(def.Title)); err != nil {
		return Record{}, err
	}

	return st.Update(id, req.Fields)
}

func (s *Service) Remove(ctx context.Context, name, id string) error {
	st, err := s.store(ctx, name)
	if err != nil {
		return err
	}
	return st.Remove(id)
}

func (s *Service) ToggleActive(ctx context.Context, name, id string) (Record, error) {
	st, err := s.store(ctx, name)
	if err != nil {
		return Record{}, err
	}
	return st.ToggleActive(id)
}

func (s *Service) Reorder(ctx context.Context, name, id string, order int) error {
	st, err := s.store(ctx, name)
	if err != nil {
		return err
	}
	return st.Reorder(id, order)
}

func (s *Service) View(ctx context.Context, name string, f FilterState) (*ViewResponse, error) {
	st, err := s.store(ctx, name)
	if err != nil {
		return nil, err
	}
	records := st.View(f)
	return &ViewResponse{Records: records, Total: len(records)}, nil
}

func (s *Service) Public(ctx context.Context, name string) (*ViewResponse, error) {
	st, err := s.store(ctx, name)
	if err != nil {
		return nil, err
	}
	records := st.Public()
	return &ViewResponse{Records: records, Total: len(records)}, nil
}

// Persist flushes the in-memory records to storage. On failure the store
// stays Dirty and every edit survives for a retry.
func (s *Service) Persist(ctx context.Context, name string) error {
	st, err := s.store(ctx, name)
	if err != nil {
		return err
	}

	records, err := st.BeginPersist()
	if err != nil {
		return err
	}

	err = s.repo.SaveSnapshot(ctx, name, records)
	st.EndPersist(err == nil)
	return err
}

// Refresh discards in-memory edits and reloads the persisted snapshot.
func (s *Service) Refresh(ctx context.Context, name string) (*CollectionResponse, error) {
	st, err := s.store(ctx, name)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.GetSnapshot(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := st.Reset(records); err != nil {
		return nil, err
	}
	return s.Collection(ctx, name)
}
