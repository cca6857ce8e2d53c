package document

import (
	"context"
	"sort"
)

// Registry resolves templates: built-ins first, then DB-backed custom
// templates. Custom templates cannot shadow a built-in id.
type Registry struct {
	builtins map[string]*Template
	order    []string
	repo     *Repository
}

func NewRegistry(repo *Repository) *Registry {
	r := &Registry{
		builtins: make(map[string]*Template),
		repo:     repo,
	}
	for _, tpl := range builtinTemplates() {
		r.builtins[tpl.ID] = tpl
		r.order = append(r.order, tpl.ID)
	}
	return r
}

func (r *Registry) Get(ctx context.Context, id string) (*Template, error) {
	if tpl, ok := r.builtins[id]; ok {
		return tpl, nil
	}
	tpl, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, ErrTemplateNotFound
	}
	return tpl, nil
}

func (r *Registry) List(ctx context.Context) (*ListTemplatesResponse, error) {
	templates := make([]*Template, 0, len(r.order))
	for _, id := range r.order {
		templates = append(templates, r.builtins[id])
	}

	custom, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i].ID < custom[j].ID })
	templates = append(templates, custom...)

	return &ListTemplatesResponse{Templates: templates, Total: len(templates)}, nil
}

func (r *Registry) Create(ctx context.Context, req *CreateTemplateRequest) (*Template, error) {
	if err := req.Fields.Check(); err != nil {
		return nil, err
	}

	if _, ok := r.builtins[req.ID]; ok {
		return nil, ErrAlreadyExists
	}
	existing, err := r.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	tpl := &Template{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Fields:      req.Fields,
		Skeleton:    req.Skeleton,
	}
	if err := r.repo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (r *Registry) Delete(ctx context.Context, id string) error {
	if _, ok := r.builtins[id]; ok {
		return ErrBuiltIn
	}
	existing, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTemplateNotFound
	}
	return r.repo.Delete(ctx, id)
}
