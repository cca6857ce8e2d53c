package document

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/contentdesk/contentdesk/internal/core/validation"
)

// Session is one wizard run: SelectingTemplate -> FillingForm -> Previewing,
// with explicit Back and StartOver transitions. A session has a single owner
// (the page driving it); the mutex only serializes handler calls.
type Session struct {
	mu          sync.Mutex
	id          string
	state       SessionState
	template    *Template
	values      FormValues
	fieldErrors map[string]string
	handle      *DocumentHandle
	exporting   bool
}

// PDFExporter turns a generated document into PDF bytes.
type PDFExporter interface {
	Export(handle *DocumentHandle) ([]byte, error)
}

// Manager owns the live sessions and runs the wizard operations against
// them.
type Manager struct {
	registry  *Registry
	validator *validation.Validator
	exporter  PDFExporter

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(registry *Registry, validator *validation.Validator, exporter PDFExporter) *Manager {
	return &Manager{
		registry:  registry,
		validator: validator,
		exporter:  exporter,
		sessions:  make(map[string]*Session),
	}
}

func (m *Manager) Create() *SessionResponse {
	s := &Session{
		id:          uuid.NewString(),
		state:       StateSelectingTemplate,
		values:      FormValues{},
		fieldErrors: map[string]string{},
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	return s.response()
}

func (m *Manager) Get(id string) (*SessionResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response(), nil
}

// SelectTemplate sets the active template, clears any prior values and moves
// the session to FillingForm.
func (m *Manager) SelectTemplate(ctx context.Context, id, templateID string) (*SessionResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}

	tpl, err := m.registry.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelectingTemplate {
		return nil, ErrInvalidTransition
	}

	s.template = tpl
	s.values = FormValues{}
	s.fieldErrors = map[string]string{}
	s.handle = nil
	s.state = StateFillingForm
	return s.response(), nil
}

// SetFieldValue stores a value and optimistically clears that field's
// validation error; it is re-checked on the next Validate/Generate.
func (m *Manager) SetFieldValue(id, fieldID string, value interface{}) (*SessionResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateFillingForm {
		return nil, ErrInvalidTransition
	}
	if _, ok := s.template.Fields.Get(fieldID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, fieldID)
	}

	s.values[fieldID] = value
	delete(s.fieldErrors, fieldID)
	return s.response(), nil
}

// Back steps to the previous wizard state.
func (m *Manager) Back(id string) (*SessionResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StatePreviewing:
		s.state = StateFillingForm
	case StateFillingForm:
		s.state = StateSelectingTemplate
	default:
		return nil, ErrInvalidTransition
	}
	return s.response(), nil
}

// StartOver resets the wizard completely.
func (m *Manager) StartOver(id string) (*SessionResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateSelectingTemplate
	s.template = nil
	s.values = FormValues{}
	s.fieldErrors = map[string]string{}
	s.handle = nil
	return s.response(), nil
}

// Validate checks every required field and reports all violations at once.
func (m *Manager) Validate(id string) (*SessionResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateFillingForm {
		return nil, ErrInvalidTransition
	}

	s.recordViolations(m.validator.CheckRequired(map[string]interface{}(s.values), s.template.Fields))
	return s.response(), nil
}

// Generate renders the filled template and moves to Previewing. It never
// produces a handle while required fields are missing, and it never touches
// the form values.
func (m *Manager) Generate(id string) (*SessionResponse, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateFillingForm {
		return nil, ErrInvalidTransition
	}

	verr := m.validator.CheckRequired(map[string]interface{}(s.values), s.template.Fields)
	s.recordViolations(verr)
	if verr != nil {
		return nil, verr
	}

	s.handle = &DocumentHandle{
		ID:          uuid.NewString(),
		TemplateID:  s.template.ID,
		Title:       documentTitle(s.template),
		Body:        render(s.template, s.values),
		Filename:    exportFilename(s.template),
		GeneratedAt: time.Now().UTC(),
	}
	s.state = StatePreviewing
	return s.response(), nil
}

// ExportPDF rasterizes the generated document. Only one export may run per
// session at a time; a failed export leaves the handle and values intact.
func (m *Manager) ExportPDF(id string) ([]byte, string, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, "", err
	}

	s.mu.Lock()
	if s.state != StatePreviewing || s.handle == nil {
		s.mu.Unlock()
		return nil, "", ErrNotGenerated
	}
	if s.exporting {
		s.mu.Unlock()
		return nil, "", ErrExportInFlight
	}
	s.exporting = true
	handle := *s.handle
	s.mu.Unlock()

	pdf, err := m.exporter.Export(&handle)

	s.mu.Lock()
	s.exporting = false
	s.mu.Unlock()

	if err != nil {
		return nil, "", err
	}
	return pdf, handle.Filename, nil
}

func (m *Manager) session(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// recordViolations mirrors the validation result into per-field errors for
// inline highlighting.
func (s *Session) recordViolations(err error) {
	s.fieldErrors = map[string]string{}
	if ve := validation.GetValidationErrors(err); ve != nil {
		for _, v := range ve.Errors {
			s.fieldErrors[v.Field] = v.Message
		}
	}
}

// response snapshots the session for the API. Caller holds the lock except
// right after construction.
func (s *Session) response() *SessionResponse {
	resp := &SessionResponse{
		ID:     s.id,
		State:  s.state,
		Values: FormValues{},
	}
	for k, v := range s.values {
		resp.Values[k] = v
	}
	if s.template != nil {
		resp.TemplateID = s.template.ID
	}
	if len(s.fieldErrors) > 0 {
		resp.FieldErrors = make(map[string]string, len(s.fieldErrors))
		for k, v := range s.fieldErrors {
			resp.FieldErrors[k] = v
		}
	}
	if s.handle != nil {
		h := *s.handle
		resp.Handle = &h
	}
	return resp
}
