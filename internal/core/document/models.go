package document

import (
	"errors"
	"time"

	"github.com/contentdesk/contentdesk/internal/core/schema"
)

var (
	ErrTemplateNotFound  = errors.New("template not found")
	ErrAlreadyExists     = errors.New("template already exists")
	ErrBuiltIn           = errors.New("built-in template cannot be modified")
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidTransition = errors.New("operation not allowed in current state")
	ErrNotGenerated      = errors.New("document has not been generated")
	ErrUnknownField      = errors.New("unknown field")
	ErrExportInFlight    = errors.New("export in flight")
)

// Template is a named document type: a field schema plus the textual
// skeleton the filled values are interpolated into. Skeleton placeholders
// are written as {{fieldId}}.
type Template struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Fields      schema.Fields `json:"fields"`
	Skeleton    string        `json:"skeleton"`
	BuiltIn     bool          `json:"built_in"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CreateTemplateRequest struct {
	ID          string        `json:"id" binding:"required"`
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Fields      schema.Fields `json:"fields" binding:"required"`
	Skeleton    string        `json:"skeleton" binding:"required"`
}

type ListTemplatesResponse struct {
	Templates []*Template `json:"templates"`
	Total     int         `json:"total"`
}

// FormValues maps field ids to what the user entered. Untyped until
// validated.
type FormValues map[string]interface{}

type SessionState string

const (
	StateSelectingTemplate SessionState = "selecting_template"
	StateFillingForm       SessionState = "filling_form"
	StatePreviewing        SessionState = "previewing"
)

// DocumentHandle is the rendered, ready-to-export representation of a
// filled template.
type DocumentHandle struct {
	ID          string    `json:"id"`
	TemplateID  string    `json:"template_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Filename    string    `json:"filename"`
	GeneratedAt time.Time `json:"generated_at"`
}

type SessionResponse struct {
	ID          string            `json:"id"`
	State       SessionState      `json:"state"`
	TemplateID  string            `json:"template_id,omitempty"`
	Values      FormValues        `json:"values"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	Handle      *DocumentHandle   `json:"handle,omitempty"`
}

type SetValueRequest struct {
	FieldID string      `json:"field_id" binding:"required"`
	Value   interface{} `json:"value"`
}

type SelectTemplateRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}
