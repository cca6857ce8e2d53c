package schema

import (
	"errors"
	"fmt"
)

// FieldType enumerates the input kinds a field schema can declare.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
)

var ErrInvalidFieldSpec = errors.New("invalid field spec")

// FieldSpec describes one input field of a collection or document template.
// Options must be present iff Type is select.
type FieldSpec struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// Fields is an ordered field schema.
type Fields []FieldSpec

func (ft FieldType) valid() bool {
	switch ft {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeTextarea, FieldTypeSelect:
		return true
	}
	return false
}

// Check verifies structural soundness: non-empty unique ids, known types,
// options present exactly for select fields.
func (fs Fields) Check() error {
	seen := make(map[string]bool, len(fs))
	for _, f := range fs {
		if f.ID == "" {
			return fmt.Errorf("%w: field with empty id", ErrInvalidFieldSpec)
		}
		if seen[f.ID] {
			return fmt.Errorf("%w: duplicate field id %q", ErrInvalidFieldSpec, f.ID)
		}
		seen[f.ID] = true
		if !f.Type.valid() {
			return fmt.Errorf("%w: field %q has unknown type %q", ErrInvalidFieldSpec, f.ID, f.Type)
		}
		if f.Type == FieldTypeSelect && len(f.Options) == 0 {
			return fmt.Errorf("%w: select field %q has no options", ErrInvalidFieldSpec, f.ID)
		}
		if f.Type != FieldTypeSelect && len(f.Options) > 0 {
			return fmt.Errorf("%w: field %q has options but is not a select", ErrInvalidFieldSpec, f.ID)
		}
	}
	return nil
}

// Get returns the spec for a field id.
func (fs Fields) Get(id string) (FieldSpec, bool) {
	for _, f := range fs {
		if f.ID == id {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Required returns the specs marked required, in declaration order.
func (fs Fields) Required() Fields {
	var out Fields
	for _, f := range fs {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// JSONSchema compiles the field schema into a JSON Schema document of the
// shape the validator consumes.
func (fs Fields) JSONSchema(title string) map[string]interface{} {
	props := make(map[string]interface{}, len(fs))
	var required []string

	for _, f := range fs {
		prop := map[string]interface{}{
			"title": f.Label,
		}
		switch f.Type {
		case FieldTypeNumber:
			prop["type"] = "number"
		case FieldTypeText, FieldTypeTextarea:
			prop["type"] = "string"
		case FieldTypeDate:
			prop["type"] = "string"
			prop["format"] = "date"
		case FieldTypeSelect:
			prop["type"] = "string"
			enum := make([]interface{}, len(f.Options))
			for i, o := range f.Options {
				enum[i] = o
			}
			prop["enum"] = enum
		}
		props[f.ID] = prop
		if f.Required {
			required = append(required, f.ID)
		}
	}

	doc := map[string]interface{}{
		"type":       "object",
		"title":      title,
		"properties": props,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}
