package document

import (
	"context"
	"errors"
	"testing"

	"github.com/contentdesk/contentdesk/internal/core/schema"
)

func TestRegistry_ResolvesBuiltins(t *testing.T) {
	r := NewRegistry(nil)

	tpl, err := r.Get(context.Background(), "rent-agreement")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !tpl.BuiltIn {
		t.Error("rent-agreement should be marked built-in")
	}
	if len(tpl.Fields) != 8 {
		t.Errorf("Expected 8 fields, got %d", len(tpl.Fields))
	}
}

func TestRegistry_DeleteRefusesBuiltins(t *testing.T) {
	r := NewRegistry(nil)

	if err := r.Delete(context.Background(), "nda"); !errors.Is(err, ErrBuiltIn) {
		t.Errorf("Expected ErrBuiltIn, got %v", err)
	}
}

func TestRegistry_CreateRejectsBadSchema(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Create(context.Background(), &CreateTemplateRequest{
		ID:    "broken",
		Title: "Broken",
		Fields: schema.Fields{
			{ID: "x", Label: "X", Type: schema.FieldType("checkbox")},
		},
		Skeleton: "{{x}}",
	})
	if !errors.Is(err, schema.ErrInvalidFieldSpec) {
		t.Errorf("Expected ErrInvalidFieldSpec, got %v", err)
	}
}

func TestRegistry_CreateRejectsBuiltinCollision(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Create(context.Background(), &CreateTemplateRequest{
		ID:    "affidavit",
		Title: "Shadowing Affidavit",
		Fields: schema.Fields{
			{ID: "x", Label: "X", Type: schema.FieldTypeText},
		},
		Skeleton: "{{x}}",
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}
}

func TestBuiltinTemplates_SchemasAreWellFormed(t *testing.T) {
	for _, tpl := range builtinTemplates() {
		if err := tpl.Fields.Check(); err != nil {
			t.Errorf("Template %s has an invalid schema: %v", tpl.ID, err)
		}
	}
}
