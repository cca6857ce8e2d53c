package validation

import (
	"testing"

	"github.com/contentdesk/contentdesk/internal/core/schema"
)

func rentFields() schema.Fields {
	return schema.Fields{
		{ID: "landlordName", Label: "Landlord Name", Type: schema.FieldTypeText, Required: true},
		{ID: "tenantName", Label: "Tenant Name", Type: schema.FieldTypeText, Required: true},
		{ID: "propertyAddress", Label: "Property Address", Type: schema.FieldTypeTextarea, Required: true},
		{ID: "rentAmount", Label: "Monthly Rent", Type: schema.FieldTypeNumber, Required: true},
		{ID: "depositAmount", Label: "Security Deposit", Type: schema.FieldTypeNumber, Required: true},
		{ID: "duration", Label: "Duration", Type: schema.FieldTypeNumber, Required: true},
		{ID: "startDate", Label: "Start Date", Type: schema.FieldTypeDate, Required: true},
		{ID: "specialTerms", Label: "Special Terms", Type: schema.FieldTypeTextarea, Required: false},
	}
}

func TestCheckRequired_ReportsEveryMissingField(t *testing.T) {
	v := NewValidator()

	err := v.CheckRequired(map[string]interface{}{
		"landlordName": "A. Sharma",
	}, rentFields())

	ve := GetValidationErrors(err)
	if ve == nil {
		t.Fatal("Expected validation errors")
	}
	// 7 required fields, 1 filled: exactly 6 violations, not fail-fast-one
	if len(ve.Errors) != 6 {
		t.Fatalf("Expected 6 violations, got %d: %v", len(ve.Errors), ve.Errors)
	}
	for _, e := range ve.Errors {
		if e.Field == "landlordName" {
			t.Error("Filled field must not be reported")
		}
		if e.Field == "specialTerms" {
			t.Error("Optional field must not be reported")
		}
	}
}

func TestCheckRequired_WhitespaceOnlyIsMissing(t *testing.T) {
	v := NewValidator()

	fields := schema.Fields{{ID: "name", Label: "Name", Type: schema.FieldTypeText, Required: true}}
	err := v.CheckRequired(map[string]interface{}{"name": "   \t"}, fields)

	ve := GetValidationErrors(err)
	if ve == nil || len(ve.Errors) != 1 || ve.Errors[0].Field != "name" {
		t.Errorf("Whitespace-only value should count as missing, got %v", err)
	}
}

func TestCheckRequired_NonStringValuesCount(t *testing.T) {
	v := NewValidator()

	fields := schema.Fields{{ID: "rating", Label: "Rating", Type: schema.FieldTypeNumber, Required: true}}
	if err := v.CheckRequired(map[string]interface{}{"rating": float64(0)}, fields); err != nil {
		t.Errorf("A present number should satisfy required, got %v", err)
	}
}

func TestCheckRequired_AllFilled(t *testing.T) {
	v := NewValidator()

	err := v.CheckRequired(map[string]interface{}{
		"landlordName":    "A. Sharma",
		"tenantName":      "R. Verma",
		"propertyAddress": "12 Lake Road",
		"rentAmount":      float64(18000),
		"depositAmount":   float64(54000),
		"duration":        float64(11),
		"startDate":       "2025-04-01",
	}, rentFields())
	if err != nil {
		t.Errorf("Fully filled form should validate, got %v", err)
	}
}

func TestValidate_TypeViolations(t *testing.T) {
	v := NewValidator()
	jsonSchema := rentFields().JSONSchema("Rent Agreement")

	err := v.Validate(map[string]interface{}{
		"landlordName":    "A. Sharma",
		"tenantName":      "R. Verma",
		"propertyAddress": "12 Lake Road",
		"rentAmount":      "not a number",
		"depositAmount":   float64(54000),
		"duration":        float64(11),
		"startDate":       "2025-04-01",
	}, jsonSchema)

	if !IsValidationError(err) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	ve := GetValidationErrors(err)
	found := false
	for _, e := range ve.Errors {
		if e.Field == "rentAmount" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a violation on rentAmount, got %v", ve.Errors)
	}
}

func TestValidate_EmptySchemaAllowsAnything(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(map[string]interface{}{"anything": 42}, nil); err != nil {
		t.Errorf("Nil schema should allow any data, got %v", err)
	}
}

func TestValidatePartial_IgnoresMissingRequiredFields(t *testing.T) {
	v := NewValidator()
	jsonSchema := rentFields().JSONSchema("Rent Agreement")

	// Only one field supplied; required constraint must not fire
	if err := v.ValidatePartial(map[string]interface{}{"tenantName": "R. Verma"}, jsonSchema); err != nil {
		t.Errorf("Partial update with one valid field should pass, got %v", err)
	}

	// Type errors still fire
	err := v.ValidatePartial(map[string]interface{}{"rentAmount": "oops"}, jsonSchema)
	if !IsValidationError(err) {
		t.Errorf("Partial update with a type violation should fail, got %v", err)
	}
}

func TestIsValidationError(t *testing.T) {
	if IsValidationError(nil) {
		t.Error("nil is not a validation error")
	}
	err := &ValidationErrors{Errors: []ValidationError{{Field: "x", Message: "x is required"}}}
	if !IsValidationError(err) {
		t.Error("ValidationErrors should be recognized")
	}
	if err.Error() != "x: x is required" {
		t.Errorf("Unexpected error string: %q", err.Error())
	}
}
