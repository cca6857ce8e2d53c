package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/contentdesk/contentdesk/internal/core/schema"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	var msgs []string
	for _, err := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(msgs, "; ")
}

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks data against a JSON Schema document. All violations are
// collected, never just the first.
func (v *Validator) Validate(data map[string]interface{}, jsonSchema map[string]interface{}) error {
	if len(jsonSchema) == 0 {
		// No schema defined, allow any data
		return nil
	}

	schemaJSON, err := json.Marshal(jsonSchema)
	if err != nil {
		return err
	}

	dataJSON, err := json.Marshal(data)
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(dataJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return err
	}

	if !result.Valid() {
		var validationErrors []ValidationError
		for _, desc := range result.Errors() {
			validationErrors = append(validationErrors, ValidationError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return &ValidationErrors{Errors: validationErrors}
	}

	return nil
}

// ValidatePartial validates a partial update: the required constraint is
// stripped so absent fields do not fail.
func (v *Validator) ValidatePartial(data map[string]interface{}, jsonSchema map[string]interface{}) error {
	if len(jsonSchema) == 0 {
		return nil
	}

	partialSchema := make(map[string]interface{})
	for k, val := range jsonSchema {
		if k != "required" {
			partialSchema[k] = val
		}
	}

	return v.Validate(data, partialSchema)
}

// CheckRequired reports every required field whose value is missing or blank
// after trimming whitespace. JSON Schema's required keyword accepts
// whitespace-only strings, so form submission goes through this instead.
func (v *Validator) CheckRequired(values map[string]interface{}, fields schema.Fields) error {
	var violations []ValidationError
	for _, f := range fields.Required() {
		if isBlank(values[f.ID]) {
			violations = append(violations, ValidationError{
				Field:   f.ID,
				Message: fmt.Sprintf("%s is required", f.Label),
			})
		}
	}
	if len(violations) > 0 {
		return &ValidationErrors{Errors: violations}
	}
	return nil
}

func isBlank(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	default:
		return false
	}
}

func IsValidationError(err error) bool {
	var ve *ValidationErrors
	return errors.As(err, &ve)
}

func GetValidationErrors(err error) *ValidationErrors {
	var ve *ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
