package document

import (
	"strings"
	"testing"

	"github.com/contentdesk/contentdesk/internal/core/schema"
)

func TestRender_InterpolatesEveryPlaceholder(t *testing.T) {
	tpl := &Template{
		ID:    "memo",
		Title: "Memo",
		Fields: schema.Fields{
			{ID: "to", Label: "To", Type: schema.FieldTypeText, Required: true},
			{ID: "amount", Label: "Amount", Type: schema.FieldTypeNumber, Required: true},
		},
		Skeleton: "To {{to}}: please remit {{amount}} to {{to}}.",
	}

	got := render(tpl, FormValues{"to": "Accounts", "amount": float64(1500)})
	want := "To Accounts: please remit 1500 to Accounts."
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRender_OptionalEmptyBecomesBlankLine(t *testing.T) {
	tpl := &Template{
		ID:    "memo",
		Title: "Memo",
		Fields: schema.Fields{
			{ID: "note", Label: "Note", Type: schema.FieldTypeTextarea},
		},
		Skeleton: "Note: {{note}}",
	}

	got := render(tpl, FormValues{})
	if !strings.Contains(got, "____") {
		t.Errorf("Empty optional field should render as a blank line, got %q", got)
	}
}

func TestDisplayValue(t *testing.T) {
	f := schema.FieldSpec{ID: "x", Label: "X", Type: schema.FieldTypeText}

	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, "____________"},
		{"blank string", "   ", "____________"},
		{"trimmed string", "  hello  ", "hello"},
		{"whole float", float64(18000), "18000"},
		{"fractional float", float64(10.5), "10.50"},
		{"int", 7, "7"},
		{"bool true", true, "Yes"},
		{"bool false", false, "No"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := displayValue(f, tc.in); got != tc.want {
				t.Errorf("displayValue(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestExportFilename(t *testing.T) {
	tpl := &Template{ID: "nda", Title: "Non-Disclosure Agreement"}
	if got := exportFilename(tpl); got != "nda-document.pdf" {
		t.Errorf("exportFilename() = %q", got)
	}
}

func TestBuiltinSkeletonsRenderCompletely(t *testing.T) {
	for _, tpl := range builtinTemplates() {
		values := FormValues{}
		for _, f := range tpl.Fields {
			switch f.Type {
			case schema.FieldTypeNumber:
				values[f.ID] = float64(1)
			case schema.FieldTypeSelect:
				values[f.ID] = f.Options[0]
			default:
				values[f.ID] = "filled"
			}
		}

		body := render(tpl, values)
		if strings.Contains(body, "{{") || strings.Contains(body, "}}") {
			t.Errorf("Template %s leaves unresolved placeholders:\n%s", tpl.ID, body)
		}
	}
}
