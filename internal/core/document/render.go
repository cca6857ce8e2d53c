package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/contentdesk/contentdesk/internal/core/schema"
)

// render interpolates the form values into the template skeleton. It reads
// the values, never writes them, so generating is repeatable.
func render(tpl *Template, values FormValues) string {
	body := tpl.Skeleton
	for _, f := range tpl.Fields {
		placeholder := "{{" + f.ID + "}}"
		body = strings.ReplaceAll(body, placeholder, displayValue(f, values[f.ID]))
	}
	return body
}

// displayValue formats one field for the document text. Optional fields left
// empty render as a blank line to fill in by hand.
func displayValue(f schema.FieldSpec, v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "____________"
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return "____________"
		}
		return s
	case float64:
		// JSON numbers arrive as float64. Whole numbers print without a
		// trailing .00.
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', 2, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// documentTitle picks the display title of a generated document.
func documentTitle(tpl *Template) string {
	return tpl.Title
}

// exportFilename derives the download name deterministically from the
// template id.
func exportFilename(tpl *Template) string {
	return tpl.ID + "-document.pdf"
}
