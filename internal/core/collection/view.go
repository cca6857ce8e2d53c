package collection

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// View derives a filtered, sorted projection of the collection. The receiver
// and the filter state are never mutated; the result is a fresh slice.
func (s *Store) View(f FilterState) []Record {
	records, _ := s.Snapshot()
	return applyView(s.def, records, f)
}

// Public is the widget-facing projection: active records only, order
// ascending.
func (s *Store) Public() []Record {
	return s.View(FilterState{Status: StatusActive, SortKey: SortOrder})
}

func applyView(def Definition, records []Record, f FilterState) []Record {
	out := records

	if term := strings.ToLower(strings.TrimSpace(f.SearchTerm)); term != "" {
		out = filterRecords(out, func(r Record) bool {
			return matchesSearch(def, r, term)
		})
	}

	for dim, selected := range f.Facets {
		if len(selected) == 0 {
			continue
		}
		dim, selected := dim, selected
		out = filterRecords(out, func(r Record) bool {
			v, ok := stringField(r, dim)
			if !ok {
				return false
			}
			for _, want := range selected {
				if v == want {
					return true
				}
			}
			return false
		})
	}

	switch f.Status {
	case StatusActive:
		out = filterRecords(out, func(r Record) bool { return r.IsActive })
	case StatusInactive:
		out = filterRecords(out, func(r Record) bool { return !r.IsActive })
	}

	sorted := make([]Record, len(out))
	copy(sorted, out)
	sortRecords(def, sorted, f.SortKey)
	return sorted
}

func filterRecords(records []Record, keep func(Record) bool) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// matchesSearch is a case-insensitive substring match over the designated
// searchable fields. No tokenizing, no fuzz.
func matchesSearch(def Definition, r Record, term string) bool {
	for _, id := range def.SearchFields {
		if v, ok := stringField(r, id); ok {
			if strings.Contains(strings.ToLower(v), term) {
				return true
			}
		}
	}
	return false
}

func sortRecords(def Definition, records []Record, key SortKey) {
	switch key {
	case SortPopularity:
		if def.PopularityField != "" {
			sortNumericDesc(records, def.PopularityField)
			return
		}
	case SortRating:
		if def.RatingField != "" {
			sortNumericDesc(records, def.RatingField)
			return
		}
	case SortRecency:
		if def.RecencyField != "" {
			sortRecencyDesc(records, def.RecencyField)
			return
		}
	}

	// Default administrative ordering. Ties keep insertion order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Order < records[j].Order
	})
}

func sortNumericDesc(records []Record, field string) {
	sort.SliceStable(records, func(i, j int) bool {
		a, aok := numberField(records[i], field)
		b, bok := numberField(records[j], field)
		if !aok || !bok {
			return false
		}
		return a > b
	})
}

// sortRecencyDesc orders newest first; records missing the date field keep
// their relative input order.
func sortRecencyDesc(records []Record, field string) {
	sort.SliceStable(records, func(i, j int) bool {
		a, aok := dateField(records[i], field)
		b, bok := dateField(records[j], field)
		if !aok || !bok {
			return false
		}
		return a.After(b)
	})
}

func stringField(r Record, id string) (string, bool) {
	v, ok := r.Fields[id]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func numberField(r Record, id string) (float64, bool) {
	switch v := r.Fields[id].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func dateField(r Record, id string) (time.Time, bool) {
	s, ok := stringField(r, id)
	if !ok || s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
