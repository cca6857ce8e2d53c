package collection

import (
	"testing"

	"github.com/contentdesk/contentdesk/internal/core/schema"
)

func resourceDefinition() Definition {
	return Definition{
		Name:  "exam-resources",
		Title: "Exam Resources",
		Fields: schema.Fields{
			{ID: "title", Label: "Title", Type: schema.FieldTypeText, Required: true},
			{ID: "subject", Label: "Subject", Type: schema.FieldTypeSelect, Required: true,
				Options: []string{"History", "Polity", "Economy"}},
			{ID: "type", Label: "Type", Type: schema.FieldTypeSelect, Required: true,
				Options: []string{"Notes", "Mock Test"}},
			{ID: "downloads", Label: "Downloads", Type: schema.FieldTypeNumber, Required: false},
			{ID: "rating", Label: "Rating", Type: schema.FieldTypeNumber, Required: false},
			{ID: "uploadedAt", Label: "Uploaded", Type: schema.FieldTypeDate, Required: false},
		},
		SearchFields:    []string{"title", "subject"},
		FacetFields:     []string{"subject", "type"},
		PopularityField: "downloads",
		RatingField:     "rating",
		RecencyField:    "uploadedAt",
	}
}

func resourceStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(resourceDefinition(), nil)
	add := func(fields map[string]interface{}, active bool) {
		if _, err := s.Add(fields, active); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	add(map[string]interface{}{
		"title": "Modern History Notes", "subject": "History", "type": "Notes",
		"downloads": float64(120), "rating": float64(5), "uploadedAt": "2024-03-01",
	}, true)
	add(map[string]interface{}{
		"title": "Polity Mock Test 1", "subject": "Polity", "type": "Mock Test",
		"downloads": float64(300), "rating": float64(3),
	}, true)
	add(map[string]interface{}{
		"title": "Economy Survey Digest", "subject": "Economy", "type": "Notes",
		"downloads": float64(45), "rating": float64(4), "uploadedAt": "2024-06-15",
	}, false)
	return s
}

func titles(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i], _ = stringField(r, "title")
	}
	return out
}

func TestView_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	s := resourceStore(t)

	got := s.View(FilterState{SearchTerm: "HISTORY"})
	if len(got) != 1 || got[0].Fields["title"] != "Modern History Notes" {
		t.Errorf("Expected only the history record, got %v", titles(got))
	}

	// Secondary search field (subject) also matches
	got = s.View(FilterState{SearchTerm: "polity"})
	if len(got) != 1 || got[0].Fields["title"] != "Polity Mock Test 1" {
		t.Errorf("Expected the polity record, got %v", titles(got))
	}

	if got := s.View(FilterState{SearchTerm: "no such thing"}); len(got) != 0 {
		t.Errorf("Expected empty view, got %v", titles(got))
	}
}

func TestView_FacetsAndAcrossDimensionsOrWithin(t *testing.T) {
	s := resourceStore(t)

	// OR within a dimension
	got := s.View(FilterState{Facets: map[string][]string{
		"subject": {"History", "Economy"},
	}})
	if len(got) != 2 {
		t.Fatalf("Expected 2 records for subject in {History, Economy}, got %v", titles(got))
	}

	// AND across dimensions narrows further
	got = s.View(FilterState{Facets: map[string][]string{
		"subject": {"History", "Economy"},
		"type":    {"Notes"},
	}})
	if len(got) != 2 {
		t.Fatalf("Both matching records are Notes, got %v", titles(got))
	}

	got = s.View(FilterState{Facets: map[string][]string{
		"subject": {"History", "Economy"},
		"type":    {"Mock Test"},
	}})
	if len(got) != 0 {
		t.Errorf("No history/economy mock tests exist, got %v", titles(got))
	}

	// Empty selected-set for a dimension is ignored
	got = s.View(FilterState{Facets: map[string][]string{"subject": {}}})
	if len(got) != 3 {
		t.Errorf("Empty facet selection should not filter, got %d records", len(got))
	}
}

func TestView_AddingFacetNeverGrowsResult(t *testing.T) {
	s := resourceStore(t)

	base := s.View(FilterState{Facets: map[string][]string{"subject": {"History", "Polity", "Economy"}}})
	narrowed := s.View(FilterState{Facets: map[string][]string{
		"subject": {"History", "Polity", "Economy"},
		"type":    {"Notes"},
	}})

	if len(narrowed) > len(base) {
		t.Errorf("Adding a facet constraint grew the result: %d -> %d", len(base), len(narrowed))
	}
}

func TestView_StatusFilter(t *testing.T) {
	s := resourceStore(t)

	if got := s.View(FilterState{Status: StatusActive}); len(got) != 2 {
		t.Errorf("Expected 2 active records, got %v", titles(got))
	}
	if got := s.View(FilterState{Status: StatusInactive}); len(got) != 1 {
		t.Errorf("Expected 1 inactive record, got %v", titles(got))
	}
	if got := s.View(FilterState{Status: StatusAll}); len(got) != 3 {
		t.Errorf("Expected all 3 records, got %v", titles(got))
	}
}

func TestView_SortByRatingDescending(t *testing.T) {
	s := resourceStore(t)

	got := titles(s.View(FilterState{SortKey: SortRating}))
	want := []string{"Modern History Notes", "Economy Survey Digest", "Polity Mock Test 1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Rating sort: expected %v, got %v", want, got)
		}
	}
}

func TestView_SortByPopularityDescending(t *testing.T) {
	s := resourceStore(t)

	got := titles(s.View(FilterState{SortKey: SortPopularity}))
	want := []string{"Polity Mock Test 1", "Modern History Notes", "Economy Survey Digest"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Popularity sort: expected %v, got %v", want, got)
		}
	}
}

func TestView_RecencyOrdersDatedRecordsNewestFirst(t *testing.T) {
	s := NewStore(resourceDefinition(), nil)
	s.Add(map[string]interface{}{
		"title": "March Notes", "subject": "History", "type": "Notes", "uploadedAt": "2024-03-01",
	}, true)
	s.Add(map[string]interface{}{
		"title": "June Notes", "subject": "Polity", "type": "Notes", "uploadedAt": "2024-06-15",
	}, true)
	s.Add(map[string]interface{}{
		"title": "Undated Notes", "subject": "Economy", "type": "Notes",
	}, true)

	got := titles(s.View(FilterState{SortKey: SortRecency}))
	// Dated records go newest first; the undated one is never compared by
	// date and keeps its input position.
	want := []string{"June Notes", "March Notes", "Undated Notes"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Recency sort: expected %v, got %v", want, got)
		}
	}
}

func TestView_DefaultSortIsOrderAscendingAndStable(t *testing.T) {
	s := NewStore(resourceDefinition(), nil)
	a, _ := s.Add(map[string]interface{}{"title": "A", "subject": "History", "type": "Notes"}, true)
	b, _ := s.Add(map[string]interface{}{"title": "B", "subject": "History", "type": "Notes"}, true)
	c, _ := s.Add(map[string]interface{}{"title": "C", "subject": "History", "type": "Notes"}, true)

	s.Reorder(c.ID, 1)
	s.Reorder(a.ID, 1)

	got := s.View(FilterState{})
	// a and c share order 1; insertion order breaks the tie (a before c),
	// then b with order 2.
	if got[0].ID != a.ID || got[1].ID != c.ID || got[2].ID != b.ID {
		t.Errorf("Stable order sort violated: got %v", titles(got))
	}
}

func TestView_EqualSortKeysKeepSourceOrder(t *testing.T) {
	s := NewStore(resourceDefinition(), nil)
	first, _ := s.Add(map[string]interface{}{
		"title": "First", "subject": "History", "type": "Notes", "rating": float64(4),
	}, true)
	second, _ := s.Add(map[string]interface{}{
		"title": "Second", "subject": "Polity", "type": "Notes", "rating": float64(4),
	}, true)

	got := s.View(FilterState{SortKey: SortRating})
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Error("Records with equal ratings must keep their source order")
	}
}

func TestView_DoesNotMutateCollection(t *testing.T) {
	s := resourceStore(t)

	before := titles(s.View(FilterState{}))

	// Run a pile of filtered and sorted views
	s.View(FilterState{SearchTerm: "notes"})
	s.View(FilterState{SortKey: SortPopularity})
	s.View(FilterState{SortKey: SortRating, Status: StatusActive})
	s.View(FilterState{Facets: map[string][]string{"type": {"Notes"}}, SortKey: SortRecency})

	after := titles(s.View(FilterState{}))
	if len(before) != len(after) {
		t.Fatalf("View changed collection size: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("View mutated the canonical collection: %v -> %v", before, after)
		}
	}
}

func TestView_ResultIsSubsetOfCollection(t *testing.T) {
	s := resourceStore(t)
	all, _ := s.Snapshot()
	ids := make(map[string]bool, len(all))
	for _, r := range all {
		ids[r.ID] = true
	}

	got := s.View(FilterState{SearchTerm: "e", Status: StatusActive, SortKey: SortRating})
	if len(got) > len(all) {
		t.Fatalf("View returned more records than the collection holds")
	}
	for _, r := range got {
		if !ids[r.ID] {
			t.Errorf("View invented record %s", r.ID)
		}
	}
}

func TestPublic_ExcludesInactiveAndOrdersAscending(t *testing.T) {
	s := resourceStore(t)

	got := s.Public()
	if len(got) != 2 {
		t.Fatalf("Expected 2 public records, got %d", len(got))
	}
	for _, r := range got {
		if !r.IsActive {
			t.Error("Public projection must not contain inactive records")
		}
	}
	if got[0].Order > got[1].Order {
		t.Error("Public projection should be ordered ascending")
	}
}
