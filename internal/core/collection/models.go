package collection

import (
	"time"

	"github.com/contentdesk/contentdesk/internal/core/schema"
)

// Record is one editable entry of a collection. Domain fields live in Fields
// and are shaped by the collection definition's schema.
type Record struct {
	ID           string                 `json:"id"`
	Order        int                    `json:"order"`
	IsActive     bool                   `json:"isActive"`
	Fields       map[string]interface{} `json:"fields"`
	CreatedDate  string                 `json:"createdDate,omitempty"`
	LastModified string                 `json:"lastModified,omitempty"`
}

// Definition describes a named collection: its field schema plus which fields
// drive search, facets and the sort keys.
type Definition struct {
	Name         string        `json:"name"`
	Title        string        `json:"title"`
	Fields       schema.Fields `json:"fields"`
	SearchFields []string      `json:"search_fields"`
	FacetFields  []string      `json:"facet_fields"`

	// Source fields for the non-default sort keys. Empty means the key is
	// not meaningful for this collection and falls back to order.
	PopularityField string `json:"popularity_field,omitempty"`
	RatingField     string `json:"rating_field,omitempty"`
	RecencyField    string `json:"recency_field,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SortKey string

const (
	SortOrder      SortKey = "order"
	SortPopularity SortKey = "popularity"
	SortRating     SortKey = "rating"
	SortRecency    SortKey = "recency"
)

type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

// FilterState is the ephemeral view configuration. Applying it never touches
// the underlying collection.
type FilterState struct {
	SearchTerm string              `json:"search_term"`
	Facets     map[string][]string `json:"facets"`
	Status     StatusFilter        `json:"status"`
	SortKey    SortKey             `json:"sort_key"`
}

type AddRecordRequest struct {
	Fields   map[string]interface{} `json:"fields" binding:"required"`
	IsActive *bool                  `json:"isActive"`
}

type UpdateRecordRequest struct {
	Fields map[string]interface{} `json:"fields" binding:"required"`
}

type ReorderRequest struct {
	Order int `json:"order"`
}

type CollectionResponse struct {
	Definition *Definition `json:"definition"`
	Records    []Record    `json:"records"`
	Total      int         `json:"total"`
	Dirty      bool        `json:"dirty"`
}

type ViewResponse struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}
