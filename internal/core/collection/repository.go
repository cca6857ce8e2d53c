package collection

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/contentdesk/contentdesk/internal/core/schema"
	"github.com/contentdesk/contentdesk/internal/storage/postgres"
)

type Repository struct {
	db *postgres.Client
}

func NewRepository(db *postgres.Client) *Repository {
	return &Repository{db: db}
}

// defConfig is the JSONB payload of a definition row. Name, title and
// timestamps live in their own columns.
type defConfig struct {
	Fields          schema.Fields `json:"fields"`
	SearchFields    []string      `json:"search_fields"`
	FacetFields     []string      `json:"facet_fields"`
	PopularityField string        `json:"popularity_field,omitempty"`
	RatingField     string        `json:"rating_field,omitempty"`
	RecencyField    string        `json:"recency_field,omitempty"`
}

func (r *Repository) SaveDefinition(ctx context.Context, def *Definition) error {
	config, err := json.Marshal(defConfig{
		Fields:          def.Fields,
		SearchFields:    def.SearchFields,
		FacetFields:     def.FacetFields,
		PopularityField: def.PopularityField,
		RatingField:     def.RatingField,
		RecencyField:    def.RecencyField,
	})
	if err != nil {
		return err
	}

	query := `
		INSERT INTO collection_definitions (name, title, config)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET title = EXCLUDED.title, config = EXCLUDED.config, updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at`

	return r.db.DB.QueryRowContext(ctx, query, def.Name, def.Title, config).
		Scan(&def.CreatedAt, &def.UpdatedAt)
}

func (r *Repository) GetDefinition(ctx context.Context, name string) (*Definition, error) {
	query := `
		SELECT name, title, config, created_at, updated_at
		FROM collection_definitions
		WHERE name = $1`

	def := &Definition{}
	var config []byte

	err := r.db.DB.QueryRowContext(ctx, query, name).Scan(
		&def.Name, &def.Title, &config, &def.CreatedAt, &def.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := applyConfig(def, config); err != nil {
		return nil, err
	}
	return def, nil
}

func (r *Repository) ListDefinitions(ctx context.Context) ([]*Definition, error) {
	query := `
		SELECT name, title, config, created_at, updated_at
		FROM collection_definitions
		ORDER BY name`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []*Definition
	for rows.Next() {
		def := &Definition{}
		var config []byte
		if err := rows.Scan(&def.Name, &def.Title, &config, &def.CreatedAt, &def.UpdatedAt); err != nil {
			return nil, err
		}
		if err := applyConfig(def, config); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, rows.Err()
}

// GetSnapshot loads the last persisted records of a collection. A collection
// that has never been persisted yields an empty slice.
func (r *Repository) GetSnapshot(ctx context.Context, name string) ([]Record, error) {
	query := `SELECT records FROM collection_snapshots WHERE name = $1`

	var payload []byte
	err := r.db.DB.QueryRowContext(ctx, query, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return []Record{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveSnapshot replaces the stored records wholesale. Last write wins; there
// is no version token.
func (r *Repository) SaveSnapshot(ctx context.Context, name string, records []Record) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO collection_snapshots (name, records)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE
		SET records = EXCLUDED.records, updated_at = CURRENT_TIMESTAMP`

	_, err = r.db.DB.ExecContext(ctx, query, name, payload)
	return err
}

func applyConfig(def *Definition, config []byte) error {
	var c defConfig
	if err := json.Unmarshal(config, &c); err != nil {
		return err
	}
	def.Fields = c.Fields
	def.SearchFields = c.SearchFields
	def.FacetFields = c.FacetFields
	def.PopularityField = c.PopularityField
	def.RatingField = c.RatingField
	def.RecencyField = c.RecencyField
	return nil
}
