package document

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

func (r *Repository) Create(ctx context.Context, tpl *Template) error {
	fields, err := json.Marshal(tpl.Fields)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO document_templates (id, title, description, fields, skeleton)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.DB.QueryRowContext(ctx, query,
		tpl.ID, tpl.Title, tpl.Description, fields, tpl.Skeleton,
	).Scan(&tpl.CreatedAt, &tpl.UpdatedAt)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Template, error) {
	query := `
		SELECT id, title, description, fields, skeleton, created_at, updated_at
		FROM document_templates
		WHERE id = $1`

	tpl := &Template{}
	var fields []byte
	var description sql.NullString

	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(
		&tpl.ID, &tpl.Title, &description, &fields, &tpl.Skeleton, &tpl.CreatedAt, &tpl.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	tpl.Description = description.String
	if err := json.Unmarshal(fields, &tpl.Fields); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (r *Repository) List(ctx context.Context) ([]*Template, error) {
	query := `
		SELECT id, title, description, fields, skeleton, created_at, updated_at
		FROM document_templates
		ORDER BY created_at DESC`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*Template
	for rows.Next() {
		tpl := &Template{}
		var fields []byte
		var description sql.NullString

		if err := rows.Scan(&tpl.ID, &tpl.Title, &description, &fields, &tpl.Skeleton, &tpl.CreatedAt, &tpl.UpdatedAt); err != nil {
			return nil, err
		}

		tpl.Description = description.String
		var fs schema.Fields
		if err := json.Unmarshal(fields, &fs); err != nil {
			return nil, err
		}
		tpl.Fields = fs
		templates = append(templates, tpl)
	}

	return templates, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM document_templates WHERE id = $1`
	_, err := r.db.DB.ExecContext(ctx, query, id)
	return err
}
