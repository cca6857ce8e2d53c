package main

import (
	"context"
	"fmt"
	"log"

	"github.com/contentdesk/contentdesk/config"
	"github.com/contentdesk/contentdesk/internal/core/collection"
	"github.com/contentdesk/contentdesk/internal/core/schema"
	"github.com/contentdesk/contentdesk/internal/storage/postgres"
)

// Bootstraps the database: creates the tables and seeds the collection
// definitions every admin page edits. Safe to run repeatedly; definitions
// are upserted and existing snapshots are left alone.
func main() {
	cfg := config.Load()

	db, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := createTables(ctx, db); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	repo := collection.NewRepository(db)
	for _, def := range seedDefinitions() {
		if err := def.Fields.Check(); err != nil {
			log.Fatalf("Invalid seed definition %q: %v", def.Name, err)
		}
		if err := repo.SaveDefinition(ctx, def); err != nil {
			log.Fatalf("Failed to seed collection %q: %v", def.Name, err)
		}
		fmt.Printf("Seeded collection definition: %s\n", def.Name)
	}

	fmt.Println("Database initialized")
}

func createTables(ctx context.Context, db *postgres.Client) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS collection_definitions (
			name TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			config JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS collection_snapshots (
			name TEXT PRIMARY KEY REFERENCES collection_definitions(name) ON DELETE CASCADE,
			records JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS document_templates (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			fields JSONB NOT NULL,
			skeleton TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func seedDefinitions() []*collection.Definition {
	return []*collection.Definition{
		{
			Name:  "faqs",
			Title: "Frequently Asked Questions",
			Fields: schema.Fields{
				{ID: "question", Label: "Question", Type: schema.FieldTypeText, Required: true},
				{ID: "answer", Label: "Answer", Type: schema.FieldTypeTextarea, Required: true},
				{ID: "category", Label: "Category", Type: schema.FieldTypeSelect, Required: true,
					Options: []string{"General", "Donations", "Volunteering", "Programs"}},
			},
			SearchFields: []string{"question", "answer"},
			FacetFields:  []string{"category"},
		},
		{
			Name:  "testimonials",
			Title: "Testimonials",
			Fields: schema.Fields{
				{ID: "quote", Label: "Quote", Type: schema.FieldTypeTextarea, Required: true},
				{ID: "name", Label: "Name", Type: schema.FieldTypeText, Required: true},
				{ID: "role", Label: "Role", Type: schema.FieldTypeText, Required: false},
				{ID: "rating", Label: "Rating", Type: schema.FieldTypeNumber, Required: true},
				{ID: "photoUrl", Label: "Photo URL", Type: schema.FieldTypeText, Required: false},
			},
			SearchFields: []string{"name", "quote"},
			FacetFields:  []string{"role"},
			RatingField:  "rating",
		},
		{
			Name:  "team-members",
			Title: "Team Members",
			Fields: schema.Fields{
				{ID: "name", Label: "Name", Type: schema.FieldTypeText, Required: true},
				{ID: "role", Label: "Role", Type: schema.FieldTypeText, Required: true},
				{ID: "bio", Label: "Bio", Type: schema.FieldTypeTextarea, Required: false},
				{ID: "photoUrl", Label: "Photo URL", Type: schema.FieldTypeText, Required: false},
				{ID: "department", Label: "Department", Type: schema.FieldTypeSelect, Required: true,
					Options: []string{"Leadership", "Programs", "Outreach", "Operations"}},
			},
			SearchFields: []string{"name", "role"},
			FacetFields:  []string{"department"},
		},
		{
			Name:  "topper-stories",
			Title: "Topper Stories",
			Fields: schema.Fields{
				{ID: "name", Label: "Student Name", Type: schema.FieldTypeText, Required: true},
				{ID: "exam", Label: "Exam", Type: schema.FieldTypeSelect, Required: true,
					Options: []string{"UPSC", "SSC", "Banking", "Railways", "State PSC"}},
				{ID: "rank", Label: "Rank", Type: schema.FieldTypeNumber, Required: true},
				{ID: "story", Label: "Story", Type: schema.FieldTypeTextarea, Required: true},
				{ID: "year", Label: "Year", Type: schema.FieldTypeNumber, Required: true},
				{ID: "publishedAt", Label: "Published", Type: schema.FieldTypeDate, Required: false},
			},
			SearchFields: []string{"name", "exam", "story"},
			FacetFields:  []string{"exam"},
			RecencyField: "publishedAt",
		},
		{
			Name:  "exam-resources",
			Title: "Exam Resources",
			Fields: schema.Fields{
				{ID: "title", Label: "Title", Type: schema.FieldTypeText, Required: true},
				{ID: "subject", Label: "Subject", Type: schema.FieldTypeSelect, Required: true,
					Options: []string{"History", "Geography", "Polity", "Economy", "Science", "Current Affairs"}},
				{ID: "type", Label: "Type", Type: schema.FieldTypeSelect, Required: true,
					Options: []string{"Notes", "Previous Papers", "Mock Test", "Syllabus"}},
				{ID: "fileUrl", Label: "File URL", Type: schema.FieldTypeText, Required: true},
				{ID: "downloads", Label: "Downloads", Type: schema.FieldTypeNumber, Required: false},
				{ID: "uploadedAt", Label: "Uploaded", Type: schema.FieldTypeDate, Required: false},
			},
			SearchFields:    []string{"title", "subject"},
			FacetFields:     []string{"subject", "type"},
			PopularityField: "downloads",
			RecencyField:    "uploadedAt",
		},
		{
			Name:  "cta-buttons",
			Title: "Call-to-Action Buttons",
			Fields: schema.Fields{
				{ID: "label", Label: "Label", Type: schema.FieldTypeText, Required: true},
				{ID: "url", Label: "Target URL", Type: schema.FieldTypeText, Required: true},
				{ID: "style", Label: "Style", Type: schema.FieldTypeSelect, Required: true,
					Options: []string{"primary", "secondary", "outline"}},
			},
			SearchFields: []string{"label"},
			FacetFields:  []string{"style"},
		},
		{
			Name:  "hero-banners",
			Title: "Hero Banners",
			Fields: schema.Fields{
				{ID: "heading", Label: "Heading", Type: schema.FieldTypeText, Required: true},
				{ID: "subheading", Label: "Subheading", Type: schema.FieldTypeText, Required: false},
				{ID: "imageUrl", Label: "Background Image URL", Type: schema.FieldTypeText, Required: false},
				{ID: "videoUrl", Label: "Background Video URL", Type: schema.FieldTypeText, Required: false},
			},
			SearchFields: []string{"heading"},
		},
	}
}
