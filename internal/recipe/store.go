package recipe

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"batched/internal/ingredient"
)

// Store defines the interface for recipe data operations.
type Store interface {
	GetAllRecipes(ctx context.Context) ([]*Recipe, error)
	GetRecipe(ctx context.Context, id string) (*Recipe, error)
	CreateRecipe(ctx context.Context, in RecipeInput) (*Recipe, error)
	UpdateRecipe(ctx context.Context, in RecipeInput) (*Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
	DeleteRecipesBulk(ctx context.Context, ids []string) (int64, error)
	GetAllIngredients(ctx context.Context) ([]Ingredient, error)
	SearchIngredients(ctx context.Context, query string) ([]Ingredient, error)
}

// StepInput is one instruction step supplied on create/update. Step numbers
// are assigned from input order.
type StepInput struct {
	Content string `json:"content"`
}

// IngredientInput is one ingredient line supplied on create/update. Slug is
// set when the entry came from the static catalog.
type IngredientInput struct {
	DisplayName string  `json:"displayName"`
	Slug        string  `json:"slug,omitempty"`
	Quantity    float64 `json:"quantity"`
	Unit        Unit    `json:"unit"`
	Note        string  `json:"note,omitempty"`
}

// RecipeInput carries the full recipe payload. Updates use replace-all
// semantics: the stored step and ingredient sets become exactly these.
type RecipeInput struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Instructions string            `json:"instructions,omitempty"`
	Steps        []StepInput       `json:"steps,omitempty"`
	Ingredients  []IngredientInput `json:"ingredients"`
}

// PostgresStore implements Store for PostgreSQL.
type PostgresStore struct {
	db      *sqlx.DB
	catalog *ingredient.Catalog
}

// NewPostgresStore connects and bootstraps the schema. The catalog resolves
// ingredient images by slug during hydration; it may be empty but not nil.
func NewPostgresStore(dataSourceName string, catalog *ingredient.Catalog) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS recipes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		instructions TEXT,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ingredients (
		id TEXT PRIMARY KEY,
		canonical_name TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		slug TEXT
	);

	CREATE TABLE IF NOT EXISTS recipe_ingredients (
		id TEXT PRIMARY KEY,
		recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		ingredient_id TEXT NOT NULL REFERENCES ingredients(id),
		quantity DOUBLE PRECISION NOT NULL,
		unit TEXT NOT NULL,
		note TEXT
	);

	CREATE TABLE IF NOT EXISTS recipe_steps (
		id TEXT PRIMARY KEY,
		recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		step_number INTEGER NOT NULL,
		content TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_recipe ON recipe_ingredients(recipe_id);
	CREATE INDEX IF NOT EXISTS idx_ingredients_canonical ON ingredients(canonical_name);
	CREATE INDEX IF NOT EXISTS idx_recipe_steps_recipe ON recipe_steps(recipe_id);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &PostgresStore{db: db, catalog: catalog}, nil
}

// Close releases the database connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

type recipeRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Instructions sql.NullString `db:"instructions"`
	CreatedAt    int64          `db:"created_at"`
	UpdatedAt    int64          `db:"updated_at"`
}

// GetAllRecipes returns every recipe, newest first, fully hydrated.
func (s *PostgresStore) GetAllRecipes(ctx context.Context) ([]*Recipe, error) {
	var rows []recipeRow
	if err := s.db.SelectContext(ctx, &rows, "SELECT id, name, instructions, created_at, updated_at FROM recipes ORDER BY updated_at DESC"); err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]*Recipe, 0, len(rows))
	for _, row := range rows {
		r, err := s.hydrate(ctx, row)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// GetRecipe returns a fully hydrated recipe, or nil when the id does not
// exist.
func (s *PostgresStore) GetRecipe(ctx context.Context, id string) (*Recipe, error) {
	var row recipeRow
	err := s.db.GetContext(ctx, &row, "SELECT id, name, instructions, created_at, updated_at FROM recipes WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Recipe not found
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return s.hydrate(ctx, row)
}

func (s *PostgresStore) hydrate(ctx context.Context, row recipeRow) (*Recipe, error) {
	steps, err := s.getRecipeSteps(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.getRecipeIngredients(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return &Recipe{
		ID:           row.ID,
		Name:         row.Name,
		Instructions: row.Instructions.String,
		Steps:        steps,
		Ingredients:  ingredients,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func (s *PostgresStore) getRecipeIngredients(ctx context.Context, recipeID string) ([]RecipeIngredient, error) {
	rows, err := s.db.QueryxContext(ctx,
		`SELECT ri.id, ri.quantity, ri.unit, ri.note, i.id AS ingredient_id, i.canonical_name, i.display_name, i.slug
		 FROM recipe_ingredients ri
		 JOIN ingredients i ON ri.ingredient_id = i.id
		 WHERE ri.recipe_id = $1`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []RecipeIngredient{}
	for rows.Next() {
		var (
			id, unit, ingredientID, canonicalName, displayName string
			quantity                                           float64
			note, slug                                         sql.NullString
		)
		if err := rows.Scan(&id, &quantity, &unit, &note, &ingredientID, &canonicalName, &displayName, &slug); err != nil {
			return nil, fmt.Errorf("failed to scan recipe ingredient row: %w", err)
		}

		// A unit outside the fixed enumeration means the persisted record is
		// corrupted; surface it instead of guessing a family.
		if !ValidUnit(Unit(unit)) {
			return nil, fmt.Errorf("recipe %s has invalid unit %q: corrupted record", recipeID, unit)
		}

		ingredients = append(ingredients, RecipeIngredient{
			ID:       id,
			Quantity: quantity,
			Unit:     Unit(unit),
			Note:     note.String,
			Ingredient: Ingredient{
				ID:            ingredientID,
				CanonicalName: canonicalName,
				DisplayName:   displayName,
				Slug:          slug.String,
				Image:         s.catalog.ImageForSlug(slug.String),
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return ingredients, nil
}

func (s *PostgresStore) getRecipeSteps(ctx context.Context, recipeID string) ([]RecipeStep, error) {
	steps := []RecipeStep{}
	err := s.db.SelectContext(ctx, &steps,
		"SELECT id, step_number, content FROM recipe_steps WHERE recipe_id = $1 ORDER BY step_number ASC", recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe steps: %w", err)
	}
	return steps, nil
}

// CreateRecipe inserts a recipe with its steps and ingredients atomically.
func (s *PostgresStore) CreateRecipe(ctx context.Context, in RecipeInput) (*Recipe, error) {
	now := time.Now().UnixMilli()
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO recipes (id, name, instructions, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)",
		id, in.Name, nullable(in.Instructions), now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert recipe: %w", err)
	}

	if err := s.saveRecipeSteps(ctx, tx, id, in.Steps); err != nil {
		return nil, err
	}
	if err := s.saveRecipeIngredients(ctx, tx, id, in.Ingredients); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit recipe: %w", err)
	}
	return s.GetRecipe(ctx, id)
}

// UpdateRecipe replaces a recipe's name, steps, and ingredient set in one
// transaction (replace-all semantics, not incremental diff).
func (s *PostgresStore) UpdateRecipe(ctx context.Context, in RecipeInput) (*Recipe, error) {
	now := time.Now().UnixMilli()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"UPDATE recipes SET name = $1, instructions = $2, updated_at = $3 WHERE id = $4",
		in.Name, nullable(in.Instructions), now, in.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_steps WHERE recipe_id = $1", in.ID); err != nil {
		return nil, fmt.Errorf("failed to clear recipe steps: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_ingredients WHERE recipe_id = $1", in.ID); err != nil {
		return nil, fmt.Errorf("failed to clear recipe ingredients: %w", err)
	}

	if err := s.saveRecipeSteps(ctx, tx, in.ID, in.Steps); err != nil {
		return nil, err
	}
	if err := s.saveRecipeIngredients(ctx, tx, in.ID, in.Ingredients); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit recipe: %w", err)
	}
	return s.GetRecipe(ctx, in.ID)
}

func (s *PostgresStore) saveRecipeSteps(ctx context.Context, tx *sqlx.Tx, recipeID string, steps []StepInput) error {
	stepNumber := 0
	for _, step := range steps {
		content := strings.TrimSpace(step.Content)
		if content == "" {
			continue
		}
		stepNumber++
		_, err := tx.ExecContext(ctx,
			"INSERT INTO recipe_steps (id, recipe_id, step_number, content) VALUES ($1, $2, $3, $4)",
			uuid.NewString(), recipeID, stepNumber, content)
		if err != nil {
			return fmt.Errorf("failed to insert recipe step: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) saveRecipeIngredients(ctx context.Context, tx *sqlx.Tx, recipeID string, ingredients []IngredientInput) error {
	for _, in := range ingredients {
		// No display name means nothing to resolve; skip silently.
		if in.DisplayName == "" {
			continue
		}

		ing, err := s.getOrCreateIngredient(ctx, tx, in.DisplayName, in.Slug)
		if err != nil {
			return err
		}

		quantity := in.Quantity
		if quantity == 0 {
			quantity = 1
		}
		unit := in.Unit
		if unit == "" {
			unit = UnitPiece
		}
		// Never persist a unit that hydration would reject as corrupted.
		if !ValidUnit(unit) {
			return fmt.Errorf("invalid unit %q for ingredient %q", unit, in.DisplayName)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO recipe_ingredients (id, recipe_id, ingredient_id, quantity, unit, note) VALUES ($1, $2, $3, $4, $5, $6)",
			uuid.NewString(), recipeID, ing.ID, quantity, string(unit), nullable(in.Note))
		if err != nil {
			return fmt.Errorf("failed to insert recipe ingredient: %w", err)
		}
	}
	return nil
}

// getOrCreateIngredient resolves a display name to its Ingredient row,
// creating one on first encounter of a new canonical name. A catalog-sourced
// slug updates the stored slug and display name last-writer-wins.
func (s *PostgresStore) getOrCreateIngredient(ctx context.Context, tx *sqlx.Tx, displayName, slug string) (*Ingredient, error) {
	canonicalName := ingredient.Normalize(displayName)

	var existing struct {
		ID          string         `db:"id"`
		DisplayName string         `db:"display_name"`
		Slug        sql.NullString `db:"slug"`
	}
	err := tx.GetContext(ctx, &existing,
		"SELECT id, display_name, slug FROM ingredients WHERE canonical_name = $1", canonicalName)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up ingredient: %w", err)
	}

	if err == nil {
		if slug != "" {
			_, err = tx.ExecContext(ctx,
				"UPDATE ingredients SET slug = $1, display_name = $2 WHERE id = $3",
				slug, displayName, existing.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to update ingredient: %w", err)
			}
			existing.Slug = sql.NullString{String: slug, Valid: true}
			existing.DisplayName = displayName
		}
		return &Ingredient{
			ID:            existing.ID,
			CanonicalName: canonicalName,
			DisplayName:   existing.DisplayName,
			Slug:          existing.Slug.String,
		}, nil
	}

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		"INSERT INTO ingredients (id, canonical_name, display_name, slug) VALUES ($1, $2, $3, $4)",
		id, canonicalName, displayName, nullable(slug))
	if err != nil {
		return nil, fmt.Errorf("failed to insert ingredient: %w", err)
	}

	return &Ingredient{
		ID:            id,
		CanonicalName: canonicalName,
		DisplayName:   displayName,
		Slug:          slug,
	}, nil
}

// DeleteRecipe removes a recipe; its steps and ingredient links cascade.
func (s *PostgresStore) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// DeleteRecipesBulk removes several recipes at once and reports how many
// existed.
func (s *PostgresStore) DeleteRecipesBulk(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM recipes WHERE id IN (?)", ids)
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk delete: %w", err)
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete recipes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted recipes: %w", err)
	}
	return n, nil
}

// GetAllIngredients lists every known ingredient ordered by display name.
func (s *PostgresStore) GetAllIngredients(ctx context.Context) ([]Ingredient, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, canonical_name, display_name, slug FROM ingredients ORDER BY display_name")
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()
	return scanIngredients(rows)
}

// SearchIngredients finds stored ingredients whose display name contains the
// query, capped at 10.
func (s *PostgresStore) SearchIngredients(ctx context.Context, query string) ([]Ingredient, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, canonical_name, display_name, slug FROM ingredients WHERE display_name ILIKE $1 LIMIT 10",
		"%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}
	defer rows.Close()
	return scanIngredients(rows)
}

func scanIngredients(rows *sqlx.Rows) ([]Ingredient, error) {
	ingredients := []Ingredient{}
	for rows.Next() {
		var (
			id, canonicalName, displayName string
			slug                           sql.NullString
		)
		if err := rows.Scan(&id, &canonicalName, &displayName, &slug); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient row: %w", err)
		}
		ingredients = append(ingredients, Ingredient{
			ID:            id,
			CanonicalName: canonicalName,
			DisplayName:   displayName,
			Slug:          slug.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return ingredients, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
