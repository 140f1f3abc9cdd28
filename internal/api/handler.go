package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"batched/internal/ingredient"
	"batched/internal/recipe"
	"batched/internal/shopping"
)

// RecipeStore defines the interface for recipe data operations.
type RecipeStore interface {
	GetAllRecipes(ctx context.Context) ([]*recipe.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*recipe.Recipe, error)
	CreateRecipe(ctx context.Context, in recipe.RecipeInput) (*recipe.Recipe, error)
	UpdateRecipe(ctx context.Context, in recipe.RecipeInput) (*recipe.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
	DeleteRecipesBulk(ctx context.Context, ids []string) (int64, error)
	GetAllIngredients(ctx context.Context) ([]recipe.Ingredient, error)
	SearchIngredients(ctx context.Context, query string) ([]recipe.Ingredient, error)
}

// Consolidator merges recipe ingredients into a shopping list.
type Consolidator interface {
	Consolidate(ctx context.Context, recipeIDs []string) ([]shopping.ConsolidatedIngredient, error)
}

// Exporter sends a finished shopping list to the external reminders service.
type Exporter interface {
	Export(ctx context.Context, ingredients []shopping.ConsolidatedIngredient) error
}

// CatalogSearcher ranks the static ingredient catalog against a query.
type CatalogSearcher interface {
	Search(query string, limit int) []ingredient.CatalogEntry
	Suggest(query string) (string, bool)
}

// Handler handles HTTP requests.
type Handler struct {
	Store        RecipeStore
	Consolidator Consolidator
	Exporter     Exporter
	Catalog      CatalogSearcher
	Logger       *zap.Logger
	SearchLimit  int
}

// NewHandler creates a new Handler.
func NewHandler(store RecipeStore, consolidator Consolidator, exporter Exporter, catalog CatalogSearcher, logger *zap.Logger) *Handler {
	return &Handler{
		Store:        store,
		Consolidator: consolidator,
		Exporter:     exporter,
		Catalog:      catalog,
		Logger:       logger,
	}
}

// validateIngredients rejects ingredient lines that would persist outside the
// fixed unit enumeration or with a negative quantity. An empty unit and a zero
// quantity are allowed; the store fills their defaults.
func validateIngredients(ingredients []recipe.IngredientInput) error {
	for _, in := range ingredients {
		if in.Unit != "" && !recipe.ValidUnit(in.Unit) {
			return fmt.Errorf("invalid unit %q for ingredient %q", in.Unit, in.DisplayName)
		}
		if in.Quantity < 0 {
			return fmt.Errorf("negative quantity for ingredient %q", in.DisplayName)
		}
	}
	return nil
}

// GetRecipes returns all recipes, newest first.
func (h *Handler) GetRecipes(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	recipes, err := h.Store.GetAllRecipes(ctx)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe returns a single recipe by id.
func (h *Handler) GetRecipe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	r, err := h.Store.GetRecipe(ctx, c.Param("id"))
	if err != nil {
		h.storeError(c, err)
		return
	}
	if r == nil {
		c.String(http.StatusNotFound, "Recipe not found")
		return
	}
	c.JSON(http.StatusOK, r)
}

// CreateRecipe stores a new recipe with its full step and ingredient sets.
func (h *Handler) CreateRecipe(c *gin.Context) {
	var in recipe.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("invalid recipe payload: %s", err.Error()))
		return
	}
	if in.Name == "" {
		c.String(http.StatusBadRequest, "recipe name is required")
		return
	}
	if err := validateIngredients(in.Ingredients); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	r, err := h.Store.CreateRecipe(ctx, in)
	if err != nil {
		h.storeError(c, err)
		return
	}

	h.Logger.Info("recipe created", zap.String("recipe_id", r.ID), zap.String("name", r.Name))
	c.JSON(http.StatusOK, r)
}

// UpdateRecipe replaces a recipe's name, steps, and ingredients.
func (h *Handler) UpdateRecipe(c *gin.Context) {
	var in recipe.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("invalid recipe payload: %s", err.Error()))
		return
	}
	in.ID = c.Param("id")
	if err := validateIngredients(in.Ingredients); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	existing, err := h.Store.GetRecipe(ctx, in.ID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	if existing == nil {
		c.String(http.StatusNotFound, "Recipe not found")
		return
	}

	r, err := h.Store.UpdateRecipe(ctx, in)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeleteRecipe removes a recipe by id.
func (h *Handler) DeleteRecipe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.DeleteRecipe(ctx, c.Param("id")); err != nil {
		h.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkDeleteRequest carries the ids for a bulk recipe delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// DeleteRecipesBulk removes several recipes in one call.
func (h *Handler) DeleteRecipesBulk(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("invalid bulk delete payload: %s", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	deleted, err := h.Store.DeleteRecipesBulk(ctx, req.IDs)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// GetIngredients lists every stored ingredient.
func (h *Handler) GetIngredients(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ingredients, err := h.Store.GetAllIngredients(ctx)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// SearchIngredients finds stored ingredients by display-name substring.
func (h *Handler) SearchIngredients(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, []recipe.Ingredient{})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ingredients, err := h.Store.SearchIngredients(ctx, query)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// SearchCatalog ranks the static catalog against the query.
func (h *Handler) SearchCatalog(c *gin.Context) {
	query := c.Query("q")
	limit := h.SearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	results := h.Catalog.Search(query, limit)
	if results == nil {
		results = []ingredient.CatalogEntry{}
	}
	c.JSON(http.StatusOK, results)
}

// SuggestIngredient offers a "did you mean" from the synonym table when a
// catalog search came up empty.
func (h *Handler) SuggestIngredient(c *gin.Context) {
	query := c.Query("q")
	if suggestion, ok := h.Catalog.Suggest(query); ok {
		c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestion": nil})
}

// ShoppingListRequest selects the recipes to consolidate.
type ShoppingListRequest struct {
	RecipeIDs []string `json:"recipeIds"`
}

// ConsolidateShoppingList builds the merged shopping list for a set of
// recipes. AlreadyHave starts false on every computation; any persistence of
// user toggles across sessions is a client concern.
func (h *Handler) ConsolidateShoppingList(c *gin.Context) {
	var req ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("invalid shopping list payload: %s", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	list, err := h.Consolidator.Consolidate(ctx, req.RecipeIDs)
	if err != nil {
		h.storeError(c, err)
		return
	}
	if list == nil {
		list = []shopping.ConsolidatedIngredient{}
	}
	c.JSON(http.StatusOK, list)
}

// ExportRequest carries a finished shopping list to export.
type ExportRequest struct {
	Ingredients []shopping.ConsolidatedIngredient `json:"ingredients"`
}

// ExportShoppingList sends the list to the reminders service.
func (h *Handler) ExportShoppingList(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("invalid export payload: %s", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	if err := h.Exporter.Export(ctx, req.Ingredients); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.String(http.StatusRequestTimeout, "Reminders export timed out")
			return
		}
		h.Logger.Error("reminders export failed", zap.Error(err))
		c.String(http.StatusBadGateway, fmt.Sprintf("export error: %s", err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"exported": true})
}

func (h *Handler) storeError(c *gin.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		c.String(http.StatusRequestTimeout, "Database query timed out")
		return
	}
	h.Logger.Error("store error", zap.Error(err))
	c.String(http.StatusInternalServerError, fmt.Sprintf("database error: %s", err.Error()))
}
