package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"batched/internal/api"
	"batched/internal/ingredient"
	"batched/internal/platform/reminders"
	"batched/internal/recipe"
	"batched/internal/search"
	"batched/internal/shopping"
)

func main() {
	viper.SetConfigFile("config.json")
	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("catalog_path", "data/ingredients.json")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("search_limit", search.DefaultLimit)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("failed to read config.json: %w", err))
	}

	logger, err := newLogger(viper.GetString("log_level"))
	if err != nil {
		panic(fmt.Errorf("failed to build logger: %w", err))
	}
	defer logger.Sync()

	catalog, err := ingredient.LoadCatalog(viper.GetString("catalog_path"))
	if err != nil {
		panic(fmt.Errorf("failed to load ingredient catalog: %w", err))
	}
	logger.Info("catalog loaded", zap.Int("entries", len(catalog.Entries())))

	store, err := recipe.NewPostgresStore(viper.GetString("database_url"), catalog)
	if err != nil {
		panic(fmt.Errorf("error creating postgres store: %w", err))
	}
	defer store.Close()

	engine := search.NewEngine(catalog)
	consolidator := shopping.NewConsolidator(store)
	exporter := reminders.NewClient(viper.GetString("reminders_url"))

	handler := api.NewHandler(store, consolidator, exporter, engine, logger)
	handler.SearchLimit = viper.GetInt("search_limit")

	r := gin.Default()

	// Configure CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/recipes", handler.GetRecipes)
	r.GET("/recipes/:id", handler.GetRecipe)
	r.POST("/recipes", handler.CreateRecipe)
	r.PUT("/recipes/:id", handler.UpdateRecipe)
	r.DELETE("/recipes/:id", handler.DeleteRecipe)
	r.POST("/recipes/bulk-delete", handler.DeleteRecipesBulk)
	r.GET("/ingredients", handler.GetIngredients)
	r.GET("/ingredients/search", handler.SearchIngredients)
	r.GET("/ingredients/suggest", handler.SuggestIngredient)
	r.GET("/catalog/search", handler.SearchCatalog)
	r.POST("/shopping-list", handler.ConsolidateShoppingList)
	r.POST("/shopping-list/export", handler.ExportShoppingList)

	logger.Info("starting server", zap.String("addr", viper.GetString("listen_addr")))
	if err := r.Run(viper.GetString("listen_addr")); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl
	return cfg.Build()
}
