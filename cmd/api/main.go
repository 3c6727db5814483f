package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"debt-coach/internal/api/handlers"
	"debt-coach/internal/api/middleware"
	"debt-coach/internal/cache"
	"debt-coach/internal/history"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("HISTORY_DB_PATH")
	if dbPath == "" {
		dbPath = "./data/history.db"
	}
	store, err := history.Open(dbPath)
	if err != nil {
		slog.Error("Failed to open history store", "error", err, "path", dbPath)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("History store ready", "path", dbPath)

	var resultCache cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		resultCache = cache.NewRedis(addr, 15*time.Minute)
		slog.Info("Using Redis comparison cache", "addr", addr)
	} else {
		resultCache = cache.NewMemory()
		slog.Info("Using in-memory comparison cache")
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler(store, resultCache)
	payoffHandler := handlers.NewPayoffHandler()
	strategyHandler := handlers.NewStrategyHandler()
	budgetHandler := handlers.NewBudgetHandler()
	historyHandler := handlers.NewHistoryHandler(store)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/payoff", payoffHandler.SinglePayoff)
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/simulate/compare", simulateHandler.CompareStrategies)

		api.GET("/strategies", strategyHandler.ListStrategies)
		api.POST("/budget/plan", budgetHandler.PlanBudget)
		api.GET("/history", historyHandler.ListRuns)
	}

	addr := fmt.Sprintf(":%s", port)
	slog.Info("Starting API server", "addr", addr)
	if err := router.Run(addr); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
