package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wealthguard/internal/assets"
	"wealthguard/internal/cache"
	"wealthguard/internal/config"
	"wealthguard/internal/handlers"
	"wealthguard/internal/ledger"
	"wealthguard/internal/logger"
	"wealthguard/internal/middleware"
	"wealthguard/internal/notify"
	"wealthguard/internal/pricefeed"
	"wealthguard/internal/spending"
	"wealthguard/internal/tracker"
	"wealthguard/internal/validator"

	_ "wealthguard/internal/docs" // Import swagger docs
)

// @title           WealthGuard API
// @version         1.0
// @description     WealthGuard is a personal finance tracker that records assets and spending, computes net worth, and keeps local state in sync with a remote ledger.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the local cache
	store, err := cache.Open(appConfig.CachePath)
	if err != nil {
		return fmt.Errorf("failed to open local cache: %w", err)
	}
	defer func() { _ = store.Close() }()

	// External collaborators share one bounded HTTP client
	httpClient := &http.Client{Timeout: appConfig.RequestTimeout}
	ledgerClient := ledger.NewClient(appConfig.LedgerBaseURL, appConfig.LedgerAPIKey, httpClient)
	feeds := []pricefeed.Feed{
		pricefeed.NewCoinGeckoFeed(httpClient, appConfig.HomeCurrency),
		pricefeed.NewYahooChartFeed(httpClient, appConfig.ExchangeSuffix),
	}
	notifier := notify.NewLogNotifier(log)

	// Initialize synchronization engines
	assetEngine := assets.NewEngine(ledgerClient, store, feeds, notifier)
	spendingEngine := spending.NewEngine(ledgerClient, store, notifier)
	trk := tracker.New(assetEngine, spendingEngine)

	// Initial reconciliation: load the portfolio (cache fallback when
	// offline), refresh prices, and populate the default spending range.
	ctx := context.Background()
	if err := assetEngine.Load(ctx); err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}
	assetEngine.SyncPrices(ctx)
	if err := spendingEngine.SetFilter(ctx, spending.RangeThisMonth); err != nil {
		log.Warnf("initial spending query failed: %v", err)
	}

	// Register custom validators
	validator.Register()

	// Initialize handlers
	portfolioHandler := handlers.NewPortfolioHandler(assetEngine)
	spendingHandler := handlers.NewSpendingHandler(trk)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(appConfig.APIKey))

	portfolio := v1.Group("/portfolio")
	portfolio.GET("", portfolioHandler.GetPortfolio)
	portfolio.PUT("/assets", portfolioHandler.SaveAssets)
	portfolio.POST("/sync", portfolioHandler.SyncPrices)

	spendingRoutes := v1.Group("/spending")
	spendingRoutes.GET("", spendingHandler.ListSpending)
	spendingRoutes.POST("", spendingHandler.AddSpending)
	spendingRoutes.DELETE("/:id", spendingHandler.DeleteSpending)
	spendingRoutes.GET("/categories", spendingHandler.ListCategories)

	log.Infof("Server starting on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
