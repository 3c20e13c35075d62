package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"tastegraph/backend/internal/artifacts"
	"tastegraph/backend/internal/graph"
	"tastegraph/backend/internal/nlp"
	"tastegraph/backend/internal/profile"
	"tastegraph/backend/pkg/config"
	apperrors "tastegraph/backend/pkg/errors"
	"tastegraph/backend/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting profile API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Neo4j driver
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	defer driver.Close(context.Background())

	// Verify Neo4j connection
	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	// Offline artifacts load once at startup; a missing one degrades only
	// the algorithms that depend on it.
	store := artifacts.Load(cfg)

	tokenizer, err := nlp.NewTokenizer()
	if err != nil {
		log.Warn("Tokenizer not loaded, word signature will be unavailable", zap.Error(err))
		tokenizer = nil
	}

	graphRepo := graph.NewRepository(driver)
	orch := newOrchestrator(graphRepo, store, tokenizer, cfg.ProfileWorkers)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(requestID())
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerRoutes(router, orch, log)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

func newOrchestrator(repo profile.GraphReader, store *artifacts.Store, tokenizer *nlp.Tokenizer, workers int) *profile.Orchestrator {
	// A nil *Tokenizer must become a nil interface, or the orchestrator
	// would call through it.
	if tokenizer == nil {
		return profile.NewOrchestrator(repo, store, nil, workers)
	}
	return profile.NewOrchestrator(repo, store, tokenizer, workers)
}

// registerRoutes wires the per-algorithm endpoints and the composite
// profile endpoint.
func registerRoutes(router *gin.Engine, orch *profile.Orchestrator, log *zap.Logger) {
	api := router.Group("/api")

	users := api.Group("/users/:id")
	{
		users.GET("/review-rhythm", component(log, func(ctx context.Context, userID string) (interface{}, error) {
			return orch.ReviewRhythmFor(ctx, userID)
		}))
		users.GET("/category-diversity", component(log, func(ctx context.Context, userID string) (interface{}, error) {
			return orch.DiversityFor(ctx, userID)
		}))
		users.GET("/sentiment-timeline", component(log, func(ctx context.Context, userID string) (interface{}, error) {
			return orch.SentimentFor(ctx, userID)
		}))
		users.GET("/word-signature", component(log, func(ctx context.Context, userID string) (interface{}, error) {
			return orch.SignatureFor(ctx, userID)
		}))
		users.GET("/hidden-gems", component(log, func(ctx context.Context, userID string) (interface{}, error) {
			return orch.HiddenGemsFor(ctx, userID)
		}))
		users.GET("/taste-cluster", component(log, func(ctx context.Context, userID string) (interface{}, error) {
			return orch.TasteClusterFor(ctx, userID)
		}))
		users.GET("/recommendations", component(log, func(ctx context.Context, userID string) (interface{}, error) {
			return orch.RecommendationsFor(ctx, userID)
		}))
		users.GET("/influence-percentile", component(log, func(ctx context.Context, userID string) (interface{}, error) {
			return orch.InfluenceFor(ctx, userID)
		}))

		users.GET("/profile", func(c *gin.Context) {
			userID := c.Param("id")
			result, err := orch.BuildProfile(c.Request.Context(), userID)
			if err != nil {
				respondError(c, log, err)
				return
			}
			c.JSON(http.StatusOK, result)
		})
	}
}

// component adapts one algorithm to a GET handler. "No data" results are
// returned as-is (typed zero values or null), never as errors.
func component(log *zap.Logger, compute func(ctx context.Context, userID string) (interface{}, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")
		result, err := compute(c.Request.Context(), userID)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, profile.ErrStoreUnavailable) || graph.IsUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "graph store unavailable"})
	case apperrors.IsArtifactUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		log.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// requestID attaches a request id to every response for log correlation
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}
