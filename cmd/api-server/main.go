package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cuashub/internal/auth"
	"cuashub/internal/catalog"
	"cuashub/internal/live"
	"cuashub/internal/reviews"
	"cuashub/internal/stats"
	"cuashub/internal/summary"
	"cuashub/pkg/database"
	"cuashub/pkg/utils"
)

// snapshotInterval matches the dashboard's refresh cadence.
const snapshotInterval = 30 * time.Second

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	srvCfg := utils.LoadServerConfig()

	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal("db migrate failed", zap.Error(err))
	}

	seed, err := catalog.LoadSeed(srvCfg.SeedPath)
	if err != nil {
		logger.Fatal("seed load failed", zap.Error(err))
	}
	store := catalog.NewStore(seed)
	engine := stats.NewEngine(store)
	logger.Info("catalog seeded",
		zap.Int("products", store.TotalProducts()),
		zap.Int("reviews", store.TotalReviews()),
	)

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	// Live dashboard feed
	hub := live.NewHub()
	traffic := live.NewTrafficSim()
	router.GET("/ws", live.WSHandler(hub, logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		hubStats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": hubStats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"db":         "ok",
			"ws_clients": hubStats.WSClients,
		})
	})

	// Auth
	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authStore := auth.NewRepo(db)
	authHandler := auth.NewHandler(authStore, tokenSvc, authCfg.AdminEmails)
	authHandler.RegisterRoutes(router.Group("/auth"))

	// Catalog (public reads)
	catalogHandler := catalog.NewHandler(store)
	catalogHandler.RegisterPublicRoutes(router.Group("/products"))

	// Reviews + ratings (public reads)
	reviewHandler := reviews.NewHandler(store, engine, hub)
	reviewHandler.RegisterPublicRoutes(&router.RouterGroup)

	// AI summaries
	geminiCfg := utils.LoadGeminiConfig()
	aiClient := summary.NewClient(context.Background(), geminiCfg.APIKey, geminiCfg.Model, logger)
	summaryHandler := summary.NewHandler(store, aiClient)
	summaryHandler.RegisterPublicRoutes(&router.RouterGroup)

	// Authenticated routes
	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware(tokenSvc, authStore))
	reviewHandler.RegisterProtectedRoutes(protected)
	summaryHandler.RegisterProtectedRoutes(protected)

	protected.GET("/users/me", func(c *gin.Context) {
		claims := auth.MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"id":       claims.UserID,
			"email":    claims.Email,
			"is_admin": claims.IsAdmin,
		})
	})

	// Admin routes
	admin := router.Group("/admin")
	admin.Use(auth.AuthMiddleware(tokenSvc, authStore), auth.AdminMiddleware())
	catalogHandler.RegisterAdminRoutes(admin)
	statsHandler := stats.NewHandler(engine)
	statsHandler.RegisterAdminRoutes(admin)

	httpSrv := &http.Server{
		Addr:    srvCfg.Addr,
		Handler: router,
	}

	// Periodic dashboard snapshot broadcast
	stopTicker := make(chan struct{})
	go func() {
		ticker := time.NewTicker(snapshotInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				current, today, weekly := traffic.Tick()
				hub.BroadcastJSON(live.Snapshot{
					Type:            "dashboard.snapshot",
					TotalProducts:   store.TotalProducts(),
					TotalReviews:    store.TotalReviews(),
					CurrentVisitors: current,
					TodayVisitors:   today,
					WeeklyVisitors:  weekly,
					At:              time.Now().UTC(),
				})
			case <-stopTicker:
				return
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API server listening", zap.String("addr", srvCfg.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	close(stopTicker)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
