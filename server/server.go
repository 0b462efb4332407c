package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/betshield/betshield-backend/config"
	"github.com/betshield/betshield-backend/docs"
	achievementsHandler "github.com/betshield/betshield-backend/internal/handler/achievements"
	alertsHandler "github.com/betshield/betshield-backend/internal/handler/alerts"
	authHandler "github.com/betshield/betshield-backend/internal/handler/auth"
	dashboardHandler "github.com/betshield/betshield-backend/internal/handler/dashboard"
	extensionHandler "github.com/betshield/betshield-backend/internal/handler/extension"
	reportsHandler "github.com/betshield/betshield-backend/internal/handler/reports"
	scannerHandler "github.com/betshield/betshield-backend/internal/handler/scanner"
	settingsHandler "github.com/betshield/betshield-backend/internal/handler/settings"
	spendingHandler "github.com/betshield/betshield-backend/internal/handler/spending"
	"github.com/betshield/betshield-backend/internal/repository"
	"github.com/betshield/betshield-backend/internal/service/achievements"
	"github.com/betshield/betshield-backend/internal/service/alerts"
	dashboardService "github.com/betshield/betshield-backend/internal/service/dashboard"
	extensionLogService "github.com/betshield/betshield-backend/internal/service/extension_log"
	redisService "github.com/betshield/betshield-backend/internal/service/redis"
	reportsService "github.com/betshield/betshield-backend/internal/service/reports"
	scannerService "github.com/betshield/betshield-backend/internal/service/scanner"
	spendingService "github.com/betshield/betshield-backend/internal/service/spending"
	"github.com/betshield/betshield-backend/internal/service/user"
	"github.com/betshield/betshield-backend/middleware"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	extensionRateLimit  = 120
	extensionRateWindow = time.Minute
)

type RouterHandler struct {
	authHandler         *authHandler.AuthHandler
	extensionHandler    *extensionHandler.ExtensionHandler
	spendingHandler     *spendingHandler.SpendingHandler
	alertsHandler       *alertsHandler.AlertsHandler
	achievementsHandler *achievementsHandler.AchievementsHandler
	reportsHandler      *reportsHandler.ReportsHandler
	scannerHandler      *scannerHandler.ScannerHandler
	settingsHandler     *settingsHandler.SettingsHandler
	dashboardHandler    *dashboardHandler.DashboardHandler
	redis               redisService.ServiceInterface
	corsOrigin          string
}

func RunServer(config *config.Config) {
	env := config.Env
	switch env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Println("🚀 Starting server in PRODUCTION mode")
	case "dev", "development":
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode (default)")
	}

	db, err := repository.NewRepository(config.DB)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	defer db.Close()

	redisSvc := redisService.NewRedisService(redisService.RedisConfig{
		Host:     config.Redis.Host,
		Port:     config.Redis.Port,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	var redis redisService.ServiceInterface
	if redisSvc != nil {
		redis = redisSvc
		defer redisSvc.Close()
	} else {
		log.Println("⚠️ Redis unavailable, rate limiting and stats caching disabled")
	}

	userRepo := repository.NewUserRepository(db)
	spendingRepo := repository.NewSpendingRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	reportRepo := repository.NewReportRepository(db)
	scanRepo := repository.NewScanRepository(db)
	extensionLogRepo := repository.NewExtensionLogRepository(config.Extension.LogFile, config.Extension.LegacyLogFile)

	userSrv := user.NewUserService(userRepo)
	spendingSrv := spendingService.NewSpendingService(spendingRepo)
	alertsSrv := alerts.NewAlertsService(alertRepo)
	achievementsSrv := achievements.NewAchievementsService(achievementRepo)
	reportsSrv := reportsService.NewReportsService(reportRepo, spendingRepo)
	scannerSrv := scannerService.NewScannerService(scanRepo)
	extensionLogSrv := extensionLogService.NewExtensionLogService(extensionLogRepo)
	dashboardSrv := dashboardService.NewDashboardService(spendingRepo, alertRepo, achievementRepo, extensionLogSrv)

	routerHandler := &RouterHandler{
		authHandler:         authHandler.NewAuthHandler(userSrv),
		extensionHandler:    extensionHandler.NewExtensionHandler(extensionLogSrv, redis),
		spendingHandler:     spendingHandler.NewSpendingHandler(spendingSrv),
		alertsHandler:       alertsHandler.NewAlertsHandler(alertsSrv),
		achievementsHandler: achievementsHandler.NewAchievementsHandler(achievementsSrv),
		reportsHandler:      reportsHandler.NewReportsHandler(reportsSrv),
		scannerHandler:      scannerHandler.NewScannerHandler(scannerSrv),
		settingsHandler:     settingsHandler.NewSettingsHandler(userSrv),
		dashboardHandler:    dashboardHandler.NewDashboardHandler(dashboardSrv),
		redis:               redis,
		corsOrigin:          config.CORSOrigin,
	}

	r := setupRouter(routerHandler)

	srv := &http.Server{
		Addr:    ":" + config.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("✅ Server starting on port %s", config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	gracefulShutdown(srv)
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("🔄 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	select {
	case <-ctx.Done():
		log.Println("⚠️ Server shutdown timeout exceeded")
	default:
		log.Println("✅ Server gracefully stopped")
	}
}

func setupRouter(routerHandler *RouterHandler) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(middleware.RequestIDMiddleware())
	r.Use(corsMiddleware(routerHandler.corsOrigin))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "betshield-backend",
		})
	})

	docs.SwaggerInfo.Host = "127.0.0.1:8080"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.Title = "BetShield API"
	docs.SwaggerInfo.Description = "Gambling behavior monitoring API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/api"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	publicRoutes := r.Group("/api")
	{
		routerHandler.authHandler.RegisterRoutes(publicRoutes)

		extensionRoutes := publicRoutes.Group("")
		extensionRoutes.Use(middleware.RateLimitMiddleware(routerHandler.redis, extensionRateLimit, extensionRateWindow))
		routerHandler.extensionHandler.RegisterRoutes(extensionRoutes)
	}

	privateRoutes := r.Group("/api")
	privateRoutes.Use(middleware.AuthenticationMiddleware())
	{
		routerHandler.spendingHandler.RegisterRoutes(privateRoutes)
		routerHandler.alertsHandler.RegisterRoutes(privateRoutes)
		routerHandler.achievementsHandler.RegisterRoutes(privateRoutes)
		routerHandler.reportsHandler.RegisterRoutes(privateRoutes)
		routerHandler.scannerHandler.RegisterRoutes(privateRoutes)
		routerHandler.settingsHandler.RegisterRoutes(privateRoutes)
		routerHandler.dashboardHandler.RegisterRoutes(privateRoutes)
	}

	return r
}

// corsMiddleware allows localhost dev hosts, browser extension origins and
// the one configured web origin.
func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		switch {
		case origin == "":
		case strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:"):
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		case strings.HasPrefix(origin, "chrome-extension://") ||
			strings.HasPrefix(origin, "moz-extension://"):
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		case origin == allowedOrigin:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		default:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
