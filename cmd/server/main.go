package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"SportsModelGo/internal/handler"
	"SportsModelGo/internal/middleware"
	"SportsModelGo/internal/repository"
	"SportsModelGo/internal/service"
	"SportsModelGo/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "conf/config.ini", "config file path")
	dbPath     = flag.String("db", "", "database file path (overrides config)")
	port       = flag.Int("port", 0, "server port (overrides config)")
	debug      = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logrus.Warnf("Using default config: %v", err)
		cfg = config.DefaultConfig()
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logrus.Info("===========================================")
	logrus.Info("  Sports Model Summary Service")
	logrus.Info("===========================================")
	logrus.Infof("Database: %s (%s)", cfg.Database.Path, cfg.Database.Driver)
	logrus.Infof("Table: %s, date field: %s", cfg.Database.Table, cfg.Database.DateField)
	logrus.Infof("Port: %d", cfg.Server.Port)
	logrus.Infof("Cache Size: %.2f MB", float64(cfg.Cache.MaxBytes)/(1024*1024))

	repo, err := repository.NewSQLRepository(cfg.Database.Driver, cfg.Database.Path, cfg.Database.Table)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}
	defer repo.Close()
	logrus.Info("Repository initialized")

	summaryService := service.NewSummaryService(repo,
		cfg.Cache.MaxBytes, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	logrus.Info("Service initialized")

	summaryHandler := handler.NewSummaryHandler(summaryService, repo)
	logrus.Info("Handler initialized")

	router := setupRouter(summaryHandler, cfg)
	logrus.Info("Router initialized")

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.Infof("Starting server on %s", addr)
	logrus.Info("===========================================")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(summaryHandler *handler.SummaryHandler, cfg *config.Config) *gin.Engine {
	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	middleware.InitGlobalRateLimiter(cfg.Server.RateQPS, cfg.Server.RateBurst)
	logrus.Info("Middleware initialized (rate limiter)")
	r.Use(middleware.RateLimitMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	apiGroup := r.Group("/sports/api/data/v1")
	{
		apiGroup.POST("/summary", summaryHandler.Summary)
		apiGroup.POST("/summary/", summaryHandler.Summary)

		apiGroup.GET("/overview", summaryHandler.Overview)
		apiGroup.GET("/stats", summaryHandler.Stats)
	}

	return r
}
