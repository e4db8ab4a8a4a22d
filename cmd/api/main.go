package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "github.com/naebak/banner-backend/docs"
	"github.com/naebak/banner-backend/internal/config"
	"github.com/naebak/banner-backend/internal/handler"
	"github.com/naebak/banner-backend/internal/middleware"
	"github.com/naebak/banner-backend/internal/migration"
	"github.com/naebak/banner-backend/internal/repository"
	"github.com/naebak/banner-backend/internal/routes"
	"github.com/naebak/banner-backend/internal/service"
	"github.com/naebak/banner-backend/internal/taxonomy"
	pkgcache "github.com/naebak/banner-backend/pkg/cache"
	"github.com/naebak/banner-backend/pkg/i18n"
	"github.com/naebak/banner-backend/pkg/jwt"
	pkglogger "github.com/naebak/banner-backend/pkg/logger"
	pkgredis "github.com/naebak/banner-backend/pkg/redis"
)

// @title           Naebak Banner API
// @version         1.0
// @description     Banner management and delivery backend for the Naebak platform
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	log := pkglogger.GetLogger()
	log.Info().Str("env", env).Strs("env_files", dotenvFiles).Msg("starting")

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		middleware.SetDBConnectionsActive(float64(sqlDB.Stats().OpenConnections))
	}

	// Redis is optional: without it the service falls back to hitting the
	// database on every display request.
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
		redisClient = nil
	}
	cacheService := pkgcache.NewService(redisClient)

	bannerRepo := repository.NewBannerRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	userBannerRepo := repository.NewUserBannerRepository(db)
	pageBannerRepo := repository.NewPageBannerRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	registry, err := taxonomy.NewRegistry(taxonomyRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load taxonomy")
	}

	bundle := i18n.Default()
	validator := service.NewBannerValidator(registry, bundle, cfg.Banner.RequireAltText, cfg.Banner.MaxAltTextLength)

	permissionSvc := service.NewPermissionService(permissionRepo, bannerRepo, bundle)
	bannerSvc := service.NewBannerService(bannerRepo, registry, validator, permissionSvc, cacheService)
	analyticsSvc := service.NewAnalyticsService(statsRepo)
	recommendationSvc := service.NewRecommendationService(bannerRepo, registry, cfg.Banner.RecommendLimit)
	userBannerSvc := service.NewUserBannerService(userBannerRepo, permissionSvc)
	pageBannerSvc := service.NewPageBannerService(pageBannerRepo, permissionSvc, cacheService)
	settingSvc := service.NewSettingService(settingRepo, permissionSvc)

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.JWTExpiry())

	bannerHandler := handler.NewBannerHandler(bannerSvc, analyticsSvc)
	recommendationHandler := handler.NewRecommendationHandler(recommendationSvc)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc, permissionSvc)
	userBannerHandler := handler.NewUserBannerHandler(userBannerSvc)
	pageBannerHandler := handler.NewPageBannerHandler(pageBannerSvc)
	taxonomyHandler := handler.NewTaxonomyHandler(registry)
	settingHandler := handler.NewSettingHandler(settingSvc, permissionSvc)

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(cfg.App.CORSAllowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
			"time":    time.Now().Unix(),
		})
	})
	router.GET("/ready", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	routes.Setup(router,
		bannerHandler,
		recommendationHandler,
		analyticsHandler,
		userBannerHandler,
		pageBannerHandler,
		taxonomyHandler,
		settingHandler,
		jwtManager,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetimeDuration())

	return db, nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
