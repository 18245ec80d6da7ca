package main

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"indiemarket.GO/api"
	_ "indiemarket.GO/api/brand"
	_ "indiemarket.GO/api/catalog"
	_ "indiemarket.GO/api/sync"
	"indiemarket.GO/config"
	"indiemarket.GO/core/auth"
	"indiemarket.GO/core/registry"
	cronPkg "indiemarket.GO/cron"
	_ "indiemarket.GO/cron/jobs"
	_ "indiemarket.GO/custom"
)

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if config.AppConfig.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if config.AppConfig.Env != "production" {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	setupLogging()

	config.InitRedis()
	if config.RedisClient != nil {
		if err := config.RedisClient.Ping(config.RedisCtx()).Err(); err != nil {
			config.RedisClient = nil // Disable Redis if not reachable
			zlog.Warn().Err(err).Msg("Redis configured but not reachable, sync locking disabled")
		} else {
			zlog.Info().Msg("Redis connection successful")
		}
	} else {
		zlog.Info().Msg("Redis not configured, sync locking disabled")
	}

	db, err := config.NewDB()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to DB")
	}
	sqldb, err := db.DB()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to get DB instance")
	}
	if err := sqldb.Ping(); err != nil {
		zlog.Fatal().Err(err).Msg("database connection failed")
	}
	zlog.Info().Msg("Database connection successful")

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			registry.RequestRegistry(c).Set(registry.KeyRequestStart, start)
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	e.GET("/health", func(c echo.Context) error {
		status := "ok"
		if err := sqldb.Ping(); err != nil {
			status = "degraded"
		}
		return c.JSON(200, map[string]string{"status": status})
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)

	if os.Getenv("CRON_ENABLED") == "true" {
		c := cronPkg.StartCron()
		defer c.Stop()
		zlog.Info().Msg("Cron scheduler started")
	}

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("IndieMarket ->", fonts[rand.Intn(len(fonts))], true)
	fig.Print()

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}
	zlog.Info().Str("port", port).Msg("server running")
	e.Logger.Fatal(e.Start(":" + port))
}
