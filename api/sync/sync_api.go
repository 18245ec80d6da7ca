package sync

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"

	"indiemarket.GO/api"
	"indiemarket.GO/config"
	synclogRepo "indiemarket.GO/model/repository/synclog"
	syncService "indiemarket.GO/service/sync"
)

func init() {
	api.RegisterModule(RegisterSyncRoutes)
}

// syncTrigger is the POST /api/sync payload. Decoded weakly so callers may
// send force as bool, number or string.
type syncTrigger struct {
	BrandID  string `mapstructure:"brandId"`
	Currency string `mapstructure:"currency"`
}

type recategorizeTrigger struct {
	BrandID string `mapstructure:"brandId"`
	Force   bool   `mapstructure:"force"`
}

func decodeTrigger(c echo.Context, out interface{}) error {
	raw := map[string]interface{}{}
	if err := c.Bind(&raw); err != nil {
		return err
	}
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
		TagName:          "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

func RegisterSyncRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/sync")
	svc := syncService.NewDefaultService(db)

	// POST /api/sync – trigger a sync for one brand or all active brands.
	// Runs in-request; the caller gets the full per-brand results.
	g.POST("", func(c echo.Context) error {
		start := time.Now()

		var body syncTrigger
		if err := decodeTrigger(c, &body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		opts := syncService.Options{BrandID: body.BrandID, Currency: body.Currency}

		var results []syncService.Result
		if body.BrandID != "" {
			res, err := svc.SyncBrand(ctx, body.BrandID, opts)
			duration := time.Since(start).Milliseconds()
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
			}
			results = []syncService.Result{*res}
		} else {
			var err error
			results, err = svc.SyncAll(ctx, opts)
			duration := time.Since(start).Milliseconds()
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
			}
		}

		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"results":             results,
			"request_duration_ms": duration,
		})
	})

	// POST /api/sync/recategorize – reclassify stored products. The only
	// path that may overwrite a stored category (force=true).
	g.POST("/recategorize", func(c echo.Context) error {
		start := time.Now()

		var body recategorizeTrigger
		if err := decodeTrigger(c, &body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		res, err := svc.Recategorize(ctx, syncService.RecategorizeOptions{
			BrandID: body.BrandID,
			Force:   body.Force,
		})
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"updated":             res.Updated,
			"skipped":             res.Skipped,
			"errors":              res.Errors,
			"request_duration_ms": duration,
		})
	})

	// GET /api/sync/logs?brandId=&limit= – recent sync audit rows,
	// newest first.
	g.GET("/logs", func(c echo.Context) error {
		limit := 0
		if v := c.QueryParam("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a positive integer"})
			}
			limit = n
		}

		logs, err := synclogRepo.GetSyncLogRepository(db).FindRecent(c.QueryParam("brandId"), limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"logs": logs})
	})
}

// requestCtx caps a trigger at the configured sync ceiling so a stuck
// storefront cannot hold an HTTP worker forever.
func requestCtx(c echo.Context) (ctx context.Context, cancel context.CancelFunc) {
	config.LoadAppConfig()
	return context.WithTimeout(c.Request().Context(), config.AppConfig.SyncTimeout)
}
