package catalog

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"indiemarket.GO/api"
	brandRepo "indiemarket.GO/model/repository/brand"
	productRepo "indiemarket.GO/model/repository/product"
	"indiemarket.GO/service/search"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

func RegisterCatalogRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/catalog")
	brands := brandRepo.GetBrandRepository(db)
	products := productRepo.GetProductRepository(db)

	// GET /api/catalog/products?brandId= – stored catalog straight from
	// the relational store.
	g.GET("/products", func(c echo.Context) error {
		if ref := c.QueryParam("brandId"); ref != "" {
			b, err := brands.FindByIDOrSlug(ref)
			if err != nil {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "brand not found"})
			}
			list, err := products.FindByBrand(b.ID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusOK, echo.Map{"products": list})
		}
		list, err := products.FindAll()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"products": list})
	})

	// GET /api/catalog/search?q=&page=&pageSize=&categoryGroup= – full-text
	// search over the Elasticsearch mirror. 503 when no cluster is wired.
	g.GET("/search", func(c echo.Context) error {
		q := c.QueryParam("q")
		if q == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "q is required"})
		}
		page, _ := strconv.Atoi(c.QueryParam("page"))
		pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

		res, err := search.GetSearchService().Search(c.Request().Context(), q, page, pageSize, c.QueryParam("categoryGroup"))
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, res)
	})
}
