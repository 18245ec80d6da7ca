package brand

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"indiemarket.GO/api"
	"indiemarket.GO/model/entity"
	brandRepo "indiemarket.GO/model/repository/brand"
	productRepo "indiemarket.GO/model/repository/product"
)

func init() {
	api.RegisterModule(RegisterBrandRoutes)
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

func RegisterBrandRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/brands")
	brands := brandRepo.GetBrandRepository(db)
	products := productRepo.GetProductRepository(db)

	// GET /api/brands?active=true – list partner brands.
	g.GET("", func(c echo.Context) error {
		var (
			list []entity.Brand
			err  error
		)
		if c.QueryParam("active") == "true" {
			list, err = brands.FindActive()
		} else {
			list, err = brands.FindAll()
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"brands": list})
	})

	// GET /api/brands/:ref – one brand by id or slug, with catalog size.
	g.GET("/:ref", func(c echo.Context) error {
		b, err := brands.FindByIDOrSlug(c.Param("ref"))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "brand not found"})
		}
		prods, err := products.FindByBrand(b.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"brand":        b,
			"productCount": len(prods),
		})
	})

	// POST /api/brands – onboard a partner storefront.
	g.POST("", func(c echo.Context) error {
		var body struct {
			Name          string  `json:"name"`
			Slug          string  `json:"slug"`
			Description   *string `json:"description"`
			LogoURL       *string `json:"logoUrl"`
			WebsiteURL    string  `json:"websiteUrl"`
			ShopifyDomain string  `json:"shopifyDomain"`
			Country       *string `json:"country"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Name == "" || body.ShopifyDomain == "" || body.WebsiteURL == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, websiteUrl and shopifyDomain are required"})
		}
		slug := body.Slug
		if slug == "" {
			slug = slugify(body.Name)
		}
		if slug == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "slug could not be derived from name"})
		}

		b := &entity.Brand{
			Name:          body.Name,
			Slug:          slug,
			Description:   body.Description,
			LogoURL:       body.LogoURL,
			WebsiteURL:    body.WebsiteURL,
			ShopifyDomain: strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(body.ShopifyDomain, "https://"), "http://"), "/"),
			Country:       body.Country,
			IsActive:      true,
		}
		if err := brands.Create(b); err != nil {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"brand": b})
	})
}
