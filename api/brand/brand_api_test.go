package brand

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	entity "indiemarket.GO/model/entity"
	productEntity "indiemarket.GO/model/entity/product"
)

func testServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.Brand{}, &productEntity.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	e := echo.New()
	RegisterBrandRoutes(e.Group("/api"), db)
	return e, db
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Atelier Nord":    "atelier-nord",
		"MAISON  D'ÉTÉ":   "maison-d-t",
		"brand":           "brand",
		"--Weird--Input--": "weird-input",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPostBrands_CreatesAndDerivesSlug(t *testing.T) {
	e, db := testServer(t)

	body := `{"name":"Atelier Nord","websiteUrl":"https://ateliernord.example","shopifyDomain":"https://atelier-nord.myshopify.com/"}`
	req := httptest.NewRequest(http.MethodPost, "/api/brands", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var stored entity.Brand
	if err := db.First(&stored, "slug = ?", "atelier-nord").Error; err != nil {
		t.Fatalf("brand not stored: %v", err)
	}
	if stored.ShopifyDomain != "atelier-nord.myshopify.com" {
		t.Errorf("ShopifyDomain = %q, want scheme and slash stripped", stored.ShopifyDomain)
	}
	if !stored.IsActive {
		t.Error("new brand should start active")
	}
}

func TestPostBrands_ValidatesRequiredFields(t *testing.T) {
	e, _ := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/brands", strings.NewReader(`{"name":"No Domain"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetBrands_ActiveFilter(t *testing.T) {
	e, db := testServer(t)
	db.Create(&entity.Brand{Name: "A", Slug: "a", WebsiteURL: "https://a.example", ShopifyDomain: "a.myshopify.com", IsActive: true})
	db.Create(&entity.Brand{Name: "B", Slug: "b", WebsiteURL: "https://b.example", ShopifyDomain: "b.myshopify.com", IsActive: false})

	req := httptest.NewRequest(http.MethodGet, "/api/brands?active=true", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); strings.Contains(body, `"slug":"b"`) {
		t.Errorf("inactive brand leaked into active listing: %s", body)
	}
}

func TestGetBrandByRef(t *testing.T) {
	e, db := testServer(t)
	b := &entity.Brand{Name: "A", Slug: "a", WebsiteURL: "https://a.example", ShopifyDomain: "a.myshopify.com", IsActive: true}
	db.Create(b)
	db.Create(&productEntity.Product{BrandID: b.ID, ShopifyID: 1, Title: "P", Slug: "p", Currency: "EUR"})

	req := httptest.NewRequest(http.MethodGet, "/api/brands/a", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"productCount":1`) {
		t.Errorf("body = %s, want productCount 1", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/brands/missing", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
