package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"
)

func testClient(pageSize int) ClientConfig {
	cfg := DefaultClientConfig()
	cfg.Scheme = "http"
	cfg.RequestDelay = time.Millisecond
	cfg.RequestTimeout = 5 * time.Second
	cfg.PageSize = pageSize
	return cfg
}

// feedServer serves /products.json with the given page sizes; any page past
// the end is empty.
func feedServer(t *testing.T, pageSizes []int, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products.json" {
			http.NotFound(w, r)
			return
		}
		*hits++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		count := 0
		if page >= 1 && page <= len(pageSizes) {
			count = pageSizes[page-1]
		}
		products := make([]Product, count)
		for i := range products {
			products[i] = Product{
				ID:       int64((page-1)*1000 + i),
				Title:    fmt.Sprintf("Product %d-%d", page, i),
				Variants: []Variant{{ID: 1, Price: "10.00", Available: true}},
			}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"products": products})
	}))
}

func serverDomain(ts *httptest.Server) string {
	return strings.TrimPrefix(ts.URL, "http://")
}

func TestFetchProducts_StopsOnShortPage(t *testing.T) {
	hits := 0
	ts := feedServer(t, []int{250, 250, 37}, &hits)
	defer ts.Close()

	c := NewClient(testClient(250))
	products, err := c.FetchProducts(context.Background(), serverDomain(ts))
	if err != nil {
		t.Fatalf("FetchProducts: %v", err)
	}
	if len(products) != 537 {
		t.Errorf("len = %d, want 537", len(products))
	}
	if hits != 3 {
		t.Errorf("requests = %d, want 3 (short page terminates)", hits)
	}
}

func TestFetchProducts_FullLastPageNeedsEmptyProbe(t *testing.T) {
	hits := 0
	ts := feedServer(t, []int{250, 250, 250}, &hits)
	defer ts.Close()

	c := NewClient(testClient(250))
	products, err := c.FetchProducts(context.Background(), serverDomain(ts))
	if err != nil {
		t.Fatalf("FetchProducts: %v", err)
	}
	if len(products) != 750 {
		t.Errorf("len = %d, want 750", len(products))
	}
	if hits != 4 {
		t.Errorf("requests = %d, want 4 (empty page 4 terminates)", hits)
	}
}

func TestFetchProducts_EmptyStore(t *testing.T) {
	hits := 0
	ts := feedServer(t, nil, &hits)
	defer ts.Close()

	c := NewClient(testClient(250))
	products, err := c.FetchProducts(context.Background(), serverDomain(ts))
	if err != nil {
		t.Fatalf("FetchProducts: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("len = %d, want 0", len(products))
	}
	if hits != 1 {
		t.Errorf("requests = %d, want 1", hits)
	}
}

func TestFetchProducts_ServerErrorFailsFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewClient(testClient(250))
	if _, err := c.FetchProducts(context.Background(), serverDomain(ts)); err == nil {
		t.Fatal("expected error on 429 response")
	}
}

func TestGetJSON_SetsRequestHeaders(t *testing.T) {
	var gotUA, gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode(map[string]interface{}{"products": []Product{}})
	}))
	defer ts.Close()

	cfg := testClient(250)
	cfg.UserAgent = "TestBot/1.0"
	c := NewClient(cfg)
	if _, err := c.FetchProducts(context.Background(), serverDomain(ts)); err != nil {
		t.Fatalf("FetchProducts: %v", err)
	}
	if gotUA != "TestBot/1.0" {
		t.Errorf("User-Agent = %q, want TestBot/1.0", gotUA)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
}

func TestFetchProducts_RequestDelayPacesPages(t *testing.T) {
	hits := 0
	ts := feedServer(t, []int{250, 250, 10}, &hits)
	defer ts.Close()

	cfg := testClient(250)
	cfg.RequestDelay = 50 * time.Millisecond
	c := NewClient(cfg)

	start := time.Now()
	if _, err := c.FetchProducts(context.Background(), serverDomain(ts)); err != nil {
		t.Fatalf("FetchProducts: %v", err)
	}
	// First request is free (burst 1); the two follow-ups wait.
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("3 requests took %s, want >= 100ms of pacing", elapsed)
	}
}

func TestFetchProducts_ContextCancellation(t *testing.T) {
	hits := 0
	ts := feedServer(t, []int{250, 250, 250, 250}, &hits)
	defer ts.Close()

	cfg := testClient(250)
	cfg.RequestDelay = time.Hour // second page would wait forever
	c := NewClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if _, err := c.FetchProducts(ctx, serverDomain(ts)); err == nil {
		t.Fatal("expected context error")
	}
}
