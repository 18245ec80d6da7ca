package shopify

import (
	"encoding/json"
	"testing"

	"indiemarket.GO/core/classifier"
)

func strPtr(s string) *string { return &s }

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"<p>Heavy <b>fleece</b> hoodie</p>", "Heavy fleece hoodie"},
		{"plain text", "plain text"},
		{"<div>\n  spaced\n\tout  </div>", "spaced out"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := StripHTML(tc.in); got != tc.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTagList_UnmarshalBothEncodings(t *testing.T) {
	var fromString TagList
	if err := json.Unmarshal([]byte(`"streetwear, limited , , new"`), &fromString); err != nil {
		t.Fatalf("string form: %v", err)
	}
	if len(fromString) != 3 || fromString[0] != "streetwear" || fromString[1] != "limited" || fromString[2] != "new" {
		t.Errorf("string form = %v", fromString)
	}

	var fromList TagList
	if err := json.Unmarshal([]byte(`["streetwear", " limited ", ""]`), &fromList); err != nil {
		t.Fatalf("list form: %v", err)
	}
	if len(fromList) != 2 || fromList[0] != "streetwear" || fromList[1] != "limited" {
		t.Errorf("list form = %v", fromList)
	}
}

func TestTransform_PriceRangeAcrossVariants(t *testing.T) {
	p := &Product{
		ID:    1,
		Title: "Box Logo Hoodie",
		Variants: []Variant{
			{ID: 11, Title: "S", Price: "120.00", Available: false},
			{ID: 12, Title: "M", Price: "89.5", CompareAtPrice: strPtr("150.00"), Available: true},
			{ID: 13, Title: "L", Price: "99.90", CompareAtPrice: strPtr("130.00"), Available: false},
		},
	}
	sp, err := Transform(p, "EUR", nil)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if sp.PriceMin != "89.50" || sp.PriceMax != "120.00" {
		t.Errorf("price range = %s..%s, want 89.50..120.00", sp.PriceMin, sp.PriceMax)
	}
	if sp.CompareAtPrice == nil || *sp.CompareAtPrice != "150.00" {
		t.Errorf("CompareAtPrice = %v, want 150.00 (max across variants)", sp.CompareAtPrice)
	}
	if !sp.IsAvailable {
		t.Error("IsAvailable = false, want true (one variant in stock)")
	}
	if sp.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", sp.Currency)
	}
}

func TestTransform_NoVariantsIsError(t *testing.T) {
	p := &Product{ID: 2, Title: "Ghost Product"}
	if _, err := Transform(p, "EUR", nil); err == nil {
		t.Fatal("expected error for product without variants")
	}
}

func TestTransform_BadPriceIsError(t *testing.T) {
	p := &Product{ID: 3, Title: "Broken", Variants: []Variant{{ID: 31, Price: "not-a-price"}}}
	if _, err := Transform(p, "EUR", nil); err == nil {
		t.Fatal("expected error for unparseable price")
	}
}

func TestTransform_DefaultTitleVariantGetsNilTitle(t *testing.T) {
	p := &Product{
		ID:    4,
		Title: "One Size Cap",
		Variants: []Variant{
			{ID: 41, Title: "Default Title", Price: "25.00", Available: true},
		},
	}
	sp, err := Transform(p, "EUR", nil)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if sp.Variants[0].Title != nil {
		t.Errorf("variant title = %q, want nil for Default Title", *sp.Variants[0].Title)
	}
}

func TestTransform_CategoryFallbackChain(t *testing.T) {
	base := Product{
		ID:       5,
		Title:    "Mystery Item",
		BodyHTML: "<p>a heavyweight hoodie for winter</p>",
		Variants: []Variant{{ID: 51, Price: "60.00", Available: true}},
	}

	// Collection override wins over everything.
	override := &classifier.Result{Category: "HOODIES", CategoryGroup: classifier.GroupClothing, Confidence: classifier.ConfidenceHigh}
	p := base
	sp, err := Transform(&p, "EUR", override)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if sp.ProductType != "HOODIES" {
		t.Errorf("ProductType = %q, want override HOODIES", sp.ProductType)
	}

	// Remote product_type keeps its label; group comes from reclassifying it.
	p = base
	p.ProductType = "Zip Hoodie"
	sp, err = Transform(&p, "EUR", nil)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if sp.ProductType != "Zip Hoodie" {
		t.Errorf("ProductType = %q, want remote label Zip Hoodie", sp.ProductType)
	}
	if sp.CategoryGroup != classifier.GroupClothing {
		t.Errorf("CategoryGroup = %q, want Clothing", sp.CategoryGroup)
	}

	// Unclassifiable remote label still defaults its group to Clothing.
	p = base
	p.ProductType = "Quux"
	sp, err = Transform(&p, "EUR", nil)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if sp.ProductType != "Quux" || sp.CategoryGroup != classifier.GroupClothing {
		t.Errorf("got %q/%q, want Quux/Clothing", sp.ProductType, sp.CategoryGroup)
	}

	// No override, no remote label: classifier on title+description.
	p = base
	sp, err = Transform(&p, "EUR", nil)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if sp.ProductType != "Hoodies & Sweats" {
		t.Errorf("ProductType = %q, want Hoodies & Sweats from description", sp.ProductType)
	}
}

func TestTransform_StoresOriginalHTMLDescription(t *testing.T) {
	p := &Product{
		ID:       6,
		Title:    "Graphic Tee",
		BodyHTML: "<p>screenprinted <b>art</b></p>",
		Variants: []Variant{{ID: 61, Price: "35.00", Available: true}},
	}
	sp, err := Transform(p, "EUR", nil)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if sp.Description == nil || *sp.Description != "<p>screenprinted <b>art</b></p>" {
		t.Errorf("Description = %v, want original HTML preserved", sp.Description)
	}
}
