package classifier

import (
	"testing"
)

func TestClassify_TitleMatchIsHighConfidence(t *testing.T) {
	res := Classify("Black Oversized Hoodie", "")
	if res.Category != "Hoodies & Sweats" {
		t.Errorf("Category = %q, want Hoodies & Sweats", res.Category)
	}
	if res.CategoryGroup != GroupClothing {
		t.Errorf("CategoryGroup = %q, want %q", res.CategoryGroup, GroupClothing)
	}
	if res.Confidence != ConfidenceHigh {
		t.Errorf("Confidence = %q, want high", res.Confidence)
	}
}

func TestClassify_DescriptionMatchIsMediumConfidence(t *testing.T) {
	res := Classify("Signature Piece 04", "Heavyweight mohair sweater, hand finished.")
	if res.Category != "Knitwear" {
		t.Errorf("Category = %q, want Knitwear", res.Category)
	}
	if res.Confidence != ConfidenceMedium {
		t.Errorf("Confidence = %q, want medium", res.Confidence)
	}
}

func TestClassify_NoMatchFallsBackToOther(t *testing.T) {
	for _, title := range []string{"", "Untitled Drop 07", "XYZZY"} {
		res := Classify(title, "")
		if res.Category != CategoryOther {
			t.Errorf("Classify(%q): Category = %q, want Other", title, res.Category)
		}
		if res.CategoryGroup != GroupClothing {
			t.Errorf("Classify(%q): CategoryGroup = %q, want Clothing", title, res.CategoryGroup)
		}
		if res.Confidence != ConfidenceLow {
			t.Errorf("Classify(%q): Confidence = %q, want low", title, res.Confidence)
		}
	}
}

func TestClassify_ExclusionsSuppressCategory(t *testing.T) {
	// "fleece" is a Hoodies & Sweats keyword but "jacket" excludes the
	// category, so the scan falls through to Jackets & Coats.
	res := Classify("Fleece Jacket", "")
	if res.Category != "Jackets & Coats" {
		t.Errorf("Category = %q, want Jackets & Coats", res.Category)
	}
	if res.Confidence != ConfidenceHigh {
		t.Errorf("Confidence = %q, want high", res.Confidence)
	}
}

func TestClassify_PriorityOrderBreaksTies(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		// Knitwear outranks Shorts.
		{"Knit Shorts", "Knitwear"},
		// Shorts outranks Pants ("denim shorts" vs "denim").
		{"Denim Shorts", "Shorts"},
		// Packs & Boxes outranks everything.
		{"Lucky Box - Hoodie + Tee", "Packs & Boxes"},
		// Jackets & Coats over Pants for "denim jacket".
		{"Denim Jacket", "Jackets & Coats"},
	}
	for _, tc := range cases {
		res := Classify(tc.title, "")
		if res.Category != tc.want {
			t.Errorf("Classify(%q): Category = %q, want %q", tc.title, res.Category, tc.want)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("Oversized Graphic Tee", "100% cotton")
	for i := 0; i < 50; i++ {
		again := Classify("Oversized Graphic Tee", "100% cotton")
		if again != first {
			t.Fatalf("run %d: result %+v differs from %+v", i, again, first)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	upper := Classify("VARSITY JACKET", "")
	lower := Classify("varsity jacket", "")
	if upper != lower {
		t.Errorf("case changed the result: %+v vs %+v", upper, lower)
	}
	if upper.Category != "Jackets & Coats" {
		t.Errorf("Category = %q, want Jackets & Coats", upper.Category)
	}
}

func TestDefaultTables_EveryPriorityEntryHasKeywordsAndGroup(t *testing.T) {
	tables := DefaultTables()
	for _, cat := range tables.Priority {
		if len(tables.Keywords[cat]) == 0 {
			t.Errorf("category %q has no keywords", cat)
		}
		group := tables.groupOf(cat)
		if group == "" {
			t.Errorf("category %q has no group", cat)
		}
	}
	if got := len(tables.Categories()); got != len(tables.Priority) {
		t.Errorf("Categories() returned %d entries, want %d", got, len(tables.Priority))
	}
}

func TestGroupOf_UnknownCategoryDefaultsToClothing(t *testing.T) {
	if got := DefaultTables().groupOf("Nonexistent"); got != GroupClothing {
		t.Errorf("groupOf = %q, want Clothing", got)
	}
}
