package catalog

import (
	"testing"

	"github.com/outfitly/outfit-service/internal/domain"
)

func TestInferColors(t *testing.T) {
	colors := inferColors("Navy Blue hoodie with charcoal trim")
	if len(colors) != 2 || colors[0] != "blue" || colors[1] != "grey" {
		t.Errorf("expected [blue grey], got %v", colors)
	}

	// no color keywords -> neutral wildcard
	colors = inferColors("plain everyday tee")
	if len(colors) != 1 || colors[0] != "neutral" {
		t.Errorf("expected [neutral], got %v", colors)
	}
}

func TestInferStyleAndOccasion(t *testing.T) {
	style := inferTags("oversized street hoodie for gym", styleKeywords, "casual")
	if len(style) != 3 {
		t.Fatalf("expected 3 style tags, got %v", style)
	}
	// stable dictionary order: athleisure (gym), casual (hoodie), street
	if style[0] != "athleisure" || style[1] != "casual" || style[2] != "street" {
		t.Errorf("expected [athleisure casual street], got %v", style)
	}

	occasion := inferTags("no matching words here", occasionKeywords, "casual")
	if len(occasion) != 1 || occasion[0] != "casual" {
		t.Errorf("expected default [casual], got %v", occasion)
	}
}

func TestInferSeason(t *testing.T) {
	if s := inferSeason("warm winter jacket"); s[0] != "winter" {
		t.Errorf("expected winter, got %v", s)
	}
	if s := inferSeason("summer tank top"); s[0] != "summer" {
		t.Errorf("expected summer, got %v", s)
	}
	// winter keywords win when both match
	if s := inferSeason("hoodie with shorts"); s[0] != "winter" {
		t.Errorf("expected winter precedence, got %v", s)
	}
	if s := inferSeason("plain tee"); s[0] != "all" {
		t.Errorf("expected all, got %v", s)
	}
}

func TestNormalizeGender(t *testing.T) {
	cases := map[string]string{
		"Men":    domain.GenderMen,
		"male":   domain.GenderMen,
		"WOMEN":  domain.GenderWomen,
		"female": domain.GenderWomen,
		"":       domain.GenderUnisex,
		"kids":   domain.GenderUnisex,
	}
	for raw, want := range cases {
		if got := normalizeGender(raw); got != want {
			t.Errorf("normalizeGender(%q): expected %s, got %s", raw, want, got)
		}
	}
}

func TestNormalizeCategoryPrecedence(t *testing.T) {
	// accessory keywords win over everything else
	if got := normalizeCategory("Apparel", "", "", "Formal Office Watch"); got != domain.CategoryAccessory {
		t.Errorf("expected accessory, got %s", got)
	}
	if got := normalizeCategory("", "", "Sneaker", "Running Shoe"); got != domain.CategoryFootwear {
		t.Errorf("expected footwear, got %s", got)
	}
	if got := normalizeCategory("", "Bottomwear", "Legging", "Gym Legging"); got != domain.CategoryBottom {
		t.Errorf("expected bottom, got %s", got)
	}
	if got := normalizeCategory("Apparel", "Topwear", "T-Shirt", "Plain Tee"); got != domain.CategoryTop {
		t.Errorf("expected top fallback, got %s", got)
	}
}

func TestPriceBucket(t *testing.T) {
	cases := []struct {
		price float64
		want  string
	}{
		{0, "unknown"},
		{-5, "unknown"},
		{2999, "low"},
		{3000, "mid"},
		{9999, "mid"},
		{10000, "high"},
	}
	for _, c := range cases {
		if got := priceBucket(c.price); got != c.want {
			t.Errorf("priceBucket(%v): expected %s, got %s", c.price, c.want, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	raw := domain.RawProduct{
		SkuID:       "SKU-1001",
		Title:       "Black Gym Training Tee",
		Description: "Breathable black tee for gym and training sessions",
		Tags:        "gym, active, black",
		Category:    "Apparel",
		SubCategory: "Topwear",
		ProductType: "T-Shirt",
		Gender:      "Men",
		Price:       1499,
		Brand:       "Stride",
		Image:       "https://img.outfitly.dev/sku-1001.jpg",
	}

	p := Normalize(raw)
	if p.ID != "SKU-1001" || p.Name != raw.Title {
		t.Errorf("unexpected identity fields: %s %s", p.ID, p.Name)
	}
	if p.Category != domain.CategoryTop {
		t.Errorf("expected top, got %s", p.Category)
	}
	if p.Gender != domain.GenderMen {
		t.Errorf("expected men, got %s", p.Gender)
	}
	if len(p.Colors) != 1 || p.Colors[0] != "black" {
		t.Errorf("expected [black], got %v", p.Colors)
	}
	// "tee" also trips the casual dictionary
	if len(p.Style) != 2 || p.Style[0] != "athleisure" || p.Style[1] != "casual" {
		t.Errorf("expected [athleisure casual], got %v", p.Style)
	}
	if len(p.Occasion) != 1 || p.Occasion[0] != "workout" {
		t.Errorf("expected [workout], got %v", p.Occasion)
	}
	if p.PriceBucket != "low" {
		t.Errorf("expected low bucket, got %s", p.PriceBucket)
	}
}

func TestCatalogBuild(t *testing.T) {
	rows := []domain.RawProduct{
		{SkuID: "A", Title: "Blue Jeans", Gender: "men", Price: 2000},
		{SkuID: "B", Title: "White Sneaker", Gender: "women", Price: 3000},
	}

	cat := Build(rows)
	if cat.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", cat.Len())
	}

	// load order preserved
	products := cat.Products()
	if products[0].ID != "A" || products[1].ID != "B" {
		t.Errorf("expected load order [A B], got [%s %s]", products[0].ID, products[1].ID)
	}

	p, ok := cat.ByID("B")
	if !ok || p.Category != domain.CategoryFootwear {
		t.Errorf("expected footwear product B, got %+v", p)
	}
	if _, ok := cat.ByID("missing"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}
