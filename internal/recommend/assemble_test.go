package recommend

import (
	"testing"

	"github.com/outfitly/outfit-service/internal/domain"
)

func casualItem(id, category string, price float64) *domain.Product {
	return product(id, category, "unisex", []string{"neutral"}, []string{"casual"}, []string{"casual"}, price)
}

func TestGenerateOutfitsFullSlots(t *testing.T) {
	base := product("B1", "top", "men", []string{"blue"}, []string{"casual"}, []string{"casual"}, 1000)
	catalog := []*domain.Product{
		base,
		product("T1", "top", "men", []string{"blue"}, []string{"casual"}, []string{"casual"}, 1000),
		product("C1", "bottom", "unisex", []string{"neutral"}, []string{"casual"}, []string{"casual"}, 1100),
		product("C2", "footwear", "men", []string{"blue"}, []string{"casual"}, []string{"casual"}, 900),
		product("C3", "accessory", "unisex", []string{"neutral"}, []string{"casual"}, []string{"casual"}, 900),
	}

	outfits := GenerateOutfits(base, catalog, 3)
	if len(outfits) != 1 {
		t.Fatalf("expected 1 outfit, got %d", len(outfits))
	}

	o := outfits[0]
	if o.Items[domain.SlotTop].ID != "T1" {
		t.Errorf("expected top T1, got %s", o.Items[domain.SlotTop].ID)
	}
	if o.Items[domain.SlotBottom].ID != "C1" {
		t.Errorf("expected bottom C1, got %s", o.Items[domain.SlotBottom].ID)
	}
	if o.Items[domain.SlotFootwear].ID != "C2" {
		t.Errorf("expected footwear C2, got %s", o.Items[domain.SlotFootwear].ID)
	}
	if o.Items[domain.SlotAccessory].ID != "C3" {
		t.Errorf("expected accessory C3, got %s", o.Items[domain.SlotAccessory].ID)
	}
	if o.MatchScore < 0.9 || o.MatchScore > 1.0 {
		t.Errorf("expected high match score, got %v", o.MatchScore)
	}
	if o.Explanation.Color == "" || o.Explanation.Budget == "" {
		t.Error("expected explanation payload to be populated")
	}
}

func TestGenerateOutfitsNoTops(t *testing.T) {
	base := casualItem("B1", "bottom", 1000)
	catalog := []*domain.Product{
		base,
		casualItem("C1", "bottom", 1000),
		casualItem("C2", "footwear", 1000),
		casualItem("C3", "accessory", 1000),
	}

	outfits := GenerateOutfits(base, catalog, 3)
	if len(outfits) != 0 {
		t.Errorf("expected no outfits without a top pool, got %d", len(outfits))
	}
}

func TestGenerateOutfitsRespectsMax(t *testing.T) {
	base := casualItem("B1", "top", 1000)
	catalog := []*domain.Product{base}
	for _, id := range []string{"T1", "T2", "T3", "T4"} {
		catalog = append(catalog, casualItem(id, "top", 1000))
	}
	for _, id := range []string{"P1", "P2", "P3", "P4"} {
		catalog = append(catalog, casualItem(id, "bottom", 1000))
	}
	for _, id := range []string{"S1", "S2", "S3", "S4"} {
		catalog = append(catalog, casualItem(id, "footwear", 1000))
	}
	for _, id := range []string{"A1", "A2", "A3", "A4"} {
		catalog = append(catalog, casualItem(id, "accessory", 1000))
	}

	outfits := GenerateOutfits(base, catalog, 2)
	if len(outfits) != 2 {
		t.Fatalf("expected exactly 2 outfits, got %d", len(outfits))
	}

	for _, o := range outfits {
		if o.MatchScore < 0.0 || o.MatchScore > 1.0 {
			t.Errorf("match score out of range: %v", o.MatchScore)
		}
		if _, ok := o.Items[domain.SlotAccessory]; !ok {
			t.Error("outfit missing accessory slot")
		}
		seen := map[string]bool{}
		for _, item := range o.Items {
			if item.ID == base.ID {
				t.Errorf("base id %s reused inside an outfit", base.ID)
			}
			if seen[item.ID] {
				t.Errorf("duplicate item %s within one outfit", item.ID)
			}
			seen[item.ID] = true
		}
	}
}

func TestGenerateOutfitsAccessoryBase(t *testing.T) {
	base := casualItem("B1", "accessory", 1000)
	catalog := []*domain.Product{
		base,
		casualItem("T1", "top", 1000),
		casualItem("T2", "top", 1000),
		casualItem("P1", "bottom", 1000),
		casualItem("S1", "footwear", 1000),
		casualItem("A1", "accessory", 1000),
	}

	outfits := GenerateOutfits(base, catalog, 2)
	if len(outfits) != 2 {
		t.Fatalf("expected 2 outfits, got %d", len(outfits))
	}
	for _, o := range outfits {
		if o.Items[domain.SlotAccessory].ID != base.ID {
			t.Errorf("expected accessory slot to hold the base product, got %s",
				o.Items[domain.SlotAccessory].ID)
		}
	}
}

func TestGenerateOutfitsAccessoriesNotReused(t *testing.T) {
	base := casualItem("B1", "top", 1000)
	catalog := []*domain.Product{
		base,
		casualItem("T1", "top", 1000),
		casualItem("T2", "top", 1000),
		casualItem("T3", "top", 1000),
		casualItem("P1", "bottom", 1000),
		casualItem("S1", "footwear", 1000),
		casualItem("A1", "accessory", 1000),
		casualItem("A2", "accessory", 1000),
	}

	// three outfits requested but only two accessories exist
	outfits := GenerateOutfits(base, catalog, 3)
	if len(outfits) != 2 {
		t.Fatalf("expected 2 outfits, got %d", len(outfits))
	}
	first := outfits[0].Items[domain.SlotAccessory].ID
	second := outfits[1].Items[domain.SlotAccessory].ID
	if first != "A1" || second != "A2" {
		t.Errorf("expected FIFO accessories [A1 A2], got [%s %s]", first, second)
	}
}

func TestGenerateOutfitsBottomOnlyFallback(t *testing.T) {
	base := casualItem("B1", "top", 1000)
	catalog := []*domain.Product{
		base,
		casualItem("T1", "top", 1000),
		casualItem("P1", "bottom", 1000),
		casualItem("A1", "accessory", 1000),
	}

	outfits := GenerateOutfits(base, catalog, 3)
	if len(outfits) != 1 {
		t.Fatalf("expected 1 outfit, got %d", len(outfits))
	}
	if _, ok := outfits[0].Items[domain.SlotFootwear]; ok {
		t.Error("expected no footwear slot in bottom-only fallback")
	}
	if outfits[0].Items[domain.SlotBottom].ID != "P1" {
		t.Error("expected bottom P1 in fallback outfit")
	}
}

func TestGenerateOutfitsTerminatesWithoutBottomsOrShoes(t *testing.T) {
	base := casualItem("B1", "top", 1000)
	catalog := []*domain.Product{
		base,
		casualItem("T1", "top", 1000),
		casualItem("A1", "accessory", 1000),
	}

	// tops and accessories exist but nothing can fill bottom or footwear,
	// so every pass skips; the iteration cap must end the loop
	outfits := GenerateOutfits(base, catalog, 3)
	if len(outfits) != 0 {
		t.Errorf("expected no outfits, got %d", len(outfits))
	}
}
