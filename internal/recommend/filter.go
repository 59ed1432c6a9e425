package recommend

import (
	"math"

	"github.com/outfitly/outfit-service/internal/domain"
)

// maxPriceSpread is the relative price band around the base product for
// candidate admission.
const maxPriceSpread = 0.4

var styleCompatibility = map[string][]string{
	"athleisure": {"athleisure", "casual"},
	"casual":     {"casual", "athleisure"},
	"street":     {"street"},
	"formal":     {"formal"},
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// fastFilter applies the cheap gates: gender, shared occasion, and the
// price band. A zero price means "unknown" and skips the band check.
func fastFilter(base, p *domain.Product) bool {
	if base.Gender != domain.GenderUnisex && p.Gender != domain.GenderUnisex && p.Gender != base.Gender {
		return false
	}

	if !intersects(base.Occasion, p.Occasion) {
		return false
	}

	if base.Price > 0 && p.Price > 0 {
		diff := math.Abs(p.Price-base.Price) / base.Price
		if diff > maxPriceSpread {
			return false
		}
	}

	return true
}

func colorCompatible(base, p *domain.Product) bool {
	if hasTag(base.Colors, "neutral") || hasTag(p.Colors, "neutral") {
		return true
	}
	return intersects(base.Colors, p.Colors)
}

// styleCompatible admits a candidate when any base style tag's
// compatibility set intersects the candidate's styles. Tags absent from
// the table contribute nothing.
func styleCompatible(base, p *domain.Product) bool {
	for _, bs := range base.Style {
		if intersects(styleCompatibility[bs], p.Style) {
			return true
		}
	}
	return false
}

func occasionCompatible(base, p *domain.Product) bool {
	return intersects(base.Occasion, p.Occasion)
}

// FilterPool returns the candidates of one category that pass every
// compatibility rule against the base product, in catalog order.
func FilterPool(base *domain.Product, catalog []*domain.Product, category string, exclude map[string]bool) []*domain.Product {
	var pool []*domain.Product
	for _, p := range catalog {
		if p.Category != category || exclude[p.ID] {
			continue
		}
		if !fastFilter(base, p) {
			continue
		}
		if !colorCompatible(base, p) {
			continue
		}
		if !styleCompatible(base, p) {
			continue
		}
		if !occasionCompatible(base, p) {
			continue
		}
		pool = append(pool, p)
	}
	return pool
}
