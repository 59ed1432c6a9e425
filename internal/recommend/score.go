package recommend

import (
	"math"

	"github.com/outfitly/outfit-service/internal/domain"
)

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func colorScore(base *domain.Product, items []*domain.Product) float64 {
	score := 0.0
	for _, item := range items {
		switch {
		case hasTag(base.Colors, "neutral") || hasTag(item.Colors, "neutral"):
			score += 1.0
		case intersects(base.Colors, item.Colors):
			score += 0.7
		default:
			score += 0.3
		}
	}
	return round2(score / float64(len(items)))
}

func styleScore(base *domain.Product, items []*domain.Product) float64 {
	score := 0.0
	for _, item := range items {
		switch {
		case intersects(base.Style, item.Style):
			score += 1.0
		case len(base.Style) > 0 || len(item.Style) > 0:
			// style sets are never empty after normalization, so this is
			// the no-intersection case in practice
			score += 0.6
		}
	}
	return round2(score / float64(len(items)))
}

func occasionScore(base *domain.Product, items []*domain.Product) float64 {
	score := 0.0
	for _, item := range items {
		if intersects(base.Occasion, item.Occasion) {
			score += 1.0
		}
	}
	return round2(score / float64(len(items)))
}

func budgetScore(base *domain.Product, items []*domain.Product) float64 {
	// Unknown base price gives a neutral score
	if base.Price <= 0 {
		return 0.5
	}

	score := 0.0
	for _, item := range items {
		if item.Price <= 0 {
			score += 0.5
			continue
		}

		diff := math.Abs(item.Price-base.Price) / base.Price
		switch {
		case diff <= 0.4:
			score += 1.0
		case diff <= 0.6:
			score += 0.6
		default:
			score += 0.3
		}
	}
	return round2(score / float64(len(items)))
}

// FinalScore combines the four sub-scores into a weighted match score in
// [0,1]. Items must be non-empty; the assembler guarantees it.
func FinalScore(base *domain.Product, items []*domain.Product) float64 {
	c := colorScore(base, items)
	s := styleScore(base, items)
	o := occasionScore(base, items)
	b := budgetScore(base, items)

	final := 0.35*c + 0.30*s + 0.20*o + 0.15*b

	return round2(math.Min(final, 1.0))
}
