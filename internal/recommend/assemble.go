package recommend

import (
	"github.com/outfitly/outfit-service/internal/domain"
)

var slotOrder = []string{
	domain.SlotTop,
	domain.SlotBottom,
	domain.SlotFootwear,
	domain.SlotAccessory,
}

var defaultExplanation = domain.Explanation{
	Color:    "Balanced color harmony with neutral support",
	Style:    "Consistent styling across items",
	Occasion: "Appropriate for base product usage",
	Budget:   "Price range remains balanced",
}

// GenerateOutfits assembles up to maxOutfits outfits around the base
// product using greedy round-robin selection over the filtered pools.
// Every outfit has a top, an accessory, and at least one of bottom or
// footwear. Insufficient pools yield fewer outfits, never an error.
func GenerateOutfits(base *domain.Product, catalog []*domain.Product, maxOutfits int) []domain.Outfit {
	baseIsAccessory := base.Category == domain.CategoryAccessory

	used := map[string]bool{base.ID: true}

	tops := FilterPool(base, catalog, domain.CategoryTop, used)
	bottoms := FilterPool(base, catalog, domain.CategoryBottom, used)
	shoes := FilterPool(base, catalog, domain.CategoryFootwear, used)

	var accessories []*domain.Product
	if !baseIsAccessory {
		accessories = FilterPool(base, catalog, domain.CategoryAccessory, used)
	}

	outfits := []domain.Outfit{}
	if len(tops) == 0 {
		return outfits
	}

	// The pools are fixed before the loop, so a pass that can produce no
	// outfit (no bottom and no shoe, or accessories exhausted) would skip
	// forever. The iteration cap ends those spins; productive passes
	// always emit, so it never cuts a full result short.
	maxIterations := maxOutfits + len(tops)*4

	for i := 0; len(outfits) < maxOutfits && i < maxIterations; i++ {
		top := tops[i%len(tops)]

		var bottom, shoe *domain.Product
		if len(bottoms) > 0 {
			bottom = bottoms[(i+1)%len(bottoms)]
		}
		if len(shoes) > 0 {
			shoe = shoes[(i+2)%len(shoes)]
		}

		items := map[string]*domain.Product{}
		switch {
		case bottom != nil && shoe != nil:
			items[domain.SlotTop] = top
			items[domain.SlotBottom] = bottom
			items[domain.SlotFootwear] = shoe
		case bottom != nil:
			items[domain.SlotTop] = top
			items[domain.SlotBottom] = bottom
		case shoe != nil:
			items[domain.SlotTop] = top
			items[domain.SlotFootwear] = shoe
		default:
			continue
		}

		// Exactly one accessory per outfit. An accessory base fills its
		// own slot; otherwise accessories are consumed FIFO and never
		// reused across outfits.
		switch {
		case baseIsAccessory:
			items[domain.SlotAccessory] = base
		case len(accessories) > 0:
			acc := accessories[0]
			accessories = accessories[1:]
			items[domain.SlotAccessory] = acc
		default:
			continue
		}

		itemList := make([]*domain.Product, 0, len(items))
		for _, slot := range slotOrder {
			if item, ok := items[slot]; ok {
				used[item.ID] = true
				itemList = append(itemList, item)
			}
		}

		outfits = append(outfits, domain.Outfit{
			Items:       items,
			MatchScore:  FinalScore(base, itemList),
			Explanation: defaultExplanation,
		})
	}

	return outfits
}
