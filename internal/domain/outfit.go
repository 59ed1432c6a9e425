package domain

const (
	SlotTop       = "top"
	SlotBottom    = "bottom"
	SlotFootwear  = "footwear"
	SlotAccessory = "accessory"
)

type Explanation struct {
	Color    string `json:"color"`
	Style    string `json:"style"`
	Occasion string `json:"occasion"`
	Budget   string `json:"budget"`
}

type Outfit struct {
	Items       map[string]*Product `json:"items"`
	MatchScore  float64             `json:"match_score"`
	Explanation Explanation         `json:"explanation"`
}

// OutfitResponse is the cacheable payload for one base product.
type OutfitResponse struct {
	BaseProduct *Product `json:"base_product"`
	Outfits     []Outfit `json:"outfits"`
}

type OutfitMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type OutfitResult struct {
	Response *OutfitResponse
	CacheHit bool
}
