package domain

const (
	CategoryTop       = "top"
	CategoryBottom    = "bottom"
	CategoryFootwear  = "footwear"
	CategoryAccessory = "accessory"
)

const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

// Product is a normalized catalog entry. Set-valued fields are never empty:
// the normalizer always supplies a default ("neutral", "casual", "all").
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Gender      string   `json:"gender"`
	Colors      []string `json:"colors"`
	Style       []string `json:"style"`
	Occasion    []string `json:"occasion"`
	Season      []string `json:"season"`
	Price       float64  `json:"price"`
	PriceBucket string   `json:"price_bucket"`
	Brand       string   `json:"brand"`
	Image       string   `json:"image"`
}

// RawProduct is a catalog row as stored, before attribute inference.
type RawProduct struct {
	SkuID       string
	Title       string
	Description string
	Tags        string
	Category    string
	SubCategory string
	ProductType string
	Gender      string
	Price       float64
	Brand       string
	Image       string
}
