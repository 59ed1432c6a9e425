package catalog

import (
	"strings"

	"github.com/outfitly/outfit-service/internal/domain"
)

// Controlled keyword dictionaries for attribute inference. Ordered slices,
// not maps, so inferred tag lists come out in a stable order.

type keywordSet struct {
	tag      string
	keywords []string
}

var colorKeywords = []keywordSet{
	{"black", []string{"black", "jet", "ebony"}},
	{"white", []string{"white", "cream", "ivory"}},
	{"red", []string{"red", "maroon", "burgundy"}},
	{"blue", []string{"blue", "navy"}},
	{"green", []string{"green", "olive"}},
	{"pink", []string{"pink", "rose"}},
	{"brown", []string{"brown", "tan", "beige"}},
	{"grey", []string{"grey", "gray", "charcoal"}},
	{"silver", []string{"silver"}},
	{"gold", []string{"gold"}},
}

var styleKeywords = []keywordSet{
	{"athleisure", []string{"gym", "training", "workout", "active", "sport", "legging"}},
	{"casual", []string{"t-shirt", "tee", "hoodie", "jeans", "casual", "daily"}},
	{"street", []string{"street", "cargo", "oversized", "urban"}},
	{"formal", []string{"formal", "office", "blazer", "shirt"}},
}

var occasionKeywords = []keywordSet{
	{"workout", []string{"gym", "training", "fitness"}},
	{"formal", []string{"formal", "office", "business"}},
	{"casual", []string{"casual", "daily", "everyday"}},
}

var seasonKeywords = []keywordSet{
	{"winter", []string{"winter", "jacket", "hoodie", "sweat"}},
	{"summer", []string{"summer", "shorts", "tank"}},
}

var accessoryKeywords = []string{"watch", "belt", "cap", "bottle", "bag", "wallet"}
var footwearKeywords = []string{"shoe", "sneaker", "footwear"}
var bottomKeywords = []string{"pant", "trouser", "legging", "jean"}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func inferColors(text string) []string {
	text = strings.ToLower(text)
	var colors []string
	for _, ks := range colorKeywords {
		if containsAny(text, ks.keywords) {
			colors = append(colors, ks.tag)
		}
	}
	if len(colors) == 0 {
		return []string{"neutral"}
	}
	return colors
}

func inferTags(text string, dict []keywordSet, fallback string) []string {
	text = strings.ToLower(text)
	var tags []string
	for _, ks := range dict {
		if containsAny(text, ks.keywords) {
			tags = append(tags, ks.tag)
		}
	}
	if len(tags) == 0 {
		return []string{fallback}
	}
	return tags
}

func inferSeason(text string) []string {
	text = strings.ToLower(text)
	for _, ks := range seasonKeywords {
		if containsAny(text, ks.keywords) {
			return []string{ks.tag}
		}
	}
	return []string{"all"}
}

func normalizeGender(raw string) string {
	switch strings.ToLower(raw) {
	case "men", "male":
		return domain.GenderMen
	case "women", "female":
		return domain.GenderWomen
	default:
		return domain.GenderUnisex
	}
}

// normalizeCategory checks accessory keywords first: an "office watch"
// must land in accessory, not fall through to top.
func normalizeCategory(category, subCategory, productType, title string) string {
	text := strings.ToLower(category + " " + subCategory + " " + productType + " " + title)

	if containsAny(text, accessoryKeywords) {
		return domain.CategoryAccessory
	}
	if containsAny(text, footwearKeywords) {
		return domain.CategoryFootwear
	}
	if containsAny(text, bottomKeywords) {
		return domain.CategoryBottom
	}
	return domain.CategoryTop
}

func priceBucket(price float64) string {
	switch {
	case price <= 0:
		return "unknown"
	case price < 3000:
		return "low"
	case price < 10000:
		return "mid"
	default:
		return "high"
	}
}

// Normalize turns a raw catalog row into a product record with inferred
// categorical attributes.
func Normalize(raw domain.RawProduct) *domain.Product {
	textBlob := raw.Title + " " + raw.Description + " " + raw.Tags

	return &domain.Product{
		ID:          raw.SkuID,
		Name:        raw.Title,
		Category:    normalizeCategory(raw.Category, raw.SubCategory, raw.ProductType, raw.Title),
		Gender:      normalizeGender(raw.Gender),
		Colors:      inferColors(textBlob),
		Style:       inferTags(textBlob, styleKeywords, "casual"),
		Occasion:    inferTags(textBlob, occasionKeywords, "casual"),
		Season:      inferSeason(textBlob),
		Price:       raw.Price,
		PriceBucket: priceBucket(raw.Price),
		Brand:       raw.Brand,
		Image:       raw.Image,
	}
}
