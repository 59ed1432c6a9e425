package seeds

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productTemplate struct {
	title       string
	description string
	tags        string
	category    string
	subCategory string
	productType string
	gender      string
	basePrice   float64
	brand       string
}

// Titles, descriptions and tags deliberately carry the keywords the
// attribute normalizer looks for, so the seeded catalog exercises every
// color, style, occasion and season dictionary.
var templates = []productTemplate{
	// tops
	{"Black Gym Training Tee", "Breathable black tee for gym and training sessions", "gym, active, black", "Apparel", "Topwear", "T-Shirt", "men", 1499, "Stride"},
	{"Navy Blue Casual T-Shirt", "Soft navy tee for daily casual wear", "casual, daily, blue", "Apparel", "Topwear", "T-Shirt", "men", 999, "Loom & Co"},
	{"White Oversized Street Tee", "Oversized white tee with urban street fit", "street, oversized, white", "Apparel", "Topwear", "T-Shirt", "unisex", 1299, "Kerb"},
	{"Grey Winter Hoodie", "Charcoal grey hoodie for casual winter days", "hoodie, casual, grey, winter", "Apparel", "Topwear", "Hoodie", "women", 2499, "Loom & Co"},
	{"Formal Office Shirt White", "Crisp white shirt for office and business wear", "formal, office, white", "Apparel", "Topwear", "Shirt", "men", 2999, "Hartley"},
	{"Pink Active Training Top", "Lightweight pink top for workout and fitness", "gym, fitness, pink", "Apparel", "Topwear", "Top", "women", 1799, "Stride"},
	{"Olive Green Casual Tee", "Everyday olive tee in relaxed fit", "casual, everyday, green", "Apparel", "Topwear", "T-Shirt", "unisex", 1099, "Kerb"},

	// bottoms
	{"Black Training Leggings", "Stretch black leggings for gym and training", "legging, gym, black", "Apparel", "Bottomwear", "Leggings", "women", 1899, "Stride"},
	{"Blue Slim Fit Jeans", "Classic blue jeans for daily casual wear", "jeans, casual, blue", "Apparel", "Bottomwear", "Jeans", "men", 2299, "Loom & Co"},
	{"Grey Casual Joggers Pant", "Relaxed grey pant for everyday comfort", "pant, casual, grey", "Apparel", "Bottomwear", "Joggers", "unisex", 1599, "Kerb"},
	{"Black Formal Office Trousers", "Tailored black trousers for office and business", "trouser, formal, black", "Apparel", "Bottomwear", "Trousers", "men", 3499, "Hartley"},
	{"Street Cargo Pant Olive", "Urban cargo pant with utility pockets", "cargo, street, green", "Apparel", "Bottomwear", "Cargo", "unisex", 2799, "Kerb"},

	// footwear
	{"White Casual Sneakers", "Clean white sneakers for daily casual wear", "sneaker, casual, white", "Footwear", "Shoes", "Sneakers", "unisex", 2999, "Stride"},
	{"Black Gym Training Shoes", "Cushioned black shoes for gym and training", "shoe, gym, black", "Footwear", "Shoes", "Sports Shoes", "men", 3299, "Stride"},
	{"Brown Formal Office Shoes", "Polished brown shoes for formal office wear", "shoe, formal, brown", "Footwear", "Shoes", "Formal Shoes", "men", 4499, "Hartley"},
	{"Pink Running Sneaker", "Lightweight pink sneaker for workout and fitness", "sneaker, gym, pink", "Footwear", "Shoes", "Sports Shoes", "women", 2699, "Stride"},

	// accessories
	{"Silver Casual Watch", "Minimal silver watch for daily casual wear", "watch, casual, silver", "Accessories", "Watches", "Watch", "unisex", 2499, "Meridian"},
	{"Black Leather Belt", "Classic black belt for formal office wear", "belt, formal, black", "Accessories", "Belts", "Belt", "men", 1299, "Hartley"},
	{"Blue Gym Bottle", "Insulated blue bottle for gym and training", "bottle, gym, blue", "Accessories", "Bottles", "Bottle", "unisex", 699, "Stride"},
	{"Grey Street Cap", "Grey cap with urban street styling", "cap, street, grey", "Accessories", "Caps", "Cap", "unisex", 899, "Kerb"},
	{"Brown Casual Wallet", "Compact brown wallet for everyday carry", "wallet, casual, brown", "Accessories", "Wallets", "Wallet", "men", 0, "Meridian"},
	{"Black Casual Tote Bag", "Spacious black bag for daily casual use", "bag, casual, black", "Accessories", "Bags", "Bag", "women", 1999, "Loom & Co"},
}

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE products RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting products")
	if err := seedProducts(ctx, pool, rng, 60); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

func seedProducts(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		t := templates[i%len(templates)]

		title := t.title
		if i >= len(templates) {
			title = fmt.Sprintf("%s %d", title, i/len(templates)+1)
		}

		skuID := fmt.Sprintf("SKU-%04d", 1001+i)
		price := jitterPrice(rng, t.basePrice)
		image := fmt.Sprintf("https://img.outfitly.dev/%s.jpg", strings.ToLower(skuID))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10, base+11))

		args = append(args, skuID, title, t.description, t.tags,
			t.category, t.subCategory, t.productType, t.gender,
			price, t.brand, image)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO products (sku_id, title, description, tags, category, sub_category, product_type, gender, lowest_price, brand_name, featured_image) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

// jitterPrice keeps duplicated template rows from sharing an exact price.
// Zero stays zero: those rows exercise the unknown-price paths.
func jitterPrice(rng *rand.Rand, base float64) float64 {
	if base <= 0 {
		return 0
	}
	factor := 0.85 + rng.Float64()*0.3
	return math.Round(base*factor/10) * 10
}
