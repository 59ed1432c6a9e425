package repository

import (
	"context"
	"fmt"

	"github.com/outfitly/outfit-service/internal/domain"
)

// LoadRawProducts fetches every catalog row in insertion order. Called once
// at startup; the normalized catalog is immutable afterwards.
func (r *Repository) LoadRawProducts(ctx context.Context) ([]domain.RawProduct, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT sku_id, title, description, tags,
		        category, sub_category, product_type, gender,
		        COALESCE(lowest_price, 0), brand_name, featured_image
		 FROM products
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var items []domain.RawProduct
	for rows.Next() {
		var p domain.RawProduct
		err := rows.Scan(&p.SkuID, &p.Title, &p.Description, &p.Tags,
			&p.Category, &p.SubCategory, &p.ProductType, &p.Gender,
			&p.Price, &p.Brand, &p.Image)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over products: %w", err)
	}
	return items, nil
}

// Get product sku ids for page
func (r *Repository) GetProductIDsPaginated(ctx context.Context, page, limit int) ([]string, error) {
	offset := (page - 1) * limit
	rows, err := r.pool.Query(ctx,
		`SELECT sku_id FROM products ORDER BY id LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query product ids for page %d: %w", page, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product ids: %w", err)
	}
	return ids, nil
}

// Count total products
func (r *Repository) CountProducts(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products`,
	).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}
