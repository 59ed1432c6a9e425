package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/outfitly/outfit-service/internal/catalog"
	"github.com/outfitly/outfit-service/internal/domain"
	"github.com/outfitly/outfit-service/internal/recommend"
	"github.com/outfitly/outfit-service/internal/repository"
)

const (
	defaultMaxOutfits = 3
	maxMaxOutfits     = 10
	batchConcurrency  = 10
	batchMaxOutfits   = 3
)

// OutfitCache is the capability set the service needs from the response
// cache: lookups and stores keyed by (base id, max outfits).
type OutfitCache interface {
	Get(ctx context.Context, baseID string, maxOutfits int) (*domain.OutfitResponse, bool, error)
	Set(ctx context.Context, baseID string, maxOutfits int, resp *domain.OutfitResponse) error
}

type Service struct {
	repo    *repository.Repository
	cache   OutfitCache
	catalog *catalog.Catalog
}

func NewService(repo *repository.Repository, cache OutfitCache, cat *catalog.Catalog) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		catalog: cat,
	}
}

func (s *Service) GetOutfits(ctx context.Context, baseID string, maxOutfits int) (*domain.OutfitResult, error) {
	if maxOutfits <= 0 {
		maxOutfits = defaultMaxOutfits
	} else if maxOutfits > maxMaxOutfits {
		maxOutfits = maxMaxOutfits
	}

	base, ok := s.catalog.ByID(baseID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	// Check cache
	cached, found, err := s.cache.Get(ctx, baseID, maxOutfits)
	if err != nil {
		log.Printf("[service] cache get error for product %s: %v", baseID, err)
	}

	if found {
		return &domain.OutfitResult{
			Response: cached,
			CacheHit: true,
		}, nil
	}

	// Cache miss -> assemble outfits
	outfits := recommend.GenerateOutfits(base, s.catalog.Products(), maxOutfits)

	resp := &domain.OutfitResponse{
		BaseProduct: base,
		Outfits:     outfits,
	}

	// Store response in cache
	if cacheErr := s.cache.Set(ctx, baseID, maxOutfits, resp); cacheErr != nil {
		log.Printf("[service] cache set error for product %s: %v", baseID, cacheErr)
	}

	return &domain.OutfitResult{
		Response: resp,
		CacheHit: false,
	}, nil
}

func (s *Service) GetBatchOutfits(ctx context.Context, page, limit int) (*domain.BatchResponse, error) {
	start := time.Now()

	// Fetch paginated product ids
	productIDs, err := s.repo.GetProductIDsPaginated(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch product ids: %w", err)
	}

	// Fetch total products
	totalProducts, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	// Process products concurrently with bounded worker pool
	results := make([]domain.BatchProductResult, len(productIDs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, batchConcurrency) // semaphore

	for i, productID := range productIDs {
		wg.Add(1)
		go func(idx int, pid string) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			result := s.processProductForBatch(ctx, pid)
			results[idx] = result
		}(i, productID)
	}
	wg.Wait()

	// summary
	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	elapsed := time.Since(start).Milliseconds()

	return &domain.BatchResponse{
		Page:          page,
		Limit:         limit,
		TotalProducts: totalProducts,
		Results:       results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: elapsed,
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// Generates outfits for a single product, capturing errors.
func (s *Service) processProductForBatch(ctx context.Context, productID string) domain.BatchProductResult {
	result, err := s.GetOutfits(ctx, productID, batchMaxOutfits)
	if err != nil {
		log.Printf("[service] batch: failed for product %s: %v", productID, err)
		code, msg := categorizeError(err)
		return domain.BatchProductResult{
			ProductID: productID,
			Status:    domain.StatusFailed,
			Error:     code,
			Message:   msg,
		}
	}

	return domain.BatchProductResult{
		ProductID: productID,
		Outfits:   result.Response.Outfits,
		Status:    domain.StatusSuccess,
	}
}

// Handle response error
func categorizeError(err error) (string, string) {
	if errors.Is(err, domain.ErrProductNotFound) {
		return "product_not_found", "product not found"
	}
	return "internal_error", "an unexpected error occurred"
}
