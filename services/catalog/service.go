package catalog

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"tms-lite/database/seeders"
	"tms-lite/logger"
	"tms-lite/metrics"
	catalogModel "tms-lite/models/catalog"

	"gorm.io/gorm"
)

const (
	MinPopularity = 60
	MaxPopularity = 100
)

// Service serves the trending catalog from the items table.
type Service struct {
	db   *gorm.DB
	seed func() []catalogModel.Item
	now  func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Service)

// WithRand fixes the popularity source, mainly for tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = r }
}

// WithSeed replaces the built-in designer list.
func WithSeed(seed func() []catalogModel.Item) Option {
	return func(s *Service) { s.seed = seed }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(db *gorm.DB, opts ...Option) *Service {
	s := &Service{
		db:   db,
		seed: seeders.DesignerItems,
		now:  time.Now,
		rng:  rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh replaces the whole table with the seed list, giving every item a
// fresh popularity in [MinPopularity, MaxPopularity]. Running it again never
// duplicates rows.
func (s *Service) Refresh(ctx context.Context) error {
	items := s.seed()
	updatedAt := s.now().UTC()

	s.mu.Lock()
	for i := range items {
		items[i].ID = 0
		items[i].Popularity = MinPopularity + s.rng.IntN(MaxPopularity-MinPopularity+1)
		items[i].LastUpdated = updatedAt
	}
	s.mu.Unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&catalogModel.Item{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		logger.Error("Failed to refresh catalog", err)
		return err
	}

	metrics.CatalogRefreshes.Inc()
	logger.Success(fmt.Sprintf("Catalog refreshed with %d items", len(items)))
	return nil
}

// ListTrending returns all items, most popular first. Ties keep insertion order.
func (s *Service) ListTrending(ctx context.Context) ([]catalogModel.Item, error) {
	var items []catalogModel.Item
	err := s.db.WithContext(ctx).Order("popularity desc, id asc").Find(&items).Error
	return items, err
}

// ListByBrand filters by exact brand. An unknown brand yields an empty slice.
func (s *Service) ListByBrand(ctx context.Context, brand string) ([]catalogModel.Item, error) {
	items := []catalogModel.Item{}
	err := s.db.WithContext(ctx).
		Where("brand = ?", brand).
		Order("popularity desc, id asc").
		Find(&items).Error
	return items, err
}

// Brands lists the distinct seed brands in seed order.
func (s *Service) Brands() []string {
	seen := make(map[string]bool)
	var brands []string
	for _, it := range s.seed() {
		if !seen[it.Brand] {
			seen[it.Brand] = true
			brands = append(brands, it.Brand)
		}
	}
	return brands
}
