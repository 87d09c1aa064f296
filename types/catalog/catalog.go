package catalog

import "tms-lite/models/catalog"

// TrendingItem is one element of GET /trending.
type TrendingItem struct {
	Brand      string  `json:"brand"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Popularity int     `json:"popularity"`
}

// BrandItem is one element of GET /brand/:brand; the brand is implied by the path.
type BrandItem struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	Popularity int     `json:"popularity"`
	Image      string  `json:"image"`
}

func NewTrendingItems(items []catalog.Item) []TrendingItem {
	out := make([]TrendingItem, 0, len(items))
	for _, it := range items {
		out = append(out, TrendingItem{
			Brand:      it.Brand,
			Name:       it.Name,
			Category:   it.Category,
			Price:      it.Price,
			Image:      it.ImageURL,
			Popularity: it.Popularity,
		})
	}
	return out
}

func NewBrandItems(items []catalog.Item) []BrandItem {
	out := make([]BrandItem, 0, len(items))
	for _, it := range items {
		out = append(out, BrandItem{
			Name:       it.Name,
			Category:   it.Category,
			Price:      it.Price,
			Popularity: it.Popularity,
			Image:      it.ImageURL,
		})
	}
	return out
}
