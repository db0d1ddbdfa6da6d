package usecase

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cochlearspare/backend/internal/domain"
)

// Package-level compiled regex pattern for performance
var searchPunctuationRegex = regexp.MustCompile(`[^\w\s]`)

// CatalogService answers catalog queries: the brand/model compatibility
// filter, per-brand device listings, and product search. All methods are pure
// reads over the static catalog and preserve catalog order unless ranking.
type CatalogService struct {
	catalog domain.CatalogRepository
}

// NewCatalogService creates a catalog service backed by the given repository
func NewCatalogService(catalog domain.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// FilterProducts returns the products compatible with the given selection:
//   - empty brand: the full catalog, unfiltered
//   - brand only: products tagged "Universal" or intersecting the series set
//     of the brand's device models
//   - brand and model: products tagged "Universal" or containing the model
//     series exactly
//
// A brand with no device models degrades to Universal-only.
func (s *CatalogService) FilterProducts(brand domain.Brand, model string) ([]domain.Product, error) {
	products := s.catalog.Products()
	if brand == "" {
		return products, nil
	}
	if !brand.Valid() {
		return nil, domain.ErrUnknownBrand
	}

	if model != "" {
		var out []domain.Product
		for _, p := range products {
			if p.CompatibleWith(model) {
				out = append(out, p)
			}
		}
		return out, nil
	}

	series := make(map[string]bool)
	for _, d := range s.catalog.Devices() {
		if d.Brand == brand {
			series[d.Series] = true
		}
	}

	var out []domain.Product
	for _, p := range products {
		if p.Universal() || intersects(p.Compatibility, series) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ModelsForBrand returns the device models of one manufacturer, catalog order
func (s *CatalogService) ModelsForBrand(brand domain.Brand) ([]domain.DeviceModel, error) {
	if !brand.Valid() {
		return nil, domain.ErrUnknownBrand
	}
	var out []domain.DeviceModel
	for _, d := range s.catalog.Devices() {
		if d.Brand == brand {
			out = append(out, d)
		}
	}
	return out, nil
}

// ProductsByCategory returns the products of one category, catalog order
func (s *CatalogService) ProductsByCategory(category string) []domain.Product {
	var out []domain.Product
	for _, p := range s.catalog.Products() {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// BulkProducts returns the bulk-deal subset, catalog order
func (s *CatalogService) BulkProducts() []domain.Product {
	var out []domain.Product
	for _, p := range s.catalog.Products() {
		if p.Bulk {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts ranks products against a free-text query. Scoring is token
// overlap between the query and the product name/description, with a bonus
// for an exact name substring. Ties keep catalog order.
func (s *CatalogService) SearchProducts(query string) []domain.Product {
	queryTokens := searchTokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	type scored struct {
		product domain.Product
		score   float64
		pos     int
	}

	var matches []scored
	for i, p := range s.catalog.Products() {
		score := searchScore(queryTokens, p, query)
		if score > 0 {
			matches = append(matches, scored{product: p, score: score, pos: i})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].pos < matches[j].pos
	})

	out := make([]domain.Product, len(matches))
	for i, m := range matches {
		out[i] = m.product
	}
	return out
}

// searchScore computes the fraction of query tokens found in the product
// name or description, plus a substring bonus.
func searchScore(queryTokens []string, p domain.Product, rawQuery string) float64 {
	productTokens := make(map[string]bool)
	for _, t := range searchTokenize(p.Name) {
		productTokens[t] = true
	}
	for _, t := range searchTokenize(p.Description) {
		productTokens[t] = true
	}

	matched := 0
	for _, t := range queryTokens {
		if productTokens[t] {
			matched++
		}
	}
	score := float64(matched) / float64(len(queryTokens))

	q := strings.ToLower(strings.TrimSpace(rawQuery))
	if len(q) > 2 && strings.Contains(strings.ToLower(p.Name), q) {
		score += 0.5
	}
	return score
}

// searchTokenize splits a string into normalized lowercase tokens, dropping
// punctuation and single-character noise.
func searchTokenize(s string) []string {
	cleaned := searchPunctuationRegex.ReplaceAllString(strings.ToLower(s), " ")
	var tokens []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 1 {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// intersects reports whether any tag is in the series set
func intersects(tags []string, series map[string]bool) bool {
	for _, t := range tags {
		if series[t] {
			return true
		}
	}
	return false
}
