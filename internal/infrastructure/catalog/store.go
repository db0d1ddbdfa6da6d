// Package catalog holds the static storefront catalog: products, device
// models, categories, and blog posts. Records are created once at startup and
// never mutated.
package catalog

import (
	"github.com/cochlearspare/backend/internal/domain"
)

// Store is the in-memory catalog repository
type Store struct {
	products   []domain.Product
	productIdx map[string]int
	devices    []domain.DeviceModel
	categories []domain.Category
	posts      []domain.BlogPost
	postIdx    map[string]int
}

// NewStore loads the built-in catalog
func NewStore() *Store {
	return newStoreWith(seedProducts(), seedDevices(), seedCategories(), seedPosts())
}

// NewStoreWith builds a store over caller-supplied records, used by tests
func NewStoreWith(
	products []domain.Product,
	devices []domain.DeviceModel,
	categories []domain.Category,
	posts []domain.BlogPost,
) *Store {
	return newStoreWith(products, devices, categories, posts)
}

func newStoreWith(
	products []domain.Product,
	devices []domain.DeviceModel,
	categories []domain.Category,
	posts []domain.BlogPost,
) *Store {
	s := &Store{
		products:   products,
		productIdx: make(map[string]int, len(products)),
		devices:    devices,
		categories: categories,
		posts:      posts,
		postIdx:    make(map[string]int, len(posts)),
	}
	for i, p := range products {
		s.productIdx[p.ID] = i
	}
	for i, b := range posts {
		s.postIdx[b.ID] = i
	}
	return s
}

// Products returns the full catalog in catalog order
func (s *Store) Products() []domain.Product {
	return s.products
}

// ProductByID looks up one product
func (s *Store) ProductByID(id string) (domain.Product, error) {
	i, ok := s.productIdx[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return s.products[i], nil
}

// Devices returns every device model in catalog order
func (s *Store) Devices() []domain.DeviceModel {
	return s.devices
}

// Categories returns the shopping categories
func (s *Store) Categories() []domain.Category {
	return s.categories
}

// Posts returns the blog posts
func (s *Store) Posts() []domain.BlogPost {
	return s.posts
}

// PostByID looks up one blog post
func (s *Store) PostByID(id string) (domain.BlogPost, error) {
	i, ok := s.postIdx[id]
	if !ok {
		return domain.BlogPost{}, domain.ErrPostNotFound
	}
	return s.posts[i], nil
}
