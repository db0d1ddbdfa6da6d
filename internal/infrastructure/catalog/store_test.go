package catalog

import (
	"errors"
	"testing"

	"github.com/cochlearspare/backend/internal/domain"
)

func TestStoreLookups(t *testing.T) {
	store := NewStore()

	t.Run("product lookup", func(t *testing.T) {
		p, err := store.ProductByID("b1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name == "" || p.PriceCents <= 0 {
			t.Errorf("product b1 = %+v, want a priced named product", p)
		}

		if _, err := store.ProductByID("nope"); !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want ErrProductNotFound", err)
		}
	})

	t.Run("post lookup", func(t *testing.T) {
		posts := store.Posts()
		if len(posts) == 0 {
			t.Fatal("no blog posts seeded")
		}
		got, err := store.PostByID(posts[0].ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != posts[0].Title {
			t.Errorf("title = %q, want %q", got.Title, posts[0].Title)
		}

		if _, err := store.PostByID("nope"); !errors.Is(err, domain.ErrPostNotFound) {
			t.Errorf("error = %v, want ErrPostNotFound", err)
		}
	})
}

// TestSeedIntegrity guards the built-in catalog against editing mistakes:
// IDs stay unique, prices stay positive, and every compatibility tag resolves
// to a seeded device series.
func TestSeedIntegrity(t *testing.T) {
	store := NewStore()

	series := make(map[string]bool)
	for _, d := range store.Devices() {
		if !d.Brand.Valid() {
			t.Errorf("device %s has unknown brand %q", d.ID, d.Brand)
		}
		if d.Series == "" {
			t.Errorf("device %s has no series", d.ID)
		}
		series[d.Series] = true
	}

	seen := make(map[string]bool)
	for _, p := range store.Products() {
		if seen[p.ID] {
			t.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true

		if p.PriceCents <= 0 {
			t.Errorf("product %s has non-positive price %d", p.ID, p.PriceCents)
		}
		if p.OriginalPriceCents != 0 && p.OriginalPriceCents <= p.PriceCents {
			t.Errorf("product %s original price %d is not above sale price %d",
				p.ID, p.OriginalPriceCents, p.PriceCents)
		}
		if len(p.Compatibility) == 0 {
			t.Errorf("product %s has no compatibility tags", p.ID)
		}
		for _, tag := range p.Compatibility {
			if tag != domain.CompatibilityUniversal && !series[tag] {
				t.Errorf("product %s references unknown series %q", p.ID, tag)
			}
		}
	}

	if len(store.Categories()) == 0 {
		t.Error("no categories seeded")
	}

	for _, brand := range domain.Brands {
		found := false
		for _, d := range store.Devices() {
			if d.Brand == brand {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("brand %s has no seeded device models", brand)
		}
	}
}
