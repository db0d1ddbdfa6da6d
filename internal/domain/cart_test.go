package domain

import "testing"

func testProduct(id string, cents int64) Product {
	return Product{
		ID:            id,
		Name:          "Product " + id,
		PriceCents:    cents,
		Compatibility: []string{CompatibilityUniversal},
	}
}

func TestCartAdd(t *testing.T) {
	t.Run("same product and options merge into one line", func(t *testing.T) {
		var cart Cart
		p := testProduct("b1", 1000)

		cart.Add(p, "", "", "")
		cart.Add(p, "", "", "")

		if len(cart.Lines) != 1 {
			t.Fatalf("len(Lines) = %d, want 1", len(cart.Lines))
		}
		if cart.Lines[0].Quantity != 2 {
			t.Errorf("Quantity = %d, want 2", cart.Lines[0].Quantity)
		}
		if got := cart.TotalCents(); got != 2000 {
			t.Errorf("TotalCents() = %d, want 2000", got)
		}
		if got := FormatCents(cart.TotalCents()); got != "20.00" {
			t.Errorf("FormatCents(total) = %q, want \"20.00\"", got)
		}
	})

	t.Run("different option values make distinct lines", func(t *testing.T) {
		var cart Cart
		p := testProduct("c1", 4500)

		cart.Add(p, "Black", "6cm", "")
		cart.Add(p, "Black", "8cm", "")
		cart.Add(p, "Beige", "6cm", "")

		if len(cart.Lines) != 3 {
			t.Fatalf("len(Lines) = %d, want 3", len(cart.Lines))
		}
		for i, l := range cart.Lines {
			if l.Quantity != 1 {
				t.Errorf("Lines[%d].Quantity = %d, want 1", i, l.Quantity)
			}
		}
	})

	t.Run("snapshot keeps the add-time price", func(t *testing.T) {
		var cart Cart
		p := testProduct("b1", 1000)
		cart.Add(p, "", "", "")

		// Later catalog price changes must not affect the ledger
		p.PriceCents = 9999

		if got := cart.Lines[0].UnitPriceCents; got != 1000 {
			t.Errorf("UnitPriceCents = %d, want 1000", got)
		}
		if got := cart.TotalCents(); got != 1000 {
			t.Errorf("TotalCents() = %d, want 1000", got)
		}
	})
}

func TestCartDecrement(t *testing.T) {
	t.Run("decrementing a quantity-1 line removes it", func(t *testing.T) {
		var cart Cart
		cart.Add(testProduct("b1", 1000), "", "", "")

		if err := cart.DecrementLine(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Lines) != 0 {
			t.Errorf("len(Lines) = %d, want 0", len(cart.Lines))
		}
	})

	t.Run("decrementing a quantity-2 line only lowers quantity", func(t *testing.T) {
		var cart Cart
		p := testProduct("b1", 1000)
		cart.Add(p, "", "", "")
		cart.Add(p, "", "", "")

		if err := cart.DecrementLine(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Lines) != 1 {
			t.Fatalf("len(Lines) = %d, want 1", len(cart.Lines))
		}
		if cart.Lines[0].Quantity != 1 {
			t.Errorf("Quantity = %d, want 1", cart.Lines[0].Quantity)
		}
	})

	t.Run("out of range index", func(t *testing.T) {
		var cart Cart
		if err := cart.DecrementLine(0); err != ErrLineNotFound {
			t.Errorf("error = %v, want ErrLineNotFound", err)
		}
	})
}

func TestCartRemove(t *testing.T) {
	var cart Cart
	p1 := testProduct("b1", 1000)
	p2 := testProduct("c1", 4500)
	cart.Add(p1, "", "", "")
	cart.Add(p1, "", "", "")
	cart.Add(p2, "", "", "")

	// Removal ignores quantity
	if err := cart.RemoveLine(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(cart.Lines))
	}
	if cart.Lines[0].Product.ID != "c1" {
		t.Errorf("remaining line = %s, want c1", cart.Lines[0].Product.ID)
	}

	if err := cart.RemoveLine(5); err != ErrLineNotFound {
		t.Errorf("error = %v, want ErrLineNotFound", err)
	}
}

func TestCartTotals(t *testing.T) {
	t.Run("count and total track every mutation", func(t *testing.T) {
		var cart Cart
		p1 := testProduct("b1", 1299)
		p2 := testProduct("c1", 4500)

		cart.Add(p1, "", "", "")
		cart.Add(p1, "", "", "")
		cart.Add(p2, "Black", "6cm", "")
		if err := cart.IncrementLine(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := cart.Count(); got != 4 {
			t.Errorf("Count() = %d, want 4", got)
		}
		want := int64(2*1299 + 2*4500)
		if got := cart.TotalCents(); got != want {
			t.Errorf("TotalCents() = %d, want %d", got, want)
		}
	})

	t.Run("add then remove restores prior totals", func(t *testing.T) {
		var cart Cart
		cart.Add(testProduct("b1", 1299), "", "", "")
		priorTotal := cart.TotalCents()
		priorCount := cart.Count()

		cart.Add(testProduct("me1", 1500), "", "", "")
		if err := cart.RemoveLine(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := cart.TotalCents(); got != priorTotal {
			t.Errorf("TotalCents() = %d, want %d", got, priorTotal)
		}
		if got := cart.Count(); got != priorCount {
			t.Errorf("Count() = %d, want %d", got, priorCount)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		var cart Cart
		if got := cart.TotalCents(); got != 0 {
			t.Errorf("TotalCents() = %d, want 0", got)
		}
		if got := cart.Count(); got != 0 {
			t.Errorf("Count() = %d, want 0", got)
		}
	})
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{99, "0.99"},
		{100, "1.00"},
		{1299, "12.99"},
		{19900, "199.00"},
		{-1050, "-10.50"},
	}

	for _, tt := range tests {
		if got := FormatCents(tt.cents); got != tt.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
