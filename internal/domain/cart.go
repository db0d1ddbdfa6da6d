package domain

import "fmt"

// CartLine is one distinct (product, chosen options) combination in the cart.
// UnitPriceCents is a snapshot of the product price at add time.
type CartLine struct {
	Product          Product `json:"product"`
	Quantity         int     `json:"quantity"`
	SelectedColor    string  `json:"selectedColor,omitempty"`
	SelectedSize     string  `json:"selectedSize,omitempty"`
	SelectedCapacity string  `json:"selectedCapacity,omitempty"`
	UnitPriceCents   int64   `json:"unitPriceCents"`
}

// key identifies a line: two additions with the same key merge into one line.
func (l CartLine) key() string {
	return l.Product.ID + "|" + l.SelectedColor + "|" + l.SelectedSize + "|" + l.SelectedCapacity
}

// SubtotalCents is the line price, exact in cents
func (l CartLine) SubtotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// Cart is the in-memory ledger of line items for one session. Lines keep
// insertion order; identity is (product id, color, size, capacity).
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add merges the product into the cart. An existing line with the same
// product and options gets its quantity bumped; otherwise a new line is
// appended with quantity 1 and the current price snapshotted.
func (c *Cart) Add(product Product, color, size, capacity string) {
	line := CartLine{
		Product:          product,
		Quantity:         1,
		SelectedColor:    color,
		SelectedSize:     size,
		SelectedCapacity: capacity,
		UnitPriceCents:   product.PriceCents,
	}
	for i := range c.Lines {
		if c.Lines[i].key() == line.key() {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// IncrementLine bumps the quantity of the line at index. No upper bound.
func (c *Cart) IncrementLine(index int) error {
	if index < 0 || index >= len(c.Lines) {
		return ErrLineNotFound
	}
	c.Lines[index].Quantity++
	return nil
}

// DecrementLine lowers the quantity of the line at index, removing the line
// entirely rather than leaving it at zero.
func (c *Cart) DecrementLine(index int) error {
	if index < 0 || index >= len(c.Lines) {
		return ErrLineNotFound
	}
	if c.Lines[index].Quantity <= 1 {
		return c.RemoveLine(index)
	}
	c.Lines[index].Quantity--
	return nil
}

// RemoveLine deletes the line at index regardless of quantity
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.Lines) {
		return ErrLineNotFound
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	return nil
}

// TotalCents sums price*quantity over all lines, exact in cents
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.SubtotalCents()
	}
	return total
}

// Count sums quantities over all lines (the header badge value)
func (c *Cart) Count() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// FormatCents renders an exact cent amount as a 2-decimal display string
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
