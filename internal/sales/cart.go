package sales

// Cart holds one line per distinct product, in the order products were first added.
type Cart struct {
	items []SaleItem
}

// Add increments the existing line for p.ID using the price snapshotted on that
// line, or appends a new line priced from p. Stok tidak dicek.
func (c *Cart) Add(p Product) SaleItem {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			it := c.items[i]
			it.Quantity++
			it.Subtotal = float64(it.Quantity) * it.Price
			c.items[i] = it
			return it
		}
	}
	it := SaleItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    1,
		Price:       p.Price,
		Subtotal:    p.Price,
	}
	c.items = append(c.items, it)
	return it
}

// Remove drops the line for productID. Missing id is a no-op.
func (c *Cart) Remove(productID string) bool {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Total() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.Subtotal
	}
	return sum
}

// Items returns a copy; mutating it does not affect the cart.
func (c *Cart) Items() []SaleItem {
	return cloneItems(c.items)
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) Clear() { c.items = nil }
