package domain

import (
	"fmt"
	"time"
)

type CartItem struct {
	Product *Product
	Count   int
}

func (i CartItem) TotalAmount() Amount {
	return i.Product.Price.Multiply(i.Count)
}

// Cart maps products, by pointer identity, to the number of units requested.
// It holds references to products owned by the caller and never stores a
// count <= 0. Product.ID plays no part in the mapping.
type Cart struct {
	ID        ID
	CreatedAt time.Time

	items []CartItem
	index map[*Product]int
}

func NewCart() *Cart {
	return &Cart{
		ID:        NewID(),
		CreatedAt: time.Now(),
		index:     make(map[*Product]int),
	}
}

func (c *Cart) AddProduct(product *Product, buyCount int) error {
	if product == nil {
		return ErrInvalidProduct
	}
	if buyCount <= 0 {
		return ErrInvalidCount
	}

	i, ok := c.index[product]
	count := buyCount
	if ok {
		count += c.items[i].Count
		if count < buyCount {
			return fmt.Errorf("%w: %s", ErrAmountOverflow, product.Name)
		}
	}
	if _, err := product.Price.MultiplyChecked(count); err != nil {
		return fmt.Errorf("%w: %s", err, product.Name)
	}

	if ok {
		c.items[i].Count = count
		return nil
	}
	c.index[product] = len(c.items)
	c.items = append(c.items, CartItem{Product: product, Count: count})
	return nil
}

func (c *Cart) lookup(product *Product) (int, error) {
	if product == nil {
		return 0, ErrInvalidProduct
	}
	i, ok := c.index[product]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrProductNotInCart, product.Name)
	}
	return i, nil
}

// RemoveProduct drops the product from the cart whatever its count.
func (c *Cart) RemoveProduct(product *Product) error {
	i, err := c.lookup(product)
	if err != nil {
		return err
	}
	c.deleteAt(i)
	return nil
}

// RemoveProductCount takes removeCount units off the product's entry. The
// entry is dropped once nothing would be left.
func (c *Cart) RemoveProductCount(product *Product, removeCount int) error {
	i, err := c.lookup(product)
	if err != nil {
		return err
	}
	if removeCount <= 0 {
		return ErrInvalidCount
	}
	if removeCount >= c.items[i].Count {
		c.deleteAt(i)
		return nil
	}
	c.items[i].Count -= removeCount
	return nil
}

func (c *Cart) deleteAt(i int) {
	delete(c.index, c.items[i].Product)
	c.items = append(c.items[:i], c.items[i+1:]...)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Product] = j
	}
}

func (c *Cart) Clear() {
	c.items = nil
	c.index = make(map[*Product]int)
}

// TotalPrice sums price * count over the entries. Each line is checked
// against overflow when added; the sum and later price edits are not.
func (c *Cart) TotalPrice() Amount {
	total := Amount(0)
	for _, item := range c.items {
		total = total.Add(item.TotalAmount())
	}
	return total
}

// Buy commits the cart against stock. Every entry is checked before any
// product is touched, so on error no stock changes and the cart stays as is.
func (c *Cart) Buy() error {
	for _, item := range c.items {
		if !item.Product.CheckQuantity(item.Count) {
			return fmt.Errorf("%w: %s has %d, requested %d",
				ErrQuantityExceedsStock, item.Product.Name, item.Product.Quantity(), item.Count)
		}
	}
	for _, item := range c.items {
		if err := item.Product.Buy(item.Count); err != nil {
			return err
		}
	}
	c.Clear()
	return nil
}

// Count returns 0 for products not in the cart, nil included.
func (c *Cart) Count(product *Product) int {
	if i, ok := c.index[product]; ok {
		return c.items[i].Count
	}
	return 0
}

func (c *Cart) Contains(product *Product) bool {
	_, ok := c.index[product]
	return ok
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the entries in the order they were added.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}
