package domain

import (
	"fmt"
	"time"
)

type Product struct {
	ID          ID
	Name        string
	Description string
	Price       Amount
	CreatedAt   time.Time
	UpdatedAt   time.Time

	quantity int
}

func NewProduct(name string, description string, price Amount, quantity int) (*Product, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	return &Product{
		ID:          NewID(),
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		quantity:    quantity,
	}, nil
}

// Quantity returns the units currently in stock.
func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) CheckQuantity(requested int) bool {
	return requested <= p.quantity
}

// Buy takes requested units out of stock. Stock is left untouched on error.
func (p *Product) Buy(requested int) error {
	if requested < 0 {
		return ErrInvalidCount
	}
	if !p.CheckQuantity(requested) {
		return fmt.Errorf("%w: %s has %d, requested %d", ErrQuantityExceedsStock, p.Name, p.quantity, requested)
	}
	p.quantity -= requested
	p.UpdatedAt = time.Now()
	return nil
}
