package domain

import "time"

type CheckoutLine struct {
	ProductID   ID     `json:"product_id"`
	ProductName string `json:"product_name"`
	Count       int    `json:"count"`
	UnitPrice   Amount `json:"unit_price"`
}

func NewCheckoutLines(items []CartItem) []CheckoutLine {
	lines := make([]CheckoutLine, len(items))
	for i, item := range items {
		lines[i] = CheckoutLine{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Count:       item.Count,
			UnitPrice:   item.Product.Price,
		}
	}
	return lines
}

type CartCheckedOutEvent struct {
	CartID       ID             `json:"cart_id"`
	Lines        []CheckoutLine `json:"lines"`
	TotalAmount  Amount         `json:"total_amount"`
	CheckedOutAt time.Time      `json:"checked_out_at"`
}

func (e *CartCheckedOutEvent) GetName() string {
	return "cart.checked_out"
}

func (e *CartCheckedOutEvent) GetEntityName() string {
	return "cart"
}

func NewCartCheckedOutEvent(cartID ID, lines []CheckoutLine, totalAmount Amount, checkedOutAt time.Time) *CartCheckedOutEvent {
	return &CartCheckedOutEvent{
		CartID:       cartID,
		Lines:        lines,
		TotalAmount:  totalAmount,
		CheckedOutAt: checkedOutAt,
	}
}
