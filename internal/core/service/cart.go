package service

import (
	"context"
	"errors"
	"time"

	"github.com/rafaelleal24/onlineshop/internal/core/domain"
	"github.com/rafaelleal24/onlineshop/internal/core/logger"
	"github.com/rafaelleal24/onlineshop/internal/core/port"
	"github.com/rafaelleal24/onlineshop/internal/core/serviceerrors"
)

// CartService runs the operations of a single checkout flow over one cart.
type CartService struct {
	cart      *domain.Cart
	publisher port.EventPublisher
}

func NewCartService(cart *domain.Cart, publisher port.EventPublisher) *CartService {
	return &CartService{cart: cart, publisher: publisher}
}

func (s *CartService) Cart() *domain.Cart {
	return s.cart
}

func toServiceError(err error) error {
	if errors.Is(err, domain.ErrValidation) {
		return serviceerrors.Wrap(serviceerrors.KindValidation, err)
	}
	return err
}

func productID(product *domain.Product) domain.ID {
	if product == nil {
		return ""
	}
	return product.ID
}

func (s *CartService) AddProduct(ctx context.Context, product *domain.Product, count int) error {
	if err := s.cart.AddProduct(product, count); err != nil {
		logger.Warn(ctx, "cart: add product rejected", map[string]any{
			"cart_id":    s.cart.ID,
			"product_id": productID(product),
			"count":      count,
		})
		return toServiceError(err)
	}

	logger.Debug(ctx, "Product added to cart", map[string]any{
		"cart_id":    s.cart.ID,
		"product_id": productID(product),
		"count":      s.cart.Count(product),
	})
	return nil
}

func (s *CartService) RemoveProduct(ctx context.Context, product *domain.Product) error {
	if err := s.cart.RemoveProduct(product); err != nil {
		logger.Warn(ctx, "cart: remove product rejected", map[string]any{
			"cart_id":    s.cart.ID,
			"product_id": productID(product),
		})
		return toServiceError(err)
	}

	logger.Debug(ctx, "Product removed from cart", map[string]any{
		"cart_id":    s.cart.ID,
		"product_id": productID(product),
	})
	return nil
}

func (s *CartService) RemoveProductCount(ctx context.Context, product *domain.Product, count int) error {
	if err := s.cart.RemoveProductCount(product, count); err != nil {
		logger.Warn(ctx, "cart: remove product rejected", map[string]any{
			"cart_id":    s.cart.ID,
			"product_id": productID(product),
			"count":      count,
		})
		return toServiceError(err)
	}

	logger.Debug(ctx, "Product count reduced", map[string]any{
		"cart_id":    s.cart.ID,
		"product_id": productID(product),
		"count":      s.cart.Count(product),
	})
	return nil
}

func (s *CartService) Clear(ctx context.Context) {
	s.cart.Clear()
	logger.Debug(ctx, "Cart cleared", map[string]any{"cart_id": s.cart.ID})
}

func (s *CartService) Total(context.Context) domain.Amount {
	return s.cart.TotalPrice()
}

// Checkout commits the cart against stock and publishes the result. Once
// stock is committed a publish failure is only logged.
func (s *CartService) Checkout(ctx context.Context) (*domain.CartCheckedOutEvent, error) {
	if s.cart.IsEmpty() {
		return nil, toServiceError(domain.ErrEmptyCart)
	}

	lines := domain.NewCheckoutLines(s.cart.Items())
	total := s.cart.TotalPrice()

	if err := s.cart.Buy(); err != nil {
		logger.Error(ctx, "cart: checkout failed", err, map[string]any{
			"cart_id": s.cart.ID,
		})
		return nil, toServiceError(err)
	}

	event := domain.NewCartCheckedOutEvent(s.cart.ID, lines, total, time.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error(ctx, "events: publish checkout failed", err, map[string]any{
			"cart_id": s.cart.ID,
		})
	}

	logger.Info(ctx, "Cart checked out", map[string]any{
		"cart_id":      s.cart.ID,
		"lines":        len(lines),
		"total_amount": total,
	})
	return event, nil
}
