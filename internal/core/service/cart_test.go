package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rafaelleal24/onlineshop/internal/core/domain"
	"github.com/rafaelleal24/onlineshop/internal/core/port/mock"
	"github.com/rafaelleal24/onlineshop/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

type cartFixture struct {
	svc       *CartService
	publisher *mock.MockEventPublisher
	book      *domain.Product
	pen       *domain.Product
}

func setupCartService(t *testing.T) *cartFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	publisher := mock.NewMockEventPublisher(ctrl)

	book, err := domain.NewProduct("book", "This is a book", domain.NewAmountFromValue(100), 1000)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	pen, err := domain.NewProduct("pen", "This is a pen", domain.NewAmountFromValue(50), 300)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	return &cartFixture{
		svc:       NewCartService(domain.NewCart(), publisher),
		publisher: publisher,
		book:      book,
		pen:       pen,
	}
}

func TestCartService_AddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := setupCartService(t)
		if err := f.svc.AddProduct(ctx, f.book, 3); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := f.svc.Cart().Count(f.book); got != 3 {
			t.Fatalf("expected count 3, got %d", got)
		}
	})

	t.Run("invalid count", func(t *testing.T) {
		f := setupCartService(t)
		err := f.svc.AddProduct(ctx, f.book, 0)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if !errors.Is(err, domain.ErrInvalidCount) {
			t.Fatalf("expected ErrInvalidCount in chain, got %v", err)
		}
	})
}

func TestCartService_RemoveProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("whole entry", func(t *testing.T) {
		f := setupCartService(t)
		_ = f.svc.AddProduct(ctx, f.book, 3)
		if err := f.svc.RemoveProduct(ctx, f.book); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !f.svc.Cart().IsEmpty() {
			t.Fatal("expected empty cart")
		}
	})

	t.Run("by count", func(t *testing.T) {
		f := setupCartService(t)
		_ = f.svc.AddProduct(ctx, f.book, 3)
		if err := f.svc.RemoveProductCount(ctx, f.book, 1); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := f.svc.Cart().Count(f.book); got != 2 {
			t.Fatalf("expected count 2, got %d", got)
		}
	})

	t.Run("not in cart", func(t *testing.T) {
		f := setupCartService(t)
		for _, err := range []error{
			f.svc.RemoveProduct(ctx, f.book),
			f.svc.RemoveProductCount(ctx, f.book, 1),
		} {
			if !serviceerrors.IsOfKind(err, serviceerrors.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !errors.Is(err, domain.ErrProductNotInCart) {
				t.Fatalf("expected ErrProductNotInCart in chain, got %v", err)
			}
		}
	})
}

func TestCartService_NilProduct(t *testing.T) {
	ctx := context.Background()
	f := setupCartService(t)

	for _, err := range []error{
		f.svc.AddProduct(ctx, nil, 1),
		f.svc.RemoveProduct(ctx, nil),
		f.svc.RemoveProductCount(ctx, nil, 1),
	} {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if !errors.Is(err, domain.ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct in chain, got %v", err)
		}
	}
}

func TestCartService_ClearAndTotal(t *testing.T) {
	ctx := context.Background()
	f := setupCartService(t)
	_ = f.svc.AddProduct(ctx, f.book, 3)
	_ = f.svc.AddProduct(ctx, f.pen, 2)

	if got := f.svc.Total(ctx); got.ToValue() != 400 {
		t.Fatalf("expected total 400, got %d", got.ToValue())
	}

	f.svc.Clear(ctx)
	if !f.svc.Cart().IsEmpty() {
		t.Fatal("expected empty cart")
	}
	if got := f.svc.Total(ctx); got != 0 {
		t.Fatalf("expected total 0, got %d", got)
	}
}

func TestCartService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := setupCartService(t)
		_ = f.svc.AddProduct(ctx, f.book, 3)
		_ = f.svc.AddProduct(ctx, f.pen, 2)
		cartID := f.svc.Cart().ID

		f.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e domain.Event) error {
				if e.GetName() != "cart.checked_out" {
					t.Errorf("expected event 'cart.checked_out', got %q", e.GetName())
				}
				return nil
			})

		event, err := f.svc.Checkout(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if event.CartID != cartID {
			t.Fatalf("expected cart id %s, got %s", cartID, event.CartID)
		}
		if len(event.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(event.Lines))
		}
		if event.TotalAmount.ToValue() != 400 {
			t.Fatalf("expected total 400, got %d", event.TotalAmount.ToValue())
		}
		if f.book.Quantity() != 997 || f.pen.Quantity() != 298 {
			t.Fatalf("expected stock 997/298, got %d/%d", f.book.Quantity(), f.pen.Quantity())
		}
		if !f.svc.Cart().IsEmpty() {
			t.Fatal("expected empty cart after checkout")
		}
	})

	t.Run("more than available", func(t *testing.T) {
		f := setupCartService(t)
		_ = f.svc.AddProduct(ctx, f.book, 1001)

		event, err := f.svc.Checkout(ctx)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if !errors.Is(err, domain.ErrQuantityExceedsStock) {
			t.Fatalf("expected ErrQuantityExceedsStock in chain, got %v", err)
		}
		if event != nil {
			t.Fatal("expected nil event on error")
		}
		if f.book.Quantity() != 1000 {
			t.Fatalf("expected stock unchanged at 1000, got %d", f.book.Quantity())
		}
		if f.svc.Cart().Count(f.book) != 1001 {
			t.Fatal("expected cart left intact")
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		f := setupCartService(t)
		_, err := f.svc.Checkout(ctx)
		if !errors.Is(err, domain.ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("publish failure keeps checkout", func(t *testing.T) {
		f := setupCartService(t)
		_ = f.svc.AddProduct(ctx, f.pen, 2)

		f.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			Return(errors.New("publish failed"))

		event, err := f.svc.Checkout(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if event == nil {
			t.Fatal("expected event")
		}
		if f.pen.Quantity() != 298 {
			t.Fatalf("expected stock 298, got %d", f.pen.Quantity())
		}
	})
}
