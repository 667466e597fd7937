package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rafaelleal24/onlineshop/internal/adapters/config"
	"github.com/rafaelleal24/onlineshop/internal/adapters/eventlog"
	"github.com/rafaelleal24/onlineshop/internal/core/domain"
	"github.com/rafaelleal24/onlineshop/internal/core/logger"
	"github.com/rafaelleal24/onlineshop/internal/core/service"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Println("failed to load config: " + err.Error())
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stdout
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	ctx := context.Background()
	os.Exit(finish(ctx, run(ctx, cfg.Shop)))
}

// finish logs a failed run, flushes the logger and returns the exit code.
func finish(ctx context.Context, runErr error) int {
	code := 0
	if runErr != nil {
		logger.Error(ctx, "Shop run failed", runErr, nil)
		code = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Println("logger shutdown error: " + err.Error())
	}
	return code
}

func run(ctx context.Context, cfg config.ShopConfig) error {
	book, err := domain.NewProduct("book", "This is a book", domain.NewAmountFromValue(100), 1000)
	if err != nil {
		return err
	}
	pen, err := domain.NewProduct("pen", "This is a pen", domain.NewAmountFromValue(50), 300)
	if err != nil {
		return err
	}

	carts := service.NewCartService(domain.NewCart(), eventlog.NewPublisher())
	if err := carts.AddProduct(ctx, book, 3); err != nil {
		return err
	}
	if err := carts.AddProduct(ctx, pen, 2); err != nil {
		return err
	}
	logger.Info(ctx, "Cart ready", map[string]any{
		"cart_id":  carts.Cart().ID,
		"total":    carts.Total(ctx).ToValue(),
		"currency": cfg.Currency,
	})

	if _, err := carts.Checkout(ctx); err != nil {
		return err
	}
	logger.Info(ctx, "Stock after checkout", map[string]any{
		"book": book.Quantity(),
		"pen":  pen.Quantity(),
	})

	// over-stock checkout is rejected and leaves stock untouched
	if err := carts.AddProduct(ctx, book, book.Quantity()+1); err != nil {
		return err
	}
	if _, err := carts.Checkout(ctx); err == nil {
		return fmt.Errorf("expected over-stock checkout to be rejected")
	}
	logger.Info(ctx, "Over-stock checkout rejected", map[string]any{
		"book":      book.Quantity(),
		"cart_size": carts.Cart().Len(),
	})
	return nil
}
