package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error the domain returns.
var ErrValidation = errors.New("validation error")

var (
	ErrQuantityExceedsStock = fmt.Errorf("%w: quantity exceeds stock", ErrValidation)
	ErrProductNotInCart     = fmt.Errorf("%w: product not in cart", ErrValidation)
	ErrInvalidCount         = fmt.Errorf("%w: count must be positive", ErrValidation)
	ErrInvalidPrice         = fmt.Errorf("%w: price must not be negative", ErrValidation)
	ErrInvalidQuantity      = fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	ErrEmptyCart            = fmt.Errorf("%w: cart is empty", ErrValidation)
	ErrInvalidProduct       = fmt.Errorf("%w: product is required", ErrValidation)
	ErrAmountOverflow       = fmt.Errorf("%w: amount out of range", ErrValidation)
)
