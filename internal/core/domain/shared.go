package domain

import (
	"math"

	"github.com/google/uuid"
)

type ID string

func NewID() ID {
	return ID(uuid.NewString())
}

func ValidateID(id string) bool {
	return uuid.Validate(id) == nil
}

// Amount is a price in cents.
type Amount int

func NewAmountFromCents(cents int) Amount {
	return Amount(cents)
}

func NewAmountFromValue(value int) Amount {
	return Amount(value * 100)
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

// Multiply does not check for overflow; use MultiplyChecked when b is not
// already known to keep the product in range.
func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

// MultiplyChecked returns ErrAmountOverflow when a * b does not fit in an int.
func (a Amount) MultiplyChecked(b int) (Amount, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, ErrAmountOverflow
	}
	r := a * Amount(b)
	if r/Amount(b) != a {
		return 0, ErrAmountOverflow
	}
	return r, nil
}

func (a Amount) ToValue() int {
	return int(a) / 100
}

type Event interface {
	GetName() string
	GetEntityName() string
}
