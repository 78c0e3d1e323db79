package domain

import (
	"fmt"

	"github.com/SscSPs/household_finance/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money is an immutable whole-number amount in one of the supported currencies.
// The zero value is not a valid Money; use NewMoney.
type Money struct {
	amount   int64
	currency CurrencyCode
}

// NewMoney creates a Money value.
// Never call it with an unsupported currency code: it panics with an error
// wrapping apperrors.ErrInvalidCurrency.
func NewMoney(amount int64, currency CurrencyCode) Money {
	if !IsSupportedCurrency(currency) {
		panic(fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, currency))
	}
	return Money{amount: amount, currency: currency}
}

// Amount returns the whole-number amount.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() CurrencyCode {
	return m.currency
}

// Convert returns the amount expressed in the target currency, rounded to the
// nearest whole number (halves away from zero).
func (m Money) Convert(to CurrencyCode) Money {
	usdRate, okFrom := toUSD[m.currency]
	targetRate, okTo := fromUSD[to]
	if !okFrom || !okTo {
		panic(fmt.Errorf("%w: %s to %s", apperrors.ErrMissingRate, m.currency, to))
	}

	inUSD := decimal.NewFromInt(m.amount).Mul(usdRate)
	converted := inUSD.Mul(targetRate).Round(0)

	return NewMoney(converted.IntPart(), to)
}

// Add converts m into other's currency and returns the sum in that currency.
func (m Money) Add(other Money) Money {
	converted := m.Convert(other.currency)
	return NewMoney(converted.amount+other.amount, other.currency)
}

// Subtract converts m into other's currency and returns m - other in that currency.
func (m Money) Subtract(other Money) Money {
	converted := m.Convert(other.currency)
	return NewMoney(converted.amount-other.amount, other.currency)
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
