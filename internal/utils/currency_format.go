package utils

import (
	"github.com/SscSPs/household_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with its currency symbol.
// Example: 200 USD returns "$200"
// Example: -15 EUR returns "-€15"
func FormatMoney(m domain.Money) string {
	currency, _ := domain.LookupCurrency(m.Currency())
	amount := decimal.NewFromInt(m.Amount())

	if amount.IsNegative() {
		return "-" + currency.Symbol + amount.Abs().StringFixed(0)
	}
	return currency.Symbol + amount.StringFixed(0)
}
