package domain

import "github.com/shopspring/decimal"

// CurrencyCode identifies one of the supported currencies (e.g., "USD").
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	CAN CurrencyCode = "CAN"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	Code   CurrencyCode // e.g., "USD"
	Symbol string       // e.g., "$"
	Name   string       // e.g., "US Dollar"
}

var supportedCurrencies = []Currency{
	{Code: USD, Symbol: "$", Name: "US Dollar"},
	{Code: EUR, Symbol: "€", Name: "Euro"},
	{Code: GBP, Symbol: "£", Name: "British Pound"},
	{Code: CAN, Symbol: "C$", Name: "Canadian Dollar"},
}

// Fixed rates. Every conversion goes through USD: amount * toUSD[from] * fromUSD[to].
var (
	toUSD = map[CurrencyCode]decimal.Decimal{
		USD: decimal.NewFromInt(1),
		GBP: decimal.NewFromInt(2),
		EUR: decimal.NewFromInt(2).Div(decimal.NewFromInt(3)),
		CAN: decimal.RequireFromString("0.8"),
	}
	fromUSD = map[CurrencyCode]decimal.Decimal{
		USD: decimal.NewFromInt(1),
		GBP: decimal.RequireFromString("0.5"),
		EUR: decimal.RequireFromString("1.5"),
		CAN: decimal.RequireFromString("1.25"),
	}
)

// SupportedCurrencies returns the supported currencies in a stable order.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// IsSupportedCurrency reports whether code belongs to the fixed currency set.
func IsSupportedCurrency(code CurrencyCode) bool {
	_, ok := LookupCurrency(code)
	return ok
}

// LookupCurrency returns the metadata for code.
func LookupCurrency(code CurrencyCode) (Currency, bool) {
	for _, c := range supportedCurrencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}
