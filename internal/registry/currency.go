// Package registry holds the process-wide, read-only reference data used to
// validate record fields: the currency table and the category table. Both are
// initialized once at package load and never mutated, so they are safe for
// unsynchronized concurrent reads.
package registry

import (
	"fmt"

	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Currency is a single entry in the currency registry. Rate is the amount of
// this currency one US dollar buys.
type Currency struct {
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Code   string          `json:"code"`
	Rate   decimal.Decimal `json:"rate"`
}

var currencies = map[string]Currency{
	"1":  {Name: "US Dollar", Symbol: "$", Code: "USD", Rate: decimal.NewFromFloat(1.00)},
	"2":  {Name: "Euro", Symbol: "€", Code: "EUR", Rate: decimal.NewFromFloat(0.85)},
	"3":  {Name: "British Pound", Symbol: "£", Code: "GBP", Rate: decimal.NewFromFloat(0.75)},
	"4":  {Name: "Japanese Yen", Symbol: "¥", Code: "JPY", Rate: decimal.NewFromFloat(110.0)},
	"5":  {Name: "Swiss Franc", Symbol: "CHF", Code: "CHF", Rate: decimal.NewFromFloat(0.91)},
	"6":  {Name: "Canadian Dollar", Symbol: "C$", Code: "CAD", Rate: decimal.NewFromFloat(1.26)},
	"7":  {Name: "Australian Dollar", Symbol: "A$", Code: "AUD", Rate: decimal.NewFromFloat(1.34)},
	"8":  {Name: "Indian Rupee", Symbol: "₹", Code: "INR", Rate: decimal.NewFromFloat(74.5)},
	"9":  {Name: "Chinese Yuan", Symbol: "¥", Code: "CNY", Rate: decimal.NewFromFloat(6.45)},
	"10": {Name: "Singapore Dollar", Symbol: "S$", Code: "SGD", Rate: decimal.NewFromFloat(1.35)},
	"11": {Name: "New Zealand Dollar", Symbol: "NZ$", Code: "NZD", Rate: decimal.NewFromFloat(1.43)},
	"12": {Name: "South Korean Won", Symbol: "₩", Code: "KRW", Rate: decimal.NewFromFloat(1150.0)},
	"13": {Name: "Mexican Peso", Symbol: "Mex$", Code: "MXN", Rate: decimal.NewFromFloat(20.0)},
	"14": {Name: "Brazilian Real", Symbol: "R$", Code: "BRL", Rate: decimal.NewFromFloat(5.2)},
	"15": {Name: "South African Rand", Symbol: "R", Code: "ZAR", Rate: decimal.NewFromFloat(14.3)},
	"16": {Name: "Russian Ruble", Symbol: "₽", Code: "RUB", Rate: decimal.NewFromFloat(73.0)},
	"17": {Name: "Turkish Lira", Symbol: "₺", Code: "TRY", Rate: decimal.NewFromFloat(8.6)},
	"18": {Name: "Swedish Krona", Symbol: "kr", Code: "SEK", Rate: decimal.NewFromFloat(8.5)},
	"19": {Name: "Norwegian Krone", Symbol: "kr", Code: "NOK", Rate: decimal.NewFromFloat(8.7)},
	"20": {Name: "Danish Krone", Symbol: "kr", Code: "DKK", Rate: decimal.NewFromFloat(6.3)},
	"21": {Name: "Polish Zloty", Symbol: "zł", Code: "PLN", Rate: decimal.NewFromFloat(3.9)},
	"22": {Name: "Thai Baht", Symbol: "฿", Code: "THB", Rate: decimal.NewFromFloat(33.0)},
	"23": {Name: "Malaysian Ringgit", Symbol: "RM", Code: "MYR", Rate: decimal.NewFromFloat(4.1)},
	"24": {Name: "Indonesian Rupiah", Symbol: "Rp", Code: "IDR", Rate: decimal.NewFromFloat(14200.0)},
	"25": {Name: "Philippine Peso", Symbol: "₱", Code: "PHP", Rate: decimal.NewFromFloat(50.0)},
	"26": {Name: "Vietnamese Dong", Symbol: "₫", Code: "VND", Rate: decimal.NewFromFloat(23000.0)},
	"27": {Name: "UAE Dirham", Symbol: "د.إ", Code: "AED", Rate: decimal.NewFromFloat(3.67)},
	"28": {Name: "Saudi Riyal", Symbol: "﷼", Code: "SAR", Rate: decimal.NewFromFloat(3.75)},
	"29": {Name: "Israeli Shekel", Symbol: "₪", Code: "ILS", Rate: decimal.NewFromFloat(3.3)},
	"30": {Name: "Argentine Peso", Symbol: "$", Code: "ARS", Rate: decimal.NewFromFloat(95.0)},
}

// LookupCurrency returns the currency registered under the given id.
// Unknown ids yield apperrors.ErrNotFound.
func LookupCurrency(id string) (Currency, error) {
	c, ok := currencies[id]
	if !ok {
		return Currency{}, fmt.Errorf("currency id %s: %w", id, apperrors.ErrNotFound)
	}
	return c, nil
}

// HasCurrency reports whether the given id is a registered currency.
func HasCurrency(id string) bool {
	_, ok := currencies[id]
	return ok
}

// Currencies returns a copy of the full currency table keyed by id.
func Currencies() map[string]Currency {
	out := make(map[string]Currency, len(currencies))
	for id, c := range currencies {
		out[id] = c
	}
	return out
}

// FindCurrencyByCode returns the currency with the given ISO code along with
// its registry id.
func FindCurrencyByCode(code string) (string, Currency, error) {
	for id, c := range currencies {
		if c.Code == code {
			return id, c, nil
		}
	}
	return "", Currency{}, fmt.Errorf("currency code %s: %w", code, apperrors.ErrNotFound)
}

// USDToCurrency converts a USD amount into the currency registered under the
// given id. Conversion helpers are not invoked by any write path; records
// store amounts in their own currency.
func USDToCurrency(amount decimal.Decimal, currencyID string) (decimal.Decimal, error) {
	c, err := LookupCurrency(currencyID)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(c.Rate), nil
}

// CurrencyToUSD converts an amount in the currency registered under the given
// id back into USD.
func CurrencyToUSD(amount decimal.Decimal, currencyID string) (decimal.Decimal, error) {
	c, err := LookupCurrency(currencyID)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Div(c.Rate), nil
}
