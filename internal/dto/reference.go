package dto

import (
	"sort"
	"strconv"

	"github.com/saiharsha-plivo/money-manager/internal/registry"
	"github.com/shopspring/decimal"
)

// CurrencyResponse is the API representation of a registry currency.
type CurrencyResponse struct {
	CurrencyID string          `json:"currencyID"`
	Name       string          `json:"name"`
	Symbol     string          `json:"symbol"`
	Code       string          `json:"code"`
	Rate       decimal.Decimal `json:"rate"`
}

// CategoryResponse is the API representation of a registry category.
type CategoryResponse struct {
	TypeID string `json:"typeID"`
	Type   string `json:"type"`
	Name   string `json:"name"`
}

// ToCurrencyResponse converts a single registry currency to its DTO.
func ToCurrencyResponse(id string, c registry.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID: id,
		Name:       c.Name,
		Symbol:     c.Symbol,
		Code:       c.Code,
		Rate:       c.Rate,
	}
}

// ToCategoryResponse converts a single registry category to its DTO.
func ToCategoryResponse(id string, c registry.Category) CategoryResponse {
	return CategoryResponse{
		TypeID: id,
		Type:   string(c.Kind),
		Name:   c.Name,
	}
}

// ToCurrencyResponses flattens the currency registry into a slice sorted by
// numeric id.
func ToCurrencyResponses(currencies map[string]registry.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, 0, len(currencies))
	for id, c := range currencies {
		out = append(out, CurrencyResponse{
			CurrencyID: id,
			Name:       c.Name,
			Symbol:     c.Symbol,
			Code:       c.Code,
			Rate:       c.Rate,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].CurrencyID)
		b, _ := strconv.Atoi(out[j].CurrencyID)
		return a < b
	})
	return out
}

// ToCategoryResponses flattens the category registry into a slice sorted by
// numeric id.
func ToCategoryResponses(categories map[string]registry.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for id, c := range categories {
		out = append(out, CategoryResponse{
			TypeID: id,
			Type:   string(c.Kind),
			Name:   c.Name,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].TypeID)
		b, _ := strconv.Atoi(out[j].TypeID)
		return a < b
	})
	return out
}
