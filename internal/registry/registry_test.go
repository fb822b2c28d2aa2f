package registry

import (
	"testing"

	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCurrency(t *testing.T) {
	c, err := LookupCurrency("1")
	require.NoError(t, err)
	assert.Equal(t, "USD", c.Code)
	assert.True(t, c.Rate.Equal(decimal.NewFromInt(1)))

	c, err = LookupCurrency("8")
	require.NoError(t, err)
	assert.Equal(t, "INR", c.Code)
	assert.Equal(t, "₹", c.Symbol)

	_, err = LookupCurrency("999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = LookupCurrency("")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCurrencyTableShape(t *testing.T) {
	all := Currencies()
	assert.Len(t, all, 30)
	for id, c := range all {
		assert.NotEmpty(t, c.Name, "currency %s has no name", id)
		assert.NotEmpty(t, c.Code, "currency %s has no code", id)
		assert.True(t, c.Rate.IsPositive(), "currency %s has non-positive rate", id)
	}
}

func TestCurrenciesReturnsCopy(t *testing.T) {
	all := Currencies()
	delete(all, "1")
	assert.True(t, HasCurrency("1"))
}

func TestFindCurrencyByCode(t *testing.T) {
	id, c, err := FindCurrencyByCode("EUR")
	require.NoError(t, err)
	assert.Equal(t, "2", id)
	assert.Equal(t, "Euro", c.Name)

	_, _, err = FindCurrencyByCode("XXX")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCurrencyConversion(t *testing.T) {
	got, err := USDToCurrency(decimal.NewFromInt(10), "4")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1100)), "got %s", got)

	back, err := CurrencyToUSD(got, "4")
	require.NoError(t, err)
	assert.True(t, back.Equal(decimal.NewFromInt(10)), "got %s", back)

	_, err = USDToCurrency(decimal.NewFromInt(10), "999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLookupCategory(t *testing.T) {
	c, err := LookupCategory("1")
	require.NoError(t, err)
	assert.Equal(t, KindIncome, c.Kind)
	assert.Equal(t, "salary", c.Name)

	// "7" is the first expense id.
	c, err = LookupCategory("7")
	require.NoError(t, err)
	assert.Equal(t, KindExpense, c.Kind)
	assert.Equal(t, "food", c.Name)

	c, err = LookupCategory("22")
	require.NoError(t, err)
	assert.Equal(t, KindExpense, c.Kind)
	assert.Equal(t, "water", c.Name)

	_, err = LookupCategory("99")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryTableShape(t *testing.T) {
	all := Categories()
	assert.Len(t, all, 23)
	income, expense := 0, 0
	for id, c := range all {
		assert.NotEmpty(t, c.Name, "category %s has no name", id)
		switch c.Kind {
		case KindIncome:
			income++
		case KindExpense:
			expense++
		default:
			t.Fatalf("category %s has unknown kind %q", id, c.Kind)
		}
	}
	assert.Equal(t, 6, income)
	assert.Equal(t, 17, expense)
}

func TestFindCategoryByName(t *testing.T) {
	id, c, err := FindCategoryByName("transportation")
	require.NoError(t, err)
	assert.Equal(t, "8", id)
	assert.Equal(t, KindExpense, c.Kind)

	// Duplicated names resolve to the lowest id.
	id, c, err = FindCategoryByName("other")
	require.NoError(t, err)
	assert.Equal(t, "6", id)
	assert.Equal(t, KindIncome, c.Kind)

	id, _, err = FindCategoryByName("entertainment")
	require.NoError(t, err)
	assert.Equal(t, "10", id)

	_, _, err = FindCategoryByName("lottery")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
