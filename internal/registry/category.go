package registry

import (
	"fmt"
	"strconv"

	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
)

// CategoryKind distinguishes income categories from expense categories.
type CategoryKind string

const (
	KindIncome  CategoryKind = "income"
	KindExpense CategoryKind = "expense"
)

// Category is a single entry in the record-category registry.
type Category struct {
	Kind CategoryKind `json:"type"`
	Name string       `json:"name"`
}

// Some names repeat ("entertainment", "other"); ids are the identity, not
// the names.
var categories = map[string]Category{
	"1":  {Kind: KindIncome, Name: "salary"},
	"2":  {Kind: KindIncome, Name: "investment"},
	"3":  {Kind: KindIncome, Name: "part-time job"},
	"4":  {Kind: KindIncome, Name: "freelance"},
	"5":  {Kind: KindIncome, Name: "bonus"},
	"6":  {Kind: KindIncome, Name: "other"},
	"7":  {Kind: KindExpense, Name: "food"},
	"8":  {Kind: KindExpense, Name: "transportation"},
	"9":  {Kind: KindExpense, Name: "shopping"},
	"10": {Kind: KindExpense, Name: "entertainment"},
	"11": {Kind: KindExpense, Name: "health"},
	"12": {Kind: KindExpense, Name: "education"},
	"13": {Kind: KindExpense, Name: "entertainment"},
	"14": {Kind: KindExpense, Name: "sports"},
	"15": {Kind: KindExpense, Name: "social"},
	"16": {Kind: KindExpense, Name: "addictions"},
	"17": {Kind: KindExpense, Name: "travel"},
	"18": {Kind: KindExpense, Name: "snacks"},
	"19": {Kind: KindExpense, Name: "fruits/vegetables"},
	"20": {Kind: KindExpense, Name: "household"},
	"21": {Kind: KindExpense, Name: "electricity"},
	"22": {Kind: KindExpense, Name: "water"},
	"23": {Kind: KindExpense, Name: "other"},
}

// LookupCategory returns the category registered under the given id.
// Unknown ids yield apperrors.ErrNotFound.
func LookupCategory(id string) (Category, error) {
	c, ok := categories[id]
	if !ok {
		return Category{}, fmt.Errorf("category id %s: %w", id, apperrors.ErrNotFound)
	}
	return c, nil
}

// HasCategory reports whether the given id is a registered category.
func HasCategory(id string) bool {
	_, ok := categories[id]
	return ok
}

// Categories returns a copy of the full category table keyed by id.
func Categories() map[string]Category {
	out := make(map[string]Category, len(categories))
	for id, c := range categories {
		out[id] = c
	}
	return out
}

// FindCategoryByName returns the category with the given name along with its
// registry id. Name matching is exact; because names repeat, the lowest id
// wins so lookups stay deterministic.
func FindCategoryByName(name string) (string, Category, error) {
	for i := 1; i <= len(categories); i++ {
		id := strconv.Itoa(i)
		if c := categories[id]; c.Name == name {
			return id, c, nil
		}
	}
	return "", Category{}, fmt.Errorf("category name %s: %w", name, apperrors.ErrNotFound)
}
