package inventory

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Validate checks the item against the dataset bounds. The returned error is
// marked with ErrInvalidItem and wraps a *FieldError naming the attribute.
func Validate(it Item) error {
	name := strings.TrimSpace(it.Name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		return invalid(Name, "name is required")
	case n > MaxNameLen:
		return invalid(Name, "name must be at most 50 characters")
	}
	category := strings.TrimSpace(it.Category)
	if category == "" {
		return invalid(Category, "category is required")
	}
	if !slices.Contains(Categories, category) {
		return invalid(Category, "unknown category "+category)
	}
	if it.Stock < 0 || it.Stock > MaxStock {
		return invalid(Stock, "stock must be between 0 and 99999")
	}
	if it.Price < 0 || it.Price > MaxPrice {
		return invalid(Price, "price must be between 0 and 999999999")
	}
	return nil
}

// Normalize trims the textual fields the way Validate reads them.
func Normalize(it Item) Item {
	it.Name = strings.TrimSpace(it.Name)
	it.Category = strings.TrimSpace(it.Category)
	return it
}

func invalid(f Field, msg string) error {
	return errors.Mark(&FieldError{Field: f, Message: msg}, ErrInvalidItem)
}
