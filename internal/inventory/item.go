package inventory

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	MaxNameLen = 50
	MaxStock   = 99999
	MaxPrice   = 999999999
)

// Categories lists the values accepted by Validate for Item.Category.
var Categories = []string{"Periferal", "Komputer", "Audio", "Jaringan", "Penyimpanan", "Lainnya"}

type Item struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Stock    int    `json:"stock" yaml:"stock"`
	Price    int    `json:"price" yaml:"price"`
}

type Field string

const (
	Name     Field = "name"
	Category Field = "category"
	Price    Field = "price"
	Stock    Field = "stock"
)

// Fields is every sortable field in display order.
var Fields = []Field{Name, Category, Price, Stock}

// SearchFields are the fields binary search accepts.
var SearchFields = []Field{Name, Category}

func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case Name, Category, Price, Stock:
		return f, nil
	}
	return "", errors.Wrapf(ErrUnknownField, "%q (want one of name, category, price, stock)", s)
}

// Textual reports whether the field holds a string value.
func (f Field) Textual() bool { return f == Name || f == Category }

func (f Field) String() string { return string(f) }

// Compare orders a and b by the field: byte order for strings, numeric
// order for integers. Unknown fields compare equal.
func (f Field) Compare(a, b Item) int {
	switch f {
	case Name:
		return cmp.Compare(a.Name, b.Name)
	case Category:
		return cmp.Compare(a.Category, b.Category)
	case Price:
		return cmp.Compare(a.Price, b.Price)
	case Stock:
		return cmp.Compare(a.Stock, b.Stock)
	}
	return 0
}

// Text returns the field's value for textual fields and "" otherwise.
func (f Field) Text(it Item) string {
	switch f {
	case Name:
		return it.Name
	case Category:
		return it.Category
	}
	return ""
}

// Format renders the field's raw value for narration.
func (f Field) Format(it Item) string {
	switch f {
	case Price:
		return strconv.Itoa(it.Price)
	case Stock:
		return strconv.Itoa(it.Stock)
	}
	return f.Text(it)
}

// Names returns the item names in order.
func Names(items []Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

// Value returns the field's value as a string or int.
func (f Field) Value(it Item) any {
	switch f {
	case Price:
		return it.Price
	case Stock:
		return it.Stock
	}
	return f.Text(it)
}
