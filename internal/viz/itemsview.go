package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/cockroachdb/errors"

	"github.com/san-kum/algoviz/internal/inventory"
)

const (
	formName = iota
	formCategory
	formStock
	formPrice
	formFields
)

type itemsView struct {
	table   table.Model
	form    [formFields]textinput.Model
	editing bool
	focus   int
}

func newItemsView() itemsView {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Name", Width: 22},
			{Title: "Category", Width: 12},
			{Title: "Stock", Width: 7},
			{Title: "Price", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	var form [formFields]textinput.Model
	placeholders := [formFields]string{
		"name (1-50 characters)",
		strings.Join(inventory.Categories, ", "),
		"stock (0-99999)",
		"price in rupiah (0-999999999)",
	}
	prompts := [formFields]string{"name     ", "category ", "stock    ", "price    "}
	for i := range form {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = prompts[i]
		ti.Width = 40
		form[i] = ti
	}
	form[formName].CharLimit = inventory.MaxNameLen
	form[formStock].CharLimit = 5
	form[formPrice].CharLimit = 9

	return itemsView{table: t, form: form}
}

func (v *itemsView) setItems(items []inventory.Item) {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		rows[i] = table.Row{
			strconv.Itoa(i),
			it.Name,
			it.Category,
			strconv.Itoa(it.Stock),
			inventory.FormatPrice(it.Price),
		}
	}
	v.table.SetRows(rows)
	if c := v.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		v.table.SetCursor(len(rows) - 1)
	}
}

func (v *itemsView) openForm() {
	v.editing = true
	v.focus = formName
	for i := range v.form {
		v.form[i].Reset()
		v.form[i].Blur()
	}
	v.form[formName].Focus()
	v.table.Blur()
}

func (v *itemsView) closeForm() {
	v.editing = false
	for i := range v.form {
		v.form[i].Blur()
	}
	v.table.Focus()
}

func (v *itemsView) nextInput() {
	v.form[v.focus].Blur()
	v.focus = (v.focus + 1) % formFields
	v.form[v.focus].Focus()
}

// formItem parses the form into an item. Validation of ranges is left to
// the dataset.
func (v *itemsView) formItem() (inventory.Item, error) {
	it := inventory.Item{
		Name:     v.form[formName].Value(),
		Category: v.form[formCategory].Value(),
	}
	var err error
	if it.Stock, err = parseWhole(v.form[formStock].Value()); err != nil {
		return it, errors.Wrap(err, "stock")
	}
	if it.Price, err = parseWhole(v.form[formPrice].Value()); err != nil {
		return it, errors.Wrap(err, "price")
	}
	return it, nil
}

func parseWhole(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Newf("%q is not a whole number", s)
	}
	return n, nil
}

func (v *itemsView) view(count int) string {
	var b strings.Builder
	b.WriteString(MetricLabel.Render("items ") + MetricValue.Render(strconv.Itoa(count)))
	b.WriteString("\n\n")
	b.WriteString(v.table.View())
	if v.editing {
		b.WriteString("\n\n")
		b.WriteString(MetricValue.Render("New item"))
		b.WriteString("\n")
		for i := range v.form {
			b.WriteString(v.form[i].View())
			b.WriteString("\n")
		}
		b.WriteString(Subtle.Render("tab next input · enter save · esc cancel"))
	}
	return b.String()
}
