package inventory

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Dataset is the ordered collection the visualizations read. It is not safe
// for concurrent use; the UI mutates it from its event loop only.
type Dataset struct {
	items []Item
	base  []Item
	log   *zap.Logger
}

// NewDataset starts from items, which Reset later restores. A nil logger is
// replaced with a no-op one.
func NewDataset(items []Item, log *zap.Logger) *Dataset {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dataset{
		items: append([]Item(nil), items...),
		base:  append([]Item(nil), items...),
		log:   log,
	}
}

// Items returns a copy; callers may hand it to trace generators freely.
func (d *Dataset) Items() []Item { return append([]Item(nil), d.items...) }

func (d *Dataset) Len() int { return len(d.items) }

func (d *Dataset) Add(it Item) error {
	if err := Validate(it); err != nil {
		return err
	}
	it = Normalize(it)
	d.items = append(d.items, it)
	d.log.Debug("item added", zap.String("name", it.Name), zap.String("category", it.Category), zap.Int("count", len(d.items)))
	return nil
}

func (d *Dataset) Delete(index int) (Item, error) {
	if index < 0 || index >= len(d.items) {
		return Item{}, errors.Wrapf(ErrIndexOutOfRange, "delete %d of %d", index, len(d.items))
	}
	removed := d.items[index]
	d.items = append(d.items[:index:index], d.items[index+1:]...)
	d.log.Debug("item deleted", zap.String("name", removed.Name), zap.Int("index", index), zap.Int("count", len(d.items)))
	return removed, nil
}

// Reset restores the items the dataset was created with.
func (d *Dataset) Reset() {
	d.items = append([]Item(nil), d.base...)
	d.log.Debug("dataset reset", zap.Int("count", len(d.items)))
}

// Match is one FindAll hit.
type Match struct {
	Index int
	Item  Item
}

// FindAll scans items in order and returns every entry whose textual field
// equals target exactly.
func FindAll(items []Item, target string, field Field) []Match {
	if !field.Textual() {
		return nil
	}
	var out []Match
	for i, it := range items {
		if field.Text(it) == target {
			out = append(out, Match{Index: i, Item: it})
		}
	}
	return out
}
