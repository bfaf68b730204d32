package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/san-kum/algoviz/internal/inventory"
)

const (
	metadataFile = "metadata.json"
	itemsFile    = "items.csv"
)

var header = []string{"name", "category", "stock", "price"}

// Store keeps one dataset in a directory.
type Store struct {
	baseDir string
	log     *zap.Logger
}

func New(baseDir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{baseDir: baseDir, log: log}
}

func (s *Store) Dir() string { return s.baseDir }

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type DatasetMetadata struct {
	ID         string    `json:"id"`
	SavedAt    time.Time `json:"saved_at"`
	Count      int       `json:"count"`
	Categories []string  `json:"categories"`
}

// Save validates every item and replaces the stored dataset with them.
func (s *Store) Save(items []inventory.Item) (DatasetMetadata, error) {
	for i, it := range items {
		if err := inventory.Validate(it); err != nil {
			return DatasetMetadata{}, errors.Wrapf(err, "item %d", i)
		}
	}
	if err := s.Init(); err != nil {
		return DatasetMetadata{}, errors.Wrap(err, "storage: init")
	}

	if err := s.writeItems(items); err != nil {
		return DatasetMetadata{}, err
	}

	meta := DatasetMetadata{
		ID:         uuid.NewString(),
		SavedAt:    time.Now().UTC(),
		Count:      len(items),
		Categories: categories(items),
	}
	if err := s.writeMetadata(meta); err != nil {
		return DatasetMetadata{}, err
	}
	s.log.Debug("dataset saved", zap.String("dir", s.baseDir), zap.String("id", meta.ID), zap.Int("count", meta.Count))
	return meta, nil
}

func (s *Store) writeItems(items []inventory.Item) error {
	tmp := filepath.Join(s.baseDir, itemsFile+".tmp")
	file, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(err, "storage: create items")
	}
	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		file.Close()
		return errors.Wrap(err, "storage: write header")
	}
	for _, it := range items {
		it = inventory.Normalize(it)
		row := []string{it.Name, it.Category, strconv.Itoa(it.Stock), strconv.Itoa(it.Price)}
		if err := w.Write(row); err != nil {
			file.Close()
			return errors.Wrap(err, "storage: write item")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return errors.Wrap(err, "storage: flush items")
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "storage: close items")
	}
	return errors.Wrap(os.Rename(tmp, filepath.Join(s.baseDir, itemsFile)), "storage: replace items")
}

func (s *Store) writeMetadata(meta DatasetMetadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return errors.Wrap(err, "storage: encode metadata")
	}
	return errors.Wrap(os.WriteFile(filepath.Join(s.baseDir, metadataFile), data, 0644), "storage: write metadata")
}

// Load reads the stored items back in order. A directory without items.csv
// yields ErrNoDataset.
func (s *Store) Load() ([]inventory.Item, error) {
	file, err := os.Open(filepath.Join(s.baseDir, itemsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoDataset, "%s", s.baseDir)
		}
		return nil, errors.Wrap(err, "storage: open items")
	}
	defer file.Close()

	items, err := readItems(file)
	if err != nil {
		return nil, err
	}
	s.log.Debug("dataset loaded", zap.String("dir", s.baseDir), zap.Int("count", len(items)))
	return items, nil
}

func readItems(r io.Reader) ([]inventory.Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	first, err := cr.Read()
	if err == io.EOF {
		return []inventory.Item{}, nil
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "storage: read header"), ErrMalformed)
	}
	if !slices.Equal(first, header) {
		return nil, errors.Mark(errors.Newf("storage: unexpected header %v", first), ErrMalformed)
	}

	items := make([]inventory.Item, 0)
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Mark(&RowError{Row: row, Err: err}, ErrMalformed)
		}
		it, err := parseRow(record)
		if err == nil {
			err = inventory.Validate(it)
		}
		if err != nil {
			return nil, errors.Mark(&RowError{Row: row, Err: err}, ErrMalformed)
		}
		items = append(items, inventory.Normalize(it))
	}
	return items, nil
}

func parseRow(record []string) (inventory.Item, error) {
	stock, err := strconv.Atoi(record[2])
	if err != nil {
		return inventory.Item{}, errors.Wrapf(err, "stock %q", record[2])
	}
	price, err := strconv.Atoi(record[3])
	if err != nil {
		return inventory.Item{}, errors.Wrapf(err, "price %q", record[3])
	}
	return inventory.Item{Name: record[0], Category: record[1], Stock: stock, Price: price}, nil
}

// Metadata returns the metadata written by the last Save.
func (s *Store) Metadata() (*DatasetMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoDataset, "%s", s.baseDir)
		}
		return nil, errors.Wrap(err, "storage: read metadata")
	}

	var meta DatasetMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "storage: decode metadata"), ErrMalformed)
	}
	return &meta, nil
}

// LoadOr returns the stored dataset, or fallback when none was saved yet.
func (s *Store) LoadOr(fallback []inventory.Item) ([]inventory.Item, error) {
	items, err := s.Load()
	if errors.Is(err, ErrNoDataset) {
		return append([]inventory.Item(nil), fallback...), nil
	}
	return items, err
}

func categories(items []inventory.Item) []string {
	out := make([]string, 0)
	for _, it := range items {
		c := inventory.Normalize(it).Category
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}
