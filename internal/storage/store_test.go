package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zaptest"

	"github.com/san-kum/algoviz/internal/inventory"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir(), zaptest.NewLogger(t))
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	items := inventory.Sample()
	items[0].Name = "  Monitor  "

	meta, err := st.Save(items)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if meta.ID == "" {
		t.Error("expected non-empty dataset id")
	}
	if meta.Count != 5 {
		t.Errorf("expected count 5, got %d", meta.Count)
	}
	wantCats := []string{"Audio", "Komputer", "Periferal"}
	if strings.Join(meta.Categories, ",") != strings.Join(wantCats, ",") {
		t.Errorf("expected categories %v, got %v", wantCats, meta.Categories)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := inventory.Sample()
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	loaded, err := st.Metadata()
	if err != nil {
		t.Fatalf("metadata failed: %v", err)
	}
	if loaded.ID != meta.ID {
		t.Errorf("expected id %s, got %s", meta.ID, loaded.ID)
	}
}

func TestStoreEmptyDataset(t *testing.T) {
	st := New(t.TempDir(), nil)
	if _, err := st.Save(nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no items, got %d", len(got))
	}
}

func TestStoreNoDataset(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing"), nil)

	if _, err := st.Load(); !errors.Is(err, ErrNoDataset) {
		t.Errorf("expected ErrNoDataset, got %v", err)
	}
	if _, err := st.Metadata(); !errors.Is(err, ErrNoDataset) {
		t.Errorf("expected ErrNoDataset from metadata, got %v", err)
	}

	items, err := st.LoadOr(inventory.Sample())
	if err != nil {
		t.Fatalf("load-or failed: %v", err)
	}
	if len(items) != 5 {
		t.Errorf("expected fallback of 5 items, got %d", len(items))
	}
}

func TestStoreRejectsInvalidItems(t *testing.T) {
	st := New(t.TempDir(), nil)
	_, err := st.Save([]inventory.Item{{Name: "Mouse", Category: "Periferal", Stock: -1}})
	if !errors.Is(err, inventory.ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(st.Dir(), itemsFile)); !os.IsNotExist(err) {
		t.Error("expected nothing written for an invalid dataset")
	}
}

func TestStoreRejectsBadRows(t *testing.T) {
	tests := []struct {
		name    string
		content string
		row     int
	}{
		{"bad stock", "name,category,stock,price\nMouse,Periferal,many,100\n", 2},
		{"invalid item", "name,category,stock,price\nMouse,Periferal,1,100\n,Audio,1,1\n", 3},
		{"bad header", "title,category,stock,price\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, itemsFile), []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := New(dir, nil).Load()
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
			if tt.row == 0 {
				return
			}
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("expected *RowError, got %T", err)
			}
			if rowErr.Row != tt.row {
				t.Errorf("expected row %d, got %d", tt.row, rowErr.Row)
			}
		})
	}
}

func TestStoreFileStructure(t *testing.T) {
	st := New(t.TempDir(), nil)
	if _, err := st.Save(inventory.Sample()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{metadataFile, itemsFile} {
		if _, err := os.Stat(filepath.Join(st.Dir(), name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(st.Dir(), itemsFile))
	if err != nil {
		t.Fatal(err)
	}
	first := strings.SplitN(string(data), "\n", 2)[0]
	if first != "name,category,stock,price" {
		t.Errorf("unexpected header %q", first)
	}
}
