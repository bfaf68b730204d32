package inventory

import (
	"sort"

	"github.com/cockroachdb/errors"
)

var sample = []Item{
	{Name: "Monitor", Stock: 10, Price: 1500000, Category: "Periferal"},
	{Name: "Keyboard", Stock: 25, Price: 250000, Category: "Periferal"},
	{Name: "Mouse", Stock: 40, Price: 150000, Category: "Periferal"},
	{Name: "Laptop", Stock: 5, Price: 9000000, Category: "Komputer"},
	{Name: "Headset", Stock: 15, Price: 350000, Category: "Audio"},
}

var presets = map[string][]Item{
	"sample": sample,
	"duplicates": {
		{Name: "Router", Stock: 7, Price: 450000, Category: "Jaringan"},
		{Name: "Speaker", Stock: 12, Price: 300000, Category: "Audio"},
		{Name: "Switch", Stock: 3, Price: 800000, Category: "Jaringan"},
		{Name: "Headset", Stock: 15, Price: 350000, Category: "Audio"},
		{Name: "Modem", Stock: 9, Price: 300000, Category: "Jaringan"},
		{Name: "Microphone", Stock: 12, Price: 300000, Category: "Audio"},
	},
	"large": {
		{Name: "Monitor", Stock: 10, Price: 1500000, Category: "Periferal"},
		{Name: "Keyboard", Stock: 25, Price: 250000, Category: "Periferal"},
		{Name: "Mouse", Stock: 40, Price: 150000, Category: "Periferal"},
		{Name: "Laptop", Stock: 5, Price: 9000000, Category: "Komputer"},
		{Name: "Headset", Stock: 15, Price: 350000, Category: "Audio"},
		{Name: "Router", Stock: 7, Price: 450000, Category: "Jaringan"},
		{Name: "Switch", Stock: 3, Price: 800000, Category: "Jaringan"},
		{Name: "SSD", Stock: 30, Price: 950000, Category: "Penyimpanan"},
		{Name: "Harddisk", Stock: 18, Price: 700000, Category: "Penyimpanan"},
		{Name: "Flashdisk", Stock: 60, Price: 90000, Category: "Penyimpanan"},
		{Name: "Webcam", Stock: 14, Price: 400000, Category: "Periferal"},
		{Name: "Printer", Stock: 4, Price: 2100000, Category: "Periferal"},
		{Name: "Speaker", Stock: 12, Price: 300000, Category: "Audio"},
		{Name: "Microphone", Stock: 12, Price: 300000, Category: "Audio"},
		{Name: "Desktop", Stock: 2, Price: 7500000, Category: "Komputer"},
		{Name: "Tablet", Stock: 8, Price: 3200000, Category: "Komputer"},
		{Name: "Modem", Stock: 9, Price: 300000, Category: "Jaringan"},
		{Name: "UPS", Stock: 6, Price: 1200000, Category: "Lainnya"},
		{Name: "Kabel LAN", Stock: 99, Price: 25000, Category: "Jaringan"},
		{Name: "Stylus", Stock: 20, Price: 150000, Category: "Lainnya"},
	},
}

// Sample returns a fresh copy of the five-item sample dataset.
func Sample() []Item {
	return append([]Item(nil), sample...)
}

// Preset returns a copy of the named built-in dataset.
func Preset(name string) ([]Item, error) {
	items, ok := presets[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPreset, "%q (available: %v)", name, PresetNames())
	}
	return append([]Item(nil), items...), nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
