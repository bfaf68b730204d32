package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/inventory"
)

func itemRow(index int, it inventory.Item) []string {
	return []string{
		strconv.Itoa(index),
		it.Name,
		it.Category,
		strconv.Itoa(it.Stock),
		inventory.FormatPrice(it.Price),
	}
}

func listItems(cmd *cobra.Command, args []string) error {
	items, err := loadItems(cmd)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("no items")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Name", "Category", "Stock", "Price"})
	for i, it := range items {
		table.Append(itemRow(i, it))
	}
	table.Render()
	return nil
}

// mutate loads the dataset, applies fn and saves the result.
func mutate(cmd *cobra.Command, fn func(*inventory.Dataset) error) error {
	items, err := loadItems(cmd)
	if err != nil {
		return err
	}
	ds := inventory.NewDataset(items, logger)
	if err := fn(ds); err != nil {
		return err
	}
	meta, err := openStore().Save(ds.Items())
	if err != nil {
		return err
	}
	fmt.Printf("saved %d items to %s (%s)\n", meta.Count, cfg.DataDir, meta.ID)
	return nil
}

func addItem(cmd *cobra.Command, args []string) error {
	return mutate(cmd, func(ds *inventory.Dataset) error {
		return ds.Add(inventory.Item{
			Name:     itemName,
			Category: itemCategory,
			Stock:    itemStock,
			Price:    itemPrice,
		})
	})
}

func deleteItem(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Newf("index %q is not a number", args[0])
	}
	return mutate(cmd, func(ds *inventory.Dataset) error {
		removed, err := ds.Delete(index)
		if err == nil {
			fmt.Printf("deleted %s\n", removed.Name)
		}
		return err
	})
}

func resetItems(cmd *cobra.Command, args []string) error {
	items, err := inventory.Preset(cfg.Preset)
	if err != nil {
		return err
	}
	meta, err := openStore().Save(items)
	if err != nil {
		return err
	}
	fmt.Printf("reset %s to preset %s (%d items)\n", cfg.DataDir, cfg.Preset, meta.Count)
	return nil
}
