// Package inventory holds the dataset the algorithm visualizations operate on.
//
// The package defines the record type and the fields it can be ordered by:
//
//   - [Item]: one inventory record (name, category, stock, price)
//   - [Field]: the key used for comparisons, see [Field.Compare]
//   - [Dataset]: an ordered, validated collection with add/delete/reset
//   - [FindAll]: linear search returning every match
//
// # Ordering
//
// Textual fields compare by byte order (case-sensitive), numeric fields
// numerically. Only [Name] and [Category] are searchable:
//
//	if !field.Textual() {
//	    return nil // binary search needs string keys
//	}
package inventory
