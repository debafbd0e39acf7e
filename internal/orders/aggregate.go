package orders

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ginjaninja78/po-generator/internal/types"
)

// RawRow is one unvalidated (item name, quantity text) pair from an export.
type RawRow struct {
	Name     string
	Quantity string
}

// Aggregated maps base product name -> size bucket -> summed quantity.
type Aggregated map[string]map[string]int

// Aggregate groups rows by (base name, size) and sums their quantities.
//
// Rows with an empty name, an empty quantity, or a quantity that is not a
// non-negative integer are dropped. The result does not depend on row order.
func Aggregate(rows []RawRow) Aggregated {
	result, _ := aggregate(rows)
	return result
}

// aggregate is Aggregate that also reports how many rows were dropped.
func aggregate(rows []RawRow) (Aggregated, int) {
	result := make(Aggregated)
	skipped := 0

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		quantityText := strings.TrimSpace(row.Quantity)
		if name == "" || quantityText == "" {
			skipped++
			continue
		}

		quantity, err := strconv.Atoi(quantityText)
		if err != nil || quantity < 0 {
			skipped++
			continue
		}

		base, size, ok := ExtractSize(name)
		if !ok {
			size = NoSize
		}
		result.add(base, size, quantity)
	}

	return result, skipped
}

func (a Aggregated) add(base, size string, quantity int) {
	sizes, ok := a[base]
	if !ok {
		sizes = make(map[string]int)
		a[base] = sizes
	}
	sizes[size] += quantity
}

// Merge returns a new aggregation holding the sums of a and b.
// Neither input is modified.
func Merge(a, b Aggregated) Aggregated {
	result := make(Aggregated, len(a)+len(b))
	for _, src := range []Aggregated{a, b} {
		for base, sizes := range src {
			for size, qty := range sizes {
				result.add(base, size, qty)
			}
		}
	}
	return result
}

// Total returns the summed quantity of one product across all sizes.
func (a Aggregated) Total(name string) int {
	total := 0
	for _, qty := range a[name] {
		total += qty
	}
	return total
}

// Names returns the product names sorted lexicographically.
func (a Aggregated) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Products returns every product sorted by name.
func (a Aggregated) Products() []types.Product {
	names := a.Names()
	products := make([]types.Product, len(names))
	for i, name := range names {
		products[i] = a.Product(name)
	}
	return products
}

// Product returns a copy of one product's size map. Unknown names yield an
// empty size map.
func (a Aggregated) Product(name string) types.Product {
	sizes := make(map[string]int, len(a[name]))
	for size, qty := range a[name] {
		sizes[size] = qty
	}
	return types.Product{Name: name, Sizes: sizes}
}

// SortSizes orders size buckets by token length, then lexicographically,
// with NoSize always last.
func SortSizes(sizes []string) {
	sort.Slice(sizes, func(i, j int) bool {
		a, b := sizes[i], sizes[j]
		if (a == NoSize) != (b == NoSize) {
			return b == NoSize
		}
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
}

// SortedSizes returns the keys of a size map in display order.
func SortedSizes(sizes map[string]int) []string {
	keys := make([]string, 0, len(sizes))
	for size := range sizes {
		keys = append(keys, size)
	}
	SortSizes(keys)
	return keys
}
