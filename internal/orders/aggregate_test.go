package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		rows []RawRow
		want Aggregated
	}{
		{
			name: "sized and unsized products",
			rows: []RawRow{
				{Name: "Gi - A2", Quantity: "3"},
				{Name: "Gi - A2", Quantity: "2"},
				{Name: "Rashguard", Quantity: "5"},
			},
			want: Aggregated{
				"Gi":        {"A2": 5},
				"Rashguard": {NoSize: 5},
			},
		},
		{
			name: "malformed quantity dropped",
			rows: []RawRow{
				{Name: "Belt", Quantity: "three"},
				{Name: "Belt", Quantity: "2"},
			},
			want: Aggregated{"Belt": {NoSize: 2}},
		},
		{
			name: "blank name and blank quantity dropped",
			rows: []RawRow{
				{Name: "   ", Quantity: "4"},
				{Name: "Hoodie - M", Quantity: " "},
				{Name: " Hoodie - M ", Quantity: " 1 "},
			},
			want: Aggregated{"Hoodie": {"M": 1}},
		},
		{
			name: "negative and decimal quantities dropped",
			rows: []RawRow{
				{Name: "Tee - S", Quantity: "-1"},
				{Name: "Tee - S", Quantity: "1.5"},
				{Name: "Tee - S", Quantity: "2"},
			},
			want: Aggregated{"Tee": {"S": 2}},
		},
		{
			name: "zero quantity is kept",
			rows: []RawRow{{Name: "Tee - S", Quantity: "0"}},
			want: Aggregated{"Tee": {"S": 0}},
		},
		{
			name: "names differing in case stay separate",
			rows: []RawRow{
				{Name: "tee - S", Quantity: "1"},
				{Name: "Tee - S", Quantity: "1"},
			},
			want: Aggregated{"tee": {"S": 1}, "Tee": {"S": 1}},
		},
		{
			name: "no rows",
			rows: nil,
			want: Aggregated{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.rows))
		})
	}
}

func sampleRows() []RawRow {
	return []RawRow{
		{Name: "Gi - A1", Quantity: "1"},
		{Name: "Gi - A2", Quantity: "2"},
		{Name: "Rashguard / M", Quantity: "3"},
		{Name: "Rashguard / XL", Quantity: "4"},
		{Name: "Rashguard", Quantity: "5"},
		{Name: "Gi - A1", Quantity: "6"},
		{Name: "Belt", Quantity: "x"},
	}
}

func TestAggregate_OrderDoesNotMatter(t *testing.T) {
	rows := sampleRows()
	reversed := make([]RawRow, len(rows))
	for i, row := range rows {
		reversed[len(rows)-1-i] = row
	}

	assert.Equal(t, Aggregate(rows), Aggregate(reversed))
}

func TestMerge_EqualsWholeSet(t *testing.T) {
	rows := sampleRows()

	for split := 0; split <= len(rows); split++ {
		merged := Merge(Aggregate(rows[:split]), Aggregate(rows[split:]))
		assert.Equal(t, Aggregate(rows), merged, "split at %d", split)
	}
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	a := Aggregated{"Gi": {"A1": 1}}
	b := Aggregated{"Gi": {"A1": 2}}

	merged := Merge(a, b)

	assert.Equal(t, 3, merged["Gi"]["A1"])
	assert.Equal(t, 1, a["Gi"]["A1"])
	assert.Equal(t, 2, b["Gi"]["A1"])
}

func TestAggregated_Products(t *testing.T) {
	agg := Aggregate(sampleRows())

	products := agg.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "Gi", products[0].Name)
	assert.Equal(t, "Rashguard", products[1].Name)
	assert.Equal(t, 9, products[0].Total())
	assert.Equal(t, 12, agg.Total("Rashguard"))

	// Products are copies.
	products[0].Sizes["A1"] = 100
	assert.Equal(t, 7, agg["Gi"]["A1"])
}

func TestAggregated_UnknownProduct(t *testing.T) {
	agg := Aggregate(sampleRows())

	assert.Empty(t, agg.Product("Nope").Sizes)
	assert.Zero(t, agg.Total("Nope"))
}

func TestSortedSizes(t *testing.T) {
	sizes := map[string]int{"S": 1, "M": 1, NoSize: 1, "XL": 1, "2XL": 1}

	// Length first, then byte order: M sorts before S. This is not garment
	// order, and a listing written as "S, M, XL" would not match it.
	assert.Equal(t, []string{"M", "S", "XL", "2XL", NoSize}, SortedSizes(sizes))
}

func TestSortSizes_SentinelAlwaysLast(t *testing.T) {
	sizes := []string{NoSize, "XXXXXXXXXXL", "A"}
	SortSizes(sizes)
	assert.Equal(t, []string{"A", "XXXXXXXXXXL", NoSize}, sizes)
}

func TestSortSizes_GiSizes(t *testing.T) {
	sizes := []string{"A3L", "A2", "A10", "A1", "A0"}
	SortSizes(sizes)
	assert.Equal(t, []string{"A0", "A1", "A2", "A10", "A3L"}, sizes)
}
