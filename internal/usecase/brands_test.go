package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucasrprt/stocksync/internal/domain"
	"github.com/lucasrprt/stocksync/internal/usecase"
)

func brandIndex(m domain.BrandMap, key string) int {
	for i, e := range m {
		if e.Key == key {
			return i
		}
	}
	return -1
}

func TestBuildVendorList_StaticList(t *testing.T) {
	m := usecase.BuildVendorList(nil)

	assert.NotEmpty(t, m)

	i := brandIndex(m, "CARHARTT WIP")
	assert.GreaterOrEqual(t, i, 0)
	assert.Equal(t, "Carhartt WIP", m[i].Display)

	// Length-descending order: compound brands come before their prefixes.
	longer := brandIndex(m, "NEW BALANCE NUMERIC")
	shorter := brandIndex(m, "NEW BALANCE")
	assert.GreaterOrEqual(t, longer, 0)
	assert.GreaterOrEqual(t, shorter, 0)
	assert.Less(t, longer, shorter)

	for i := 1; i < len(m); i++ {
		assert.GreaterOrEqual(t, len(m[i-1].Key), len(m[i].Key), "entries must be ordered by decreasing key length")
	}
}

func TestBuildVendorList_PlatformVendors(t *testing.T) {
	table := &domain.PlatformTable{
		Columns: []string{domain.ColVendor},
		Rows: []domain.PlatformRow{
			{domain.ColVendor: "Nike SB"},    // overrides static "Nike Sb"
			{domain.ColVendor: "GX1000"},     // new brand from the export
			{domain.ColVendor: "  GX1000  "}, // duplicate after trimming
			{domain.ColVendor: ""},           // blank excluded
			{domain.ColVendor: "À corriger"}, // placeholder excluded
			{domain.ColVendor: "a corriger"}, // placeholder, any casing
		},
	}

	m := usecase.BuildVendorList(table)

	i := brandIndex(m, "NIKE SB")
	assert.GreaterOrEqual(t, i, 0)
	assert.Equal(t, "Nike SB", m[i].Display, "platform casing must win over the static list")

	i = brandIndex(m, "GX1000")
	assert.GreaterOrEqual(t, i, 0)
	assert.Equal(t, "GX1000", m[i].Display)

	assert.Equal(t, -1, brandIndex(m, "À CORRIGER"))
	assert.Equal(t, -1, brandIndex(m, "A CORRIGER"))
	assert.Equal(t, -1, brandIndex(m, ""))
}
