package gateway

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lucasrprt/stocksync/internal/domain"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// dumpLine builds one record of the store's semicolon-delimited dump:
// marker;article;barcode;name;size;qty;;;purchase;;sale
func dumpLine(marker, article, barcode, name, size, qty, purchase, sale string) string {
	return strings.Join([]string{marker, article, barcode, name, size, qty, "", "", purchase, "", sale}, ";")
}

func TestCSVStockGateway_ParsePhysicalStock(t *testing.T) {
	ctx := context.Background()
	g := NewCSVStockGateway()

	tests := []struct {
		name     string
		raw      []byte
		expected []domain.PhysicalRecord
		wantErr  bool
	}{
		{
			name: "valid dump with quoted fields and comma decimals",
			raw: []byte(
				dumpLine("STREET ART", "ART001", "65368-2", `"CARHARTT WIP COTTON TRUNKS WHITE + WHITE I029375.931.XX"`, `"M"`, "2", "12,50", "29,00") + "\n" +
					dumpLine("STREET ART", "ART002", "65368-3", "NIKE SB ZOOM BLAZER MID 864349-007", "42", "1,00", "40.00", "95") + "\n",
			),
			expected: []domain.PhysicalRecord{
				{Article: "ART001", Barcode: "65368-2", CatalogName: "CARHARTT WIP COTTON TRUNKS WHITE + WHITE I029375.931.XX", Size: "M", Quantity: 2, PurchasePrice: mustDecimal("12.50"), SalePrice: mustDecimal("29.00")},
				{Article: "ART002", Barcode: "65368-3", CatalogName: "NIKE SB ZOOM BLAZER MID 864349-007", Size: "42", Quantity: 1, PurchasePrice: mustDecimal("40.00"), SalePrice: mustDecimal("95")},
			},
		},
		{
			name: "legacy carriage-return line endings",
			raw: []byte(
				dumpLine("STREET ART", "ART001", "111-1", "POLAR SKATE CO HOODIE", "L", "3", "20", "55") + "\r" +
					dumpLine("STREET ART", "ART002", "111-2", "POLAR SKATE CO HOODIE", "XL", "1", "20", "55") + "\r",
			),
			expected: []domain.PhysicalRecord{
				{Article: "ART001", Barcode: "111-1", CatalogName: "POLAR SKATE CO HOODIE", Size: "L", Quantity: 3, PurchasePrice: mustDecimal("20"), SalePrice: mustDecimal("55")},
				{Article: "ART002", Barcode: "111-2", CatalogName: "POLAR SKATE CO HOODIE", Size: "XL", Quantity: 1, PurchasePrice: mustDecimal("20"), SalePrice: mustDecimal("55")},
			},
		},
		{
			name: "store marker detected from header identifiers",
			raw: []byte(
				"URBAN RIDERS;2024_001;10-22;EXPORT\n" +
					dumpLine("URBAN RIDERS", "A1", "900-1", "SPITFIRE CLASSIC TEE", "M", "4", "8,00", "25,00") + "\n",
			),
			expected: []domain.PhysicalRecord{
				{Article: "A1", Barcode: "900-1", CatalogName: "SPITFIRE CLASSIC TEE", Size: "M", Quantity: 4, PurchasePrice: mustDecimal("8.00"), SalePrice: mustDecimal("25.00")},
			},
		},
		{
			name: "skips totals, empty barcodes and short chunks",
			raw: []byte(
				dumpLine("STREET ART", "ART001", "TOTAL", "SOMME", "", "99", "0", "0") + "\n" +
					dumpLine("STREET ART", "ART002", "", "NO BARCODE", "M", "1", "1", "2") + "\n" +
					"STREET ART;ART003;too;short\n" +
					dumpLine("STREET ART", "ART004", "222-1", "DIME CLASSIC CAP", "Taille unique", "5", "9", "35") + "\n",
			),
			expected: []domain.PhysicalRecord{
				{Article: "ART004", Barcode: "222-1", CatalogName: "DIME CLASSIC CAP", Size: "Taille unique", Quantity: 5, PurchasePrice: mustDecimal("9"), SalePrice: mustDecimal("35")},
			},
		},
		{
			name: "malformed numerics default to zero",
			raw: []byte(
				dumpLine("STREET ART", "ART001", "333-1", "BONES WHEELS 54MM", "Taille unique", "n/a", "??", "") + "\n",
			),
			expected: []domain.PhysicalRecord{
				{Article: "ART001", Barcode: "333-1", CatalogName: "BONES WHEELS 54MM", Size: "Taille unique", Quantity: 0, PurchasePrice: mustDecimal("0"), SalePrice: mustDecimal("0")},
			},
		},
		{
			name: "one-size variants normalized",
			raw: []byte(
				dumpLine("STREET ART", "A1", "444-1", "JESSUP GRIPTAPE", "O/S", "2", "3", "9") + "\n" +
					dumpLine("STREET ART", "A2", "444-2", "MOB GRIPTAPE", "TU", "2", "3", "9") + "\n" +
					dumpLine("STREET ART", "A3", "444-3", "GRIZZLY GRIPTAPE", "One Size", "2", "3", "9") + "\n",
			),
			expected: []domain.PhysicalRecord{
				{Article: "A1", Barcode: "444-1", CatalogName: "JESSUP GRIPTAPE", Size: "Taille unique", Quantity: 2, PurchasePrice: mustDecimal("3"), SalePrice: mustDecimal("9")},
				{Article: "A2", Barcode: "444-2", CatalogName: "MOB GRIPTAPE", Size: "Taille unique", Quantity: 2, PurchasePrice: mustDecimal("3"), SalePrice: mustDecimal("9")},
				{Article: "A3", Barcode: "444-3", CatalogName: "GRIZZLY GRIPTAPE", Size: "Taille unique", Quantity: 2, PurchasePrice: mustDecimal("3"), SalePrice: mustDecimal("9")},
			},
		},
		{
			name:    "no store marker",
			raw:     []byte("Title,Vendor\nSome,CSV\n"),
			wantErr: true,
		},
		{
			name:    "marker but no valid records",
			raw:     []byte("STREET ART;only;two\n"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.ParsePhysicalStock(ctx, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, got, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want.Article, got[i].Article)
				assert.Equal(t, want.Barcode, got[i].Barcode)
				assert.Equal(t, want.CatalogName, got[i].CatalogName)
				assert.Equal(t, want.Size, got[i].Size)
				assert.Equal(t, want.Quantity, got[i].Quantity)
				assert.True(t, want.PurchasePrice.Equal(got[i].PurchasePrice), "purchase price %s != %s", want.PurchasePrice, got[i].PurchasePrice)
				assert.True(t, want.SalePrice.Equal(got[i].SalePrice), "sale price %s != %s", want.SalePrice, got[i].SalePrice)
			}
		})
	}
}

func TestCSVStockGateway_ParsePhysicalStock_ErrorKinds(t *testing.T) {
	ctx := context.Background()
	g := NewCSVStockGateway()

	_, err := g.ParsePhysicalStock(ctx, []byte("nothing to see here"))
	assert.ErrorIs(t, err, ErrStoreMarkerNotFound)

	_, err = g.ParsePhysicalStock(ctx, []byte("STREET ART;TOTAL;TOTAL;x;x;x;x;x;x;x;x\n"))
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestCSVStockGateway_ParsePhysicalStock_Encodings(t *testing.T) {
	ctx := context.Background()
	g := NewCSVStockGateway()

	t.Run("utf-8 with BOM", func(t *testing.T) {
		raw := append([]byte("\xef\xbb\xbf"), []byte(dumpLine("STREET ART", "A1", "555-1", "HÉLAS CAP ÉTÉ", "M", "1", "10", "30")+"\n")...)
		got, err := g.ParsePhysicalStock(ctx, raw)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "HÉLAS CAP ÉTÉ", got[0].CatalogName)
	})

	t.Run("windows-1252 fallback", func(t *testing.T) {
		// 0xC9 is É in Windows-1252/Latin-1 and invalid as UTF-8.
		raw := []byte("STREET ART;A1;555-2;BLOUSON \xc9T\xc9 NOIR;M;1;;;10;;30\n")
		got, err := g.ParsePhysicalStock(ctx, raw)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "BLOUSON ÉTÉ NOIR", got[0].CatalogName)
	})
}

func TestNormalizeSize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"one size", "Taille unique"},
		{"ONE-SIZE", "Taille unique"},
		{"os", "Taille unique"},
		{"O/S", "Taille unique"},
		{"tu", "Taille unique"},
		{"  Unique ", "Taille unique"},
		{"no size", "Taille unique"},
		{"M", "M"},
		{"42", "42"},
		{"8.125", "8.125"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeSize(tt.in), "normalizeSize(%q)", tt.in)
	}
}
