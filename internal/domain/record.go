package domain

import "github.com/shopspring/decimal"

// PhysicalRecord is one article line from the store's physical stock dump.
type PhysicalRecord struct {
	Article       string          `json:"article"`
	Barcode       string          `json:"barcode"`
	CatalogName   string          `json:"catalog_name"`
	Size          string          `json:"size"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`

	// Derived fields, filled in by carry-over detection.
	NormalizedName string `json:"-"`
	ProductID      string `json:"-"`
}

// CarryOverKey identifies one (normalized name, product id) pair.
type CarryOverKey struct {
	NormalizedName string
	ProductID      string
}

// CarryOverMap assigns a season label ("S1", "S2", ...) to products that
// share a display name across distinct product ids. Names with a single
// product id never appear in the map.
type CarryOverMap map[CarryOverKey]string

// BrandEntry maps an uppercased brand key to its canonical display casing.
type BrandEntry struct {
	Key     string
	Display string
}

// BrandMap is ordered by decreasing key length so that compound brands
// ("NEW BALANCE NUMERIC") match before their single-word prefixes.
type BrandMap []BrandEntry
