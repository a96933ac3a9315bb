package domain

import "github.com/shopspring/decimal"

// QuantityChange records an inventory count that differed between the
// physical stock and the platform export.
type QuantityChange struct {
	Barcode     string `json:"barcode"`
	Title       string `json:"title"`
	OldQuantity string `json:"old_quantity"`
	NewQuantity string `json:"new_quantity"`
}

// ZeroedRow records a platform variant absent from the physical stock whose
// quantity was reset to zero.
type ZeroedRow struct {
	Barcode     string `json:"barcode"`
	Title       string `json:"title"`
	OldQuantity string `json:"old_quantity"`
}

// NewProduct is a physical record with no counterpart in the platform
// export, carried over verbatim so a draft listing can be synthesized.
type NewProduct struct {
	Barcode       string          `json:"barcode"`
	Name          string          `json:"name"`
	Size          string          `json:"size"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}

// CarryOverRename records a product title that received a season suffix.
type CarryOverRename struct {
	Barcode  string `json:"barcode"`
	OldTitle string `json:"old_title"`
	NewTitle string `json:"new_title"`
}

// SyncStats summarizes one reconciliation run. Every platform barcode lands
// in exactly one of matched or set-to-zero; every physical barcode missing
// from the platform lands in exactly one NotInPlatform entry.
type SyncStats struct {
	TotalPhysical    int               `json:"total_physical"`
	TotalPlatform    int               `json:"total_platform"`
	Matched          int               `json:"matched"`
	QuantityChanges  []QuantityChange  `json:"quantity_changes"`
	SetToZero        []ZeroedRow       `json:"set_to_zero"`
	NotInPlatform    []NewProduct      `json:"not_in_platform"`
	CarryOverRenames []CarryOverRename `json:"carry_over_renames"`
}

// SyncResult bundles every output of a reconciliation run.
type SyncResult struct {
	// PlatformCSV is the platform export with quantities reconciled.
	PlatformCSV []byte
	// NewProductsCSV holds the draft rows for physical-only products.
	// Empty when there are none.
	NewProductsCSV []byte
	// CombinedCSV is new products first, then the updated platform rows.
	CombinedCSV []byte
	// FilteredCSV is CombinedCSV minus products whose every variant is out
	// of stock.
	FilteredCSV []byte
	Report      string
	Stats       SyncStats
}
