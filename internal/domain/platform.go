package domain

import "strings"

// Column names of the platform's product export.
const (
	ColTitle       = "Title"
	ColVendor      = "Vendor"
	ColBarcode     = "Variant Barcode"
	ColQty         = "Variant Quantity"
	ColSKU         = "Variant SKU"
	ColPrice       = "Variant Price"
	ColCost        = "Cost per item"
	ColStatus      = "Status"
	ColPublished   = "Published"
	ColInvTracker  = "Variant Inventory Tracker"
	ColInvPolicy   = "Variant Inventory Policy"
	ColFulfillment = "Variant Fulfillment Service"
	ColOpt1Name    = "Option1 Name"
	ColOpt1Value   = "Option1 Value"

	// ColLegacyQty is the quantity column name used by older exports.
	ColLegacyQty = "Variant Inventory Qty"
)

// PlatformRow is one line of the platform export, keyed by column name.
// Only the first row of a multi-variant product carries the product-level
// fields; continuation rows leave them blank.
type PlatformRow map[string]string

// PlatformTable is the platform export in tabular form. Column order is
// preserved so the rendered output re-imports cleanly.
type PlatformTable struct {
	Columns []string
	Rows    []PlatformRow
}

// Clone returns a deep copy of the table. The reconciliation engine mutates
// the copy and leaves the source untouched.
func (t *PlatformTable) Clone() *PlatformTable {
	clone := &PlatformTable{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]PlatformRow, len(t.Rows)),
	}
	for i, row := range t.Rows {
		r := make(PlatformRow, len(row))
		for k, v := range row {
			r[k] = v
		}
		clone.Rows[i] = r
	}
	return clone
}

// Barcodes returns the set of non-empty trimmed barcode values in the table.
func (t *PlatformTable) Barcodes() map[string]struct{} {
	set := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		if bc := strings.TrimSpace(row[ColBarcode]); bc != "" {
			set[bc] = struct{}{}
		}
	}
	return set
}
