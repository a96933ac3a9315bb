package usecase

import (
	"strconv"
	"strings"

	"github.com/lucasrprt/stocksync/internal/domain"
)

// SynthesizeNewProducts converts physical-only records into a table shaped
// exactly like the platform export, ready for re-import. Each record's
// catalog name is decomposed into vendor, clean title and manufacturer SKU;
// records sharing handle and SKU are variants of one product. The first row
// of a group carries the product-level fields, continuation rows repeat
// only the title. Products are created in draft status for review before
// publication.
func SynthesizeNewProducts(newProducts []domain.NewProduct, table *domain.PlatformTable) *domain.PlatformTable {
	columns := append([]string(nil), table.Columns...)
	hasCost := false
	for _, col := range columns {
		if col == domain.ColCost {
			hasCost = true
			break
		}
	}
	if !hasCost {
		columns = append(columns, domain.ColCost)
	}

	vendors := BuildVendorList(table)

	type variant struct {
		domain.NewProduct
		sku       string
		vendor    string
		fullTitle string
	}
	type productKey struct {
		handle string
		sku    string
	}

	// Group by (handle, SKU) preserving first-seen order: same handle and
	// SKU means same product, different size is a variant.
	var order []productKey
	groups := make(map[productKey][]variant)
	for _, item := range newProducts {
		clean, sku := ExtractSKUAndTitle(item.Name)
		vendor, productTitle := ExtractVendorAndName(clean, vendors)
		v := variant{
			NewProduct: item,
			sku:        sku,
			vendor:     vendor,
			fullTitle:  strings.TrimSpace(vendor + " " + productTitle),
		}
		key := productKey{handle: GenerateHandle(v.fullTitle), sku: sku}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], v)
	}

	var rows []domain.PlatformRow
	for _, key := range order {
		variants := groups[key]
		ref := variants[0]
		for i, v := range variants {
			row := make(domain.PlatformRow, len(columns))
			for _, col := range columns {
				row[col] = ""
			}

			row[domain.ColTitle] = ref.fullTitle
			if i == 0 {
				row[domain.ColVendor] = ref.vendor
				row[domain.ColStatus] = "draft"
				row[domain.ColPublished] = "FALSE"
				row[domain.ColOpt1Name] = "Taille"
			}

			row[domain.ColOpt1Value] = v.Size
			row[domain.ColSKU] = v.sku
			row[domain.ColBarcode] = v.Barcode
			row[domain.ColQty] = strconv.Itoa(v.Quantity)
			row[domain.ColCost] = v.PurchasePrice.String()
			row[domain.ColPrice] = v.SalePrice.String()
			row[domain.ColInvTracker] = "shopify"
			row[domain.ColInvPolicy] = "deny"
			row[domain.ColFulfillment] = "manual"

			rows = append(rows, row)
		}
	}

	return &domain.PlatformTable{Columns: columns, Rows: rows}
}
