package usecase

import (
	"fmt"
	"strings"

	"github.com/lucasrprt/stocksync/internal/domain"
)

var (
	reportRule     = strings.Repeat("=", 68)
	reportThinRule = strings.Repeat("-", 68)
)

// RenderReport formats the reconciliation stats as a plain-text report for
// human review.
func RenderReport(stats domain.SyncStats) string {
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(reportRule)
	line("  STOCK SYNCHRONIZATION REPORT")
	line(reportRule)
	line("")
	line("  Physical stock records      : %d", stats.TotalPhysical)
	line("  Platform export rows        : %d", stats.TotalPlatform)
	line("")
	line("  Matched barcodes            : %d", stats.Matched)
	line("  Quantities updated          : %d", len(stats.QuantityChanges))
	line("  Set to zero (not in store)  : %d", len(stats.SetToZero))
	line("  New products                : %d", len(stats.NotInPlatform))
	line("  Carry-over renames          : %d", len(stats.CarryOverRenames))
	line("")

	if len(stats.QuantityChanges) > 0 {
		line(reportThinRule)
		line("QUANTITY CHANGES")
		line(reportThinRule)
		for _, c := range stats.QuantityChanges {
			line("  [%s]  %s", c.Barcode, truncate(c.Title, 55))
			line("      %s -> %s", c.OldQuantity, c.NewQuantity)
		}
		line("")
	}

	if len(stats.SetToZero) > 0 {
		line(reportThinRule)
		line("SET TO ZERO (absent from physical stock)")
		line(reportThinRule)
		for _, z := range stats.SetToZero {
			line("  [%s]  %s  (was: %s)", z.Barcode, truncate(z.Title, 55), z.OldQuantity)
		}
		line("")
	}

	if len(stats.NotInPlatform) > 0 {
		line(reportThinRule)
		line("NEW PRODUCTS (in store, missing from the platform)")
		line(reportThinRule)
		line("  See the new products export; vendor, title and SKU were extracted automatically.")
		line("")
		for _, p := range stats.NotInPlatform {
			clean, sku := ExtractSKUAndTitle(p.Name)
			entry := fmt.Sprintf("  [%s]  %s", p.Barcode, truncate(clean, 45))
			if sku != "" {
				entry += "  SKU:" + sku
			}
			line("%s  size:%s  qty:%d", entry, p.Size, p.Quantity)
		}
		line("")
	}

	if len(stats.CarryOverRenames) > 0 {
		line(reportThinRule)
		line("CARRY-OVER RENAMES")
		line(reportThinRule)
		for _, r := range stats.CarryOverRenames {
			line("  [%s]", r.Barcode)
			line("      Before: %s", r.OldTitle)
			line("      After : %s", r.NewTitle)
			line("")
		}
	} else {
		line(reportThinRule)
		line("CARRY-OVER")
		line(reportThinRule)
		line("  No carry-over detected in this file.")
		line("")
	}

	line(reportRule)
	line("  END OF REPORT")
	b.WriteString(reportRule)
	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
