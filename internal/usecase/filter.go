package usecase

import (
	"strconv"
	"strings"

	"github.com/lucasrprt/stocksync/internal/domain"
)

// FilterZeroStock removes products whose every variant quantity is zero.
// Rows are grouped by title, the one column present on every row after
// synthesis; a group is kept intact if any of its variants has stock, and
// dropped entirely only when all of them are at zero (unparseable values
// count as zero). Rows with an empty title cannot be grouped and are kept.
func FilterZeroStock(table *domain.PlatformTable) *domain.PlatformTable {
	hasQtyCol := false
	for _, col := range table.Columns {
		if col == domain.ColQty {
			hasQtyCol = true
			break
		}
	}
	if !hasQtyCol || len(table.Rows) == 0 {
		return table
	}

	hasStock := make(map[string]bool)
	for _, row := range table.Rows {
		title := strings.TrimSpace(row[domain.ColTitle])
		if title == "" {
			continue
		}
		if _, ok := hasStock[title]; !ok {
			hasStock[title] = false
		}
		if parseIntQuantity(row[domain.ColQty]) > 0 {
			hasStock[title] = true
		}
	}

	kept := make([]domain.PlatformRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		title := strings.TrimSpace(row[domain.ColTitle])
		if stocked, ok := hasStock[title]; ok && !stocked {
			continue
		}
		kept = append(kept, row)
	}
	return &domain.PlatformTable{Columns: table.Columns, Rows: kept}
}

func parseIntQuantity(v string) int {
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(v), ",", "."), 64)
	if err != nil {
		return 0
	}
	return int(f)
}
