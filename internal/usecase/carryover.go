package usecase

import (
	"fmt"
	"sort"

	"github.com/lucasrprt/stocksync/internal/domain"
)

// DetectCarryOver finds products re-issued under a new product identifier
// while keeping the same display name: same item, new season. The SKU is
// stripped before comparing names, so a one-character version bump inside
// the SKU does not defeat the match.
//
// Returns the records enriched with NormalizedName and ProductID, plus the
// season-label map. Within one name group, the distinct product ids receive
// "S1", "S2", ... in ascending lexicographic order.
func DetectCarryOver(records []domain.PhysicalRecord) ([]domain.PhysicalRecord, domain.CarryOverMap) {
	enriched := make([]domain.PhysicalRecord, len(records))
	idsByName := make(map[string][]string)
	seen := make(map[domain.CarryOverKey]struct{})

	for i, rec := range records {
		clean, _ := ExtractSKUAndTitle(rec.CatalogName)
		rec.NormalizedName = NormalizeName(clean)
		rec.ProductID = ProductID(rec.Barcode)
		enriched[i] = rec

		key := domain.CarryOverKey{NormalizedName: rec.NormalizedName, ProductID: rec.ProductID}
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			idsByName[rec.NormalizedName] = append(idsByName[rec.NormalizedName], rec.ProductID)
		}
	}

	carryOver := make(domain.CarryOverMap)
	for name, ids := range idsByName {
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		for i, id := range ids {
			key := domain.CarryOverKey{NormalizedName: name, ProductID: id}
			carryOver[key] = fmt.Sprintf("S%d", i+1)
		}
	}
	return enriched, carryOver
}
