package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lucasrprt/stocksync/internal/domain"
)

// titleLookback bounds the upward scan for a variant group's title row.
const titleLookback = 20

// SyncUseCase orchestrates one full reconciliation run. It holds no mutable
// state across runs; concurrent runs are independent.
type SyncUseCase struct {
	gateway StockFileGateway
	log     *logrus.Logger
}

// NewSyncUseCase creates a new instance of the usecase. A nil logger
// silences all logging.
func NewSyncUseCase(gateway StockFileGateway, log *logrus.Logger) *SyncUseCase {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &SyncUseCase{gateway: gateway, log: log}
}

// Run reconciles the physical stock dump against the platform export and
// returns every derived output: the updated export, draft rows for
// physical-only products, the combined and zero-stock-filtered exports, the
// itemized stats and a rendered text report.
func (uc *SyncUseCase) Run(ctx context.Context, physicalRaw, platformRaw []byte) (*domain.SyncResult, error) {
	records, err := uc.gateway.ParsePhysicalStock(ctx, physicalRaw)
	if err != nil {
		return nil, fmt.Errorf("could not parse physical stock: %w", err)
	}
	records, carryOver := DetectCarryOver(records)

	table, err := uc.gateway.ParsePlatformExport(ctx, platformRaw)
	if err != nil {
		return nil, fmt.Errorf("could not parse platform export: %w", err)
	}

	updated, stats := Reconcile(records, table, carryOver)

	uc.log.WithFields(logrus.Fields{
		"physical":   stats.TotalPhysical,
		"platform":   stats.TotalPlatform,
		"matched":    stats.Matched,
		"changed":    len(stats.QuantityChanges),
		"zeroed":     len(stats.SetToZero),
		"new":        len(stats.NotInPlatform),
		"carry_over": len(stats.CarryOverRenames),
	}).Info("reconciliation complete")

	platformCSV, err := uc.gateway.MarshalPlatformExport(updated)
	if err != nil {
		return nil, fmt.Errorf("could not render updated export: %w", err)
	}

	result := &domain.SyncResult{
		PlatformCSV: platformCSV,
		CombinedCSV: platformCSV,
		Stats:       stats,
		Report:      RenderReport(stats),
	}

	combined := updated
	if len(stats.NotInPlatform) > 0 {
		newTable := SynthesizeNewProducts(stats.NotInPlatform, table)
		newCSV, err := uc.gateway.MarshalPlatformExport(newTable)
		if err != nil {
			return nil, fmt.Errorf("could not render new products export: %w", err)
		}
		// New products go on top so they are reviewed first.
		combined = concatTables(newTable, updated)
		combinedCSV, err := uc.gateway.MarshalPlatformExport(combined)
		if err != nil {
			return nil, fmt.Errorf("could not render combined export: %w", err)
		}
		result.NewProductsCSV = newCSV
		result.CombinedCSV = combinedCSV
	}

	filteredCSV, err := uc.gateway.MarshalPlatformExport(FilterZeroStock(combined))
	if err != nil {
		return nil, fmt.Errorf("could not render filtered export: %w", err)
	}
	result.FilteredCSV = filteredCSV

	return result, nil
}

// Reconcile matches physical records to platform rows by barcode, writes
// the observed quantities, zeroes out platform variants absent from the
// store, applies carry-over season suffixes to titles and collates the
// physical-only records. The source table is not modified.
func Reconcile(records []domain.PhysicalRecord, table *domain.PlatformTable, carryOver domain.CarryOverMap) (*domain.PlatformTable, domain.SyncStats) {
	// The dump is assumed to have unique barcodes; on duplicates the last
	// record wins, silently.
	byBarcode := make(map[string]domain.PhysicalRecord, len(records))
	for _, rec := range records {
		byBarcode[rec.Barcode] = rec
	}

	updated := table.Clone()
	stats := domain.SyncStats{
		TotalPhysical:    len(records),
		TotalPlatform:    len(table.Rows),
		QuantityChanges:  make([]domain.QuantityChange, 0),
		SetToZero:        make([]domain.ZeroedRow, 0),
		NotInPlatform:    make([]domain.NewProduct, 0),
		CarryOverRenames: make([]domain.CarryOverRename, 0),
	}

	for idx, row := range updated.Rows {
		barcode := strings.TrimSpace(row[domain.ColBarcode])
		if barcode == "" {
			continue
		}

		rec, ok := byBarcode[barcode]
		if !ok {
			// Not in the store anymore: out of stock.
			oldQty := strings.TrimSpace(row[domain.ColQty])
			if oldQty != "" && oldQty != "0" {
				row[domain.ColQty] = "0"
				stats.SetToZero = append(stats.SetToZero, domain.ZeroedRow{
					Barcode:     barcode,
					Title:       resolveTitle(updated.Rows, idx),
					OldQuantity: oldQty,
				})
			}
			continue
		}

		stats.Matched++
		oldQty := strings.TrimSpace(row[domain.ColQty])
		newQty := strconv.Itoa(rec.Quantity)
		if oldQty != newQty {
			stats.QuantityChanges = append(stats.QuantityChanges, domain.QuantityChange{
				Barcode:     barcode,
				Title:       resolveTitle(updated.Rows, idx),
				OldQuantity: oldQty,
				NewQuantity: newQty,
			})
		}
		row[domain.ColQty] = newQty

		key := domain.CarryOverKey{NormalizedName: rec.NormalizedName, ProductID: rec.ProductID}
		if season, found := carryOver[key]; found {
			// Only the variant group's first row carries the title; bare
			// continuation rows are never renamed.
			title := strings.TrimSpace(row[domain.ColTitle])
			if title != "" && !strings.Contains(title, "- "+season) {
				renamed := title + " - " + season
				row[domain.ColTitle] = renamed
				stats.CarryOverRenames = append(stats.CarryOverRenames, domain.CarryOverRename{
					Barcode:  barcode,
					OldTitle: title,
					NewTitle: renamed,
				})
			}
		}
	}

	platformBarcodes := table.Barcodes()
	for _, rec := range records {
		if rec.Barcode == "" {
			continue
		}
		if _, ok := platformBarcodes[rec.Barcode]; ok {
			continue
		}
		stats.NotInPlatform = append(stats.NotInPlatform, domain.NewProduct{
			Barcode:       rec.Barcode,
			Name:          rec.CatalogName,
			Size:          rec.Size,
			Quantity:      rec.Quantity,
			PurchasePrice: rec.PurchasePrice,
			SalePrice:     rec.SalePrice,
		})
	}

	return updated, stats
}

// resolveTitle walks upward to the nearest non-empty title cell. Platform
// exports repeat the title only on a variant group's first row.
func resolveTitle(rows []domain.PlatformRow, idx int) string {
	for i := idx; i >= 0 && i > idx-titleLookback; i-- {
		if t := strings.TrimSpace(rows[i][domain.ColTitle]); t != "" {
			return t
		}
	}
	return "(barcode: " + strings.TrimSpace(rows[idx][domain.ColBarcode]) + ")"
}

func concatTables(first, second *domain.PlatformTable) *domain.PlatformTable {
	rows := make([]domain.PlatformRow, 0, len(first.Rows)+len(second.Rows))
	rows = append(rows, first.Rows...)
	rows = append(rows, second.Rows...)
	return &domain.PlatformTable{Columns: first.Columns, Rows: rows}
}
