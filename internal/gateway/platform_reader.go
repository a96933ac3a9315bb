package gateway

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/lucasrprt/stocksync/internal/domain"
)

// ParsePlatformExport loads the platform's comma-delimited export with
// every value kept as text, preserving leading zeros in codes. The legacy
// inventory quantity column is renamed to the current one when the current
// name is absent, for compatibility across export format versions.
func (g *CSVStockGateway) ParsePlatformExport(ctx context.Context, raw []byte) (*domain.PlatformTable, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	// The platform's own exports occasionally carry stray quotes.
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse platform export: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("platform export has no header row")
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	hasQty := false
	for _, col := range header {
		if col == domain.ColQty {
			hasQty = true
			break
		}
	}
	columns := make([]string, len(header))
	for i, col := range header {
		if col == domain.ColLegacyQty && !hasQty {
			col = domain.ColQty
		}
		columns[i] = col
	}

	rows := make([]domain.PlatformRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(domain.PlatformRow, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}

	return &domain.PlatformTable{Columns: columns, Rows: rows}, nil
}

// MarshalPlatformExport renders the table back to CSV bytes: header row,
// values in column order, quoting only where required, trailing newline.
func (g *CSVStockGateway) MarshalPlatformExport(table *domain.PlatformTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}
	rec := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, col := range table.Columns {
			rec[i] = row[col]
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("failed to write export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}
	return buf.Bytes(), nil
}
