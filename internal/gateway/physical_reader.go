package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/lucasrprt/stocksync/internal/domain"
)

var (
	// ErrStoreMarkerNotFound means the record boundaries of the physical
	// dump could not be derived, so parsing cannot proceed safely.
	ErrStoreMarkerNotFound = errors.New("store marker not found in physical stock file")
	// ErrNoRecords means the dump yielded zero valid records, most likely
	// because the wrong file was supplied.
	ErrNoRecords = errors.New("no records found in physical stock file")
)

// fallbackStoreMarker is the known store label used when the dump header
// carries no site/terminal identifiers for the regex to latch onto.
const fallbackStoreMarker = "STREET ART"

// storeMarkerRe matches an all-caps store name immediately followed by the
// site and terminal identifiers that open the dump header.
var storeMarkerRe = regexp.MustCompile(`([A-Z][A-Z\s]+[A-Z]);[\d_]+;\d+-\d+`)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// oneSizeVariants are the spellings collapsed to the canonical one-size
// label, english and french forms included.
var oneSizeVariants = map[string]struct{}{
	"one size": {}, "one-size": {}, "onesize": {}, "os": {}, "o/s": {},
	"taille unique": {}, "unique": {}, "u": {}, "tu": {}, "ns": {}, "no size": {},
}

const oneSizeLabel = "Taille unique"

// CSVStockGateway parses and renders the raw bytes of both inventory
// sources. It holds no state; every call is a pure function of its input.
type CSVStockGateway struct{}

// NewCSVStockGateway creates a new gateway instance.
func NewCSVStockGateway() *CSVStockGateway {
	return &CSVStockGateway{}
}

// ParsePhysicalStock turns the store's semicolon-delimited dump into
// normalized records. The dump has no schema: text encoding and line
// endings are unknown (a single carriage return as line terminator is a
// legacy convention), and record boundaries are derived from the store
// marker that prefixes every record.
func (g *CSVStockGateway) ParsePhysicalStock(ctx context.Context, raw []byte) ([]domain.PhysicalRecord, error) {
	content := decodeText(raw)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	marker := detectStoreMarker(content)
	if marker == "" {
		return nil, fmt.Errorf("%w: expected lines like %q", ErrStoreMarkerNotFound, fallbackStoreMarker+";...")
	}

	var records []domain.PhysicalRecord
	for _, chunk := range strings.Split(content, marker+";")[1:] {
		fields := strings.Split(chunk, ";")
		if len(fields) < 10 {
			continue
		}

		article := strings.TrimSpace(fields[0])
		barcode := strings.TrimSpace(fields[1])
		name := stripQuotes(fields[2])
		size := normalizeSize(stripQuotes(fields[3]))

		if barcode == "" || strings.EqualFold(barcode, "TOTAL") || article == "" || name == "" {
			continue
		}
		// An embedded separator this early in the article code means the
		// chunk split landed mid-record.
		head := article
		if len(head) > 3 {
			head = head[:3]
		}
		if strings.Contains(head, ";") {
			continue
		}

		records = append(records, domain.PhysicalRecord{
			Article:       article,
			Barcode:       barcode,
			CatalogName:   name,
			Size:          size,
			Quantity:      parseQuantity(fields[4]),
			PurchasePrice: parsePrice(fields[7]),
			SalePrice:     parsePrice(fields[9]),
		})
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// decodeText decodes the dump bytes, trying UTF-8 first and falling back to
// the single-byte encodings POS terminals actually emit. The Latin-1 pass
// never fails, so a lossy decode is always available.
func decodeText(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw)
	}
	if out, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil && utf8.Valid(out) {
		return string(out)
	}
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(out)
}

func detectStoreMarker(content string) string {
	if m := storeMarkerRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	if strings.Contains(content, fallbackStoreMarker+";") {
		return fallbackStoreMarker
	}
	return ""
}

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.TrimSpace(s)
}

// normalizeSize collapses the one-size spelling variants to a single
// canonical label. Everything else passes through unchanged.
func normalizeSize(size string) string {
	if _, ok := oneSizeVariants[strings.ToLower(strings.TrimSpace(size))]; ok {
		return oneSizeLabel
	}
	return size
}

// parseQuantity accepts comma or dot decimals and defaults to 0 on garbage
// rather than failing the run.
func parseQuantity(s string) int {
	v := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// parsePrice accepts comma or dot decimals and defaults to 0 on garbage.
func parsePrice(s string) decimal.Decimal {
	v := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}
