package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/lucasrprt/stocksync/internal/domain"
)

// skuRe matches a trailing manufacturer reference at the end of a catalog
// name, e.g. I029375.931.XX, DB0490-010, NF00CF9C4GZ, 864349-007.
var skuRe = regexp.MustCompile(`\s+([A-Z0-9][A-Z0-9.\-]{3,})$`)

// sizeTokens are trailing tokens that look like SKUs but are sizes.
var sizeTokens = map[string]struct{}{
	"XS": {}, "S": {}, "M": {}, "L": {}, "XL": {}, "XXL": {}, "XXXL": {},
	"SIZE": {}, "TAILLE": {},
}

// ExtractSKUAndTitle splits a trailing manufacturer SKU off the raw catalog
// name. A candidate is accepted only if it is at least 4 characters long,
// carries at least one digit and is not a size token. Returns the trimmed
// name unchanged and "" when no trailing token qualifies. The rule is a
// heuristic: trailing color or dimension codes occasionally slip through.
func ExtractSKUAndTitle(catalogName string) (string, string) {
	name := strings.TrimSpace(catalogName)
	if loc := skuRe.FindStringSubmatchIndex(name); loc != nil {
		candidate := name[loc[2]:loc[3]]
		if len(candidate) >= 4 && hasDigit(candidate) && !isSizeToken(candidate) {
			return strings.TrimSpace(name[:loc[0]]), candidate
		}
	}
	return name, ""
}

// ExtractVendorAndName resolves the brand prefix of a clean title against
// the vendor map, longest key first, and title-cases the remainder. When
// nothing matches, the first whitespace-delimited token becomes the vendor;
// a single-token title becomes the vendor with an empty product title.
// Callers must tolerate the empty product title.
func ExtractVendorAndName(title string, vendors domain.BrandMap) (string, string) {
	caser := cases.Title(language.Und)
	t := strings.ToUpper(strings.TrimSpace(title))

	for _, entry := range vendors {
		if t == entry.Key {
			return entry.Display, ""
		}
		if strings.HasPrefix(t, entry.Key+" ") {
			rest := strings.TrimSpace(t[len(entry.Key):])
			return entry.Display, caser.String(rest)
		}
	}

	parts := strings.SplitN(t, " ", 2)
	if len(parts) == 2 {
		return caser.String(parts[0]), caser.String(parts[1])
	}
	return caser.String(t), ""
}

var (
	quoteRunsRe = regexp.MustCompile(`["'` + "“”‘’" + `]+`)
	spaceRunsRe = regexp.MustCompile(`\s+`)
	nonAlnumRe  = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeName produces the comparison form of a product name: diacritics
// stripped, lowercased, quote characters removed, whitespace collapsed.
func NormalizeName(name string) string {
	n := strings.ToLower(stripDiacritics(name))
	n = quoteRunsRe.ReplaceAllString(n, "")
	return strings.TrimSpace(spaceRunsRe.ReplaceAllString(n, " "))
}

// ProductID is the barcode's leading segment before its first hyphen, used
// as a coarse product grouping key ({product_id}-{variant}).
func ProductID(barcode string) string {
	if i := strings.IndexByte(barcode, '-'); i >= 0 {
		return barcode[:i]
	}
	return barcode
}

// GenerateHandle derives the URL-safe slug used to group variant rows.
// "Cotton Trunks White + White" → "cotton-trunks-white-white".
func GenerateHandle(title string) string {
	h := stripDiacritics(strings.ToLower(title))
	h = nonAlnumRe.ReplaceAllString(h, "-")
	return strings.Trim(h, "-")
}

// stripDiacritics removes combining marks (é → e).
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func isSizeToken(s string) bool {
	_, ok := sizeTokens[strings.ToUpper(s)]
	return ok
}
