package usecase

import (
	"sort"
	"strings"

	"github.com/lucasrprt/stocksync/internal/domain"
)

// knownBrands is the static reference list of brands carried by the store,
// in their documented display casing. Compound names must stay in the list
// alongside their prefixes ("New Balance Numeric" and "New Balance"): the
// length-descending match order does the disambiguation.
var knownBrands = []string{
	"New Balance Numeric", "The Loose Company", "Deus Ex Machina",
	"Bonjour Urethane", "Bronson Speed Co", "Thrasher Seasonal",
	"The North Face", "The Quiet Life", "Converse Skate",
	"Loreak Mendian", "Poetic Collective", "Miles Griptape",
	"Beton Cire", "Bronze 56K", "Cash Only", "Film Trucks",
	"Anti Hero", "Carhartt WIP", "DC Shoes", "Last Resort Ab",
	"New Balance", "Dial Tone", "Haze Wheels", "Shake Junt",
	"Tiger Claw", "Toy Machine", "Santa Cruz", "Jason Markk",
	"Butter Goods", "Pull-In", "Hotel Blue", "Stance Socks",
	"No Name", "On Running", "Quasi", "Rave",
	"Ace", "Adidas", "Analog", "Anon", "April", "Arcade",
	"Armistice", "Birkenstock", "Blind", "Bones",
	"Broski", "Butter", "Carhartt", "Clarks", "Cliche", "Coal",
	"Commune", "Converse", "Creature", "Deus", "DGK", "Dime",
	"Eastpak", "Element", "Estime", "Fjallraven", "Gramicci",
	"Hélas", "Helas", "Herschel", "Hockey", "Huf", "Independent",
	"Isle", "Jessup", "Komono", "Krooked", "Limosine", "Magenta",
	"Mini Logo", "Neff", "Nike Sb", "Nixon", "Obey", "Palace",
	"Patagonia", "Passport", "Pizza", "Polar", "Powell",
	"Pusher", "Puma", "Rains", "Reebok", "Ripcare", "Ripndip",
	"Rvca", "Schmoove", "Sour", "Spitfire", "Stance",
	"Street Art", "Streetart", "Studio", "Stussy", "Thrasher",
	"Tired", "Veja", "Vans", "Venture", "Volcom", "Welcome",
	"Wknd", "Yardsale", "Zero", "Antiz",
}

// vendorPlaceholder marks vendors still awaiting manual correction in the
// platform export; they must never feed the brand dictionary.
const vendorPlaceholder = "à corriger"

// BuildVendorList merges the static brand list with the vendors already
// present in the platform export. The platform's own casing always wins
// over the static list for the same uppercased key, since the export
// reflects what the shop actually uses. Blank and placeholder values are
// excluded. The result is ordered by decreasing key length (ties broken
// lexicographically for determinism).
func BuildVendorList(table *domain.PlatformTable) domain.BrandMap {
	merged := make(map[string]string, len(knownBrands))
	for _, b := range knownBrands {
		merged[strings.ToUpper(b)] = b
	}

	if table != nil {
		for _, row := range table.Rows {
			v := strings.TrimSpace(row[domain.ColVendor])
			if v == "" || isVendorPlaceholder(v) {
				continue
			}
			merged[strings.ToUpper(v)] = v
		}
	}

	entries := make(domain.BrandMap, 0, len(merged))
	for key, display := range merged {
		entries = append(entries, domain.BrandEntry{Key: key, Display: display})
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].Key) != len(entries[j].Key) {
			return len(entries[i].Key) > len(entries[j].Key)
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

func isVendorPlaceholder(v string) bool {
	return strings.EqualFold(v, vendorPlaceholder) ||
		strings.EqualFold(v, "a corriger") ||
		strings.HasPrefix(v, "À")
}
