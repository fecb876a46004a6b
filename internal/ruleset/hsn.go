package ruleset

import (
	"strings"

	"gstgenius/internal/domain"
)

type hsnEntry struct {
	keyword string
	code    string
}

// hsnTable maps description keywords to common HSN/SAC codes. Order matters:
// when two matching keywords have the same length, the earlier entry wins.
var hsnTable = []hsnEntry{
	// Electronics & gadgets
	{"laptop", "8471"},
	{"computer", "8471"},
	{"printer", "8443"},
	{"mouse", "8471"},
	{"keyboard", "8471"},
	{"monitor", "8528"},
	{"mobile", "8517"},
	{"phone", "8517"},
	{"tablet", "8471"},
	{"camera", "8525"},
	{"hard disk", "8471"},
	{"pen drive", "8523"},
	{"router", "8517"},
	{"projector", "8528"},
	{"speaker", "8518"},
	{"headphone", "8518"},
	{"earphone", "8518"},
	{"smart watch", "8517"},
	{"cctv", "8525"},
	{"battery", "8506"},
	{"charger", "8504"},

	// IT & professional services
	{"consulting", "9983"},
	{"web design", "9983"},
	{"development", "9983"},
	{"software", "9973"},
	{"marketing", "9983"},
	{"advertising", "9983"},
	{"hosting", "9983"},
	{"domain", "9983"},
	{"seo", "9983"},
	{"maintenance", "9987"},
	{"legal", "9982"},
	{"accounting", "9982"},
	{"audit", "9982"},
	{"recruitment", "9985"},
	{"security", "9985"},
	{"courier", "9968"},
	{"transport", "9965"},
	{"rental", "9972"},
	{"brokerage", "9971"},
	{"training", "9992"},
	{"photography", "9996"},

	// Home & construction
	{"cement", "2523"},
	{"paint", "3208"},
	{"steel", "7200"},
	{"wood", "4407"},
	{"plywood", "4412"},
	{"door", "4418"},
	{"window", "7610"},
	{"glass", "7007"},
	{"tiles", "6907"},
	{"bricks", "6904"},
	{"sand", "2505"},
	{"pipe", "3917"},
	{"wire", "8544"},
	{"switch", "8536"},
	{"bulb", "8539"},
	{"led", "8539"},
	{"fan", "8414"},
	{"ac", "8415"},
	{"refrigerator", "8418"},
	{"furniture", "9403"},

	// Food & consumables
	{"rice", "1006"},
	{"wheat", "1001"},
	{"flour", "1101"},
	{"milk", "0401"},
	{"butter", "0405"},
	{"cheese", "0406"},
	{"honey", "0409"},
	{"water", "2201"},
	{"coffee", "0901"},
	{"tea", "0902"},
	{"spices", "0910"},
	{"sugar", "1701"},
	{"chocolate", "1806"},
	{"biscuit", "1905"},

	// Clothing & personal
	{"shirt", "6205"},
	{"trousers", "6203"},
	{"clothing", "6100"},
	{"shoes", "6400"},
	{"soap", "3401"},
	{"shampoo", "3305"},
	{"sanitizer", "3808"},
	{"mask", "6307"},

	// Stationery
	{"paper", "4802"},
	{"pen", "9608"},
	{"notebook", "4820"},
	{"file", "4820"},
	{"book", "4901"},
}

// SuggestHSN looks up a classification code for an item description by
// case-insensitive keyword substring match. The longest matching keyword
// wins; among equal lengths, table order decides. Returns "" when nothing
// matches.
func SuggestHSN(description string) string {
	desc := strings.ToLower(description)
	if strings.TrimSpace(desc) == "" {
		return ""
	}

	var best hsnEntry
	for _, e := range hsnTable {
		if strings.Contains(desc, e.keyword) && len(e.keyword) > len(best.keyword) {
			best = e
		}
	}
	return best.code
}

// AutoFillHSN fills in a suggested code only when the item's current one is
// blank or too short to be a real HSN (under 4 characters). An explicit entry
// is never overwritten. Reports whether the code changed.
func AutoFillHSN(item *domain.LineItem) bool {
	if item == nil || len(item.HSN) >= 4 {
		return false
	}
	suggested := SuggestHSN(item.Description)
	if suggested == "" || suggested == item.HSN {
		return false
	}
	item.HSN = suggested
	return true
}
