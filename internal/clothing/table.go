package clothing

import "sort"

// Condition is the wind classification used as the second table key.
type Condition string

const (
	Calm  Condition = "calm"
	Windy Condition = "windy"
)

const (
	tankTop      = "tanktop"
	shirt        = "shirt"
	longSleeve   = "longsleeve"
	fleece       = "fleece"
	jacket       = "jacket"
	shorts       = "shorts"
	tights       = "tights"
	fleeceTights = "fleeceTights"
	capItem      = "cap"
	beanie       = "beanie"
	gloves       = "gloves"
	scarf        = "scarf"
)

var catalog = map[string]string{
	tankTop:      "static/images/tanktop.svg",
	shirt:        "static/images/shirt.svg",
	longSleeve:   "static/images/longsleeve.svg",
	fleece:       "static/images/fleece.svg",
	jacket:       "static/images/jacket.svg",
	shorts:       "static/images/shorts.svg",
	tights:       "static/images/tights.svg",
	fleeceTights: "static/images/fleeceTights.svg",
	capItem:      "static/images/cap.svg",
	beanie:       "static/images/beanie.svg",
	gloves:       "static/images/gloves.svg",
	scarf:        "static/images/scarf.svg",
}

var table = map[int]map[Condition][]string{
	100: {
		Calm:  {tankTop, shorts, capItem},
		Windy: {tankTop, shorts, capItem},
	},
	95: {
		Calm:  {tankTop, shorts, capItem},
		Windy: {tankTop, shorts, capItem},
	},
	90: {
		Calm:  {tankTop, shorts, capItem},
		Windy: {tankTop, shorts, capItem},
	},
	85: {
		Calm:  {tankTop, shorts, capItem},
		Windy: {tankTop, shorts, capItem},
	},
	80: {
		Calm:  {shirt, shorts, capItem},
		Windy: {shirt, shorts, capItem},
	},
	75: {
		Calm:  {shirt, shorts, capItem},
		Windy: {shirt, shorts, capItem},
	},
	70: {
		Calm:  {shirt, shorts, capItem},
		Windy: {shirt, shorts, capItem},
	},
	65: {
		Calm:  {shirt, shorts, capItem},
		Windy: {shirt, shorts, capItem},
	},
	60: {
		Calm:  {shirt, shorts, capItem},
		Windy: {longSleeve, shorts, capItem},
	},
	55: {
		Calm:  {shirt, shorts, capItem},
		Windy: {longSleeve, shorts, capItem},
	},
	50: {
		Calm:  {longSleeve, shorts, capItem},
		Windy: {shirt, longSleeve, shorts, capItem},
	},
	45: {
		Calm:  {shirt, longSleeve, shorts, capItem, gloves},
		Windy: {shirt, fleece, shorts, capItem, gloves},
	},
	40: {
		Calm:  {shirt, fleece, shorts, capItem, gloves},
		Windy: {shirt, fleece, jacket, tights, beanie, gloves},
	},
	35: {
		Calm:  {shirt, fleece, jacket, tights, beanie, gloves},
		Windy: {longSleeve, fleece, jacket, shorts, tights, beanie, gloves},
	},
	30: {
		Calm:  {longSleeve, fleece, jacket, shorts, tights, beanie, gloves},
		Windy: {longSleeve, fleece, jacket, shorts, fleeceTights, beanie, gloves},
	},
	25: {
		Calm:  {longSleeve, fleece, jacket, shorts, fleeceTights, beanie, gloves},
		Windy: {longSleeve, fleece, jacket, tights, fleeceTights, beanie, gloves, scarf},
	},
	20: {
		Calm:  {longSleeve, fleece, jacket, tights, fleeceTights, beanie, gloves, scarf},
		Windy: {shirt, longSleeve, fleece, jacket, tights, fleeceTights, beanie, gloves, scarf},
	},
}

// Buckets returns the table's temperature buckets in ascending order.
func Buckets() []int {
	out := make([]int, 0, len(table))
	for bucket := range table {
		out = append(out, bucket)
	}
	sort.Ints(out)
	return out
}

// Catalog returns a copy of the clothing catalog.
func Catalog() map[string]string {
	out := make(map[string]string, len(catalog))
	for id, ref := range catalog {
		out[id] = ref
	}
	return out
}

// UncataloguedItems lists table identifiers that have no catalog entry.
// They are dropped from recommendations at lookup time.
func UncataloguedItems() []string {
	seen := make(map[string]bool)
	var missing []string
	for _, bucket := range Buckets() {
		for _, cond := range []Condition{Calm, Windy} {
			for _, item := range table[bucket][cond] {
				if _, ok := catalog[item]; ok || seen[item] {
					continue
				}
				seen[item] = true
				missing = append(missing, item)
			}
		}
	}
	return missing
}
