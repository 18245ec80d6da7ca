package classifier

import "strings"

// Confidence grades how a category was matched: high = keyword found in the
// title, medium = keyword found only in title+description, low = no match.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Default labels returned when nothing matches.
const (
	CategoryOther    = "Other"
	GroupClothing    = "Clothing"
	GroupFootwear    = "Footwear"
	GroupAccessories = "Accessories"
	GroupLifestyle   = "Lifestyle"
)

// Result is the outcome of classifying one product text.
type Result struct {
	Category      string     `json:"productType"`
	CategoryGroup string     `json:"categoryGroup"`
	Confidence    Confidence `json:"confidence"`
}

// Tables holds the keyword, exclusion, group and priority data the matcher
// scans. The zero value is unusable; start from DefaultTables and swap lists
// as needed. Keyword order within a category and the priority order across
// categories are both load-bearing: the matcher is greedy first-match.
type Tables struct {
	Keywords   map[string][]string
	Exclusions map[string][]string
	Groups     map[string][]string
	Priority   []string
}

var defaultTables = &Tables{
	Keywords: map[string][]string{
		// T-shirts, polos, shirts, thermals
		"Tops": {
			"t-shirt", "tee", "tshirt", "t shirt", "t-shirts",
			"tank top", "tank", "tanktop", "muscle tee", "sleeveless tee",
			"graphic tee", "printed tee", "oversized tee", "boxy tee",
			"cropped tee", "crop tee", "baby tee",
			"tech tee", "tech t-shirt", "sport tee", "athletic tee", "jersey tee",
			"longsleeve", "long sleeve", "long-sleeve", "ls tee",
			"thermal", "waffle",
			"polo", "polos", "polo shirt", "polo tee",
			"golf shirt", "tennis shirt", "pique polo",
			"shirt", "button up", "button-up", "button down", "button-down",
			"flannel", "oxford", "dress shirt", "casual shirt",
			"camp shirt", "camp collar", "bowling shirt",
			"work shirt", "utility shirt", "overshirt", "over shirt",
			"hawaiian shirt", "cuban shirt", "resort shirt",
			"denim shirt", "chambray",
		},
		// Hoodies, crewnecks, zip-ups, fleece
		"Hoodies & Sweats": {
			"hoodie", "hoodies", "hooded", "hood",
			"pullover hoodie", "zip hoodie", "zipup hoodie",
			"sweatshirt", "sweat shirt",
			"crewneck", "crew neck", "crew-neck", "crewnecks",
			"pullover", "fleece pullover",
			"overlogo", "straight zip", "raglan",
			"zip up", "zipup", "zip-up", "zip",
			"half zip", "halfzip", "half-zip", "1/4 zip", "quarter zip",
			"full zip", "fullzip",
			"fleece", "polar", "polar fleece", "sherpa", "teddy",
			"borg", "faux fur",
		},
		// Sweaters, knits, cardigans
		"Knitwear": {
			"knit", "knits", "knitwear", "knitted",
			"sweater", "sweaters",
			"cardigan", "cardi",
			"pullover knit", "cable knit", "chunky knit",
			"mohair", "cashmere", "merino", "wool", "whool",
			"balaclava", "ski mask",
			"turtleneck", "turtle neck", "roll neck", "mock neck",
			"v-neck sweater", "v neck sweater",
		},
		"Jackets & Coats": {
			"jacket", "jackets", "jkt",
			"bomber", "bomber jacket", "ma-1", "ma1",
			"varsity", "varsity jacket", "letterman",
			"denim jacket", "jean jacket", "trucker jacket",
			"coach jacket", "coaches jacket",
			"track jacket", "tracksuit jacket", "track top",
			"harrington", "harrington jacket",
			"work jacket", "chore jacket", "workwear jacket",
			"canvas jacket", "canvas work",
			"utility jacket", "field jacket", "military jacket",
			"racing jacket", "moto jacket", "motorcycle jacket",
			"leather jacket", "suede jacket",
			"overshirt jacket", "shirt jacket", "shacket",
			"windbreaker", "wind breaker", "windcheater",
			"parka", "anorak",
			"puffer", "puffer jacket", "down jacket", "quilted jacket",
			"coat", "overcoat", "topcoat", "trench", "trench coat",
			"peacoat", "pea coat",
			"raincoat", "rain jacket",
			"vest", "gilet", "bodywarmer", "body warmer",
			"tech jacket",
			"shell", "soft shell", "softshell", "hard shell",
			"gore-tex", "goretex", "waterproof",
		},
		// All bottoms except shorts, jeans included
		"Pants": {
			"pants", "pant", "trousers", "trouser", "bottoms",
			"chinos", "chino", "khakis", "khaki",
			"cargo", "cargo pants", "cargo pant", "cargos",
			"jogger", "joggers", "jogger pants", "jog pant", "jogging",
			"sweatpants", "sweat pants", "sweatpant",
			"track pants", "trackpants", "track pant",
			"lounge pants", "lounge pant",
			"work pants", "work pant", "carpenter", "carpenter pants",
			"utility pants", "utility pant",
			"twill pants", "twill pant", "twill work",
			"dress pants", "dress pant", "slacks",
			"pleated pants", "pleated pant",
			"wide leg", "wide-leg", "baggy pants",
			"straight leg", "straight-leg",
			"tapered", "slim pants", "skinny pants",
			"corduroy pants", "cord pants", "cords",
			"fatigue pants", "fatigues",
			"jeans", "jean", "denim",
			"denim pants", "denim pant", "denim trousers",
			"skinny jeans", "slim jeans", "straight jeans",
			"relaxed jeans", "loose jeans", "baggy jeans",
			"bootcut", "boot cut", "flare jeans", "wide leg jeans",
			"tapered jeans", "carrot jeans",
			"mom jeans", "dad jeans", "boyfriend jeans",
			"raw denim", "selvedge", "selvage",
			"washed denim", "stonewash", "acid wash",
			"distressed jeans", "ripped jeans",
		},
		"Shorts": {
			"shorts", "short", "shortpants",
			"jort", "jorts", "denim jort",
			"swim shorts", "swim trunk", "swim trunks", "boardshorts", "board shorts",
			"athletic shorts", "sport shorts", "running shorts", "gym shorts",
			"basketball shorts", "mesh shorts",
			"cargo shorts", "chino shorts",
			"sweat shorts", "sweatshorts", "fleece shorts",
			"denim shorts", "jean shorts", "cutoffs", "cut-offs",
			"bermuda", "bermudas",
		},
		"Footwear": {
			"sneaker", "sneakers",
			"trainer", "trainers",
			"running shoe", "running shoes",
			"basketball shoe", "basketball shoes",
			"skate shoe", "skate shoes", "skating shoe",
			"tennis shoe", "tennis shoes",
			"athletic shoe", "athletic shoes",
			"sport shoe", "sport shoes",
			"high top", "high-top", "hi-top",
			"low top", "low-top",
			"retro shoe",
			"boot", "boots",
			"chelsea", "chelsea boot",
			"combat boot", "combat boots",
			"work boot", "work boots",
			"hiking boot", "hiking boots",
			"ankle boot", "ankle boots",
			"desert boot", "chukka",
			"lace-up boot", "lace up boot",
			"sandal", "sandals",
			"slide", "slides",
			"flip flop", "flip flops", "flip-flop",
			"slipper", "slippers",
			"mule", "mules",
			"loafer", "loafers",
			"derby", "derbies",
			"oxford shoe", "oxfords",
			"brogue", "brogues",
			"monk strap",
			"boat shoe", "boat shoes",
			"moccasin", "moccasins",
			"espadrille", "espadrilles",
			"clog", "clogs",
		},
		// Bags, hats, jewelry, belts, wallets, eyewear, scarves, watches
		"Accessories": {
			"bag", "bags",
			"backpack", "back pack", "rucksack",
			"tote", "tote bag", "shopper",
			"duffel", "duffle", "gym bag", "sports bag",
			"messenger", "messenger bag",
			"crossbody", "cross body", "cross-body", "sling bag",
			"waist bag", "fanny pack", "belt bag", "bum bag",
			"pouch", "clutch",
			"satchel",
			"shoulder bag",
			"weekender",
			"laptop bag", "briefcase",
			"drawstring bag",
			"hat", "hats",
			"cap", "caps",
			"beanie", "beanies", "knit cap",
			"bucket hat", "bucket",
			"snapback", "snap back",
			"trucker", "trucker hat", "trucker cap",
			"dad hat", "dad cap",
			"fitted cap", "fitted hat",
			"5 panel", "5-panel", "five panel",
			"6 panel", "6-panel", "six panel",
			"visor",
			"beret",
			"fedora",
			"sock", "socks",
			"ankle socks", "crew socks", "no show socks",
			"sport socks", "athletic socks",
			"dress socks",
			"sock pack", "socks pack", "tripack",
			"necklace", "necklaces", "chain", "chains",
			"pendant", "pendants",
			"bracelet", "bracelets",
			"ring", "rings", "signet",
			"earring", "earrings", "ear ring",
			"choker",
			"anklet",
			"dog tag", "dog-tag", "dogtag",
			"cuff",
			"belt", "belts",
			"leather belt", "canvas belt", "woven belt",
			"web belt", "webbing belt",
			"d-ring belt", "mechanik",
			"wallet", "wallets",
			"card holder", "cardholder", "card case",
			"money clip",
			"coin purse",
			"billfold",
			"sunglasses", "sunglass", "sun glasses",
			"glasses", "eyeglasses",
			"eyewear", "eye wear",
			"shades",
			"aviator", "wayfarers",
			"goggles",
			"scarf", "scarves", "scarfs",
			"bandana", "bandanas",
			"neck warmer", "neckwarmer", "neck gaiter",
			"glove", "gloves",
			"mittens", "mitts",
			"watch", "watches",
			"timepiece",
			"wristwatch",
		},
		// Objects, home goods, sports gear
		"Lifestyle": {
			"towel", "beach towel",
			"blanket", "throw",
			"pillow", "cushion",
			"flask", "bottle", "water bottle", "thermo",
			"mug", "cup",
			"candle",
			"poster", "print", "art print",
			"sticker", "stickers", "sticker pack",
			"keychain", "key chain", "keyring",
			"enamel pin", "pin set", "pin pack", "lapel pin",
			"patch", "patches",
			"lighter",
			"ashtray",
			"ball", "football", "foot-ball", "basketball", "soccer ball",
			"skateboard", "deck",
			"frisbee",
			"plant", "amaryllis", "roots",
			"muzzle",
		},
		"Packs & Boxes": {
			"lucky box", "mystery box", "surprise box",
			"pack x", "bundle", "pack",
		},
	},

	// Substrings that suppress a category match even when a keyword hits,
	// e.g. "hoodie" must not also match generic Tops via "hood...".
	Exclusions: map[string][]string{
		"Accessories":      {"chain link", "stormchaser", "windchaser", "chainsaw"},
		"Tops":             {"hoodie", "jacket", "pants", "shorts", "coat", "sweatshirt", "fleece"},
		"Hoodies & Sweats": {"jacket", "coat", "parka", "vest", "gilet"},
		"Knitwear":         {"jacket", "coat"},
		"Jackets & Coats":  {"coat-of-arms"},
		"Shorts":           {"longsleeve", "long sleeve", "shortcut"},
	},

	Groups: map[string][]string{
		GroupClothing: {
			"Tops", "Hoodies & Sweats", "Knitwear", "Jackets & Coats",
			"Pants", "Shorts", "Packs & Boxes",
		},
		GroupFootwear:    {"Footwear"},
		GroupAccessories: {"Accessories"},
		GroupLifestyle:   {"Lifestyle"},
	},

	// Specific before generic: Knitwear before the hoodie/sweater overlap,
	// Shorts before Pants.
	Priority: []string{
		"Packs & Boxes",
		"Lifestyle",
		"Knitwear",
		"Shorts",
		"Hoodies & Sweats",
		"Tops",
		"Jackets & Coats",
		"Pants",
		"Footwear",
		"Accessories",
	},
}

// DefaultTables returns the built-in streetwear/fashion taxonomy.
func DefaultTables() *Tables {
	return defaultTables
}

// Classify runs the default tables against title and optional description.
func Classify(title, description string) Result {
	return defaultTables.Classify(title, description)
}

// Classify maps free product text to a category. Pure and total: pass 1
// scans the lower-cased title in priority order (high confidence), pass 2
// scans title+description (medium), otherwise Other/Clothing/low.
func (t *Tables) Classify(title, description string) Result {
	titleLower := strings.ToLower(title)
	fullText := strings.ToLower(title + " " + description)

	if cat, ok := t.scan(titleLower); ok {
		return Result{Category: cat, CategoryGroup: t.groupOf(cat), Confidence: ConfidenceHigh}
	}
	if cat, ok := t.scan(fullText); ok {
		return Result{Category: cat, CategoryGroup: t.groupOf(cat), Confidence: ConfidenceMedium}
	}
	return Result{Category: CategoryOther, CategoryGroup: GroupClothing, Confidence: ConfidenceLow}
}

// scan returns the first category, in priority order, whose keywords match
// text and whose exclusions do not.
func (t *Tables) scan(text string) (string, bool) {
	for _, category := range t.Priority {
		keywords, ok := t.Keywords[category]
		if !ok {
			continue
		}
		if t.excluded(text, category) {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return category, true
			}
		}
	}
	return "", false
}

func (t *Tables) excluded(text, category string) bool {
	for _, ex := range t.Exclusions[category] {
		if strings.Contains(text, ex) {
			return true
		}
	}
	return false
}

// groupOf reverse-looks-up the group containing category; categories outside
// every group fall back to Clothing.
func (t *Tables) groupOf(category string) string {
	for group, categories := range t.Groups {
		for _, c := range categories {
			if c == category {
				return group
			}
		}
	}
	return GroupClothing
}

// Categories lists every category the tables can assign, in priority order.
func (t *Tables) Categories() []string {
	out := make([]string, len(t.Priority))
	copy(out, t.Priority)
	return out
}
