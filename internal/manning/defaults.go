package manning

import "github.com/quantmind-br/sections-go/internal/domain"

// Compiled-in Manning's coefficients for bed surface codes.
var defaultSurface = map[string]domain.ManningEntry{
	"AS": {Name: "tarmacadam", Manning: 0.016},
	"BK": {Name: "brick", Manning: 0.015},
	"BR": {Name: "bedrock", Manning: 0.03},
	"CC": {Name: "concrete", Manning: 0.015},
	"CM": {Name: "corrugated metal", Manning: 0.05},
	"CO": {Name: "cobble", Manning: 0.04},
	"GA": {Name: "gabions", Manning: 0.03},
	"GR": {Name: "gravel", Manning: 0.035},
	"ME": {Name: "metal", Manning: 0.04},
	"MA": {Name: "masonry", Manning: 0.04},
	"OT": {Name: "other", Manning: 0.03},
	"PL": {Name: "plastic", Manning: 0.015},
	"PP": {Name: "plastic pile", Manning: 0.03},
	"RA": {Name: "rock armour", Manning: 0.03},
	"RR": {Name: "rip-rap", Manning: 0.03},
	"RU": {Name: "rubble", Manning: 0.05},
	"SO": {Name: "soil", Manning: 0.03},
	"SP": {Name: "sheet pile", Manning: 0.03},
	"ST": {Name: "stone", Manning: 0.025},
	"TA": {Name: "Tarmacadam", Manning: 0.016},
	"TI": {Name: "timber", Manning: 0.02},
	"WO": {Name: "wood", Manning: 0.05},
	"WP": {Name: "wood pile", Manning: 0.03},
}

// Compiled-in Manning's coefficients for vegetation codes. NO is the
// explicit "no vegetation" code with a zero coefficient.
var defaultVegetation = map[string]domain.ManningEntry{
	"FF": {Name: "free floating plants", Manning: 0.07},
	"GS": {Name: "Grass", Manning: 0.07},
	"MO": {Name: "moss", Manning: 0.07},
	"RE": {Name: "Reeds", Manning: 0.1},
	"MP": {Name: "submerged plants", Manning: 0.1},
	"TR": {Name: "Trailing plants", Manning: 0.1},
	"GL": {Name: "Grass", Manning: 0.05},
	"GM": {Name: "Grass", Manning: 0.035},
	"HC": {Name: "closed hedge", Manning: 0.07},
	"HO": {Name: "open hedge", Manning: 0.05},
	"TD": {Name: "Dense Trees", Manning: 0.1},
	"TH": {Name: "Heavy Trees", Manning: 0.1},
	"TL": {Name: "Light Trees", Manning: 0.05},
	"TM": {Name: "Medium Trees", Manning: 0.07},
	"NO": {Name: "", Manning: 0.0},
}

// NoVegetationCode marks a point with no vegetation effect; its coefficient
// is defined as zero and the surface coefficient applies instead.
const NoVegetationCode = "NO"
