package site

import "strings"

// StateHeroTheme is the marketing copy block for a state browse page.
type StateHeroTheme struct {
	Eyebrow        string `json:"eyebrow"`
	HeadlineSuffix string `json:"headlineSuffix"`
	SupportingText string `json:"supportingText"`
	ImagePath      string `json:"imagePath"`
}

var defaultHeroTheme = StateHeroTheme{
	Eyebrow:        "State Market View",
	HeadlineSuffix: "Owner Market",
	SupportingText: "See city-level Chinese restaurant opportunities, then choose where to launch your owner demo first.",
	ImagePath:      "/state-banners/default.svg",
}

var heroThemes = map[string]StateHeroTheme{
	"CA": {
		Eyebrow:        "California Market View",
		HeadlineSuffix: "Golden State",
		SupportingText: "From Golden Gate markets to Hollywood-heavy demand zones, pick the best city to launch direct ordering first.",
		ImagePath:      "/state-banners/ca.svg",
	},
	"NY": {
		Eyebrow:        "New York Market View",
		HeadlineSuffix: "Empire State",
		SupportingText: "From Statue of Liberty traffic to dense NYC neighborhoods, compare where owner conversion will be strongest.",
		ImagePath:      "/state-banners/ny.svg",
	},
	"FL": {
		Eyebrow:        "Florida Market View",
		HeadlineSuffix: "Sunshine State",
		SupportingText: "Use Miami-style, high-tourism city demand to prioritize the best launch point for web ordering and AI phone flow.",
		ImagePath:      "/state-banners/fl.svg",
	},
	"IL": {
		Eyebrow:        "Illinois Market View",
		HeadlineSuffix: "Prairie State",
		SupportingText: "Use Chicago-area demand signals, from skyline districts to neighborhood corridors, to pick your strongest launch point.",
		ImagePath:      "/state-banners/il.svg",
	},
	"MA": {
		Eyebrow:        "Massachusetts Market View",
		HeadlineSuffix: "Bay State",
		SupportingText: "Choose the right Massachusetts city cluster, from historic core markets to suburban growth pockets, and launch faster.",
		ImagePath:      "/state-banners/ma.svg",
	},
	"NJ": {
		Eyebrow:        "New Jersey Market View",
		HeadlineSuffix: "Garden State",
		SupportingText: "Compare New Jersey shore and inland city demand, then turn your listing into a conversion-ready owner website.",
		ImagePath:      "/state-banners/nj.svg",
	},
	"TX": {
		Eyebrow:        "Texas Market View",
		HeadlineSuffix: "Lone Star State",
		SupportingText: "Size city-by-city Texas demand and launch where direct web ordering can scale quickest for your restaurant.",
		ImagePath:      "/state-banners/tx.svg",
	},
	"WA": {
		Eyebrow:        "Washington Market View",
		HeadlineSuffix: "Evergreen State",
		SupportingText: "Evaluate Seattle-led markets and surrounding Washington cities, then launch where owner lift will happen fastest.",
		ImagePath:      "/state-banners/wa.svg",
	},
}

// StateHero returns the hero copy for a state abbreviation, falling back
// to the generic block for states without bespoke copy.
func StateHero(stateAbbreviation string) StateHeroTheme {
	if theme, ok := heroThemes[strings.ToUpper(stateAbbreviation)]; ok {
		return theme
	}
	return defaultHeroTheme
}
