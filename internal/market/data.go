package market

// Entry carries the static, non-AI-derived facts about one location's market.
// The table of entries is loaded once at startup and never mutated.
type Entry struct {
	BasePriceMin     float64  `json:"base_price_min"`
	BasePriceMax     float64  `json:"base_price_max"`
	MarketSize       string   `json:"market_size"`
	Currency         string   `json:"currency"`
	Trends           []string `json:"trends"`
	Demographics     []string `json:"demographics"`
	SeasonalPeaks    []string `json:"seasonal_peaks"`
	CompetitionLevel string   `json:"competition_level"`
	MarketMaturity   string   `json:"market_maturity"`
}

// Categories enumerates the fixed tag sets the AI contract uses for design
// attributes. These values appear verbatim in prompts and must stay stable.
var Categories = map[string][]string{
	"style":           {"minimalist", "vintage", "modern", "artistic", "streetwear", "corporate", "casual", "luxury"},
	"complexity":      {"simple", "moderate", "complex"},
	"demographics":    {"gen_z", "millennials", "gen_x", "baby_boomers", "all_ages"},
	"themes":          {"abstract", "pop_culture", "motivational", "sports", "music", "art", "technology", "nature"},
	"brand_potential": {"low", "medium", "high"},
}

var builtinEntries = map[string]Entry{
	"USA": {
		BasePriceMin:     15,
		BasePriceMax:     35,
		MarketSize:       "large",
		Currency:         "USD",
		Trends:           []string{"sustainability", "minimalism", "vintage", "streetwear"},
		Demographics:     []string{"gen_z", "millennials", "gen_x"},
		SeasonalPeaks:    []string{"summer", "back_to_school", "holidays"},
		CompetitionLevel: "high",
		MarketMaturity:   "mature",
	},
	"India": {
		BasePriceMin:     5,
		BasePriceMax:     15,
		MarketSize:       "massive",
		Currency:         "INR",
		Trends:           []string{"bollywood", "cricket", "festivals", "regional_pride"},
		Demographics:     []string{"youth", "millennials"},
		SeasonalPeaks:    []string{"festivals", "cricket_season", "summer"},
		CompetitionLevel: "high",
		MarketMaturity:   "growing",
	},
	"UK": {
		BasePriceMin:     12,
		BasePriceMax:     28,
		MarketSize:       "medium",
		Currency:         "GBP",
		Trends:           []string{"british_humor", "football", "music", "royal_themes"},
		Demographics:     []string{"millennials", "gen_x"},
		SeasonalPeaks:    []string{"summer", "football_season"},
		CompetitionLevel: "medium",
		MarketMaturity:   "mature",
	},
	"Germany": {
		BasePriceMin:     18,
		BasePriceMax:     40,
		MarketSize:       "medium",
		Currency:         "EUR",
		Trends:           []string{"quality", "minimalism", "eco_friendly", "engineering"},
		Demographics:     []string{"millennials", "gen_x"},
		SeasonalPeaks:    []string{"summer", "oktoberfest"},
		CompetitionLevel: "medium",
		MarketMaturity:   "mature",
	},
	"Japan": {
		BasePriceMin:     20,
		BasePriceMax:     45,
		MarketSize:       "medium",
		Currency:         "JPY",
		Trends:           []string{"anime", "kawaii", "tech", "minimalism"},
		Demographics:     []string{"youth", "otaku", "salarymen"},
		SeasonalPeaks:    []string{"summer", "manga_releases", "tech_events"},
		CompetitionLevel: "high",
		MarketMaturity:   "mature",
	},
	"Brazil": {
		BasePriceMin:     8,
		BasePriceMax:     20,
		MarketSize:       "large",
		Currency:         "BRL",
		Trends:           []string{"football", "carnival", "beach", "music"},
		Demographics:     []string{"youth", "sports_fans"},
		SeasonalPeaks:    []string{"summer", "world_cup", "carnival"},
		CompetitionLevel: "medium",
		MarketMaturity:   "growing",
	},
	"Australia": {
		BasePriceMin:     16,
		BasePriceMax:     38,
		MarketSize:       "medium",
		Currency:         "AUD",
		Trends:           []string{"surf", "outdoor", "casual", "sports"},
		Demographics:     []string{"millennials", "outdoor_enthusiasts"},
		SeasonalPeaks:    []string{"summer", "sports_season"},
		CompetitionLevel: "medium",
		MarketMaturity:   "mature",
	},
	"Canada": {
		BasePriceMin:     14,
		BasePriceMax:     32,
		MarketSize:       "medium",
		Currency:         "CAD",
		Trends:           []string{"hockey", "nature", "maple", "winter_sports"},
		Demographics:     []string{"millennials", "gen_x"},
		SeasonalPeaks:    []string{"summer", "hockey_season", "winter_olympics"},
		CompetitionLevel: "medium",
		MarketMaturity:   "mature",
	},
}
