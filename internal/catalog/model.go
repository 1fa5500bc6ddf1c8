package catalog

// Text is an en/ja display string pair. Which side is shown is decided by
// the presentation layer from the locale preference.
type Text struct {
	EN string `json:"en"`
	JA string `json:"ja"`
}

// Level is the coarse three-step rating used throughout asset insights.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// ProjectCategory is the closed set of offering kinds a project belongs to.
type ProjectCategory string

const (
	CategoryMembership ProjectCategory = "membership"
	CategoryNFT        ProjectCategory = "nft"
	CategoryInvestment ProjectCategory = "investment"
	CategoryExperience ProjectCategory = "experience"
)

// Insights is the per-asset display-only assessment block.
type Insights struct {
	Duration      string
	Orientation   string
	Liquidity     Level
	MarketRisk    Level
	LiquidityRisk Level
	IssuerRisk    Level
	Commentary    Text
	SuitableFor   []Text
}

// Asset is a purchasable unit of a real-world-asset offering. Prices are
// integer yen. Instances are immutable for the process lifetime.
type Asset struct {
	ID          string
	Name        Text
	ProjectID   string
	CategoryID  string
	PriceYen    int
	UnitLabel   Text
	Sold        int
	Available   int
	PurchaseURL string
	Insights    Insights
}

// TotalUnits is the total offered unit count.
func (a Asset) TotalUnits() int { return a.Sold + a.Available }

// ScarcityRatio is sold/(sold+available), used only for sort ordering.
// An asset with no offered units yet ranks as zero scarcity.
func (a Asset) ScarcityRatio() float64 {
	total := a.Sold + a.Available
	if total == 0 {
		return 0
	}
	return float64(a.Sold) / float64(total)
}

// Project is the grouping entity that issues one or more assets.
type Project struct {
	ID          string
	Name        Text
	Description Text
	Color       string
	Icon        string
	Category    ProjectCategory
}

// Category is a browse grouping referenced by assets.
type Category struct {
	ID          string
	Name        Text
	Description Text
	Color       string
	Icon        string
	// AssetCount is the count as declared by the dataset, shown on category
	// tiles. It is not derived from the asset list and may drift from the
	// actual filtered count.
	AssetCount int
}

// Balance is a demo portfolio holding: units of an asset held by the
// local user. Static, like the rest of the dataset.
type Balance struct {
	AssetID string
	Units   int
}
