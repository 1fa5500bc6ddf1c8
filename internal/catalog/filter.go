package catalog

import (
	"sort"
	"strings"
)

// SortKey selects the ordering applied after all filters.
type SortKey int

const (
	SortPopularity SortKey = iota // sold desc
	// SortRecency reverses declaration order. The dataset carries no
	// creation timestamps, so this is the strongest recency the catalog
	// can offer.
	SortRecency
	SortPriceAsc
	SortPriceDesc
	SortScarcity // sold/(sold+available) desc
)

func (k SortKey) String() string {
	switch k {
	case SortRecency:
		return "recency"
	case SortPriceAsc:
		return "price-asc"
	case SortPriceDesc:
		return "price-desc"
	case SortScarcity:
		return "scarcity"
	}
	return "popularity"
}

// PriceRange is a closed set of half-open yen intervals.
type PriceRange int

const (
	PriceAll PriceRange = iota
	PriceUnder10K
	Price10Kto50K
	Price50Kto100K
	Price100Kto500K
	PriceOver500K
	priceRangeCount
)

// bounds returns the [lo, hi) interval for a bucket. hi < 0 means unbounded.
func (r PriceRange) bounds() (lo, hi int) {
	switch r {
	case PriceUnder10K:
		return 0, 10000
	case Price10Kto50K:
		return 10000, 50000
	case Price50Kto100K:
		return 50000, 100000
	case Price100Kto500K:
		return 100000, 500000
	case PriceOver500K:
		return 500000, -1
	}
	return 0, -1
}

// Contains reports whether price falls inside the bucket. PriceAll admits
// everything.
func (r PriceRange) Contains(price int) bool {
	lo, hi := r.bounds()
	if price < lo {
		return false
	}
	return hi < 0 || price < hi
}

func (r PriceRange) String() string {
	switch r {
	case PriceUnder10K:
		return "<10k"
	case Price10Kto50K:
		return "10k-50k"
	case Price50Kto100K:
		return "50k-100k"
	case Price100Kto500K:
		return "100k-500k"
	case PriceOver500K:
		return "500k+"
	}
	return "all"
}

// FilterSpec is the full browse filter tuple. Zero value means "show
// everything, most popular first".
type FilterSpec struct {
	Query    string
	Category ProjectCategory // empty = all
	Price    PriceRange
	Sort     SortKey
}

// Filter returns a fresh, ordered slice of the assets matching every
// active predicate. The catalog is never mutated; identical specs yield
// identical output.
func (c *Catalog) Filter(spec FilterSpec) []Asset {
	out := make([]Asset, 0, len(c.assets))
	for _, a := range c.assets {
		if !c.matchesQuery(a, spec.Query) {
			continue
		}
		if spec.Category != "" && !c.matchesCategory(a, spec.Category) {
			continue
		}
		if !spec.Price.Contains(a.PriceYen) {
			continue
		}
		out = append(out, a)
	}
	c.sortAssets(out, spec.Sort)
	return out
}

// matchesQuery is a case-insensitive substring match over the asset's own
// names and its parent project's names. Blank queries match everything.
func (c *Catalog) matchesQuery(a Asset, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if containsFold(a.Name, q) {
		return true
	}
	if p, ok := c.projectByID[a.ProjectID]; ok && containsFold(p.Name, q) {
		return true
	}
	return false
}

func containsFold(t Text, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(t.EN), loweredQuery) ||
		strings.Contains(strings.ToLower(t.JA), loweredQuery)
}

// matchesCategory keys off the parent project's offering kind. Assets with
// a dangling project reference match no category filter.
func (c *Catalog) matchesCategory(a Asset, cat ProjectCategory) bool {
	p, ok := c.projectByID[a.ProjectID]
	return ok && p.Category == cat
}

// sortAssets orders in place. Every key breaks ties by ascending asset ID
// so equal-key runs are reproducible across processes.
func (c *Catalog) sortAssets(assets []Asset, key SortKey) {
	sort.SliceStable(assets, func(i, j int) bool {
		a, b := assets[i], assets[j]
		switch key {
		case SortRecency:
			return c.declOrder[a.ID] > c.declOrder[b.ID]
		case SortPriceAsc:
			if a.PriceYen != b.PriceYen {
				return a.PriceYen < b.PriceYen
			}
		case SortPriceDesc:
			if a.PriceYen != b.PriceYen {
				return a.PriceYen > b.PriceYen
			}
		case SortScarcity:
			ra, rb := a.ScarcityRatio(), b.ScarcityRatio()
			if ra != rb {
				return ra > rb
			}
		default: // SortPopularity
			if a.Sold != b.Sold {
				return a.Sold > b.Sold
			}
		}
		return a.ID < b.ID
	})
}

// NextSort cycles through the sort keys in display order.
func NextSort(k SortKey) SortKey {
	switch k {
	case SortPopularity:
		return SortRecency
	case SortRecency:
		return SortPriceAsc
	case SortPriceAsc:
		return SortPriceDesc
	case SortPriceDesc:
		return SortScarcity
	}
	return SortPopularity
}

// NextPriceRange cycles through the price buckets, wrapping back to all.
func NextPriceRange(r PriceRange) PriceRange {
	next := r + 1
	if next >= priceRangeCount {
		return PriceAll
	}
	return next
}

// NextCategory cycles all -> membership -> nft -> investment -> experience.
func NextCategory(cat ProjectCategory) ProjectCategory {
	switch cat {
	case "":
		return CategoryMembership
	case CategoryMembership:
		return CategoryNFT
	case CategoryNFT:
		return CategoryInvestment
	case CategoryInvestment:
		return CategoryExperience
	}
	return ""
}
