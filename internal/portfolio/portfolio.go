// Package portfolio values the demo token balances against the catalog.
package portfolio

import "github.com/kei/rwadeck/internal/catalog"

// Holding is one valued balance line.
type Holding struct {
	Asset         catalog.Asset
	Units         int
	ValueYen      int
	ChangePercent float64 // mock 24h movement, display only
	ChangeYen     int
}

// Report is the whole portfolio view.
type Report struct {
	Holdings    []Holding
	TotalYen    int
	TotalChange int
}

// Build values balances at catalog prices. Balances pointing at unknown
// assets are dropped silently, the same way every catalog lookup miss
// degrades to an empty result.
func Build(c *catalog.Catalog, balances []catalog.Balance) Report {
	var r Report
	for _, b := range balances {
		a, ok := c.AssetByID(b.AssetID)
		if !ok || b.Units <= 0 {
			continue
		}
		h := Holding{
			Asset:         a,
			Units:         b.Units,
			ValueYen:      b.Units * a.PriceYen,
			ChangePercent: catalog.MockChangePercent(a.ID),
			ChangeYen:     b.Units * catalog.MockChangeYen(a.ID, a.PriceYen),
		}
		r.Holdings = append(r.Holdings, h)
		r.TotalYen += h.ValueYen
		r.TotalChange += h.ChangeYen
	}
	return r
}
