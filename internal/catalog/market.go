package catalog

import "hash/fnv"

// Mock market movement. These figures are illustrative only: they are
// derived from a hash of the asset ID so they stay stable across runs,
// and they are not connected to any pricing source.

// MockChangePercent returns the fake 24h change for an asset, in the
// range [-5, +5]. Same ID, same answer, every run.
func MockChangePercent(assetID string) float64 {
	h := fnv.New32a()
	h.Write([]byte(assetID))
	n := h.Sum32() % 1001 // 0..1000
	return float64(n)/100 - 5
}

// MockChangeYen applies the mock 24h change to a price, rounding toward
// zero the way integer yen display does.
func MockChangeYen(assetID string, priceYen int) int {
	return int(float64(priceYen) * MockChangePercent(assetID) / 100)
}
