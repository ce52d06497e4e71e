package utils

import "liqstats/internal/models"

// TruncateHash shortens long hex identifiers for display, keeping the
// first n characters.
func TruncateHash(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// ExtractUniqueMarkets extracts unique market ids from events, in order of
// first appearance. Events without a market id are skipped.
func ExtractUniqueMarkets(events []models.LiquidationEvent) []string {
	seen := make(map[string]struct{})
	var markets []string
	for _, ev := range events {
		if ev.MarketID == "" {
			continue
		}
		if _, ok := seen[ev.MarketID]; ok {
			continue
		}
		seen[ev.MarketID] = struct{}{}
		markets = append(markets, ev.MarketID)
	}
	return markets
}
