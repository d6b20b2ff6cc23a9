package pmtable

import "sort"

// Order is the ranking policy applied to a candidate list before
// presentation. Which policy fits which quantity is domain knowledge
// carried by the caller, not by the engine.
type Order string

const (
	// OrderOffset keeps the scan's ascending offset order. Used where
	// no numeric tie-break reliably picks the true field (SoC
	// temperature singles, frequency arrays).
	OrderOffset Order = "offset"

	// OrderValueDesc sorts highest value first. The junction
	// temperature is typically the hottest sensor in the table, so this
	// shortens the search for Tctl.
	OrderValueDesc Order = "value"

	// OrderMeanDesc sorts array candidates by window mean, highest
	// first. The true per-core array usually has the highest plausible
	// mean among competing windows.
	OrderMeanDesc Order = "mean"
)

// RankFields orders single-offset candidates. The sort is stable, so
// equal values keep their ascending offset order. The input is not
// modified.
func RankFields(fields []Field, order Order) []Field {
	ranked := make([]Field, len(fields))
	copy(ranked, fields)

	if order == OrderValueDesc {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Value > ranked[j].Value
		})
	}

	return ranked
}

// RankArrays orders array candidates. Stable, input not modified.
func RankArrays(candidates []ArrayCandidate, order Order) []ArrayCandidate {
	ranked := make([]ArrayCandidate, len(candidates))
	copy(ranked, candidates)

	if order == OrderMeanDesc {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Mean > ranked[j].Mean
		})
	}

	return ranked
}
