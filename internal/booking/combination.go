package booking

import (
	"sort"

	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
)

// maxSuggestions caps how many combinations a single query returns.
const maxSuggestions = 5

// Combinations suggests table groupings for a party size from an
// availability-annotated table list.  Single tables whose capacity bounds
// cover the party come first, ordered by how close their preferred
// capacity is to the party size; two-table pairs on the same floor fill
// in when singles are scarce.  Unavailable tables never take part.
func Combinations(tables []model.TableWithAvailability, partySize int) []model.TableCombination {
	if partySize <= 0 {
		return []model.TableCombination{}
	}

	free := make([]model.TableWithAvailability, 0, len(tables))
	for _, t := range tables {
		if t.IsAvailable {
			free = append(free, t)
		}
	}

	combos := singles(free, partySize)
	if len(combos) < maxSuggestions {
		combos = append(combos, pairs(free, partySize)...)
	}
	if len(combos) > maxSuggestions {
		combos = combos[:maxSuggestions]
	}
	return combos
}

func singles(free []model.TableWithAvailability, partySize int) []model.TableCombination {
	var out []model.TableCombination
	for _, t := range free {
		if partySize < t.CapacityMin || partySize > t.CapacityMax {
			continue
		}
		out = append(out, model.TableCombination{
			TableIDs:      []string{t.ID},
			Tables:        []model.TableWithAvailability{t},
			TotalCapacity: t.CapacityMax,
			TotalMinSpend: t.MinSpend,
			TotalDeposit:  t.DepositRequired,
		})
	}
	// closest preferred-capacity fit first, cheaper minimum spend breaking ties
	sort.SliceStable(out, func(i, j int) bool {
		di := absDiff(out[i].Tables[0].CapacityPreferred, partySize)
		dj := absDiff(out[j].Tables[0].CapacityPreferred, partySize)
		if di != dj {
			return di < dj
		}
		return out[i].TotalMinSpend < out[j].TotalMinSpend
	})
	if out == nil {
		out = []model.TableCombination{}
	}
	return out
}

func pairs(free []model.TableWithAvailability, partySize int) []model.TableCombination {
	var out []model.TableCombination
	for i := 0; i < len(free); i++ {
		for j := i + 1; j < len(free); j++ {
			a, b := free[i], free[j]
			if a.Location != b.Location {
				continue // joined tables must share a floor
			}
			minCap := a.CapacityMin + b.CapacityMin
			maxCap := a.CapacityMax + b.CapacityMax
			if partySize < minCap || partySize > maxCap {
				continue
			}
			out = append(out, model.TableCombination{
				TableIDs:      []string{a.ID, b.ID},
				Tables:        []model.TableWithAvailability{a, b},
				TotalCapacity: maxCap,
				TotalMinSpend: a.MinSpend + b.MinSpend,
				TotalDeposit:  a.DepositRequired + b.DepositRequired,
			})
		}
	}
	// smallest combined capacity first so the party is not spread thin
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalCapacity != out[j].TotalCapacity {
			return out[i].TotalCapacity < out[j].TotalCapacity
		}
		return out[i].TotalMinSpend < out[j].TotalMinSpend
	})
	return out
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
