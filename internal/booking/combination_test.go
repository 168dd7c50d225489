package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
)

func tbl(id string, location string, min, max, preferred int, minSpend, deposit int64, available bool) model.TableWithAvailability {
	return model.TableWithAvailability{
		Table: model.Table{
			ID:                id,
			Location:          location,
			CapacityMin:       min,
			CapacityMax:       max,
			CapacityPreferred: preferred,
			MinSpend:          minSpend,
			DepositRequired:   deposit,
		},
		IsAvailable: available,
	}
}

func TestCombinationsSinglesPreferredFitFirst(t *testing.T) {
	tables := []model.TableWithAvailability{
		tbl("t-loose", model.LocationUpstairs, 2, 10, 8, 30000, 5000, true),
		tbl("t-snug", model.LocationUpstairs, 2, 6, 4, 20000, 5000, true),
	}
	combos := Combinations(tables, 4)
	require.NotEmpty(t, combos)

	// the table whose preferred capacity matches the party comes first
	assert.Equal(t, []string{"t-snug"}, combos[0].TableIDs)
	assert.Equal(t, 6, combos[0].TotalCapacity)
	assert.Equal(t, int64(20000), combos[0].TotalMinSpend)
	assert.Equal(t, int64(5000), combos[0].TotalDeposit)
}

func TestCombinationsExcludesUnavailable(t *testing.T) {
	tables := []model.TableWithAvailability{
		tbl("t-free", model.LocationDownstairs, 2, 6, 4, 10000, 5000, true),
		tbl("t-taken", model.LocationDownstairs, 2, 6, 4, 10000, 5000, false),
	}
	combos := Combinations(tables, 4)
	require.Len(t, combos, 1)
	assert.Equal(t, []string{"t-free"}, combos[0].TableIDs)
}

func TestCombinationsPairsShareFloor(t *testing.T) {
	// no single table can seat 12; only the same-floor pair qualifies
	tables := []model.TableWithAvailability{
		tbl("up-a", model.LocationUpstairs, 4, 6, 5, 20000, 5000, true),
		tbl("up-b", model.LocationUpstairs, 4, 8, 6, 25000, 5000, true),
		tbl("down-c", model.LocationDownstairs, 4, 8, 6, 25000, 5000, true),
	}
	combos := Combinations(tables, 12)
	require.Len(t, combos, 1)
	assert.ElementsMatch(t, []string{"up-a", "up-b"}, combos[0].TableIDs)
	assert.Equal(t, 14, combos[0].TotalCapacity)
	assert.Equal(t, int64(45000), combos[0].TotalMinSpend)
	assert.Equal(t, int64(10000), combos[0].TotalDeposit)
}

func TestCombinationsCapped(t *testing.T) {
	var tables []model.TableWithAvailability
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		tables = append(tables, tbl(id, model.LocationUpstairs, 2, 6, 4, 10000, 5000, true))
	}
	combos := Combinations(tables, 4)
	assert.Len(t, combos, 5)
}

func TestCombinationsEmptyForNonPositiveParty(t *testing.T) {
	tables := []model.TableWithAvailability{
		tbl("t1", model.LocationUpstairs, 2, 6, 4, 10000, 5000, true),
	}
	assert.Empty(t, Combinations(tables, 0))
	assert.Empty(t, Combinations(tables, -1))
	assert.Empty(t, Combinations(nil, 4))
}
