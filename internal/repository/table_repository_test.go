package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tableCols = []string{
	"id", "venue_id", "table_number", "display_name", "location",
	"capacity_min", "capacity_max", "capacity_preferred",
	"is_premium", "is_booth", "position_x", "position_y",
	"min_spend", "deposit_required", "amenities", "display_order", "is_active",
}

func tableRow(rows *sqlmock.Rows, id string, number int, displayName, amenities any) *sqlmock.Rows {
	return rows.AddRow(
		id, "venue-1", number, displayName, "upstairs",
		2, 8, 6, false, true, 10.5, 22.0,
		30000, 5000, amenities, number, true,
	)
}

func TestTableRepoListActiveByVenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(tableCols)
	tableRow(rows, "t-1", 1, "The Booth", `["champagne bucket","private waiter"]`)
	tableRow(rows, "t-2", 2, nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM tables").
		WithArgs("venue-1").
		WillReturnRows(rows)

	tables, err := NewTableRepo(db).ListActiveByVenue(context.Background(), "venue-1")
	require.NoError(t, err)
	require.Len(t, tables, 2)

	assert.Equal(t, "The Booth", tables[0].DisplayName)
	assert.Equal(t, []string{"champagne bucket", "private waiter"}, tables[0].Amenities)

	// missing display name falls back to "Table {number}", missing
	// amenities to the empty set
	assert.Equal(t, "Table 2", tables[1].DisplayName)
	assert.NotNil(t, tables[1].Amenities)
	assert.Empty(t, tables[1].Amenities)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepoMalformedAmenitiesFallsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(tableCols)
	tableRow(rows, "t-1", 1, "Booth", "not json")

	mock.ExpectQuery("SELECT (.+) FROM tables").
		WithArgs("venue-1").
		WillReturnRows(rows)

	tables, err := NewTableRepo(db).ListActiveByVenue(context.Background(), "venue-1")
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Empty(t, tables[0].Amenities)
}

func TestTableRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM tables WHERE id = ?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(tableCols))

	_, err = NewTableRepo(db).GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestTableRepoFirstActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(tableCols)
	tableRow(rows, "t-1", 1, "Booth", nil)

	mock.ExpectQuery("SELECT (.+) FROM tables").
		WillReturnRows(rows)

	table, err := NewTableRepo(db).FirstActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t-1", table.ID)
}
