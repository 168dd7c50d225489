package model

// Table locations within a venue.  The floor position coordinates are
// relative to the plan of the named location.
const (
	LocationUpstairs   = "upstairs"
	LocationDownstairs = "downstairs"
)

// Table is a read-only projection of a bookable table.  Tables belong to
// exactly one venue and are maintained in the managed store.
//
// Fields:
//
//	TableNumber     – the physical table number used by staff.
//	DisplayName     – marketing name; defaults to "Table {number}".
//	CapacityMin/Max – hard party size bounds enforced by the store.
//	CapacityPreferred – the size the table seats comfortably.
//	MinSpend        – minimum spend in minor currency units (pence).
//	DepositRequired – deposit in minor currency units.
type Table struct {
	ID                string   `json:"id"`      // tables.id
	VenueID           string   `json:"venueId"` // tables.venue_id
	TableNumber       int      `json:"tableNumber"`
	DisplayName       string   `json:"displayName"`
	Location          string   `json:"location"` // upstairs | downstairs
	CapacityMin       int      `json:"capacityMin"`
	CapacityMax       int      `json:"capacityMax"`
	CapacityPreferred int      `json:"capacityPreferred"`
	IsPremium         bool     `json:"isPremium"`
	IsBooth           bool     `json:"isBooth"`
	PositionX         float64  `json:"positionX"`
	PositionY         float64  `json:"positionY"`
	MinSpend          int64    `json:"minSpend"`
	DepositRequired   int64    `json:"depositRequired"`
	Amenities         []string `json:"amenities"` // never nil, defaults to empty
	DisplayOrder      int      `json:"displayOrder"`
	IsActive          bool     `json:"isActive"`
}

// TableWithAvailability annotates a table with the result of an
// availability check for one specific (date, start, end) window.  The
// annotation is ephemeral: it is recomputed on every query and must never
// be reused for a different window.
type TableWithAvailability struct {
	Table
	IsAvailable bool `json:"isAvailable"`
}

// TableCounts summarises an annotated table list.
type TableCounts struct {
	Total      int `json:"total"`
	Available  int `json:"available"`
	Upstairs   int `json:"upstairs"`
	Downstairs int `json:"downstairs"`
}

// TableCombination is a derived grouping of one or more tables that
// jointly satisfies a party size.  Combinations are suggestions computed
// per query and are not persisted.
type TableCombination struct {
	TableIDs      []string                `json:"tableIds"`
	Tables        []TableWithAvailability `json:"tables"`
	TotalCapacity int                     `json:"totalCapacity"`
	TotalMinSpend int64                   `json:"totalMinSpend"`
	TotalDeposit  int64                   `json:"totalDeposit"`
}
