package model

// VenueCapacity groups the headline capacity figures for a venue.  The
// main bar and private room are booked separately, so their capacities
// are tracked alongside the overall total.
type VenueCapacity struct {
	Total       int `json:"total"`       // venues.capacity_total
	MainBar     int `json:"mainBar"`     // venues.capacity_main_bar
	PrivateRoom int `json:"privateRoom"` // venues.capacity_private_room
}

// Venue is a read-only projection of a venue row.  Venues are created and
// edited in the managed store; this service never writes them.
type Venue struct {
	ID           string        `json:"id"`          // venues.id
	Slug         string        `json:"slug"`        // venues.slug, unique
	Name         string        `json:"name"`        // venues.name
	Description  string        `json:"description"` // venues.description
	Address      string        `json:"address"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	Capacity     VenueCapacity `json:"capacity"`
	OpeningHours string        `json:"openingHours"` // free text, not parsed
	IsActive     bool          `json:"isActive"`
}
