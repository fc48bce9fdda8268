package sede

import "time"

// Sede is a work site. Coordinates is kept as the free text "lat, lon" and
// parsed on demand.
type Sede struct {
	ID          string
	Name        string
	Address     *string
	Coordinates *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
