package sede

import "errors"

var (
	ErrSedeNotFound       = errors.New("sede not found")
	ErrInvalidCoordinates = errors.New("coordinates must be \"lat, lon\"")
	ErrSedeInUse          = errors.New("sede still has employees or time records")
)
