package utils

import (
	"math"
	"strconv"
	"strings"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000

// DefaultGeoFenceRadius is the in-site tolerance around a sede, in meters.
const DefaultGeoFenceRadius = 50

// Coordinates is a parsed "lat, lon" pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// ParseCoordinates parses free text of the form "lat, lon".
// The second return value is false when the text is not exactly two finite numbers.
func ParseCoordinates(raw string) (Coordinates, bool) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Coordinates{}, false
	}

	return Coordinates{Latitude: lat, Longitude: lon}, true
}

// CalculateHaversineDistance returns the great-circle distance between two points in meters.
func CalculateHaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	// Rounding can push a slightly above 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// GeoFence decides whether a point lies within RadiusMeters of a reference point.
type GeoFence struct {
	RadiusMeters float64
}

func NewGeoFence(radiusMeters float64) GeoFence {
	if radiusMeters < 0 {
		radiusMeters = 0
	}
	return GeoFence{RadiusMeters: radiusMeters}
}

// Contains reports whether point is within the fence centered at center.
func (g GeoFence) Contains(point, center Coordinates) bool {
	dist := CalculateHaversineDistance(point.Latitude, point.Longitude, center.Latitude, center.Longitude)
	return dist <= g.RadiusMeters
}

// IsWithin parses both coordinate strings and checks the fence.
// It returns nil when either side cannot be parsed.
func (g GeoFence) IsWithin(point, center string) *bool {
	p, ok := ParseCoordinates(point)
	if !ok {
		return nil
	}
	c, ok := ParseCoordinates(center)
	if !ok {
		return nil
	}

	inside := g.Contains(p, c)
	return &inside
}
