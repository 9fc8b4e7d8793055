package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// Earth's mean radius in kilometers
const earthRadiusKm = 6371.0

// Point represents a geographic point with latitude and longitude in
// decimal degrees
type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance calculates the great-circle distance between two points in
// kilometers using the Haversine formula. It is symmetric, returns 0 for
// coincident points and never returns NaN or a negative value; the
// intermediate term is clamped so antipodal points stay inside Asin's
// domain despite floating-point rounding.
func Distance(p1, p2 Point) float64 {
	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if a > 1 {
		a = 1
	}
	if a < 0 {
		a = 0
	}
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidCoordinate reports whether lat/lng form a usable coordinate pair:
// finite and within the ±90/±180 degree range.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Encode converts a point to a geohash string with the given precision.
// Used for cache keys and for coarse location logging, which keeps precise
// rider coordinates out of log streams.
func Encode(p Point, precision uint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}

// Decode converts a geohash string back to a point
func Decode(hash string) Point {
	lat, lng := geohash.Decode(hash)
	return Point{Latitude: lat, Longitude: lng}
}
