package utils

import "math"

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// NearbyRadiusKm is the lookup threshold for nearby salons.
const NearbyRadiusKm = 10.0

// Haversine returns the great-circle distance in kilometres between two
// latitude/longitude points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// WithinRadius reports whether the two points are at most radiusKm apart.
func WithinRadius(lat1, lng1, lat2, lng2, radiusKm float64) bool {
	return Haversine(lat1, lng1, lat2, lng2) <= radiusKm
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
