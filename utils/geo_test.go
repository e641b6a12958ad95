package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineIdenticalPoints(t *testing.T) {
	d := Haversine(19.0760, 72.8777, 19.0760, 72.8777)
	assert.Zero(t, d)
}

func TestHaversineSymmetry(t *testing.T) {
	ab := Haversine(19.0760, 72.8777, 28.7041, 77.1025)
	ba := Haversine(28.7041, 77.1025, 19.0760, 72.8777)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Paris to London, roughly 343 km
	d := Haversine(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 343.5, d, 2.0)
}

func TestWithinRadius(t *testing.T) {
	// About 1.1 km apart in central Mumbai
	assert.True(t, WithinRadius(19.0760, 72.8777, 19.0860, 72.8777, NearbyRadiusKm))

	// Mumbai to Delhi is far beyond 10 km
	assert.False(t, WithinRadius(19.0760, 72.8777, 28.7041, 77.1025, NearbyRadiusKm))
}
