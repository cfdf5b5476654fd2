package services

import (
	"fmt"
	"math"
	"sync"
	"time"
)

const (
	earthRadiusKm    = 6371.0
	averageSpeedKmph = 30.0 // assumed urban travel speed
	minTravelMinutes = 5
	maxTravelMinutes = 120
)

// TravelEstimatorService estimates how long moving between two coordinate
// pairs takes. The default implementation is an offline heuristic, not a
// routing call: identical inputs always produce identical answers.
type TravelEstimatorService interface {
	TravelMinutes(lat1, lng1, lat2, lng2 float64) int
	DistanceKm(lat1, lng1, lat2, lng2 float64) float64
}

// --------- In-memory cache per coordinate pair ---------

type pairKey struct {
	A string
	B string
}

type pairCacheEntry struct {
	Minutes   int
	ExpiresAt time.Time
}

type travelPairCache struct {
	mu    sync.RWMutex
	store map[pairKey]pairCacheEntry
}

func newTravelPairCache() *travelPairCache {
	return &travelPairCache{store: make(map[pairKey]pairCacheEntry)}
}

func (c *travelPairCache) Get(k pairKey) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return 0, false
	}
	return it.Minutes, true
}

func (c *travelPairCache) Set(k pairKey, minutes int, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = pairCacheEntry{Minutes: minutes, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- Haversine estimator ---------------

type HaversineEstimator struct {
	cache      *travelPairCache
	DefaultTTL time.Duration
}

func NewHaversineEstimator() *HaversineEstimator {
	return &HaversineEstimator{
		cache:      newTravelPairCache(),
		DefaultTTL: 24 * time.Hour,
	}
}

// DistanceKm returns the great-circle distance between the two points.
func (e *HaversineEstimator) DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*sinLng*sinLng

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// TravelMinutes converts the great-circle distance to minutes at the assumed
// urban speed, rounded up and clamped to [5, 120]. Two identical points
// still cost the clamped minimum, never zero.
func (e *HaversineEstimator) TravelMinutes(lat1, lng1, lat2, lng2 float64) int {
	k := pairKey{A: coordKey(lat1, lng1), B: coordKey(lat2, lng2)}
	if minutes, ok := e.cache.Get(k); ok {
		return minutes
	}

	minutes := int(math.Ceil(e.DistanceKm(lat1, lng1, lat2, lng2) / averageSpeedKmph * 60))
	if minutes < minTravelMinutes {
		minutes = minTravelMinutes
	}
	if minutes > maxTravelMinutes {
		minutes = maxTravelMinutes
	}

	e.cache.Set(k, minutes, e.DefaultTTL)
	return minutes
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func coordKey(lat, lng float64) string {
	return fmt.Sprintf("%.5f,%.5f", lat, lng)
}
