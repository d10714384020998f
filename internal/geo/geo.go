package geo

import (
	"math"
	"sync"

	"github.com/example/ride-board/internal/models"
)

// OfferOrigin is the slim projection of an offer kept in the geo index:
// just the pickup point plus enough text to label a map marker.
type OfferOrigin struct {
	ID   string  `json:"_id"`
	From string  `json:"from"`
	To   string  `json:"to"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Geo is the minimal interface required by the nearby handler.
type Geo interface {
	Nearby(lat, lng float64, limit int) []OfferOrigin
	Upsert(o models.RideOffer)
}

// Index is the in-memory implementation, used when no Redis is configured.
type Index struct {
	mu      sync.RWMutex
	origins map[string]OfferOrigin
}

func NewIndex() *Index {
	return &Index{origins: make(map[string]OfferOrigin)}
}

func (g *Index) Upsert(o models.RideOffer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.origins[o.ID] = OfferOrigin{ID: o.ID, From: o.From, To: o.To, Lat: o.FromLat, Lng: o.FromLng}
}

// naive scan; fine at board scale
func (g *Index) Nearby(lat, lng float64, limit int) []OfferOrigin {
	g.mu.RLock()
	defer g.mu.RUnlock()
	type pair struct {
		o    OfferOrigin
		dist float64
	}
	arr := make([]pair, 0, len(g.origins))
	for _, o := range g.origins {
		arr = append(arr, pair{o, Haversine(lat, lng, o.Lat, o.Lng)})
	}
	// partial selection sort for top-N
	n := limit
	if n > len(arr) {
		n = len(arr)
	}
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < len(arr); j++ {
			if arr[j].dist < arr[minIdx].dist {
				minIdx = j
			}
		}
		arr[i], arr[minIdx] = arr[minIdx], arr[i]
	}
	out := make([]OfferOrigin, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, arr[i].o)
	}
	return out
}

// Haversine distance in meters
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	const R = 6371000.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
