package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/ride-board/internal/matcher"
	"github.com/example/ride-board/internal/models"
)

// OfferStore defines persistence operations for ride offers. The handle is
// constructed once at process start and injected into every consumer; there
// is no ambient connection state.
type OfferStore interface {
	// CreateOffer assigns identity and creation time, appends the offer and
	// returns the persisted record.
	CreateOffer(ctx context.Context, offer models.RideOffer) (models.RideOffer, error)

	// Seed discards all offers and inserts the fixed sample set atomically.
	// The end state after any number of calls is the same six records.
	Seed(ctx context.Context) ([]models.RideOffer, error)

	// ListAll returns up to limit offers, newest first.
	ListAll(ctx context.Context, limit int) ([]models.RideOffer, error)

	// Search returns up to limit offers matching the criteria, newest first.
	// Criteria are assumed pre-validated.
	Search(ctx context.Context, c models.SearchCriteria, limit int) ([]models.RideOffer, error)

	// Ping reports whether the backing persistence is reachable.
	Ping(ctx context.Context) error
}

// MemoryStore keeps offers in insertion order behind a RWMutex. It is the
// fallback when no Postgres DSN is configured, and what tests run against.
type MemoryStore struct {
	mu     sync.RWMutex
	offers []models.RideOffer
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) CreateOffer(ctx context.Context, offer models.RideOffer) (models.RideOffer, error) {
	offer.ID = uuid.NewString()
	offer.CreatedAt = time.Now().UTC()
	m.mu.Lock()
	m.offers = append(m.offers, offer)
	m.mu.Unlock()
	return offer, nil
}

// Seed holds the write lock across clear and insert so no reader ever sees a
// half-seeded state.
func (m *MemoryStore) Seed(ctx context.Context) ([]models.RideOffer, error) {
	now := time.Now().UTC()
	seeded := SampleOffers(now)
	for i := range seeded {
		seeded[i].ID = uuid.NewString()
		seeded[i].CreatedAt = now
	}
	m.mu.Lock()
	m.offers = seeded
	m.mu.Unlock()
	return append([]models.RideOffer(nil), seeded...), nil
}

func (m *MemoryStore) ListAll(ctx context.Context, limit int) ([]models.RideOffer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.RideOffer{}
	for i := len(m.offers) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, m.offers[i])
	}
	return out, nil
}

func (m *MemoryStore) Search(ctx context.Context, c models.SearchCriteria, limit int) ([]models.RideOffer, error) {
	m.mu.RLock()
	recent := make([]models.RideOffer, 0, len(m.offers))
	for i := len(m.offers) - 1; i >= 0; i-- {
		recent = append(recent, m.offers[i])
	}
	m.mu.RUnlock()
	return matcher.Filter(recent, c, limit), nil
}

func (m *MemoryStore) Ping(ctx context.Context) error { return nil }
