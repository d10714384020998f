package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/example/ride-board/internal/models"
)

// PostgresStore persists offers in a rides table (see migrations/). Text
// matching runs inside the database with the same semantics as the in-memory
// store: literal case-insensitive containment via an escaped ILIKE pattern.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	// quick ping
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return &PostgresStore{db: db}, nil
}

const offerColumns = `id, driver_name, driver_image, driver_rating,
	from_location, to_location, from_lat, from_lng, to_lat, to_lng,
	price, available_seats, departure_time, departure_date, created_at`

func (p *PostgresStore) CreateOffer(ctx context.Context, offer models.RideOffer) (models.RideOffer, error) {
	offer.ID = uuid.NewString()
	offer.CreatedAt = time.Now().UTC()
	_, err := p.db.ExecContext(ctx, `INSERT INTO rides(`+offerColumns+`)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		offer.ID, offer.DriverName, offer.DriverImage, offer.DriverRating,
		offer.From, offer.To, offer.FromLat, offer.FromLng, offer.ToLat, offer.ToLng,
		offer.Price, offer.AvailableSeats, offer.DepartureTime, offer.DepartureDate, offer.CreatedAt)
	if err != nil {
		return models.RideOffer{}, fmt.Errorf("%w: insert offer: %v", models.ErrStoreUnavailable, err)
	}
	return offer, nil
}

// Seed clears and repopulates in a single transaction, so a concurrent reader
// observes either the old set or the new one, never the gap between.
func (p *PostgresStore) Seed(ctx context.Context) ([]models.RideOffer, error) {
	now := time.Now().UTC()
	seeded := SampleOffers(now)

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin seed: %v", models.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rides`); err != nil {
		return nil, fmt.Errorf("%w: clear rides: %v", models.ErrStoreUnavailable, err)
	}
	for i := range seeded {
		seeded[i].ID = uuid.NewString()
		seeded[i].CreatedAt = now
		o := seeded[i]
		if _, err := tx.ExecContext(ctx, `INSERT INTO rides(`+offerColumns+`)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
			o.ID, o.DriverName, o.DriverImage, o.DriverRating,
			o.From, o.To, o.FromLat, o.FromLng, o.ToLat, o.ToLng,
			o.Price, o.AvailableSeats, o.DepartureTime, o.DepartureDate, o.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: insert sample: %v", models.ErrStoreUnavailable, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit seed: %v", models.ErrStoreUnavailable, err)
	}
	return seeded, nil
}

func (p *PostgresStore) ListAll(ctx context.Context, limit int) ([]models.RideOffer, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT `+offerColumns+` FROM rides
		ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list rides: %v", models.ErrStoreUnavailable, err)
	}
	defer rows.Close()
	return scanOffers(rows)
}

func (p *PostgresStore) Search(ctx context.Context, c models.SearchCriteria, limit int) ([]models.RideOffer, error) {
	conds := []string{
		`from_location ILIKE $1 ESCAPE '\'`,
		`to_location ILIKE $2 ESCAPE '\'`,
	}
	args := []any{likePattern(c.From), likePattern(c.To)}
	if c.Date != "" {
		args = append(args, c.Date)
		conds = append(conds, fmt.Sprintf("departure_date = $%d", len(args)))
	}
	if c.MinPassengers > 0 {
		args = append(args, c.MinPassengers)
		conds = append(conds, fmt.Sprintf("available_seats >= $%d", len(args)))
	}
	args = append(args, limit)
	q := `SELECT ` + offerColumns + ` FROM rides WHERE ` + strings.Join(conds, " AND ") +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args))

	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSearchFailed, err)
	}
	defer rows.Close()
	return scanOffers(rows)
}

func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func scanOffers(rows *sql.Rows) ([]models.RideOffer, error) {
	out := []models.RideOffer{}
	for rows.Next() {
		var o models.RideOffer
		if err := rows.Scan(&o.ID, &o.DriverName, &o.DriverImage, &o.DriverRating,
			&o.From, &o.To, &o.FromLat, &o.FromLng, &o.ToLat, &o.ToLng,
			&o.Price, &o.AvailableSeats, &o.DepartureTime, &o.DepartureDate, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan ride: %v", models.ErrSearchFailed, err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// likePattern wraps user text for containment matching. LIKE metacharacters in
// the input are escaped so they match themselves; the raw regex passthrough of
// the old backend is deliberately not reproduced.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
