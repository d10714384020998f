package geo

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/example/ride-board/internal/models"
)

// RedisGeo implements Geo on Redis GEO commands so the index survives server
// restarts and can be fed by the offer-events consumer.
type RedisGeo struct {
	client *redis.Client
	key    string
	ctx    context.Context
}

func NewRedisGeo(addr, password, key string) *RedisGeo {
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	return &RedisGeo{client: c, key: key, ctx: context.Background()}
}

func (r *RedisGeo) Upsert(o models.RideOffer) {
	// GEOADD for the origin point, HSET for the marker labels
	_, _ = r.client.GeoAdd(r.ctx, r.key, &redis.GeoLocation{Longitude: o.FromLng, Latitude: o.FromLat, Name: o.ID}).Result()
	_ = r.client.HSet(r.ctx, OriginMetaKey(o.ID), map[string]interface{}{"from": o.From, "to": o.To}).Err()
}

func (r *RedisGeo) Nearby(lat, lng float64, limit int) []OfferOrigin {
	// inter-city offers: a wide radius, nearest first
	res, err := r.client.GeoRadius(r.ctx, r.key, lng, lat, &redis.GeoRadiusQuery{
		Radius: 200, Unit: "km", WithCoord: true, WithDist: true, Count: limit, Sort: "ASC",
	}).Result()
	if err != nil {
		return nil
	}
	out := make([]OfferOrigin, 0, len(res))
	for _, g := range res {
		o := OfferOrigin{ID: g.Name, Lat: g.Latitude, Lng: g.Longitude}
		if m, err := r.client.HGetAll(r.ctx, OriginMetaKey(g.Name)).Result(); err == nil {
			o.From = m["from"]
			o.To = m["to"]
		}
		out = append(out, o)
	}
	return out
}

// OriginMetaKey names the hash holding marker labels for one offer.
// Shared with cmd/consumer, which writes the same keys.
func OriginMetaKey(id string) string { return "ride:origin:" + id }
