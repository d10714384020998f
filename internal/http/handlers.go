package httpapi

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/ride-board/internal/config"
	"github.com/example/ride-board/internal/feed"
	"github.com/example/ride-board/internal/geo"
	"github.com/example/ride-board/internal/ingest"
	"github.com/example/ride-board/internal/models"
	"github.com/example/ride-board/internal/observability"
	"github.com/example/ride-board/internal/storage"
)

// Server carries the injected collaborators for every request handler.
// Everything is constructed once in cmd/server and passed in; handlers hold
// no ambient state.
type Server struct {
	store  storage.OfferStore
	geo    geo.Geo
	kafka  *ingest.KafkaProducer // nil when no brokers configured
	feed   *feed.Hub
	cfg    config.ServerConfig
	logger *slog.Logger
	mux    *mux.Router
}

func NewServer(cfg config.ServerConfig, logger *slog.Logger, store storage.OfferStore, g geo.Geo, kp *ingest.KafkaProducer, hub *feed.Hub) *Server {
	s := &Server{store: store, geo: g, kafka: kp, feed: hub, cfg: cfg, logger: logger, mux: mux.NewRouter()}
	s.registerMiddleware()
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/rides/search", s.handleSearchRides).Methods("GET")
	s.mux.HandleFunc("/api/rides/nearby", s.handleNearbyRides).Methods("GET")
	s.mux.HandleFunc("/api/rides/seed", s.handleSeedRides).Methods("POST")
	s.mux.HandleFunc("/api/rides", s.handleListRides).Methods("GET")
	s.mux.HandleFunc("/api/rides", s.handleCreateRide).Methods("POST")
	s.mux.HandleFunc("/api/ping", s.handlePing).Methods("GET")
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) }).Methods("GET")
	s.mux.HandleFunc("/ready", s.handleReady).Methods("GET")
	s.mux.Handle("/metrics", promhttp.Handler())
	s.mux.HandleFunc("/ws/offers", s.handleOffersWS)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

// apiResponse is the JSON envelope every /api/rides endpoint answers with.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleSearchRides(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c := models.SearchCriteria{
		From: q.Get("from"),
		To:   q.Get("to"),
		Date: q.Get("date"),
	}
	if v := q.Get("passengers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, 400, apiResponse{Error: "passengers must be a number"})
			return
		}
		// 0 or negative means no seat filter, same as absent
		if n > 0 {
			c.MinPassengers = n
		}
	}
	if err := c.Validate(); err != nil {
		writeJSON(w, 400, apiResponse{Error: "From and To locations are required"})
		return
	}

	observability.SearchesTotal.Inc()
	rides, err := s.store.Search(r.Context(), c, s.cfg.SearchLimit)
	if err != nil {
		s.logger.Error("search failed", "error", err, "from", c.From, "to", c.To)
		writeJSON(w, 500, apiResponse{Error: "Failed to search rides"})
		return
	}
	observability.SearchResultSize.Observe(float64(len(rides)))
	writeJSON(w, 200, apiResponse{Success: true, Data: rides})
}

func (s *Server) handleListRides(w http.ResponseWriter, r *http.Request) {
	rides, err := s.store.ListAll(r.Context(), s.cfg.ListLimit)
	if err != nil {
		s.logger.Error("list rides failed", "error", err)
		writeJSON(w, 500, apiResponse{Error: "Failed to fetch rides"})
		return
	}
	writeJSON(w, 200, apiResponse{Success: true, Data: rides})
}

func (s *Server) handleCreateRide(w http.ResponseWriter, r *http.Request) {
	var in models.OfferInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, 400, apiResponse{Error: "invalid request body"})
		return
	}
	offer, err := in.Validate()
	if err != nil {
		writeJSON(w, 400, apiResponse{Error: err.Error()})
		return
	}

	created, err := s.store.CreateOffer(r.Context(), offer)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			writeJSON(w, 400, apiResponse{Error: err.Error()})
			return
		}
		s.logger.Error("create ride failed", "error", err)
		writeJSON(w, 500, apiResponse{Error: "Failed to create ride"})
		return
	}

	s.afterOfferCommitted(created)
	observability.OffersCreatedTotal.Inc()
	writeJSON(w, 201, apiResponse{Success: true, Data: created})
}

func (s *Server) handleSeedRides(w http.ResponseWriter, r *http.Request) {
	seeded, err := s.store.Seed(r.Context())
	if err != nil {
		s.logger.Error("seed failed", "error", err)
		writeJSON(w, 500, apiResponse{Error: "Failed to seed rides"})
		return
	}
	for _, o := range seeded {
		s.afterOfferCommitted(o)
	}
	observability.SeedsTotal.Inc()
	writeJSON(w, 200, apiResponse{
		Success: true,
		Message: strconv.Itoa(len(seeded)) + " sample rides created",
		Data:    seeded,
	})
}

// afterOfferCommitted runs the best-effort fanout for an offer that is already
// durable: event publish, geo index, live feed. None of these can fail the
// request that produced the offer.
func (s *Server) afterOfferCommitted(o models.RideOffer) {
	if s.kafka != nil {
		if err := s.kafka.PublishOffer(o); err != nil {
			s.logger.Warn("offer event publish failed", "error", err, "offer_id", o.ID)
		}
	}
	if s.geo != nil {
		s.geo.Upsert(o)
	}
	if s.feed != nil {
		s.feed.Broadcast(o)
		observability.FeedSubscribers.Set(float64(s.feed.Len()))
	}
}

func (s *Server) handleNearbyRides(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		writeJSON(w, 400, apiResponse{Error: "lat and lng are required"})
		return
	}
	limit := s.cfg.NearbyLimit
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, 400, apiResponse{Error: "limit must be a positive number"})
			return
		}
		limit = n
	}
	writeJSON(w, 200, apiResponse{Success: true, Data: s.geo.Nearby(lat, lng, limit)})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]string{"message": s.cfg.PingMessage})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Warn("store not ready", "error", err)
		http.Error(w, "store not ready", 503)
		return
	}
	w.WriteHeader(200)
	w.Write([]byte("ready"))
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func (s *Server) handleOffersWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "upgrade failed", 400)
		return
	}
	n := s.feed.Add(conn)
	observability.FeedSubscribers.Set(float64(n))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newID() string { b := make([]byte, 8); _, _ = rand.Read(b); return hex.EncodeToString(b) }
