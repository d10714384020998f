package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OffersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "ride_board", Name: "offers_created_total", Help: "Total ride offers created"})
	SeedsTotal         = promauto.NewCounter(prometheus.CounterOpts{Namespace: "ride_board", Name: "seeds_total", Help: "Total seed operations"})
	SearchesTotal      = promauto.NewCounter(prometheus.CounterOpts{Namespace: "ride_board", Name: "searches_total", Help: "Total search queries evaluated"})
	SearchResultSize   = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ride_board",
		Name:      "search_result_size",
		Help:      "Number of offers returned per search",
		Buckets:   prometheus.LinearBuckets(0, 2, 11),
	})
	FeedSubscribers = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "ride_board", Name: "feed_subscribers", Help: "Connected live-feed websocket subscribers"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ride_board", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ride_board",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
