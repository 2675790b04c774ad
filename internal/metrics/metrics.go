package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RoundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roshambo_rounds_total",
			Help: "Rounds played, by mode and result (ties included)",
		},
		[]string{"mode", "result"},
	)
	MatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roshambo_matches_total",
			Help: "Best-of matches finished, by winner",
		},
		[]string{"winner"},
	)
	Spectators = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "roshambo_spectators",
			Help: "Live feed subscribers currently connected",
		},
	)
	FeedDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "roshambo_feed_dropped_total",
			Help: "Events dropped because a spectator was too slow",
		},
	)
)

func init() {
	prometheus.MustRegister(RoundsTotal)
	prometheus.MustRegister(MatchesTotal)
	prometheus.MustRegister(Spectators)
	prometheus.MustRegister(FeedDropped)
}
