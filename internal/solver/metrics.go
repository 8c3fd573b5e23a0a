package solver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchTotal counts finished searches by result
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "elevator_search_total",
		Help: "Total searches by result",
	}, []string{"result"})

	// searchExplored tracks how many states a search produced
	searchExplored = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "elevator_search_explored_states",
		Help:    "States produced per search",
		Buckets: prometheus.ExponentialBuckets(10, 4, 10), // 10 to ~2.6M
	})

	// searchDuration tracks search latency
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "elevator_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4min
	})
)

func observe(res Result, d time.Duration) {
	label := "solved"
	if !res.Solved() {
		label = "unsolvable"
	}
	searchTotal.WithLabelValues(label).Inc()
	searchExplored.Observe(float64(res.Explored))
	searchDuration.Observe(d.Seconds())
}
