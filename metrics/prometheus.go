package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peerbid/marketplace/logging"
)

var (
	setupOnce sync.Once

	// operation counters per engine, partitioned by operation name
	opCounter *prometheus.CounterVec
	// rejected calls per engine, partitioned by error kind
	rejectCounter *prometheus.CounterVec
	// live bid gauge across all listings
	liveBidGauge prometheus.Gauge
)

func setup() {
	opCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "engine",
			Name:      "operations_total",
			Help:      "Number of completed engine operations",
		},
		[]string{"engine", "op"},
	)
	rejectCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "engine",
			Name:      "rejections_total",
			Help:      "Number of rejected engine calls by error kind",
		},
		[]string{"engine", "kind"},
	)
	liveBidGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "marketplace",
			Subsystem: "bids",
			Name:      "live",
			Help:      "Live bids across all listings",
		},
	)
	prometheus.MustRegister(opCounter, rejectCounter, liveBidGauge)
}

// OpInc counts one completed operation for an engine.
func OpInc(engine, op string) {
	setupOnce.Do(setup)
	opCounter.WithLabelValues(engine, op).Inc()
}

// RejectInc counts one rejected call for an engine.
func RejectInc(engine, kind string) {
	setupOnce.Do(setup)
	rejectCounter.WithLabelValues(engine, kind).Inc()
}

// LiveBidsAdd moves the live bid gauge.
func LiveBidsAdd(delta float64) {
	setupOnce.Do(setup)
	liveBidGauge.Add(delta)
}

// Start exposes the prometheus handler on the configured port.
func Start(log *logging.Logger, cfg Config) {
	setupOnce.Do(setup)
	if !cfg.Enabled {
		return
	}
	http.Handle(cfg.Path, promhttp.Handler())
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Error("metrics server exited", logging.Error(err))
		}
	}()
}
