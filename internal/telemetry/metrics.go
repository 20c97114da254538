package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skycast_predictions_total",
			Help: "Prediction requests issued, by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	optionsFetchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "skycast_options_fetches_total",
			Help: "Fetches of the selectable options set.",
		},
	)
)

func init() {
	prometheus.MustRegister(predictionsTotal, optionsFetchesTotal)
}

// CountPrediction records one prediction round trip.
func CountPrediction(kind string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	predictionsTotal.WithLabelValues(kind, outcome).Inc()
}

// CountOptionsFetch records one options fetch.
func CountOptionsFetch() {
	optionsFetchesTotal.Inc()
}

// StartMetricsServer starts a HTTP server exposing Prometheus metrics.
func StartMetricsServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
