package middleware

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	latencyBuckets = []float64{.25, .5, 1, 2.5, 5, 10}

	inFlightGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "in_flight_requests",
		Help: "A gauge of requests currently being served by the wrapped handler.",
	})
)

func init() {
	prometheus.MustRegister(inFlightGauge)
}

func must(v interface{}, err error) interface{} {
	if err != nil {
		panic(err.Error())
	}
	return v
}

func registerIgnoreExisting(c prometheus.Collector) (interface{}, error) {
	if err := prometheus.Register(c); err != nil {
		var are *prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			// already registered.
			switch (c).(type) {
			case *prometheus.CounterVec:
				return are.ExistingCollector.(*prometheus.CounterVec), nil
			case *prometheus.HistogramVec:
				return are.ExistingCollector.(*prometheus.HistogramVec), nil
			case prometheus.Gauge:
				return are.ExistingCollector.(prometheus.Gauge), nil
			default:
				return nil, errors.New("unknown type")
			}
		}
	}
	return c, nil
}

// InstrumentHandler instruments an http.Handler to capture metrics like the
// number of active requests, the total number of requests made and latency
// information
func InstrumentHandler(name string, h http.Handler) http.Handler {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "api_requests_total",
			Help:        "A counter for requests to the wrapped handler.",
			ConstLabels: prometheus.Labels{"handler": name},
		},
		[]string{"code", "method"},
	)
	// attempt to register, if already registered use the registered one
	counter = must(registerIgnoreExisting(counter)).(*prometheus.CounterVec)

	histVec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "api_request_duration_seconds",
			Help:        "A histogram of request latencies.",
			Buckets:     latencyBuckets,
			ConstLabels: prometheus.Labels{"handler": name},
		},
		[]string{},
	)
	// attempt to register, if already registered use the registered one
	histVec = must(registerIgnoreExisting(histVec)).(*prometheus.HistogramVec)

	return promhttp.InstrumentHandlerInFlight(inFlightGauge,
		promhttp.InstrumentHandlerCounter(counter,
			promhttp.InstrumentHandlerDuration(histVec, h),
		),
	)
}

// Metrics returns the prometheus scrape handler
func Metrics() http.Handler {
	return promhttp.Handler()
}
