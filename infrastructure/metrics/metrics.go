package metrics

import (
	"strconv"
	"time"

	"creator-dashboard/domain/model"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creator_dashboard_http_requests_total",
		Help: "HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "creator_dashboard_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	CatalogFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creator_dashboard_catalog_fetches_total",
		Help: "Upstream catalog fetches by outcome",
	}, []string{"outcome"}) // outcome=success|error

	CatalogCacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creator_dashboard_catalog_cache_lookups_total",
		Help: "Trending cache lookups by result",
	}, []string{"result"}) // result=hit|miss|error

	FetchCyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creator_dashboard_fetch_cycles_total",
		Help: "Completed trending fetch cycles by outcome",
	}, []string{"outcome"}) // outcome=success|error|superseded

	FetchCyclesInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "creator_dashboard_fetch_cycles_in_flight",
		Help: "Fetch cycles currently loading",
	})

	ScriptRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creator_dashboard_script_requests_total",
		Help: "Generate-script calls by response status",
	}, []string{"status"})
)

// ObserveFetchCycle records one fetch-cycle transition.
func ObserveFetchCycle(evt model.FetchCycleEvent) {
	switch evt.State {
	case model.CycleLoading:
		FetchCyclesInFlight.Inc()
	case model.CycleSuccess, model.CycleError:
		FetchCyclesInFlight.Dec()
		FetchCyclesTotal.WithLabelValues(string(evt.State)).Inc()
	case model.CycleIdle:
		// a superseded cycle ends without an outcome
		if evt.Outcome == "" {
			FetchCyclesInFlight.Dec()
			FetchCyclesTotal.WithLabelValues("superseded").Inc()
		}
	}
}

// RecordCatalogFetch counts one upstream call.
func RecordCatalogFetch(err error) {
	if err != nil {
		CatalogFetchesTotal.WithLabelValues("error").Inc()
		return
	}
	CatalogFetchesTotal.WithLabelValues("success").Inc()
}

func RecordCacheLookup(result string) {
	CatalogCacheLookupsTotal.WithLabelValues(result).Inc()
}

func RecordScriptRequest(status int) {
	ScriptRequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

// GinMiddleware records request count and latency per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
