// Package metrics defines the Prometheus metrics of the service. Collectors are created eagerly so
// recording works whether or not they have been registered.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Clone results.
const (
	CloneOK          = "ok"
	CloneUnsupported = "unsupported"
	CloneMalformed   = "malformed"
	CloneFailed      = "failed"
)

// Ticket cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of processed HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	ClonesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ticket_clones_total",
		Help: "Total number of ticket clone attempts by ticket type and result",
	}, []string{"ticket_type", "result"})

	CloneRows = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ticket_clone_rows",
		Help:    "Number of seed rows produced per cloned ticket",
		Buckets: prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"ticket_type"})

	TicketCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ticket_cache_lookups_total",
		Help: "Ticket cache lookups by result",
	}, []string{"result"})
)

// Register registers all collectors on reg, or on the default registerer if reg is nil. Collectors
// which are already registered are ignored.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	collectors := []prometheus.Collector{HTTPRequestsTotal, HTTPRequestDuration, ClonesTotal, CloneRows, TicketCacheLookups}
	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			var alreadyRegistered prometheus.AlreadyRegisteredError
			if !errors.As(err, &alreadyRegistered) {
				return err
			}
		}
	}
	return nil
}

// Gin instruments requests with the route they matched rather than the raw path, keeping the label
// cardinality bounded.
func Gin() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// RecordClone records the result of cloning a ticket of the given type. rows is only observed for
// successful clones.
func RecordClone(ticketType, result string, rows int) {
	ClonesTotal.WithLabelValues(ticketType, result).Inc()
	if result == CloneOK {
		CloneRows.WithLabelValues(ticketType).Observe(float64(rows))
	}
}

func RecordCacheLookup(result string) {
	TicketCacheLookups.WithLabelValues(result).Inc()
}
