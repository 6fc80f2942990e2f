package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the storefront's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "techmart",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "techmart",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "techmart",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	cartAdditions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "techmart",
			Subsystem: "cart",
			Name:      "items_added_total",
			Help:      "Units added to carts.",
		},
	)

	checkouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "techmart",
			Subsystem: "checkout",
			Name:      "attempts_total",
			Help:      "Checkout attempts by result.",
		},
		[]string{"result"},
	)

	revenue = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "techmart",
			Subsystem: "checkout",
			Name:      "revenue_total",
			Help:      "Sum of placed order totals.",
		},
	)

	ordersCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "techmart",
			Subsystem: "orders",
			Name:      "cancelled_total",
			Help:      "Orders cancelled by shoppers or admins.",
		},
	)

	liveFeedClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "techmart",
			Subsystem: "live_feed",
			Name:      "clients",
			Help:      "Connected websocket clients.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		cartAdditions,
		checkouts,
		revenue,
		ordersCancelled,
		liveFeedClients,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry on a Fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}

// Middleware records request counts and latency keyed by the matched route
// pattern, so ids in paths do not explode the label set.
func Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ctx.Path() == "/metrics" {
			return ctx.Next()
		}

		httpInFlight.Inc()
		start := time.Now()
		err := ctx.Next()
		httpInFlight.Dec()

		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		route := ctx.Route().Path
		method := ctx.Method()
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}

func RecordCartAddition(qty int) {
	cartAdditions.Add(float64(qty))
}

// RecordCheckout counts a checkout attempt. result is "success", "empty_cart",
// "insufficient_stock" or "error".
func RecordCheckout(result string, total float64) {
	checkouts.WithLabelValues(result).Inc()
	if result == "success" {
		revenue.Add(total)
	}
}

func RecordCancellation() {
	ordersCancelled.Inc()
}

func SetLiveFeedClients(n int) {
	liveFeedClients.Set(float64(n))
}
