package telemetry

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the scraper's prometheus counters. A nil *Metrics is
// valid and makes every increment a no-op.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	pages    *prometheus.CounterVec
	logins   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "userscraper_http_requests_total",
			Help: "HTTP requests issued against the backend, by endpoint path.",
		}, []string{"endpoint"}),
		pages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "userscraper_graphql_pages_total",
			Help: "GraphQL edge pages fetched, by edge key.",
		}, []string{"edge"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "userscraper_login_attempts_total",
			Help: "Login attempts, by result (ok, two_factor, failed).",
		}, []string{"result"}),
	}
	reg.MustRegister(m.requests, m.pages, m.logins)
	return m
}

func (m *Metrics) Request(endpoint string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) Page(edge string) {
	if m == nil {
		return
	}
	m.pages.WithLabelValues(edge).Inc()
}

func (m *Metrics) Login(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

// Serve exposes /healthz and /metrics for the duration of a scrape. It
// blocks, so callers run it in a goroutine.
func (m *Metrics) Serve(port int, logger *log.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.GET("/healthz", func(c echo.Context) error { return c.String(200, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})))
	addr := fmt.Sprintf(":%d", port)
	logger.Printf("metrics listening on %s", addr)
	return e.Start(addr)
}
