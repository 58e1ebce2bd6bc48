package metrics

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hearth_http_requests_total",
		Help: "Total number of HTTP requests processed.",
	}, []string{"method", "route", "status"})

	HabitLogUpserts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hearth_habit_log_upserts_total",
		Help: "Total number of habit log create-or-update operations.",
	})

	RemindersSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hearth_reminders_sent_total",
		Help: "Total number of reminder notifications handed to the notifier.",
	}, []string{"kind"})
)

// Middleware records one counter sample per completed request, labeled by
// the route pattern rather than the raw path.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}
		httpRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		return err
	}
}

// Handler exposes the prometheus registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
