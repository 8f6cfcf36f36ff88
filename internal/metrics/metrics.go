// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CartOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total cart state transitions",
		},
		[]string{"operation", "result"}, // operation: delta, remove, favorite; result: success, noop
	)

	OrdersSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Total order submission attempts",
		},
		[]string{"status"}, // success, validation_error, notify_error
	)

	OrderSubmitTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_submit_seconds",
			Help:    "Time spent submitting orders",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"step"}, // validate, revalidate, notify
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total Telegram notification deliveries",
		},
		[]string{"status"}, // success, error
	)

	SessionOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_operations_total",
			Help: "Total session store operations",
		},
		[]string{"type", "area"}, // type: get, set, clear; area: cartPrices, productDetails, all
	)

	DBOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_operations_total",
			Help: "Total database operations",
		},
		[]string{"operation", "status"}, // operation: save, get, delete, search; status: success, error
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_time_seconds",
			Help:    "HTTP response time",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "path"},
	)
)

func InitMetrics() {
	// Метрики автоматически регистрируются при импорте пакета
}
