// internal/metrics/metrics_test.go
package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCartOperationsCounter(t *testing.T) {
	require.Equal(t, float64(0), testutil.ToFloat64(CartOperations.WithLabelValues("delta", "test")))

	CartOperations.WithLabelValues("delta", "test").Inc()

	require.Equal(t, float64(1), testutil.ToFloat64(CartOperations.WithLabelValues("delta", "test")))
}

func TestOrdersSubmittedCounter(t *testing.T) {
	require.Equal(t, float64(0), testutil.ToFloat64(OrdersSubmitted.WithLabelValues("test_status")))
	OrdersSubmitted.WithLabelValues("test_status").Inc()
	require.Equal(t, float64(1), testutil.ToFloat64(OrdersSubmitted.WithLabelValues("test_status")))
}

func TestOrderSubmitTimeHistogram(t *testing.T) {
	require.Equal(t, 0, testutil.CollectAndCount(OrderSubmitTime))

	OrderSubmitTime.WithLabelValues("notify").Observe(0.123)

	require.Equal(t, 1, testutil.CollectAndCount(OrderSubmitTime))
}

func TestNotificationsSentCounter(t *testing.T) {
	require.Equal(t, float64(0), testutil.ToFloat64(NotificationsSent.WithLabelValues("test_ok")))
	NotificationsSent.WithLabelValues("test_ok").Inc()
	require.Equal(t, float64(1), testutil.ToFloat64(NotificationsSent.WithLabelValues("test_ok")))
}

func TestSessionOperationsCounter(t *testing.T) {
	require.Equal(t, float64(0), testutil.ToFloat64(SessionOperations.WithLabelValues("get", "testArea")))
	SessionOperations.WithLabelValues("get", "testArea").Inc()
	require.Equal(t, float64(1), testutil.ToFloat64(SessionOperations.WithLabelValues("get", "testArea")))
}

func TestHTTPRequestsCounter(t *testing.T) {
	require.Equal(t, float64(0), testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/test", "200")))
	HTTPRequests.WithLabelValues("GET", "/api/test", "200").Inc()
	require.Equal(t, float64(1), testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/test", "200")))
}

func TestHTTPResponseTimeHistogram(t *testing.T) {
	require.Equal(t, 0, testutil.CollectAndCount(HTTPResponseTime))

	HTTPResponseTime.WithLabelValues("POST", "/api/test").Observe(0.456)

	require.Equal(t, 1, testutil.CollectAndCount(HTTPResponseTime))
}
