package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	InitMetrics()
	// 重复调用不会panic（promauto重复注册会panic）
	InitMetrics()

	require.NotNil(t, HTTPRequestsTotal)
	require.NotNil(t, HTTPRequestDuration)
	require.NotNil(t, HTTPRequestsInProgress)
	require.NotNil(t, OrdersPlacedTotal)
	require.NotNil(t, RatingsSavedTotal)
	require.NotNil(t, MailsSentTotal)
}

func TestCounter(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(OrdersPlacedTotal)
	IncCounter(OrdersPlacedTotal)
	IncCounter(OrdersPlacedTotal)
	AddCounter(OrderItemsTotal, 3)

	assert.Equal(t, before+2, testutil.ToFloat64(OrdersPlacedTotal))
	assert.GreaterOrEqual(t, testutil.ToFloat64(OrderItemsTotal), float64(3))
}

func TestCounterVec(t *testing.T) {
	InitMetrics()

	saved := RatingsSavedTotal.WithLabelValues("saved")
	unchanged := RatingsSavedTotal.WithLabelValues("unchanged")
	beforeSaved := testutil.ToFloat64(saved)
	beforeUnchanged := testutil.ToFloat64(unchanged)

	IncCounterVec(RatingsSavedTotal, map[string]string{"result": "saved"})
	IncCounterVec(RatingsSavedTotal, map[string]string{"result": "saved"})
	IncCounterVec(RatingsSavedTotal, map[string]string{"result": "unchanged"})

	assert.Equal(t, beforeSaved+2, testutil.ToFloat64(saved))
	assert.Equal(t, beforeUnchanged+1, testutil.ToFloat64(unchanged))
}

func TestGauge(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsInProgress))
	DecGauge(HTTPRequestsInProgress)

	SetGaugeVec(CircuitBreakerState, map[string]string{"name": "mailer"}, 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mailer")))
}

func TestHistogram(t *testing.T) {
	InitMetrics()

	ObserveHistogram(CheckoutDuration, 0.05)
	ObserveHistogramVec(HTTPRequestDuration, map[string]string{"method": "GET", "path": "/api/v1/books"}, 0.002)

	assert.Equal(t, 1, testutil.CollectAndCount(CheckoutDuration))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), 1)
}

func TestResult(t *testing.T) {
	assert.Equal(t, "success", Result(nil))
	assert.Equal(t, "failure", Result(errors.New("boom")))
}

func TestHelpers_NilSafe(t *testing.T) {
	// 未初始化的指标不会导致panic
	assert.NotPanics(t, func() {
		IncCounter(nil)
		IncCounterVec(nil, nil)
		IncGauge(nil)
		DecGauge(nil)
		ObserveHistogram(nil, 1)
	})
}
