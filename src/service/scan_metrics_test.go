package service

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
)

func TestScanMetricsObserve(t *testing.T) {
	assertion := assert.New(t)

	metrics := NewScanMetrics()

	metrics.ObserveCycle(model.ScanCycleResult{
		BarBoundary: 99900,
		Products:    3,
		Signals:     2,
		Buys:        1,
		Duration:    time.Second,
	})
	metrics.ObserveCycle(model.ScanCycleResult{BarBoundary: 100800, Products: 3})

	assertion.Equal(2.00, testutil.ToFloat64(metrics.cyclesTotal))
	assertion.Equal(2.00, testutil.ToFloat64(metrics.signalsTotal))
	assertion.Equal(1.00, testutil.ToFloat64(metrics.buysTotal))

	metrics.ObserveSkip("buy_lock")
	metrics.ObserveSkip("buy_lock")
	metrics.ObserveSkip("sizing_rejected")

	assertion.Equal(2.00, testutil.ToFloat64(metrics.skipsTotal.WithLabelValues("buy_lock")))
	assertion.Equal(1.00, testutil.ToFloat64(metrics.skipsTotal.WithLabelValues("sizing_rejected")))
}
