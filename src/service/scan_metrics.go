package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gitlab.com/open-soft/go-scanner-bot/src/model"
)

type ScanMetrics struct {
	cyclesTotal   prometheus.Counter
	signalsTotal  prometheus.Counter
	buysTotal     prometheus.Counter
	skipsTotal    *prometheus.CounterVec
	cycleDuration prometheus.Histogram
}

func NewScanMetrics() *ScanMetrics {
	m := &ScanMetrics{
		cyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scanner_cycles_total",
			Help: "Scan cycles completed",
		}),
		signalsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scanner_signals_total",
			Help: "BUY signals fired",
		}),
		buysTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scanner_buys_total",
			Help: "Orders accepted by the broker",
		}),
		skipsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scanner_skips_total",
			Help: "Products skipped, split by reason",
		}, []string{"reason"}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scanner_cycle_duration_seconds",
			Help:    "Wall time of one scan cycle",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		}),
	}

	prometheus.MustRegister(m.cyclesTotal, m.signalsTotal, m.buysTotal, m.skipsTotal, m.cycleDuration)

	return m
}

func (m *ScanMetrics) ObserveCycle(result model.ScanCycleResult) {
	m.cyclesTotal.Inc()
	m.signalsTotal.Add(float64(result.Signals))
	m.buysTotal.Add(float64(result.Buys))
	m.cycleDuration.Observe(float64(result.Duration) / float64(time.Second))
}

func (m *ScanMetrics) ObserveSkip(reason string) {
	m.skipsTotal.WithLabelValues(reason).Inc()
}
