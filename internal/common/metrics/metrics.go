package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "planner_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	renderTotal   *prometheus.CounterVec
	renderLatency *prometheus.HistogramVec

	uploadsTotal    prometheus.Counter
	placementsTotal prometheus.Counter
)

// Init регистрирует метрики в глобальном реестре; повторные вызовы безопасны.
func Init() {
	registerOnce.Do(func() {
		renderTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "render_total",
				Help: "Total wall renders by result",
			},
			[]string{"result"},
		)
		renderLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "render_latency_seconds",
				Help:    "Wall render latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		uploadsTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "uploads_total",
				Help: "Total wall image uploads",
			},
		)
		placementsTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "placements_total",
				Help: "Total furniture placements added",
			},
		)

		prometheus.MustRegister(renderTotal, renderLatency, uploadsTotal, placementsTotal)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRender учитывает рендер одной стены.
func ObserveRender(result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if renderTotal != nil {
		renderTotal.WithLabelValues(result).Inc()
	}
	if renderLatency != nil {
		renderLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

func IncUpload() {
	if uploadsTotal != nil {
		uploadsTotal.Inc()
	}
}

func IncPlacement() {
	if placementsTotal != nil {
		placementsTotal.Inc()
	}
}
