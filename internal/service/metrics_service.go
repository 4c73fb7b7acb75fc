package service

import (
	"net/http"
	"strconv"
	"time"

	"go_5_box_vocab/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService は Prometheus の計測をまとめます。nil でも安全に呼べます
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	answers         *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	conflicts       prometheus.Counter
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
}

func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	answers := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "leitner_answers_total",
		Help: "Graded answers by result",
	}, []string{"result"})

	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "leitner_box_transitions_total",
		Help: "Box transitions applied by grading",
	}, []string{"from", "to"})

	conflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "leitner_grading_conflicts_total",
		Help: "Version conflicts detected while persisting a grade",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stats_cache_hits_total",
		Help: "Stats cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stats_cache_misses_total",
		Help: "Stats cache misses",
	})

	registry.MustRegister(
		requestDuration, requestTotal, answers, transitions, conflicts, cacheHits, cacheMisses,
		collectors.NewGoCollector(),
	)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		answers:         answers,
		transitions:     transitions,
		conflicts:       conflicts,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
	}
}

// Handler は /metrics 用のハンドラ
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordAnswer は採点結果とボックスの遷移を記録します
func (m *MetricsService) RecordAnswer(correct bool, from, to model.Box) {
	if m == nil {
		return
	}
	result := "wrong"
	if correct {
		result = "correct"
	}
	m.answers.WithLabelValues(result).Inc()
	m.transitions.WithLabelValues(strconv.Itoa(int(from)), strconv.Itoa(int(to))).Inc()
}

func (m *MetricsService) RecordConflict() {
	if m == nil {
		return
	}
	m.conflicts.Inc()
}

func (m *MetricsService) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}
