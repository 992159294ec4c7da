package observability

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	AIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Total number of AI requests by provider and operation",
		},
		[]string{"provider", "operation"},
	)
	AIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "AI request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider", "operation"},
	)
	AITokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_tokens_total",
			Help: "Total tokens exchanged with AI providers",
		},
		[]string{"provider", "direction"},
	)

	AssessmentsEnqueuedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_enqueued_total",
			Help: "Total number of assessment tasks enqueued",
		},
		[]string{"stage"},
	)
	AssessmentsProcessing = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "assessments_processing",
			Help: "Number of assessment tasks currently processing",
		},
		[]string{"stage"},
	)
	AssessmentsCompletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_completed_total",
			Help: "Total number of assessment tasks completed",
		},
		[]string{"stage"},
	)
	AssessmentsFailedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_failed_total",
			Help: "Total number of assessment tasks failed",
		},
		[]string{"stage"},
	)

	// Assessment outcome distributions
	ScreeningScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assessment_screening_score",
			Help:    "Distribution of pre-interview screening scores ([0,1])",
			Buckets: []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)
	InterviewScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assessment_interview_score",
			Help:    "Distribution of weighted post-interview scores ([0,1])",
			Buckets: []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)
)

func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(AIRequestsTotal)
	prometheus.MustRegister(AIRequestDuration)
	prometheus.MustRegister(AITokensTotal)
	prometheus.MustRegister(AssessmentsEnqueuedTotal)
	prometheus.MustRegister(AssessmentsProcessing)
	prometheus.MustRegister(AssessmentsCompletedTotal)
	prometheus.MustRegister(AssessmentsFailedTotal)
	prometheus.MustRegister(ScreeningScoreHistogram)
	prometheus.MustRegister(InterviewScoreHistogram)
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		// Route pattern may be unavailable outside chi router; guard nil
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			route = r.URL.Path
		}
		method := r.Method
		status := ww.Status()
		HTTPRequestsTotal.WithLabelValues(route, method, http.StatusText(status)).Inc()
		HTTPRequestDuration.WithLabelValues(route, method).Observe(dur)
	})
}

func EnqueueAssessment(stage string) {
	AssessmentsEnqueuedTotal.WithLabelValues(stage).Inc()
}

func StartAssessment(stage string) {
	AssessmentsProcessing.WithLabelValues(stage).Inc()
}

func CompleteAssessment(stage string) {
	AssessmentsProcessing.WithLabelValues(stage).Dec()
	AssessmentsCompletedTotal.WithLabelValues(stage).Inc()
}

func FailAssessment(stage string) {
	AssessmentsProcessing.WithLabelValues(stage).Dec()
	AssessmentsFailedTotal.WithLabelValues(stage).Inc()
}

// ObserveScreeningScore records the score from a completed pre-interview pass.
func ObserveScreeningScore(score float64) {
	if score >= 0 && score <= 1 {
		ScreeningScoreHistogram.Observe(score)
	}
}

// ObserveInterviewScore records the weighted score from a completed
// post-interview pass.
func ObserveInterviewScore(score float64) {
	if score >= 0 && score <= 1 {
		InterviewScoreHistogram.Observe(score)
	}
}
