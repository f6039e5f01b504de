package metrics

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/constrisk/pkg/domain/types"
)

const namespace = "constrisk"

// Recorder collects prediction and contact metrics on its own registry
type Recorder struct {
	registry    *prometheus.Registry
	predictions *prometheus.CounterVec
	scores      prometheus.Histogram
	rejections  *prometheus.CounterVec
	contacts    prometheus.Counter
}

// New creates a Recorder with Go runtime and process collectors attached
func New() (*Recorder, error) {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Number of risk predictions served, by risk level.",
		}, []string{"risk_level"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_score",
			Help:      "Distribution of raw risk scores.",
			Buckets:   prometheus.LinearBuckets(0, 20, 11),
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_rejections_total",
			Help:      "Number of prediction requests rejected by validation, by field.",
		}, []string{"field"}),
		contacts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Number of accepted contact form submissions.",
		}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.predictions,
		r.scores,
		r.rejections,
		r.contacts,
	} {
		if err := r.registry.Register(c); err != nil {
			return nil, goerr.Wrap(err, "failed to register collector")
		}
	}

	// Expose every risk level from the first scrape.
	for _, level := range types.AllRiskLevels() {
		r.predictions.WithLabelValues(level.String())
	}

	return r, nil
}

// ObservePrediction records one served prediction
func (r *Recorder) ObservePrediction(level types.RiskLevel, score float64) {
	if r == nil {
		return
	}
	r.predictions.WithLabelValues(level.String()).Inc()
	r.scores.Observe(score)
}

// ObserveRejection records one prediction request rejected because of field
func (r *Recorder) ObserveRejection(field string) {
	if r == nil {
		return
	}
	if field == "" {
		field = "unknown"
	}
	r.rejections.WithLabelValues(field).Inc()
}

// ObserveContact records one accepted contact message
func (r *Recorder) ObserveContact() {
	if r == nil {
		return
	}
	r.contacts.Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the underlying registry, mainly for tests
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}
