// Package metrics exposes the league's Prometheus instruments.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "flagleague"

// Recorder is what services report to. Nop discards everything.
type Recorder interface {
	ScoreEventRecorded(eventType string)
	ScoreRecomputed()
	StandingsComputed(scope string, elapsed time.Duration)
}

type Prometheus struct {
	scoreEvents       *prometheus.CounterVec
	recomputations    prometheus.Counter
	standingsDuration *prometheus.HistogramVec
}

// NewPrometheus creates the instruments and registers them with reg.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		scoreEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_events_total",
			Help:      "Scoring plays recorded by match officials.",
		}, []string{"event_type"}),
		recomputations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_recomputations_total",
			Help:      "Match score rebuilds from the event log.",
		}),
		standingsDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "standings_duration_seconds",
			Help:      "Time spent computing standings tables.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"scope"}),
	}

	for _, c := range []prometheus.Collector{p.scoreEvents, p.recomputations, p.standingsDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) ScoreEventRecorded(eventType string) {
	p.scoreEvents.WithLabelValues(eventType).Inc()
}

func (p *Prometheus) ScoreRecomputed() {
	p.recomputations.Inc()
}

func (p *Prometheus) StandingsComputed(scope string, elapsed time.Duration) {
	p.standingsDuration.WithLabelValues(scope).Observe(elapsed.Seconds())
}

type Nop struct{}

func (Nop) ScoreEventRecorded(string) {}
func (Nop) ScoreRecomputed() {}
func (Nop) StandingsComputed(string, time.Duration) {}
