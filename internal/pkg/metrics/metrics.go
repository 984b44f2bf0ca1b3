package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "viva",
		Name:      "generation_total",
		Help:      "Interviewer replies produced, by where the text came from.",
	}, []string{"source"})

	transcriptionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "viva",
		Name:      "transcription_total",
		Help:      "Transcription attempts, by outcome.",
	}, []string{"outcome"})

	turnTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "viva",
		Name:      "turn_total",
		Help:      "User turns processed, by input mode.",
	}, []string{"mode"})

	completionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "viva",
		Name:      "completion_total",
		Help:      "Surveys moved to Completed, by trigger.",
	}, []string{"trigger"})

	turnDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "viva",
		Name:      "turn_duration_seconds",
		Help:      "Time to process one user turn, generation included.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})
)

func ObserveGeneration(source string) {
	generationTotal.WithLabelValues(source).Inc()
}

// ObserveTranscription takes "ok" or a speech error kind.
func ObserveTranscription(outcome string) {
	transcriptionTotal.WithLabelValues(outcome).Inc()
}

func ObserveTurn(mode string, seconds float64) {
	turnTotal.WithLabelValues(mode).Inc()
	turnDuration.Observe(seconds)
}

func ObserveCompletion(trigger string) {
	completionTotal.WithLabelValues(trigger).Inc()
}
