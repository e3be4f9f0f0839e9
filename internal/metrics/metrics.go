// Package metrics holds the prometheus collectors for the practice
// engine. Collectors are registered against an injected registerer so
// tests and multiple engines never collide on the default registry.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sprout"

// Collectors groups every engine metric. A nil *Collectors is valid and
// records nothing.
type Collectors struct {
	Generated   *prometheus.CounterVec
	Exhausted   *prometheus.CounterVec
	Evicted     *prometheus.CounterVec
	Saturation  *prometheus.GaugeVec
	Answers     *prometheus.CounterVec
	LevelShifts *prometheus.CounterVec
	HistorySize prometheus.Gauge
}

// New creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		Generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "problems",
			Name:      "generated_total",
			Help:      "Problems generated by family and difficulty",
		}, []string{"family", "difficulty"}),
		Exhausted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "problems",
			Name:      "exhausted_total",
			Help:      "Generation requests that found every signature excluded",
		}, []string{"family", "difficulty"}),
		Evicted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "evicted_total",
			Help:      "History entries evicted by family and difficulty",
		}, []string{"family", "difficulty"}),
		Saturation: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "saturation_ratio",
			Help:      "Seen fraction of a family/difficulty signature space at the last check",
		}, []string{"family", "difficulty"}),
		Answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "difficulty",
			Name:      "answers_total",
			Help:      "Recorded answers by family and correctness",
		}, []string{"family", "correct"}),
		LevelShifts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "difficulty",
			Name:      "level_changes_total",
			Help:      "Difficulty level changes by family and direction",
		}, []string{"family", "direction"}),
		HistorySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "entries",
			Help:      "Signatures currently held in history",
		}),
	}
	if reg != nil {
		reg.MustRegister(c.Generated, c.Exhausted, c.Evicted, c.Saturation,
			c.Answers, c.LevelShifts, c.HistorySize)
	}
	return c
}

func labels(family string, difficulty int) []string {
	return []string{family, strconv.Itoa(difficulty)}
}

// ObserveGenerated counts a successful generation.
func (c *Collectors) ObserveGenerated(family string, difficulty int) {
	if c == nil {
		return
	}
	c.Generated.WithLabelValues(labels(family, difficulty)...).Inc()
}

// ObserveExhausted counts a generation that returned nothing.
func (c *Collectors) ObserveExhausted(family string, difficulty int) {
	if c == nil {
		return
	}
	c.Exhausted.WithLabelValues(labels(family, difficulty)...).Inc()
}

// ObserveSaturation records the saturation seen by an eviction check and
// how many entries it removed.
func (c *Collectors) ObserveSaturation(family string, difficulty int, ratio float64, evicted int) {
	if c == nil {
		return
	}
	c.Saturation.WithLabelValues(labels(family, difficulty)...).Set(ratio)
	if evicted > 0 {
		c.Evicted.WithLabelValues(labels(family, difficulty)...).Add(float64(evicted))
	}
}

// ObserveAnswer counts a recorded answer.
func (c *Collectors) ObserveAnswer(family string, correct bool) {
	if c == nil {
		return
	}
	c.Answers.WithLabelValues(family, strconv.FormatBool(correct)).Inc()
}

// ObserveLevelChange counts a difficulty transition; direction is "up" or
// "down".
func (c *Collectors) ObserveLevelChange(family, direction string) {
	if c == nil {
		return
	}
	c.LevelShifts.WithLabelValues(family, direction).Inc()
}

// SetHistorySize records the current history length.
func (c *Collectors) SetHistorySize(n int) {
	if c == nil {
		return
	}
	c.HistorySize.Set(float64(n))
}
