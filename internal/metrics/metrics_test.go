package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectors_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveGenerated("counting", 1)
	c.ObserveGenerated("counting", 1)
	c.ObserveExhausted("addition", 2)
	c.ObserveSaturation("counting", 1, 1.0, 2)
	c.ObserveSaturation("counting", 1, 0.6, 0)
	c.ObserveAnswer("counting", true)
	c.ObserveLevelChange("counting", "up")
	c.SetHistorySize(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Generated.WithLabelValues("counting", "1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Exhausted.WithLabelValues("addition", "2")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Evicted.WithLabelValues("counting", "1")))
	assert.Equal(t, 0.6, testutil.ToFloat64(c.Saturation.WithLabelValues("counting", "1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Answers.WithLabelValues("counting", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.LevelShifts.WithLabelValues("counting", "up")))
	assert.Equal(t, 7.0, testutil.ToFloat64(c.HistorySize))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestCollectors_NilIsNoop(t *testing.T) {
	var c *Collectors
	assert.NotPanics(t, func() {
		c.ObserveGenerated("counting", 1)
		c.ObserveSaturation("counting", 1, 1, 3)
		c.ObserveAnswer("counting", false)
		c.SetHistorySize(1)
	})
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
		New(nil)
	})
}
