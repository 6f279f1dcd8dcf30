package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func TestSensorReadings_Empty(t *testing.T) {
	assert.True(t, SensorReadings{}.Empty())
	assert.False(t, SensorReadings{TDS: f(0)}.Empty(), "zero is a measurement, not absence")
}

func TestExperimentPatch_Apply(t *testing.T) {
	t.Run("overwrites only present fields", func(t *testing.T) {
		e := &Experiment{PH: f(6.5), TDS: f(100), Turbidity: f(3.1), Summary: s("old")}

		p := NewPatch(SensorReadings{PH: f(7.2), TDS: f(350)})
		p.Summary = s("new")
		p.Apply(e)

		assert.Equal(t, 7.2, *e.PH)
		assert.Equal(t, 350.0, *e.TDS)
		assert.Equal(t, 3.1, *e.Turbidity)
		assert.Equal(t, "new", *e.Summary)
		assert.Nil(t, e.Solution)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		e := &Experiment{PH: f(6.5)}
		ExperimentPatch{}.Apply(e)
		assert.Equal(t, 6.5, *e.PH)
		assert.Nil(t, e.TDS)
	})
}
