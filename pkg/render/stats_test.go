package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameStats_ReportsAfterInterval(t *testing.T) {
	s := NewFrameStats("Viewer", 0.25)

	// first tick only counts
	_, ok := s.Tick(0.0)
	assert.False(t, ok)

	for i := 1; i < 10; i++ {
		_, ok = s.Tick(float64(i) * 0.025)
		assert.False(t, ok, "tick %d", i)
	}

	title, ok := s.Tick(0.5)
	assert.True(t, ok)
	assert.InDelta(t, 20.0, s.FPS(), 1e-9)
	assert.Equal(t, "Viewer    FPS: 20.000    Frame Time: 50.000 (ms)", title)
}

func TestFrameStats_CountsFromReport(t *testing.T) {
	s := NewFrameStats("T", 0.25)
	s.Tick(1.0) // report with zero frames
	s.Tick(1.1)
	s.Tick(1.2)

	_, ok := s.Tick(1.5)
	assert.True(t, ok)
	assert.InDelta(t, 3/0.5, s.FPS(), 1e-9)
}
