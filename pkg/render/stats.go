package render

import "fmt"

// FrameStats counts frames and produces a title line at a fixed interval
type FrameStats struct {
	title       string
	interval    float64
	lastReport  float64
	frames      int
	fps         float64
	frameTimeMS float64
}

// NewFrameStats creates a counter whose report is prefixed by title
func NewFrameStats(title string, interval float64) *FrameStats {
	return &FrameStats{title: title, interval: interval}
}

// Tick records a frame at time now (seconds). When more than the interval
// has passed since the last report it returns a fresh title and true.
func (s *FrameStats) Tick(now float64) (string, bool) {
	elapsed := now - s.lastReport
	report := false

	if elapsed > s.interval {
		s.lastReport = now
		s.fps = float64(s.frames) / elapsed
		if s.fps > 0 {
			s.frameTimeMS = 1000.0 / s.fps
		}
		s.frames = 0
		report = true
	}

	s.frames++
	if !report {
		return "", false
	}
	return s.Title(), true
}

// FPS returns the frame rate measured at the last report
func (s *FrameStats) FPS() float64 {
	return s.fps
}

// Title formats the last report
func (s *FrameStats) Title() string {
	return fmt.Sprintf("%s    FPS: %.3f    Frame Time: %.3f (ms)", s.title, s.fps, s.frameTimeMS)
}
