package plot

import "time"

// animate.go - highlight animation planning.
//
// The selected pulsar's marker blinks at a rate derived from its spin
// period, scaled into a bounded presentation budget: a millisecond
// pulsar and an hour-long binary both yield a renderable frame count.

// AnimationConfig maps a spin period to frame parameters.
type AnimationConfig struct {
	FrameDuration time.Duration // per-frame display time
	MaxFrames     int           // upper bound on frames per cycle
}

// DefaultAnimation matches a 20 ms GIF frame budget.
var DefaultAnimation = AnimationConfig{
	FrameDuration: 20 * time.Millisecond,
	MaxFrames:     120,
}

// Animation is the planned highlight cycle: Alphas holds the marker
// opacity per frame, ramping 0..255 and back down.
type Animation struct {
	Frames        int           `json:"frames"`
	FrameDuration time.Duration `json:"frame_duration_ns"`
	Alphas        []uint8       `json:"alphas"`
}

// Plan derives the animation for a spin period in seconds. One quarter
// of the period is spread over the frame budget, clamped to
// [2, MaxFrames] so the cycle is never degenerate.
func (c AnimationConfig) Plan(periodSeconds float64) Animation {
	frames := 2
	if periodSeconds > 0 {
		frames = int(periodSeconds / c.FrameDuration.Seconds() / 4)
	}
	if frames < 2 {
		frames = 2
	}
	if frames > c.MaxFrames {
		frames = c.MaxFrames
	}

	alphas := alphaRamp(frames)
	return Animation{
		Frames:        len(alphas),
		FrameDuration: c.FrameDuration,
		Alphas:        alphas,
	}
}

// alphaRamp builds a rise-then-fall opacity sequence of length n.
func alphaRamp(n int) []uint8 {
	if n <= 2 {
		return []uint8{0, 255}
	}
	up := n/2 + 1
	alphas := make([]uint8, 0, n+up)
	for i := 0; i < up; i++ {
		alphas = append(alphas, uint8(255*i/(up-1)))
	}
	for i := up - 2; i >= 0; i-- {
		alphas = append(alphas, alphas[i])
	}
	return alphas
}
