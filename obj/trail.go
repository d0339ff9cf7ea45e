package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/neondash/common"
)

// TrailSample is one recorded position with remaining life in (0,1].
type TrailSample struct {
	Pos  cp.Vector
	Life float64
}

// Trail keeps a bounded FIFO of recent positions for motion-blur rendering.
type Trail struct {
	samples []TrailSample
	color   color.NRGBA
}

func NewTrail(clr color.NRGBA) *Trail {
	return &Trail{
		samples: make([]TrailSample, 0, common.TrailCap),
		color:   clr,
	}
}

// AddPoint appends a full-life sample, evicting the oldest once over capacity.
func (t *Trail) AddPoint(x, y float64) {
	t.samples = append(t.samples, TrailSample{Pos: cp.Vector{X: x, Y: y}, Life: 1.0})
	if len(t.samples) > common.TrailCap {
		t.samples = t.samples[1:]
	}
}

// Update decays every sample and drops the dead ones.
func (t *Trail) Update() {
	alive := t.samples[:0]
	for _, s := range t.samples {
		s.Life -= common.TrailDecay
		if s.Life > 0 {
			alive = append(alive, s)
		}
	}
	t.samples = alive
}

func (t *Trail) Reset() {
	t.samples = t.samples[:0]
}

func (t *Trail) Len() int {
	return len(t.samples)
}

// Samples exposes the live samples, oldest first.
func (t *Trail) Samples() []TrailSample {
	return t.samples
}

// Draw renders fading, shrinking squares. Older samples are both dimmer and
// smaller; the position factor keeps fresh samples from popping in at full
// opacity.
func (t *Trail) Draw(dst *ebiten.Image, offset cp.Vector) {
	n := len(t.samples)
	for i, s := range t.samples {
		fade := s.Life * float64(i+1) / float64(n)
		size := common.PlayerSize * 0.6 * s.Life
		clr := t.color
		clr.A = uint8(common.Clamp(fade*120, 0, 255))
		vector.FillRect(dst,
			float32(s.Pos.X-size/2+offset.X),
			float32(s.Pos.Y-size/2+offset.Y),
			float32(size), float32(size), clr, false)
	}
}
