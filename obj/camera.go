package obj

import (
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/neondash/common"
)

// Camera holds a decaying shake magnitude. The shake only perturbs rendering;
// simulation never reads the offset.
type Camera struct {
	Shake float64

	rng *rand.Rand
}

func NewCamera(rng *rand.Rand) *Camera {
	return &Camera{rng: rng}
}

// Update decays the shake geometrically, snapping to zero once it drops below
// a visible magnitude so the camera actually comes to rest.
func (c *Camera) Update() {
	if c.Shake <= 0 {
		return
	}
	c.Shake *= common.ShakeDecay
	if c.Shake < 0.01 {
		c.Shake = 0
	}
}

// AddShake raises the shake to at least intensity. Taking the max instead of
// adding keeps repeated triggers from stacking without bound.
func (c *Camera) AddShake(intensity float64) {
	if intensity > c.Shake {
		c.Shake = intensity
	}
}

// ShakeOffset returns a fresh random render offset, each axis uniform in
// [-shake/2, shake/2].
func (c *Camera) ShakeOffset() cp.Vector {
	if c.Shake <= 0 {
		return cp.Vector{}
	}
	return cp.Vector{
		X: (c.rng.Float64() - 0.5) * c.Shake,
		Y: (c.rng.Float64() - 0.5) * c.Shake,
	}
}

// Reset clears any remaining shake.
func (c *Camera) Reset() {
	c.Shake = 0
}
