package obj

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/neondash/common"
)

// Particle is a short-lived decaying point spawned in bursts at death events.
type Particle struct {
	Pos   cp.Vector
	Vel   cp.Vector
	Life  float64 // (0,1], dead at <= 0
	Decay float64
	Size  float64
	Color color.NRGBA
}

// NewParticle creates a particle with a random velocity in [-5,5] per axis.
func NewParticle(pos cp.Vector, clr color.NRGBA, rng *rand.Rand) *Particle {
	vel := cp.Vector{
		X: (rng.Float64() - 0.5) * 10,
		Y: (rng.Float64() - 0.5) * 10,
	}
	return NewParticleVel(pos, clr, vel)
}

// NewParticleVel creates a particle with an explicit velocity.
func NewParticleVel(pos cp.Vector, clr color.NRGBA, vel cp.Vector) *Particle {
	return &Particle{
		Pos:   pos,
		Vel:   vel,
		Life:  1.0,
		Decay: common.ParticleDecay,
		Size:  6,
		Color: clr,
	}
}

// Update integrates position, pulls the particle down, and decays it.
func (p *Particle) Update() {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel.Y += common.ParticleGravity
	p.Life -= p.Decay
	p.Size *= common.ParticleShrink
}

func (p *Particle) Dead() bool {
	return p.Life <= 0
}

// Draw renders a glowing square faded by remaining life.
func (p *Particle) Draw(dst *ebiten.Image, offset cp.Vector) {
	if p.Dead() {
		return
	}
	x := float32(p.Pos.X - p.Size/2 + offset.X)
	y := float32(p.Pos.Y - p.Size/2 + offset.Y)
	s := float32(p.Size)

	glow := withAlpha(p.Color, p.Life*0.3)
	vector.FillRect(dst, x-s/2, y-s/2, s*2, s*2, glow, false)
	vector.FillRect(dst, x, y, s, s, withAlpha(p.Color, p.Life), false)
}
