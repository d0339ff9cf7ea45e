package obj

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestParticleDiesAfterExactTicks(t *testing.T) {
	p := NewParticleVel(cp.Vector{}, color.NRGBA{}, cp.Vector{})

	// life 1.0 decaying by 0.02 reaches zero on the 50th tick
	for i := 0; i < 49; i++ {
		p.Update()
		if p.Dead() {
			t.Fatalf("particle dead early at tick %d (life=%g)", i+1, p.Life)
		}
	}
	p.Update()
	if !p.Dead() {
		t.Fatalf("expected dead after 50 ticks, life=%g", p.Life)
	}
}

func TestParticleShrinksAndFalls(t *testing.T) {
	p := NewParticleVel(cp.Vector{X: 10, Y: 10}, color.NRGBA{}, cp.Vector{X: 1, Y: -2})
	size0 := p.Size
	vy0 := p.Vel.Y

	p.Update()

	if p.Pos.X != 11 || p.Pos.Y != 8 {
		t.Fatalf("expected position integrated to (11,8), got %v", p.Pos)
	}
	if p.Vel.Y <= vy0 {
		t.Fatalf("expected downward acceleration, vy %g -> %g", vy0, p.Vel.Y)
	}
	if p.Size >= size0 {
		t.Fatalf("expected multiplicative shrink, size %g -> %g", size0, p.Size)
	}
}

func TestParticleDefaultVelocityRange(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		p := NewParticle(cp.Vector{}, color.NRGBA{}, rng)
		if p.Vel.X < -5 || p.Vel.X > 5 || p.Vel.Y < -5 || p.Vel.Y > 5 {
			t.Fatalf("default velocity %v outside [-5,5]", p.Vel)
		}
	}
}
