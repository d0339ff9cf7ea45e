package obj

import (
	"math"
	"testing"

	"github.com/milk9111/neondash/common"
)

func TestPlayerResetPlacesOnGround(t *testing.T) {
	p := NewPlayer()
	p.Pos.Y = 50
	p.VelY = -3
	p.Rotation = 1.2
	p.OnGround = false

	p.Reset()

	if p.Pos.X != common.PlayerStartX {
		t.Fatalf("expected x=%d, got %g", common.PlayerStartX, p.Pos.X)
	}
	if p.Pos.Y != common.GroundY-p.Size {
		t.Fatalf("expected resting on ground line, got y=%g", p.Pos.Y)
	}
	if p.VelY != 0 || p.Rotation != 0 || !p.OnGround {
		t.Fatalf("expected zeroed velocity/rotation and grounded, got vel=%g rot=%g onGround=%v", p.VelY, p.Rotation, p.OnGround)
	}
}

func TestPlayerJumpOnlyWhenGrounded(t *testing.T) {
	cases := []struct {
		name       string
		onGround   bool
		wantVel    float64
		wantGround bool
	}{
		{"grounded", true, common.JumpImpulse, false},
		{"airborne", false, -3, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPlayer()
			p.OnGround = c.onGround
			if !c.onGround {
				p.Pos.Y = 100
				p.VelY = -3
			}

			p.Jump()

			if p.VelY != c.wantVel {
				t.Fatalf("expected velocity %g, got %g", c.wantVel, p.VelY)
			}
			if p.OnGround != c.wantGround {
				t.Fatalf("expected onGround=%v, got %v", c.wantGround, p.OnGround)
			}
		})
	}
}

func TestPlayerGravityAccumulation(t *testing.T) {
	p := NewPlayer()
	p.Pos.Y = 100 // high up so neither clamp triggers for a while
	p.OnGround = false
	v0 := -5.0
	p.VelY = v0

	for n := 1; n <= 5; n++ {
		p.Update()
		want := v0 + float64(n)*common.Gravity
		if math.Abs(p.VelY-want) > 1e-9 {
			t.Fatalf("after %d ticks expected velocity %g, got %g", n, want, p.VelY)
		}
	}
}

func TestPlayerLandingResetsRotation(t *testing.T) {
	p := NewPlayer()
	p.Jump()

	rotated := false
	for i := 0; i < 1000 && !p.OnGround; i++ {
		p.Update()
		if p.Rotation > 0 {
			rotated = true
		}
	}

	if !p.OnGround {
		t.Fatal("player never landed")
	}
	if !rotated {
		t.Fatal("rotation never accumulated while airborne")
	}
	if p.Rotation != 0 {
		t.Fatalf("expected rotation reset to 0 on landing, got %g", p.Rotation)
	}
	if p.Pos.Y != common.GroundY-p.Size {
		t.Fatalf("expected clamped to ground line, got y=%g", p.Pos.Y)
	}
}

func TestPlayerCeilingClamp(t *testing.T) {
	p := NewPlayer()
	p.Pos.Y = 2
	p.VelY = -20
	p.OnGround = false

	p.Update()

	if p.Pos.Y != 0 {
		t.Fatalf("expected clamped to ceiling, got y=%g", p.Pos.Y)
	}
	if p.VelY != 0 {
		t.Fatalf("expected zeroed velocity at ceiling, got %g", p.VelY)
	}
	if p.OnGround {
		t.Fatal("ceiling contact must not set onGround")
	}
}

func TestPlayerJumpArc(t *testing.T) {
	// full jump scenario: impulse, rising gravity ticks, then landing
	p := NewPlayer()
	p.Jump()

	if p.VelY != common.JumpImpulse {
		t.Fatalf("expected impulse %g, got %g", float64(common.JumpImpulse), p.VelY)
	}
	if p.OnGround {
		t.Fatal("expected airborne after jump")
	}

	prev := p.VelY
	for i := 0; i < 1000 && !p.OnGround; i++ {
		p.Update()
		if !p.OnGround && math.Abs(p.VelY-(prev+common.Gravity)) > 1e-9 {
			t.Fatalf("tick %d: expected velocity %g, got %g", i, prev+common.Gravity, p.VelY)
		}
		prev = p.VelY
	}

	if !p.OnGround {
		t.Fatal("player never returned to ground")
	}
	if p.Rotation != 0 {
		t.Fatalf("expected rotation 0 after landing, got %g", p.Rotation)
	}
}

func TestPlayerBoundsInset(t *testing.T) {
	p := NewPlayer()
	b := p.Bounds()

	if b.L != p.Pos.X+common.HitboxInset || b.B != p.Pos.Y+common.HitboxInset {
		t.Fatalf("expected inset top-left, got L=%g B=%g", b.L, b.B)
	}
	if b.R-b.L != p.Size-2*common.HitboxInset || b.T-b.B != p.Size-2*common.HitboxInset {
		t.Fatalf("expected inset size %g, got %gx%g", p.Size-2*common.HitboxInset, b.R-b.L, b.T-b.B)
	}
}
