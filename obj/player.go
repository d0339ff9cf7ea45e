package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/neondash/common"
)

// Player is the single player-controlled square. It never moves horizontally;
// the world scrolls past it instead.
type Player struct {
	Pos      cp.Vector // top-left corner
	Size     float64
	VelY     float64
	OnGround bool
	Rotation float64 // radians, accumulates while airborne

	Trail *Trail
	color color.NRGBA
}

func NewPlayer() *Player {
	c := colornames.Cyan
	clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	p := &Player{
		Size:  common.PlayerSize,
		Trail: NewTrail(clr),
		color: clr,
	}
	p.Reset()
	return p
}

// Reset places the player at the start offset, resting on the ground line.
func (p *Player) Reset() {
	p.Pos = cp.Vector{X: common.PlayerStartX, Y: common.GroundY - p.Size}
	p.VelY = 0
	p.Rotation = 0
	p.OnGround = true
	p.Trail.Reset()
}

// Jump launches the player if grounded. Calling it mid-air is a no-op, which
// also makes it safe to re-fire every tick while the jump input is held.
func (p *Player) Jump() {
	if !p.OnGround {
		return
	}
	p.VelY = common.JumpImpulse
	p.OnGround = false
}

// Update advances one tick of vertical physics and trail bookkeeping.
func (p *Player) Update() {
	p.VelY += common.Gravity
	p.Pos.Y += p.VelY

	if p.Pos.Y+p.Size >= common.GroundY {
		p.Pos.Y = common.GroundY - p.Size
		p.VelY = 0
		p.OnGround = true
		p.Rotation = 0
	}
	if p.Pos.Y <= 0 {
		p.Pos.Y = 0
		p.VelY = 0
	}

	if !p.OnGround {
		p.Rotation += common.RotationStep
	}

	cx, cy := p.Center()
	p.Trail.AddPoint(cx, cy)
	p.Trail.Update()
}

// Center returns the center of the drawn square.
func (p *Player) Center() (float64, float64) {
	return p.Pos.X + p.Size/2, p.Pos.Y + p.Size/2
}

// Bounds returns the collision box, inset from the drawn square so grazing an
// obstacle's edge doesn't kill the run.
func (p *Player) Bounds() cp.BB {
	inset := float64(common.HitboxInset)
	return NewBB(p.Pos.X+inset, p.Pos.Y+inset, p.Size-2*inset, p.Size-2*inset)
}

// Draw renders the trail and the (possibly rotated) square.
func (p *Player) Draw(dst *ebiten.Image, offset cp.Vector) {
	p.Trail.Draw(dst, offset)

	cx, cy := p.Center()
	cx += offset.X
	cy += offset.Y
	half := p.Size / 2
	sin, cos := math.Sincos(p.Rotation)

	// rotate the four corners about the center
	corners := [4][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}}
	pts := make([]float32, 0, 8)
	for _, c := range corners {
		x := cx + c[0]*cos - c[1]*sin
		y := cy + c[0]*sin + c[1]*cos
		pts = append(pts, float32(x), float32(y))
	}

	// soft glow behind the square
	glow := p.color
	glow.A = 48
	gpts := make([]float32, 0, 8)
	for _, c := range corners {
		x := cx + c[0]*1.3*cos - c[1]*1.3*sin
		y := cy + c[0]*1.3*sin + c[1]*1.3*cos
		gpts = append(gpts, float32(x), float32(y))
	}
	fillPolygon(dst, gpts, glow)
	fillPolygon(dst, pts, p.color)
}
