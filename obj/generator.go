package obj

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/neondash/catalog"
	"github.com/milk9111/neondash/common"
)

// Generator owns the active obstacle window: it scrolls obstacles left, culls
// the ones fully offscreen, and keeps spawning ahead of the player with a
// randomized-but-bounded gap so back-to-back obstacles stay traversable.
type Generator struct {
	templates []catalog.Template
	active    []*Obstacle
	rng       *rand.Rand
}

func NewGenerator(templates []catalog.Template, rng *rand.Rand) *Generator {
	g := &Generator{templates: templates, rng: rng}
	g.Reset()
	return g
}

// SetTemplates swaps the catalog, e.g. after a hot reload. Already-spawned
// obstacles keep their copied template fields.
func (g *Generator) SetTemplates(templates []catalog.Template) {
	if len(templates) > 0 {
		g.templates = templates
	}
}

// Reset clears the active set.
func (g *Generator) Reset() {
	g.active = g.active[:0]
}

// Active exposes the live obstacles, oldest (leftmost spawn) first.
func (g *Generator) Active() []*Obstacle {
	return g.active
}

// Update scrolls every obstacle left by speed, culls the ones whose right
// edge has passed CullMargin beyond the left screen edge, and spawns one new
// obstacle whenever the set is empty or the most recent spawn has entered the
// visible width.
func (g *Generator) Update(speed float64) {
	alive := g.active[:0]
	for _, o := range g.active {
		o.Pos.X -= speed
		if o.Pos.X+o.Width > -common.CullMargin {
			alive = append(alive, o)
		}
	}
	g.active = alive

	if len(g.active) == 0 {
		g.spawn(common.BaseWidth + common.FirstSpawnOffset)
		return
	}
	if last := g.active[len(g.active)-1]; last.Pos.X < common.BaseWidth {
		gap := common.MinGap + g.rng.Float64()*(common.MaxGap-common.MinGap)
		g.spawn(last.Pos.X + gap)
	}
}

func (g *Generator) spawn(x float64) {
	if len(g.templates) == 0 {
		return
	}
	tmpl := g.templates[g.rng.Intn(len(g.templates))]

	var y float64
	if tmpl.Ground {
		y = common.GroundY - tmpl.Height
	} else {
		y = common.AirMinY + g.rng.Float64()*(common.AirMaxY-common.AirMinY)
	}

	g.active = append(g.active, &Obstacle{
		Pos:      cp.Vector{X: x, Y: y},
		Width:    tmpl.Width,
		Height:   tmpl.Height,
		Template: tmpl,
	})
}

// CheckCollision reports whether the player's inset bounds overlap any active
// obstacle. The answer is existential; callers never learn which obstacle hit.
func (g *Generator) CheckCollision(p *Player) bool {
	pb := p.Bounds()
	for _, o := range g.active {
		if Overlaps(pb, o.Bounds()) {
			return true
		}
	}
	return false
}

// Draw renders every obstacle within an extended margin of the screen.
func (g *Generator) Draw(dst *ebiten.Image, offset cp.Vector) {
	for _, o := range g.active {
		if o.Pos.X+o.Width < -common.DrawMargin || o.Pos.X > common.BaseWidth+common.DrawMargin {
			continue
		}
		o.Draw(dst, offset)
	}
}
