package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/neondash/catalog"
)

// Obstacle is one spawned instance of a catalog template. Template fields are
// copied at spawn time; only X mutates afterwards as the world scrolls.
type Obstacle struct {
	Pos      cp.Vector // top-left corner
	Width    float64
	Height   float64
	Template catalog.Template
}

// Bounds returns the full collision box. Obstacles get no inset; only the
// player's box is forgiving.
func (o *Obstacle) Bounds() cp.BB {
	return NewBB(o.Pos.X, o.Pos.Y, o.Width, o.Height)
}

// Draw dispatches to the template kind's silhouette routine.
func (o *Obstacle) Draw(dst *ebiten.Image, offset cp.Vector) {
	draw, ok := drawFuncs[o.Template.Kind]
	if !ok {
		draw = drawCube
	}

	x := float32(o.Pos.X + offset.X)
	y := float32(o.Pos.Y + offset.Y)
	w := float32(o.Width)
	h := float32(o.Height)
	clr := o.Template.RGBA()

	if o.Template.Glow {
		vector.FillRect(dst, x-4, y-4, w+8, h+8, withAlpha(clr, 0.15), false)
	}
	draw(dst, o, x, y, w, h)
}

type drawFunc func(dst *ebiten.Image, o *Obstacle, x, y, w, h float32)

// drawFuncs maps each template kind to its silhouette. Extending the catalog
// means adding a kind here and an entry in catalog.yaml.
var drawFuncs = map[catalog.Kind]drawFunc{
	catalog.KindSpike:       drawSpike,
	catalog.KindCube:        drawCube,
	catalog.KindCubeOutline: drawCubeOutline,
	catalog.KindOrb:         drawOrb,
	catalog.KindRobot:       drawRobot,
	catalog.KindShip:        drawShip,
	catalog.KindBall:        drawBall,
	catalog.KindWave:        drawWave,
	catalog.KindSpider:      drawSpider,
	catalog.KindSwing:       drawSwing,
	catalog.KindUFO:         drawUFO,
	catalog.KindStarSmall:   drawStar,
	catalog.KindStarBig:     drawStar,
}

func drawSpike(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	fillPolygon(dst, []float32{x, y + h, x + w/2, y, x + w, y + h}, clr)
	vector.StrokeLine(dst, x, y+h, x+w/2, y, 2, withAlpha(clr, 0.6), false)
	vector.StrokeLine(dst, x+w/2, y, x+w, y+h, 2, withAlpha(clr, 0.6), false)
}

func drawCube(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	vector.FillRect(dst, x, y, w, h, clr, false)
	vector.StrokeRect(dst, x, y, w, h, 2, withAlpha(clr, 0.5), false)
}

func drawCubeOutline(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	vector.StrokeRect(dst, x, y, w, h, 3, clr, false)
	vector.StrokeRect(dst, x+6, y+6, w-12, h-12, 1, withAlpha(clr, 0.5), false)
}

func drawOrb(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	cx, cy, r := x+w/2, y+h/2, w/2
	vector.FillCircle(dst, cx, cy, r*0.6, withAlpha(clr, 0.8), false)
	vector.StrokeCircle(dst, cx, cy, r, 2, clr, false)
}

func drawRobot(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	// head, torso, legs
	vector.FillRect(dst, x+w*0.25, y, w*0.5, h*0.25, clr, false)
	vector.FillRect(dst, x+w*0.15, y+h*0.3, w*0.7, h*0.4, clr, false)
	vector.StrokeLine(dst, x+w*0.3, y+h*0.7, x+w*0.2, y+h, 3, clr, false)
	vector.StrokeLine(dst, x+w*0.7, y+h*0.7, x+w*0.8, y+h, 3, clr, false)
	// eye
	vector.FillRect(dst, x+w*0.35, y+h*0.08, w*0.3, h*0.08, withAlpha(clr, 0.4), false)
}

func drawShip(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	// hull: pointed nose on the left, flat stern on the right
	fillPolygon(dst, []float32{x, y + h/2, x + w*0.4, y, x + w, y + h*0.25, x + w, y + h*0.75, x + w*0.4, y + h}, clr)
	vector.FillCircle(dst, x+w*0.45, y+h/2, h*0.22, withAlpha(clr, 0.4), false)
}

func drawBall(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	cx, cy, r := x+w/2, y+h/2, w/2
	vector.FillCircle(dst, cx, cy, r, clr, false)
	vector.StrokeLine(dst, cx-r, cy, cx+r, cy, 2, withAlpha(clr, 0.5), false)
	vector.StrokeLine(dst, cx, cy-r, cx, cy+r, 2, withAlpha(clr, 0.5), false)
}

func drawWave(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	// zigzag arrow
	vector.StrokeLine(dst, x, y+h, x+w*0.33, y, 3, clr, false)
	vector.StrokeLine(dst, x+w*0.33, y, x+w*0.66, y+h, 3, clr, false)
	vector.StrokeLine(dst, x+w*0.66, y+h, x+w, y, 3, clr, false)
}

func drawSpider(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	cx := x + w/2
	vector.FillCircle(dst, cx, y+h*0.4, w*0.25, clr, false)
	// four legs per side
	for i := 0; i < 4; i++ {
		span := w * (0.25 + 0.15*float32(i))
		vector.StrokeLine(dst, cx, y+h*0.4, cx-span/2, y+h, 2, clr, false)
		vector.StrokeLine(dst, cx, y+h*0.4, cx+span/2, y+h, 2, clr, false)
	}
}

func drawSwing(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	// two orbs joined by a bar, like a dumbbell
	vector.StrokeLine(dst, x+w/2, y+h*0.15, x+w/2, y+h*0.85, 3, clr, false)
	vector.StrokeCircle(dst, x+w/2, y+h*0.15, w*0.3, 2, clr, false)
	vector.StrokeCircle(dst, x+w/2, y+h*0.85, w*0.3, 2, clr, false)
}

func drawUFO(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	// dome over a wide saucer band
	vector.FillCircle(dst, x+w/2, y+h*0.4, h*0.35, withAlpha(clr, 0.6), false)
	vector.FillRect(dst, x, y+h*0.45, w, h*0.3, clr, false)
	vector.FillRect(dst, x+w*0.15, y+h*0.75, w*0.7, h*0.12, withAlpha(clr, 0.5), false)
}

func drawStar(dst *ebiten.Image, o *Obstacle, x, y, w, h float32) {
	clr := o.Template.RGBA()
	cx := float64(x) + float64(w)/2
	cy := float64(y) + float64(h)/2
	outer := float64(w) / 2
	inner := outer * 0.45

	pts := make([]float32, 0, 20)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)))
	}
	fillPolygon(dst, pts, clr)
}
