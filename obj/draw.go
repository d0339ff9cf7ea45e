package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteImg is the 1x1 source image used to rasterize filled paths through
// DrawTriangles.
var whiteImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(1, 1)
		whiteImg.Fill(color.White)
	}
	return whiteImg
}

// fillPolygon fills the polygon described by points (x,y pairs) with clr.
func fillPolygon(dst *ebiten.Image, points []float32, clr color.NRGBA) {
	if len(points) < 6 {
		return
	}

	path := vector.Path{}
	path.MoveTo(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		path.LineTo(points[i], points[i+1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

// withAlpha scales a color's alpha by t in [0,1].
func withAlpha(clr color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	clr.A = uint8(float64(clr.A) * t)
	return clr
}
