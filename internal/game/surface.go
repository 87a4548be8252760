package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heart-particles/internal/particle"
)

// haloStrength is the opacity of the glow relative to the particle itself.
const haloStrength = 0.4

// canvasSurface fills particle shapes onto an ebiten image.
type canvasSurface struct {
	dst      *ebiten.Image
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newCanvasSurface() *canvasSurface {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &canvasSurface{
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (c *canvasSurface) FillShape(shape particle.Shape, st particle.Stamp) {
	if c.dst == nil || st.Size <= 0 || st.Alpha <= 0 {
		return
	}
	// A canvas shadow blur spreads a fixed radius around the shape; a larger,
	// fainter copy behind it stands in for that.
	if st.Glow > 0 {
		grow := (st.Size + st.Glow) / st.Size
		c.fill(shape, st, grow, st.Alpha*haloStrength*st.Size/(st.Size+st.Glow))
	}
	c.fill(shape, st, 1, st.Alpha)
}

func (c *canvasSurface) fill(shape particle.Shape, st particle.Stamp, grow, alpha float64) {
	pt := func(local particle.Point) (float32, float32) {
		p := st.Transform(local.Scale(grow))
		return float32(p.X), float32(p.Y)
	}

	var path vector.Path
	path.MoveTo(pt(shape.Start))
	for _, cv := range shape.Curves {
		x1, y1 := pt(cv.C1)
		x2, y2 := pt(cv.C2)
		x, y := pt(cv.End)
		path.CubicTo(x1, y1, x2, y2, x, y)
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	r := float32(st.Color.R) / 0xff
	g := float32(st.Color.G) / 0xff
	b := float32(st.Color.B) / 0xff
	a := float32(clamp01(alpha))
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = r
		v.ColorG = g
		v.ColorB = b
		v.ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	c.dst.DrawTriangles(c.vertices, c.indices, c.white, op)
}
