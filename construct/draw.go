package construct

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"golang.org/x/image/font/basicfont"
)

// Static previews of a construction. The real animation happens elsewhere;
// this is for checking a construction by eye.

const drawPadding = 40

type DrawOptions struct {
	// Pixels per unit
	Scale float64
	// Draw point labels next to each point
	Labels bool
	// Draw circles and lines, not just points and polygons
	Scaffolding bool
}

var DefaultDrawOptions = DrawOptions{Scale: 80, Labels: true, Scaffolding: true}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func emptyBounds() bounds {
	return bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

func (b *bounds) add(p Point) {
	b.minX = math.Min(b.minX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxX = math.Max(b.maxX, p.X)
	b.maxY = math.Max(b.maxY, p.Y)
}

func (b bounds) empty() bool {
	return b.minX > b.maxX
}

func drawingBounds(ctx Context, polygons []Polygon) bounds {
	b := emptyBounds()
	for _, r := range ctx.records {
		switch r.Kind {
		case KindPoint:
			b.add(r.Point)
		case KindCircle:
			b.add(r.Circle.Center.Sub(Pt(r.Circle.Radius, r.Circle.Radius)))
			b.add(r.Circle.Center.Add(Pt(r.Circle.Radius, r.Circle.Radius)))
		}
	}
	for _, poly := range polygons {
		for _, p := range poly.Points {
			b.add(p)
		}
	}
	if b.empty() {
		b = bounds{-1, -1, 1, 1}
	}
	return b
}

// Draw the context and any polygons onto a new image. Points are drawn on top
// of everything else.
func Draw(ctx Context, polygons []Polygon, opts DrawOptions) *gg.Context {
	b := drawingBounds(ctx, polygons)
	width := int(opts.Scale*(b.maxX-b.minX)) + drawPadding*2
	height := int(opts.Scale*(b.maxY-b.minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-b.minX, -b.minY)

	// Line widths and point sizes are in pixels regardless of the transform
	if opts.Scaffolding {
		c.SetLineWidth(1.5)
		for _, r := range ctx.records {
			switch r.Kind {
			case KindCircle:
				c.SetRGBA(0.3, 0.8, 0.8, 0.8)
				c.DrawCircle(r.Circle.Center.X, r.Circle.Center.Y, r.Circle.Radius)
				c.Stroke()
			case KindLine:
				seg, ok := clipLine(r.Line, b)
				if !ok {
					continue
				}
				c.SetRGBA(0.4, 0.4, 1, 0.8)
				c.DrawLine(seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
				c.Stroke()
			}
		}
	}

	c.SetLineWidth(3)
	for _, poly := range polygons {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0.7, 0.2, 0.4, 0.3)
		c.FillPreserve()
		c.SetRGB(1, 0.4, 0.6)
		c.Stroke()
	}

	c.SetFontFace(basicfont.Face7x13)
	for _, r := range ctx.Points() {
		c.SetRGB(1, 0.85, 0)
		c.DrawPoint(r.Point.X, r.Point.Y, 4)
		c.Fill()
		if opts.Labels {
			drawLabel(c, r.Label, r.Point)
		}
	}
	return c
}

// Text has to be drawn in device space or it comes out upside down.
func drawLabel(c *gg.Context, label string, p Point) {
	x, y := c.TransformPoint(p.X, p.Y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(label, x+6, y-6, 0, 0)
	c.Pop()
}

// The part of an infinite line that crosses the drawing, with a margin.
func clipLine(l Line, b bounds) (Segment, bool) {
	length := l.Direction.Length()
	if length == 0 {
		return Segment{}, false
	}
	corners := []Point{
		{b.minX, b.minY}, {b.maxX, b.minY}, {b.minX, b.maxY}, {b.maxX, b.maxY},
	}
	minT, maxT := math.Inf(1), math.Inf(-1)
	for _, corner := range corners {
		t := corner.Sub(l.Point).Dot(l.Direction) / (length * length)
		minT = math.Min(minT, t)
		maxT = math.Max(maxT, t)
	}
	return Segment{l.At(minT), l.At(maxT)}, true
}

func SavePNG(path string, ctx Context, polygons []Polygon, opts DrawOptions) error {
	return Draw(ctx, polygons, opts).SavePNG(path)
}

// Print a PNG inline in the terminal. Only iTerm-compatible terminals will
// show anything useful.
func ShowPNG(path string, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}
	return imgcat.CatFile(path, w)
}
