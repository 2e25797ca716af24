package netgraph

import (
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const drawPadding = 60

// Render the diagram. Connections are drawn first so they sit underneath the
// nodes.
func (g *Graph) Draw(scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, layer := range g.Layers {
		for _, node := range layer.Nodes {
			minX = math.Min(minX, node.Center.X-node.Radius)
			minY = math.Min(minY, node.Center.Y-node.Radius)
			maxX = math.Max(maxX, node.Center.X+node.Radius)
			maxY = math.Max(maxY, node.Center.Y+node.Radius)
		}
		maxY = math.Max(maxY, layer.LabelAnchor.Y)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	c.SetRGB(0.5, 0.5, 0.5)
	for _, conn := range g.Connections {
		c.DrawLine(conn.Start.X, conn.Start.Y, conn.End.X, conn.End.Y)
		c.Stroke()
	}

	c.SetLineWidth(2)
	c.SetFontFace(basicfont.Face7x13)
	for _, layer := range g.Layers {
		for _, node := range layer.Nodes {
			c.DrawCircle(node.Center.X, node.Center.Y, node.Radius)
			c.SetRGB(0, 0, 0)
			c.FillPreserve()
			c.SetRGB(1, 1, 1)
			c.Stroke()
		}

		x, y := c.TransformPoint(layer.LabelAnchor.X, layer.LabelAnchor.Y)
		c.Push()
		c.Identity()
		lines := strings.Split(layer.Label, "\n")
		lineHeight := c.FontHeight() * 1.4
		for i := range lines {
			// Bottom line sits on the anchor
			line := lines[len(lines)-1-i]
			c.DrawStringAnchored(line, x, y-float64(i)*lineHeight, 0.5, 0)
		}
		c.Pop()
	}
	return c
}
