package construct

import (
	"fmt"
	"io"
	"strings"
)

// Write the construction as a plain SVG document. The y axis is flipped with a
// group transform so coordinates appear exactly as constructed, which keeps
// the file easy to read back in.
func WriteSVG(w io.Writer, ctx Context, polygons []Polygon, opts DrawOptions) error {
	b := drawingBounds(ctx, polygons)
	pad := float64(drawPadding) / opts.Scale
	width := b.maxX - b.minX + 2*pad
	height := b.maxY - b.minY + 2*pad

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="%g %g %g %g">`+"\n",
		width*opts.Scale, height*opts.Scale, b.minX-pad, -(b.maxY + pad), width, height)
	fmt.Fprintf(&sb, `<g transform="scale(1,-1)" fill="none" stroke-width="%g">`+"\n", 1.5/opts.Scale)

	if opts.Scaffolding {
		for _, r := range ctx.records {
			switch r.Kind {
			case KindCircle:
				fmt.Fprintf(&sb, `<circle id=%q cx="%g" cy="%g" r="%g" stroke="teal"/>`+"\n",
					r.Label, r.Circle.Center.X, r.Circle.Center.Y, r.Circle.Radius)
			case KindLine:
				if seg, ok := clipLine(r.Line, b); ok {
					fmt.Fprintf(&sb, `<line id=%q x1="%g" y1="%g" x2="%g" y2="%g" stroke="slateblue"/>`+"\n",
						r.Label, seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
				}
			}
		}
	}

	for i, poly := range polygons {
		points := make([]string, len(poly.Points))
		for j, p := range poly.Points {
			points[j] = fmt.Sprintf("%g,%g", p.X, p.Y)
		}
		fmt.Fprintf(&sb, `<polygon id="polygon%d" points="%s" stroke="hotpink" fill="hotpink" fill-opacity="0.2"/>`+"\n",
			i, strings.Join(points, " "))
	}

	for _, r := range ctx.Points() {
		fmt.Fprintf(&sb, `<circle class="point" id=%q cx="%g" cy="%g" r="%g" fill="gold"/>`+"\n",
			r.Label, r.Point.X, r.Point.Y, 4/opts.Scale)
	}

	sb.WriteString("</g>\n</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
