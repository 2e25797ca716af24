package fixtures

import (
	"embed"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/compass/construct"
	"github.com/pkg/errors"
)

// This reads the base circle of a construction, and optionally a reference
// polygon, out of an SVG file. This is not a full (or even correct) svg
// parser. It takes the first <circle> that isn't marked as a point and the
// first <polygon>, and ignores transforms entirely.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type Drawing struct {
	Circle construct.Circle
	// Zero value when the file has no polygon
	Polygon construct.Polygon
}

func Load(name string) (*Drawing, error) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, errors.Wrapf(err, "could not load fixture %q", name)
	}
	defer fixture.Close()
	return parse(fixture, true)
}

// Parse an arbitrary SVG document. Unlike fixtures, element validation is
// skipped, since files from drawing programs carry all sorts of extras.
func Parse(r io.Reader) (*Drawing, error) {
	return parse(r, false)
}

func parse(r io.Reader, validate bool) (*Drawing, error) {
	root, err := svgparser.Parse(r, validate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse svg")
	}

	var circleEl *svgparser.Element
	for _, el := range root.FindAll("circle") {
		if el.Attributes["class"] != "point" {
			circleEl = el
			break
		}
	}
	if circleEl == nil {
		return nil, errors.New("no circle found")
	}

	drawing := &Drawing{}
	var values [3]float64
	for i, attr := range []string{"cx", "cy", "r"} {
		values[i], err = parseAttribute(circleEl, attr)
		if err != nil {
			return nil, err
		}
	}
	drawing.Circle = construct.Circle{Center: construct.Pt(values[0], values[1]), Radius: values[2]}
	if !drawing.Circle.Valid() {
		return nil, errors.Errorf("circle radius must be positive, got %v", values[2])
	}

	if polygons := root.FindAll("polygon"); len(polygons) > 0 {
		drawing.Polygon, err = parsePoints(polygons[0].Attributes["points"])
		if err != nil {
			return nil, err
		}
	}
	return drawing, nil
}

// A missing cx or cy means zero, as in SVG itself. A missing r does not.
func parseAttribute(el *svgparser.Element, name string) (float64, error) {
	s, ok := el.Attributes[name]
	if !ok {
		if name == "r" {
			return 0, errors.New("circle has no radius")
		}
		return 0, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s value %q", name, s)
	}
	return value, nil
}

func parsePoints(pointString string) (construct.Polygon, error) {
	var poly construct.Polygon
	for _, pointString := range strings.Fields(pointString) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			return poly, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			return poly, errors.Wrapf(err, "invalid x value %q", pointStrings[0])
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			return poly, errors.Wrapf(err, "invalid y value %q", pointStrings[1])
		}
		poly.Points = append(poly.Points, construct.Pt(x, y))
	}
	return poly, nil
}
