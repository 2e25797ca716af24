package construct

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	c := Circle{Pt(0, 0), 3}
	ctx, err := Richmond(c)
	require.NoError(t, err)
	poly := Heptadecagon(c, 0)

	opts := DefaultDrawOptions
	dc := Draw(ctx, []Polygon{poly}, opts)
	// At least the given circle fits, and the compass circles about A and F
	// reach further
	assert.Greater(t, dc.Width(), int(opts.Scale*6)+2*drawPadding)
	assert.GreaterOrEqual(t, dc.Height(), int(opts.Scale*6)+2*drawPadding)

	// The center point is drawn in gold
	x, y := dc.TransformPoint(0, 0)
	r, g, b, _ := dc.Image().At(int(x), int(y)).RGBA()
	assert.Greater(t, r, uint32(0xc000))
	assert.Greater(t, g, uint32(0xa000))
	assert.Less(t, b, uint32(0x4000))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "construction.png")
	ctx := Context{}.WithPoint("O", Pt(0, 0), "")
	require.NoError(t, SavePNG(path, ctx, nil, DefaultDrawOptions))
	assert.FileExists(t, path)
}

func TestClipLine(t *testing.T) {
	b := bounds{-1, -1, 1, 1}
	seg, ok := clipLine(LineFrom(Pt(0, 0), Pt(1, 0)), b)
	require.True(t, ok)
	assert.InDelta(t, -1, seg.Start.X, Tolerance)
	assert.InDelta(t, 1, seg.End.X, Tolerance)

	_, ok = clipLine(LineFrom(Pt(0, 0), Pt(0, 0)), b)
	assert.False(t, ok)
}

func TestWriteSVG_RoundTrip(t *testing.T) {
	c := Circle{Pt(1, 2), 3}
	ctx, err := Richmond(c)
	require.NoError(t, err)
	poly := Heptadecagon(c, 0)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, ctx, []Polygon{poly}, DefaultDrawOptions))

	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)

	polygons := root.FindAll("polygon")
	require.Len(t, polygons, 1)
	var points []Point
	for _, pair := range strings.Fields(polygons[0].Attributes["points"]) {
		xy := strings.Split(pair, ",")
		require.Len(t, xy, 2)
		x, err := strconv.ParseFloat(xy[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(xy[1], 64)
		require.NoError(t, err)
		points = append(points, Pt(x, y))
	}
	require.Len(t, points, HeptadecagonSides)
	assertRegular(t, c, Polygon{points}, 1e-9)

	var given *svgparser.Element
	for _, el := range root.FindAll("circle") {
		if el.Attributes["id"] == "Γ" {
			given = el
		}
	}
	require.NotNil(t, given)
	assert.Equal(t, "3", given.Attributes["r"])
	assert.Equal(t, "1", given.Attributes["cx"])
}
