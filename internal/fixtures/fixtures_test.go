package fixtures

import (
	"math"
	"strings"
	"testing"

	"github.com/osuushi/compass/construct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Unit(t *testing.T) {
	drawing, err := Load("unit")
	require.NoError(t, err)
	assert.Equal(t, construct.Circle{Center: construct.Pt(0, 0), Radius: 1}, drawing.Circle)
	assert.Empty(t, drawing.Polygon.Points)
}

func TestLoad_SkipsPoints(t *testing.T) {
	drawing, err := Load("offcenter")
	require.NoError(t, err)
	assert.Equal(t, construct.Pt(10, 12.5), drawing.Circle.Center)
	assert.Equal(t, 7.5, drawing.Circle.Radius)
}

// The reference polygon in the fixture should agree with the kernel
func TestLoad_Heptadecagon(t *testing.T) {
	drawing, err := Load("heptadecagon")
	require.NoError(t, err)
	require.Len(t, drawing.Polygon.Points, construct.HeptadecagonSides)

	computed := construct.Heptadecagon(drawing.Circle, 0)
	for i, p := range drawing.Polygon.Points {
		assert.True(t, p.ApproxEqual(computed.Points[i], 1e-9), "vertex %d: %v vs %v", i, p, computed.Points[i])
	}
	for _, angle := range drawing.Polygon.CentralAngles(drawing.Circle.Center) {
		assert.InDelta(t, 2*math.Pi/17, angle, 1e-9)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("nope")
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"no circle":       `<svg><rect width="1" height="1"/></svg>`,
		"no radius":       `<svg><circle cx="1" cy="1"/></svg>`,
		"zero radius":     `<svg><circle cx="1" cy="1" r="0"/></svg>`,
		"bad radius":      `<svg><circle r="big"/></svg>`,
		"bad point":       `<svg><circle r="1"/><polygon points="1,2 3"/></svg>`,
		"bad coordinates": `<svg><circle r="1"/><polygon points="1,2 x,4"/></svg>`,
	}
	for name, svg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(svg))
			assert.Error(t, err)
		})
	}
}

func TestParse_DefaultsCenter(t *testing.T) {
	drawing, err := Parse(strings.NewReader(`<svg><circle r="2"/></svg>`))
	require.NoError(t, err)
	assert.Equal(t, construct.Pt(0, 0), drawing.Circle.Center)
	assert.Equal(t, 2.0, drawing.Circle.Radius)
}
