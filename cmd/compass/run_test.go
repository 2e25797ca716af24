package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/compass/internal/config"
	"github.com/osuushi/compass/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeptadecagon_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output.PNG = filepath.Join(dir, "h.png")
	cfg.Output.SVG = filepath.Join(dir, "h.svg")

	require.NoError(t, runHeptadecagon(cfg, true))
	assert.FileExists(t, cfg.Output.PNG)

	f, err := os.Open(cfg.Output.SVG)
	require.NoError(t, err)
	defer f.Close()
	drawing, err := fixtures.Parse(f)
	require.NoError(t, err)
	assert.Equal(t, 3.0, drawing.Circle.Radius)
	assert.Len(t, drawing.Polygon.Points, 17)
}

func TestRunPolygon(t *testing.T) {
	cfg := config.Default()
	cfg.Output.SVG = filepath.Join(t.TempDir(), "p.svg")
	require.NoError(t, runPolygon(cfg, 5, 0))
	assert.FileExists(t, cfg.Output.SVG)

	assert.Error(t, runPolygon(cfg, 2, 0))
}

func TestRunNetgraph(t *testing.T) {
	cfg := config.Default()
	cfg.Output.PNG = filepath.Join(t.TempDir(), "nn.png")
	require.NoError(t, runNetgraph(cfg, "3 4 2 1"))
	assert.FileExists(t, cfg.Output.PNG)

	assert.Error(t, runNetgraph(cfg, "3"))
}
