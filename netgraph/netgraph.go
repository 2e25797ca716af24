// Layout for a feed-forward neural network diagram: a column of node circles
// per layer, and a line from every node to every node in the next layer.
package netgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osuushi/compass/construct"
	"github.com/pkg/errors"
)

var ErrTooFewLayers = errors.New("at least two layers are required (input and output)")

// The layer sizes drawn when none are given
var DefaultLayerSizes = []int{3, 2, 4, 1}

type Options struct {
	NodeRadius float64
	// Vertical space between neighboring nodes in a layer
	NodeGap float64
	// Horizontal distance between layer centers
	LayerSpacing float64
	// Space between the top node of a layer and its label
	LabelGap float64
}

var DefaultOptions = Options{
	NodeRadius:   0.3,
	NodeGap:      0.6,
	LayerSpacing: 2,
	LabelGap:     0.25,
}

type Layer struct {
	Nodes []construct.Circle
	Label string
	// Bottom center of the label
	LabelAnchor construct.Point
}

type Connection struct {
	construct.Segment
	// Layer of the start node, and indexes of the two nodes within their layers
	Layer    int
	From, To int
}

type Graph struct {
	Layers      []Layer
	Connections []Connection
}

// Lay out a network. Layers are centered on x = 0 and each layer is centered
// on y = 0, with nodes ordered top to bottom.
func Layout(sizes []int, opts Options) (*Graph, error) {
	if len(sizes) < 2 {
		return nil, ErrTooFewLayers
	}
	for i, size := range sizes {
		if size < 1 {
			return nil, errors.Errorf("layer %d has %d nodes", i+1, size)
		}
	}

	graph := &Graph{Layers: make([]Layer, len(sizes))}
	pitch := 2*opts.NodeRadius + opts.NodeGap
	for i, size := range sizes {
		x := (float64(i) - float64(len(sizes))/2 + 0.5) * opts.LayerSpacing
		top := float64(size-1) / 2 * pitch
		layer := Layer{
			Nodes:       make([]construct.Circle, size),
			Label:       fmt.Sprintf("Layer %d\n(%d nodes)", i+1, size),
			LabelAnchor: construct.Pt(x, top+opts.NodeRadius+opts.LabelGap),
		}
		for j := range layer.Nodes {
			layer.Nodes[j] = construct.Circle{
				Center: construct.Pt(x, top-float64(j)*pitch),
				Radius: opts.NodeRadius,
			}
		}
		graph.Layers[i] = layer
	}

	for i := 0; i < len(graph.Layers)-1; i++ {
		for from, a := range graph.Layers[i].Nodes {
			for to, b := range graph.Layers[i+1].Nodes {
				graph.Connections = append(graph.Connections, Connection{
					Segment: construct.Segment{Start: a.Center, End: b.Center},
					Layer:   i,
					From:    from,
					To:      to,
				})
			}
		}
	}
	return graph, nil
}

// Parse whitespace separated layer sizes, like "3 4 2 1".
func ParseLayerSizes(s string) ([]int, error) {
	fields := strings.Fields(s)
	sizes := make([]int, 0, len(fields))
	for _, field := range fields {
		size, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid layer size %q", field)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) < 2 {
		return nil, ErrTooFewLayers
	}
	return sizes, nil
}

func (g *Graph) NodeCount() int {
	count := 0
	for _, layer := range g.Layers {
		count += len(layer.Nodes)
	}
	return count
}
