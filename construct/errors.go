package construct

import "github.com/pkg/errors"

var (
	// An intersection a construction depended on does not exist. This is a
	// defect in the construction's inputs, not something to recover from.
	ErrNoIntersection = errors.New("no intersection")
	// A label was looked up that no earlier step produced.
	ErrUnknownLabel = errors.New("unknown label")
	// Radius, direction or vertex count that the kernel cannot work with.
	ErrDegenerateInput = errors.New("degenerate input")
)
