package construct

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/compass/dbg"
)

type Kind int

const (
	KindPoint Kind = iota
	KindCircle
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// One named result of a construction step. Only the field matching Kind is
// meaningful.
type Record struct {
	Label  string
	Kind   Kind
	Point  Point
	Circle Circle
	Line   Line
	Note   string
}

// A Context is the set of everything constructed so far, by label, along with
// the order it was constructed in. Contexts are never modified: every With
// method returns a new Context and leaves the receiver as it was, so a step is
// just a function from one context to the next.
//
// The zero value is an empty context.
type Context struct {
	records []Record
	index   map[string]int
}

type Step func(Context) Context

// Apply steps in order.
func Run(ctx Context, steps ...Step) Context {
	for _, step := range steps {
		ctx = step(ctx)
	}
	return ctx
}

func (ctx Context) with(r Record) Context {
	if r.Label == "" {
		r.Label = anonymousLabel(r)
	}
	index := make(map[string]int, len(ctx.index)+1)
	for label, i := range ctx.index {
		index[label] = i
	}
	// Full slice expression so appending never writes into a sibling context's
	// backing array.
	records := append(ctx.records[:len(ctx.records):len(ctx.records)], r)
	index[r.Label] = len(records) - 1
	return Context{records: records, index: index}
}

func anonymousLabel(r Record) string {
	switch r.Kind {
	case KindCircle:
		return dbg.Name(r.Circle)
	case KindLine:
		return dbg.Name(r.Line)
	}
	return dbg.Name(r.Point)
}

// Relabelling an existing label shadows the earlier record for lookups, but the
// earlier record stays in Records.
func (ctx Context) WithPoint(label string, p Point, note string) Context {
	return ctx.with(Record{Label: label, Kind: KindPoint, Point: p, Note: note})
}

func (ctx Context) WithCircle(label string, c Circle, note string) Context {
	return ctx.with(Record{Label: label, Kind: KindCircle, Circle: c, Note: note})
}

func (ctx Context) WithLine(label string, l Line, note string) Context {
	return ctx.with(Record{Label: label, Kind: KindLine, Line: l, Note: note})
}

func (ctx Context) lookup(label string, kind Kind) (Record, bool) {
	i, ok := ctx.index[label]
	if !ok || ctx.records[i].Kind != kind {
		return Record{}, false
	}
	return ctx.records[i], true
}

func (ctx Context) Point(label string) (Point, bool) {
	r, ok := ctx.lookup(label, KindPoint)
	return r.Point, ok
}

func (ctx Context) Circle(label string) (Circle, bool) {
	r, ok := ctx.lookup(label, KindCircle)
	return r.Circle, ok
}

func (ctx Context) Line(label string) (Line, bool) {
	r, ok := ctx.lookup(label, KindLine)
	return r.Line, ok
}

// The Must variants are for use inside steps, where a missing label means the
// steps were composed in the wrong order.
func (ctx Context) MustPoint(label string) Point {
	r := ctx.mustLookup(label, KindPoint)
	return r.Point
}

func (ctx Context) MustCircle(label string) Circle {
	r := ctx.mustLookup(label, KindCircle)
	return r.Circle
}

func (ctx Context) MustLine(label string) Line {
	r := ctx.mustLookup(label, KindLine)
	return r.Line
}

func (ctx Context) mustLookup(label string, kind Kind) Record {
	r, ok := ctx.lookup(label, kind)
	if !ok {
		fatalWrapf(ErrUnknownLabel, "%s %q", kind, label)
	}
	return r
}

func (ctx Context) Len() int {
	return len(ctx.records)
}

// Records in construction order. The returned slice is a copy.
func (ctx Context) Records() []Record {
	records := make([]Record, len(ctx.records))
	copy(records, ctx.records)
	return records
}

// Every point record, in construction order, with shadowed labels skipped.
func (ctx Context) Points() []Record {
	var points []Record
	for i, r := range ctx.records {
		if r.Kind == KindPoint && ctx.index[r.Label] == i {
			points = append(points, r)
		}
	}
	return points
}

func (r Record) String() string {
	var value string
	switch r.Kind {
	case KindPoint:
		value = r.Point.String()
	case KindCircle:
		value = fmt.Sprintf("center %s radius %.6f", r.Circle.Center, r.Circle.Radius)
	case KindLine:
		value = fmt.Sprintf("through %s along %s", r.Line.Point, r.Line.Direction)
	}
	s := fmt.Sprintf("%s %s %s", aurora.Bold(r.Label), aurora.Cyan(r.Kind), value)
	if r.Note != "" {
		s += " " + aurora.Faint(r.Note).String()
	}
	return s
}

func (ctx Context) String() string {
	var builder strings.Builder
	for i, r := range ctx.records {
		fmt.Fprintf(&builder, "%3d %s\n", i+1, r)
	}
	return builder.String()
}
