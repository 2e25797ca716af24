package construct

import "math"

// Richmond's 1893 construction of the regular 17-gon, as a sequence of
// compass and straightedge steps. With the circle Γ centered at O and A the
// point at polar angle zero:
//
//	J   on OB with OJ = OB/4
//	E   on OA with ∠OJE = ¼∠OJA
//	F   on line AO, past O, with ∠EJF = 45°
//	M   the midpoint of AF, found with two equal circles about A and F
//	K   where the circle on diameter AF meets OB
//	N3  and N5 where the circle about E through K meets line OA
//	P3  and P5 where the perpendiculars to OA at N3 and N5 meet Γ
//
// P3 and P5 are the vertices at 3·2π/17 and 5·2π/17. Bisecting ∠P3OP5 gives
// P4, and the arc P3P4 is one side's worth of angle.
func RichmondSteps() []Step {
	return []Step{
		richmondFrame,
		richmondJ,
		richmondE,
		richmondF,
		richmondM,
		richmondK,
		richmondN,
		richmondP,
		richmondStep,
	}
}

// Run Richmond's construction on c. The returned context holds every
// intermediate point, circle and line under its classical label.
func Richmond(c Circle) (result Context, err error) {
	defer func() {
		recoveredErr := HandleConstructionPanicRecover(recover())
		if recoveredErr != nil {
			result = Context{}
			err = recoveredErr
		}
	}()
	if !c.Valid() {
		fatalWrapf(ErrDegenerateInput, "radius %v", c.Radius)
	}
	ctx := Context{}.WithCircle("Γ", c, "given circle")
	return Run(ctx, RichmondSteps()...), nil
}

// A 17-gon starting at A whose angular step is measured off Richmond's
// construction rather than computed. Good to about machine precision, and
// mainly useful to show the construction agrees with Gauss.
func ConstructedHeptadecagon(c Circle) (Polygon, error) {
	ctx, err := Richmond(c)
	if err != nil {
		return Polygon{}, err
	}
	o, a := ctx.MustPoint("O"), ctx.MustPoint("A")
	step := AngleAt(o, ctx.MustPoint("P3"), ctx.MustPoint("P4"))
	return SteppedPolygon(c, a.Sub(o).Angle(), step, HeptadecagonSides), nil
}

func richmondFrame(ctx Context) Context {
	c := ctx.MustCircle("Γ")
	o := c.Center
	a := c.PointAt(0)
	b := c.PointAt(math.Pi / 2)
	return ctx.
		WithPoint("O", o, "center").
		WithPoint("A", a, "vertex P0").
		WithPoint("B", b, "OB ⟂ OA").
		WithLine("OA", LineThrough(o, a), "diameter through A").
		WithLine("OB", LineThrough(o, b), "radius perpendicular to OA")
}

func richmondJ(ctx Context) Context {
	o, b := ctx.MustPoint("O"), ctx.MustPoint("B")
	return ctx.WithPoint("J", o.Lerp(b, 0.25), "OJ = OB/4")
}

func richmondE(ctx Context) Context {
	o, a, j := ctx.MustPoint("O"), ctx.MustPoint("A"), ctx.MustPoint("J")
	je := LineFrom(j, DivideAngle(o.Sub(j), a.Sub(j), 0.25))
	e, ok := IntersectLines(je, ctx.MustLine("OA"))
	if !ok {
		fatalWrapf(ErrNoIntersection, "JE does not meet OA")
	}
	return ctx.
		WithLine("JE", je, "∠OJE = ¼∠OJA").
		WithPoint("E", e, "")
}

func richmondF(ctx Context) Context {
	o, a, j := ctx.MustPoint("O"), ctx.MustPoint("A"), ctx.MustPoint("J")
	toE := ctx.MustLine("JE").Direction

	// The perpendicular to JE on the side away from A
	away := toE.Perp()
	if away.Dot(a.Sub(o)) > 0 {
		away = away.Scale(-1)
	}
	jf := LineFrom(j, Bisect(toE, away))
	f, ok := IntersectLines(jf, ctx.MustLine("OA"))
	if !ok {
		fatalWrapf(ErrNoIntersection, "JF does not meet OA")
	}
	return ctx.
		WithLine("JF", jf, "∠EJF = 45°").
		WithPoint("F", f, "")
}

func richmondM(ctx Context) Context {
	a, f := ctx.MustPoint("A"), ctx.MustPoint("F")
	aroundA := CircleThrough(a, f)
	aroundF := CircleThrough(f, a)
	crossings := IntersectCircles(aroundA, aroundF)
	if len(crossings) != 2 {
		fatalWrapf(ErrNoIntersection, "circles about A and F")
	}
	bisector := LineThrough(crossings[0], crossings[1])
	m, ok := IntersectLines(bisector, ctx.MustLine("OA"))
	if !ok {
		fatalWrapf(ErrNoIntersection, "perpendicular bisector of AF does not meet OA")
	}
	return ctx.
		WithCircle("A:AF", aroundA, "").
		WithCircle("F:FA", aroundF, "").
		WithLine("⟂AF", bisector, "perpendicular bisector of AF").
		WithPoint("M", m, "midpoint of AF")
}

func richmondK(ctx Context) Context {
	m, a, b := ctx.MustPoint("M"), ctx.MustPoint("A"), ctx.MustPoint("B")
	onDiameter := CircleThrough(m, a)
	k, ok := Nearest(b, IntersectCircleLine(onDiameter, ctx.MustLine("OB")))
	if !ok {
		fatalWrapf(ErrNoIntersection, "circle on AF does not meet OB")
	}
	return ctx.
		WithCircle("M:MA", onDiameter, "circle on diameter AF").
		WithPoint("K", k, "")
}

func richmondN(ctx Context) Context {
	e, k := ctx.MustPoint("E"), ctx.MustPoint("K")
	aroundE := CircleThrough(e, k)
	// Roots come back ordered along O→A, so the one nearer A is second.
	crossings := IntersectCircleLine(aroundE, ctx.MustLine("OA"))
	if len(crossings) != 2 {
		fatalWrapf(ErrNoIntersection, "circle about E does not meet OA")
	}
	return ctx.
		WithCircle("E:EK", aroundE, "").
		WithPoint("N5", crossings[0], "").
		WithPoint("N3", crossings[1], "")
}

func richmondP(ctx Context) Context {
	c := ctx.MustCircle("Γ")
	oa := ctx.MustLine("OA")
	for _, n := range []string{"3", "5"} {
		foot := ctx.MustPoint("N" + n)
		// The perpendicular at N points the same way as OB, so the larger root is
		// on B's side.
		perp := oa.Perpendicular(foot)
		crossings := IntersectCircleLine(c, perp)
		if len(crossings) != 2 {
			fatalWrapf(ErrNoIntersection, "perpendicular at N%s misses the circle", n)
		}
		ctx = ctx.
			WithLine("⟂N"+n, perp, "").
			WithPoint("P"+n, crossings[1], "vertex")
	}
	return ctx
}

func richmondStep(ctx Context) Context {
	c := ctx.MustCircle("Γ")
	o, p3, p5 := ctx.MustPoint("O"), ctx.MustPoint("P3"), ctx.MustPoint("P5")
	p4 := o.Add(Bisect(p3.Sub(o), p5.Sub(o)).Scale(c.Radius))
	return ctx.WithPoint("P4", p4, "bisects arc P3P5")
}
