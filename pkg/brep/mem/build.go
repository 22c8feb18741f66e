package mem

import (
	"math"

	"github.com/casworth/xsect/pkg/brep"
	"github.com/casworth/xsect/pkg/geom"
)

// pt is a 2D cross-section point in the YZ plane. Stock bodies are
// extruded along X.
type pt struct {
	y, z float64
}

// builder deduplicates vertices and line edges so that adjacent faces share
// the same entity pointers, which is what IsSame identity relies on.
type builder struct {
	body  *Body
	verts map[[3]float64]*Vertex
	edges map[edgeKey]*Edge
}

type edgeKey struct {
	a, b *Vertex
}

func newBuilder(name string) *builder {
	return &builder{
		body:  &Body{Name: name},
		verts: make(map[[3]float64]*Vertex),
		edges: make(map[edgeKey]*Edge),
	}
}

func (bd *builder) vertex(p geom.Vec3) *Vertex {
	key := [3]float64{p.X, p.Y, p.Z}
	if v, ok := bd.verts[key]; ok {
		return v
	}
	v := &Vertex{at: p}
	bd.verts[key] = v
	return v
}

func (bd *builder) lineEdge(a, b *Vertex) *Edge {
	if e, ok := bd.edges[edgeKey{a, b}]; ok {
		return e
	}
	if e, ok := bd.edges[edgeKey{b, a}]; ok {
		return e
	}
	e := &Edge{line: true, start: a, end: b, length: b.at.Sub(a.at).Length()}
	bd.edges[edgeKey{a, b}] = e
	return e
}

// addFace wires a face into the body and registers it on every edge and
// vertex of its loops.
func (bd *builder) addFace(f *Face) {
	bd.body.faces = append(bd.body.faces, f)
	for _, l := range f.loops {
		for _, e := range l.edges {
			attachFace(e, f)
		}
	}
}

func attachFace(e *Edge, f *Face) {
	if !hasFace(e.faces, f) {
		e.faces = append(e.faces, f)
	}
	for _, v := range []*Vertex{e.start, e.end} {
		if !hasFace(v.faces, f) {
			v.faces = append(v.faces, f)
		}
	}
}

func hasFace(list []*Face, f *Face) bool {
	for _, x := range list {
		if x == f {
			return true
		}
	}
	return false
}

// polyArea is the shoelace area of a cross-section polygon.
func polyArea(poly []pt) float64 {
	var sum float64
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i].y*poly[j].z - poly[j].y*poly[i].z
	}
	return math.Abs(sum) / 2
}

func at(x float64, p pt) geom.Vec3 {
	return geom.Vec3{X: x, Y: p.y, Z: p.z}
}

// prism extrudes a cross-section polygon along X, producing one planar wall
// per polygon segment, an optional inner bore, and two end caps. The bore
// polygon appears on the caps as an inner (hole) loop.
func prism(name string, outer, bore []pt, length float64) *Body {
	bd := newBuilder(name)

	walls := func(poly []pt) {
		for i := range poly {
			p1, p2 := poly[i], poly[(i+1)%len(poly)]
			a0 := bd.vertex(at(0, p1))
			b0 := bd.vertex(at(0, p2))
			aL := bd.vertex(at(length, p1))
			bL := bd.vertex(at(length, p2))

			dy, dz := p2.y-p1.y, p2.z-p1.z
			segLen := math.Hypot(dy, dz)
			normal := geom.Vec3{Y: dz, Z: -dy}.Normalize()

			loop := &Loop{outer: true, edges: []*Edge{
				bd.lineEdge(a0, b0),
				bd.lineEdge(b0, bL),
				bd.lineEdge(bL, aL),
				bd.lineEdge(aL, a0),
			}}
			bd.addFace(&Face{
				surf:  brep.Surface{Kind: brep.SurfacePlanar, Normal: normal},
				area:  segLen * length,
				point: a0.at,
				loops: []*Loop{loop},
				tris: flatten(
					a0.at, b0.at, bL.at,
					a0.at, bL.at, aL.at,
				),
			})
		}
	}

	walls(outer)
	if len(bore) > 0 {
		walls(bore)
	}

	ring := func(x float64, poly []pt, isOuter bool) *Loop {
		loop := &Loop{outer: isOuter}
		for i := range poly {
			a := bd.vertex(at(x, poly[i]))
			b := bd.vertex(at(x, poly[(i+1)%len(poly)]))
			loop.edges = append(loop.edges, bd.lineEdge(a, b))
		}
		return loop
	}

	capArea := polyArea(outer) - polyArea(bore)
	for _, x := range []float64{0, length} {
		loops := []*Loop{ring(x, outer, true)}
		if len(bore) > 0 {
			loops = append(loops, ring(x, bore, false))
		}
		bd.addFace(&Face{
			surf:  brep.Surface{Kind: brep.SurfacePlanar, Normal: geom.Vec3{X: 1}},
			area:  capArea,
			point: at(x, outer[0]),
			loops: loops,
			tris:  fan(x, outer),
		})
	}

	return bd.body
}

// fan triangulates a cap polygon as a vertex fan. Caps are only ever
// tessellated for bounding-box queries, so the fan is enough even for the
// concave angle and channel profiles: every polygon vertex is emitted.
func fan(x float64, poly []pt) []float64 {
	var tris []float64
	for i := 1; i+1 < len(poly); i++ {
		tris = append(tris, flatten(at(x, poly[0]), at(x, poly[i]), at(x, poly[i+1]))...)
	}
	return tris
}

func flatten(pts ...geom.Vec3) []float64 {
	out := make([]float64, 0, len(pts)*3)
	for _, p := range pts {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}

// FlatBar builds a solid rectangular bar, width along Y, thickness along Z.
func FlatBar(name string, width, thickness, length float64) *Body {
	return prism(name, []pt{{0, 0}, {width, 0}, {width, thickness}, {0, thickness}}, nil, length)
}

// RectTube builds a rectangular tube with the given outside width (Y),
// height (Z) and wall thickness.
func RectTube(name string, width, height, wall, length float64) *Body {
	outer := []pt{{0, 0}, {width, 0}, {width, height}, {0, height}}
	bore := []pt{{wall, wall}, {width - wall, wall}, {width - wall, height - wall}, {wall, height - wall}}
	return prism(name, outer, bore, length)
}

// SquareTube builds a square tube.
func SquareTube(name string, size, wall, length float64) *Body {
	return RectTube(name, size, size, wall, length)
}

// Angle builds an L-profile: legA along Y, legB along Z.
func Angle(name string, legA, legB, thickness, length float64) *Body {
	t := thickness
	outer := []pt{{0, 0}, {legA, 0}, {legA, t}, {t, t}, {t, legB}, {0, legB}}
	return prism(name, outer, nil, length)
}

// Channel builds a C-profile: web along Y at the bottom, two flanges
// rising along Z.
func Channel(name string, web, flange, thickness, length float64) *Body {
	t := thickness
	outer := []pt{
		{0, 0}, {web, 0},
		{web, flange}, {web - t, flange},
		{web - t, t}, {t, t},
		{t, flange}, {0, flange},
	}
	return prism(name, outer, nil, length)
}

// circleEdge builds a closed circular edge of the given radius centered on
// the X axis at position x. Circular edges anchor start == end at the
// (x, r, 0) point.
func circleEdge(bd *builder, x, r float64) *Edge {
	v := bd.vertex(geom.Vec3{X: x, Y: r})
	return &Edge{line: false, start: v, end: v, length: 2 * math.Pi * r}
}

// cylWallTris samples a cylinder wall so its bounding box is exact: the
// sample count is a multiple of four, so the ±r extremes on Y and Z are hit.
func cylWallTris(r, length float64) []float64 {
	const n = 16
	var tris []float64
	for k := 0; k < n; k++ {
		t1 := 2 * math.Pi * float64(k) / n
		t2 := 2 * math.Pi * float64(k+1) / n
		p1 := geom.Vec3{X: 0, Y: r * math.Cos(t1), Z: r * math.Sin(t1)}
		p2 := geom.Vec3{X: 0, Y: r * math.Cos(t2), Z: r * math.Sin(t2)}
		q1 := geom.Vec3{X: length, Y: p1.Y, Z: p1.Z}
		q2 := geom.Vec3{X: length, Y: p2.Y, Z: p2.Z}
		tris = append(tris, flatten(p1, p2, q2, p1, q2, q1)...)
	}
	return tris
}

// capFan triangulates a circular cap as a fan over the rim samples.
func capFan(x, r float64) []float64 {
	const n = 16
	center := geom.Vec3{X: x}
	var tris []float64
	for k := 0; k < n; k++ {
		t1 := 2 * math.Pi * float64(k) / n
		t2 := 2 * math.Pi * float64(k+1) / n
		p1 := geom.Vec3{X: x, Y: r * math.Cos(t1), Z: r * math.Sin(t1)}
		p2 := geom.Vec3{X: x, Y: r * math.Cos(t2), Z: r * math.Sin(t2)}
		tris = append(tris, flatten(center, p1, p2)...)
	}
	return tris
}

// cylFace builds a full cylindrical face about the X axis bounded by the
// two given rim circles.
func cylFace(r, length float64, rims []*Edge) *Face {
	return &Face{
		surf: brep.Surface{
			Kind:   brep.SurfaceCylindrical,
			Axis:   geom.Vec3{X: 1},
			Origin: geom.Vec3{},
			Radius: r,
		},
		area:  2 * math.Pi * r * length,
		point: geom.Vec3{Y: r},
		loops: []*Loop{{outer: true, edges: rims}},
		tris:  cylWallTris(r, length),
	}
}

// RoundBar builds a solid cylinder of the given diameter along X.
func RoundBar(name string, dia, length float64) *Body {
	bd := newBuilder(name)
	r := dia / 2
	c0 := circleEdge(bd, 0, r)
	cL := circleEdge(bd, length, r)

	bd.addFace(cylFace(r, length, []*Edge{c0, cL}))
	for _, rim := range []struct {
		x float64
		e *Edge
	}{{0, c0}, {length, cL}} {
		bd.addFace(&Face{
			surf:  brep.Surface{Kind: brep.SurfacePlanar, Normal: geom.Vec3{X: 1}},
			area:  math.Pi * r * r,
			point: rim.e.start.at,
			loops: []*Loop{{outer: true, edges: []*Edge{rim.e}}},
			tris:  capFan(rim.x, r),
		})
	}
	return bd.body
}

// RoundTube builds a hollow cylinder with the given outside diameter and
// wall thickness along X. The bore appears on each cap as a hole loop.
func RoundTube(name string, od, wall, length float64) *Body {
	bd := newBuilder(name)
	ro := od / 2
	ri := ro - wall

	c0, cL := circleEdge(bd, 0, ro), circleEdge(bd, length, ro)
	i0, iL := circleEdge(bd, 0, ri), circleEdge(bd, length, ri)

	bd.addFace(cylFace(ro, length, []*Edge{c0, cL}))
	bd.addFace(cylFace(ri, length, []*Edge{i0, iL}))

	caps := []struct {
		x        float64
		rim, bore *Edge
	}{{0, c0, i0}, {length, cL, iL}}
	for _, c := range caps {
		bd.addFace(&Face{
			surf:  brep.Surface{Kind: brep.SurfacePlanar, Normal: geom.Vec3{X: 1}},
			area:  math.Pi * (ro*ro - ri*ri),
			point: c.rim.start.at,
			loops: []*Loop{
				{outer: true, edges: []*Edge{c.rim}},
				{outer: false, edges: []*Edge{c.bore}},
			},
			tris: capFan(c.x, ro),
		})
	}
	return bd.body
}

// Drill cuts a through-hole of the given diameter into the body's first
// face, centered at position x along the length. The hole's rim becomes an
// inner loop of that face, and the drilled bore surface joins the body as a
// cylindrical face sharing the rim edge.
func Drill(b *Body, dia, x, depth float64) {
	f := b.faces[0]
	r := dia / 2

	var anchor, axis geom.Vec3
	switch f.surf.Kind {
	case brep.SurfaceCylindrical:
		anchor = geom.Vec3{X: x, Y: f.surf.Radius}
		axis = geom.Vec3{Y: 1}
	default:
		// Planar wall: center the hole on the wall's first loop span.
		first := f.loops[0].edges[0]
		mid := first.start.at.Add(first.end.at).MulScalar(0.5)
		anchor = geom.Vec3{X: x, Y: mid.Y, Z: mid.Z}
		axis = f.surf.Normal
	}

	v := &Vertex{at: anchor}
	rim := &Edge{line: false, start: v, end: v, length: 2 * math.Pi * r}

	f.loops = append(f.loops, &Loop{outer: false, edges: []*Edge{rim}})
	f.area -= math.Pi * r * r
	attachFace(rim, f)

	bore := &Face{
		surf: brep.Surface{
			Kind:   brep.SurfaceCylindrical,
			Axis:   axis,
			Origin: anchor,
			Radius: r,
		},
		area:  2 * math.Pi * r * depth,
		point: anchor,
		loops: []*Loop{{outer: true, edges: []*Edge{rim}}},
		// Bore tessellation is never queried by the engine.
		tris: flatten(anchor, anchor, anchor),
	}
	b.faces = append(b.faces, bore)
	attachFace(rim, bore)
}
