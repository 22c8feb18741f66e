package profile

import (
	"math"

	"github.com/casworth/xsect/pkg/brep"
	"github.com/casworth/xsect/pkg/geom"
)

// Face caches the measurable attributes of one externally-owned kernel
// face: area and surface kind are queried once at construction, loop and
// hole sets lazily on first use.
type Face struct {
	sess brep.Session
	ref  brep.Face

	area   float64
	planar bool
	normal geom.Vec3
	round  bool
	axis   geom.Vec3
	origin geom.Vec3
	radius float64

	loops      *LoopSet
	outerEdges []brep.Edge
}

func newFace(sess brep.Session, ref brep.Face) *Face {
	f := &Face{sess: sess, ref: ref, area: sess.Area(ref)}
	switch surf := sess.Surface(ref); surf.Kind {
	case brep.SurfacePlanar:
		f.planar = true
		f.normal = surf.Normal
	case brep.SurfaceCylindrical:
		f.round = true
		f.axis = surf.Axis
		f.origin = surf.Origin
		f.radius = surf.Radius
	}
	return f
}

// Ref returns the underlying kernel face handle.
func (f *Face) Ref() brep.Face { return f.ref }

// Area returns the face area queried at construction.
func (f *Face) Area() float64 { return f.area }

// IsPlanar reports whether the face lies on a plane.
func (f *Face) IsPlanar() bool { return f.planar }

// IsRound reports whether the face lies on a cylinder.
func (f *Face) IsRound() bool { return f.round }

// IsSame reports whether other is the same kernel entity.
func (f *Face) IsSame(other brep.Face) bool {
	return f.sess.IsSame(f.ref, other)
}

func (f *Face) loopSet() *LoopSet {
	if f.loops == nil {
		f.loops = NewLoopSet(f.sess)
		f.loops.Add(f.sess.Loops(f.ref)...)
	}
	return f.loops
}

// Holes returns the face's inner loops.
func (f *Face) Holes() []brep.Loop {
	return f.loopSet().Holes()
}

// OuterEdges returns the edges bounding the face's outer loop(s).
func (f *Face) OuterEdges() []brep.Edge {
	if f.outerEdges == nil {
		for _, l := range f.loopSet().Outer() {
			f.outerEdges = append(f.outerEdges, f.sess.Edges(l)...)
		}
	}
	return f.outerEdges
}

// LargestLineEdge scans every edge of the face and returns the direction,
// endpoints and length of the longest straight edge. Lengths within
// tolerance of the running maximum overwrite the stored edge, so the last
// tied edge in enumeration order wins.
func (f *Face) LargestLineEdge() (dir, start, end geom.Vec3, length float64) {
	var maxLen float64
	for _, e := range f.loopSet().Edges() {
		c := f.sess.Curve(e)
		if !c.IsLine {
			continue
		}
		if c.Length > maxLen {
			maxLen = c.Length
		}
		if geom.EqualWithin(c.Length, maxLen) {
			dir = geom.Direction(c.Start, c.End)
			start, end = c.Start, c.End
			length = c.Length
		}
	}
	return dir, start, end, length
}

// MaterialLength tessellates the face and measures its extent along the
// given axis from the axis-aligned bounding box of the triangle vertices.
// When the axis is a coordinate axis the matching extent is returned
// directly; otherwise the length is the axis-weighted sum of the three
// extents divided by the axis magnitude, a projection of the bounding-box
// diagonal onto the axis. Round faces are measured along their own
// cylinder axis by the caller.
func (f *Face) MaterialLength(axis geom.Vec3) (length float64, start, end geom.Vec3) {
	tris := f.sess.Tessellate(f.ref)
	if len(tris) < 9 || geom.IsZero(axis) {
		return 0, geom.Vec3{}, geom.Vec3{}
	}

	min := geom.Vec3{X: tris[0], Y: tris[1], Z: tris[2]}
	max := min
	for i := 3; i+2 < len(tris); i += 3 {
		p := geom.Vec3{X: tris[i], Y: tris[i+1], Z: tris[i+2]}
		min = min.Min(p)
		max = max.Max(p)
	}

	ext := max.Sub(min)
	switch {
	case geom.EqualWithin(math.Abs(axis.X), 1):
		return ext.X, min, max
	case geom.EqualWithin(math.Abs(axis.Y), 1):
		return ext.Y, min, max
	case geom.EqualWithin(math.Abs(axis.Z), 1):
		return ext.Z, min, max
	}
	l := (math.Abs(axis.X)*ext.X + math.Abs(axis.Y)*ext.Y + math.Abs(axis.Z)*ext.Z) / axis.Length()
	return l, min, max
}
