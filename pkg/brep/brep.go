// Package brep defines the boundary-representation entity handles and the
// geometry session interface the profile engine measures through.
// Implementations (mem, or a live CAD kernel binding) own the entities;
// the engine never constructs or repairs geometry, it only queries it.
package brep

import "github.com/casworth/xsect/pkg/geom"

// Body is an opaque handle to a solid modeled as a closed set of faces.
type Body interface{}

// Face is an opaque handle to a bounded region of a surface.
type Face interface{}

// Loop is an opaque handle to a closed boundary of a face, outer or inner.
type Loop interface{}

// Edge is an opaque handle to a curve segment shared by up to two faces.
// Edge identity is decided by Session.IsSame, never by field comparison:
// backends may hand out distinct handles for the same underlying edge.
type Edge interface{}

// Vertex is an opaque handle to an edge endpoint.
type Vertex interface{}

// SurfaceKind classifies a face's underlying surface.
type SurfaceKind int

const (
	SurfaceOther SurfaceKind = iota
	SurfacePlanar
	SurfaceCylindrical
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfacePlanar:
		return "planar"
	case SurfaceCylindrical:
		return "cylindrical"
	default:
		return "other"
	}
}

// Surface describes a face's underlying surface.
type Surface struct {
	Kind   SurfaceKind
	Normal geom.Vec3 // valid iff Kind == SurfacePlanar
	Axis   geom.Vec3 // valid iff Kind == SurfaceCylindrical
	Origin geom.Vec3 // valid iff Kind == SurfaceCylindrical
	Radius float64   // valid iff Kind == SurfaceCylindrical
}

// Curve describes an edge's underlying curve over its parameter range.
// Circular edges have Start == End.
type Curve struct {
	IsLine bool
	Start  geom.Vec3
	End    geom.Vec3
	Length float64
}

// Session is the geometry/measurement collaborator. One session serves one
// classification pass; sessions are not required to be safe for concurrent
// use, so callers classifying bodies in parallel must give each body its
// own session.
type Session interface {
	// Faces returns the faces of a body in a stable order.
	Faces(b Body) []Face

	// Surface describes the surface under a face.
	Surface(f Face) Surface

	// Area returns the face area.
	Area(f Face) float64

	// Loops returns the boundary loops of a face.
	Loops(f Face) []Loop

	// IsOuter reports whether a loop is an outer boundary rather than a hole.
	IsOuter(l Loop) bool

	// Edges returns the ordered edges of a loop.
	Edges(l Loop) []Edge

	// Curve describes the curve under an edge.
	Curve(e Edge) Curve

	// EdgeFaces returns the up-to-two faces adjacent to an edge.
	// The second face is nil on open geometry.
	EdgeFaces(e Edge) (Face, Face)

	// EdgeVertices returns the endpoint vertices of an edge.
	EdgeVertices(e Edge) (Vertex, Vertex)

	// VertexFaces returns every face touching a vertex.
	VertexFaces(v Vertex) []Face

	// IsSame reports entity identity, never geometric coincidence.
	IsSame(a, b interface{}) bool

	// NormalDistance measures the normal distance between two faces.
	// ok is false when the backend cannot compute one, e.g. for
	// non-parallel faces. Coplanar parallel faces measure as 0, true.
	NormalDistance(a, b Face) (d float64, ok bool)

	// TotalLength returns the aggregate length of an edge set.
	TotalLength(edges []Edge) float64

	// Tessellate returns a flat triangle-vertex array for a face,
	// nine floats (three vertices) per triangle.
	Tessellate(f Face) []float64
}
