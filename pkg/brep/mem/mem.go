// Package mem implements the brep.Session interface over an in-memory
// boundary representation. Bodies are built analytically by the stock
// builders in this package; the backend serves tests and the CLI in place
// of a live CAD kernel session.
package mem

import (
	"github.com/casworth/xsect/pkg/brep"
	"github.com/casworth/xsect/pkg/geom"
)

// Compile-time interface check.
var _ brep.Session = (*Session)(nil)

// Body is a solid made of explicitly constructed faces.
type Body struct {
	Name  string
	faces []*Face
}

// Face is one bounded surface region of a body.
type Face struct {
	surf  brep.Surface
	area  float64
	point geom.Vec3 // reference point on the face, used for distance measurement
	loops []*Loop
	tris  []float64 // flat triangle vertices, nine floats per triangle
}

// Loop is a closed edge cycle bounding part of a face.
type Loop struct {
	outer bool
	edges []*Edge
}

// Edge is a curve segment shared by up to two faces. Circular edges have
// start == end.
type Edge struct {
	line       bool
	start, end *Vertex
	length     float64
	faces      []*Face
}

// Vertex is an edge endpoint with its adjacent-face list.
type Vertex struct {
	at    geom.Vec3
	faces []*Face
}

// Session implements brep.Session over mem entities. It is stateless and
// may be shared, but callers follow the one-session-per-body convention of
// the brep contract.
type Session struct{}

// NewSession returns a session over in-memory bodies.
func NewSession() *Session {
	return &Session{}
}

func (s *Session) Faces(b brep.Body) []brep.Face {
	body := b.(*Body)
	out := make([]brep.Face, len(body.faces))
	for i, f := range body.faces {
		out[i] = f
	}
	return out
}

func (s *Session) Surface(f brep.Face) brep.Surface {
	return f.(*Face).surf
}

func (s *Session) Area(f brep.Face) float64 {
	return f.(*Face).area
}

func (s *Session) Loops(f brep.Face) []brep.Loop {
	face := f.(*Face)
	out := make([]brep.Loop, len(face.loops))
	for i, l := range face.loops {
		out[i] = l
	}
	return out
}

func (s *Session) IsOuter(l brep.Loop) bool {
	return l.(*Loop).outer
}

func (s *Session) Edges(l brep.Loop) []brep.Edge {
	loop := l.(*Loop)
	out := make([]brep.Edge, len(loop.edges))
	for i, e := range loop.edges {
		out[i] = e
	}
	return out
}

func (s *Session) Curve(e brep.Edge) brep.Curve {
	edge := e.(*Edge)
	return brep.Curve{
		IsLine: edge.line,
		Start:  edge.start.at,
		End:    edge.end.at,
		Length: edge.length,
	}
}

func (s *Session) EdgeFaces(e brep.Edge) (brep.Face, brep.Face) {
	edge := e.(*Edge)
	switch len(edge.faces) {
	case 0:
		return nil, nil
	case 1:
		return edge.faces[0], nil
	default:
		return edge.faces[0], edge.faces[1]
	}
}

func (s *Session) EdgeVertices(e brep.Edge) (brep.Vertex, brep.Vertex) {
	edge := e.(*Edge)
	return edge.start, edge.end
}

func (s *Session) VertexFaces(v brep.Vertex) []brep.Face {
	vert := v.(*Vertex)
	out := make([]brep.Face, len(vert.faces))
	for i, f := range vert.faces {
		out[i] = f
	}
	return out
}

// IsSame compares handles by pointer identity, mirroring a kernel's
// entity-identity test.
func (s *Session) IsSame(a, b interface{}) bool {
	return a == b
}

// NormalDistance measures between parallel planar faces. Anything else is
// reported as not measurable, matching kernels that refuse a normal
// distance for skew surfaces.
func (s *Session) NormalDistance(a, b brep.Face) (float64, bool) {
	fa, fb := a.(*Face), b.(*Face)
	if fa.surf.Kind != brep.SurfacePlanar || fb.surf.Kind != brep.SurfacePlanar {
		return 0, false
	}
	if !geom.Parallel(fa.surf.Normal, fb.surf.Normal) {
		return 0, false
	}
	d := fb.point.Sub(fa.point).Dot(fa.surf.Normal)
	if d < 0 {
		d = -d
	}
	return d, true
}

func (s *Session) TotalLength(edges []brep.Edge) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.(*Edge).length
	}
	return sum
}

func (s *Session) Tessellate(f brep.Face) []float64 {
	return f.(*Face).tris
}
