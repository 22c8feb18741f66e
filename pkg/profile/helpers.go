package profile

import "github.com/casworth/xsect/pkg/brep"

// containsEdge reports whether list already holds e, by session identity.
// B-rep edges may be handed out as distinct handles for the same entity,
// so field comparison is never enough.
func containsEdge(sess brep.Session, list []brep.Edge, e brep.Edge) bool {
	for _, x := range list {
		if sess.IsSame(x, e) {
			return true
		}
	}
	return false
}

// containsFace reports whether list holds f, by session identity.
func containsFace(sess brep.Session, list []brep.Face, f brep.Face) bool {
	for _, x := range list {
		if sess.IsSame(x, f) {
			return true
		}
	}
	return false
}

// loopMates returns the edges of the loop on face that contains e,
// including e itself. Nil when no loop of the face holds the edge.
func (fs *FaceSet) loopMates(face brep.Face, e brep.Edge) []brep.Edge {
	for _, l := range fs.sess.Loops(face) {
		edges := fs.sess.Edges(l)
		if containsEdge(fs.sess, edges, e) {
			return edges
		}
	}
	return nil
}

// edgeEndsOnFaces reports whether both endpoints of e lie on at least one
// face from refs, via each vertex's adjacent-face list.
func (fs *FaceSet) edgeEndsOnFaces(e brep.Edge, refs []brep.Face) bool {
	v1, v2 := fs.sess.EdgeVertices(e)
	return fs.vertexOnFaces(v1, refs) && fs.vertexOnFaces(v2, refs)
}

func (fs *FaceSet) vertexOnFaces(v brep.Vertex, refs []brep.Face) bool {
	if v == nil {
		return false
	}
	for _, f := range fs.sess.VertexFaces(v) {
		if containsFace(fs.sess, refs, f) {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func removeInt(list []int, v int) []int {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
