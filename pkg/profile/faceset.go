package profile

import (
	"math"

	"github.com/casworth/xsect/pkg/brep"
	"github.com/casworth/xsect/pkg/geom"
)

// FaceSet holds the faces of one body and owns the classification
// algorithm. A FaceSet is built once per body, classified once, and
// discarded; it never mutates the underlying geometry.
type FaceSet struct {
	sess    brep.Session
	faces   []*Face
	maxArea []int
}

// NewFaceSet wraps every face of the body and locates the maximal-area
// faces. Areas within tolerance of the maximum all qualify: round profiles
// often expose two congruent end caps, and the tie must be kept.
func NewFaceSet(sess brep.Session, body brep.Body) *FaceSet {
	fs := &FaceSet{sess: sess}
	for _, ref := range sess.Faces(body) {
		fs.faces = append(fs.faces, newFace(sess, ref))
	}

	var max float64
	for _, f := range fs.faces {
		if f.area > max {
			max = f.area
		}
	}
	for i, f := range fs.faces {
		if geom.EqualWithin(f.area, max) {
			fs.maxArea = append(fs.maxArea, i)
		}
	}
	return fs
}

// Len returns the number of faces.
func (fs *FaceSet) Len() int { return len(fs.faces) }

// MaxAreaFaceIndices returns the indices of every face whose area ties the
// maximum within tolerance.
func (fs *FaceSet) MaxAreaFaceIndices() []int { return fs.maxArea }

// Classify runs the full classification pass and returns the result.
// Bodies with no usable faces degrade to ShapeNone; this is a legitimate
// "needs human classification" outcome, never an error.
func (fs *FaceSet) Classify() Result {
	if len(fs.faces) == 0 {
		return Result{}
	}
	for _, i := range fs.maxArea {
		if fs.faces[i].round {
			return fs.classifyRound(i)
		}
	}
	return fs.classifyPlanar()
}

// classifyRound handles round stock. The chosen face is the first round
// face among the maximal-area faces.
func (fs *FaceSet) classifyRound(chosenIdx int) Result {
	chosen := fs.faces[chosenIdx]
	res := Result{Shape: ShapeRound}

	// Wall thickness: minimum radius gap to any other coaxial round face.
	// The first qualifying candidate seeds the minimum.
	seeded := false
	for j, f := range fs.faces {
		if j == chosenIdx || !f.round {
			continue
		}
		if !geom.Parallel(chosen.axis, f.axis) {
			continue
		}
		d := math.Abs(chosen.radius - f.radius)
		if !seeded || d < res.WallThickness {
			res.WallThickness = d
			seeded = true
		}
	}

	res.CrossSection = formatDim(2 * chosen.radius)
	for _, l := range chosen.Holes() {
		res.HoleCount++
		res.HoleEdges = append(res.HoleEdges, fs.sess.Edges(l)...)
	}
	res.CutEdges = append([]brep.Edge(nil), chosen.OuterEdges()...)
	res.MaterialLength, res.MaterialStart, res.MaterialEnd = chosen.MaterialLength(chosen.axis)
	return res
}

// classifyPlanar handles every non-round profile: tube, bar, angle and
// channel stock.
func (fs *FaceSet) classifyPlanar() Result {
	// Primary face: the planar face of maximum area.
	primary := -1
	for i, f := range fs.faces {
		if f.planar && (primary < 0 || f.area > fs.faces[primary].area) {
			primary = i
		}
	}
	if primary < 0 {
		return Result{}
	}
	p := fs.faces[primary]
	edgeDir, eStart, eEnd, _ := p.LargestLineEdge()

	// Three dimension scans: across the primary normal (height), along the
	// primary edge direction (length), and across their cross product
	// (width). The wall thickness is the smallest gap any scan saw.
	hScan := fs.scanParallel(p.normal)
	lScan := fs.scanParallel(edgeDir)
	wScan := fs.scanParallel(p.normal.Cross(edgeDir))

	res := Result{
		MaterialStart: eStart,
		MaterialEnd:   eEnd,
		WallThickness: combineWall(hScan, lScan, wScan),
	}

	height, width := hScan.max, wScan.max
	zeroH, zeroW := geom.NearZero(height), geom.NearZero(width)
	oddH := len(hScan.distances)%2 == 1
	oddW := len(wScan.distances)%2 == 1

	// For every dimension that is flat, and in the parity branch for every
	// dimension whose distance count is odd, the extreme subgroup with the
	// larger representative face is dropped from the cut-length candidates:
	// the larger face is a flush end cap, not a profile wall.
	var drops []scanResult
	switch {
	case zeroH && zeroW:
		res.Shape = ShapeAngle
		drops = append(drops, hScan, wScan)
	case zeroH || zeroW:
		res.Shape = ShapeChannel
		if zeroH {
			drops = append(drops, hScan)
		} else {
			drops = append(drops, wScan)
		}
	default:
		switch {
		case oddH && oddW:
			res.Shape = ShapeAngle
			drops = append(drops, hScan, wScan)
		case oddH:
			res.Shape = ShapeChannel
			drops = append(drops, hScan)
		case oddW:
			res.Shape = ShapeChannel
			drops = append(drops, wScan)
		case geom.EqualWithin(height, width):
			res.Shape = ShapeSquare
		default:
			res.Shape = ShapeRectangle
		}
	}
	res.CrossSection = sectionLabel(height, width)

	cand := fs.candidateFaces(hScan, wScan, drops)

	// Material length: the length-scan distance, or the longest per-face
	// extent along the primary edge direction, whichever is larger. When
	// the primary face had no straight edge only the per-face fallback
	// applies.
	res.MaterialLength = lScan.max
	for _, ci := range cand {
		if l, _, _ := fs.faces[ci].MaterialLength(edgeDir); l > res.MaterialLength {
			res.MaterialLength = l
		}
	}

	for _, ci := range cand {
		for _, l := range fs.faces[ci].Holes() {
			res.HoleCount++
			res.HoleEdges = append(res.HoleEdges, fs.sess.Edges(l)...)
		}
	}

	res.CutEdges = fs.cutEdges(cand, res.Shape, edgeDir)
	return res
}

// candidateFaces unions the extreme subsets of the height and width scans,
// then removes the dropped subgroups.
func (fs *FaceSet) candidateFaces(hScan, wScan scanResult, drops []scanResult) []int {
	var cand []int
	add := func(idxs []int) {
		for _, i := range idxs {
			if !containsInt(cand, i) {
				cand = append(cand, i)
			}
		}
	}
	add(hScan.first)
	add(hScan.second)
	add(wScan.first)
	add(wScan.second)

	for _, sc := range drops {
		if len(sc.first) == 0 || len(sc.second) == 0 {
			continue
		}
		drop := sc.second
		if fs.faces[sc.first[0]].area > fs.faces[sc.second[0]].area {
			drop = sc.first
		}
		for _, i := range drop {
			cand = removeInt(cand, i)
		}
	}
	return cand
}

// cutEdges selects the profile-perimeter edges for the candidate faces.
// For each outer-loop edge whose neighbor face is planar and outside the
// candidate set, every edge sharing a loop with it on the neighbor is
// pulled in. Rectangular profiles keep all pulled edges; other shapes keep
// only edges whose endpoints both touch candidate faces. Edges running
// along the primary edge direction are longitudinal seams, never cut
// boundary.
func (fs *FaceSet) cutEdges(cand []int, shape Shape, primaryDir geom.Vec3) []brep.Edge {
	candRefs := make([]brep.Face, len(cand))
	for i, ci := range cand {
		candRefs[i] = fs.faces[ci].ref
	}

	keepAll := shape == ShapeRectangle || shape == ShapeSquare
	var cut []brep.Edge
	for _, ci := range cand {
		cf := fs.faces[ci]
		for _, e := range cf.OuterEdges() {
			fa, fb := fs.sess.EdgeFaces(e)
			neighbor := fa
			if fa != nil && fs.sess.IsSame(fa, cf.ref) {
				neighbor = fb
			}
			if neighbor == nil {
				continue
			}
			if fs.sess.Surface(neighbor).Kind != brep.SurfacePlanar {
				continue
			}
			if containsFace(fs.sess, candRefs, neighbor) {
				continue
			}
			for _, mate := range fs.loopMates(neighbor, e) {
				if !keepAll && !fs.edgeEndsOnFaces(mate, candRefs) {
					continue
				}
				if !containsEdge(fs.sess, cut, mate) {
					cut = append(cut, mate)
				}
			}
		}
	}

	var out []brep.Edge
	for _, e := range cut {
		c := fs.sess.Curve(e)
		dir := geom.Direction(c.Start, c.End)
		if !geom.IsZero(dir) && geom.Parallel(dir, primaryDir) {
			continue
		}
		out = append(out, e)
	}
	return out
}
