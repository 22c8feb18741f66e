package profile

import "github.com/casworth/xsect/pkg/geom"

// scanResult is the immutable outcome of one parallel-face distance scan.
// The caller combines the per-scan minimums into the final wall thickness
// instead of mutating a shared accumulator.
type scanResult struct {
	group  []int // indices of faces whose normal is parallel to the scan direction
	first  []int // faces at the maximum pairwise distance, side of the first extreme
	second []int // faces at the maximum pairwise distance, opposite side

	distances []float64 // distinct positive distances observed
	max       float64   // the dimension this scan measures
	min       float64   // smallest positive distance, feeds wall thickness
	hasMin    bool
}

// scanParallel measures every unordered pair of planar faces whose normal
// is parallel to dir. Pairs the session cannot measure, and non-positive
// results, are skipped. The first pair to reach the maximum wins the
// extreme slots; a second pass holding the first extreme fixed collects
// coplanar duplicates into the first subset and max-tied faces into the
// second.
func (fs *FaceSet) scanParallel(dir geom.Vec3) scanResult {
	var sr scanResult
	if geom.IsZero(dir) {
		return sr
	}

	for i, f := range fs.faces {
		if f.planar && geom.Parallel(f.normal, dir) {
			sr.group = append(sr.group, i)
		}
	}

	firstIdx, secondIdx := -1, -1
	for a := 0; a < len(sr.group); a++ {
		for b := a + 1; b < len(sr.group); b++ {
			d, ok := fs.sess.NormalDistance(fs.faces[sr.group[a]].ref, fs.faces[sr.group[b]].ref)
			if !ok || d <= 0 {
				continue
			}
			if !sr.hasMin || d < sr.min {
				sr.min = d
				sr.hasMin = true
			}
			if d > sr.max {
				sr.max = d
				firstIdx, secondIdx = sr.group[a], sr.group[b]
			}
			sr.distances = appendDistinct(sr.distances, d)
		}
	}
	if firstIdx < 0 {
		return sr
	}

	sr.first = []int{firstIdx}
	sr.second = []int{secondIdx}
	for _, gi := range sr.group {
		if gi == firstIdx || gi == secondIdx {
			continue
		}
		d, ok := fs.sess.NormalDistance(fs.faces[firstIdx].ref, fs.faces[gi].ref)
		if !ok {
			continue
		}
		if geom.NearZero(d) {
			sr.first = append(sr.first, gi)
			continue
		}
		if geom.EqualWithin(d, sr.max) {
			sr.second = append(sr.second, gi)
		}
		sr.distances = appendDistinct(sr.distances, d)
	}
	return sr
}

// appendDistinct appends d unless a value within tolerance is already held.
func appendDistinct(values []float64, d float64) []float64 {
	for _, v := range values {
		if geom.EqualWithin(v, d) {
			return values
		}
	}
	return append(values, d)
}

// combineWall folds the per-scan minimums into one wall thickness. A body
// with no measurable parallel pair reports zero.
func combineWall(scans ...scanResult) float64 {
	var wall float64
	var has bool
	for _, sc := range scans {
		if sc.hasMin && (!has || sc.min < wall) {
			wall = sc.min
			has = true
		}
	}
	return wall
}
