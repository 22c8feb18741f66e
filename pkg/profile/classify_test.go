package profile

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/casworth/xsect/pkg/brep/mem"
	"github.com/casworth/xsect/pkg/geom"
)

func approx(t *testing.T, label string, got, want float64) {
	t.Helper()
	if !geom.EqualWithin(got, want) {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func TestClassifyRectTube(t *testing.T) {
	sess := mem.NewSession()
	res := NewFaceSet(sess, mem.RectTube("rail", 4, 2, 0.125, 12)).Classify()

	if res.Shape != ShapeRectangle {
		t.Fatalf("shape = %s, want rectangle", res.Shape)
	}
	if res.CrossSection != "4 x 2" {
		t.Errorf("cross section = %q, want %q", res.CrossSection, "4 x 2")
	}
	approx(t, "wall thickness", res.WallThickness, 0.125)
	approx(t, "material length", res.MaterialLength, 12)
	if res.HoleCount != 0 {
		t.Errorf("hole count = %d, want 0", res.HoleCount)
	}

	// The cut boundary is both end perimeters: four edges each.
	if len(res.CutEdges) != 8 {
		t.Fatalf("cut edges = %d, want 8", len(res.CutEdges))
	}
	approx(t, "cut length", sess.TotalLength(res.CutEdges), 2*2*(4+2))
}

func TestClassifySquareTube(t *testing.T) {
	sess := mem.NewSession()
	res := NewFaceSet(sess, mem.SquareTube("post", 2, 0.25, 8)).Classify()

	if res.Shape != ShapeSquare {
		t.Fatalf("shape = %s, want square", res.Shape)
	}
	if res.CrossSection != "2 x 2" {
		t.Errorf("cross section = %q, want %q", res.CrossSection, "2 x 2")
	}
	approx(t, "wall thickness", res.WallThickness, 0.25)
	approx(t, "material length", res.MaterialLength, 8)
}

func TestClassifyAngle(t *testing.T) {
	sess := mem.NewSession()
	res := NewFaceSet(sess, mem.Angle("gusset", 3, 2, 0.25, 6)).Classify()

	if res.Shape != ShapeAngle {
		t.Fatalf("shape = %s, want angle", res.Shape)
	}
	if res.CrossSection != "3 x 2" {
		t.Errorf("cross section = %q, want %q", res.CrossSection, "3 x 2")
	}
	approx(t, "wall thickness", res.WallThickness, 0.25)
	approx(t, "material length", res.MaterialLength, 6)
	if res.HoleCount != 0 {
		t.Errorf("hole count = %d, want 0", res.HoleCount)
	}
}

func TestClassifyChannel(t *testing.T) {
	sess := mem.NewSession()
	res := NewFaceSet(sess, mem.Channel("track", 3, 1.5, 0.25, 24)).Classify()

	if res.Shape != ShapeChannel {
		t.Fatalf("shape = %s, want channel", res.Shape)
	}
	if res.CrossSection != "3 x 1.5" {
		t.Errorf("cross section = %q, want %q", res.CrossSection, "3 x 1.5")
	}
	approx(t, "wall thickness", res.WallThickness, 0.25)
	approx(t, "material length", res.MaterialLength, 24)
}

func TestClassifyRoundBar(t *testing.T) {
	sess := mem.NewSession()
	res := NewFaceSet(sess, mem.RoundBar("pin", 2, 10)).Classify()

	if res.Shape != ShapeRound {
		t.Fatalf("shape = %s, want round", res.Shape)
	}
	if res.CrossSection != "2" {
		t.Errorf("cross section = %q, want %q", res.CrossSection, "2")
	}
	// Solid stock has no second coaxial face to measure against.
	approx(t, "wall thickness", res.WallThickness, 0)
	approx(t, "material length", res.MaterialLength, 10)
	if res.HoleCount != 0 {
		t.Errorf("hole count = %d, want 0", res.HoleCount)
	}
	if len(res.CutEdges) != 2 {
		t.Errorf("cut edges = %d, want 2 rim circles", len(res.CutEdges))
	}
}

func TestClassifyRoundTube(t *testing.T) {
	sess := mem.NewSession()
	res := NewFaceSet(sess, mem.RoundTube("pipe", 2, 0.25, 10)).Classify()

	if res.Shape != ShapeRound {
		t.Fatalf("shape = %s, want round", res.Shape)
	}
	if res.CrossSection != "2" {
		t.Errorf("cross section = %q, want %q", res.CrossSection, "2")
	}
	approx(t, "wall thickness", res.WallThickness, 0.25)
	approx(t, "material length", res.MaterialLength, 10)
	if res.HoleCount != 0 {
		t.Errorf("hole count = %d, want 0", res.HoleCount)
	}
}

func TestClassifyDrilledRoundTube(t *testing.T) {
	sess := mem.NewSession()
	body := mem.RoundTube("bushing", 2, 0.25, 10)
	mem.Drill(body, 0.5, 5, 0.25)

	res := NewFaceSet(sess, body).Classify()

	if res.Shape != ShapeRound {
		t.Fatalf("shape = %s, want round", res.Shape)
	}
	approx(t, "wall thickness", res.WallThickness, 0.25)
	if res.HoleCount != 1 {
		t.Fatalf("hole count = %d, want 1", res.HoleCount)
	}
	if len(res.HoleEdges) != 1 {
		t.Fatalf("hole edges = %d, want the single rim circle", len(res.HoleEdges))
	}
	if len(res.CutEdges) != 2 {
		t.Fatalf("cut edges = %d, want 2 end rims", len(res.CutEdges))
	}
}

func TestClassifyDrilledRectTube(t *testing.T) {
	sess := mem.NewSession()
	body := mem.RectTube("rail", 4, 2, 0.125, 12)
	mem.Drill(body, 0.5, 6, 0.125)

	res := NewFaceSet(sess, body).Classify()

	if res.Shape != ShapeRectangle {
		t.Fatalf("shape = %s, want rectangle", res.Shape)
	}
	if res.CrossSection != "4 x 2" {
		t.Errorf("cross section = %q, want %q", res.CrossSection, "4 x 2")
	}
	if res.HoleCount != 1 {
		t.Fatalf("hole count = %d, want 1", res.HoleCount)
	}
	if len(res.CutEdges) != 8 {
		t.Errorf("cut edges = %d, want 8", len(res.CutEdges))
	}
}

// Hole edges and cut edges partition the machining boundary: no edge may
// appear on both sides, by identity.
func TestHoleAndCutEdgesDisjoint(t *testing.T) {
	sess := mem.NewSession()
	body := mem.RectTube("rail", 4, 2, 0.125, 12)
	mem.Drill(body, 0.5, 6, 0.125)

	res := NewFaceSet(sess, body).Classify()
	if len(res.HoleEdges) == 0 {
		t.Fatal("expected hole edges")
	}
	for i, he := range res.HoleEdges {
		if containsEdge(sess, res.CutEdges, he) {
			t.Errorf("hole edge %d also reported as cut edge", i)
		}
	}
}

// Congruent end caps tie the maximum area within tolerance; all of them
// must survive the scan.
func TestMaxAreaTiePreserved(t *testing.T) {
	sess := mem.NewSession()
	// Caps of a short fat cylinder out-measure the wall exactly.
	fs := NewFaceSet(sess, mem.RoundBar("disc", 4, 0.5))

	if fs.Len() != 3 {
		t.Fatalf("faces = %d, want 3", fs.Len())
	}
	if diff := cmp.Diff([]int{1, 2}, fs.MaxAreaFaceIndices()); diff != "" {
		t.Errorf("max-area indices mismatch (-want +got):\n%s", diff)
	}
}

// classifySummary is the comparable projection of a Result used by the
// repeat-classification test; edge handles are compared separately by
// identity.
type classifySummary struct {
	Shape     Shape
	Section   string
	Wall      float64
	Length    float64
	Holes     int
	CutEdges  int
	HoleEdges int
}

func summarize(r Result) classifySummary {
	return classifySummary{
		Shape:     r.Shape,
		Section:   r.CrossSection,
		Wall:      r.WallThickness,
		Length:    r.MaterialLength,
		Holes:     r.HoleCount,
		CutEdges:  len(r.CutEdges),
		HoleEdges: len(r.HoleEdges),
	}
}

func TestClassifyRepeatable(t *testing.T) {
	sess := mem.NewSession()
	body := mem.RectTube("rail", 4, 2, 0.125, 12)
	mem.Drill(body, 0.5, 6, 0.125)

	first := NewFaceSet(sess, body).Classify()
	second := NewFaceSet(sess, body).Classify()

	if diff := cmp.Diff(summarize(first), summarize(second)); diff != "" {
		t.Fatalf("repeat classification diverged (-first +second):\n%s", diff)
	}
	for i := range first.CutEdges {
		if !sess.IsSame(first.CutEdges[i], second.CutEdges[i]) {
			t.Errorf("cut edge %d differs between runs", i)
		}
	}
	for i := range first.HoleEdges {
		if !sess.IsSame(first.HoleEdges[i], second.HoleEdges[i]) {
			t.Errorf("hole edge %d differs between runs", i)
		}
	}
}
