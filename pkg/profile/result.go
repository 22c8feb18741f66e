// Package profile classifies the cross-section of a solid body and
// measures its manufacturing metrics: principal dimensions, wall thickness,
// stock length, and the cut-length versus hole partition of its boundary
// edges. The engine only queries geometry through a brep.Session; it never
// constructs or repairs it.
package profile

import (
	"strconv"

	"github.com/casworth/xsect/pkg/brep"
	"github.com/casworth/xsect/pkg/geom"
)

// Shape enumerates the recognized cross-section shapes.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeRound
	ShapeSquare
	ShapeRectangle
	ShapeAngle
	ShapeChannel
)

func (s Shape) String() string {
	switch s {
	case ShapeRound:
		return "round"
	case ShapeSquare:
		return "square"
	case ShapeRectangle:
		return "rectangle"
	case ShapeAngle:
		return "angle"
	case ShapeChannel:
		return "channel"
	default:
		return "none"
	}
}

// Result is the classification output for one body. It is immutable once
// produced; HoleEdges and CutEdges are disjoint by edge identity and
// together cover the machining-relevant boundary.
type Result struct {
	Shape         Shape
	WallThickness float64

	// CrossSection is the section label: the diameter for round stock,
	// otherwise "max x min" of the two measured dimensions.
	CrossSection string

	MaterialLength float64
	MaterialStart  geom.Vec3
	MaterialEnd    geom.Vec3

	HoleEdges []brep.Edge
	CutEdges  []brep.Edge
	HoleCount int
}

// formatDim renders a dimension without trailing zeros: 2.0 -> "2".
func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sectionLabel renders two dimensions with the larger first.
func sectionLabel(a, b float64) string {
	if b > a {
		a, b = b, a
	}
	return formatDim(a) + " x " + formatDim(b)
}
