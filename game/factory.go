package game

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/outline"
)

// ErrUnknownShape is returned for a shape name with no preset.
var ErrUnknownShape = errors.New("unknown shape")

// Shape names in key order (keys 1-5).
var ShapeNames = []string{"ring", "square", "star", "rose", "heart"}

// ShapeOutline returns the anchor set for a named preset, or nil for the
// free ring. radius is the shape's outer radius.
func ShapeOutline(name string, center r2.Vec, radius float64, n int) ([]r2.Vec, error) {
	var anchors []r2.Vec
	switch name {
	case "ring":
		return nil, nil
	case "square":
		anchors = outline.Polygon(center, radius, 4, n)
	case "star":
		anchors = outline.Star(center, radius, radius*0.5, 5, n)
	case "rose":
		anchors = outline.Rose(center, radius, 4, 0.55, n)
	case "heart":
		anchors = outline.Heart(center, radius*2, n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return anchors, nil
}

// shapeIndex returns the position of name in ShapeNames, or -1.
func shapeIndex(name string) int {
	for i, s := range ShapeNames {
		if s == name {
			return i
		}
	}
	return -1
}
