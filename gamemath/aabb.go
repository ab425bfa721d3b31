package gamemath

import "math"

// Side identifies which face of the second rectangle the first rectangle
// struck in an AABB overlap test.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
	// SideInside means the first rectangle's span is degenerate on both axes
	// (it neither crosses a left/right nor a top/bottom face), e.g. its box
	// sits entirely inside the second rectangle.
	SideInside
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideInside:
		return "inside"
	}
	return "unknown"
}

// Collide performs an axis-aligned bounding-box overlap test between two
// rectangles, each given as a center point and full (width, height) extents.
// It reports which face of b was struck by a: a rectangle approaching from
// above strikes SideTop, from the left SideLeft, and so on.
//
// When both axes overlap, the struck face is the one with the smaller
// relative penetration (overlap depth divided by b's extent on that axis);
// equal penetrations report the x-axis face. Pure function, no side effects.
func Collide(aPos, aSize, bPos, bSize Vec2) (Side, bool) {
	aMinX, aMaxX := aPos.X-aSize.X/2, aPos.X+aSize.X/2
	aMinY, aMaxY := aPos.Y-aSize.Y/2, aPos.Y+aSize.Y/2
	bMinX, bMaxX := bPos.X-bSize.X/2, bPos.X+bSize.X/2
	bMinY, bMaxY := bPos.Y-bSize.Y/2, bPos.Y+bSize.Y/2

	if aMinX >= bMaxX || aMaxX <= bMinX || aMinY >= bMaxY || aMaxY <= bMinY {
		return SideInside, false
	}

	// Classify each axis independently. An axis where a's span does not
	// cross exactly one of b's faces contributes no candidate.
	xSide, xPen := SideInside, math.Inf(1)
	switch {
	case aMinX < bMinX && aMaxX > bMinX && aMaxX < bMaxX:
		xSide, xPen = SideLeft, (aMaxX-bMinX)/bSize.X
	case aMinX > bMinX && aMinX < bMaxX && aMaxX > bMaxX:
		xSide, xPen = SideRight, (bMaxX-aMinX)/bSize.X
	}

	ySide, yPen := SideInside, math.Inf(1)
	switch {
	case aMinY < bMinY && aMaxY > bMinY && aMaxY < bMaxY:
		ySide, yPen = SideBottom, (aMaxY-bMinY)/bSize.Y
	case aMinY > bMinY && aMinY < bMaxY && aMaxY > bMaxY:
		ySide, yPen = SideTop, (bMaxY-aMinY)/bSize.Y
	}

	if xSide == SideInside && ySide == SideInside {
		return SideInside, true
	}
	if yPen < xPen {
		return ySide, true
	}
	return xSide, true
}
