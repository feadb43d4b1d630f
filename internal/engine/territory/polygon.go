package territory

import "github.com/Faultbox/isoterra/pkg/math"

// Polygon is an ordered ring of points on the horizontal plane; Y holds world Z.
// The closing edge from the last point back to the first is implicit.
// Simplicity is assumed, not checked.
type Polygon []math.Vec2

// Contains reports whether p is inside the polygon under the even-odd rule:
// a ray from p toward +X flips the result at every edge that straddles p.Y.
func (poly Polygon) Contains(p math.Vec2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
