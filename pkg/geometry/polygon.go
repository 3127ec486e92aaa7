// Package geometry validates GeoJSON-like polygon rings for beds.
package geometry

import "florisys/pkg/apperr"

// Ring is an ordered sequence of [longitude, latitude] pairs.
type Ring [][]float64

// Polygon is a list of rings; the first ring is the outer boundary.
type Polygon []Ring

// ValidateAndClose checks that the outer ring exists and has at least 4
// vertices before closure, then closes it if the first and last vertices
// differ. Inner rings (holes) pass through unvalidated.
func ValidateAndClose(p Polygon) (Polygon, error) {
	if len(p) == 0 || len(p[0]) < 4 {
		return nil, apperr.ErrInvalidGeometry
	}
	p[0] = closeRing(p[0])
	return p, nil
}

func closeRing(r Ring) Ring {
	if len(r) == 0 || samePoint(r[0], r[len(r)-1]) {
		return r
	}
	return append(r, r[0])
}

func samePoint(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
