package game

import "github.com/dawkrish/flappy/internal/mask"

// Collides is a mask collision: the boxes must intersect and at least one
// pixel must be solid in both sprites.
func Collides(a, b Sprite) bool {
	pa, pb := a.Pos(), b.Pos()
	return mask.Overlap(a.Mask(), pa.X, pa.Y, b.Mask(), pb.X, pb.Y)
}

// CollidesAny reports whether s collides with any of others, stopping at the
// first hit.
func CollidesAny[T Sprite](s Sprite, others []T) bool {
	for _, o := range others {
		if Collides(s, o) {
			return true
		}
	}
	return false
}
