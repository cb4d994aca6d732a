package variants

// Variant numbers pack a facing direction and an animation frame into
// one integer: direction in steps of 8 (right 0, up 8, left 16,
// down 24) plus a frame 0..6. Raw frame 7 is the sleep frame, which
// the game files store under the next direction over; it is reported
// as frame -1.

// Directions recognized by the codec, in variant-number units.
const (
	DirRight = 0
	DirUp    = 8
	DirLeft  = 16
	DirDown  = 24
)

// SplitVariant unpacks a variant number into (direction, animation).
// The sleeping animation is slightly inconvenient: a remainder of 7
// advances to the next direction and reports frame -1.
func SplitVariant(variant int) (dir, anim int) {
	dir, anim = variant/8, variant%8
	if anim == 7 {
		dir = (dir + 1) % 4
		anim = -1
	}
	return dir * 8, anim
}

// JoinVariant packs a direction and an animation frame back into a
// variant number, wrapping at 32: right+sleep (0, -1) lands on 31.
func JoinVariant(dir, anim int) int {
	return ((dir+anim)%32 + 32) % 32
}
