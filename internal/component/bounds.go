package component

// Bounds is the engagement ring of an AI tank: it tries to sit at MinRadius
// from its target and only engages while the target is within MaxRadius.
type Bounds struct {
	MinRadius float64
	MaxRadius float64
}

// NewBounds builds the ring from the ideal and maximum ranges. Negative
// ranges are treated as zero and MaxRadius never drops below MinRadius.
func NewBounds(idealRange, maxRange float64) Bounds {
	if idealRange < 0 {
		idealRange = 0
	}
	if maxRange < idealRange {
		maxRange = idealRange
	}
	return Bounds{MinRadius: idealRange, MaxRadius: maxRange}
}

// InRange reports whether dist lies inside the engagement limit.
func (b Bounds) InRange(dist float64) bool {
	return dist <= b.MaxRadius
}
