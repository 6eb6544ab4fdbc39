package geom

// Range is a half-open integer interval [Start, End). It is empty iff
// End <= Start. This is the classic "solid-segment" occlusion primitive:
// horizontal openness is a sorted, disjoint list of these over [0,320),
// vertical openness is one of these per column over [0,200).
type Range struct {
	Start, End int32
}

// Empty reports whether the range contains no columns/rows.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Intersect returns the overlap of a and b. The result may be empty.
func Intersect(a, b Range) Range {
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	return Range{Start: start, End: end}
}

// Shift translates r by d.
func (r Range) Shift(d int32) Range {
	return Range{Start: r.Start + d, End: r.End + d}
}
