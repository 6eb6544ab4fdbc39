package raster

import "github.com/wadview/render/internal/geom"

// ClipState is a value snapshot of a State's full openness: the horizontal
// range list and all 320 vertical ranges. It is cloned on GetClipState, not
// borrowed, so later mutation of the owning State cannot observe or affect
// a snapshot taken earlier.
type ClipState struct {
	hOpen []geom.Range
	vOpen [ScreenWidth]geom.Range
}

// GetClipState captures the current openness as a value snapshot, for
// later replay via SetClipState (used by the frame driver's deferred
// transparent-middle pass: each deferred wall must restore the occlusion
// state exactly as it was the moment its owning portal was first drawn).
func (s *State) GetClipState() ClipState {
	cp := make([]geom.Range, len(s.hOpen))
	copy(cp, s.hOpen)
	return ClipState{hOpen: cp, vOpen: s.vOpen}
}

// SetClipState restores a previously captured snapshot, replacing both the
// horizontal range list and all 320 vertical ranges.
func (s *State) SetClipState(cs ClipState) {
	s.hOpen = append([]geom.Range(nil), cs.hOpen...)
	s.vOpen = cs.vOpen
}
