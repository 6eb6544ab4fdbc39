package render

import (
	"errors"
	"fmt"
)

// Sentinel errors for data problems in the map itself: these are
// programming/data errors, not recoverable within a frame.
var (
	// ErrNoSpawnThing is returned by SpawnCamera when the map's Things
	// slice has no thing of type id 1.
	ErrNoSpawnThing = errors.New("render: map has no spawn thing (type id 1)")

	// ErrPointLocationFailed is returned when BSP point-location cannot
	// find a subsector seg with a front sidedef to resolve the camera's
	// floor height from.
	ErrPointLocationFailed = errors.New("render: point location found no front sidedef")

	// ErrBadFramebuffer is returned when the caller's framebuffer is not
	// exactly 320*200 bytes.
	ErrBadFramebuffer = errors.New("render: framebuffer must be 320x200 bytes")

	// ErrBadPalette is returned when the caller's palette buffer is not
	// exactly 768 bytes.
	ErrBadPalette = errors.New("render: palette buffer must be 768 bytes")
)

// MalformedNodeError is returned when a BSP node references an out-of-range
// child index, which indicates a corrupt or malformed map.
type MalformedNodeError struct {
	NodeIndex  int
	ChildIndex int
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("render: node %d references out-of-range child %d", e.NodeIndex, e.ChildIndex)
}
