package main

import (
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// cameraPreset overrides the demo's default camera pose from a TOML file,
// e.g.:
//
//	cx = 0.0
//	cy = 0.0
//	dx = -1.0
//	dy = 0.0
type cameraPreset struct {
	CX float64 `toml:"cx"`
	CY float64 `toml:"cy"`
	DX float64 `toml:"dx"`
	DY float64 `toml:"dy"`
}

func readCameraPreset(path string) *cameraPreset {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		log.Fatalf("camera preset %q: %v", path, err)
	}

	var preset cameraPreset
	if _, err := toml.DecodeFile(path, &preset); err != nil {
		log.Fatalf("couldn't decode camera preset %q: %v", path, err)
	}
	return &preset
}
