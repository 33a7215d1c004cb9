// Package manifest describes the generated billboard sprites to the
// consuming scene graph: which file holds which silhouette, the world-space
// dimensions each sprite is stretched to, and the camera distance at which
// the consumer switches from the full 3D model to the sprite.
package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"billboardgen/pkg/icons"
)

const (
	// Filename is the manifest file written next to the generated PNGs.
	Filename = "billboards.toml"

	// World-space billboard dimensions, in meters.
	ShipBillboardMeters    = 50000.0
	MissileBillboardMeters = 30000.0

	// DefaultBillboardMeters is used for script-defined icons.
	DefaultBillboardMeters = 50000.0

	// SwitchDistanceMeters is the camera distance beyond which the consumer
	// shows the billboard instead of the 3D model (500 km).
	SwitchDistanceMeters = 500000.0
)

// Entry describes one billboard sprite.
type Entry struct {
	Name         string  `toml:"name"`
	File         string  `toml:"file"`
	WidthMeters  float64 `toml:"width_meters"`
	HeightMeters float64 `toml:"height_meters"`
}

// Manifest lists the generated billboards.
type Manifest struct {
	SwitchDistanceMeters float64 `toml:"switch_distance_meters"`
	Billboards           []Entry `toml:"billboard"`
}

// Default returns a manifest covering the two built-in icons.
func Default() Manifest {
	m := Manifest{SwitchDistanceMeters: SwitchDistanceMeters}
	m.Add("ship", icons.ShipFilename, ShipBillboardMeters, ShipBillboardMeters)
	m.Add("missile", icons.MissileFilename, MissileBillboardMeters, MissileBillboardMeters)
	return m
}

// Add appends an entry for a generated sprite.
func (m *Manifest) Add(name, file string, widthMeters, heightMeters float64) {
	m.Billboards = append(m.Billboards, Entry{
		Name:         name,
		File:         file,
		WidthMeters:  widthMeters,
		HeightMeters: heightMeters,
	})
}

// Write saves the manifest as TOML.
func Write(m Manifest, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return nil
}

// Read loads a manifest from a TOML file.
func Read(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	return m, nil
}
