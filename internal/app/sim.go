package app

import (
	"image/color"

	"rockwash/internal/core"
)

// Sim is a core.Sim the viewer can colour and reseed.
type Sim interface {
	core.Sim
	Palette() []color.RGBA
	Seed() int64
}
