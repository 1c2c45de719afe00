//go:build ebiten

package ui

import (
	"image/color"

	"rockwash/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type rowLoadProvider interface {
	RowLoads() []int
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim          core.Sim
	scale        int
	showRowLoads bool
	pixel        *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers from key presses.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRowLoads = !o.showRowLoads
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showRowLoads {
		if provider, ok := o.sim.(rowLoadProvider); ok {
			o.drawRowLoads(screen, provider.RowLoads(), size, scale)
		}
	}
}

// drawRowLoads paints one translucent bar per row, its length proportional
// to the row's share of the heaviest row's load.
func (o *Overlay) drawRowLoads(screen *ebiten.Image, loads []int, size core.Size, scale int) {
	peak := 0
	for _, l := range loads {
		peak = max(peak, l)
	}
	if peak == 0 {
		return
	}
	full := float64(size.W * scale)
	col := color.RGBA{R: 230, G: 90, B: 60, A: 110}
	for y, l := range loads {
		if l == 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(full*float64(l)/float64(peak), float64(scale))
		op.GeoM.Translate(0, float64(y*scale))
		op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
		screen.DrawImage(o.pixel, op)
	}
}
