package genart

import (
	"context"

	"github.com/gogpu/genart/internal/parallel"
)

// SoftwareRenderer evaluates channel trees for every pixel on the CPU.
// Rows are split into bands that a worker pool renders concurrently; each
// band writes only its own rows of the pixmap.
type SoftwareRenderer struct {
	pool *parallel.WorkerPool
}

// NewSoftwareRenderer creates a software renderer with the given number of
// workers. If workers <= 0, GOMAXPROCS is used.
func NewSoftwareRenderer(workers int) *SoftwareRenderer {
	return &SoftwareRenderer{pool: parallel.NewWorkerPool(workers)}
}

// Workers returns the number of render workers.
func (r *SoftwareRenderer) Workers() int {
	return r.pool.Workers()
}

// Render fills pm with the artwork for ch at time t. It returns ctx.Err()
// if the context is canceled before every band has been rendered; bands
// that had already started are completed.
func (r *SoftwareRenderer) Render(ctx context.Context, ch Channels, pm *Pixmap, t float32) error {
	bands := parallel.BandsFor(pm.Height(), r.pool.Workers())
	work := make([]func(), len(bands))
	for i, band := range bands {
		work[i] = func() {
			renderRows(ch, pm, band.Y0, band.Y1, t)
		}
	}
	Logger().Debug("software render",
		"width", pm.Width(), "height", pm.Height(), "bands", len(bands), "workers", r.pool.Workers())
	return r.pool.Run(ctx, work)
}

// Close stops the worker pool.
func (r *SoftwareRenderer) Close() {
	r.pool.Close()
}

// RenderPixmap fills pm with the artwork for ch at time t on the calling
// goroutine.
func RenderPixmap(ch Channels, pm *Pixmap, t float32) {
	renderRows(ch, pm, 0, pm.Height(), t)
}

// renderRows renders rows [y0, y1). Pixel (px, py) samples
// x = px/width*2-1 and y = py/height*2-1, row 0 at the top.
func renderRows(ch Channels, pm *Pixmap, y0, y1 int, t float32) {
	w, h := float32(pm.Width()), float32(pm.Height())
	out := pm.Rows(y0, y1)
	i := 0
	for py := y0; py < y1; py++ {
		y := float32(py)/h*2 - 1
		for px := range pm.Width() {
			x := float32(px)/w*2 - 1
			r, g, b := ch.Eval(x, y, t)
			out[i+0] = Quantize(r)
			out[i+1] = Quantize(g)
			out[i+2] = Quantize(b)
			out[i+3] = 255
			i += 4
		}
	}
}
