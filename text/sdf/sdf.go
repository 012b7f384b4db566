package sdf

import (
	"math"
	"sync"

	"github.com/gogpu/glyphs/text"
)

// inf stands in for an unreachable squared distance.
const inf = 1e20

// Config controls the encoding of distances.
type Config struct {
	// Radius is the distance in pixels over which the field ramps from
	// the edge to zero. Defaults to text.DistanceFieldPad.
	Radius float64

	// Cutoff shifts the edge within the byte range. Defaults to 0.25.
	Cutoff float64
}

// DefaultConfig returns the configuration used by Transform.
func DefaultConfig() Config {
	return Config{
		Radius: text.DistanceFieldPad,
		Cutoff: 0.25,
	}
}

// Generator computes distance fields. Its scratch buffers are pooled, so
// a Generator is safe for concurrent use.
type Generator struct {
	config Config
	pool   sync.Pool
}

// NewGenerator creates a Generator. Zero fields of config take defaults.
func NewGenerator(config Config) *Generator {
	def := DefaultConfig()
	if config.Radius <= 0 {
		config.Radius = def.Radius
	}
	if config.Cutoff == 0 {
		config.Cutoff = def.Cutoff
	}
	return &Generator{
		config: config,
		pool: sync.Pool{
			New: func() any { return &workspace{} },
		},
	}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

var defaultGenerator = NewGenerator(DefaultConfig())

// Transform is a text.DistanceTransform using DefaultConfig.
func Transform(dst, src []byte, width, height int) bool {
	return defaultGenerator.Transform(dst, src, width, height)
}

// Transform fills dst with the distance field of src.
//
// src is a (width+2) x (height+2) padded mask and dst a
// (width+2*text.DistanceFieldPad) x (height+2*text.DistanceFieldPad) field.
// It reports false without touching dst when the lengths do not match.
func (g *Generator) Transform(dst, src []byte, width, height int) bool {
	if width < 0 || height < 0 {
		return false
	}
	sw, sh := width+2, height+2
	dw, dh := width+2*text.DistanceFieldPad, height+2*text.DistanceFieldPad
	if len(src) != sw*sh || len(dst) != dw*dh {
		return false
	}

	ws := g.pool.Get().(*workspace)
	defer g.pool.Put(ws)
	ws.reset(dw, dh)

	// Output pixel (x, y) samples padded pixel (x-off, y-off).
	off := text.DistanceFieldPad - 1
	for y := 0; y < dh; y++ {
		sy := y - off
		for x := 0; x < dw; x++ {
			sx := x - off
			var a float64
			if sx >= 0 && sx < sw && sy >= 0 && sy < sh {
				a = float64(src[sy*sw+sx]) / 255
			}
			i := y*dw + x
			switch {
			case a >= 1:
				ws.outer[i], ws.inner[i] = 0, inf
			case a <= 0:
				ws.outer[i], ws.inner[i] = inf, 0
			default:
				d := math.Max(0, 0.5-a)
				ws.outer[i] = d * d
				d = math.Max(0, a-0.5)
				ws.inner[i] = d * d
			}
		}
	}

	ws.edt(ws.outer, dw, dh)
	ws.edt(ws.inner, dw, dh)

	for i := range dst {
		d := math.Sqrt(ws.outer[i]) - math.Sqrt(ws.inner[i])
		v := math.Round(255 - 255*(d/g.config.Radius+g.config.Cutoff))
		dst[i] = byte(math.Max(0, math.Min(255, v)))
	}
	return true
}

// workspace holds the grids and 1D scratch of one transform.
type workspace struct {
	outer, inner []float64
	f, z         []float64
	v            []int
}

func (ws *workspace) reset(w, h int) {
	n := w * h
	if cap(ws.outer) < n {
		ws.outer = make([]float64, n)
		ws.inner = make([]float64, n)
	}
	ws.outer = ws.outer[:n]
	ws.inner = ws.inner[:n]

	m := max(w, h)
	if cap(ws.f) < m+1 {
		ws.f = make([]float64, m+1)
		ws.z = make([]float64, m+1)
		ws.v = make([]int, m+1)
	}
}

// edt runs the squared Euclidean distance transform over a w x h grid in
// place, columns first and then rows.
func (ws *workspace) edt(grid []float64, w, h int) {
	for x := 0; x < w; x++ {
		ws.edt1d(grid, x, w, h)
	}
	for y := 0; y < h; y++ {
		ws.edt1d(grid, y*w, 1, w)
	}
}

// edt1d transforms n samples of grid starting at offset with the given
// stride, using the lower envelope of parabolas.
func (ws *workspace) edt1d(grid []float64, offset, stride, n int) {
	f, z, v := ws.f, ws.z, ws.v
	for q := 0; q < n; q++ {
		f[q] = grid[offset+q*stride]
	}

	v[0] = 0
	z[0] = -inf
	z[1] = inf
	k := 0
	for q := 1; q < n; q++ {
		fq := f[q] + float64(q*q)
		s := (fq - f[v[k]] - float64(v[k]*v[k])) / float64(2*(q-v[k]))
		for s <= z[k] {
			k--
			s = (fq - f[v[k]] - float64(v[k]*v[k])) / float64(2*(q-v[k]))
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = inf
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		r := v[k]
		grid[offset+q*stride] = f[r] + float64((q-r)*(q-r))
	}
}
