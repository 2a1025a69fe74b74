package heartbloom

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderConfig controls how points are drawn.
type RenderConfig struct {
	// PointSize is the world-space point size; screen size is attenuated by
	// distance.
	PointSize    float64 `yaml:"point_size"`
	MinPointSize float64 `yaml:"min_point_size"`
	MaxPointSize float64 `yaml:"max_point_size"`
	// Opacity multiplies every point's alpha.
	Opacity float64 `yaml:"opacity"`
	// Blend is "normal", "add" or "screen".
	Blend string `yaml:"blend"`
}

// DefaultRenderConfig returns small, slightly translucent points.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		PointSize:    1.5,
		MinPointSize: 1,
		MaxPointSize: 8,
		Opacity:      0.9,
		Blend:        "normal",
	}
}

// PointRenderer draws a Snapshot as screen-aligned quads in a single
// DrawTriangles32 call. Vertex and index buffers are reused across frames.
type PointRenderer struct {
	cfg   RenderConfig
	blend BlendMode
	pixel *ebiten.Image

	verts []ebiten.Vertex
	inds  []uint32
	drawn int
	stats frameStats
}

// NewPointRenderer creates a renderer. Unknown blend names fall back to
// normal blending.
func NewPointRenderer(cfg RenderConfig) *PointRenderer {
	blend, _ := ParseBlendMode(cfg.Blend)
	return &PointRenderer{cfg: cfg, blend: blend}
}

// Drawn returns the number of points submitted on the last Draw.
func (r *PointRenderer) Drawn() int {
	return r.drawn
}

// Draw renders snap onto dst through cam. The snapshot is only read.
func (r *PointRenderer) Draw(dst *ebiten.Image, snap Snapshot, cam *Camera) {
	start := time.Now()
	r.build(snap, cam)
	built := time.Now()
	r.stats = frameStats{buildTime: built.Sub(start), drawn: r.drawn, total: snap.Len()}
	if len(r.verts) == 0 {
		return
	}
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}

	var op ebiten.DrawTrianglesOptions
	op.Blend = r.blend.EbitenBlend()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles32(r.verts, r.inds, r.pixel, &op)
	r.stats.submitTime = time.Since(built)
}

// build projects every point and fills the vertex and index buffers.
func (r *PointRenderer) build(snap Snapshot, cam *Camera) {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	r.drawn = 0

	mvp := cam.ViewProjection().Mul4(snap.Transform.Matrix())
	vw, vh := cam.Size()
	width, height := float64(vw), float64(vh)
	halfH := height / 2
	near := cam.cfg.Near
	alpha := float32(r.cfg.Opacity)

	pos := snap.Positions
	col := snap.Colors
	for i := 0; i+2 < len(pos); i += 3 {
		clip := mvp.Mul4x1(mgl64.Vec4{pos[i], pos[i+1], pos[i+2], 1})
		w := clip[3]
		if w <= near {
			continue
		}
		sx := (clip[0]/w + 1) * 0.5 * width
		sy := (1 - clip[1]/w) * halfH

		size := r.cfg.PointSize * halfH / w
		if size < r.cfg.MinPointSize {
			size = r.cfg.MinPointSize
		}
		if r.cfg.MaxPointSize > 0 && size > r.cfg.MaxPointSize {
			size = r.cfg.MaxPointSize
		}
		half := size / 2
		if sx+half < 0 || sy+half < 0 || sx-half > width || sy-half > height {
			continue
		}

		// Premultiplied color.
		cr := float32(col[i]) * alpha
		cg := float32(col[i+1]) * alpha
		cb := float32(col[i+2]) * alpha

		x0, y0 := float32(sx-half), float32(sy-half)
		x1, y1 := float32(sx+half), float32(sy+half)
		base := uint32(len(r.verts))
		r.verts = append(r.verts,
			ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: alpha},
			ebiten.Vertex{DstX: x1, DstY: y0, SrcX: 1, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: alpha},
			ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 0, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: alpha},
			ebiten.Vertex{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: alpha},
		)
		r.inds = append(r.inds,
			base+0, base+1, base+2,
			base+1, base+3, base+2,
		)
		r.drawn++
	}
}
