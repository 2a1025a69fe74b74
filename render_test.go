package heartbloom

import (
	"math"
	"testing"
)

func singlePointSnapshot(x, y, z float64) Snapshot {
	return Snapshot{
		Positions: []float64{x, y, z},
		Colors:    []float64{1, 0.5, 0},
		Transform: identityFieldTransform,
	}
}

func TestBuildEmitsOneQuadPerPoint(t *testing.T) {
	r := NewPointRenderer(DefaultRenderConfig())
	r.build(singlePointSnapshot(0, 0, 0), newTestCamera())

	if len(r.verts) != 4 || len(r.inds) != 6 {
		t.Fatalf("verts/inds = %d/%d, want 4/6", len(r.verts), len(r.inds))
	}
	if r.Drawn() != 1 {
		t.Errorf("Drawn = %d, want 1", r.Drawn())
	}
	want := []uint32{0, 1, 2, 1, 3, 2}
	for i, idx := range r.inds {
		if idx != want[i] {
			t.Errorf("inds[%d] = %d, want %d", i, idx, want[i])
		}
	}
}

func TestBuildClampsPointSize(t *testing.T) {
	// 1.5 * 300 / 500 = 0.9 px, below the 1 px minimum.
	r := NewPointRenderer(DefaultRenderConfig())
	r.build(singlePointSnapshot(0, 0, 0), newTestCamera())

	v0, v3 := r.verts[0], r.verts[3]
	if math.Abs(float64(v0.DstX)-399.5) > 1e-3 || math.Abs(float64(v0.DstY)-299.5) > 1e-3 {
		t.Errorf("top-left = (%v, %v), want (399.5, 299.5)", v0.DstX, v0.DstY)
	}
	if math.Abs(float64(v3.DstX-v0.DstX)-1) > 1e-3 {
		t.Errorf("quad width = %v, want 1", v3.DstX-v0.DstX)
	}

	cfg := DefaultRenderConfig()
	cfg.PointSize = 100
	r = NewPointRenderer(cfg)
	r.build(singlePointSnapshot(0, 0, 0), newTestCamera())
	if w := r.verts[3].DstX - r.verts[0].DstX; math.Abs(float64(w)-cfg.MaxPointSize) > 1e-3 {
		t.Errorf("quad width = %v, want max %v", w, cfg.MaxPointSize)
	}
}

func TestBuildPremultipliesColor(t *testing.T) {
	r := NewPointRenderer(DefaultRenderConfig())
	r.build(singlePointSnapshot(0, 0, 0), newTestCamera())
	for i, v := range r.verts {
		if math.Abs(float64(v.ColorR)-0.9) > 1e-6 || math.Abs(float64(v.ColorG)-0.45) > 1e-6 ||
			v.ColorB != 0 || math.Abs(float64(v.ColorA)-0.9) > 1e-6 {
			t.Errorf("vertex %d color = (%v, %v, %v, %v), want (0.9, 0.45, 0, 0.9)",
				i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestBuildSkipsHiddenPoints(t *testing.T) {
	r := NewPointRenderer(DefaultRenderConfig())
	cam := newTestCamera()
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"behind camera", 0, 0, 800},
		{"off-screen right", 5000, 0, 0},
		{"off-screen above", 0, 5000, 0},
	}
	for _, tt := range tests {
		r.build(singlePointSnapshot(tt.x, tt.y, tt.z), cam)
		if r.Drawn() != 0 || len(r.verts) != 0 {
			t.Errorf("%s: drew %d points", tt.name, r.Drawn())
		}
	}
}

func TestBuildAppliesFieldTransform(t *testing.T) {
	r := NewPointRenderer(DefaultRenderConfig())
	cam := newTestCamera()
	snap := singlePointSnapshot(50, 0, 0)
	r.build(snap, cam)
	plainX := r.verts[0].DstX

	snap.Transform = Transform{RotationY: math.Pi, Scale: 1}
	r.build(snap, cam)
	if r.verts[0].DstX >= 400 || plainX <= 400 {
		t.Errorf("rotation by pi should mirror x: before %v, after %v", plainX, r.verts[0].DstX)
	}
}

func TestBuildReusesBuffers(t *testing.T) {
	e := newTestEngine(t, 500, 3, nil)
	r := NewPointRenderer(DefaultRenderConfig())
	cam := newTestCamera()
	r.build(e.Snapshot(), cam)
	e.Tick(0.005)

	allocs := testing.AllocsPerRun(20, func() {
		r.build(e.Snapshot(), cam)
	})
	if allocs != 0 {
		t.Errorf("build allocated %v times per run, want 0", allocs)
	}
}

func TestNewPointRendererUnknownBlend(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Blend = "multiply"
	if r := NewPointRenderer(cfg); r.blend != BlendNormal {
		t.Errorf("blend = %v, want BlendNormal", r.blend)
	}
}

func BenchmarkBuild_40000(b *testing.B) {
	e := newTestEngine(b, 40000, 1, nil)
	r := NewPointRenderer(DefaultRenderConfig())
	cam := NewCamera(DefaultCameraConfig(), 1280, 720)
	snap := e.Snapshot()
	b.ReportAllocs()
	for b.Loop() {
		r.build(snap, cam)
	}
}
