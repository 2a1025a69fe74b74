package heartbloom

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxPitch keeps the orbit away from the poles where the up vector flips.
const maxPitch = math.Pi/2 - 0.01

// CameraConfig describes the perspective orbit camera.
type CameraConfig struct {
	// FOV is the vertical field of view in degrees.
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
	// Distance is the initial distance from the orbit center.
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	// OrbitSensitivity converts pointer pixels to radians.
	OrbitSensitivity float64 `yaml:"orbit_sensitivity"`
	// OrbitFrequency and OrbitDamping tune the spring that eases the view
	// toward the requested angles.
	OrbitFrequency float64 `yaml:"orbit_frequency"`
	OrbitDamping   float64 `yaml:"orbit_damping"`
	// TPS is the tick rate the spring is stepped at.
	TPS int `yaml:"tps"`
}

// DefaultCameraConfig matches a 75 degree camera placed 500 units in front
// of the heart.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		FOV:              75,
		Near:             0.1,
		Far:              2000,
		Distance:         500,
		MinDistance:      80,
		MaxDistance:      1800,
		OrbitSensitivity: 0.005,
		OrbitFrequency:   6,
		OrbitDamping:     1,
		TPS:              60,
	}
}

// Camera is a perspective camera orbiting the field origin. Resizing only
// changes the projection; it never touches the animation.
type Camera struct {
	cfg CameraConfig

	width, height int

	yaw, pitch             float64
	yawVel, pitchVel       float64
	targetYaw, targetPitch float64
	distance               float64

	spring harmonica.Spring
	zoom   *gween.Tween

	viewProj mgl64.Mat4
	dirty    bool
}

// NewCamera creates a camera for a width x height viewport.
func NewCamera(cfg CameraConfig, width, height int) *Camera {
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	c := &Camera{
		cfg:      cfg,
		distance: cfg.Distance,
		spring:   harmonica.NewSpring(harmonica.FPS(tps), cfg.OrbitFrequency, cfg.OrbitDamping),
		dirty:    true,
	}
	c.Resize(width, height)
	return c
}

// Resize updates the viewport size. Non-positive sizes are clamped to 1.
func (c *Camera) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.dirty = true
}

// Size returns the viewport size in pixels.
func (c *Camera) Size() (width, height int) {
	return c.width, c.height
}

// Aspect returns width / height.
func (c *Camera) Aspect() float64 {
	return float64(c.width) / float64(c.height)
}

// Orbit requests a rotation by a pointer delta in pixels. The view follows
// on subsequent Updates.
func (c *Camera) Orbit(dx, dy float64) {
	c.targetYaw -= dx * c.cfg.OrbitSensitivity
	c.targetPitch += dy * c.cfg.OrbitSensitivity
	c.targetPitch = math.Max(-maxPitch, math.Min(maxPitch, c.targetPitch))
}

// Angles returns the current yaw and pitch in radians.
func (c *Camera) Angles() (yaw, pitch float64) {
	return c.yaw, c.pitch
}

// Distance returns the current distance from the orbit center.
func (c *Camera) Distance() float64 {
	return c.distance
}

// ZoomTo animates the camera distance over duration seconds.
func (c *Camera) ZoomTo(distance float64, duration float32, easeFn ease.TweenFunc) {
	distance = c.clampDistance(distance)
	if duration <= 0 {
		c.zoom = nil
		c.distance = distance
		c.dirty = true
		return
	}
	c.zoom = gween.New(float32(c.distance), float32(distance), duration, easeFn)
}

// ZoomBy animates the distance to the current distance times factor.
func (c *Camera) ZoomBy(factor float64, duration float32, easeFn ease.TweenFunc) {
	c.ZoomTo(c.distance*factor, duration, easeFn)
}

func (c *Camera) clampDistance(d float64) float64 {
	if c.cfg.MinDistance > 0 && d < c.cfg.MinDistance {
		d = c.cfg.MinDistance
	}
	if c.cfg.MaxDistance > 0 && d > c.cfg.MaxDistance {
		d = c.cfg.MaxDistance
	}
	return d
}

// Update advances the orbit spring and any zoom animation.
func (c *Camera) Update(dt float32) {
	prevYaw, prevPitch, prevDist := c.yaw, c.pitch, c.distance

	c.yaw, c.yawVel = c.spring.Update(c.yaw, c.yawVel, c.targetYaw)
	c.pitch, c.pitchVel = c.spring.Update(c.pitch, c.pitchVel, c.targetPitch)

	if c.zoom != nil {
		val, done := c.zoom.Update(dt)
		c.distance = float64(val)
		if done {
			c.zoom = nil
		}
	}

	if c.yaw != prevYaw || c.pitch != prevPitch || c.distance != prevDist {
		c.dirty = true
	}
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() mgl64.Vec3 {
	sy, cy := math.Sincos(c.yaw)
	sp, cp := math.Sincos(c.pitch)
	return mgl64.Vec3{
		c.distance * cp * sy,
		c.distance * sp,
		c.distance * cp * cy,
	}
}

// ViewProjection returns the combined projection * view matrix.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	if c.dirty {
		proj := mgl64.Perspective(mgl64.DegToRad(c.cfg.FOV), c.Aspect(), c.cfg.Near, c.cfg.Far)
		view := mgl64.LookAtV(c.Eye(), mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
		c.viewProj = proj.Mul4(view)
		c.dirty = false
	}
	return c.viewProj
}

// Project maps a world-space point to screen pixels. w is the clip-space
// depth used for size attenuation. ok is false for points at or behind the
// near plane.
func (c *Camera) Project(x, y, z float64) (sx, sy, w float64, ok bool) {
	clip := c.ViewProjection().Mul4x1(mgl64.Vec4{x, y, z, 1})
	w = clip[3]
	if w <= c.cfg.Near {
		return 0, 0, w, false
	}
	nx := clip[0] / w
	ny := clip[1] / w
	sx = (nx + 1) * 0.5 * float64(c.width)
	sy = (1 - ny) * 0.5 * float64(c.height)
	return sx, sy, w, true
}
