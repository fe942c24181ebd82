// Package camera provides a 2D follow camera for the level view.
package camera

import "github.com/chewxy/math32"

// Camera controls the viewport into the level.
// It trails a target and never shows space outside the level.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom        float32
	DefaultZoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// World dimensions (level bounds)
	WorldW, WorldH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world at the given zoom.
func New(viewportW, viewportH, worldW, worldH, zoom float32) *Camera {
	c := &Camera{
		X:           worldW / 2,
		Y:           worldH / 2,
		ViewportW:   viewportW,
		ViewportH:   viewportH,
		WorldW:      worldW,
		WorldH:      worldH,
		MaxZoom:     8.0,
		DefaultZoom: zoom,
	}
	c.updateMinZoom()
	c.SetZoom(zoom)
	return c
}

// updateMinZoom keeps the visible area no larger than the world.
// At zoom Z the visible world area is (viewportW/Z, viewportH/Z).
func (c *Camera) updateMinZoom() {
	c.MinZoom = math32.Max(c.ViewportW/c.WorldW, c.ViewportH/c.WorldH)
	if c.MaxZoom < c.MinZoom {
		c.MaxZoom = c.MinZoom
	}
}

// Follow moves the camera toward (tx, ty), closing the fraction
// 1-exp(-rate*dt) of the remaining distance. The result is frame-rate independent.
func (c *Camera) Follow(tx, ty, dt, rate float32) {
	alpha := 1 - math32.Exp(-rate*dt)
	c.X += (tx - c.X) * alpha
	c.Y += (ty - c.Y) * alpha
	c.clampToWorld()
}

// SnapTo centers the camera on (tx, ty) immediately.
func (c *Camera) SnapTo(tx, ty float32) {
	c.X, c.Y = tx, ty
	c.clampToWorld()
}

func (c *Camera) clampToWorld() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	c.X = clamp(c.X, halfW, c.WorldW-halfW)
	c.Y = clamp(c.Y, halfH, c.WorldH-halfH)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible reports whether a w×h rectangle with top-left (wx, wy) overlaps the view.
func (c *Camera) IsVisible(wx, wy, w, h float32) bool {
	minX, minY, maxX, maxY := c.VisibleWorldBounds()
	return wx+w >= minX && wx <= maxX && wy+h >= minY && wy <= maxY
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.updateMinZoom()
	c.SetZoom(c.Zoom)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampToWorld()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset restores the configured zoom.
func (c *Camera) Reset() {
	c.SetZoom(c.DefaultZoom)
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
