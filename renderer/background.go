// Package renderer draws the level and the player with raylib.
package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer fills the screen with a vertical sky gradient.
type BackgroundRenderer struct {
	top, bottom rl.Color
}

// NewBackgroundRenderer creates a background fading from top to bottom.
func NewBackgroundRenderer(top, bottom rl.Color) *BackgroundRenderer {
	return &BackgroundRenderer{top: top, bottom: bottom}
}

// Draw fills the screen.
func (b *BackgroundRenderer) Draw(screenW, screenH int32) {
	rl.DrawRectangleGradientV(0, 0, screenW, screenH, b.top, b.bottom)
}
