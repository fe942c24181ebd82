package components

// Sprite is the rendered stand-in for a body. It is positioned on its own
// so it can be smoothed between physics ticks.
type Sprite struct {
	X, Y  float32 `inspect:"vec,fmt:%.1f"`
	FlipH bool    `inspect:"flag"`
	Color uint32  `inspect:"skip"` // RGBA
}
