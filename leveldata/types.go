// Package leveldata provides TMX level parsing for the playground. It has no
// dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// FloatRect is a floating platform rectangle plus its vertical travel.
type FloatRect struct {
	Rect
	Travel float64 // pixels the platform rises above its resting Y
}

// LevelData holds everything parsed from a TMX level file.
type LevelData struct {
	Walls     []Rect
	Platforms []Rect // one-way platforms, solid from above only
	Floaters  []FloatRect
	SpawnX    float64
	SpawnY    float64
	Width     float64 // map width in pixels
	Height    float64 // map height in pixels
}
