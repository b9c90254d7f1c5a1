package config

import "image/color"

// JumpProfile describes a jump the way a designer tunes it: how high the arc
// peaks and how many frames it takes to get there. Impulse and gravity are
// derived at runtime by the trajectory engine.
type JumpProfile struct {
	Height     float64 // peak height in pixels
	ApexFrames float64 // frames from launch to the peak
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration float64
	MaxSpeed     float64
	Friction     float64

	// Jump tuning defaults. Live values sit in the tuning component and
	// can be edited in-game.
	GroundJump JumpProfile
	DoubleJump JumpProfile
	WallJump   JumpProfile

	// Frames the falling half of the arc should take. Shorter than
	// ApexFrames gives the snappy arcade fall.
	FallFrames float64

	// Frames to finish the rise after the jump button is released early.
	ReleaseFrames float64

	// Air jumps available after leaving the ground (1 = double jump).
	MaxAirJumps int

	// Horizontal speed applied when kicking off a wall.
	WallKickSpeed float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxFallSpeed   float64
	WallSlideSpeed float64
}

// TuningConfig bounds the live-editable jump parameters.
type TuningConfig struct {
	MinHeight     float64
	MaxHeight     float64
	MinApexFrames float64
	MaxApexFrames float64
	HeightStep    float64
	FramesStep    float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64
	LookAheadDistanceX float64
	LookAheadSmoothing float64
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64
	JumpScaleY float64
	LandScaleX float64
	LandScaleY float64
	LerpSpeed  float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Tuning TuningConfig
var Camera CameraConfig
var SquashStretch SquashStretchConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowCollision bool // Draw collision boxes on startup
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	SkyDark      = color.RGBA{R: 18, G: 22, B: 38, A: 255}
	WallGrey     = color.RGBA{R: 90, G: 95, B: 110, A: 255}
	PlatformTan  = color.RGBA{R: 170, G: 140, B: 90, A: 255}
	FloaterGreen = color.RGBA{R: 90, G: 180, B: 120, A: 255}
	PlayerBlue   = color.RGBA{R: 70, G: 130, B: 240, A: 255}
	ArcYellow    = color.RGBA{R: 255, G: 230, B: 90, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Player = PlayerConfig{
		Acceleration: 0.75,
		MaxSpeed:     6.0,
		Friction:     0.5,

		GroundJump: JumpProfile{Height: 112, ApexFrames: 30},
		DoubleJump: JumpProfile{Height: 64, ApexFrames: 22},
		WallJump:   JumpProfile{Height: 88, ApexFrames: 26},

		FallFrames:    22,
		ReleaseFrames: 8,
		MaxAirJumps:   1,
		WallKickSpeed: 6.0,

		CollisionWidth:  16,
		CollisionHeight: 32,
	}

	Physics = PhysicsConfig{
		MaxFallSpeed:   12.0,
		WallSlideSpeed: 1.5,
	}

	Tuning = TuningConfig{
		MinHeight:     16,
		MaxHeight:     240,
		MinApexFrames: 6,
		MaxApexFrames: 60,
		HeightStep:    8,
		FramesStep:    2,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadDistanceX: 60.0,
		LookAheadSmoothing: 0.05,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.5,
		LandScaleX: 1.5,
		LandScaleY: 0.6,
		LerpSpeed:  0.10,
	}

	Debug = DebugConfig{
		ShowCollision: false,
	}
}
