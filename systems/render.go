package systems

import (
	"image/color"

	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/tags"
	"github.com/automoto/jumplab/trajectory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the level geometry as flat rectangles.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyDark)

	camX, camY := cameraOffset(e)

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		drawObjectRect(screen, entry, camX, camY, cfg.WallGrey)
	})
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		drawObjectRect(screen, entry, camX, camY, cfg.PlatformTan)
	})
	tags.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		drawObjectRect(screen, entry, camX, camY, cfg.FloaterGreen)
	})
}

func drawObjectRect(screen *ebiten.Image, entry *donburi.Entry, camX, camY float64, clr color.Color) {
	obj := components.Object.Get(entry)
	vector.DrawFilledRect(screen,
		float32(obj.X-camX), float32(obj.Y-camY),
		float32(obj.W), float32(obj.H),
		clr, false)
}

// DrawPlayer renders the player box with the squash/stretch scale applied
// around the bottom-center anchor so landings squash into the ground.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)

		scaleX, scaleY := 1.0, 1.0
		if entry.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(entry)
			scaleX = ss.ScaleX
			scaleY = ss.ScaleY
		}

		w := obj.W * scaleX
		h := obj.H * scaleY
		x := obj.X + obj.W/2 - w/2
		y := obj.Y + obj.H - h

		vector.DrawFilledRect(screen,
			float32(x-camX), float32(y-camY),
			float32(w), float32(h),
			cfg.PlayerBlue, false)
	})
}

// DrawArcPreview plots the ground jump arc from the player's feet: the rise
// on the tuned profile, the fall on the tuned descent clock.
func DrawArcPreview(e *ecs.ECS, screen *ebiten.Image) {
	tuning := GetOrCreateTuning(e)
	if !tuning.ShowArc {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	arc, err := previewArc(tuning)
	if err != nil {
		return // the broken profile is already reported in the HUD
	}

	camX, camY := cameraOffset(e)
	originX := obj.X + obj.W/2
	originY := obj.Y + obj.H

	// Rising half: y(t) = v*t + g*t^2/2 above the origin
	v := arc.Impulse()
	g := arc.Gravity()
	for t := 0.0; t <= arc.Time(); t += 2 {
		rise := v*t + g*t*t/2
		drawArcDot(screen, originX+player.Direction*cfg.Player.MaxSpeed*t-camX, originY-rise-camY)
	}

	// Falling half on its own gravity, starting from the apex
	fallG, fallErr := fallGravity(tuning, arc.Height())
	if fallErr != nil {
		return
	}
	apexX := player.Direction * cfg.Player.MaxSpeed * arc.Time()
	for t := 0.0; t <= tuning.FallFrames; t += 2 {
		drop := -fallG * t * t / 2
		drawArcDot(screen,
			originX+apexX+player.Direction*cfg.Player.MaxSpeed*t-camX,
			originY-arc.Height()+drop-camY)
	}
}

func drawArcDot(screen *ebiten.Image, x, y float64) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), 2, cfg.ArcYellow, false)
}

// previewArc resolves the ground jump arc from the live tuning.
func previewArc(tuning *components.TuningData) (trajectory.Trajectory[float64], error) {
	return trajectory.FromHeightAndTime(tuning.Ground.Height, tuning.Ground.ApexFrames)
}

// fallGravity resolves the descent gravity for a given peak height.
func fallGravity(tuning *components.TuningData, height float64) (float64, error) {
	return trajectory.GravityFromHeightAndTime(height, tuning.FallFrames)
}
