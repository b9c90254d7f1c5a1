package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/jumplab/components"
	cfg "github.com/automoto/jumplab/config"
	"github.com/automoto/jumplab/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TuningUI is the ebitenui panel that edits the live jump profiles. Every
// click re-resolves the affected arc, so impulse and gravity in the HUD track
// the edits immediately.
type TuningUI struct {
	UI     *ebitenui.UI
	Tuning *components.TuningData

	// Widget references for updates
	groundValue *widget.Label
	doubleValue *widget.Label
	wallValue   *widget.Label
	fallValue   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTuningUI builds the panel around the live tuning component.
func NewTuningUI(tuning *components.TuningData) *TuningUI {
	tui := &TuningUI{
		Tuning: tuning,
	}

	tui.loadFonts()
	tui.buildUI()
	tui.refreshLabels()

	return tui
}

func (tui *TuningUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (tui *TuningUI) buildUI() {
	// Root container with AnchorLayout, panel docked to the right edge
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("JUMP TUNING", &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(title)

	tui.groundValue = tui.addProfileRows(panel, "Ground", &tui.Tuning.Ground)
	tui.doubleValue = tui.addProfileRows(panel, "Double", &tui.Tuning.Double)
	tui.wallValue = tui.addProfileRows(panel, "Wall", &tui.Tuning.Wall)
	tui.fallValue = tui.addFallRow(panel)

	panel.AddChild(tui.buildResetButton())

	rootContainer.AddChild(panel)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// addProfileRows adds a header label, the value label, and the four nudge
// buttons for one jump profile. Returns the value label for refreshes.
func (tui *TuningUI) addProfileRows(panel *widget.Container, name string, profile *cfg.JumpProfile) *widget.Label {
	header := widget.NewLabel(
		widget.LabelOpts.Text(name, &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 200, 255, 255},
		}),
	)
	panel.AddChild(header)

	value := widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	panel.AddChild(value)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(3),
		)),
	)
	row.AddChild(tui.nudgeButton("h-", func() {
		systems.AdjustHeight(tui.Tuning, profile, -cfg.Tuning.HeightStep)
	}))
	row.AddChild(tui.nudgeButton("h+", func() {
		systems.AdjustHeight(tui.Tuning, profile, cfg.Tuning.HeightStep)
	}))
	row.AddChild(tui.nudgeButton("t-", func() {
		systems.AdjustApexFrames(tui.Tuning, profile, -cfg.Tuning.FramesStep)
	}))
	row.AddChild(tui.nudgeButton("t+", func() {
		systems.AdjustApexFrames(tui.Tuning, profile, cfg.Tuning.FramesStep)
	}))
	panel.AddChild(row)

	return value
}

func (tui *TuningUI) addFallRow(panel *widget.Container) *widget.Label {
	header := widget.NewLabel(
		widget.LabelOpts.Text("Fall", &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 200, 255, 255},
		}),
	)
	panel.AddChild(header)

	value := widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	panel.AddChild(value)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(3),
		)),
	)
	row.AddChild(tui.nudgeButton("t-", func() {
		systems.AdjustFallFrames(tui.Tuning, -cfg.Tuning.FramesStep)
	}))
	row.AddChild(tui.nudgeButton("t+", func() {
		systems.AdjustFallFrames(tui.Tuning, cfg.Tuning.FramesStep)
	}))
	panel.AddChild(row)

	return value
}

func (tui *TuningUI) nudgeButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(28, 18),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			tui.refreshLabels()
		}),
	)
}

func (tui *TuningUI) buildResetButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(80, 20),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text("Reset", &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 200, 180, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ResetTuning(tui.Tuning)
			tui.refreshLabels()
		}),
	)
}

func (tui *TuningUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (tui *TuningUI) refreshLabels() {
	if tui.groundValue != nil {
		tui.groundValue.Label = profileText(tui.Tuning.Ground)
	}
	if tui.doubleValue != nil {
		tui.doubleValue.Label = profileText(tui.Tuning.Double)
	}
	if tui.wallValue != nil {
		tui.wallValue.Label = profileText(tui.Tuning.Wall)
	}
	if tui.fallValue != nil {
		tui.fallValue.Label = fmt.Sprintf("%.0f frames", tui.Tuning.FallFrames)
	}
}

func profileText(profile cfg.JumpProfile) string {
	return fmt.Sprintf("h=%.0f  t=%.0f", profile.Height, profile.ApexFrames)
}

func (tui *TuningUI) Update() {
	tui.UI.Update()
}
