package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelEntry is one row of the level select
type LevelEntry struct {
	Index      int
	Title      string
	Completed  bool
	BestDeaths int // Negative when the level has no recorded run
}

// Label is the button text for the entry.
func (e LevelEntry) Label() string {
	label := fmt.Sprintf("%d. %s", e.Index+1, e.Title)
	if e.Completed {
		label += "  [cleared]"
	}
	if e.BestDeaths >= 0 {
		label += fmt.Sprintf("  best: %d deaths", e.BestDeaths)
	}
	return label
}

type LevelSelectUI struct {
	UI *ebitenui.UI

	OnSelect   func(index int)
	OnContinue func()
	OnQuit     func()

	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewLevelSelectUI builds the menu. The continue button is shown only when canContinue is set.
func NewLevelSelectUI(entries []LevelEntry, canContinue bool, onSelect func(int), onContinue, onQuit func()) *LevelSelectUI {
	ui := &LevelSelectUI{
		OnSelect:   onSelect,
		OnContinue: onContinue,
		OnQuit:     onQuit,
	}
	ui.loadFonts()
	ui.buildUI(entries, canContinue)
	return ui
}

func (ui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal("failed to load UI font", "err", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *LevelSelectUI) buildUI(entries []LevelEntry, canContinue bool) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PARRYBOUND", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	if canContinue {
		contentContainer.AddChild(ui.button("Continue", color.RGBA{40, 100, 40, 255}, func() {
			if ui.OnContinue != nil {
				ui.OnContinue()
			}
		}))
	}

	for _, entry := range entries {
		index := entry.Index
		contentContainer.AddChild(ui.button(entry.Label(), color.RGBA{60, 60, 80, 255}, func() {
			if ui.OnSelect != nil {
				ui.OnSelect(index)
			}
		}))
	}

	contentContainer.AddChild(ui.button("Quit", color.RGBA{100, 40, 40, 255}, func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *LevelSelectUI) button(label string, base color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{lighten(base.R), lighten(base.G), lighten(base.B), 255}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(320, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(base),
			Hover:   image.NewNineSliceColor(hover),
			Pressed: image.NewNineSliceColor(color.RGBA{base.R / 2, base.G / 2, base.B / 2, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func lighten(c uint8) uint8 {
	if c > 225 {
		return 255
	}
	return c + 30
}

func (ui *LevelSelectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}
