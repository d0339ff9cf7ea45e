package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameUI owns one ebitenui tree per screen and draws whichever one is active.
// It implements Notifier: the game core never touches widgets directly, it
// just posts screen switches and numeric field updates.
type GameUI struct {
	screens map[string]*ebitenui.UI
	active  string

	// labels holds every text widget bound to a notification field; a field
	// can appear on more than one screen.
	labels map[string][]*widget.Text

	face ebtext.Face
}

// NewGameUI builds the menu, HUD, pause, and game-over screens. Buttons post
// commands back into the game; they never mutate game state themselves.
func NewGameUI(g *Game) *GameUI {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	ui := &GameUI{
		screens: make(map[string]*ebitenui.UI),
		labels:  make(map[string][]*widget.Text),
		face:    face,
	}

	ui.screens[ScreenMenu] = ui.buildMenu(g)
	ui.screens[ScreenHUD] = ui.buildHUD()
	ui.screens[ScreenPaused] = ui.buildPaused(g)
	ui.screens[ScreenGameOver] = ui.buildGameOver(g)
	ui.active = ScreenMenu
	return ui
}

// ShowScreen switches the visible screen. Unknown names are ignored.
func (u *GameUI) ShowScreen(name string) {
	if _, ok := u.screens[name]; ok {
		u.active = name
	}
}

// SetText updates every label bound to field.
func (u *GameUI) SetText(field string, value int) {
	var format string
	switch field {
	case FieldScore:
		format = "Score: %d"
	case FieldDistance:
		format = "Distance: %dm"
	case FieldHighScore:
		format = "Best Score: %d"
	case FieldHighDistance:
		format = "Best Distance: %dm"
	case FieldFinalScore:
		format = "Score: %d"
	case FieldFinalDistance:
		format = "Distance: %dm"
	default:
		return
	}
	for _, t := range u.labels[field] {
		t.Label = fmt.Sprintf(format, value)
	}
}

func (u *GameUI) Update() {
	if s, ok := u.screens[u.active]; ok {
		s.Update()
	}
}

func (u *GameUI) Draw(screen *ebiten.Image) {
	if s, ok := u.screens[u.active]; ok {
		s.Draw(screen)
	}
}

var (
	uiWhite  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	uiAccent = color.NRGBA{R: 0x4d, G: 0xd2, B: 0xff, A: 0xff}
)

func (u *GameUI) newLabel(field, initial string) *widget.Text {
	t := widget.NewText(
		widget.TextOpts.Text(initial, &u.face, uiWhite),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	if field != "" {
		u.labels[field] = append(u.labels[field], t)
	}
	return t
}

func (u *GameUI) newButton(label string, onClick func()) *widget.Button {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	btnTextColor := &widget.ButtonTextColor{Idle: uiWhite}
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(label, &u.face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// newPanel builds a centered semi-transparent panel with a vertical layout.
func (u *GameUI) newPanel(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func (u *GameUI) buildMenu(g *Game) *ebitenui.UI {
	title := widget.NewText(
		widget.TextOpts.Text("NEONDASH", &u.face, uiAccent),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	return u.newPanel(
		title,
		u.newLabel(FieldHighScore, "Best Score: 0"),
		u.newLabel(FieldHighDistance, "Best Distance: 0m"),
		u.newButton("Start", func() { g.Post(CmdStartOrRestart) }),
		u.newLabel("", "space / click / tap to jump"),
	)
}

func (u *GameUI) buildHUD() *ebitenui.UI {
	hud := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Left: 10}),
		)),
	)
	hud.AddChild(u.newLabel(FieldScore, "Score: 0"))
	hud.AddChild(u.newLabel(FieldDistance, "Distance: 0m"))
	return &ebitenui.UI{Container: hud}
}

func (u *GameUI) buildPaused(g *Game) *ebitenui.UI {
	title := widget.NewText(
		widget.TextOpts.Text("Paused", &u.face, uiWhite),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	return u.newPanel(
		title,
		u.newButton("Resume", func() { g.Post(CmdResume) }),
		u.newButton("Restart", func() { g.Post(CmdStartOrRestart) }),
		u.newButton("Menu", func() { g.Post(CmdShowMenu) }),
	)
}

func (u *GameUI) buildGameOver(g *Game) *ebitenui.UI {
	title := widget.NewText(
		widget.TextOpts.Text("Game Over", &u.face, uiAccent),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	return u.newPanel(
		title,
		u.newLabel(FieldFinalScore, "Score: 0"),
		u.newLabel(FieldFinalDistance, "Distance: 0m"),
		u.newLabel(FieldHighScore, "Best Score: 0"),
		u.newLabel(FieldHighDistance, "Best Distance: 0m"),
		u.newButton("Restart", func() { g.Post(CmdStartOrRestart) }),
		u.newButton("Menu", func() { g.Post(CmdShowMenu) }),
	)
}
