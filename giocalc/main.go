//go:generate go run gioui.org/cmd/gogio -target android -appid org.decicalc.giocalc .

package main

import (
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/fjl/decicalc/internal/config"
	"github.com/fjl/decicalc/internal/logging"
	"github.com/fjl/decicalc/internal/presenter"
)

var (
	digitColor       = color.NRGBA{90, 90, 90, 255}
	specialColor     = color.NRGBA{70, 70, 70, 255}
	opColor          = color.NRGBA{122, 90, 90, 255}
	activeOpColor    = color.NRGBA{160, 90, 90, 255}
	backgroundColor  = color.NRGBA{50, 50, 50, 255}
	resultColor      = color.NRGBA{255, 255, 255, 255}
	historyColor     = color.NRGBA{170, 170, 170, 255}
	advisoryColor    = color.NRGBA{255, 119, 119, 255}
	resultBackground = color.NRGBA{35, 35, 35, 255}

	designWidth  = unit.Dp(270)
	designHeight = unit.Dp(380)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(3.5)
)

// buttonLayout is the keypad, row by row.
var buttonLayout = [5][4]string{
	{"C", "±", "%", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "−"},
	{"1", "2", "3", "+"},
	{"√", "0", ".", "="},
}

// calcUI is the user interface of the calculator.
type calcUI struct {
	calc    *presenter.Presenter
	state   *calcState
	theme   *material.Theme
	buttons [5][4]*button

	cornerRadius int
	gridSpacing  int
}

func newUI(theme *material.Theme, cfg config.Config) (*calcUI, error) {
	state := new(calcState)
	calc, err := presenter.New(state,
		presenter.WithLocale(cfg.Tag()),
		presenter.WithLogger(logging.L),
		presenter.WithAdvisor(state.advise),
	)
	if err != nil {
		return nil, err
	}
	ui := &calcUI{calc: calc, state: state, theme: theme}
	for row := range buttonLayout {
		for col, token := range buttonLayout[row] {
			ui.buttons[row][col] = newButton(token)
		}
	}
	return ui, nil
}

// press forwards a token to the calculator.
func (ui *calcUI) press(token string) {
	ui.state.clearAdvisory()
	ui.calc.Press(token)
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	ui.cornerRadius = gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(28, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutResult)
			}),
			layout.Flexed(70, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, resultBackground, rr.Op(gtx.Ops))

	display, secondary, advisory := ui.state.text()
	if advisory != "" {
		secondary = advisory
	}
	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical}
		return flex.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				c := historyColor
				if advisory != "" {
					c = advisoryColor
				}
				return ui.layoutText(gtx, secondary, c)
			}),
			layout.Flexed(2, func(gtx layout.Context) layout.Dimensions {
				return ui.layoutText(gtx, display, resultColor)
			}),
		)
	})
}

// layoutText draws right-aligned text scaled to the available height.
func (ui *calcUI) layoutText(gtx layout.Context, s string, c color.NRGBA) layout.Dimensions {
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, s)
	l.Color = c
	l.Alignment = text.End
	l.MaxLines = 1
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	pending := ui.calc.PendingOperator()
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b, pending)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button, pending string) layout.Dimensions {
	for b.clicker.Clicked() {
		ui.press(b.token)
	}

	return b.clicker.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		style := material.Button(ui.theme, &b.clicker, b.token)
		style.Background = b.color
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
		if b.isOperator() && normalizeOp(b.token) == pending {
			style.Background = activeOpColor
		}
		return style.Layout(gtx)
	})
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: "Short-[C,V]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,%,=,R,⌤,⏎,⌫,⌦,⎋]|(Alt)-(Shift)-[-]",
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Queue.Events(ui) {
		switch ev := ev.(type) {
		case key.Event:
			switch {
			case isCopy(ev):
				display, _, _ := ui.state.text()
				clipboard.WriteOp{Text: display}.Add(gtx.Ops)
			case isPaste(ev):
				clipboard.ReadOp{Tag: ui}.Add(gtx.Ops)
			default:
				ui.handleKey(ev)
			}

		case clipboard.Event:
			ui.state.clearAdvisory()
			ui.calc.Paste(ev.Text)
		}
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

func isPaste(e key.Event) bool {
	return e.Name == "V" && e.Modifiers.Contain(key.ModShortcut)
}

// handleKey handles a key event.
func (ui *calcUI) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}
	if token, ok := keyToken(e); ok {
		ui.press(token)
	}
}

// button is a clickable keypad button.
type button struct {
	token string
	color color.NRGBA

	clicker widget.Clickable
}

func newButton(token string) *button {
	b := &button{token: token, color: digitColor}
	switch {
	case b.isOperator():
		b.color = opColor
	case token == "=" || token == "C" || token == "±" || token == "%" || token == "√":
		b.color = specialColor
	}
	return b
}

func (b *button) isOperator() bool {
	switch b.token {
	case "+", "−", "×", "÷":
		return true
	}
	return false
}

// normalizeOp maps the keypad's minus glyph to the operator the calculator
// stores.
func normalizeOp(token string) string {
	if token == "−" {
		return "-"
	}
	return token
}

func main() {
	cfg, err := config.Load(nil, "")
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}

	var (
		size     = app.Size(designWidth, designHeight)
		statusBg = app.StatusColor(backgroundColor)
		sysBg    = app.NavigationColor(backgroundColor)
		title    = app.Title("GioCalc")
		portrait = app.PortraitOrientation.Option()
	)
	go func() {
		w := app.NewWindow(statusBg, sysBg, size, title, portrait)
		w.Option(app.MinSize(designWidth, designHeight))

		if err := loop(w, cfg); err != nil {
			logging.Errorf("%v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window, cfg config.Config) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	ui, err := newUI(th, cfg)
	if err != nil {
		return err
	}

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, backgroundColor)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}
