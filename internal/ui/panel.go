package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 24
	ButtonHeight   = 40
	ToggleHeight   = 32
	SectionLabelH  = 20
	fenLineHeight  = 18
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}
	buttonBg        = color.RGBA{50, 54, 60, 255}
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}
	buttonPressedBg = color.RGBA{40, 44, 50, 255}
	buttonBorder    = color.RGBA{70, 75, 82, 255}
	toggleOnBg      = color.RGBA{76, 132, 96, 255}
	resetColor      = color.RGBA{239, 68, 68, 255} // red-500
	resetHover      = color.RGBA{248, 113, 113, 255}
	resetPressed    = color.RGBA{220, 38, 38, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{160, 165, 175, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	dividerColor    = color.RGBA{60, 65, 72, 255}
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	pressed    bool
}

func (b *Button) contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

// Panel is the side panel with the FEN label and the board controls.
type Panel struct {
	game *Game

	resetBtn  *Button
	clearBtn  *Button
	soundBtn  *Button
	coordsBtn *Button
	buttons   []*Button
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

// createButtons lays out the buttons from the top of the panel.
func (p *Panel) createButtons() {
	contentX := PanelX + PanelPadding
	contentW := PanelWidth - PanelPadding*2
	halfW := (contentW - 8) / 2

	y := PanelPadding + 8
	p.resetBtn = &Button{
		X: contentX, Y: y, W: contentW, H: ButtonHeight,
		Label:   "Reset",
		OnClick: p.game.ResetAction,
	}

	y += ButtonHeight + 8
	p.clearBtn = &Button{
		X: contentX, Y: y, W: contentW, H: ButtonHeight - 6,
		Label:   "Clear board",
		OnClick: p.game.ClearAction,
	}

	y += ButtonHeight - 6 + SectionSpacing + SectionLabelH
	p.soundBtn = &Button{
		X: contentX, Y: y, W: halfW, H: ToggleHeight,
		Label:   "Sound",
		OnClick: p.game.ToggleSoundAction,
	}
	p.coordsBtn = &Button{
		X: contentX + halfW + 8, Y: y, W: halfW, H: ToggleHeight,
		Label:   "Coordinates",
		OnClick: p.game.ToggleCoordinatesAction,
	}

	p.buttons = []*Button{p.resetBtn, p.clearBtn, p.soundBtn, p.coordsBtn}
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()
	for _, btn := range p.buttons {
		btn.hovered = btn.contains(mx, my)
		btn.pressed = input.IsLeftPressed() && btn.hovered
	}

	if !input.IsLeftJustPressed() {
		return false
	}
	for _, btn := range p.buttons {
		if btn.hovered {
			btn.OnClick()
			return true
		}
	}
	return false
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	for _, btn := range p.buttons {
		if btn.hovered {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, px(PanelX), 0, px(PanelWidth), px(ScreenHeight), panelBg, false)

	p.drawResetButton(screen, p.resetBtn)
	p.drawSecondaryButton(screen, p.clearBtn)

	x := float64(PanelX + PanelPadding)
	drawText(screen, "Options", regularSource, defaultFontSize, x, float64(p.soundBtn.Y-SectionLabelH), textMuted)
	p.drawToggle(screen, p.soundBtn, p.game.SoundEnabled())
	p.drawToggle(screen, p.coordsBtn, p.game.CoordinatesShown())

	y := p.soundBtn.Y + ToggleHeight + SectionSpacing
	p.drawDivider(screen, y-SectionSpacing/2)
	drawText(screen, "Position", regularSource, defaultFontSize, x, float64(y), textMuted)
	y += SectionLabelH + 4

	maxW := float64(PanelWidth - PanelPadding*2)
	measure := func(s string) float64 {
		w, _ := MeasureText(s, monoSource, fenFontSize)
		return w
	}
	for _, line := range wrapText(p.game.Controller().FEN(), maxW, measure) {
		drawText(screen, line, monoSource, fenFontSize, x, float64(y), textPrimary)
		y += fenLineHeight
	}

	y += SectionSpacing / 2
	b := p.game.Controller().Board()
	drawText(screen, fmt.Sprintf("%d pieces on the board", b.Occupied().PopCount()), regularSource, defaultFontSize, x, float64(y), textSecondary)

	p.drawStatusBar(screen)
}

func (p *Panel) drawDivider(screen *ebiten.Image, y int) {
	vector.DrawFilledRect(screen, px(PanelX+PanelPadding), px(float64(y)), px(PanelWidth-PanelPadding*2), px(1), dividerColor, false)
}

func (p *Panel) drawResetButton(screen *ebiten.Image, btn *Button) {
	bgColor := resetColor
	if btn.pressed {
		bgColor = resetPressed
	} else if btn.hovered {
		bgColor = resetHover
	}
	p.drawButtonBox(screen, btn, bgColor, bgColor)
	drawTextCentered(screen, btn.Label, boldSource, titleFontSize, btnCenterX(btn), btnCenterY(btn), textPrimary)
}

func (p *Panel) drawSecondaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := buttonBg
	if btn.pressed {
		bgColor = buttonPressedBg
	} else if btn.hovered {
		bgColor = buttonHoverBg
	}
	borderC := buttonBorder
	if btn.hovered {
		borderC = accentColor
	}
	p.drawButtonBox(screen, btn, bgColor, borderC)
	drawTextCentered(screen, btn.Label, regularSource, defaultFontSize, btnCenterX(btn), btnCenterY(btn), textSecondary)
}

func (p *Panel) drawToggle(screen *ebiten.Image, btn *Button, on bool) {
	bgColor := buttonBg
	textColor := textSecondary
	if on {
		bgColor = toggleOnBg
		textColor = textPrimary
	} else if btn.hovered {
		bgColor = buttonHoverBg
	}
	borderC := buttonBorder
	if btn.hovered {
		borderC = accentColor
	}
	p.drawButtonBox(screen, btn, bgColor, borderC)
	drawTextCentered(screen, btn.Label, regularSource, defaultFontSize, btnCenterX(btn), btnCenterY(btn), textColor)
}

func (p *Panel) drawButtonBox(screen *ebiten.Image, btn *Button, bg, border color.RGBA) {
	x, y := px(float64(btn.X)), px(float64(btn.Y))
	w, h := px(float64(btn.W)), px(float64(btn.H))
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, px(1), border, false)
}

func btnCenterX(btn *Button) float64 { return float64(btn.X) + float64(btn.W)/2 }
func btnCenterY(btn *Button) float64 { return float64(btn.Y) + float64(btn.H)/2 }

// drawStatusBar shows the side to move and the result of the last drop.
func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - 70
	x := float64(PanelX + PanelPadding)
	p.drawDivider(screen, statusY-10)

	side := "Black to move"
	if p.game.Controller().Board().IsActiveWhite() {
		side = "White to move"
	}
	drawText(screen, side, regularSource, defaultFontSize, x, float64(statusY), textPrimary)

	status := "Drag a piece to move it"
	if p.game.Controller().HasDropped() {
		status = "Last drop: " + p.game.Controller().LastOutcome().String()
	}
	drawText(screen, status, regularSource, defaultFontSize, x, float64(statusY+22), textSecondary)
}
