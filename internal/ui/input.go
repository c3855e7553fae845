package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler samples the mouse once per frame in logical (unscaled) coordinates.
type InputHandler struct {
	mouseX, mouseY   int
	pressX, pressY   int
	leftPressed      bool
	leftJustPressed  bool
	leftJustReleased bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	rawX, rawY := ebiten.CursorPosition()

	scale := UIScale
	if scale < 1.0 {
		scale = 1.0
	}
	ih.mouseX = int(float64(rawX) / scale)
	ih.mouseY = int(float64(rawY) / scale)

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if ih.leftJustPressed {
		ih.pressX, ih.pressY = ih.mouseX, ih.mouseY
	}
}

// MousePosition returns the current mouse position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// PressPosition returns where the left button last went down.
func (ih *InputHandler) PressPosition() (int, int) {
	return ih.pressX, ih.pressY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftJustReleased returns true if the left mouse button was just released.
func (ih *InputHandler) IsLeftJustReleased() bool {
	return ih.leftJustReleased
}

// IsLeftPressed returns true if the left mouse button is currently pressed.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

// IsKeyJustPressed returns true if the specified key was just pressed.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
