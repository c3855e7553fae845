package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		maxStack: 3,
	}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders all active toasts centred over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	y := 50.0
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}
		// A toast can expire between Update and Draw.
		alpha = math.Max(0, math.Min(1, alpha))

		var bgColor, textColor color.RGBA
		switch t.Type {
		case ToastWarning:
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
			textColor = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		default:
			bgColor = color.RGBA{50, 100, 150, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		}

		w, h := MeasureText(t.Message, regularSource, defaultFontSize)
		padding := 12.0
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(BoardOffset+BoardSize/2) - boxW/2

		vector.DrawFilledRect(screen, px(x), px(y), px(boxW), px(boxH), bgColor, false)
		drawText(screen, t.Message, regularSource, defaultFontSize, x+padding, y+padding, textColor)

		y += boxH + 8
	}
}

// FlashAnimation tints a square for a short time.
type FlashAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// FeedbackManager coordinates toasts, square flashes and sounds.
type FeedbackManager struct {
	toasts  *ToastManager
	flashes []*FlashAnimation
	audio   *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager(audio *AudioManager) *FeedbackManager {
	return &FeedbackManager{
		toasts: NewToastManager(),
		audio:  audio,
	}
}

// Update expires finished toasts and flashes.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	now := time.Now()
	active := fm.flashes[:0]
	for _, f := range fm.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			active = append(active, f)
		}
	}
	fm.flashes = active
}

// Draw renders flashes under the toasts.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, r *Renderer) {
	for _, f := range fm.flashes {
		progress := time.Since(f.StartTime).Seconds() / f.Duration.Seconds()
		if progress >= 1 {
			continue
		}
		c := f.Color
		c.A = uint8(float64(c.A) * (1 - progress))
		r.highlightSquare(screen, f.Square, c)
	}
	fm.toasts.Draw(screen)
}

// OnMoved plays the move click.
func (fm *FeedbackManager) OnMoved() {
	fm.audio.Play(SoundMove)
}

// OnBlocked reports a drop onto an occupied square.
func (fm *FeedbackManager) OnBlocked(target board.Square) {
	fm.toasts.Show(target.String()+" is occupied", ToastWarning, 2*time.Second)
	fm.flashes = append(fm.flashes, &FlashAnimation{
		Square:    target,
		StartTime: time.Now(),
		Duration:  400 * time.Millisecond,
		Color:     color.RGBA{255, 80, 80, 150},
	})
	fm.audio.Play(SoundInvalid)
}

// OnReset announces a board reset or clear.
func (fm *FeedbackManager) OnReset(message string) {
	fm.toasts.Show(message, ToastInfo, 1500*time.Millisecond)
	fm.audio.Play(SoundReset)
}

// Audio returns the audio manager for the sound toggle.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}
