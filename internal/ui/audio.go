package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundInvalid
	SoundReset
)

const (
	sampleRate = 44100
)

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: enabled,
		volume:  0.5,
	}
	am.sounds[SoundMove] = synthesize(0.08, func(t, _ float64) float64 {
		// wood-on-wood click
		noise := (math.Sin(t*sampleRate*0.3) + math.Sin(t*sampleRate*0.7)) * 0.3
		return (math.Sin(2*math.Pi*440*t) + noise) * math.Exp(-t*30) * 0.3
	})
	am.sounds[SoundInvalid] = synthesize(0.1, func(t, progress float64) float64 {
		wave := math.Sin(2*math.Pi*150*t) + 0.3*math.Sin(4*math.Pi*150*t)
		return wave * (1 - progress) * 0.15
	})
	am.sounds[SoundReset] = synthesize(0.3, func(t, progress float64) float64 {
		envelope := 1.0
		if progress < 0.1 {
			envelope = progress / 0.1
		} else if progress > 0.6 {
			envelope = (1 - progress) / 0.4
		}
		// C5 then G5
		freq := 523.25
		if progress > 0.5 {
			freq = 783.99
		}
		return math.Sin(2*math.Pi*freq*t) * envelope * 0.25
	})
	return am
}

// synthesize renders wave into 16-bit little-endian stereo PCM. wave receives
// the time in seconds and the fraction of duration elapsed.
func synthesize(duration float64, wave func(t, progress float64) float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		sample := math.Max(-1, math.Min(1, wave(t, t/duration)))
		val := int16(sample * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// A player per call lets sounds overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}
