package game

import (
	"bytes"
	"math"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// A sound repeats no faster than this, so a pellet streak does not
// machine-gun the mixer.
const minRepeatTicks = updatesPerSecond / 2

// SoundKind groups sounds for per-kind volume control.
type SoundKind int

const (
	SoundEffect SoundKind = iota
	SoundMusic
	SoundUI
	SoundGhost

	soundKindCount
)

type soundID int

const (
	sndPellet soundID = iota
	sndPower
	sndGhostEaten
	sndGhostHome
	sndLifeLost
	sndLevelClear
	sndMenuSelect

	soundIDCount
)

var soundKinds = [soundIDCount]SoundKind{
	sndPellet:     SoundEffect,
	sndPower:      SoundEffect,
	sndGhostEaten: SoundGhost,
	sndGhostHome:  SoundGhost,
	sndLifeLost:   SoundEffect,
	sndLevelClear: SoundMusic,
	sndMenuSelect: SoundUI,
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// Audio is opt-in: set PACMAN_ENABLE_AUDIO=1 to open a device context.
// Tests and headless runs never touch the sound card.
func getAudioContext() *audio.Context {
	if os.Getenv("PACMAN_ENABLE_AUDIO") != "1" {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// AudioManager synthesizes and plays the game's sounds. Every sound is
// a generated tone, so the game ships no asset files. It consumes the
// level's events; it never mutates game state.
type AudioManager struct {
	ctx     *audio.Context
	volumes [soundKindCount]float64
	muted   bool

	sounds   [soundIDCount][]byte
	lastPlay [soundIDCount]int
	tick     int
}

func NewAudioManager(cfg AudioSettings) *AudioManager {
	am := &AudioManager{ctx: getAudioContext(), muted: cfg.Muted}
	am.volumes[SoundEffect] = cfg.Effect
	am.volumes[SoundMusic] = cfg.Music
	am.volumes[SoundUI] = cfg.UI
	am.volumes[SoundGhost] = cfg.Ghost

	am.sounds[sndPellet] = synthBeepWAV(sampleRate, 60, 880)
	am.sounds[sndPower] = synthBeepWAV(sampleRate, 150, 660)
	am.sounds[sndGhostEaten] = synthBeepWAV(sampleRate, 200, 440)
	am.sounds[sndGhostHome] = synthBeepWAV(sampleRate, 120, 520)
	am.sounds[sndLifeLost] = synthBeepWAV(sampleRate, 400, 220)
	am.sounds[sndLevelClear] = synthSweepWAV(sampleRate, 600, 440, 880)
	am.sounds[sndMenuSelect] = synthBeepWAV(sampleRate, 80, 990)

	for i := range am.lastPlay {
		am.lastPlay[i] = -minRepeatTicks
	}
	return am
}

// Advance moves the repeat-gate clock one tick.
func (am *AudioManager) Advance() {
	if am != nil {
		am.tick++
	}
}

func (am *AudioManager) SetMuted(m bool) {
	if am != nil {
		am.muted = m
	}
}

func (am *AudioManager) Muted() bool {
	return am != nil && am.muted
}

// HandleEvent maps a gameplay event onto its sound.
func (am *AudioManager) HandleEvent(ev Event) {
	switch ev.Type {
	case EventPelletEaten:
		am.play(sndPellet)
	case EventPowerPelletEaten:
		am.play(sndPower)
	case EventGhostEaten:
		am.play(sndGhostEaten)
	case EventGhostReturned:
		am.play(sndGhostHome)
	case EventLifeLost, EventGameOver:
		am.play(sndLifeLost)
	case EventLevelComplete, EventVictory:
		am.play(sndLevelClear)
	}
}

// PlayMenuSelect is the UI blip for menu confirmation.
func (am *AudioManager) PlayMenuSelect() { am.play(sndMenuSelect) }

func (am *AudioManager) play(id soundID) {
	if am == nil || am.ctx == nil || am.muted {
		return
	}
	vol := am.volumes[soundKinds[id]]
	if vol <= 0 {
		return
	}
	if am.tick-am.lastPlay[id] < minRepeatTicks {
		return
	}
	am.lastPlay[id] = am.tick

	// Decode from bytes each time so repeats may overlap
	stream, err := wav.Decode(am.ctx, bytes.NewReader(am.sounds[id]))
	if err != nil {
		return
	}
	p, err := audio.NewPlayer(am.ctx, stream)
	if err != nil {
		return
	}
	p.SetVolume(vol)
	p.Play()
}

// synthBeepWAV returns a sine beep as 16-bit PCM mono WAV bytes.
func synthBeepWAV(sampleRate, durationMs int, freq float64) []byte {
	n := sampleRate * durationMs / 1000
	samples := make([]int16, n)
	const amp = 0.25
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = int16(math.Sin(2*math.Pi*freq*t) * 32767.0 * amp)
	}
	return wavPCM16(sampleRate, samples)
}

// synthSweepWAV returns a tone gliding from fromHz to toHz, used for
// jingles.
func synthSweepWAV(sampleRate, durationMs int, fromHz, toHz float64) []byte {
	n := sampleRate * durationMs / 1000
	samples := make([]int16, n)
	const amp = 0.25
	phase := 0.0
	for i := range samples {
		frac := float64(i) / float64(n)
		freq := fromHz + (toHz-fromHz)*frac
		phase += 2 * math.Pi * freq / float64(sampleRate)
		samples[i] = int16(math.Sin(phase) * 32767.0 * amp)
	}
	return wavPCM16(sampleRate, samples)
}

// wavPCM16 wraps samples in a minimal 44-byte WAV container.
func wavPCM16(sampleRate int, samples []int16) []byte {
	byteRate := sampleRate * 2 // mono 16-bit
	dataSize := len(samples) * 2
	totalSize := 44 + dataSize
	buf := make([]byte, totalSize)
	// RIFF header
	copy(buf[0:4], []byte{'R', 'I', 'F', 'F'})
	putLE32(buf[4:8], uint32(totalSize-8))
	copy(buf[8:12], []byte{'W', 'A', 'V', 'E'})
	// fmt chunk
	copy(buf[12:16], []byte{'f', 'm', 't', ' '})
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // channels
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(byteRate))
	putLE16(buf[32:34], 2) // block align
	putLE16(buf[34:36], 16)
	// data chunk
	copy(buf[36:40], []byte{'d', 'a', 't', 'a'})
	putLE32(buf[40:44], uint32(dataSize))
	for i, s := range samples {
		off := 44 + i*2
		buf[off] = byte(s)
		buf[off+1] = byte(s >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
