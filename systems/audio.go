package systems

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"

	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	toneCache          = map[cfg.SoundID][]byte{}
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// UpdateAudio drains the pending SFX queue and plays each sound.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// QueueSFX schedules a sound effect for the next audio update.
func QueueSFX(e *ecs.ECS, soundID cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

// PlaySFX plays a sound immediately, outside the simulation tick. Used by
// menu navigation where no Audio component exists.
func PlaySFX(soundID cfg.SoundID) {
	initGlobalAudio()
	playSFX(soundID)
}

// SetMuted toggles all sound effect output.
func SetMuted(muted bool) {
	globalMuted = muted
}

func IsMuted() bool {
	return globalMuted
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	tone, ok := cfg.Audio.Tones[soundID]
	if !ok {
		return
	}

	pcm, ok := toneCache[soundID]
	if !ok {
		pcm = synthesizeTone(tone)
		toneCache[soundID] = pcm
	}

	player, err := globalAudioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return
	}
	player.SetVolume(globalSFXVolume * tone.Volume)
	player.Play()
}

// synthesizeTone renders a square-wave blip as 16-bit little-endian stereo
// PCM with a linear fade-out to avoid a click at the cut-off. The game ships
// no audio assets; every effect is generated here.
func synthesizeTone(tone cfg.ToneConfig) []byte {
	sampleRate := cfg.Audio.SampleRate
	numSamples := sampleRate * tone.Millis / 1000
	buf := make([]byte, 0, numSamples*4)

	period := float64(sampleRate) / tone.FreqHz
	for i := 0; i < numSamples; i++ {
		sample := 0.3
		if math.Mod(float64(i), period) < period/2 {
			sample = -0.3
		}
		fade := 1.0 - float64(i)/float64(numSamples)
		v := int16(sample * fade * math.MaxInt16)

		buf = binary.LittleEndian.AppendUint16(buf, uint16(v)) // left
		buf = binary.LittleEndian.AppendUint16(buf, uint16(v)) // right
	}
	return buf
}
