package components

import (
	cfg "github.com/pongarena/pong/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a tick. Singleton; the audio
// system drains the queue once per tick.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
