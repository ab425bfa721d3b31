package components

import "github.com/yohamta/donburi"

// VelocityData is an entity's velocity in arena units per second. It persists
// across ticks; collision resolution mutates it by sign negation only.
type VelocityData struct {
	X, Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
