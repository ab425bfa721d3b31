package events

import "github.com/yohamta/donburi/features/events"

// CollisionData signals that the ball overlapped a collider this tick. It
// carries no payload; listeners that need the collider react inside collision
// resolution itself. Published once per overlapping (ball, collider) pair and
// drained before the next tick.
type CollisionData struct{}

var Collision = events.NewEventType[CollisionData]()
