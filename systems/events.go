package systems

import (
	"github.com/yohamta/donburi/ecs"
	devents "github.com/yohamta/donburi/features/events"
)

// UpdateEvents delivers every event published this tick to its subscribers.
// Runs after collision resolution so the queue is drained before the next
// tick begins.
func UpdateEvents(ecs *ecs.ECS) {
	devents.ProcessAllEvents(ecs.World)
}
