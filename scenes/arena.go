package scenes

import (
	"os"
	"sync"
	"time"

	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/core"
	"github.com/pongarena/pong/events"
	"github.com/pongarena/pong/systems"
	"github.com/pongarena/pong/systems/factory"
	"github.com/pongarena/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs a match: two paddles, a ball, walls and the scoreboard.
// Simulation ticks at a fixed rate, decoupled from the frame rate by the
// accumulator clock; the renderers only ever see completed ticks.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	clock        *core.Clock
	once         sync.Once
}

// NewArenaScene creates a new match scene
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	ticks := as.clock.Advance(time.Now())
	for i := 0; i < ticks; i++ {
		as.ecs.Update()
	}

	// Termination is only ever checked between ticks.
	if systems.ExitRequested(as.ecs) {
		os.Exit(0)
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.BackgroundColor)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	// All bound computations below depend on a real playfield.
	if err := cfg.Arena.Validate(); err != nil {
		panic("invalid arena configuration: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Tick phases in mandatory order: input sample, paddle motion, velocity
	// integration, collision resolution, then event delivery and effects.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePaddles)
	ecs.AddSystem(systems.UpdateVelocity)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateEvents)
	ecs.AddSystem(systems.UpdateShake)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawScoreboard)

	events.Collision.Subscribe(ecs.World, systems.OnCollision)

	factory.CreateScoreboard(ecs)
	factory.CreateShake(ecs)
	factory.CreateAudio(ecs)
	factory.CreateArena(ecs)
	factory.CreateCenterLine(ecs)
	factory.CreatePaddle(ecs, tags.Left)
	factory.CreatePaddle(ecs, tags.Right)
	factory.CreateBall(ecs)

	as.ecs = ecs
	as.clock = core.NewClock(time.Second/time.Duration(cfg.C.TickRate), core.DefaultMaxTicksPerFrame)
}
