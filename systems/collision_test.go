package systems

import (
	"math"
	"testing"

	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/events"
	"github.com/pongarena/pong/gamemath"
	"github.com/pongarena/pong/systems/factory"
	"github.com/pongarena/pong/tags"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

func ballSpeed(vel *components.VelocityData) float64 {
	return math.Hypot(vel.X, vel.Y)
}

func TestBallBouncesOffBottomWall(t *testing.T) {
	e := newTestECS()
	factory.CreateArena(e)
	ball := spawnTestBall(e, gamemath.Vec2{X: 0, Y: -50}, components.VelocityData{X: 0, Y: -400})
	vel := components.Velocity.Get(ball)

	bounced := false
	for i := 0; i < 120; i++ {
		UpdateVelocity(e)
		UpdateCollisions(e)
		if vel.Y > 0 {
			bounced = true
			break
		}
	}
	if !bounced {
		t.Fatalf("ball never bounced off the bottom wall")
	}
	if vel.Y != 400 {
		t.Errorf("reflection must preserve speed: got vy=%v, want 400", vel.Y)
	}
	if vel.X != 0 {
		t.Errorf("a vertical wall bounce must not touch vx, got %v", vel.X)
	}

	// The ball now climbs back out; no further flips.
	for i := 0; i < 10; i++ {
		UpdateVelocity(e)
		UpdateCollisions(e)
		if vel.Y < 0 {
			t.Fatalf("ball re-reflected while leaving the wall on tick %d", i)
		}
	}
}

func TestNoDoubleReflectionWhileOverlapping(t *testing.T) {
	e := newTestECS()
	factory.CreateArena(e)
	// Already intruding into the bottom wall.
	ball := spawnTestBall(e, gamemath.Vec2{X: 0, Y: -287}, components.VelocityData{X: 0, Y: -400})
	vel := components.Velocity.Get(ball)

	UpdateCollisions(e)
	if vel.Y != 400 {
		t.Fatalf("expected reflection, got vy=%v", vel.Y)
	}

	// Same overlap, next tick: the ball is already leaving, leave it alone.
	UpdateCollisions(e)
	if vel.Y != 400 {
		t.Errorf("reflection repeated on a persisting overlap, vy=%v", vel.Y)
	}
}

func TestBallBouncesOffPaddleFace(t *testing.T) {
	e := newTestECS()
	factory.CreatePaddle(e, tags.Right)
	paddleX := cfg.Arena.RightWall - cfg.Paddle.GapFromSide
	// Just past the paddle's left face, at paddle center height.
	ball := spawnTestBall(e,
		gamemath.Vec2{X: paddleX - cfg.Paddle.Width/2 - cfg.Ball.Size/2 + 2, Y: 0},
		components.VelocityData{X: 400, Y: 0})
	vel := components.Velocity.Get(ball)

	UpdateCollisions(e)
	if vel.X != -400 {
		t.Errorf("expected horizontal reflection, got vx=%v", vel.X)
	}
	if vel.Y != 0 {
		t.Errorf("face hit must not touch vy, got %v", vel.Y)
	}
}

func TestCornerHitReflectsBothAxes(t *testing.T) {
	e := newTestECS()
	paddle := factory.CreatePaddle(e, tags.Right)
	factory.CreateWall(e, factory.WallBottom)

	// Park the paddle at its lowest position so its bottom edge sits close
	// to the wall, then lodge the ball into the corner between them,
	// moving down and to the right.
	lower, _ := PaddleBounds()
	components.Transform.Get(paddle).Pos.Y = lower

	paddleX := cfg.Arena.RightWall - cfg.Paddle.GapFromSide
	ball := spawnTestBall(e,
		gamemath.Vec2{X: paddleX - cfg.Paddle.Width/2 - cfg.Ball.Size/2 + 2, Y: -283},
		components.VelocityData{X: 300, Y: -300})
	vel := components.Velocity.Get(ball)

	UpdateCollisions(e)
	if vel.X != -300 || vel.Y != 300 {
		t.Errorf("expected both axes to reflect, got (%v, %v)", vel.X, vel.Y)
	}
	if sp := ballSpeed(vel); math.Abs(sp-math.Hypot(300, 300)) > 1e-9 {
		t.Errorf("corner reflection changed speed to %v", sp)
	}
}

func TestGoalScoresForOpponentAndReserves(t *testing.T) {
	e := newTestECS()
	factory.CreateArena(e)
	factory.CreateScoreboard(e)
	// Overlapping the left goal wall.
	ball := spawnTestBall(e, gamemath.Vec2{X: cfg.Arena.LeftWall + 4, Y: 0},
		components.VelocityData{X: -400, Y: 0})

	UpdateCollisions(e)

	scoreEntry, ok := components.Score.First(e.World)
	if !ok {
		t.Fatalf("scoreboard missing")
	}
	score := components.Score.Get(scoreEntry)
	if score.RightScore != 1 || score.LeftScore != 0 {
		t.Fatalf("left goal must credit the right player: got left=%d right=%d",
			score.LeftScore, score.RightScore)
	}

	pos := components.Transform.Get(ball).Pos
	if pos.X != cfg.Ball.StartX || pos.Y != cfg.Ball.StartY {
		t.Errorf("ball must re-serve from the start position, got (%v, %v)", pos.X, pos.Y)
	}

	vel := components.Velocity.Get(ball)
	if sp := ballSpeed(vel); math.Abs(sp-cfg.Ball.Speed) > 1e-9 {
		t.Errorf("serve speed %v, want %v", sp, cfg.Ball.Speed)
	}
	if vel.X >= 0 {
		t.Errorf("serve must head back toward the conceding side, got vx=%v", vel.X)
	}
}

func TestRightGoalCreditsLeftPlayer(t *testing.T) {
	e := newTestECS()
	factory.CreateArena(e)
	factory.CreateScoreboard(e)
	spawnTestBall(e, gamemath.Vec2{X: cfg.Arena.RightWall - 4, Y: 0},
		components.VelocityData{X: 400, Y: 0})

	UpdateCollisions(e)

	scoreEntry, _ := components.Score.First(e.World)
	score := components.Score.Get(scoreEntry)
	if score.LeftScore != 1 || score.RightScore != 0 {
		t.Errorf("right goal must credit the left player: got left=%d right=%d",
			score.LeftScore, score.RightScore)
	}
}

func TestCollisionEventsReachSubscribers(t *testing.T) {
	e := newTestECS()
	factory.CreateArena(e)
	spawnTestBall(e, gamemath.Vec2{X: 0, Y: -287}, components.VelocityData{X: 0, Y: -400})

	hits := 0
	events.Collision.Subscribe(e.World, func(w donburi.World, ev events.CollisionData) {
		hits++
	})

	UpdateCollisions(e)
	devents.ProcessAllEvents(e.World)
	if hits != 1 {
		t.Errorf("expected one collision event, got %d", hits)
	}

	// A ball in open court publishes nothing.
	ball, _ := tags.Ball.First(e.World)
	components.Transform.Get(ball).Pos = gamemath.Vec2{X: 0, Y: 0}
	UpdateCollisions(e)
	devents.ProcessAllEvents(e.World)
	if hits != 1 {
		t.Errorf("collision event fired without an overlap, total %d", hits)
	}
}

func TestCollisionsWithoutBallAreNoOp(t *testing.T) {
	e := newTestECS()
	factory.CreateArena(e)
	// Must not panic with no ball in the world.
	UpdateCollisions(e)
}
