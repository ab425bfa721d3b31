package factory

import (
	"github.com/pongarena/pong/archetypes"
	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/gamemath"
	"github.com/pongarena/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WallLocation identifies which side of the arena a wall sits on.
type WallLocation int

const (
	WallLeft WallLocation = iota
	WallRight
	WallBottom
	WallTop
)

// Position returns the wall's center point.
func (l WallLocation) Position() gamemath.Vec2 {
	switch l {
	case WallLeft:
		return gamemath.Vec2{X: cfg.Arena.LeftWall}
	case WallRight:
		return gamemath.Vec2{X: cfg.Arena.RightWall}
	case WallBottom:
		return gamemath.Vec2{Y: cfg.Arena.BottomWall}
	default:
		return gamemath.Vec2{Y: cfg.Arena.TopWall}
	}
}

// Size returns the wall's full extents. Walls overhang the arena by one
// thickness so the corners close up.
func (l WallLocation) Size() gamemath.Vec2 {
	switch l {
	case WallLeft, WallRight:
		return gamemath.Vec2{
			X: cfg.Arena.WallThickness,
			Y: cfg.Arena.Height() + cfg.Arena.WallThickness,
		}
	default:
		return gamemath.Vec2{
			X: cfg.Arena.Width() + cfg.Arena.WallThickness,
			Y: cfg.Arena.WallThickness,
		}
	}
}

// CreateWall spawns one static boundary wall. The side walls double as
// goals: a ball overlapping one scores for the opposing player.
func CreateWall(ecs *ecs.ECS, location WallLocation) *donburi.Entry {
	var extra []donburi.IComponentType
	switch location {
	case WallLeft:
		extra = append(extra, tags.Goal, tags.Left)
	case WallRight:
		extra = append(extra, tags.Goal, tags.Right)
	}

	wall := archetypes.Wall.Spawn(ecs, extra...)
	components.Transform.SetValue(wall, components.TransformData{
		Pos:  location.Position(),
		Size: location.Size(),
	})
	components.Sprite.SetValue(wall, components.SpriteData{
		Color: cfg.WallColor,
	})
	return wall
}

// CreateArena spawns all four boundary walls.
func CreateArena(ecs *ecs.ECS) {
	CreateWall(ecs, WallLeft)
	CreateWall(ecs, WallRight)
	CreateWall(ecs, WallBottom)
	CreateWall(ecs, WallTop)
}

// CreateCenterLine spawns the dotted half-court line segments. Render-only;
// the segments carry no collider.
func CreateCenterLine(ecs *ecs.ECS) {
	increment := cfg.Arena.Height() / float64(cfg.CenterLine.Count)
	bottom := -cfg.Arena.Height()/2 + cfg.CenterLine.Height + cfg.Arena.WallThickness

	for i := 0; i < cfg.CenterLine.Count; i++ {
		segment := archetypes.CenterLineSegment.Spawn(ecs)
		components.Transform.SetValue(segment, components.TransformData{
			Pos:  gamemath.Vec2{X: 0, Y: float64(i)*increment + bottom},
			Size: gamemath.Vec2{X: cfg.CenterLine.Width, Y: cfg.CenterLine.Height},
		})
		components.Sprite.SetValue(segment, components.SpriteData{
			Color: cfg.WallColor,
		})
	}
}
