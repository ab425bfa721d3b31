package systems

import (
	"fmt"

	"github.com/pongarena/pong/components"
	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawScoreboard renders the two score counters either side of the center
// line at the top of the screen. Read-only view of the Score component.
func DrawScoreboard(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)

	fontFace := fonts.Score.Get()
	width := float64(cfg.C.Width)
	y := int(cfg.Scoreboard.TextPadding + cfg.Scoreboard.FontSize)

	leftStr := fmt.Sprintf("%d", score.LeftScore)
	rightStr := fmt.Sprintf("%d", score.RightScore)

	// Approximate glyph width for the monospace face.
	charWidth := int(cfg.Scoreboard.FontSize * 0.6)
	gap := int(cfg.Scoreboard.FontSize)

	leftX := int(width/2) - gap - len(leftStr)*charWidth
	rightX := int(width/2) + gap

	text.Draw(screen, leftStr, fontFace, leftX, y, cfg.ScoreColor)
	text.Draw(screen, rightStr, fontFace, rightX, y, cfg.ScoreColor)
}
