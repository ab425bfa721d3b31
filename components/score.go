package components

import "github.com/yohamta/donburi"

// ScoreData tracks the match score. Singleton; mutated only by collision
// resolution when the ball reaches a goal wall.
type ScoreData struct {
	LeftScore  int
	RightScore int
}

var Score = donburi.NewComponentType[ScoreData]()
