package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteShape selects how a solid-color sprite is rasterized.
type SpriteShape int

const (
	ShapeRect SpriteShape = iota
	ShapeCircle
)

type SpriteData struct {
	Color color.RGBA
	Shape SpriteShape
}

var Sprite = donburi.NewComponentType[SpriteData]()
