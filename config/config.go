package config

import (
	"fmt"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all renderers draw on.
const Default = ecs.LayerDefault

// Config holds general game configuration.
type Config struct {
	Width    int // window width in pixels
	Height   int // window height in pixels
	TickRate int // fixed simulation ticks per second
	TimeStep float64
}

// ArenaConfig defines the playfield in arena coordinates: the origin is the
// arena center and y grows upward. The four values are the wall center lines.
type ArenaConfig struct {
	LeftWall      float64
	RightWall     float64
	BottomWall    float64
	TopWall       float64
	WallThickness float64
}

// Width returns the horizontal distance between the side wall center lines.
func (a ArenaConfig) Width() float64 {
	return a.RightWall - a.LeftWall
}

// Height returns the vertical distance between the top and bottom wall center lines.
func (a ArenaConfig) Height() float64 {
	return a.TopWall - a.BottomWall
}

// Validate checks the wall constants describe a real playfield. Every bound
// computation downstream divides or offsets by these dimensions, so a
// non-positive arena must abort startup.
func (a ArenaConfig) Validate() error {
	if a.Width() <= 0 {
		return fmt.Errorf("arena width must be positive, got %v (left=%v right=%v)",
			a.Width(), a.LeftWall, a.RightWall)
	}
	if a.Height() <= 0 {
		return fmt.Errorf("arena height must be positive, got %v (bottom=%v top=%v)",
			a.Height(), a.BottomWall, a.TopWall)
	}
	return nil
}

// PaddleConfig contains paddle dimensions and movement values.
type PaddleConfig struct {
	Width       float64
	Height      float64
	Speed       float64 // vertical speed in units per second
	Padding     float64 // closest a paddle edge may get to a wall
	GapFromSide float64 // horizontal inset of the paddle center from its side wall
}

// BallConfig contains the ball's starting state and dimensions.
type BallConfig struct {
	StartX float64
	StartY float64
	Z      float64 // render order; the ball draws above overlapping sprites
	Size   float64 // full extent of the square bounding box
	Speed  float64 // serve speed in units per second
}

// ScoreboardConfig contains score display values.
type ScoreboardConfig struct {
	FontSize    float64
	TextPadding float64 // distance from the top edge and from the center line
}

// CenterLineConfig describes the dotted half-court line.
type CenterLineConfig struct {
	Count  int
	Width  float64
	Height float64
}

// MenuConfig contains main menu layout values.
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// SoundID identifies a synthesized sound effect.
type SoundID int

const (
	SoundBounce SoundID = iota
	SoundScore
	SoundMenu
)

// ToneConfig describes one synthesized square-wave blip.
type ToneConfig struct {
	FreqHz float64
	Millis int
	Volume float64
}

// AudioConfig contains audio playback configuration.
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Tones         map[SoundID]ToneConfig
}

// ShakeConfig contains collision screen-shake values.
type ShakeConfig struct {
	Intensity float64 // initial offset magnitude in pixels
	Ticks     float64 // decay duration in simulation ticks
}

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	SkipMenu bool // skip the menu and go directly into a match
}

// Global configuration instances, populated once in init and read-only after.
var (
	C          *Config
	Arena      ArenaConfig
	Paddle     PaddleConfig
	Ball       BallConfig
	Scoreboard ScoreboardConfig
	CenterLine CenterLineConfig
	Menu       MenuConfig
	Audio      AudioConfig
	Shake      ShakeConfig
	Debug      DebugConfig
)

// Shared RGBA color constants.
var (
	BackgroundColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	PaddleColor     = color.RGBA{R: 77, G: 77, B: 179, A: 255}
	BallColor       = color.RGBA{R: 255, G: 128, B: 128, A: 255}
	WallColor       = color.RGBA{R: 204, G: 204, B: 204, A: 255}
	TextColor       = color.RGBA{R: 128, G: 128, B: 255, A: 255}
	ScoreColor      = color.RGBA{R: 255, G: 128, B: 128, A: 255}
	White           = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange    = color.RGBA{R: 255, G: 180, B: 50, A: 255}
)

func init() {
	C = &Config{
		Width:    920,
		Height:   620,
		TickRate: 60,
	}
	C.TimeStep = 1.0 / float64(C.TickRate)

	Arena = ArenaConfig{
		LeftWall:      -450,
		RightWall:     450,
		BottomWall:    -300,
		TopWall:       300,
		WallThickness: 10,
	}

	Paddle = PaddleConfig{
		Width:       20,
		Height:      120,
		Speed:       500,
		Padding:     10,
		GapFromSide: 60,
	}

	Ball = BallConfig{
		StartX: 0,
		StartY: -50,
		Z:      1,
		Size:   30,
		Speed:  400,
	}

	Scoreboard = ScoreboardConfig{
		FontSize:    40,
		TextPadding: 5,
	}

	CenterLine = CenterLineConfig{
		Count:  10,
		Width:  5,
		Height: 20,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        ScoreColor,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            140,
		MenuStartY:        240,
		MenuItemHeight:    30,
		MenuItemGap:       15,
	}

	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		Tones: map[SoundID]ToneConfig{
			SoundBounce: {FreqHz: 440, Millis: 50, Volume: 0.6},
			SoundScore:  {FreqHz: 220, Millis: 200, Volume: 0.8},
			SoundMenu:   {FreqHz: 880, Millis: 30, Volume: 0.4},
		},
	}

	Shake = ShakeConfig{
		Intensity: 4.0,
		Ticks:     8,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
