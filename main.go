package main

import (
	"flag"
	"log"

	cfg "github.com/pongarena/pong/config"
	"github.com/pongarena/pong/fonts"
	"github.com/pongarena/pong/scenes"
	"github.com/pongarena/pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Score, gomono.TTF, cfg.Scoreboard.FontSize)
	fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 32)
	fonts.LoadFontWithSize(fonts.Menu, goregular.TTF, 20)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12)

	g := &Game{}

	if cfg.Debug.SkipMenu {
		g.scene = scenes.NewArenaScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	flag.BoolVar(&cfg.Debug.SkipMenu, "skip-menu", false, "skip the menu and start a match directly")
	flag.Parse()

	// Every downstream bound computation divides by the arena dimensions;
	// a bad set of wall constants must not open a window.
	if err := cfg.Arena.Validate(); err != nil {
		log.Fatalf("Invalid arena configuration: %v", err)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Pong!")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Restore saved settings (fullscreen, mute) before the first frame.
	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettings(saved)
		}
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
