package components

import "github.com/yohamta/donburi"

// MainMenuOption identifies an entry in the main menu.
type MainMenuOption int

const (
	MainMenuPlay MainMenuOption = iota
	MainMenuFullscreen
	MainMenuMute
	MainMenuExit
)

type MenuData struct {
	SelectedIndex int
	Options       []MainMenuOption
}

var Menu = donburi.NewComponentType[MenuData]()
