package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vancomm/termsweeper/internal/mines"
)

var keyCommands = map[string]mines.Command{
	"esc":    mines.Quit,
	"q":      mines.Quit,
	"ctrl+c": mines.Quit,

	"z":     mines.LeftClick,
	" ":     mines.LeftClick,
	"space": mines.LeftClick,
	"enter": mines.LeftClick,

	"x": mines.RightClick,
	"f": mines.RightClick,

	"up": mines.MoveUp, "k": mines.MoveUp, "w": mines.MoveUp,
	"down": mines.MoveDown, "j": mines.MoveDown, "s": mines.MoveDown,
	"left": mines.MoveLeft, "h": mines.MoveLeft, "a": mines.MoveLeft,
	"right": mines.MoveRight, "l": mines.MoveRight, "d": mines.MoveRight,
}

// Decode maps a key press to a command. Unknown keys are ignored.
func Decode(msg tea.KeyMsg) (mines.Command, bool) {
	c, ok := keyCommands[msg.String()]
	return c, ok
}

const helpText = "Move: arrows/hjkl/wasd | Dig: z/space/enter | Flag: x/f | Quit: esc/q"
