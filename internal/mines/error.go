package mines

import "fmt"

type InvalidParamsError struct {
	Params GameParams
}

// [InvalidParamsError] implements [error]
func (e *InvalidParamsError) Error() string {
	p := e.Params
	switch {
	case p.Width < 1:
		return fmt.Sprintf("cannot create a board with width %d", p.Width)
	case p.Height < 1:
		return fmt.Sprintf("cannot create a board with height %d", p.Height)
	case !p.fits():
		return fmt.Sprintf("a %dx%d board is too large", p.Width, p.Height)
	case p.MineCount < 0:
		return fmt.Sprintf("cannot create a board with %d mines", p.MineCount)
	case p.MineCount >= p.Width*p.Height:
		return fmt.Sprintf(
			"not enough space for %d mines on a %dx%d board (need at least one free cell)",
			p.MineCount, p.Width, p.Height,
		)
	default:
		return "invalid board params"
	}
}

type InvalidLayoutError struct {
	Index   int
	message string
}

// [InvalidLayoutError] implements [error]
func (e *InvalidLayoutError) Error() string {
	if e.Index < 0 {
		return e.message
	}
	return fmt.Sprintf("cell %d: %s", e.Index, e.message)
}
