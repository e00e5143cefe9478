package mines

import (
	"fmt"
	"math"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Len() int {
	return p.Width * p.Height
}

// fits reports whether Width*Height is representable as an int.
func (p GameParams) fits() bool {
	return p.Height <= math.MaxInt/p.Width
}

// Validate reports an [*InvalidParamsError] unless the board has at least one
// cell and at least one cell without a mine.
func (p GameParams) Validate() error {
	if p.Width < 1 || p.Height < 1 || !p.fits() ||
		p.MineCount < 0 || p.MineCount >= p.Len() {
		return &InvalidParamsError{Params: p}
	}
	return nil
}

func (p GameParams) Geometry() Geometry {
	return Geometry{Width: p.Width, Height: p.Height}
}

// Seed encodes the params as "width:height:mines".
func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(strings.TrimSpace(seed), ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
