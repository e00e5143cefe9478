package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// Glyph is the character class a renderer draws for one cell.
type Glyph int8

const (
	Covered       Glyph = -2
	Flag          Glyph = -1
	Blank         Glyph = 0
	ExplodedMine  Glyph = 65
	UnflaggedMine Glyph = 67
	// 1-8 for an open cell with that many mined neighbours
)

func (g Glyph) IsDigit() bool {
	return 1 <= g && g <= 8
}

func (g Glyph) IsMine() bool {
	return g == ExplodedMine || g == UnflaggedMine
}

func (g Glyph) String() string {
	switch g {
	case Covered:
		return "□"
	case Flag:
		return "⚑"
	case Blank:
		return " "
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(g))
	case ExplodedMine:
		return "X"
	case UnflaggedMine:
		return "*"
	default:
		return "!"
	}
}

type View struct {
	Glyph    Glyph
	Selected bool
}

func (v View) String() string {
	if v.Selected {
		return v.Glyph.String() + "◀"
	}
	return v.Glyph.String() + " "
}

type Grid []View

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			fmt.Fprint(&b, g[y*width+x].String())
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// Rows splits the grid into row-major slices of width cells.
func (g Grid) Rows(width int) [][]View {
	rows := make([][]View, 0, len(g)/width)
	for start := 0; start+width <= len(g); start += width {
		rows = append(rows, g[start:start+width])
	}
	return rows
}
