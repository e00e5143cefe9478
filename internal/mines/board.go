package mines

import (
	"fmt"
	"math/rand/v2"
)

type Board struct {
	GameParams
	geo   Geometry
	tiles []Tile
}

func NewBoard(p GameParams, r *rand.Rand) (*Board, error) {
	kinds, err := Generate(p, r)
	if err != nil {
		return nil, err
	}
	return newBoard(p, kinds), nil
}

// NewBoardFromKinds builds a board over a fixed layout. Every count in kinds
// must match the mines around it.
func NewBoardFromKinds(p GameParams, kinds []Kind) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(kinds) != p.Len() {
		return nil, &InvalidLayoutError{
			Index:   -1,
			message: fmt.Sprintf("layout has %d cells, want %d", len(kinds), p.Len()),
		}
	}
	geo := p.Geometry()
	mineCount := 0
	for i, k := range kinds {
		if k.IsMine() {
			mineCount++
			continue
		}
		if want := countMines(geo, kinds, i); k.Count() != want {
			return nil, &InvalidLayoutError{
				Index:   i,
				message: fmt.Sprintf("count is %d, %d mines around", k.Count(), want),
			}
		}
	}
	if mineCount != p.MineCount {
		return nil, &InvalidLayoutError{
			Index:   -1,
			message: fmt.Sprintf("layout has %d mines, want %d", mineCount, p.MineCount),
		}
	}
	return newBoard(p, kinds), nil
}

func newBoard(p GameParams, kinds []Kind) *Board {
	tiles := make([]Tile, len(kinds))
	for i, k := range kinds {
		tiles[i] = NewTile(k)
	}
	return &Board{GameParams: p, geo: p.Geometry(), tiles: tiles}
}

func (b *Board) Geometry() Geometry {
	return b.geo
}

// Tile returns a copy; the board is the only owner of its tiles.
func (b *Board) Tile(i int) Tile {
	return b.tiles[i]
}

func (b *Board) LeftClick(i int) Outcome {
	return b.tiles[i].LeftClick()
}

func (b *Board) RightClick(i int) {
	b.tiles[i].RightClick()
}

// ResetChecked clears the per-turn marks. Call it once at the start of every
// turn, never between chain-dig passes.
func (b *Board) ResetChecked() {
	for i := range b.tiles {
		b.tiles[i].checked = false
	}
}

// ChainDig opens every hidden count that touches an open blank, repeating
// full scans until one changes nothing. It returns the number of cells opened.
func (b *Board) ChainDig() int {
	revealed, _ := b.chainDig()
	return revealed
}

func (b *Board) chainDig() (revealed, passes int) {
	for {
		n := b.digPass()
		if n == 0 {
			return
		}
		revealed += n
		passes++
	}
}

func (b *Board) digPass() (revealed int) {
	for i := range b.tiles {
		t := &b.tiles[i]
		if t.visibility != Hidden || t.kind.IsMine() || t.checked {
			continue
		}
		if b.touchesOpenBlank(i) {
			t.visibility = Revealed
			t.checked = true
			revealed++
		}
	}
	return
}

func (b *Board) touchesOpenBlank(i int) bool {
	for _, j := range b.geo.Neighbors(i) {
		if n := b.tiles[j]; n.visibility == Revealed && n.kind == Count(0) {
			return true
		}
	}
	return false
}

// CheckWin holds when every safe cell is open and no safe cell is flagged.
// Mines may be either hidden or flagged.
func (b *Board) CheckWin() bool {
	for _, t := range b.tiles {
		if t.kind.IsMine() {
			continue
		}
		if t.visibility != Revealed {
			return false
		}
	}
	return true
}

func (b *Board) Exploded() bool {
	for _, t := range b.tiles {
		if t.Is(Revealed, true) {
			return true
		}
	}
	return false
}

func (b *Board) Outcome() Outcome {
	switch {
	case b.Exploded():
		return Lost
	case b.CheckWin():
		return Won
	default:
		return Playing
	}
}

func (b *Board) FlagCount() (count int) {
	for _, t := range b.tiles {
		if t.visibility == Flagged {
			count++
		}
	}
	return
}

func (b *Board) RevealedCount() (count int) {
	for _, t := range b.tiles {
		if t.visibility == Revealed {
			count++
		}
	}
	return
}

func (b *Board) Kinds() []Kind {
	kinds := make([]Kind, len(b.tiles))
	for i, t := range b.tiles {
		kinds[i] = t.kind
	}
	return kinds
}

// Render projects every cell in row-major order.
func (b *Board) Render(selection int, forced bool) Grid {
	g := make(Grid, len(b.tiles))
	for i, t := range b.tiles {
		g[i] = t.View(i == selection, forced)
	}
	return g
}

func (b *Board) ToString(selection int, forced bool) string {
	return b.Render(selection, forced).ToString(b.Width)
}
