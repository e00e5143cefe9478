package mines

import "strconv"

// Kind is the fixed content of a cell: an adjacency count 0-8 or [Mine].
type Kind int8

// Mine is a sentinel, never a real count.
const Mine Kind = 99

func Count(n int) Kind {
	return Kind(n)
}

func (k Kind) IsMine() bool {
	return k == Mine
}

// Count returns the adjacency count, or -1 for a mine.
func (k Kind) Count() int {
	if k == Mine {
		return -1
	}
	return int(k)
}

func (k Kind) String() string {
	if k == Mine {
		return "mine"
	}
	return strconv.Itoa(int(k))
}

type Visibility int8

const (
	Hidden Visibility = iota
	Revealed
	Flagged
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "?"
	}
}

type Outcome int8

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "?"
	}
}

type Tile struct {
	kind       Kind
	visibility Visibility
	checked    bool
}

func NewTile(k Kind) Tile {
	return Tile{kind: k, visibility: Hidden}
}

func (t Tile) Kind() Kind {
	return t.kind
}

func (t Tile) Visibility() Visibility {
	return t.visibility
}

func (t Tile) Checked() bool {
	return t.checked
}

func (t Tile) Is(v Visibility, mine bool) bool {
	return t.visibility == v && t.kind.IsMine() == mine
}

// LeftClick opens a hidden tile. Revealed and flagged tiles are left alone,
// so a flagged mine cannot go off.
func (t *Tile) LeftClick() Outcome {
	if t.visibility != Hidden {
		return Playing
	}
	t.visibility = Revealed
	if t.kind.IsMine() {
		return Lost
	}
	return Playing
}

func (t *Tile) RightClick() {
	switch t.visibility {
	case Hidden:
		t.visibility = Flagged
	case Flagged:
		t.visibility = Hidden
	}
}

// Glyph projects the tile for rendering. forced is set once the session is
// over and uncovers everything except correct flags.
func (t Tile) Glyph(forced bool) Glyph {
	switch t.visibility {
	case Revealed:
		if t.kind.IsMine() {
			return ExplodedMine
		}
		return Glyph(t.kind)
	case Flagged:
		if forced && !t.kind.IsMine() {
			return Glyph(t.kind)
		}
		return Flag
	default:
		if !forced {
			return Covered
		}
		if t.kind.IsMine() {
			return UnflaggedMine
		}
		return Glyph(t.kind)
	}
}

func (t Tile) View(selected, forced bool) View {
	return View{Glyph: t.Glyph(forced), Selected: selected}
}
