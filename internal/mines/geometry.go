package mines

type Direction int8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "?"
	}
}

// Geometry maps flat row-major cell indices to their surroundings.
type Geometry struct {
	Width, Height int
}

type Edges struct {
	Top, Bottom, Left, Right bool
}

func (g Geometry) Len() int {
	return g.Width * g.Height
}

func (g Geometry) Last() int {
	return g.Width*g.Height - 1
}

func (g Geometry) Contains(i int) bool {
	return 0 <= i && i < g.Len()
}

func (g Geometry) Edges(i int) Edges {
	w, last := g.Width, g.Last()
	return Edges{
		Top:    i < w,
		Bottom: i-last > -w,
		Left:   i%w == 0,
		Right:  i%w == w-1,
	}
}

// Neighbors lists the in-bounds cells around i in a fixed order: up, down,
// left, up-left, down-left, right, up-right, down-right.
func (g Geometry) Neighbors(i int) []int {
	w := g.Width
	e := g.Edges(i)
	ns := make([]int, 0, 8)
	if !e.Top {
		ns = append(ns, i-w)
	}
	if !e.Bottom {
		ns = append(ns, i+w)
	}
	if !e.Left {
		ns = append(ns, i-1)
		if !e.Top {
			ns = append(ns, i-1-w)
		}
		if !e.Bottom {
			ns = append(ns, i-1+w)
		}
	}
	if !e.Right {
		ns = append(ns, i+1)
		if !e.Top {
			ns = append(ns, i+1-w)
		}
		if !e.Bottom {
			ns = append(ns, i+1+w)
		}
	}
	return ns
}

func (g Geometry) Navigable(i int, d Direction) bool {
	e := g.Edges(i)
	switch d {
	case Up:
		return !e.Top
	case Down:
		return !e.Bottom
	case Left:
		return !e.Left
	case Right:
		return !e.Right
	default:
		return false
	}
}

// Step does not clamp; check [Geometry.Navigable] first.
func (g Geometry) Step(i int, d Direction) int {
	switch d {
	case Up:
		return i - g.Width
	case Down:
		return i + g.Width
	case Left:
		return i - 1
	case Right:
		return i + 1
	default:
		return i
	}
}

func (g Geometry) XY(i int) (x, y int) {
	return i % g.Width, i / g.Width
}
