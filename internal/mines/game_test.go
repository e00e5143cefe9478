package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionEmptyBoardWinsInOneClick(t *testing.T) {
	s := NewSession(boardWithMines(t, 3, 3))
	assert.Equal(t, Won, s.Apply(LeftClick))
	assert.True(t, s.Ended())
	assert.False(t, s.Quit())
	assert.Equal(t, 1, s.Turns())
	for _, v := range s.View() {
		assert.Equal(t, Blank, v.Glyph)
	}
}

func TestSessionNavigation(t *testing.T) {
	s := NewSession(boardWithMines(t, 3, 3, 4))
	assert.Equal(t, 0, s.Selection())

	assert.False(t, s.Navigable(MoveUp))
	assert.False(t, s.Navigable(MoveLeft))
	assert.True(t, s.Navigable(MoveDown))
	assert.True(t, s.Navigable(LeftClick))

	s.Apply(MoveUp)
	s.Apply(MoveLeft)
	assert.Equal(t, 0, s.Selection())

	s.Apply(MoveRight)
	s.Apply(MoveRight)
	s.Apply(MoveRight)
	assert.Equal(t, 2, s.Selection())
	s.Apply(MoveDown)
	s.Apply(MoveDown)
	s.Apply(MoveDown)
	assert.Equal(t, 8, s.Selection())
	s.Apply(MoveLeft)
	s.Apply(MoveUp)
	assert.Equal(t, 4, s.Selection())
	assert.Equal(t, 0, s.Turns())
	assert.Equal(t, Playing, s.Outcome())
}

func TestSessionLoss(t *testing.T) {
	s := NewSession(boardWithMines(t, 3, 3, 4))
	s.Apply(MoveDown)
	s.Apply(MoveRight)
	require.Equal(t, 4, s.Selection())

	assert.Equal(t, Lost, s.Apply(LeftClick))
	assert.True(t, s.Ended())
	assert.False(t, s.Quit())

	view := s.View()
	assert.Equal(t, ExplodedMine, view[4].Glyph)
	assert.True(t, view[4].Selected)
	assert.Equal(t, Glyph(1), view[0].Glyph)

	// the session is over; nothing moves any more
	assert.Equal(t, Lost, s.Apply(MoveUp))
	assert.Equal(t, 4, s.Selection())
	assert.Equal(t, Lost, s.Apply(Quit))
	assert.False(t, s.Quit())
}

func TestSessionFlagSafety(t *testing.T) {
	s := NewSession(boardWithMines(t, 3, 3, 4))
	s.Apply(MoveDown)
	s.Apply(MoveRight)

	s.Apply(RightClick)
	assert.Equal(t, 0, s.MinesLeft())
	assert.Equal(t, Playing, s.Apply(LeftClick))
	assert.Equal(t, Flagged, s.Board().Tile(4).Visibility())

	s.Apply(RightClick)
	assert.Equal(t, 1, s.MinesLeft())
	assert.Equal(t, Hidden, s.Board().Tile(4).Visibility())
}

func TestSessionQuitIsNotLoss(t *testing.T) {
	s := NewSession(boardWithMines(t, 3, 3, 4))
	assert.Equal(t, Playing, s.Apply(Quit))
	assert.True(t, s.Quit())
	assert.True(t, s.Ended())
	assert.Equal(t, Playing, s.Outcome())

	// forced view uncovers the board without touching it
	view := s.View()
	assert.Equal(t, UnflaggedMine, view[4].Glyph)
	assert.Equal(t, Hidden, s.Board().Tile(4).Visibility())

	s.Apply(LeftClick)
	assert.Equal(t, Hidden, s.Board().Tile(0).Visibility())
}

func TestSessionWinWithMinesHidden(t *testing.T) {
	// * 1 .
	// 1 1 .
	// . . .
	s := NewSession(boardWithMines(t, 3, 3, 0))
	for range 2 {
		s.Apply(MoveDown)
		s.Apply(MoveRight)
	}
	require.Equal(t, 8, s.Selection())
	assert.Equal(t, Won, s.Apply(LeftClick))
	assert.Equal(t, Hidden, s.Board().Tile(0).Visibility())
	assert.Equal(t, UnflaggedMine, s.View()[0].Glyph)
}

func TestSessionRandomPlaythrough(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	p := GameParams{Width: 9, Height: 9, MineCount: 10}
	commands := []Command{MoveUp, MoveDown, MoveLeft, MoveRight, LeftClick, RightClick}

	for range 50 {
		s, err := NewRandomSession(p, r)
		require.NoError(t, err)
		for !s.Ended() {
			c := commands[r.IntN(len(commands))]
			if !s.Navigable(c) {
				continue
			}
			s.Apply(c)
			require.True(t, s.Board().Geometry().Contains(s.Selection()))
			if s.Turns() > 10*p.Len() {
				s.Apply(Quit)
			}
		}
		switch s.Outcome() {
		case Won:
			assert.True(t, s.Board().CheckWin())
		case Lost:
			assert.True(t, s.Board().Exploded())
		case Playing:
			assert.True(t, s.Quit())
		}
		assert.Equal(t, s.Outcome() == Lost, s.Board().Outcome() == Lost)
	}
}

func TestNewRandomSessionRejectsInvalidParams(t *testing.T) {
	_, err := NewRandomSession(GameParams{Width: 2, Height: 2, MineCount: 4}, rand.New(rand.NewPCG(1, 2)))
	assert.Error(t, err)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "left-click", LeftClick.String())
	assert.Equal(t, "unknown", Command(42).String())
	d, ok := MoveLeft.Direction()
	assert.True(t, ok)
	assert.Equal(t, Left, d)
	_, ok = RightClick.Direction()
	assert.False(t, ok)
}
