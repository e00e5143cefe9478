package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Command int8

const (
	Quit Command = iota
	LeftClick
	RightClick
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

func (c Command) String() string {
	switch c {
	case Quit:
		return "quit"
	case LeftClick:
		return "left-click"
	case RightClick:
		return "right-click"
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	default:
		return "unknown"
	}
}

// Direction reports the move a navigation command makes.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case MoveUp:
		return Up, true
	case MoveDown:
		return Down, true
	case MoveLeft:
		return Left, true
	case MoveRight:
		return Right, true
	default:
		return 0, false
	}
}

// Session runs the turn sequence over one board. It is the board's only
// owner and is not safe for concurrent use.
type Session struct {
	board     *Board
	selection int
	outcome   Outcome
	quit      bool
	turns     int
}

func NewSession(board *Board) *Session {
	return &Session{board: board}
}

func NewRandomSession(p GameParams, r *rand.Rand) (*Session, error) {
	board, err := NewBoard(p, r)
	if err != nil {
		return nil, err
	}
	return NewSession(board), nil
}

func (s *Session) Board() *Board {
	return s.board
}

func (s *Session) Selection() int {
	return s.selection
}

func (s *Session) Outcome() Outcome {
	return s.outcome
}

func (s *Session) Quit() bool {
	return s.quit
}

func (s *Session) Ended() bool {
	return s.quit || s.outcome != Playing
}

// Turns counts clicks; moves are free.
func (s *Session) Turns() int {
	return s.turns
}

func (s *Session) MinesLeft() int {
	return s.board.MineCount - s.board.FlagCount()
}

// Navigable reports whether a command may reach [Session.Apply]. Only moves
// off the edge of the grid are filtered out.
func (s *Session) Navigable(c Command) bool {
	d, ok := c.Direction()
	if !ok {
		return true
	}
	return s.board.geo.Navigable(s.selection, d)
}

// Apply plays one command to completion and returns the resulting outcome.
// Once the session has ended every command is a no-op.
func (s *Session) Apply(c Command) Outcome {
	if s.Ended() {
		return s.outcome
	}

	s.board.ResetChecked()

	switch c {
	case Quit:
		s.quit = true
		Log.WithFields(s.fields()).Info("session quit")
		return s.outcome
	case LeftClick:
		s.turns++
		if s.board.LeftClick(s.selection) == Lost {
			s.outcome = Lost
			Log.WithFields(s.fields()).Info("session lost")
			return s.outcome
		}
	case RightClick:
		s.turns++
		s.board.RightClick(s.selection)
	default:
		d, ok := c.Direction()
		if !ok {
			Log.WithField("command", c).Warn("unknown command")
			return s.outcome
		}
		if !s.board.geo.Navigable(s.selection, d) {
			return s.outcome
		}
		s.selection = s.board.geo.Step(s.selection, d)
	}

	revealed := s.board.ChainDig()
	Log.WithFields(logrus.Fields{
		"command":   c,
		"selection": s.selection,
		"revealed":  revealed,
	}).Debug("applied command")

	if s.board.CheckWin() {
		s.outcome = Won
		Log.WithFields(s.fields()).Info("session won")
	}
	return s.outcome
}

// View renders the board, uncovering everything once the session is over.
func (s *Session) View() Grid {
	return s.board.Render(s.selection, s.Ended())
}

func (s *Session) String() string {
	return s.board.ToString(s.selection, s.Ended())
}

func (s *Session) fields() logrus.Fields {
	return logrus.Fields{
		"outcome": s.outcome,
		"turns":   s.turns,
		"params":  s.board.Seed(),
	}
}
