package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/termsweeper/internal/mines"
)

// QuitMsg ends the session as if the player had pressed a quit key.
type QuitMsg struct{}

type Model struct {
	session *mines.Session
	log     logrus.FieldLogger
	seed    uint64
}

func New(session *mines.Session, log logrus.FieldLogger, seed uint64) Model {
	return Model{session: session, log: log, seed: seed}
}

func (m Model) Session() *mines.Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		return m.apply(mines.Quit)
	case tea.KeyMsg:
		c, ok := Decode(msg)
		if !ok {
			m.log.WithField("key", msg.String()).Debug("ignored key")
			return m, nil
		}
		if !m.session.Navigable(c) {
			return m, nil
		}
		return m.apply(c)
	}
	return m, nil
}

func (m Model) apply(c mines.Command) (tea.Model, tea.Cmd) {
	m.session.Apply(c)
	if m.session.Ended() {
		m.log.WithFields(logrus.Fields{
			"outcome": m.session.Outcome(),
			"quit":    m.session.Quit(),
			"turns":   m.session.Turns(),
			"params":  m.session.Board().Seed(),
			"seed":    m.seed,
		}).Info("game over")
		return m, tea.Quit
	}
	return m, nil
}
