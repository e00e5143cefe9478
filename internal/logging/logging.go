package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Options struct {
	Development bool
	// File receives every entry; empty disables logging altogether, since
	// the terminal is taken by the game.
	File string
}

func (o Options) Level() logrus.Level {
	if o.Development {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

func New(o Options) (*logrus.Logger, error) {
	log := logrus.New()
	if err := Setup(log, o); err != nil {
		return nil, err
	}
	return log, nil
}

func Setup(log *logrus.Logger, o Options) error {
	log.SetLevel(o.Level())
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	if o.File == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   o.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      o.Level(),
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", o.File, err)
	}
	log.AddHook(hook)

	return nil
}
