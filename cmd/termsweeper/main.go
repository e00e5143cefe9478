package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/termsweeper/internal/config"
	"github.com/vancomm/termsweeper/internal/logging"
	"github.com/vancomm/termsweeper/internal/mines"
	"github.com/vancomm/termsweeper/internal/tui"
)

func createRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	return rand.New(rand.NewPCG(seed, seed)), seed
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(os.Args[1:], os.Environ(), ".env")
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "termsweeper:", err)
		os.Exit(1)
	}

	log, err := logging.New(logging.Options{
		Development: cfg.Development(),
		File:        cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "termsweeper:", err)
		os.Exit(1)
	}
	mines.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	params, err := cfg.Params()
	if err != nil {
		log.Error("invalid board params: ", err)
		fmt.Fprintln(os.Stderr, "termsweeper:", err)
		os.Exit(1)
	}
	r, seed := createRand(cfg.RandSeed)
	session, err := mines.NewRandomSession(params, r)
	if err != nil {
		log.Error("unable to create board: ", err)
		fmt.Fprintln(os.Stderr, "termsweeper:", err)
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{
		"params": params.Seed(),
		"seed":   seed,
	}).Info("new game")

	if err := run(mainCtx, tui.New(session, log, seed)); err != nil {
		log.Error("exit reason: ", err)
		fmt.Fprintln(os.Stderr, "termsweeper:", err)
		os.Exit(1)
	}
}

// run drives the program until the game ends or ctx is cancelled; on
// cancellation the session is quit so the final board is still drawn.
func run(ctx context.Context, model tui.Model) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(model)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		p.Send(tui.QuitMsg{})
		return nil
	})

	return g.Wait()
}
