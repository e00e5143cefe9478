package config

import (
	"flag"
	"fmt"
	"net/url"
	"strconv"

	"github.com/vancomm/termsweeper/internal/mines"
)

// Maps flag names to the schema keys they override.
var flagKeys = map[string]string{
	"width":  "width",
	"height": "height",
	"mines":  "mine_count",
	"seed":   "rand_seed",
	"log":    "log_file",
	"mode":   "mode",
}

type flags struct {
	configPath string
	set        map[string]string
}

func parseFlags(args []string) (*flags, error) {
	const usage = "config file path"

	f := &flags{set: make(map[string]string)}

	fs := flag.NewFlagSet("termsweeper", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", usage)
	fs.StringVar(&f.configPath, "c", "", usage+" (shorthand)")
	fs.Int("width", 0, "board width")
	fs.Int("height", 0, "board height")
	fs.Int("mines", 0, "number of mines")
	fs.String("board", "", "board as width:height:mines, e.g. 15:15:50")
	fs.Uint64("seed", 0, "random seed (0 picks a fresh one)")
	fs.String("log", "", "log file path")
	fs.String("mode", "", "development or production")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = fl.Value.String()
	})

	return f, nil
}

// apply overrides cfg with the flags given on the command line. -board goes
// first so -width, -height and -mines can refine it.
func (f *flags) apply(cfg *Config) error {
	values := make(url.Values)

	if board, ok := f.set["board"]; ok {
		p, err := mines.ParseSeed(board)
		if err != nil {
			return fmt.Errorf("invalid -board: %w", err)
		}
		values.Set("width", strconv.Itoa(p.Width))
		values.Set("height", strconv.Itoa(p.Height))
		values.Set("mine_count", strconv.Itoa(p.MineCount))
	}

	for name, key := range flagKeys {
		if v, ok := f.set[name]; ok {
			values.Set(key, v)
		}
	}

	if err := decoder.Decode(cfg, values); err != nil {
		return fmt.Errorf("unable to apply flags: %w", err)
	}
	return nil
}
