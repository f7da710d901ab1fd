package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/appengine-ltd/dice-rooms/internal/config"
	"github.com/appengine-ltd/dice-rooms/internal/game"
	"github.com/appengine-ltd/dice-rooms/internal/ui"
)

// version, commit, date are injected at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        int64
		script      string
		debug       bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 0, "random seed (overrides DICEROOMS_SEED; 0 keeps it)")
	flag.StringVar(&script, "script", "", "run commands from a file, or - for stdin, instead of the terminal UI")
	flag.BoolVar(&debug, "debug", false, "log one line per roll to stderr")
	flag.Parse()

	if showVersion {
		fmt.Printf("Dice Rooms %s (%s) %s\n", version, commit, date)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("dicerooms: %v", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	state, err := game.NewState(cfg, game.Carry{})
	if err != nil {
		config.Exitf("dicerooms: %v", err)
	}
	session := ui.NewSession(state)
	if debug {
		session.Logger = log.New(os.Stderr, "dicerooms ", log.LstdFlags)
	}

	if script != "" {
		if err := runScript(script, session); err != nil {
			log.Fatalf("dicerooms: %v", err)
		}
		return
	}

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
	}, session)
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScript(path string, session *ui.Session) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	return ui.RunScript(in, os.Stdout, session)
}
