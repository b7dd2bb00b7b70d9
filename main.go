package main

import (
	"fmt"
	"os"

	"git.lost.host/meutraa/letterfall/internal/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); nil != err {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logTo points the global logger at file. The terminal belongs to the
// renderer, so nothing is logged to stdout or stderr.
func logTo(file, level string) (func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if nil != err {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)

	if file == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if nil != err {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }, nil
}

func run() error {
	// a missing .env is fine, flags and the environment still apply
	_ = godotenv.Load()

	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}

	closeLog, err := logTo(cfg.LogFile, cfg.LogLevel)
	if nil != err {
		return err
	}
	defer closeLog()

	p := &Program{Config: cfg}
	if err := p.Init(); nil != err {
		log.Error().Err(err).Msg("unable to start")
		return err
	}
	p.Run()
	p.Deinit()

	c := p.controller
	log.Info().
		Stringer("phase", c.Phase()).
		Int("score", c.Score()).
		Int("lives", c.Lives()).
		Msg("exiting")
	fmt.Printf("Score: %v  Lives: %v\n", c.Score(), c.Lives())
	if c.Over() {
		fmt.Println(c.Phase().Outcome())
	}
	return nil
}
