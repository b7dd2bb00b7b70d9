package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"git.lost.host/meutraa/letterfall/internal/game"
	"git.lost.host/meutraa/letterfall/internal/parser"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	BackendKeyboard = "keyboard"
	BackendTcell    = "tcell"
	BackendEvdev    = "evdev"
)

type Config struct {
	Backend string
	Device  string
	Seed    int64

	Lives       int
	WinScore    int
	SwipeChance float64
	Speed       float64
	StartOffset float64
	RowHeight   float64 // fall offset units per terminal row
	BarRow      int     // rows between the lose line and the bottom edge

	TickPeriod     time.Duration
	FramePeriod    time.Duration
	SuccessDelay   time.Duration
	CollisionDelay time.Duration
	Timing         game.Timing

	Row     game.KeyRow
	Singles []game.Combo
	Swipes  []game.Combo

	Mute     bool
	CueDir   string
	LogFile  string
	LogLevel string

	row, singles, swipes string
}

func flag(app *kingpin.Application, name, help, def string) *kingpin.FlagClause {
	return app.Flag(name, help).
		Default(def).
		Envar("LETTERFALL_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_")))
}

// Parse reads flags from args, falling back to LETTERFALL_* environment
// variables and then to the defaults.
func Parse(args []string) (*Config, error) {
	c := &Config{}
	app := kingpin.New("letterfall", "Tap or swipe the falling letters before they reach the line.")
	app.Version("0.1.0")

	flag(app, "backend", "Input backend (keyboard, tcell, evdev)", BackendKeyboard).Short('b').
		EnumVar(&c.Backend, BackendKeyboard, BackendTcell, BackendEvdev)
	flag(app, "device", "evdev keyboard device", "/dev/input/event0").Short('D').StringVar(&c.Device)
	flag(app, "seed", "Random seed, 0 uses the clock", "0").Int64Var(&c.Seed)
	flag(app, "lives", "Lives at the start", "3").Short('l').IntVar(&c.Lives)
	flag(app, "win-score", "Score that wins the game", "10").Short('w').IntVar(&c.WinScore)
	flag(app, "swipe-chance", "Probability a round is a swipe", "0.5").Float64Var(&c.SwipeChance)
	flag(app, "speed", "Fall distance per tick", "2").Short('s').Float64Var(&c.Speed)
	flag(app, "start-offset", "Fall offset at the start of a round", "40").Float64Var(&c.StartOffset)
	flag(app, "row-height", "Fall distance per terminal row", "24").Float64Var(&c.RowHeight)
	flag(app, "bar-row", "Rows between the lose line and the bottom edge", "4").IntVar(&c.BarRow)
	flag(app, "tick-period", "Fall clock period", "16ms").DurationVar(&c.TickPeriod)
	flag(app, "frame-period", "Render frame period", "8ms").Short('p').DurationVar(&c.FramePeriod)
	flag(app, "success-delay", "Pause after a matched combo", "400ms").DurationVar(&c.SuccessDelay)
	flag(app, "collision-delay", "Pause after a combo reaches the line", "500ms").DurationVar(&c.CollisionDelay)
	flag(app, "swipe-limit", "Longest a swipe may take", "800ms").DurationVar(&c.Timing.SwipeLimit)
	flag(app, "min-interval", "Shortest gap between swipe keys", "50ms").DurationVar(&c.Timing.MinInterval)
	flag(app, "max-interval", "Longest gap between swipe keys", "250ms").DurationVar(&c.Timing.MaxInterval)
	flag(app, "row", "Key row, left to right", game.DefaultRow).StringVar(&c.row)
	flag(app, "singles", "Letters for single taps", game.DefaultSingles).StringVar(&c.singles)
	flag(app, "swipes", "Comma separated swipes", game.DefaultTriples).StringVar(&c.swipes)
	flag(app, "mute", "Disable audio cues", "false").Short('m').BoolVar(&c.Mute)
	flag(app, "cue-dir", "Directory with success, miss, win and lose mp3/ogg cues", "").StringVar(&c.CueDir)
	flag(app, "log-file", "Log file", "letterfall.log").StringVar(&c.LogFile)
	flag(app, "log-level", "Log level", "info").StringVar(&c.LogLevel)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	if err := c.resolve(&parser.DefaultParser{}); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) resolve(p parser.Parser) error {
	var err error
	if c.Row, err = p.ParseRow(c.row); nil != err {
		return err
	}
	if c.Singles, err = p.ParseSingles(c.singles, c.Row); nil != err {
		return err
	}
	if c.Swipes, err = p.ParseSwipes(c.swipes, c.Row); nil != err {
		return err
	}
	return c.validate()
}

func (c *Config) validate() error {
	switch {
	case len(c.Singles) == 0 && len(c.Swipes) == 0:
		return errors.New("no combos configured")
	case c.Lives < 1:
		return fmt.Errorf("lives must be positive, got %v", c.Lives)
	case c.WinScore < 1:
		return fmt.Errorf("win score must be positive, got %v", c.WinScore)
	case c.SwipeChance < 0 || c.SwipeChance > 1:
		return fmt.Errorf("swipe chance must be within [0, 1], got %v", c.SwipeChance)
	case c.Speed <= 0:
		return fmt.Errorf("speed must be positive, got %v", c.Speed)
	case c.RowHeight <= 0:
		return fmt.Errorf("row height must be positive, got %v", c.RowHeight)
	case c.BarRow < 1:
		return fmt.Errorf("bar row must be positive, got %v", c.BarRow)
	case c.TickPeriod <= 0 || c.FramePeriod <= 0:
		return errors.New("tick and frame periods must be positive")
	case c.Timing.MinInterval < 0 || c.Timing.MinInterval >= c.Timing.MaxInterval:
		return fmt.Errorf("interval window [%v, %v) is empty", c.Timing.MinInterval, c.Timing.MaxInterval)
	case c.Timing.SwipeLimit <= 0:
		return fmt.Errorf("swipe limit must be positive, got %v", c.Timing.SwipeLimit)
	}
	return nil
}
