package round

import (
	"time"

	"git.lost.host/meutraa/letterfall/internal/game"
	"git.lost.host/meutraa/letterfall/internal/gesture"
	"git.lost.host/meutraa/letterfall/internal/score"
	"github.com/rs/zerolog/log"
)

type Settings struct {
	Lives       int
	WinScore    int
	SwipeChance float64 // probability a round is a swipe
	Speed       float64 // fall offset added per tick
	StartOffset float64

	SuccessDelay   time.Duration
	CollisionDelay time.Duration

	Singles []game.Combo
	Triples []game.Combo
}

// State is the round in play. It is replaced wholesale by every Start.
type State struct {
	Combo      game.Combo
	Active     bool
	FallOffset float64
}

// Controller owns one round at a time and decides how it ends.
// It is not safe for concurrent use; Tick, HandleKey and Fire must be
// called from one goroutine.
type Controller struct {
	settings   Settings
	recognizer *gesture.Recognizer
	display    Display
	probe      CollisionProbe
	scheduler  Scheduler
	random     Random

	tally *score.Tally
	stats score.Stats
	state State
	phase game.Phase
	epoch uint64
}

func New(s Settings, r *gesture.Recognizer, d Display, p CollisionProbe, sch Scheduler, rnd Random) *Controller {
	return &Controller{
		settings:   s,
		recognizer: r,
		display:    d,
		probe:      p,
		scheduler:  sch,
		random:     rnd,
		tally:      score.NewTally(s.Lives, s.WinScore),
	}
}

func (c *Controller) Phase() game.Phase {
	return c.phase
}

func (c *Controller) Over() bool {
	return c.phase != game.Playing
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Epoch() uint64 {
	return c.epoch
}

func (c *Controller) Score() int {
	return c.tally.Score
}

func (c *Controller) Lives() int {
	return c.tally.Lives
}

func (c *Controller) Stats() score.Stats {
	return c.stats
}

func (c *Controller) pick() game.Combo {
	if len(c.settings.Triples) > 0 &&
		(len(c.settings.Singles) == 0 || c.random.Float64() < c.settings.SwipeChance) {
		return c.settings.Triples[c.random.Intn(len(c.settings.Triples))]
	}
	return c.settings.Singles[c.random.Intn(len(c.settings.Singles))]
}

// Start begins a new round with a random combo.
func (c *Controller) Start() {
	if c.Over() {
		return
	}
	c.epoch++
	c.state = State{
		Combo:      c.pick(),
		Active:     true,
		FallOffset: c.settings.StartOffset,
	}
	c.recognizer.Reset(c.state.Combo)

	log.Debug().
		Uint64("epoch", c.epoch).
		Str("combo", c.state.Combo.String()).
		Msg("round started")

	c.display.DisplayCombo(c.state.Combo.Strings(), c.state.Combo.Swipe())
	c.display.DisplayFallPosition(c.state.FallOffset)
	c.display.DisplayScore(c.tally.Score)
	c.display.DisplayLives(c.tally.Lives)
}

// Tick advances the fall clock by one step or ends the round on collision.
func (c *Controller) Tick() {
	if c.Over() || !c.state.Active {
		return
	}
	if c.probe.QueryCollision() {
		c.collide()
		return
	}
	c.state.FallOffset += c.settings.Speed
	c.display.DisplayFallPosition(c.state.FallOffset)
}

func (c *Controller) collide() {
	c.state.Active = false
	c.stats.Collisions++
	lost := c.tally.LoseLife()
	c.display.DisplayLives(c.tally.Lives)

	log.Info().
		Uint64("epoch", c.epoch).
		Str("combo", c.state.Combo.String()).
		Int("lives", c.tally.Lives).
		Msg("combo reached the lose line")

	if lost {
		c.finish(game.Lost)
		return
	}
	c.scheduler.After(c.settings.CollisionDelay, Task{Epoch: c.epoch})
}

// HandleKey feeds a key event to the recognizer while a round is active.
func (c *Controller) HandleKey(ev game.KeyEvent) {
	if c.Over() || !c.state.Active {
		return
	}
	switch ev.Action {
	case game.KeyUp:
		c.recognizer.KeyUp(ev)
	case game.KeyDown:
		res := c.recognizer.KeyDown(ev)
		log.Debug().
			Str("symbol", string(ev.Symbol)).
			Uint16("code", uint16(ev.Code)).
			Dur("at", ev.Time).
			Stringer("result", res).
			Msg("key down")

		switch res {
		case gesture.Debounced:
			c.stats.Debounced++
		case gesture.Reset:
			c.stats.Resets++
		case gesture.Advanced:
			c.stats.AddGap(c.recognizer.Gap())
		case gesture.Completed:
			if c.state.Combo.Swipe() {
				c.stats.AddGap(c.recognizer.Gap())
			}
			c.succeed()
		}
	}
}

func (c *Controller) succeed() {
	c.state.Active = false
	if c.state.Combo.Swipe() {
		c.stats.Swipes++
	} else {
		c.stats.Taps++
	}
	won := c.tally.Award(score.Points(c.state.Combo))
	c.display.DisplayScore(c.tally.Score)

	log.Info().
		Uint64("epoch", c.epoch).
		Str("combo", c.state.Combo.String()).
		Int("score", c.tally.Score).
		Msg("combo matched")

	if won {
		c.finish(game.Won)
		return
	}
	c.scheduler.After(c.settings.SuccessDelay, Task{Epoch: c.epoch})
}

func (c *Controller) finish(p game.Phase) {
	c.phase = p
	c.display.DisplayOutcome(p.Outcome())
	log.Info().
		Stringer("phase", p).
		Int("score", c.tally.Score).
		Int("lives", c.tally.Lives).
		Msg("game over")
}

// Fire starts the next round for a task scheduled by the current round.
// Tasks from earlier rounds, or arriving after the game ended, are dropped.
func (c *Controller) Fire(t Task) {
	if c.Over() || t.Epoch != c.epoch || c.state.Active {
		log.Debug().
			Uint64("task", t.Epoch).
			Uint64("epoch", c.epoch).
			Stringer("phase", c.phase).
			Msg("dropping stale task")
		return
	}
	c.Start()
}
