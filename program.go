package main

import (
	"fmt"
	"math/rand"
	"time"

	"git.lost.host/meutraa/letterfall/internal/audio"
	"git.lost.host/meutraa/letterfall/internal/config"
	"git.lost.host/meutraa/letterfall/internal/game"
	"git.lost.host/meutraa/letterfall/internal/gesture"
	"git.lost.host/meutraa/letterfall/internal/input"
	"git.lost.host/meutraa/letterfall/internal/render"
	"git.lost.host/meutraa/letterfall/internal/round"
	"git.lost.host/meutraa/letterfall/internal/schedule"
	"git.lost.host/meutraa/letterfall/internal/theme"
	"github.com/rs/zerolog/log"
)

// Program owns the frame loop. Key events, fall ticks and deferred round
// tasks are all handled on the loop goroutine.
type Program struct {
	Config *config.Config

	renderer   render.Renderer
	source     input.Source
	board      *render.Board
	queue      *schedule.Queue
	controller *round.Controller

	nextTick time.Duration
}

func (p *Program) Init() error {
	cfg := p.Config
	start := time.Now()

	switch cfg.Backend {
	case config.BackendTcell:
		r, err := render.NewTcellRenderer()
		if nil != err {
			return fmt.Errorf("unable to open screen: %w", err)
		}
		if err := r.Init(); nil != err {
			return fmt.Errorf("unable to initialize screen: %w", err)
		}
		p.renderer = r
		p.source = input.NewTcellSource(r.Screen(), start)
	case config.BackendEvdev:
		src, err := input.NewEvdevSource(cfg.Device, start)
		if nil != err {
			return fmt.Errorf("unable to open keyboard device: %w", err)
		}
		p.source = src
		p.renderer = &render.DefaultRenderer{}
	default:
		src, err := input.NewKeyboardSource(start)
		if nil != err {
			return fmt.Errorf("unable to open keyboard: %w", err)
		}
		p.source = src
		p.renderer = &render.DefaultRenderer{}
	}
	if _, ok := p.renderer.(*render.DefaultRenderer); ok {
		if err := p.renderer.Init(); nil != err {
			p.source.Close()
			return fmt.Errorf("unable to initialize terminal: %w", err)
		}
	}

	p.board = render.NewBoard(&theme.DefaultTheme{}, cfg.RowHeight, cfg.BarRow)
	p.board.Resize(p.renderer.Size())

	displays := round.Displays{p.board}
	if !cfg.Mute {
		cues, err := audio.New(cfg.CueDir)
		if nil != err {
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			displays = append(displays, cues)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().
		Str("backend", cfg.Backend).
		Int64("seed", seed).
		Msg("starting")

	p.queue = &schedule.Queue{}
	p.controller = round.New(
		round.Settings{
			Lives:          cfg.Lives,
			WinScore:       cfg.WinScore,
			SwipeChance:    cfg.SwipeChance,
			Speed:          cfg.Speed,
			StartOffset:    cfg.StartOffset,
			SuccessDelay:   cfg.SuccessDelay,
			CollisionDelay: cfg.CollisionDelay,
			Singles:        cfg.Singles,
			Triples:        cfg.Swipes,
		},
		gesture.New(cfg.Row, cfg.Timing),
		displays,
		p.board,
		p.queue,
		rand.New(rand.NewSource(seed)),
	)
	return nil
}

func (p *Program) Deinit() {
	if err := p.renderer.Deinit(); nil != err {
		log.Error().Err(err).Msg("unable to restore terminal")
	}
	if err := p.source.Close(); nil != err {
		log.Error().Err(err).Msg("unable to close input")
	}
}

func (p *Program) Run() {
	p.controller.Start()
	render.Loop(p.Config.FramePeriod, p.Update)
}

// Update runs one frame and reports whether to keep going.
func (p *Program) Update(duration time.Duration) bool {
	p.board.Resize(p.renderer.Size())

	events := p.source.Events()
drain:
	for {
		select {
		case ev := <-events:
			if ev.Action == game.Quit {
				return false
			}
			p.controller.HandleKey(ev)
		default:
			break drain
		}
	}

	for p.nextTick <= duration {
		p.controller.Tick()
		p.nextTick += p.Config.TickPeriod
	}

	for _, task := range p.queue.Advance(duration) {
		p.controller.Fire(task)
	}

	p.board.SetStats(p.controller.Stats())
	p.board.Draw(p.renderer)
	return true
}
