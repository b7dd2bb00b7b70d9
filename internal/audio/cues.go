package audio

import (
	"math"
	"os"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/letterfall/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/rs/zerolog/log"
)

const (
	CueSuccess = "success"
	CueMiss    = "miss"
	CueWin     = "win"
	CueLose    = "lose"
)

const sampleRate = beep.SampleRate(44100)

var tones = map[string]struct {
	freq     float64
	duration time.Duration
}{
	CueSuccess: {880, 60 * time.Millisecond},
	CueMiss:    {220, 150 * time.Millisecond},
	CueWin:     {1320, 300 * time.Millisecond},
	CueLose:    {110, 400 * time.Millisecond},
}

// Cues plays a short sound when the score rises, a life is lost, or the
// game ends. It sits beside the board as another round display.
type Cues struct {
	play func(name string)

	score, lives         int
	scoreSeen, livesSeen bool
}

func newCues(play func(name string)) *Cues {
	return &Cues{play: play}
}

// New opens the speaker and prepares the cues. Files named after a cue
// (success.mp3, miss.ogg, ...) in dir replace the generated tones.
func New(dir string) (*Cues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); nil != err {
		return nil, err
	}
	buffers := map[string]*beep.Buffer{}
	for name, t := range tones {
		buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buffer.Append(tone(t.freq, t.duration))
		if dir != "" {
			if b, err := load(dir, name); nil != err {
				log.Warn().Err(err).Str("cue", name).Msg("unable to load cue, using a tone")
			} else if nil != b {
				buffer = b
			}
		}
		buffers[name] = buffer
	}
	return newCues(func(name string) {
		if b, ok := buffers[name]; ok {
			speaker.Play(b.Streamer(0, b.Len()))
		}
	}), nil
}

func tone(freq float64, d time.Duration) beep.Streamer {
	pos := 0
	step := 2 * math.Pi * freq / float64(sampleRate)
	return beep.Take(sampleRate.N(d), beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := 0.2 * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	}))
}

// load returns nil without error when no file exists for the cue.
func load(dir, name string) (*beep.Buffer, error) {
	for _, ext := range []string{".ogg", ".mp3"} {
		p := filepath.Join(dir, name+ext)
		f, err := os.Open(p)
		if os.IsNotExist(err) {
			continue
		}
		if nil != err {
			return nil, err
		}

		var streamer beep.StreamSeekCloser
		var format beep.Format
		if ext == ".ogg" {
			streamer, format, err = vorbis.Decode(f)
		} else {
			streamer, format, err = mp3.Decode(f)
		}
		if nil != err {
			f.Close()
			return nil, err
		}
		defer streamer.Close()

		buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buffer.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
		return buffer, nil
	}
	return nil, nil
}

func (c *Cues) DisplayCombo(symbols []string, swipe bool) {}

func (c *Cues) DisplayFallPosition(offset float64) {}

func (c *Cues) DisplayScore(score int) {
	if c.scoreSeen && score > c.score {
		c.play(CueSuccess)
	}
	c.score = score
	c.scoreSeen = true
}

func (c *Cues) DisplayLives(lives int) {
	if c.livesSeen && lives < c.lives {
		c.play(CueMiss)
	}
	c.lives = lives
	c.livesSeen = true
}

func (c *Cues) DisplayOutcome(outcome game.Outcome) {
	switch outcome {
	case game.OutcomeWin:
		c.play(CueWin)
	case game.OutcomeLose:
		c.play(CueLose)
	}
}
