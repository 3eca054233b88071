package player

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultStatusInterval is how often a Player reports status to its subscriber.
const DefaultStatusInterval = 250 * time.Millisecond

var (
	// ErrNotLoaded is returned by commands issued to a closed Player.
	ErrNotLoaded = errors.New("player: no media loaded")
	// ErrUnsupported is returned by Open for files it cannot decode.
	ErrUnsupported = errors.New("player: unsupported format")
)

// Config tunes a Player.
type Config struct {
	StatusInterval time.Duration
	Loop           bool
}

// Player plays a local audio file through the system speaker and reports
// its status on a fixed interval. It implements Handle.
type Player struct {
	mu sync.Mutex

	state    State
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	output   beep.Streamer
	info     *TrackInfo

	queued       bool // output sequence is currently in the speaker mixer
	looping      bool
	muted        bool
	justFinished bool
	interval     time.Duration

	// ended is signalled from the speaker goroutine; that goroutine holds the
	// speaker lock, so it must never take mu.
	ended chan struct{}

	sub      func(RawStatus)
	stopPoll chan struct{}
	pollDone chan struct{}
}

var (
	speakerMu   sync.Mutex
	speakerRate beep.SampleRate
	speakerUp   bool
)

func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerUp {
		return speakerRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, fmt.Errorf("init speaker: %w", err)
	}
	speakerRate = rate
	speakerUp = true
	return speakerRate, nil
}

// Open decodes the file at path and returns a paused Player.
func Open(path string, cfg Config) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}

	rate, err := initSpeaker(format.SampleRate)
	if err != nil {
		streamer.Close()
		f.Close()
		return nil, err
	}

	interval := cfg.StatusInterval
	if interval <= 0 {
		interval = DefaultStatusInterval
	}

	p := &Player{
		state:    Paused,
		file:     f,
		streamer: streamer,
		format:   format,
		looping:  cfg.Loop,
		interval: interval,
		ended:    make(chan struct{}, 1),
	}
	p.ctrl = &beep.Ctrl{Streamer: streamer, Paused: true}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}

	p.output = p.volume
	if format.SampleRate != rate {
		p.output = beep.Resample(4, format.SampleRate, rate, p.volume)
	}

	info, _ := ReadTrackInfo(path)
	if info == nil {
		info = FallbackTrackInfo(path)
	}
	info.Duration = format.SampleRate.D(streamer.Len())
	p.info = info

	return p, nil
}

// TrackInfo returns the metadata of the open file.
func (p *Player) TrackInfo() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.info
}

// State returns the current player state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetLooping controls whether the stream rewinds when it ends.
func (p *Player) SetLooping(loop bool) {
	p.mu.Lock()
	p.looping = loop
	p.mu.Unlock()
}

// Subscribe registers fn and starts the status loop.
func (p *Player) Subscribe(fn func(RawStatus)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Stopped {
		return ErrNotLoaded
	}
	p.sub = fn
	if p.stopPoll == nil {
		p.stopPoll = make(chan struct{})
		p.pollDone = make(chan struct{})
		go p.pollLoop(p.stopPoll, p.pollDone)
	}
	return nil
}

// Unsubscribe stops the status loop and waits for it to exit.
func (p *Player) Unsubscribe() error {
	p.mu.Lock()
	stop, done := p.stopPoll, p.pollDone
	p.stopPoll, p.pollDone = nil, nil
	p.sub = nil
	p.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
	return nil
}

// Close stops playback and releases the file. Safe to call more than once.
func (p *Player) Close() error {
	_ = p.Unsubscribe()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Stopped {
		return nil
	}

	// A nil streamer ends the queued sequence on the next mixer pass.
	speaker.Lock()
	p.ctrl.Streamer = nil
	speaker.Unlock()

	err := p.streamer.Close()
	if cerr := p.file.Close(); err == nil {
		err = cerr
	}
	p.streamer = nil
	p.file = nil
	p.queued = false
	p.state = Stopped
	return err
}

func (p *Player) pollLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-p.ended:
			p.handleEnded()
			p.report()
		case <-ticker.C:
			p.report()
		}
	}
}

func (p *Player) handleEnded() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Stopped {
		return
	}
	p.queued = false
	p.justFinished = true

	if !p.looping {
		p.state = Ended
		return
	}

	speaker.Lock()
	err := p.streamer.Seek(0)
	speaker.Unlock()
	if err != nil {
		p.state = Ended
		return
	}
	p.enqueueLocked()
}

// report builds the current status and hands it to the subscriber outside mu.
func (p *Player) report() {
	p.mu.Lock()
	fn := p.sub
	status := p.statusLocked()
	p.justFinished = false
	p.mu.Unlock()

	if fn != nil {
		fn(status)
	}
}

func (p *Player) statusLocked() RawStatus {
	if p.state == Stopped {
		return RawStatus{}
	}

	speaker.Lock()
	pos := p.streamer.Position()
	length := p.streamer.Len()
	streamErr := p.streamer.Err()
	speaker.Unlock()

	if p.state == Ended {
		pos = length
	}

	s := RawStatus{
		Loaded:       true,
		Position:     Dur(p.format.SampleRate.D(pos)),
		Duration:     Dur(p.format.SampleRate.D(length)),
		Playing:      p.state == Playing,
		Looping:      p.looping,
		JustFinished: p.justFinished,
	}
	if streamErr != nil {
		s.Error = streamErr.Error()
	}
	return s
}

// enqueueLocked hands the output sequence to the speaker mixer.
func (p *Player) enqueueLocked() {
	ended := p.ended
	speaker.Play(beep.Seq(p.output, beep.Callback(func() {
		select {
		case ended <- struct{}{}:
		default:
		}
	})))
	p.queued = true
}
