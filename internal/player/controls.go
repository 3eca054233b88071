package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// Play starts or resumes playback. From Ended it replays from the current
// position, so callers wanting a restart seek to zero first.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case Stopped:
		return ErrNotLoaded
	case Playing:
		return nil
	case Paused, Ended:
	}

	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()

	if !p.queued {
		p.enqueueLocked()
	}
	p.state = Playing
	return nil
}

// Pause pauses playback. Pausing a player that is not playing is a no-op.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Stopped {
		return ErrNotLoaded
	}
	if !p.state.CanPause() {
		return nil
	}

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
	return nil
}

// SeekTo moves the playback position, clamped to the stream bounds.
func (p *Player) SeekTo(position time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Stopped {
		return ErrNotLoaded
	}

	n := p.format.SampleRate.N(position)

	speaker.Lock()
	length := p.streamer.Len()
	n = min(max(n, 0), length)
	err := p.streamer.Seek(n)
	speaker.Unlock()
	if err != nil {
		return err
	}

	if p.state == Ended && n < length {
		// The drained sequence is gone; Play queues a fresh one.
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
		p.state = Paused
	}
	return nil
}
