package player

import "github.com/gopxl/beep/v2/speaker"

// SetMuted silences or restores the output without touching the position.
func (p *Player) SetMuted(muted bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Stopped {
		return ErrNotLoaded
	}

	speaker.Lock()
	p.volume.Silent = muted
	speaker.Unlock()
	p.muted = muted
	return nil
}

// Muted returns true if audio is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}
