package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	UIChanged         <-chan UIState
	StateChanged      <-chan StateChange
	FullscreenChanged <-chan FullscreenChange
	Error             <-chan ErrorEvent
	Done              <-chan struct{}

	// Internal write channels
	uiCh         chan UIState
	stateCh      chan StateChange
	fullscreenCh chan FullscreenChange
	errorCh      chan ErrorEvent
	doneCh       chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		uiCh:         make(chan UIState, eventBufferSize),
		stateCh:      make(chan StateChange, eventBufferSize),
		fullscreenCh: make(chan FullscreenChange, eventBufferSize),
		errorCh:      make(chan ErrorEvent, eventBufferSize),
		doneCh:       make(chan struct{}),
	}
	s.UIChanged = s.uiCh
	s.StateChanged = s.stateCh
	s.FullscreenChanged = s.fullscreenCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendUI sends a UI snapshot. When the buffer is full the oldest snapshot is
// dropped so the newest one always gets through.
func (s *Subscription) sendUI(ui UIState) {
	for {
		select {
		case s.uiCh <- ui:
			return
		default:
		}
		select {
		case <-s.uiCh:
		default:
		}
	}
}

// sendState sends a state change event (non-blocking).
func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendFullscreen sends a fullscreen change event (non-blocking).
func (s *Subscription) sendFullscreen(e FullscreenChange) {
	select {
	case s.fullscreenCh <- e:
	default:
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
