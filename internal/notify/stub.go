//go:build !linux

package notify

// stubNotifier is a no-op notifier for non-Linux platforms. It is not an
// ActionSource, so Watch sends failure notifications without a Retry button.
type stubNotifier struct{}

// New returns a no-op notifier on non-Linux platforms.
func New() (Notifier, error) {
	return &stubNotifier{}, nil
}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (s *stubNotifier) Close(_ uint32) error {
	return nil
}
