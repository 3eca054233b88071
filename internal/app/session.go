// internal/app/session.go
package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/llehouerou/marquee/internal/orientation"
	"github.com/llehouerou/marquee/internal/playback"
	"github.com/llehouerou/marquee/internal/player"
)

// Media is an opened media handle that must be closed after use.
type Media interface {
	player.Handle
	Close() error
}

// Opener opens the media at path.
type Opener func(path string) (Media, *player.TrackInfo, error)

// SessionHook runs when a player session starts, e.g. to publish it over
// MPRIS. The returned function, if any, runs when the session stops.
type SessionHook func(ctrl *playback.Controller, info *player.TrackInfo) (stop func())

// session is one visit of the player screen: the media, its controller and
// the orientation coordinator attached to the player route.
type session struct {
	gen   int
	media Media
	ctrl  *playback.Controller
	sub   *playback.Subscription
	stops []func()
	log   zerolog.Logger
}

func startSession(
	gen int,
	media Media,
	info *player.TrackInfo,
	route *Route,
	lock orientation.Lock,
	opts playback.Options,
	hooks []SessionHook,
	logger zerolog.Logger,
) (*session, error) {
	coord := orientation.New(lock, route, &logger)
	opts.Orientation = coord
	opts.Logger = &logger

	ctrl, err := playback.New(media, opts)
	if err != nil {
		_ = coord.Release()
		return nil, fmt.Errorf("create controller: %w", err)
	}

	coord.Attach()
	if route.Focused() {
		_ = coord.Focus()
	}

	s := &session{
		gen:   gen,
		media: media,
		ctrl:  ctrl,
		sub:   ctrl.Subscribe(),
		log:   logger,
	}
	for _, hook := range hooks {
		if stop := hook(ctrl, info); stop != nil {
			s.stops = append(s.stops, stop)
		}
	}
	return s, nil
}

// stop disposes the controller, which releases the orientation lock, then
// runs hook cleanups and closes the media. Every step runs.
func (s *session) stop() error {
	var errs []error
	if err := s.ctrl.Dispose(); err != nil {
		errs = append(errs, err)
	}
	for i := len(s.stops) - 1; i >= 0; i-- {
		s.stops[i]()
	}
	if err := s.media.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close media: %w", err))
	}
	err := errors.Join(errs...)
	if err != nil {
		s.log.Warn().Err(err).Msg("stop session")
	}
	return err
}
