package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/marquee/internal/app"
	"github.com/llehouerou/marquee/internal/config"
	"github.com/llehouerou/marquee/internal/errmsg"
	"github.com/llehouerou/marquee/internal/icons"
	"github.com/llehouerou/marquee/internal/log"
	"github.com/llehouerou/marquee/internal/metrics"
	"github.com/llehouerou/marquee/internal/mpris"
	"github.com/llehouerou/marquee/internal/notify"
	"github.com/llehouerou/marquee/internal/playback"
	"github.com/llehouerou/marquee/internal/player"
	"github.com/llehouerou/marquee/internal/stderr"
	"github.com/llehouerou/marquee/internal/ui/poster"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: marquee <media file>")
		os.Exit(2)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(arg string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := log.OpenFile()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer logFile.Close()
	log.Configure(log.Config{Level: cfg.LogLevel, Output: logFile})
	logger := log.WithComponent("main")

	if err := stderr.Start(log.WithComponent("audio")); err != nil {
		logger.Warn().Err(err).Msg("capture stderr")
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	path := cfg.ResolveMedia(arg)
	details, err := app.LoadDetails(path, logger)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpMediaOpen, path, err))
	}

	if cfg.HasMetrics() {
		srv, err := metrics.Listen(cfg.MetricsAddr, log.WithComponent("metrics"))
		if err != nil {
			logger.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMetricsServe, err))
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = srv.Shutdown(ctx)
			}()
		}
	}

	controls := cfg.GetControlsConfig()
	playerCfg := cfg.GetPlayerConfig()

	m := app.New(app.Options{
		Path:    path,
		Details: details,
		Open: func(p string) (app.Media, *player.TrackInfo, error) {
			pl, err := player.Open(p, player.Config{
				StatusInterval: playerCfg.StatusInterval(),
				Loop:           playerCfg.Loop,
			})
			if err != nil {
				return nil, nil, err
			}
			return pl, pl.TrackInfo(), nil
		},
		Playback: playback.Options{
			HideAfter:    controls.HideAfter(),
			SkipInterval: controls.SkipInterval(),
			StartMuted:   playerCfg.StartMuted,
		},
		Hooks:  sessionHooks(cfg, details, logger),
		Images: poster.Supported(),
		Logger: log.WithComponent("app"),
	})

	p := tea.NewProgram(m, tea.WithMouseCellMotion())
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Shutdown()
	}
	return err
}

// sessionHooks publishes each player session to the desktop integrations
// enabled in cfg.
func sessionHooks(cfg *config.Config, details app.Details, logger zerolog.Logger) []app.SessionHook {
	var hooks []app.SessionHook

	if cfg.MPRISEnabled() {
		hooks = append(hooks, func(ctrl *playback.Controller, info *player.TrackInfo) func() {
			if info == nil {
				info = details.Info
			}
			adapter, err := mpris.New(ctrl, info)
			if err != nil {
				logger.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMPRISStart, err))
				return nil
			}
			return func() { _ = adapter.Close() }
		})
	}

	if cfg.NotificationsEnabled() {
		notifier, err := notify.New()
		if err != nil {
			logger.Warn().Err(err).Msg("desktop notifications unavailable")
			return hooks
		}
		hooks = append(hooks, func(ctrl *playback.Controller, _ *player.TrackInfo) func() {
			ctx, cancel := context.WithCancel(context.Background())
			sub := ctrl.Subscribe()
			go notify.Watch(ctx, notifier, sub, notify.WatchOptions{
				Title:  details.Title(),
				Retry:  ctrl.Retry,
				Logger: log.WithComponent("notify"),
			})
			return cancel
		})
	}

	return hooks
}
