package playback

import (
	"errors"
	"testing"
	"testing/synctest"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendUI(UIState{State: StatePlaying, ControlsVisible: true})
		sub.sendState(StateChange{Previous: StateReady, Current: StatePlaying})
		sub.sendFullscreen(FullscreenChange{Fullscreen: true})
		sub.sendError(ErrorEvent{Operation: "play", Err: errors.New("boom")})

		ui := <-sub.UIChanged
		if ui.State != StatePlaying || !ui.ControlsVisible {
			t.Errorf("UIChanged = %+v, want Playing with controls visible", ui)
		}

		e := <-sub.StateChanged
		if e.Current != StatePlaying {
			t.Errorf("StateChanged.Current = %v, want Playing", e.Current)
		}

		fs := <-sub.FullscreenChanged
		if !fs.Fullscreen {
			t.Error("FullscreenChanged.Fullscreen = false, want true")
		}

		ee := <-sub.Error
		if ee.Operation != "play" {
			t.Errorf("Error.Operation = %q, want play", ee.Operation)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	// Fill buffer
	for range eventBufferSize + 5 {
		sub.sendState(StateChange{})
	}

	// Should not block or panic - count what we got
	count := 0
	for {
		select {
		case <-sub.StateChanged:
			count++
		default:
			goto done
		}
	}
done:
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
}

func TestSubscription_UIKeepsNewest(t *testing.T) {
	sub := newSubscription()

	for i := range eventBufferSize + 5 {
		sub.sendUI(UIState{Error: string(rune('a' + i))})
	}

	var last UIState
	count := 0
	for {
		select {
		case ui := <-sub.UIChanged:
			last = ui
			count++
			continue
		default:
		}
		break
	}
	if count != eventBufferSize {
		t.Errorf("received %d snapshots, want %d", count, eventBufferSize)
	}
	if want := string(rune('a' + eventBufferSize + 4)); last.Error != want {
		t.Errorf("last snapshot = %q, want %q", last.Error, want)
	}
}
