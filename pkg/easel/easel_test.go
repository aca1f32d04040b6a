package easel

import (
	"errors"
	"strings"
	"testing"
	"time"

	"easel/internal/platform"
	"easel/pkg/easel/event"
)

func headless() (*platform.Headless, platform.Config) {
	cfg := platform.Config{Title: "test", WidthPx: 320, HeightPx: 200}
	return platform.NewHeadless(cfg), cfg
}

func TestRunReleasesDisplayOnCleanExit(t *testing.T) {
	d, cfg := headless()
	err := runOn(d, cfg, func(w *Window) error {
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if d.Releases() != 1 {
		t.Fatalf("display released %d times, want 1", d.Releases())
	}
}

func TestPanicBecomesErrorAndReleasesOnce(t *testing.T) {
	d, cfg := headless()
	err := runOn(d, cfg, func(w *Window) error {
		panic("boom")
	})
	if err == nil {
		t.Fatal("expected an error from a panicking callback")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("error should carry the panic value, got %v", err)
	}
	if d.Releases() != 1 {
		t.Fatalf("display released %d times, want exactly 1", d.Releases())
	}
}

func TestRunPropagatesCallbackError(t *testing.T) {
	fail := errors.New("application failed")
	d, cfg := headless()
	err := runOn(d, cfg, func(w *Window) error {
		return fail
	})
	if !errors.Is(err, fail) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if d.Releases() != 1 {
		t.Fatalf("display released %d times, want 1", d.Releases())
	}
}

func TestDisplayStopUnblocksWaitingCallback(t *testing.T) {
	d, cfg := headless()
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- runOn(d, cfg, func(w *Window) error {
			close(started)
			_, err := w.Wait(event.FilterAll)
			return err
		})
	}()

	<-started
	time.Sleep(10 * time.Millisecond)
	d.Stop()

	select {
	case err := <-done:
		// a closed window while blocked on the queue is a normal exit
		if err != nil {
			t.Fatalf("expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after display stop")
	}
	if d.Releases() != 1 {
		t.Fatalf("display released %d times, want 1", d.Releases())
	}
}

func TestCallbackSeesPushedMessages(t *testing.T) {
	d, cfg := headless()
	var got event.Message
	err := runOn(d, cfg, func(w *Window) error {
		w.Events().Push(event.Raw{Msg: uint32(event.KindKeyDown), VKCode: byte(event.KeySpace)})
		m, err := w.Wait(event.FilterKey)
		got = m
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	kb, ok := got.Keyboard()
	if !ok || kb.Key != event.KeySpace {
		t.Fatalf("unexpected message: %+v", got)
	}
}

func TestAmbientStyleState(t *testing.T) {
	d, cfg := headless()
	w := newWindow(d, cfg)

	if w.LineColor() != White || w.BkColor() != Black {
		t.Fatalf("unexpected defaults: line=%v bk=%v", w.LineColor(), w.BkColor())
	}

	w.SetLineColor(Red)
	w.SetFillColor(Yellow)
	w.SetTextColor(LightBlue)
	w.SetBkColor(DarkGray)
	w.SetLineStyle(DashLine(3))
	w.SetFillStyle(HatchedFill(HatchCross))
	w.SetTextHeight(30, 0, "Arial")
	w.SetBkMode(Transparent)

	if w.LineColor() != Red || w.FillColor() != Yellow || w.TextColor() != LightBlue || w.BkColor() != DarkGray {
		t.Fatal("color state not retained")
	}
	if s := w.LineStyle(); s.Pattern != LineDash || s.Thickness != 3 {
		t.Fatalf("line style not retained: %+v", s)
	}
	if s := w.FillStyle(); s.Kind != FillHatched || s.Hatch != HatchCross {
		t.Fatalf("fill style not retained: %+v", s)
	}
	if s := w.TextStyle(); s.Height != 30 || s.Face != "Arial" {
		t.Fatalf("text style not retained: %+v", s)
	}
	if w.BkMode() != Transparent {
		t.Fatal("bk mode not retained")
	}
}

func TestWindowSizeAndAlive(t *testing.T) {
	d, cfg := headless()
	w := newWindow(d, cfg)
	if w.Width() != 320 || w.Height() != 200 {
		t.Fatalf("unexpected size %dx%d", w.Width(), w.Height())
	}
	if !w.Alive() {
		t.Fatal("fresh window should be alive")
	}
	w.shutdown()
	if w.Alive() {
		t.Fatal("window should not be alive after shutdown")
	}
	if err := w.FlushBatch(); !errors.Is(err, event.ErrClosed) {
		t.Fatalf("flush after shutdown should fail closed, got %v", err)
	}
}
