package event

import (
	"errors"
	"testing"
)

func TestEscapeStopsLoopSameIteration(t *testing.T) {
	q := NewQueue()
	q.Push(Raw{Msg: uint32(KindKeyDown), VKCode: byte(KeyEscape)})

	frames := 0
	presents := 0
	l := &Loop{
		Queue:  q,
		Filter: FilterKey,
		Clear:  func() { frames++ },
		Present: func() error {
			presents++
			return nil
		},
	}
	l.Handle = func(m Message) {
		if kb, ok := m.Keyboard(); ok && kb.Key == KeyEscape {
			l.Stop()
		}
	}

	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if frames != 1 {
		t.Fatalf("loop ran %d iterations, want 1", frames)
	}
	if presents != 0 {
		t.Fatalf("stopped frame should not present, got %d", presents)
	}
	if l.Running() {
		t.Fatal("loop still reports running")
	}
}

func TestLoopDrainsBeforeStep(t *testing.T) {
	q := NewQueue()
	const n = 5
	for i := 0; i < n; i++ {
		q.Push(Raw{Msg: uint32(KindChar), Code: uint16('a' + i)})
	}

	var drained []uint16
	steps := 0
	l := &Loop{Queue: q, Filter: FilterChar}
	l.Handle = func(m Message) {
		c, _ := m.Char()
		drained = append(drained, c.Code)
	}
	l.Step = func() {
		if len(drained) != n {
			t.Fatalf("step ran with %d of %d events drained", len(drained), n)
		}
		steps++
		l.Stop()
	}

	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if steps != 1 {
		t.Fatalf("expected exactly one step, got %d", steps)
	}
	for i, c := range drained {
		if c != uint16('a'+i) {
			t.Fatalf("order broken at %d: got %q", i, rune(c))
		}
	}
}

func TestContinuePredicateStopsLoop(t *testing.T) {
	budget := 3
	frames := 0
	l := &Loop{
		Queue:  NewQueue(),
		Render: func() { frames++ },
		Continue: func() bool {
			budget--
			return budget >= 0
		},
	}
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if frames != 3 {
		t.Fatalf("expected 3 rendered frames, got %d", frames)
	}
}

func TestLoopAbortsOnClassifierError(t *testing.T) {
	q := NewQueue()
	q.Push(Raw{Msg: 0xFFFFFFFF})

	l := &Loop{Queue: q, Filter: FilterAll}
	err := l.Run()
	if !errors.Is(err, ErrUnrecognizedKind) {
		t.Fatalf("expected ErrUnrecognizedKind, got %v", err)
	}
}

func TestLoopAbortsOnPresentError(t *testing.T) {
	fail := errors.New("present failed")
	l := &Loop{
		Queue:   NewQueue(),
		Present: func() error { return fail },
	}
	if err := l.Run(); !errors.Is(err, fail) {
		t.Fatalf("expected present error, got %v", err)
	}
}
