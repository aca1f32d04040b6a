package main

import (
	"errors"
	"testing"

	"easel/pkg/easel/event"
)

func TestDrainFailsOnUnrecognizedRecord(t *testing.T) {
	q := event.NewQueue()
	q.Push(event.Raw{Msg: uint32(event.KindKeyDown), VKCode: byte(event.KeySpace)})
	q.Push(event.Raw{Msg: 0xFFFFFFFF})

	var st state
	quit, err := drain(q, nil, &st)
	if quit {
		t.Fatal("a queue failure must not read as a quit request")
	}
	if !errors.Is(err, event.ErrUnrecognizedKind) {
		t.Fatalf("expected ErrUnrecognizedKind, got %v", err)
	}
	if st.key == "" {
		t.Fatal("messages ahead of the bad record should still be folded in")
	}
}

func TestEscapeQuitRequiresPrevDown(t *testing.T) {
	q := event.NewQueue()
	q.Push(event.Raw{Msg: uint32(event.KindKeyUp), VKCode: byte(event.KeyEscape)})

	var st state
	quit, err := drain(q, nil, &st)
	if err != nil {
		t.Fatal(err)
	}
	if quit {
		t.Fatal("escape release without a preceding press must not quit")
	}

	q.Push(event.Raw{Msg: uint32(event.KindKeyUp), VKCode: byte(event.KeyEscape), PrevDown: true})
	quit, err = drain(q, nil, &st)
	if err != nil {
		t.Fatal(err)
	}
	if !quit {
		t.Fatal("escape release should quit the demo")
	}
}

func TestDrainFoldsMouseState(t *testing.T) {
	q := event.NewQueue()
	q.Push(event.Raw{Msg: uint32(event.KindMouseMove), X: 120, Y: 45, Left: true})
	q.Push(event.Raw{Msg: uint32(event.KindMouseWheel), X: 120, Y: 45, Left: true, Wheel: 120})

	var st state
	quit, err := drain(q, nil, &st)
	if err != nil || quit {
		t.Fatalf("unexpected drain result: quit=%v err=%v", quit, err)
	}
	if st.mouse.X != 120 || st.mouse.Y != 45 || !st.mouse.Left {
		t.Fatalf("mouse state not folded: %+v", st.mouse)
	}
	if st.wheel != 120 {
		t.Fatalf("wheel ticks not accumulated: %d", st.wheel)
	}
}
