package event

import (
	"errors"
	"testing"
	"time"
)

func oneOfEach() []Raw {
	return []Raw{
		{Msg: uint32(KindMouseMove), X: 10, Y: 20},
		{Msg: uint32(KindKeyDown), VKCode: byte(KeyA)},
		{Msg: uint32(KindChar), Code: 'a'},
		{Msg: uint32(KindSize), WParam: 1},
	}
}

func TestFilterExclusivity(t *testing.T) {
	cases := []struct {
		filter Filter
		want   Kind
	}{
		{FilterMouse, KindMouseMove},
		{FilterKey, KindKeyDown},
		{FilterChar, KindChar},
		{FilterWindow, KindSize},
	}
	for _, c := range cases {
		q := NewQueue()
		for _, r := range oneOfEach() {
			q.Push(r)
		}
		m, ok, err := q.Poll(c.filter, true)
		if err != nil {
			t.Fatal(err)
		}
		if !ok || m.Kind != c.want {
			t.Fatalf("filter %04b: got %v, want %v", c.filter, m.Kind, c.want)
		}
		if _, ok, _ := q.Poll(c.filter, true); ok {
			t.Fatalf("filter %04b: second poll should be empty", c.filter)
		}
		if q.Len() != 3 {
			t.Fatalf("filter %04b: non-matching records should stay queued, len=%d", c.filter, q.Len())
		}
	}

	q := NewQueue()
	for _, r := range oneOfEach() {
		q.Push(r)
	}
	var kinds []Kind
	for {
		m, ok, err := q.Poll(FilterAll, true)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		kinds = append(kinds, m.Kind)
	}
	if len(kinds) != 4 {
		t.Fatalf("FilterAll should yield every kind, got %v", kinds)
	}
}

func TestPeekLeavesRecordQueued(t *testing.T) {
	q := NewQueue()
	q.Push(Raw{Msg: uint32(KindKeyDown), VKCode: byte(KeyW)})

	first, ok, err := q.Poll(FilterKey, false)
	if err != nil || !ok {
		t.Fatalf("first peek: ok=%v err=%v", ok, err)
	}
	second, ok, err := q.Poll(FilterKey, false)
	if err != nil || !ok {
		t.Fatalf("second peek: ok=%v err=%v", ok, err)
	}
	if first != second {
		t.Fatalf("peeked messages differ: %+v vs %+v", first, second)
	}

	if _, ok, _ := q.Poll(FilterKey, true); !ok {
		t.Fatal("consume after peek should still find the record")
	}
	if _, ok, _ := q.Poll(FilterKey, true); ok {
		t.Fatal("consumed record returned twice")
	}
}

func TestDrainCompletenessFIFO(t *testing.T) {
	q := NewQueue()
	const n = 16
	for i := 0; i < n; i++ {
		q.Push(Raw{Msg: uint32(KindKeyDown), VKCode: byte(i)})
		// interleave records the filter must skip over
		q.Push(Raw{Msg: uint32(KindMouseMove), X: uint16(i)})
	}

	var seen []byte
	for {
		m, ok, err := q.Poll(FilterKey, true)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		kb, _ := m.Keyboard()
		seen = append(seen, kb.Key.Raw())
	}
	if len(seen) != n {
		t.Fatalf("drained %d keyboard records, want %d", len(seen), n)
	}
	for i, b := range seen {
		if b != byte(i) {
			t.Fatalf("order broken at %d: got %d", i, b)
		}
	}
	if q.Len() != n {
		t.Fatalf("mouse records should remain, len=%d", q.Len())
	}
}

func TestPollSurfacesUnrecognizedRecord(t *testing.T) {
	q := NewQueue()
	q.Push(Raw{Msg: 0xFFFFFFFF})
	q.Push(Raw{Msg: uint32(KindKeyDown), VKCode: byte(KeyB)})

	_, ok, err := q.Poll(FilterKey, true)
	if !errors.Is(err, ErrUnrecognizedKind) {
		t.Fatalf("expected ErrUnrecognizedKind, got ok=%v err=%v", ok, err)
	}

	// the bad record is dropped, never retried
	m, ok, err := q.Poll(FilterKey, true)
	if err != nil || !ok {
		t.Fatalf("queue should recover past the bad record: ok=%v err=%v", ok, err)
	}
	if kb, _ := m.Keyboard(); kb.Key != KeyB {
		t.Fatalf("unexpected key after bad record: %v", kb.Key)
	}
}

func TestFlush(t *testing.T) {
	q := NewQueue()
	for _, r := range oneOfEach() {
		q.Push(r)
	}
	q.Flush(FilterMouse | FilterChar)
	if q.Len() != 2 {
		t.Fatalf("expected 2 records after flush, got %d", q.Len())
	}
	if _, ok, _ := q.Poll(FilterMouse, false); ok {
		t.Fatal("mouse record survived flush")
	}
	if _, ok, _ := q.Poll(FilterKey, false); !ok {
		t.Fatal("keyboard record should survive flush")
	}
}

func TestWaitBlocksUntilPush(t *testing.T) {
	q := NewQueue()
	done := make(chan Message, 1)
	go func() {
		m, err := q.Wait(FilterKey)
		if err != nil {
			t.Errorf("wait: %v", err)
		}
		done <- m
	}()

	select {
	case <-done:
		t.Fatal("wait returned before any push")
	case <-time.After(20 * time.Millisecond):
	}

	q.Push(Raw{Msg: uint32(KindMouseMove)}) // must not wake the key waiter for good
	q.Push(Raw{Msg: uint32(KindKeyDown), VKCode: byte(KeySpace)})

	select {
	case m := <-done:
		if kb, _ := m.Keyboard(); kb.Key != KeySpace {
			t.Fatalf("unexpected key: %v", kb.Key)
		}
	case <-time.After(time.Second):
		t.Fatal("wait did not wake on matching push")
	}
}

func TestCloseWakesWait(t *testing.T) {
	q := NewQueue()
	errc := make(chan error, 1)
	go func() {
		_, err := q.Wait(FilterAll)
		errc <- err
	}()
	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case err := <-errc:
		if !errors.Is(err, ErrClosed) {
			t.Fatalf("expected ErrClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("close did not wake wait")
	}

	q.Push(Raw{Msg: uint32(KindKeyDown)})
	if q.Len() != 0 {
		t.Fatal("push after close should be dropped")
	}
}
