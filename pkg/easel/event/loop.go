package event

// Loop drives one window's cooperative frame cycle. Each iteration clears
// the previous frame, drains every pending filtered message in FIFO order,
// advances application state, renders, and presents. All hooks run on the
// caller's goroutine; there is exactly one control flow.
//
// Hooks other than Present may be nil and are skipped. Present is where a
// batched frame becomes visible; its error terminates the loop.
type Loop struct {
	Queue  *Queue
	Filter Filter

	// Clear erases the previous frame before events are drained.
	Clear func()
	// Handle observes one drained message. It may call Stop.
	Handle func(Message)
	// Step advances application state once per frame, after the drain.
	Step func()
	// Render issues the frame's draw calls.
	Render func()
	// Present commits the frame to the display.
	Present func() error
	// Continue, if set, is checked at the top of every iteration. Returning
	// false stops the loop; tests use it to inject deterministic
	// termination.
	Continue func() bool

	running bool
}

// Stop requests the running -> stopped transition. The loop exits within
// the iteration that is in progress, before another frame begins.
func (l *Loop) Stop() {
	l.running = false
}

// Running reports whether Run is mid-flight.
func (l *Loop) Running() bool {
	return l.running
}

// Run cycles frames until Stop is called, Continue returns false, or an
// error surfaces from the queue or from Present. A classifier failure from
// the queue aborts the loop; it is never retried.
func (l *Loop) Run() error {
	filter := l.Filter
	if filter == 0 {
		filter = FilterAll
	}
	l.running = true
	defer func() { l.running = false }()

	for l.running {
		if l.Continue != nil && !l.Continue() {
			return nil
		}
		if l.Clear != nil {
			l.Clear()
		}
		for l.running {
			m, ok, err := l.Queue.Poll(filter, true)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			if l.Handle != nil {
				l.Handle(m)
			}
		}
		if !l.running {
			return nil
		}
		if l.Step != nil {
			l.Step()
		}
		if l.Render != nil {
			l.Render()
		}
		if l.Present != nil {
			if err := l.Present(); err != nil {
				return err
			}
		}
	}
	return nil
}
