package platform

import (
	"sync"
	"sync/atomic"
	"time"
)

// Headless drives the handler from a plain timer instead of an engine
// window. Nothing is presented; input only arrives through whatever the
// test pushes at the handler directly. It exists so the run boundary,
// batching and queue plumbing can be exercised without a display.
type Headless struct {
	cfg      Config
	interval time.Duration
	stop     chan struct{}
	once     sync.Once

	releases atomic.Int32
}

func NewHeadless(cfg Config) *Headless {
	return &Headless{cfg: cfg, interval: time.Millisecond, stop: make(chan struct{})}
}

func (h *Headless) Size() (int, int) {
	return h.cfg.WidthPx, h.cfg.HeightPx
}

func (h *Headless) Drive(hd Handler) error {
	tick := time.NewTicker(h.interval)
	defer tick.Stop()
	for {
		select {
		case <-h.stop:
			return nil
		case <-tick.C:
			if hd.Done() {
				return nil
			}
			hd.Tick()
		}
	}
}

func (h *Headless) Stop() {
	h.once.Do(func() { close(h.stop) })
}

func (h *Headless) Release() {
	h.releases.Add(1)
}

// Releases reports how many times Release ran, for teardown assertions.
func (h *Headless) Releases() int {
	return int(h.releases.Load())
}
