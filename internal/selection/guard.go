package selection

import "sync"

// Guard discards stale async results. Each lookup takes a generation from
// Begin; when it completes, Accept tells it whether it is still the latest
// request (last-write-wins), so a slow earlier response can never overwrite
// the state produced by a newer one.
type Guard struct {
	mu  sync.Mutex
	gen uint64
}

// Begin registers a new in-flight request and returns its generation
func (g *Guard) Begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	return g.gen
}

// Accept reports whether the given generation is still the latest
func (g *Guard) Accept(gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return gen == g.gen
}
