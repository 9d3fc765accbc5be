package game

// Asynchronous callbacks (window resize, the external control layer) post
// events here; the queue drains at the top of Update, before either render
// pass runs, so no frame observes a half-applied change. Everything runs on
// the game loop goroutine.

type event interface {
	apply(g *Game)
}

type resizeEvent struct {
	width, height int
}

func (e resizeEvent) apply(g *Game) {
	g.applyResize(e.width, e.height)
}

type paramEvent struct {
	name  string
	value float64
}

func (e paramEvent) apply(g *Game) {
	g.setParam(e.name, e.value)
}

func (g *Game) post(e event) {
	g.pending = append(g.pending, e)
}

func (g *Game) drainEvents() {
	for _, e := range g.pending {
		e.apply(g)
	}
	g.pending = g.pending[:0]
}

// OnParameterChange is the entry point for the external control layer. The
// value is validated (clamped) when the event is consumed, before the next
// frame renders.
func (g *Game) OnParameterChange(name string, value float64) {
	g.post(paramEvent{name: name, value: value})
}
