package activity

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
	"github.com/heartmarshall/traveleats-backend/internal/session"
)

type historySource interface {
	History(ctx context.Context) (domain.ActivityView, error)
}

type sessionGate interface {
	Current() session.State
	Subscribe(fn session.Listener) (unsubscribe func())
	WithContext(ctx context.Context) context.Context
}

// State is what the activity screen renders.
type State struct {
	View    domain.ActivityView
	Loading bool
	// Loaded is set once a read has succeeded since the last sign-in.
	Loaded bool
}

// Presenter keeps the activity screen state of a client. It refreshes once
// whenever a user signs in, and on demand through Refresh.
type Presenter struct {
	log    *slog.Logger
	source historySource

	lifetime context.Context
	stop     context.CancelFunc
	wg       sync.WaitGroup

	mu          sync.Mutex
	state       State
	gen         uint64
	cancel      context.CancelFunc
	gate        sessionGate
	unsubscribe func()
	closed      bool
}

// NewPresenter creates a Presenter reading from source.
func NewPresenter(logger *slog.Logger, source historySource) *Presenter {
	lifetime, stop := context.WithCancel(context.Background())
	return &Presenter{
		log:      logger.With("component", "activity_presenter"),
		source:   source,
		lifetime: lifetime,
		stop:     stop,
		state:    State{View: Present(nil)},
	}
}

// Attach subscribes the presenter to gate. Each sign-in (including a switch
// to another user) clears the view and starts one refresh; signing out
// clears the view. If gate is already authenticated, a refresh starts now.
func (p *Presenter) Attach(gate sessionGate) {
	p.mu.Lock()
	if p.closed || p.gate != nil {
		p.mu.Unlock()
		return
	}
	p.gate = gate
	p.mu.Unlock()

	unsubscribe := gate.Subscribe(p.onTransition)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		unsubscribe()
		return
	}
	p.unsubscribe = unsubscribe
	p.mu.Unlock()

	if gate.Current().IsAuthenticated() {
		p.refreshInBackground()
	}
}

// Refresh reads the history and replaces the displayed view. A failed read
// is logged and keeps the previous view. Loading is cleared when the call
// returns unless a newer refresh has started in the meantime, whose result
// wins. Does nothing while the attached gate is unauthenticated.
func (p *Presenter) Refresh(ctx context.Context) {
	p.mu.Lock()
	if p.closed || (p.gate != nil && !p.gate.Current().IsAuthenticated()) {
		p.mu.Unlock()
		return
	}

	if p.cancel != nil {
		p.cancel()
	}
	p.gen++
	gen := p.gen
	rctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.state.Loading = true
	gate := p.gate
	p.mu.Unlock()

	stop := context.AfterFunc(p.lifetime, cancel)
	defer stop()
	defer cancel()

	if gate != nil {
		rctx = gate.WithContext(rctx)
	}
	view, err := p.source.History(rctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		p.log.DebugContext(ctx, "stale activity refresh discarded")
		return
	}
	p.cancel = nil
	p.state.Loading = false

	if err != nil {
		p.log.WarnContext(ctx, "activity refresh failed", slog.String("error", err.Error()))
		return
	}
	p.state.View = view
	p.state.Loaded = true
}

// Snapshot returns a copy of the current state.
func (p *Presenter) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.state
	s.View.Rows = make([]domain.ActivityRow, len(p.state.View.Rows))
	copy(s.View.Rows, p.state.View.Rows)
	return s
}

// Wait blocks until refreshes started by sign-in have finished.
func (p *Presenter) Wait() {
	p.wg.Wait()
}

// Close releases the gate subscription, cancels the in-flight refresh and
// waits for background refreshes to return. It is safe to call twice.
func (p *Presenter) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	unsubscribe := p.unsubscribe
	p.unsubscribe = nil
	p.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	p.stop()
	p.wg.Wait()
}

func (p *Presenter) onTransition(prev, next session.State) {
	p.clear()
	if next.IsAuthenticated() {
		p.refreshInBackground()
	}
}

// clear resets the state and invalidates any refresh in flight.
func (p *Presenter) clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.gen++
	p.state = State{View: Present(nil)}
}

func (p *Presenter) refreshInBackground() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		p.Refresh(p.lifetime)
	}()
}
