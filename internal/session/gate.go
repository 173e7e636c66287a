// Package session tracks who is signed in on a client and tells interested
// components when that changes.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/traveleats-backend/pkg/ctxutil"
)

// State is the gate's view of the current identity. The zero value is
// Unauthenticated.
type State struct {
	UserID uuid.UUID
}

// Unauthenticated is the state with no identity.
var Unauthenticated = State{}

// Authenticated returns the state for the given user.
func Authenticated(userID uuid.UUID) State {
	return State{UserID: userID}
}

// IsAuthenticated reports whether the state carries an identity.
func (s State) IsAuthenticated() bool { return s.UserID != uuid.Nil }

func (s State) String() string {
	if !s.IsAuthenticated() {
		return "unauthenticated"
	}
	return "authenticated(" + s.UserID.String() + ")"
}

// Listener receives a transition. It is called outside the state lock, so
// it may read the gate or unsubscribe, but it must not sign in or out.
type Listener func(prev, next State)

type subscription struct {
	id uint64
	fn Listener
}

// Gate holds the current session state. It is safe for concurrent use.
type Gate struct {
	mu     sync.Mutex
	state  State
	nextID uint64
	subs   []subscription
	// notify serialises delivery so listeners see transitions in order.
	notify sync.Mutex
}

// NewGate returns a gate in the Unauthenticated state.
func NewGate() *Gate {
	return &Gate{}
}

// Current returns the current state.
func (g *Gate) Current() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// SignIn moves the gate to Authenticated(userID). Signing in again with the
// identity already held (a token refresh) is not a transition and notifies
// nobody. A nil userID is treated as SignOut.
func (g *Gate) SignIn(userID uuid.UUID) {
	g.transition(Authenticated(userID))
}

// SignOut moves the gate to Unauthenticated.
func (g *Gate) SignOut() {
	g.transition(Unauthenticated)
}

// Subscribe registers fn for transition notifications and returns the
// function that releases it. Releasing is idempotent.
func (g *Gate) Subscribe(fn Listener) (unsubscribe func()) {
	g.mu.Lock()
	g.nextID++
	id := g.nextID
	g.subs = append(g.subs, subscription{id: id, fn: fn})
	g.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { g.remove(id) })
	}
}

// WithContext returns ctx carrying the current user ID when authenticated,
// and ctx unchanged otherwise.
func (g *Gate) WithContext(ctx context.Context) context.Context {
	if s := g.Current(); s.IsAuthenticated() {
		return ctxutil.WithUserID(ctx, s.UserID)
	}
	return ctx
}

func (g *Gate) transition(next State) {
	g.notify.Lock()
	defer g.notify.Unlock()

	g.mu.Lock()
	prev := g.state
	if prev == next {
		g.mu.Unlock()
		return
	}
	g.state = next
	subs := make([]subscription, len(g.subs))
	copy(subs, g.subs)
	g.mu.Unlock()

	for _, s := range subs {
		if g.subscribed(s.id) {
			s.fn(prev, next)
		}
	}
}

func (g *Gate) subscribed(id uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, s := range g.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

func (g *Gate) remove(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, s := range g.subs {
		if s.id == id {
			g.subs = append(g.subs[:i:i], g.subs[i+1:]...)
			return
		}
	}
}
