// Package activity records which content a signed-in user viewed and
// renders that history back, most recent first.
package activity

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/traveleats-backend/pkg/ctxutil"
)

const defaultWriteTimeout = 5 * time.Second

type activityRepo interface {
	AppendActivity(ctx context.Context, userID uuid.UUID, label string) error
}

// Recorder appends viewed-item labels to the caller's activity log.
// Failures are logged and never returned: a lost history entry must not
// break the view that produced it.
type Recorder struct {
	log          *slog.Logger
	repo         activityRepo
	writeTimeout time.Duration

	// lifetime ends when Close returns; writes still pending then are aborted.
	lifetime context.Context
	abort    context.CancelFunc

	mu     sync.Mutex
	closed bool
	group  errgroup.Group
}

// NewRecorder creates a Recorder. A non-positive writeTimeout falls back to 5s.
func NewRecorder(logger *slog.Logger, repo activityRepo, writeTimeout time.Duration) *Recorder {
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	lifetime, abort := context.WithCancel(context.Background())
	return &Recorder{
		log:          logger.With("component", "activity_recorder"),
		repo:         repo,
		writeTimeout: writeTimeout,
		lifetime:     lifetime,
		abort:        abort,
	}
}

// Record appends label to the log of the user in ctx and waits for the
// write. Without a user in ctx, or with a blank label, it does nothing.
func (r *Recorder) Record(ctx context.Context, label string) {
	userID, label, ok := r.accept(ctx, label)
	if !ok {
		return
	}

	wctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()
	r.write(wctx, userID, label)
}

// Track is the asynchronous form of Record. The write outlives the
// request that triggered it, bounded by the write timeout, and is awaited
// by Close. After Close, Track does nothing.
func (r *Recorder) Track(ctx context.Context, label string) {
	userID, label, ok := r.accept(ctx, label)
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		r.log.DebugContext(ctx, "activity dropped after close", slog.String("label", label))
		return
	}

	// Keep request values for logging but not its cancellation.
	detached := context.WithoutCancel(ctx)
	r.group.Go(func() error {
		wctx, cancel := context.WithTimeout(detached, r.writeTimeout)
		defer cancel()
		stop := context.AfterFunc(r.lifetime, cancel)
		defer stop()

		r.write(wctx, userID, label)
		return nil
	})
}

// Close stops accepting new work and waits for pending writes. If ctx ends
// first, pending writes are cancelled and ctx's error is returned.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		_ = r.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.abort()
		return nil
	case <-ctx.Done():
		r.abort()
		<-done
		return ctx.Err()
	}
}

func (r *Recorder) accept(ctx context.Context, label string) (uuid.UUID, string, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		r.log.DebugContext(ctx, "activity ignored: blank label")
		return uuid.Nil, "", false
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		r.log.DebugContext(ctx, "activity ignored: no user", slog.String("label", label))
		return uuid.Nil, "", false
	}
	return userID, label, true
}

func (r *Recorder) write(ctx context.Context, userID uuid.UUID, label string) {
	if err := r.repo.AppendActivity(ctx, userID, label); err != nil {
		level := slog.LevelWarn
		if errors.Is(err, context.Canceled) {
			level = slog.LevelInfo
		}
		r.log.Log(ctx, level, "activity append failed",
			slog.String("user_id", userID.String()),
			slog.String("label", label),
			slog.String("error", err.Error()))
		return
	}

	r.log.DebugContext(ctx, "activity appended",
		slog.String("user_id", userID.String()),
		slog.String("label", label))
}
