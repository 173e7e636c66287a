package content

import (
	"context"
	"sync"
)

var _ activityTracker = &activityTrackerMock{}

type activityTrackerMock struct {
	TrackFunc func(ctx context.Context, label string)

	calls struct {
		Track []struct {
			Ctx   context.Context
			Label string
		}
	}
	lockTrack sync.RWMutex
}

func (mock *activityTrackerMock) Track(ctx context.Context, label string) {
	if mock.TrackFunc == nil {
		panic("activityTrackerMock.TrackFunc: method is nil but activityTracker.Track was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Label string
	}{
		Ctx:   ctx,
		Label: label,
	}
	mock.lockTrack.Lock()
	mock.calls.Track = append(mock.calls.Track, callInfo)
	mock.lockTrack.Unlock()
	mock.TrackFunc(ctx, label)
}

func (mock *activityTrackerMock) TrackCalls() []struct {
	Ctx   context.Context
	Label string
} {
	mock.lockTrack.RLock()
	calls := mock.calls.Track
	mock.lockTrack.RUnlock()
	return calls
}
