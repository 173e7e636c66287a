package activity

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	AppendActivityFunc func(ctx context.Context, userID uuid.UUID, label string) error

	calls struct {
		AppendActivity []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Label  string
		}
	}
	lockAppendActivity sync.RWMutex
}

func (mock *activityRepoMock) AppendActivity(ctx context.Context, userID uuid.UUID, label string) error {
	if mock.AppendActivityFunc == nil {
		panic("activityRepoMock.AppendActivityFunc: method is nil but activityRepo.AppendActivity was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Label  string
	}{
		Ctx:    ctx,
		UserID: userID,
		Label:  label,
	}
	mock.lockAppendActivity.Lock()
	mock.calls.AppendActivity = append(mock.calls.AppendActivity, callInfo)
	mock.lockAppendActivity.Unlock()
	return mock.AppendActivityFunc(ctx, userID, label)
}

func (mock *activityRepoMock) AppendActivityCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Label  string
} {
	mock.lockAppendActivity.RLock()
	calls := mock.calls.AppendActivity
	mock.lockAppendActivity.RUnlock()
	return calls
}
