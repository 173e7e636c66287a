package rest

import (
	"context"
	"github.com/heartmarshall/traveleats-backend/internal/domain"
	"sync"
)

var _ historyService = &historyServiceMock{}

type historyServiceMock struct {
	HistoryFunc func(ctx context.Context) (domain.ActivityView, error)

	calls struct {
		History []struct {
			Ctx context.Context
		}
	}
	lockHistory sync.RWMutex
}

func (mock *historyServiceMock) History(ctx context.Context) (domain.ActivityView, error) {
	if mock.HistoryFunc == nil {
		panic("historyServiceMock.HistoryFunc: method is nil but historyService.History was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx)
}

func (mock *historyServiceMock) HistoryCalls() []struct {
	Ctx context.Context
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
