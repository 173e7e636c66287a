package rest

import (
	"context"
	"github.com/heartmarshall/traveleats-backend/internal/domain"
	"github.com/heartmarshall/traveleats-backend/internal/service/content"
	"sync"
)

var _ contentService = &contentServiceMock{}

type contentServiceMock struct {
	DetailFunc func(ctx context.Context, input content.DetailInput) (*domain.ContentItem, error)
	SearchFunc func(ctx context.Context, input content.SearchInput) ([]domain.ContentSummary, error)

	calls struct {
		Detail []struct {
			Ctx   context.Context
			Input content.DetailInput
		}
		Search []struct {
			Ctx   context.Context
			Input content.SearchInput
		}
	}
	lockDetail sync.RWMutex
	lockSearch sync.RWMutex
}

func (mock *contentServiceMock) Detail(ctx context.Context, input content.DetailInput) (*domain.ContentItem, error) {
	if mock.DetailFunc == nil {
		panic("contentServiceMock.DetailFunc: method is nil but contentService.Detail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input content.DetailInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDetail.Lock()
	mock.calls.Detail = append(mock.calls.Detail, callInfo)
	mock.lockDetail.Unlock()
	return mock.DetailFunc(ctx, input)
}

func (mock *contentServiceMock) DetailCalls() []struct {
	Ctx   context.Context
	Input content.DetailInput
} {
	mock.lockDetail.RLock()
	calls := mock.calls.Detail
	mock.lockDetail.RUnlock()
	return calls
}

func (mock *contentServiceMock) Search(ctx context.Context, input content.SearchInput) ([]domain.ContentSummary, error) {
	if mock.SearchFunc == nil {
		panic("contentServiceMock.SearchFunc: method is nil but contentService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input content.SearchInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *contentServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input content.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
