package content

import (
	"context"
	"github.com/heartmarshall/traveleats-backend/internal/domain"
	"sync"
)

var _ contentProvider = &contentProviderMock{}

type contentProviderMock struct {
	LookupFunc func(ctx context.Context, id string) (*domain.ContentItem, error)
	SearchFunc func(ctx context.Context, keyword string) ([]domain.ContentSummary, error)

	calls struct {
		Lookup []struct {
			Ctx context.Context
			ID  string
		}
		Search []struct {
			Ctx     context.Context
			Keyword string
		}
	}
	lockLookup sync.RWMutex
	lockSearch sync.RWMutex
}

func (mock *contentProviderMock) Lookup(ctx context.Context, id string) (*domain.ContentItem, error) {
	if mock.LookupFunc == nil {
		panic("contentProviderMock.LookupFunc: method is nil but contentProvider.Lookup was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, id)
}

func (mock *contentProviderMock) LookupCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}

func (mock *contentProviderMock) Search(ctx context.Context, keyword string) ([]domain.ContentSummary, error) {
	if mock.SearchFunc == nil {
		panic("contentProviderMock.SearchFunc: method is nil but contentProvider.Search was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Keyword string
	}{
		Ctx:     ctx,
		Keyword: keyword,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, keyword)
}

func (mock *contentProviderMock) SearchCalls() []struct {
	Ctx     context.Context
	Keyword string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
