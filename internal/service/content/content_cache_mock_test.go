package content

import (
	"context"
	"github.com/heartmarshall/traveleats-backend/internal/domain"
	"sync"
	"time"
)

var _ contentCache = &contentCacheMock{}

type contentCacheMock struct {
	GetItemFunc   func(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error)
	GetSearchFunc func(ctx context.Context, kind domain.ContentKind, keyword string) ([]domain.ContentSummary, bool, error)
	SetItemFunc   func(ctx context.Context, item *domain.ContentItem, ttl time.Duration) error
	SetSearchFunc func(ctx context.Context, kind domain.ContentKind, keyword string, results []domain.ContentSummary, ttl time.Duration) error

	calls struct {
		GetItem []struct {
			Ctx  context.Context
			Kind domain.ContentKind
			ID   string
		}
		GetSearch []struct {
			Ctx     context.Context
			Kind    domain.ContentKind
			Keyword string
		}
		SetItem []struct {
			Ctx  context.Context
			Item *domain.ContentItem
			Ttl  time.Duration
		}
		SetSearch []struct {
			Ctx     context.Context
			Kind    domain.ContentKind
			Keyword string
			Results []domain.ContentSummary
			Ttl     time.Duration
		}
	}
	lockGetItem   sync.RWMutex
	lockGetSearch sync.RWMutex
	lockSetItem   sync.RWMutex
	lockSetSearch sync.RWMutex
}

func (mock *contentCacheMock) GetItem(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	if mock.GetItemFunc == nil {
		panic("contentCacheMock.GetItemFunc: method is nil but contentCache.GetItem was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.ContentKind
		ID   string
	}{
		Ctx:  ctx,
		Kind: kind,
		ID:   id,
	}
	mock.lockGetItem.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lockGetItem.Unlock()
	return mock.GetItemFunc(ctx, kind, id)
}

func (mock *contentCacheMock) GetItemCalls() []struct {
	Ctx  context.Context
	Kind domain.ContentKind
	ID   string
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *contentCacheMock) GetSearch(ctx context.Context, kind domain.ContentKind, keyword string) ([]domain.ContentSummary, bool, error) {
	if mock.GetSearchFunc == nil {
		panic("contentCacheMock.GetSearchFunc: method is nil but contentCache.GetSearch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Kind    domain.ContentKind
		Keyword string
	}{
		Ctx:     ctx,
		Kind:    kind,
		Keyword: keyword,
	}
	mock.lockGetSearch.Lock()
	mock.calls.GetSearch = append(mock.calls.GetSearch, callInfo)
	mock.lockGetSearch.Unlock()
	return mock.GetSearchFunc(ctx, kind, keyword)
}

func (mock *contentCacheMock) GetSearchCalls() []struct {
	Ctx     context.Context
	Kind    domain.ContentKind
	Keyword string
} {
	mock.lockGetSearch.RLock()
	calls := mock.calls.GetSearch
	mock.lockGetSearch.RUnlock()
	return calls
}

func (mock *contentCacheMock) SetItem(ctx context.Context, item *domain.ContentItem, ttl time.Duration) error {
	if mock.SetItemFunc == nil {
		panic("contentCacheMock.SetItemFunc: method is nil but contentCache.SetItem was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.ContentItem
		Ttl  time.Duration
	}{
		Ctx:  ctx,
		Item: item,
		Ttl:  ttl,
	}
	mock.lockSetItem.Lock()
	mock.calls.SetItem = append(mock.calls.SetItem, callInfo)
	mock.lockSetItem.Unlock()
	return mock.SetItemFunc(ctx, item, ttl)
}

func (mock *contentCacheMock) SetItemCalls() []struct {
	Ctx  context.Context
	Item *domain.ContentItem
	Ttl  time.Duration
} {
	mock.lockSetItem.RLock()
	calls := mock.calls.SetItem
	mock.lockSetItem.RUnlock()
	return calls
}

func (mock *contentCacheMock) SetSearch(ctx context.Context, kind domain.ContentKind, keyword string, results []domain.ContentSummary, ttl time.Duration) error {
	if mock.SetSearchFunc == nil {
		panic("contentCacheMock.SetSearchFunc: method is nil but contentCache.SetSearch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Kind    domain.ContentKind
		Keyword string
		Results []domain.ContentSummary
		Ttl     time.Duration
	}{
		Ctx:     ctx,
		Kind:    kind,
		Keyword: keyword,
		Results: results,
		Ttl:     ttl,
	}
	mock.lockSetSearch.Lock()
	mock.calls.SetSearch = append(mock.calls.SetSearch, callInfo)
	mock.lockSetSearch.Unlock()
	return mock.SetSearchFunc(ctx, kind, keyword, results, ttl)
}

func (mock *contentCacheMock) SetSearchCalls() []struct {
	Ctx     context.Context
	Kind    domain.ContentKind
	Keyword string
	Results []domain.ContentSummary
	Ttl     time.Duration
} {
	mock.lockSetSearch.RLock()
	calls := mock.calls.SetSearch
	mock.lockSetSearch.RUnlock()
	return calls
}
