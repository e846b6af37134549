package domain_util

import (
	"context"
	"sync"

	"github.com/stagearchive/catalogue/domain"
)

// FetchPage 以上一页游标拉取下一页；首次调用游标为空
type FetchPage[T any] func(ctx context.Context, cursor string) (*domain.Page[T], error)

// InfiniteFeed 无限滚动消费端：页只追加，哨兵可见且没有在途请求时才拉取下一页
type InfiniteFeed[T any] struct {
	mu       sync.Mutex
	fetch    FetchPage[T]
	items    []T
	cursor   string
	hasMore  bool
	fetching bool
	pages    int
}

func NewInfiniteFeed[T any](fetch FetchPage[T]) *InfiniteFeed[T] {
	return &InfiniteFeed[T]{
		fetch:   fetch,
		hasMore: true,
	}
}

// SentinelVisible 哨兵元素进入视口时调用；返回是否真正发起了拉取
func (f *InfiniteFeed[T]) SentinelVisible(ctx context.Context) (bool, error) {
	f.mu.Lock()
	if !f.hasMore || f.fetching {
		f.mu.Unlock()
		return false, nil
	}
	f.fetching = true
	cursor := f.cursor
	f.mu.Unlock()

	page, err := f.fetch(ctx, cursor)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetching = false
	if err != nil {
		return true, err
	}
	if page == nil {
		f.hasMore = false
		return true, nil
	}

	f.items = append(f.items, page.Items...)
	f.cursor = page.Cursor
	f.hasMore = page.HasMore && page.Cursor != ""
	f.pages++
	return true, nil
}

// Items 已累积的扁平序列（副本）
func (f *InfiniteFeed[T]) Items() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]T, len(f.items))
	copy(out, f.items)
	return out
}

func (f *InfiniteFeed[T]) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

func (f *InfiniteFeed[T]) IsFetching() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetching
}

func (f *InfiniteFeed[T]) PagesLoaded() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pages
}
