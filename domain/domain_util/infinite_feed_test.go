package domain_util

import (
	"context"
	"errors"
	"testing"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageStub struct {
	pages   map[string]*domain.Page[int]
	cursors []string
	err     error
}

func (s *pageStub) fetch(_ context.Context, cursor string) (*domain.Page[int], error) {
	s.cursors = append(s.cursors, cursor)
	if s.err != nil {
		return nil, s.err
	}
	return s.pages[cursor], nil
}

func TestInfiniteFeed_AppendsPagesInOrder(t *testing.T) {
	stub := &pageStub{pages: map[string]*domain.Page[int]{
		"":   {Items: []int{1, 2, 3}, Cursor: "c1", HasMore: true},
		"c1": {Items: []int{4, 5, 6}, Cursor: "c2", HasMore: true},
		"c2": {Items: []int{7}, HasMore: false},
	}}
	feed := NewInfiniteFeed(stub.fetch)

	for i := 0; i < 3; i++ {
		fetched, err := feed.SentinelVisible(context.Background())
		require.NoError(t, err)
		assert.True(t, fetched)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, feed.Items())
	assert.Equal(t, []string{"", "c1", "c2"}, stub.cursors)
	assert.False(t, feed.HasMore())
	assert.Equal(t, 3, feed.PagesLoaded())

	fetched, err := feed.SentinelVisible(context.Background())
	require.NoError(t, err)
	assert.False(t, fetched)
	assert.Len(t, stub.cursors, 3)
}

func TestInfiniteFeed_IgnoresSentinelWhileFetching(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	calls := 0
	feed := NewInfiniteFeed(func(_ context.Context, cursor string) (*domain.Page[int], error) {
		calls++
		close(started)
		<-release
		return &domain.Page[int]{Items: []int{1}, Cursor: "next", HasMore: true}, nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = feed.SentinelVisible(context.Background())
	}()

	<-started
	assert.True(t, feed.IsFetching())
	fetched, err := feed.SentinelVisible(context.Background())
	require.NoError(t, err)
	assert.False(t, fetched)

	close(release)
	<-done
	assert.Equal(t, 1, calls)
	assert.False(t, feed.IsFetching())
	assert.True(t, feed.HasMore())
}

func TestInfiniteFeed_ErrorKeepsStateForRetry(t *testing.T) {
	stub := &pageStub{err: errors.New("network down")}
	feed := NewInfiniteFeed(stub.fetch)

	fetched, err := feed.SentinelVisible(context.Background())
	assert.True(t, fetched)
	assert.Error(t, err)
	assert.True(t, feed.HasMore())
	assert.False(t, feed.IsFetching())
	assert.Empty(t, feed.Items())

	stub.err = nil
	stub.pages = map[string]*domain.Page[int]{"": {Items: []int{9}}}
	_, err = feed.SentinelVisible(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{9}, feed.Items())
	assert.False(t, feed.HasMore())
}

func TestInfiniteFeed_MissingCursorStopsFeed(t *testing.T) {
	stub := &pageStub{pages: map[string]*domain.Page[int]{
		"": {Items: []int{1}, HasMore: true},
	}}
	feed := NewInfiniteFeed(stub.fetch)

	_, err := feed.SentinelVisible(context.Background())
	require.NoError(t, err)
	assert.False(t, feed.HasMore())
}
