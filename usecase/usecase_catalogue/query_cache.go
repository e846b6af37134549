package usecase_catalogue

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// QueryCache 按 collection+id+参数 缓存读取结果，同键并发请求合并为一次。
// 每个集合有一个代数计数，失效后在途请求的结果不再写回缓存。
type QueryCache struct {
	group   singleflight.Group
	mu      sync.Mutex
	gens    map[string]uint64
	entries map[string]interface{}
}

func NewQueryCache() *QueryCache {
	return &QueryCache{
		gens:    make(map[string]uint64),
		entries: make(map[string]interface{}),
	}
}

func cacheKey(collection, id, params string) string {
	return collection + "|" + id + "|" + params
}

// Invalidate 丢弃集合下全部缓存，并使在途请求作废
func (c *QueryCache) Invalidate(collection string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[collection]++
	prefix := collection + "|"
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// CachedQuery 命中缓存直接返回；否则合并同键请求后拉取
func CachedQuery[T any](
	ctx context.Context,
	c *QueryCache,
	collection, id, params string,
	fetch func(ctx context.Context) (T, error),
) (T, error) {
	key := cacheKey(collection, id, params)

	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return v.(T), nil
	}
	gen := c.gens[collection]
	c.mu.Unlock()

	ch := c.group.DoChan(key+"#"+strconv.FormatUint(gen, 10), func() (interface{}, error) {
		fetchCtx, cancel := detachContext(ctx)
		defer cancel()
		val, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.gens[collection] == gen {
			c.entries[key] = val
		}
		c.mu.Unlock()
		return val, nil
	})

	var zero T
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// detachContext 合并后的请求不随首个调用方取消，但保留其截止时间
func detachContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if deadline, ok := ctx.Deadline(); ok {
		return context.WithDeadline(detached, deadline)
	}
	return context.WithCancel(detached)
}

// MutateCached 就地修改已缓存的值（乐观更新）；未缓存时不做任何事
func MutateCached[T any](c *QueryCache, collection, id, params string, mutate func(T) T) bool {
	key := cacheKey(collection, id, params)
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if !ok {
		return false
	}
	c.entries[key] = mutate(v.(T))
	return true
}

// RefreshCached 同步重新拉取并替换缓存；集合内其它键失效
func RefreshCached[T any](
	ctx context.Context,
	c *QueryCache,
	collection, id, params string,
	fetch func(ctx context.Context) (T, error),
) (T, error) {
	key := cacheKey(collection, id, params)

	c.mu.Lock()
	c.gens[collection]++
	gen := c.gens[collection]
	prefix := collection + "|"
	for k := range c.entries {
		if k != key && strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()

	val, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	if c.gens[collection] == gen {
		c.entries[key] = val
	}
	c.mu.Unlock()
	return val, nil
}
