// Package mongotest 提供内存版 mongo.Database，用于在不连接数据库的情况下测试仓储层。
// 它不解释过滤条件：Find 按插入顺序返回预置文档，并记录收到的过滤条件与选项。
package mongotest

import (
	"context"
	"errors"
	"sync"

	"github.com/stagearchive/catalogue/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Database struct {
	mu          sync.Mutex
	collections map[string]*Collection
}

func NewDatabase() *Database {
	return &Database{collections: map[string]*Collection{}}
}

func (d *Database) Collection(name string) mongo.Collection {
	return d.C(name)
}

// C 返回具体类型，便于测试预置文档和断言调用
func (d *Database) C(name string) *Collection {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.collections[name]
	if !ok {
		c = &Collection{}
		d.collections[name] = c
	}
	return c
}

func (d *Database) Client() mongo.Client { return nil }

func (d *Database) Bucket(string) (*gridfs.Bucket, error) {
	return nil, errors.New("gridfs is not available in memory")
}


type Collection struct {
	mu   sync.Mutex
	Docs []bson.Raw

	// 可选的错误注入
	FindErr   error
	InsertErr error

	// 未设置时 UpdateOne/DeleteOne 按是否存在文档推断
	Matched *int64
	Deleted *int64

	Filters  []interface{}
	FindOpts []*options.FindOptions
	Updates  []interface{}
}

// Seed 预置文档
func (c *Collection) Seed(docs ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		c.Docs = append(c.Docs, raw)
	}
	return nil
}

func (c *Collection) LastFilter() interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Filters) == 0 {
		return nil
	}
	return c.Filters[len(c.Filters)-1]
}

func (c *Collection) record(filter interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Filters = append(c.Filters, filter)
}

func (c *Collection) FindOne(_ context.Context, filter interface{}) mongo.SingleResult {
	c.record(filter)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FindErr != nil {
		return singleResult{err: c.FindErr}
	}
	if len(c.Docs) == 0 {
		return singleResult{err: mongo.ErrNoDocuments}
	}
	return singleResult{raw: c.Docs[0]}
}

func (c *Collection) InsertOne(_ context.Context, document interface{}) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.InsertErr != nil {
		return nil, c.InsertErr
	}
	data, err := bson.Marshal(document)
	if err != nil {
		return nil, err
	}
	raw := bson.Raw(data)
	id := primitive.NewObjectID()
	if existing, ok := raw.Lookup("_id").ObjectIDOK(); ok {
		id = existing
	}
	c.Docs = append(c.Docs, raw)
	return id, nil
}

func (c *Collection) DeleteOne(_ context.Context, filter interface{}) (int64, error) {
	c.record(filter)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Deleted != nil {
		return *c.Deleted, nil
	}
	if len(c.Docs) == 0 {
		return 0, nil
	}
	c.Docs = c.Docs[1:]
	return 1, nil
}

func (c *Collection) Find(_ context.Context, filter interface{}, opts ...*options.FindOptions) (mongo.Cursor, error) {
	c.record(filter)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.FindOpts = append(c.FindOpts, opts...)
	if c.FindErr != nil {
		return nil, c.FindErr
	}
	docs := append([]bson.Raw(nil), c.Docs...)
	for _, o := range opts {
		if o != nil && o.Limit != nil && int(*o.Limit) < len(docs) {
			docs = docs[:*o.Limit]
		}
	}
	return &cursor{docs: docs, pos: -1}, nil
}

func (c *Collection) UpdateOne(_ context.Context, filter interface{}, update interface{}, _ ...*options.UpdateOptions) (*driver.UpdateResult, error) {
	c.record(filter)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Updates = append(c.Updates, update)
	matched := int64(len(c.Docs))
	if matched > 1 {
		matched = 1
	}
	if c.Matched != nil {
		matched = *c.Matched
	}
	return &driver.UpdateResult{MatchedCount: matched, ModifiedCount: matched}, nil
}

func (c *Collection) Indexes() mongo.IndexView { return nil }

type singleResult struct {
	raw bson.Raw
	err error
}

func (s singleResult) Decode(v interface{}) error {
	if s.err != nil {
		return s.err
	}
	return bson.Unmarshal(s.raw, v)
}

type cursor struct {
	docs []bson.Raw
	pos  int
}

func (c *cursor) Close(context.Context) error { return nil }

func (c *cursor) Next(context.Context) bool {
	if c.pos+1 >= len(c.docs) {
		return false
	}
	c.pos++
	return true
}

func (c *cursor) Decode(v interface{}) error {
	if c.pos < 0 || c.pos >= len(c.docs) {
		return errors.New("cursor is not positioned on a document")
	}
	if raw, ok := v.(*bson.Raw); ok {
		*raw = c.docs[c.pos]
		return nil
	}
	return bson.Unmarshal(c.docs[c.pos], v)
}

func (c *cursor) Err() error { return nil }
