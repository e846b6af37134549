package repository

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_util"
	"github.com/stagearchive/catalogue/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	fieldDateAdded   = "date_added"
	fieldDateUpdated = "date_updated"
)

// BaseMongoRepository MongoDB通用Repository实现
type BaseMongoRepository[T any] struct {
	db         mongo.Database
	collection string
	pageFields map[string]bool
}

// NewBaseMongoRepository 创建新的MongoDB Repository实例
// pageFields: 允许作为游标分页排序键的字段，为空时仅允许 date_added
func NewBaseMongoRepository[T any](db mongo.Database, collection string, pageFields ...string) *BaseMongoRepository[T] {
	allowed := map[string]bool{fieldDateAdded: true}
	for _, f := range pageFields {
		allowed[f] = true
	}
	return &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
		pageFields: allowed,
	}
}

// Create 创建新实体
func (r *BaseMongoRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}

	// 设置创建时间（如果实体有相关字段）
	r.setTimestamps(entity, true)

	coll := r.db.Collection(r.collection)
	resultID, err := coll.InsertOne(ctx, entity)
	if err != nil {
		return fmt.Errorf("%w: failed to create entity in %s: %v", domain.ErrWriteFailure, r.collection, err)
	}

	// 设置生成的ID
	if oid, ok := resultID.(primitive.ObjectID); ok {
		r.setEntityID(entity, oid)
	}

	return nil
}

// GetByID 根据ID获取实体
func (r *BaseMongoRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: id cannot be empty", domain.ErrInvalidID)
	}

	coll := r.db.Collection(r.collection)
	var entity T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrNotFound, r.collection, id.Hex())
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	return &entity, nil
}

// UpdateByID 根据ID部分更新；nil 字段被丢弃，date_updated 总是刷新
func (r *BaseMongoRepository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if id.IsZero() {
		return fmt.Errorf("%w: id cannot be empty", domain.ErrInvalidID)
	}

	set := CompactFields(fields)
	set[fieldDateUpdated] = time.Now().UTC()

	coll := r.db.Collection(r.collection)
	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("%w: failed to update %s/%s: %v", domain.ErrWriteFailure, r.collection, id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrNotFound, r.collection, id.Hex())
	}

	return nil
}

// Delete 硬删除，不级联
func (r *BaseMongoRepository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return fmt.Errorf("%w: id cannot be empty", domain.ErrInvalidID)
	}

	coll := r.db.Collection(r.collection)
	deletedCount, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: failed to delete %s/%s: %v", domain.ErrWriteFailure, r.collection, id.Hex(), err)
	}

	if deletedCount == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrNotFound, r.collection, id.Hex())
	}

	return nil
}

// GetAll 获取所有实体
func (r *BaseMongoRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.GetByFilter(ctx, bson.M{})
}

// GetByIDs 批量获取；不存在的ID直接忽略
func (r *BaseMongoRepository[T]) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}
	return r.GetByFilter(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// GetByFilter 根据过滤条件获取实体
func (r *BaseMongoRepository[T]) GetByFilter(ctx context.Context, filter interface{}) ([]*T, error) {
	coll := r.db.Collection(r.collection)
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find entities: %w", err)
	}
	defer cursor.Close(ctx)

	entities := make([]*T, 0)
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		entities = append(entities, &entity)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return entities, nil
}

// GetOneByFilter 根据过滤条件获取单个实体
func (r *BaseMongoRepository[T]) GetOneByFilter(ctx context.Context, filter interface{}) (*T, error) {
	coll := r.db.Collection(r.collection)
	var entity T
	err := coll.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // 没找到返回nil，不是错误
		}
		return nil, fmt.Errorf("failed to find entity: %w", err)
	}

	return &entity, nil
}


// ListPage 游标分页：按 {field, _id} 排序，多取一条判断 hasMore
func (r *BaseMongoRepository[T]) ListPage(ctx context.Context, req domain.PageRequest) (*domain.Page[*T], error) {
	field := req.OrderBy
	if field == "" {
		field = fieldDateAdded
	}
	if !r.pageFields[field] {
		return nil, fmt.Errorf("%w: invalid order field: %s", domain.ErrValidation, field)
	}

	descending := domain.NormalizeOrder(req.Direction) == domain.OrderDesc
	direction := 1
	if descending {
		direction = -1
	}

	size := req.PageSize
	if size < 1 {
		size = domain_util.DefaultPageSize
	}

	filter := bson.M{}
	if req.Cursor != "" {
		token, err := DecodeCursor(req.Cursor)
		if err != nil {
			return nil, err
		}
		filter = keysetFilter(field, descending, token)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: field, Value: direction}, {Key: "_id", Value: direction}}).
		SetLimit(int64(size + 1))

	coll := r.db.Collection(r.collection)
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list page: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]*T, 0, size)
	var last CursorToken
	hasMore := false
	for cursor.Next(ctx) {
		if len(items) == size {
			hasMore = true
			break
		}
		var raw bson.Raw
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		raw = append(bson.Raw(nil), raw...)

		var entity T
		if err := bson.Unmarshal(raw, &entity); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		items = append(items, &entity)
		last = tokenFromRaw(raw, field)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	page := &domain.Page[*T]{Items: items, HasMore: hasMore}
	if hasMore {
		next, err := EncodeCursor(last)
		if err != nil {
			return nil, err
		}
		page.Cursor = next
	}
	return page, nil
}

// CursorToken 游标内容：最后一条记录的排序值与 _id
type CursorToken struct {
	Value bson.RawValue      `bson:"v"`
	ID    primitive.ObjectID `bson:"id"`
}

// keysetFilter 游标之后的记录。null（含缺失字段）升序排在最前、降序排在最后，
// 而 $gt/$lt 不会跨越 null，需单独处理。
func keysetFilter(field string, descending bool, token CursorToken) bson.M {
	if token.Value.Type == bsontype.Null {
		if descending {
			return bson.M{field: nil, "_id": bson.M{"$lt": token.ID}}
		}
		return bson.M{"$or": bson.A{
			bson.M{field: bson.M{"$ne": nil}},
			bson.M{field: nil, "_id": bson.M{"$gt": token.ID}},
		}}
	}

	op := "$gt"
	if descending {
		op = "$lt"
	}
	branches := bson.A{
		bson.M{field: bson.M{op: token.Value}},
		bson.M{field: token.Value, "_id": bson.M{op: token.ID}},
	}
	if descending {
		branches = append(branches, bson.M{field: nil})
	}
	return bson.M{"$or": branches}
}

func tokenFromRaw(raw bson.Raw, field string) CursorToken {
	value := raw.Lookup(field)
	if value.Type == 0 {
		value = bson.RawValue{Type: bsontype.Null}
	}
	token := CursorToken{Value: value}
	if id, ok := raw.Lookup("_id").ObjectIDOK(); ok {
		token.ID = id
	}
	return token
}

// EncodeCursor 游标对调用方不透明
func EncodeCursor(token CursorToken) (string, error) {
	data, err := bson.Marshal(token)
	if err != nil {
		return "", fmt.Errorf("failed to encode cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

func DecodeCursor(cursor string) (CursorToken, error) {
	var token CursorToken
	data, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return token, fmt.Errorf("%w: malformed cursor", domain.ErrValidation)
	}
	if err := bson.Unmarshal(data, &token); err != nil {
		return token, fmt.Errorf("%w: malformed cursor", domain.ErrValidation)
	}
	return token, nil
}

// CompactFields 去掉值为 nil（含带类型的 nil 指针/切片/映射）的字段，未提供的字段不写入存储
func CompactFields(fields bson.M) bson.M {
	out := bson.M{}
	for k, v := range fields {
		if isNilValue(v) {
			continue
		}
		out[k] = v
	}
	return out
}

func isNilValue(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// 辅助方法：设置时间戳
func (r *BaseMongoRepository[T]) setTimestamps(entity *T, isCreate bool) {
	val := reflect.ValueOf(entity).Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()

	now := time.Now().UTC()
	timeType := reflect.TypeOf(now)

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() || field.Type() != timeType {
			continue
		}

		fieldName, _, _ := strings.Cut(fieldType.Tag.Get("bson"), ",")

		// 设置创建时间
		if isCreate && fieldName == fieldDateAdded {
			field.Set(reflect.ValueOf(now))
		}

		// 设置更新时间
		if fieldName == fieldDateUpdated {
			field.Set(reflect.ValueOf(now))
		}
	}
}

// 设置实体ID
func (r *BaseMongoRepository[T]) setEntityID(entity *T, id primitive.ObjectID) {
	if entity == nil {
		return
	}
	val := reflect.ValueOf(entity).Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() { // 跳过不可修改字段
			continue
		}

		// 统一解析标签
		tag := fieldType.Tag.Get("bson")
		fieldName, _, _ := strings.Cut(tag, ",")
		if fieldName == "" {
			fieldName = fieldType.Name
		}

		// 类型检查兼容指针和非指针
		if matchesIDField(fieldName) && isObjectIDType(field.Type()) {
			if field.Kind() == reflect.Ptr {
				newID := id // 避免取地址临时变量
				field.Set(reflect.ValueOf(&newID))
			} else {
				field.Set(reflect.ValueOf(id))
			}
			return
		}
	}
}

// 辅助函数：检查字段名是否匹配ID
func matchesIDField(name string) bool {
	return name == "_id" || name == "ID"
}

// 辅助函数：检查类型是否为primitive.ObjectID或其指针
func isObjectIDType(t reflect.Type) bool {
	return t == reflect.TypeOf(primitive.ObjectID{}) ||
		t == reflect.TypeOf(&primitive.ObjectID{})
}
