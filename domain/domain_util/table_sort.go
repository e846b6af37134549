package domain_util

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/stagearchive/catalogue/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldValuer 可排序记录：按字段键取值，字段不存在时返回 nil
type FieldValuer interface {
	FieldValue(field string) any
}

// SortState 表头排序状态
type SortState struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

func NewSortState(defaultField, defaultOrder string) SortState {
	return SortState{Field: defaultField, Order: domain.NormalizeOrder(defaultOrder)}
}

// Toggle 同一字段再次点击翻转顺序；切换字段时重置为升序
func (s *SortState) Toggle(field string) {
	if s.Field == field {
		if s.Order == domain.OrderAsc {
			s.Order = domain.OrderDesc
		} else {
			s.Order = domain.OrderAsc
		}
		return
	}
	s.Field = field
	s.Order = domain.OrderAsc
}

// SortRecords 返回排序后的副本，输入切片保持不变；相等键保持原相对顺序
func SortRecords[T FieldValuer](records []T, field, order string) []T {
	desc := domain.NormalizeOrder(order) == domain.OrderDesc
	keys := make([]sortKey, len(records))
	for i, r := range records {
		keys[i] = normalizeSortValue(r.FieldValue(field))
	}
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(i, j int) bool {
		c := keys[idx[i]].compare(keys[idx[j]])
		if desc {
			return c > 0
		}
		return c < 0
	})

	out := make([]T, len(records))
	for i, k := range idx {
		out[i] = records[k]
	}
	return out
}

// CompareValues 按排序规则比较两个原始字段值
func CompareValues(a, b any) int {
	return normalizeSortValue(a).compare(normalizeSortValue(b))
}

type sortKind int

// 不同类型之间：空 < 数字 < 字符串
const (
	kindEmpty sortKind = iota
	kindNumber
	kindString
)

type sortKey struct {
	kind sortKind
	num  float64
	str  string
}

func (k sortKey) compare(o sortKey) int {
	if k.kind != o.kind {
		if k.kind < o.kind {
			return -1
		}
		return 1
	}
	switch k.kind {
	case kindNumber:
		switch {
		case k.num < o.num:
			return -1
		case k.num > o.num:
			return 1
		}
		return 0
	case kindString:
		return strings.Compare(k.str, o.str)
	}
	return 0
}

type millisecondsValue interface {
	UnixMilli() int64
}

func normalizeSortValue(v any) sortKey {
	if v == nil {
		return sortKey{kind: kindEmpty}
	}

	switch t := v.(type) {
	case string:
		if t == "" {
			return sortKey{kind: kindEmpty}
		}
		return sortKey{kind: kindString, str: FoldCase(t)}
	case time.Time:
		if t.IsZero() {
			return sortKey{kind: kindEmpty}
		}
		return sortKey{kind: kindNumber, num: float64(t.UnixMilli())}
	case *time.Time:
		if t == nil || t.IsZero() {
			return sortKey{kind: kindEmpty}
		}
		return sortKey{kind: kindNumber, num: float64(t.UnixMilli())}
	case primitive.DateTime:
		return sortKey{kind: kindNumber, num: float64(int64(t))}
	case millisecondsValue:
		return sortKey{kind: kindNumber, num: float64(t.UnixMilli())}
	case bool:
		if t {
			return sortKey{kind: kindNumber, num: 1}
		}
		return sortKey{kind: kindNumber, num: 0}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return sortKey{kind: kindEmpty}
		}
		return normalizeSortValue(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sortKey{kind: kindNumber, num: float64(rv.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return sortKey{kind: kindNumber, num: float64(rv.Uint())}
	case reflect.Float32, reflect.Float64:
		return sortKey{kind: kindNumber, num: rv.Float()}
	case reflect.String:
		return normalizeSortValue(rv.String())
	}

	return normalizeSortValue(fmt.Sprint(v))
}
