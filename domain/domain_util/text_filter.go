package domain_util

import (
	"strings"

	"golang.org/x/text/cases"
)

// ScopeAll 在实体全部可检索字段上做“或”匹配
const ScopeAll = "all"

// SearchFields 实体可检索字段：字段名 -> 字段值；列表字段任一元素命中即算命中
type SearchFields map[string][]string

// Searchable 提供固定的可检索字段表
type Searchable interface {
	SearchFields() SearchFields
}

// FoldCase Unicode 大小写折叠，用于大小写不敏感比较
func FoldCase(s string) string {
	return cases.Fold().String(s)
}

// MatchesQuery 大小写不敏感的子串匹配；空白查询匹配一切
func MatchesQuery(fields SearchFields, query, scope string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	q = FoldCase(q)

	if scope == "" || scope == ScopeAll {
		for _, values := range fields {
			if anyContains(values, q) {
				return true
			}
		}
		return false
	}

	values, ok := fields[scope]
	if !ok {
		return false
	}
	return anyContains(values, q)
}

func anyContains(values []string, foldedQuery string) bool {
	for _, v := range values {
		if v == "" {
			continue
		}
		if strings.Contains(FoldCase(v), foldedQuery) {
			return true
		}
	}
	return false
}

// FilterRecords 过滤记录；空查询原样返回输入
func FilterRecords[T Searchable](records []T, query, scope string) []T {
	if strings.TrimSpace(query) == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if MatchesQuery(r.SearchFields(), query, scope) {
			out = append(out, r)
		}
	}
	return out
}
