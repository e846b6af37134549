package domain

// Page 游标分页结果；Cursor 为不透明字符串，HasMore 为 false 时 Cursor 为空
type Page[T any] struct {
	Items   []T    `json:"items"`
	Cursor  string `json:"cursor,omitempty"`
	HasMore bool   `json:"has_more"`
}

// PageRequest 游标分页请求
type PageRequest struct {
	OrderBy   string
	Direction string
	PageSize  int
	Cursor    string
}
