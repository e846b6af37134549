package domain_util

// DefaultPageSize 表格默认每页条数
const DefaultPageSize = 25

// TotalPages 总页数，至少为 1
func TotalPages(totalItems, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := (totalItems + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage 将页码限制在 [1, totalPages]
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// PageView 偏移分页结果
type PageView[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
	PageSize    int `json:"page_size"`
}

// Paginate 对有序序列切页；越界页码钳制而不是返回空页
func Paginate[T any](items []T, page, pageSize int) PageView[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages := TotalPages(len(items), pageSize)
	page = ClampPage(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	pageItems := make([]T, 0, end-start)
	pageItems = append(pageItems, items[start:end]...)

	return PageView[T]{
		Items:       pageItems,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  len(items),
		PageSize:    pageSize,
	}
}

// Paginator 带当前页状态的分页器；数据集变化时重新钳制当前页
type Paginator[T any] struct {
	pageSize    int
	currentPage int
	totalPages  int
}

func NewPaginator[T any](pageSize int) *Paginator[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Paginator[T]{pageSize: pageSize, currentPage: 1, totalPages: 1}
}

// Apply 按当前页切片；过滤导致结果集缩小时当前页随之钳制
func (p *Paginator[T]) Apply(items []T) PageView[T] {
	view := Paginate(items, p.currentPage, p.pageSize)
	p.currentPage = view.CurrentPage
	p.totalPages = view.TotalPages
	return view
}

func (p *Paginator[T]) CurrentPage() int { return p.currentPage }
func (p *Paginator[T]) TotalPages() int  { return p.totalPages }

func (p *Paginator[T]) SetPage(page int) {
	p.currentPage = ClampPage(page, p.totalPages)
}

func (p *Paginator[T]) NextPage() {
	if p.currentPage < p.totalPages {
		p.currentPage++
	}
}

func (p *Paginator[T]) PrevPage() {
	if p.currentPage > 1 {
		p.currentPage--
	}
}

func (p *Paginator[T]) FirstPage() { p.currentPage = 1 }
func (p *Paginator[T]) LastPage()  { p.currentPage = p.totalPages }
