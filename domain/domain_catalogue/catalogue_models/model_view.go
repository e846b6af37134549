package catalogue_models

// ViewQuery 列表页查询参数
type ViewQuery struct {
	Search   string `form:"search"`
	Scope    string `form:"scope"`
	Sort     string `form:"sort"`
	Order    string `form:"order"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
