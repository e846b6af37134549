package domain

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// NormalizeOrder 非 desc 一律视为 asc
func NormalizeOrder(order string) string {
	if order == OrderDesc {
		return OrderDesc
	}
	return OrderAsc
}
