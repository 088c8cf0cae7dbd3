package dto

// ListQuery is the single pagination contract shared by every list
// endpoint: ?page&pageSize in, rows + pagination meta out.
type ListQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Normalize applies defaults and caps so repositories never see a zero
// or unbounded page size.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(q ListQuery, total int64) Pagination {
	pages := int(total) / q.PageSize
	if int(total)%q.PageSize != 0 {
		pages++
	}
	return Pagination{Page: q.Page, PageSize: q.PageSize, Total: total, TotalPages: pages}
}
