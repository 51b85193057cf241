package api

// Page представляет единый клиентский формат страницы списка
type Page[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// Pagination: метаданные страницы в формате {data, pagination}
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

type ListParams struct {
	Limit  int
	Offset int
}

// DataPage: список в формате {data, pagination}
type DataPage[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPage собирает страницу и вычисляет HasMore
func NewPage[T any](items []T, total, limit, offset int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:   items,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(items) < total,
	}
}

// Envelope возвращает ту же страницу в формате {data, pagination}
func (p Page[T]) Envelope() DataPage[T] {
	return DataPage[T]{
		Data: p.Items,
		Pagination: Pagination{
			Total:   p.Total,
			Limit:   p.Limit,
			Offset:  p.Offset,
			HasMore: p.HasMore,
		},
	}
}
