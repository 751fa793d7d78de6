package domain

// CollectionPage is one page of a paginated result set. TotalCount is the
// total number of items across all pages computed over the same filtered
// set as Items, so PagesCount is always consistent with the returned page.
type CollectionPage[T any] struct {
	Items       []T `json:"items"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
	CurrentPage int `json:"currentPage"`
	PagesCount  int `json:"pagesCount"`
}

// NewCollectionPage slices one page out of the full ordered item set and
// fills in the pagination metadata.
func NewCollectionPage[T any](all []T, paging PagingFilter) CollectionPage[T] {
	total := len(all)
	start := paging.Offset()
	if start > total {
		start = total
	}
	end := start + paging.PageSize
	if end > total {
		end = total
	}
	pages := 0
	if paging.PageSize > 0 {
		pages = (total + paging.PageSize - 1) / paging.PageSize
	}
	items := make([]T, end-start)
	copy(items, all[start:end])
	return CollectionPage[T]{
		Items:       items,
		PageSize:    paging.PageSize,
		TotalCount:  total,
		CurrentPage: paging.PageNumber,
		PagesCount:  pages,
	}
}
