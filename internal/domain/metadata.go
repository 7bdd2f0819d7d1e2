package domain

import "strings"

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

// NewMetadata describes one page of a listing. A pageSize of zero or less
// means the listing was not paginated and everything fits on one page.
func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	metadata := &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     1,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}

	if pageSize > 0 {
		metadata.LastPage = (totalRecords + pageSize - 1) / pageSize
	}

	return metadata
}

type Filters struct {
	Page     int
	PageSize int
	Term     string
	Sort     string
}

func (f Filters) SortField() string {
	return strings.TrimPrefix(f.Sort, "-")
}

func (f Filters) SortDescending() bool {
	return strings.HasPrefix(f.Sort, "-")
}

func (f Filters) Limit() int {
	return f.PageSize
}

func (f Filters) Offset() int {
	return (f.Page - 1) * f.PageSize
}
