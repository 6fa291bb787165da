package utils

import (
	"math"
)

// Pagination describes one page of a limit/offset query.
type Pagination struct {
	Page       int
	PerPage    int
	TotalPages int
	Total      int64
	Offset     int
}

// Paginate resolves a raw page query parameter against the row count.
// A missing or non-numeric parameter falls back to page 1, a page past the
// end falls back to the last page. An empty table still has one page.
func Paginate(pageParam string, perPage int, total int64) Pagination {
	page := StringToInt(pageParam)
	if page < 1 {
		page = 1
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      total,
		Offset:     (page - 1) * perPage,
	}
}

func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}
