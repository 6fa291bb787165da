package utils

import (
	"testing"
)

func TestPaginate(t *testing.T) {
	cases := []struct {
		name      string
		pageParam string
		perPage   int
		total     int64
		wantPage  int
		wantPages int
		wantOff   int
	}{
		{"missing param", "", 5, 12, 1, 3, 0},
		{"non-numeric param", "abc", 5, 12, 1, 3, 0},
		{"zero", "0", 5, 12, 1, 3, 0},
		{"negative", "-3", 5, 12, 1, 3, 0},
		{"middle page", "2", 5, 12, 2, 3, 5},
		{"last page", "3", 5, 12, 3, 3, 10},
		{"past the end", "999", 5, 12, 3, 3, 10},
		{"exact multiple", "2", 5, 10, 2, 2, 5},
		{"empty table", "1", 5, 0, 1, 1, 0},
		{"empty table past end", "7", 5, 0, 1, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pg := Paginate(c.pageParam, c.perPage, c.total)
			if pg.Page != c.wantPage {
				t.Errorf("Page = %d, want %d", pg.Page, c.wantPage)
			}
			if pg.TotalPages != c.wantPages {
				t.Errorf("TotalPages = %d, want %d", pg.TotalPages, c.wantPages)
			}
			if pg.Offset != c.wantOff {
				t.Errorf("Offset = %d, want %d", pg.Offset, c.wantOff)
			}
		})
	}
}

func TestPaginationNavigation(t *testing.T) {
	pg := Paginate("2", 5, 12)
	if !pg.HasPrev() || !pg.HasNext() {
		t.Errorf("middle page should have both neighbours")
	}
	pg = Paginate("1", 5, 12)
	if pg.HasPrev() {
		t.Errorf("first page should not have a previous page")
	}
	pg = Paginate("3", 5, 12)
	if pg.HasNext() {
		t.Errorf("last page should not have a next page")
	}
}
