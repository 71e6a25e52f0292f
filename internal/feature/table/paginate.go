package table

import (
	"slices"

	"go-gin-user-table/internal/domain"
)

// DefaultPageSize matches the five rows per page of the account list.
const DefaultPageSize = 5

// PageDirection is a pager button.
type PageDirection int

const (
	Prev PageDirection = iota
	Next
)

// Page is one slice of the sorted rows plus the numbers the footer shows.
// StartIndex and EndIndex are 1-based ordinals: "Showing StartIndex to EndIndex of TotalCount".
type Page struct {
	Rows        []domain.User `json:"visibleRows"`
	StartIndex  int           `json:"startIndex"`
	EndIndex    int           `json:"endIndex"`
	TotalCount  int           `json:"totalCount"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
}

// TotalPages is ceil(total/size), zero for an empty set.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return 1 + (total-1)/size
}

// Paginate cuts [(page-1)*size, page*size) out of users, clipped to its bounds.
// A page past the end yields no rows rather than an error; its offset is
// pinned to the end of the set, so the footer reads "total+1 to total".
func Paginate(users []domain.User, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(users)
	pages := TotalPages(total, size)

	// page-1 < pages keeps the product at or below total
	offset := total
	if page-1 < pages {
		offset = (page - 1) * size
	}
	end := offset + min(size, total-offset)

	rows := []domain.User{}
	if offset < end {
		rows = slices.Clone(users[offset:end])
	}
	return Page{
		Rows:        rows,
		StartIndex:  offset + 1,
		EndIndex:    end,
		TotalCount:  total,
		CurrentPage: page,
		TotalPages:  pages,
	}
}

// Step moves page one step in dir, keeping it within [1, max(totalPages, 1)].
// A page already past the end snaps back to the last page on Next.
func Step(page, totalPages int, dir PageDirection) int {
	switch dir {
	case Prev:
		return max(page-1, 1)
	case Next:
		return max(min(page+1, totalPages), 1)
	}
	return page
}
