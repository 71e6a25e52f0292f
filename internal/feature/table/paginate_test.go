package table_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-gin-user-table/internal/feature/table"
	"go-gin-user-table/internal/repo"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
		{3, math.MaxInt, 1},
		{7, 1, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.TotalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestPaginate(t *testing.T) {
	users := repo.SampleUsers()[:7]

	tests := []struct {
		name      string
		page      int
		wantIDs   []int64
		wantStart int
		wantEnd   int
	}{
		{name: "First page", page: 1, wantIDs: []int64{1, 2, 3, 4, 5}, wantStart: 1, wantEnd: 5},
		{name: "Last partial page", page: 2, wantIDs: []int64{6, 7}, wantStart: 6, wantEnd: 7},
		{name: "Past the end", page: 3, wantIDs: []int64{}, wantStart: 8, wantEnd: 7},
		{name: "Offset would overflow", page: math.MaxInt/5 + 2, wantIDs: []int64{}, wantStart: 8, wantEnd: 7},
		{name: "Max page", page: math.MaxInt, wantIDs: []int64{}, wantStart: 8, wantEnd: 7},
		{name: "Negative page treated as first", page: -4, wantIDs: []int64{1, 2, 3, 4, 5}, wantStart: 1, wantEnd: 5},
		{name: "Zero page treated as first", page: 0, wantIDs: []int64{1, 2, 3, 4, 5}, wantStart: 1, wantEnd: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := table.Paginate(users, tt.page, 5)
			assert.Equal(t, tt.wantIDs, ids(p.Rows))
			assert.Equal(t, tt.wantStart, p.StartIndex)
			assert.Equal(t, tt.wantEnd, p.EndIndex)
			assert.Equal(t, 7, p.TotalCount)
			assert.Equal(t, 2, p.TotalPages)
		})
	}
}

func TestPaginate_HugePageSize(t *testing.T) {
	p := table.Paginate(repo.SampleUsers(), 2, math.MaxInt)
	assert.Empty(t, p.Rows)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 11, p.StartIndex)
	assert.Equal(t, 10, p.EndIndex)

	p = table.Paginate(repo.SampleUsers(), 1, math.MaxInt)
	assert.Len(t, p.Rows, 10)
	assert.Equal(t, 1, p.StartIndex)
	assert.Equal(t, 10, p.EndIndex)
}

func TestPaginate_Empty(t *testing.T) {
	p := table.Paginate(nil, 1, 5)
	assert.NotNil(t, p.Rows)
	assert.Empty(t, p.Rows)
	assert.Equal(t, 0, p.TotalCount)
	assert.Equal(t, 0, p.TotalPages)
}

func TestStep_StaysInBounds(t *testing.T) {
	moves := []table.PageDirection{table.Next, table.Next, table.Prev, table.Next, table.Next, table.Next, table.Prev, table.Prev, table.Prev, table.Prev}
	for _, totalPages := range []int{0, 1, 2, 3} {
		page := 1
		for _, m := range moves {
			page = table.Step(page, totalPages, m)
			assert.GreaterOrEqual(t, page, 1)
			assert.LessOrEqual(t, page, max(totalPages, 1))
		}
	}
}
