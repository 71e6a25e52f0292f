package table

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"go-gin-user-table/internal/domain"
)

// Query is everything the pipeline output depends on besides the rows.
type Query struct {
	SearchTerm string
	Sort       SortConfig
	Page       int
	PageSize   int
}

// View is what the presentation layer renders after each event.
type View struct {
	Page
	SearchTerm string     `json:"searchTerm"`
	Sort       SortConfig `json:"sortConfiguration"`
}

// Compute runs filter, sort and paginate over users. Same inputs, same view.
func Compute(users []domain.User, q Query) View {
	rows := Sort(Filter(users, q.SearchTerm), q.Sort)
	return View{
		Page:       Paginate(rows, q.Page, q.PageSize),
		SearchTerm: q.SearchTerm,
		Sort:       q.Sort,
	}
}

// State is the mutable part of a Table.
type State struct {
	SearchTerm  string
	Sort        SortConfig
	CurrentPage int
	PageSize    int
}

// Stats counts how often each memoized stage actually ran.
type Stats struct {
	FilterRuns int
	SortRuns   int
}

type Option func(*options)

type options struct {
	pageSize int
	log      *zap.Logger
}

func buildOptions(opts []Option) options {
	o := options{pageSize: DefaultPageSize, log: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithPageSize sets the rows per page. Non-positive sizes are ignored.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Table owns the search term, sort config and page of one rendered list and
// recomputes its view synchronously on every change. It is not safe for
// concurrent use: events are expected one at a time.
type Table struct {
	users []domain.User
	state State
	log   *zap.Logger

	filtered memo[string] // keyed on the term; users is fixed for the table's lifetime
	sorted   memo[sortKey]
	view     View
}

type sortKey struct {
	rev uint64
	cfg SortConfig
}

// New builds a table over a private copy of users with default state.
func New(users []domain.User, opts ...Option) *Table {
	o := buildOptions(opts)
	t := &Table{
		users: slices.Clone(users),
		state: State{Sort: SortConfig{Field: FieldNone, Direction: Ascending}, CurrentPage: 1, PageSize: o.pageSize},
		log:   o.log,
	}
	t.recompute()
	return t
}

// Load fetches the record set once from src. A failed or malformed load is
// logged and replaced by an empty set; it never reaches the caller.
func Load(ctx context.Context, src domain.UserSource, opts ...Option) *Table {
	o := buildOptions(opts)
	return New(Snapshot(ctx, src, o.log), opts...)
}

// Snapshot reads src and checks the result. Any failure yields an empty set.
func Snapshot(ctx context.Context, src domain.UserSource, log *zap.Logger) []domain.User {
	if log == nil {
		log = zap.NewNop()
	}
	users, err := src.ListUsers(ctx)
	if err == nil {
		err = CheckSnapshot(users)
	}
	if err != nil {
		log.Warn("user list load failed, showing empty list", zap.Error(err))
		return []domain.User{}
	}
	log.Debug("user list loaded", zap.Int("records", len(users)))
	return users
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// CheckSnapshot rejects a record set with an invalid row or a repeated id.
func CheckSnapshot(users []domain.User) error {
	seen := make(map[int64]struct{}, len(users))
	for i := range users {
		if err := validate.Struct(users[i]); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[users[i].ID]; dup {
			return fmt.Errorf("record %d: duplicate id %d", i, users[i].ID)
		}
		seen[users[i].ID] = struct{}{}
	}
	return nil
}

// SetSearchTerm replaces the search term. The current page is left alone.
func (t *Table) SetSearchTerm(term string) View {
	t.state.SearchTerm = term
	t.recompute()
	return t.View()
}

// ActivateSort is a click on a column header.
func (t *Table) ActivateSort(f Field) View {
	t.state.Sort = t.state.Sort.Activate(f)
	t.recompute()
	return t.View()
}

// GotoPage is a click on a pager button.
func (t *Table) GotoPage(dir PageDirection) View {
	t.state.CurrentPage = Step(t.state.CurrentPage, t.view.TotalPages, dir)
	t.recompute()
	return t.View()
}

func (t *Table) PrevPage() View { return t.GotoPage(Prev) }
func (t *Table) NextPage() View { return t.GotoPage(Next) }

// View returns the current view. Rows are a fresh copy on every call.
func (t *Table) View() View {
	v := t.view
	v.Rows = slices.Clone(v.Rows)
	return v
}

func (t *Table) State() State { return t.state }
func (t *Table) Len() int     { return len(t.users) }

func (t *Table) Stats() Stats {
	return Stats{FilterRuns: t.filtered.runs, SortRuns: t.sorted.runs}
}

func (t *Table) recompute() {
	filtered := t.filtered.get(t.state.SearchTerm, func() []domain.User {
		return Filter(t.users, t.state.SearchTerm)
	})
	sorted := t.sorted.get(sortKey{rev: t.filtered.rev, cfg: t.state.Sort}, func() []domain.User {
		return Sort(filtered, t.state.Sort)
	})
	t.view = View{
		Page:       Paginate(sorted, t.state.CurrentPage, t.state.PageSize),
		SearchTerm: t.state.SearchTerm,
		Sort:       t.state.Sort,
	}
}
