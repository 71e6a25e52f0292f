package table

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"go-gin-user-table/internal/domain"
)

var (
	ErrUnknownField     = errors.New("table: unknown sort field")
	ErrUnknownDirection = errors.New("table: unknown sort direction")
)

// Field is a sortable column. FieldNone means "keep load order".
type Field int

const (
	FieldNone Field = iota
	FieldID
	FieldUsername
	FieldEmail
	FieldIsAdmin
)

// Columns lists the sortable columns in display order.
var Columns = []Field{FieldID, FieldUsername, FieldEmail, FieldIsAdmin}

func (f Field) String() string {
	switch f {
	case FieldID:
		return "id"
	case FieldUsername:
		return "username"
	case FieldEmail:
		return "email"
	case FieldIsAdmin:
		return "isAdmin"
	default:
		return ""
	}
}

// Label is the column header text.
func (f Field) Label() string {
	if f == FieldIsAdmin {
		return "Admin Status"
	}
	return f.String()
}

func (f Field) valid() bool { return f >= FieldID && f <= FieldIsAdmin }

// ParseField maps a column name to its Field. The empty string is FieldNone.
func ParseField(s string) (Field, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FieldNone, nil
	}
	for _, f := range Columns {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return FieldNone, ErrUnknownField
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// ParseDirection accepts asc/ascending and desc/descending. Empty means ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, ErrUnknownDirection
}

// SortConfig is the active sort column and direction.
type SortConfig struct {
	Field     Field     `json:"field"`
	Direction Direction `json:"direction"`
}

// Activate applies a header click: same column flips direction, another column
// starts ascending. Unknown fields leave the config untouched.
func (c SortConfig) Activate(f Field) SortConfig {
	if !f.valid() {
		return c
	}
	if c.Field == f {
		return SortConfig{Field: f, Direction: c.Direction.Toggle()}
	}
	return SortConfig{Field: f, Direction: Ascending}
}

// Compare orders a and b by the configured column and direction.
func (c SortConfig) Compare(a, b domain.User) int {
	var r int
	switch c.Field {
	case FieldID:
		r = cmp.Compare(a.ID, b.ID)
	case FieldUsername:
		r = strings.Compare(a.Username, b.Username)
	case FieldEmail:
		r = strings.Compare(a.Email, b.Email)
	case FieldIsAdmin:
		r = compareBool(a.IsAdmin, b.IsAdmin)
	}
	if c.Direction == Descending {
		return -r
	}
	return r
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// Sort returns a stably ordered copy of users. With no field set the input is
// returned as is.
func Sort(users []domain.User, c SortConfig) []domain.User {
	if !c.Field.valid() {
		return users
	}
	out := slices.Clone(users)
	slices.SortStableFunc(out, c.Compare)
	return out
}

func (f Field) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Field) UnmarshalText(b []byte) error {
	v, err := ParseField(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
